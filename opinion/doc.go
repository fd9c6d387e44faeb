// Package opinion implements the pairwise update rules of the opinion
// dynamics model.
//
// An interaction takes two opinions i, j in [0,1], a convergence rate mu and
// a tolerance epsilon, and returns the two updated opinions. Three rules are
// available, selected once per run through Kind:
//
//	Periodic          wrapped distance; concordant pairs converge, discordant
//	                  pairs repel along the circle (clamped to [0,1])
//	NaiveRepulsion    plain distance; discordant pairs repel linearly
//	BoundedConfidence plain distance; discordant pairs are left unchanged
//
// Periodic boundaries:
//
// Opinions near 0 and near 1 are neighbours on the circle. Rho maps a raw
// difference in [-1,1] to the integer shift that brings it into [-0.5,0.5]:
//
//	x:    -1 ........ -0.5 ........ 0 ........ 0.5 ........ 1
//	Rho:  |----- -1 ----)[------------ 0 ----------](---- 1 ---|
//
// Errors:
//
//	ErrOutOfRange  - opinion outside [0,1] or difference outside [-1,1]
//	ErrUnknownRule - unrecognised rule name or Kind
//
// All rules are stateless and safe for concurrent use.
package opinion
