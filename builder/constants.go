// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	methodBuildGraph      = "BuildGraph"
	methodBarabasiAlbert  = "BarabasiAlbert"
	methodUniformOpinions = "UniformOpinions"
)

//-----------------------------------------------------------------------------
// Minimum Sizes
//-----------------------------------------------------------------------------

// MinNodes is the smallest node count accepted by BarabasiAlbert.
const MinNodes = 1

// MinAttachment is the smallest preferential-attachment count m.
const MinAttachment = 1

// DefaultAttachment is the attachment count used by the opinion model:
// m = 2 yields a degree distribution with exponent between 2 and 3.
const DefaultAttachment = 2
