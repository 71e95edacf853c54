// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodCompleteBipartite is the canonical name for the CompleteBipartite constructor.
	MethodCompleteBipartite = "CompleteBipartite"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
)

//-----------------------------------------------------------------------------
// Topology kind names accepted by ByKind (and the CLI --graph flag).
//-----------------------------------------------------------------------------

const (
	KindStar      = "star"
	KindCycle     = "cycle"
	KindPath      = "path"
	KindWheel     = "wheel"
	KindComplete  = "complete"
	KindGrid      = "grid"
	KindBipartite = "bipartite"
	KindRandom    = "random"
)

// CenterVertexID is the identifier of the hub node in Star and Wheel.
// It is fixed so hubs are easy to address in tests and on the command line.
const CenterVertexID = "Center"

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest meaningful size for a ring; fewer than 3
// nodes cannot close a cycle without self-loops.
const MinCycleNodes = 3

// MinPathNodes is the smallest meaningful size for a path (one edge).
const MinPathNodes = 2

// MinStarNodes is one center plus at least one leaf.
const MinStarNodes = 2

// MinWheelNodes is a 3-ring plus the hub.
const MinWheelNodes = 4

// MinCompleteNodes allows K_1 (a single isolated node).
const MinCompleteNodes = 1

// MinGridDim is the smallest allowed dimension (rows or cols); 1×1 has no edges.
const MinGridDim = 1

// MinPartition is the smallest size of either side of K_{m,n}.
const MinPartition = 1

// MinRandomNodes is the smallest node count for RandomSparse.
const MinRandomNodes = 1

//-----------------------------------------------------------------------------
// Probability Bounds
//-----------------------------------------------------------------------------

// MinProbability is the inclusive lower bound for RandomSparse's p.
const MinProbability = 0.0

// MaxProbability is the inclusive upper bound for RandomSparse's p.
const MaxProbability = 1.0
