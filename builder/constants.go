// SPDX-License-Identifier: MIT

package builder

// Constructor method names, used as the prefix of every wrapped error.
const (
	methodPath            = "Path"
	methodCycle           = "Cycle"
	methodStar            = "Star"
	methodWheel           = "Wheel"
	methodComplete        = "Complete"
	methodGrid            = "Grid"
	methodRandomSparse    = "RandomSparse"
	methodRandomConnected = "RandomConnected"
	methodEdgeList        = "EdgeList"
)

// Minimum sizes per topology.
const (
	minPathNodes     = 1
	minCycleNodes    = 3
	minStarNodes     = 2
	minWheelNodes    = 4
	minCompleteNodes = 1
	minGridDim       = 1
	minRandomNodes   = 1
)

// edgeListComment starts a comment line in EdgeList input.
const edgeListComment = "#"
