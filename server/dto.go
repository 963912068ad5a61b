package server

import (
	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/stepper"
)

// graphRequest generates a new graph. Edges, when set, wins over Topology.
// Rows and Cols shape the grid topology, P the sparse one.
type graphRequest struct {
	Topology string   `json:"topology" validate:"omitempty,oneof=random path cycle star wheel complete grid sparse"`
	Nodes    int      `json:"nodes" validate:"omitempty,gte=1,lte=1000"`
	Rows     int      `json:"rows" validate:"omitempty,gte=1,lte=100"`
	Cols     int      `json:"cols" validate:"omitempty,gte=1,lte=100"`
	P        *float64 `json:"p" validate:"omitempty,gte=0,lte=1"`
	Seed     *int64   `json:"seed"`
	Edges    string   `json:"edges" validate:"omitempty,max=1048576"`
}

// runRequest starts an algorithm. Missing Start and End fall back to the
// configured defaults.
type runRequest struct {
	Algorithm string `json:"algorithm" validate:"required"`
	Start     *int   `json:"start" validate:"omitempty,gte=0"`
	End       *int   `json:"end" validate:"omitempty,gte=0"`
}

// playRequest starts the timer; 0 selects the configured interval.
type playRequest struct {
	IntervalMs int `json:"intervalMs" validate:"gte=0,lte=60000"`
}

// controlMessage is a command received over the WebSocket.
type controlMessage struct {
	Op         string `json:"op" validate:"required,oneof=step back play pause"`
	IntervalMs int    `json:"intervalMs" validate:"gte=0,lte=60000"`
}

type nodeView struct {
	ID core.NodeID `json:"id"`
	X  float64     `json:"x"`
	Y  float64     `json:"y"`
}

type graphView struct {
	Nodes []nodeView  `json:"nodes"`
	Edges []core.Edge `json:"edges"`
}

type pseudocodeView struct {
	Algorithm stepper.Algorithm `json:"algorithm"`
	Lines     []string          `json:"lines"`
}
