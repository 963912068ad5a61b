// Package render turns frames and snapshots into text and Graphviz output.
// It only ever reads a core.Snapshot; no algorithm state reaches it.
package render

import (
	"math"

	"github.com/katalvlaran/stepviz/core"
)

// Point is a canvas position.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Canvas describes the drawing area nodes are laid out on.
type Canvas struct {
	Width  float64
	Height float64
	Radius float64
}

// DefaultCanvas is an 800×600 area with a circle of radius 200.
var DefaultCanvas = Canvas{Width: 800, Height: 600, Radius: 200}

// CircleLayout places ids evenly on a circle around the canvas centre, in the
// order given, starting at angle 0 and going counter-clockwise in screen
// coordinates.
func (c Canvas) CircleLayout(ids []core.NodeID) map[core.NodeID]Point {
	out := make(map[core.NodeID]Point, len(ids))
	n := float64(len(ids))
	cx, cy := c.Width/2, c.Height/2
	for i, id := range ids {
		ang := 2 * math.Pi / n * float64(i)
		out[id] = Point{X: cx + c.Radius*math.Cos(ang), Y: cy + c.Radius*math.Sin(ang)}
	}

	return out
}

// CircleLayout lays out ids on DefaultCanvas.
func CircleLayout(ids []core.NodeID) map[core.NodeID]Point {
	return DefaultCanvas.CircleLayout(ids)
}
