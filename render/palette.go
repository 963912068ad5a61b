package render

// Colours shared by every renderer.
const (
	ColorNode        = "#3498db"
	ColorHighlighted = "#e74c3c"
	ColorPath        = "#e67e22"
	ColorTree        = "#27ae60"
	ColorEdge        = "#bbbbbb"
	ColorStroke      = "#2980b9"
	ColorLabel       = "#555555"
)

// NodeColor picks the fill for a node: path beats highlight beats default.
func NodeColor(onPath, highlighted bool) string {
	switch {
	case onPath:
		return ColorPath
	case highlighted:
		return ColorHighlighted
	default:
		return ColorNode
	}
}

// EdgeStyle returns colour and pen width for an edge.
func EdgeStyle(onPath, inTree bool) (color string, width int) {
	switch {
	case onPath:
		return ColorPath, 4
	case inTree:
		return ColorTree, 3
	default:
		return ColorEdge, 2
	}
}
