// Package stepviz is a step-wise execution engine for classic graph
// algorithms: it runs BFS, DFS, Dijkstra, Prim and Kruskal one unit of work
// at a time so that every intermediate state can be shown to a learner.
//
// What is in the box?
//
//   - Graph model: an undirected, positively weighted graph that is frozen
//     once a run starts, plus the Snapshot value every renderer consumes.
//   - Step functions: one package per algorithm, each a pure transition
//     State -> (State, Snapshot, done) with a pseudocode program counter.
//   - Stepper engine: a single tagged State over all five algorithms.
//   - Playback: a Session with step, play on a timer, pause, back, reset and
//     frame observers.
//   - Drivers: a terminal renderer, Graphviz DOT output and an HTTP API with
//     a WebSocket frame stream.
//
// Everything is organized under these subpackages:
//
//	core/         - Graph, Edge, Arc, Snapshot
//	builder/      - Path, Cycle, Star, Wheel, Complete, Grid, random and edge-list graphs
//	bfs/          - breadth-first search steps
//	dfs/          - depth-first search steps
//	dijkstra/     - shortest path steps
//	prim_kruskal/ - minimum spanning tree steps and DisjointSet
//	stepper/      - Algorithm tag, Initialize/Step dispatch, pseudocode annotator
//	playback/     - Session state machine and play timer
//	render/       - text frames, DOT, circle layout and palette
//	wire/         - JSON and MessagePack frame codecs
//	logging/      - leveled logger with rotating file output
//	config/       - TOML configuration and validation
//	server/       - HTTP and WebSocket driver
//	cmd/stepviz/  - command-line front end
//
// Quick start:
//
//	g, _ := builder.BuildGraph(nil, builder.Cycle(5))
//	st, _ := stepper.Initialize(stepper.BFS, g, 0)
//	for !st.Done() {
//		st, _, _ = st.Step()
//		fmt.Println(st.Line())
//	}
package stepviz
