/*
Package server is the HTTP driver for a playback.Session.

Routes:

	POST /api/graph                 generate a graph (random or edge list) and reset the run
	GET  /api/graph                 nodes with circle layout positions, edges
	POST /api/run                   start an algorithm: {"algorithm", "start", "end"}
	POST /api/step                  advance one step
	POST /api/back                  undo one step
	POST /api/play                  play at {"intervalMs"}
	POST /api/pause                 stop playing
	GET  /api/state                 latest frame
	GET  /api/pseudocode/:algorithm pseudocode listing
	GET  /api/dot                   Graphviz DOT of the graph under the latest frame
	GET  /ws                        frame stream

Responses use the configured codec; ?codec=json or ?codec=msgpack overrides it
per request or per WebSocket connection. MessagePack frames go out as binary
WebSocket messages. A WebSocket client receives the latest frame on connect
and may send {"op": "step"|"back"|"play"|"pause", "intervalMs": n}.
*/
package server
