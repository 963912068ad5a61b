package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/katalvlaran/stepviz/logging"
	"github.com/katalvlaran/stepviz/playback"
	"github.com/katalvlaran/stepviz/wire"
)

const (
	writeWait       = 5 * time.Second
	broadcastBuffer = 256
)

// wsClient is one WebSocket connection and the codec it asked for. seq is
// the last frame written to it.
type wsClient struct {
	conn  *websocket.Conn
	codec wire.Codec
	seq   uint64
}

// wsHub fans frames out to every connected client. All writes to a
// connection happen on the run goroutine. A client is sent latest on
// registration and then only frames newer than it.
type wsHub struct {
	log       logging.Logger
	latest    func() (playback.Frame, bool)
	upgrader  websocket.Upgrader
	clients   map[*websocket.Conn]*wsClient
	register  chan *wsClient
	remove    chan *websocket.Conn
	broadcast chan playback.Frame
	count     chan chan int
	done      chan struct{}
	stopped   chan struct{}
}

func newHub(log logging.Logger, checkOrigin func(r *http.Request) bool, latest func() (playback.Frame, bool)) *wsHub {
	hub := &wsHub{
		log:    log,
		latest: latest,
		upgrader: websocket.Upgrader{
			CheckOrigin: checkOrigin,
		},
		clients:   make(map[*websocket.Conn]*wsClient),
		register:  make(chan *wsClient),
		remove:    make(chan *websocket.Conn),
		broadcast: make(chan playback.Frame, broadcastBuffer),
		count:     make(chan chan int),
		done:      make(chan struct{}),
		stopped:   make(chan struct{}),
	}
	go hub.run()
	return hub
}

func (h *wsHub) run() {
	defer close(h.stopped)
	for {
		select {
		case c := <-h.register:
			h.clients[c.conn] = c
			if f, ok := h.latest(); ok {
				h.send(c, f, nil)
			}
		case conn := <-h.remove:
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
		case f := <-h.broadcast:
			encoded := make(map[string][]byte, 2)
			for _, c := range h.clients {
				if f.Seq > c.seq {
					h.send(c, f, encoded)
				}
			}
		case reply := <-h.count:
			reply <- len(h.clients)
		case <-h.done:
			for conn := range h.clients {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
					time.Now().Add(writeWait))
				conn.Close()
			}
			h.clients = nil
			return
		}
	}
}

// send writes f to c, encoding at most once per codec through cache.
func (h *wsHub) send(c *wsClient, f playback.Frame, cache map[string][]byte) {
	data, ok := cache[c.codec.Name()]
	if !ok {
		var err error
		if data, err = c.codec.Encode(f); err != nil {
			h.log.Errorf("Failed to encode frame %d as %s: %v", f.Seq, c.codec.Name(), err)
			return
		}
		if cache != nil {
			cache[c.codec.Name()] = data
		}
	}
	kind := websocket.TextMessage
	if c.codec.Binary() {
		kind = websocket.BinaryMessage
	}
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := c.conn.WriteMessage(kind, data); err != nil {
		h.log.Warningf("Failed to send frame to WebSocket client %s: %v", c.conn.RemoteAddr(), err)
		delete(h.clients, c.conn)
		c.conn.Close()
		return
	}
	c.seq = f.Seq
}

// publish queues f without blocking; it is called with the Session lock
// held, so a full buffer drops the frame.
func (h *wsHub) publish(f playback.Frame) {
	select {
	case h.broadcast <- f:
	case <-h.done:
	default:
		h.log.Warningf("WebSocket broadcast buffer full, dropping frame %d", f.Seq)
	}
}

// handle upgrades the request and reads control messages until the client
// goes away.
func (h *wsHub) handle(w http.ResponseWriter, r *http.Request, codec wire.Codec, onControl func(controlMessage)) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Errorf("WebSocket upgrade failed: %v", err)
		return
	}

	select {
	case h.register <- &wsClient{conn: conn, codec: codec}:
	case <-h.done:
		conn.Close()
		return
	}

	go func() {
		defer func() {
			select {
			case h.remove <- conn:
			case <-h.done:
			}
		}()
		for {
			_, message, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
					h.log.Warningf("WebSocket error: %v", err)
				}
				break
			}
			var msg controlMessage
			if err := wire.JSON().Decode(message, &msg); err != nil {
				h.log.Warningf("Ignoring malformed WebSocket control message: %v", err)
				continue
			}
			onControl(msg)
		}
	}()
}

// clientCount reports the number of registered connections.
func (h *wsHub) clientCount() int {
	reply := make(chan int, 1)
	select {
	case h.count <- reply:
		return <-reply
	case <-h.stopped:
		return 0
	}
}

func (h *wsHub) close() {
	select {
	case <-h.done:
	default:
		close(h.done)
	}
	<-h.stopped
}
