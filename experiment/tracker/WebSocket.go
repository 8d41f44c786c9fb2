package tracker

import (
	"github.com/gorilla/websocket"
	channerics "github.com/niceyeti/channerics/channels"

	ts "github.com/samuelfneumann/gotabular/timestep"
)

// updateBuffer bounds the number of in-flight scalar updates. Updates
// beyond the buffer are dropped rather than blocking the experiment.
const updateBuffer int = 256

// ScalarUpdate is the wire format of a single tracked scalar
type ScalarUpdate struct {
	Step   int     `json:"step"`
	Reward float64 `json:"reward"`
}

// WebSocket is a Tracker that streams per-timestep scalars to a live
// dashboard over a websocket connection.
//
// The stream is fire-and-forget: dial and write failures are swallowed,
// updates are dropped when the connection cannot keep up, and the
// experiment's behaviour is identical whether or not a dashboard is
// listening.
type WebSocket struct {
	conn    *websocket.Conn
	updates chan ScalarUpdate
	done    chan struct{}
}

// NewWebSocket returns a Tracker streaming scalar updates to the
// websocket endpoint at url. If the endpoint cannot be dialed, the
// returned Tracker silently discards everything sent to it.
func NewWebSocket(url string) *WebSocket {
	w := &WebSocket{
		updates: make(chan ScalarUpdate, updateBuffer),
		done:    make(chan struct{}),
	}

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return w
	}
	w.conn = conn

	go w.pump()
	return w
}

// pump forwards updates to the connection until the tracker is closed
func (w *WebSocket) pump() {
	for update := range channerics.OrDone(w.done, w.updates) {
		if err := w.conn.WriteJSON(update); err != nil {
			return
		}
	}
}

// Track streams the reward and step index of a timestep. Track never
// blocks: if the connection cannot keep up, updates are dropped.
func (w *WebSocket) Track(t ts.TimeStep) {
	if w.conn == nil {
		return
	}

	select {
	case w.updates <- ScalarUpdate{Step: t.Number, Reward: t.Reward}:
	default:
	}
}

// Save closes the stream. The WebSocket Tracker persists nothing
// itself; whatever is listening on the other end owns the data.
func (w *WebSocket) Save() {
	if w.conn == nil {
		return
	}

	close(w.done)
	w.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	w.conn.Close()
	w.conn = nil
}
