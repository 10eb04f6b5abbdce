// Package live pushes "stats changed" notifications to connected views over
// websockets, so open pages reload their snapshot after any write instead
// of polling the store.
package live

import "github.com/gorilla/websocket"

type Hub struct {
	watchers     map[*Watcher]bool
	Broadcast    chan []byte
	JoinWatcher  chan *Watcher
	LeaveWatcher chan *Watcher
}

func NewHub() *Hub {
	return &Hub{
		watchers:     make(map[*Watcher]bool),
		Broadcast:    make(chan []byte),
		JoinWatcher:  make(chan *Watcher),
		LeaveWatcher: make(chan *Watcher),
	}
}

func (h *Hub) Join(conn *websocket.Conn) *Watcher {
	watcher := newWatcher(h, conn)
	h.JoinWatcher <- watcher

	go watcher.WriteEvents()
	go watcher.ReadEvents()

	return watcher
}

func (h *Hub) Run() {
	for {
		select {
		case watcher := <-h.JoinWatcher:
			h.watchers[watcher] = true
		case watcher := <-h.LeaveWatcher:
			if _, ok := h.watchers[watcher]; ok {
				delete(h.watchers, watcher)
				close(watcher.Receive)
			}
		case msg := <-h.Broadcast:
			h.toAllWatchers(msg)
		}
	}
}

func (h *Hub) toAllWatchers(msg []byte) {
	for watcher := range h.watchers {
		select {
		case watcher.Receive <- msg:
		default:
			close(watcher.Receive)
			delete(h.watchers, watcher)
		}
	}
}
