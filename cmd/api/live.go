package main

import (
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// WatchStats subscribes the caller to stats-changed notifications. Open
// views reload their snapshot whenever a message arrives instead of
// polling the store.
func (app *application) WatchStats(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		app.logError(r, err)
		return
	}

	app.hub.Join(conn)
}

func (app *application) notifyStatsChanged() {
	app.hub.Broadcast <- []byte(`{"event":"stats-changed"}`)
}
