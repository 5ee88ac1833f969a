package mux

import (
	"net/http"

	"fivecarddraw-server/pkg/room"

	gmux "github.com/gorilla/mux"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	room    *room.Room
}

// NewMux returns a new HTTP mux for the room
func NewMux(version string, rm *room.Room) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		room:    rm,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodGet).Path("/table").Handler(this.getTable())
	r.Methods(http.MethodGet).Path("/ws").Handler(this.getWS())

	return this
}
