package mux

import (
	"errors"
	"net/http"

	"fivecarddraw-server/pkg/room"
)

func (m *Mux) getTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := m.room.Snapshot(r.Context())
		if err != nil {
			if errors.Is(err, room.ErrRoomClosed) {
				writeJSONError(w, http.StatusServiceUnavailable, err)
			} else {
				writeJSONError(w, http.StatusInternalServerError, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, snapshot)
	}
}
