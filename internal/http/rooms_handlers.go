package httpx

import (
	"net/http"

	"github.com/ValerySM/realtime-chat/internal/chat"
)

// RoomsAPI exposes the room listing as a plain request/response query,
// mirroring what connected clients get via rooms_update.
type RoomsAPI struct{ Engine *chat.Engine }

type roomsResp struct {
	Rooms []string `json:"rooms"`
}

// List returns the sorted room names
func (a *RoomsAPI) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, roomsResp{Rooms: a.Engine.Rooms()})
}
