// handlers/handler.go
package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/programarreza/TaskNestle-Server/store"
	"github.com/programarreza/TaskNestle-Server/websocket"
)

// Handler owns the injected collaborators every route works against.
// Constructed once in main; no package-level collection state.
type Handler struct {
	store store.Store
	hub   *websocket.Hub
}

func New(s store.Store, hub *websocket.Hub) *Handler {
	return &Handler{store: s, hub: hub}
}

// objectIDParam decodes the {id} path variable. A malformed id is a
// client error, not a driver panic.
func objectIDParam(r *http.Request) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(mux.Vars(r)["id"])
}
