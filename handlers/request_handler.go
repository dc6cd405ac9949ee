package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/programarreza/TaskNestle-Server/models"
	"github.com/programarreza/TaskNestle-Server/store"
	"github.com/programarreza/TaskNestle-Server/utils"
)

// RequestAsset files an asset request, deduplicating on the exact
// (name, type, email) triple. A repeat request bumps requestCount and
// answers with the document as it stood BEFORE the bump; the client
// shows the prior state and the counter catches up on the next read.
// A unique index on the triple makes the check-then-act fail closed
// when two first requests race.
func (h *Handler) RequestAsset(w http.ResponseWriter, r *http.Request) {
	var req models.AssetRequest
	if err := utils.ParseJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	existing, err := h.store.FindRequest(r.Context(), req.Name, req.Type, req.Email)
	if err != nil {
		log.Printf("find request failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database query failed")
		return
	}

	if existing != nil {
		if _, err := h.store.IncrementRequestCount(r.Context(), existing.ID); err != nil {
			log.Printf("increment requestCount %s failed: %v", existing.ID.Hex(), err)
			utils.RespondWithError(w, http.StatusInternalServerError, "database update failed")
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, existing)
		return
	}

	req.RequestCount = 1
	req.Status = models.StatusPending
	req.Date = time.Now()

	result, err := h.store.InsertRequest(r.Context(), req)
	if err != nil {
		log.Printf("insert request failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database insert failed")
		return
	}

	if h.hub != nil {
		h.hub.SendRequestCreated(req.AdminEmail, req, req.Email)
	}

	utils.RespondWithJSON(w, http.StatusOK, result)
}

// ListRequestedAssets returns a requester's own requests, with the
// optional name/type search filters.
func (h *Handler) ListRequestedAssets(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]
	q := r.URL.Query()

	filter := store.RequestFilter{
		Email: email,
		Name:  q.Get("name"),
		Type:  q.Get("type"),
	}

	requests, err := h.store.ListRequests(r.Context(), filter)
	if err != nil {
		log.Printf("list requests for %s failed: %v", email, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database query failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, requests)
}

// ListAllRequests is the admin view: every request addressed to this
// admin, searchable by asset name or requester email.
func (h *Handler) ListAllRequests(w http.ResponseWriter, r *http.Request) {
	adminEmail := mux.Vars(r)["adminEmail"]
	q := r.URL.Query()

	filter := store.RequestFilter{
		AdminEmail:  adminEmail,
		Name:        q.Get("name"),
		SearchEmail: q.Get("email"),
	}

	requests, err := h.store.ListRequests(r.Context(), filter)
	if err != nil {
		log.Printf("list requests for admin %s failed: %v", adminEmail, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database query failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, requests)
}

type requestStatusUpdate struct {
	Status       string `json:"status"`
	ApprovedDate string `json:"approvedDate"`
}

// UpdateRequestStatus records an approval/rejection/return decision and
// notifies the owning admin's connected dashboards.
func (h *Handler) UpdateRequestStatus(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request id")
		return
	}

	var body requestStatusUpdate
	if err := utils.ParseJSON(r, &body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	existing, err := h.store.FindRequestByID(r.Context(), id)
	if err != nil {
		log.Printf("find request %s failed: %v", id.Hex(), err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database query failed")
		return
	}

	result, err := h.store.UpdateRequestStatus(r.Context(), id, body.Status, body.ApprovedDate)
	if err != nil {
		log.Printf("update request %s failed: %v", id.Hex(), err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database update failed")
		return
	}

	if h.hub != nil && existing != nil {
		h.hub.SendRequestStatusChange(existing.AdminEmail, id.Hex(), existing.Status, body.Status)
	}

	utils.RespondWithJSON(w, http.StatusOK, result)
}

// TopRequestedAssets returns the 4 most requested assets for an admin.
func (h *Handler) TopRequestedAssets(w http.ResponseWriter, r *http.Request) {
	adminEmail := mux.Vars(r)["adminEmail"]

	requests, err := h.store.TopRequested(r.Context(), adminEmail)
	if err != nil {
		log.Printf("top requested for %s failed: %v", adminEmail, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database query failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, requests)
}

// PendingRequests returns the 5 most recent pending requests for an
// admin's home view.
func (h *Handler) PendingRequests(w http.ResponseWriter, r *http.Request) {
	adminEmail := mux.Vars(r)["adminEmail"]

	requests, err := h.store.PendingRequests(r.Context(), adminEmail)
	if err != nil {
		log.Printf("pending requests for %s failed: %v", adminEmail, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database query failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, requests)
}
