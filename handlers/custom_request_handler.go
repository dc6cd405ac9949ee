package handlers

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/programarreza/TaskNestle-Server/models"
	"github.com/programarreza/TaskNestle-Server/utils"
)

// CreateCustomRequest files a free-form request for an asset that is
// not in the catalog.
func (h *Handler) CreateCustomRequest(w http.ResponseWriter, r *http.Request) {
	var req models.CustomAssetRequest
	if err := utils.ParseJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	result, err := h.store.InsertCustomRequest(r.Context(), req)
	if err != nil {
		log.Printf("insert custom request failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database insert failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, result)
}

// ListCustomRequests returns a requester's custom requests.
func (h *Handler) ListCustomRequests(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	requests, err := h.store.ListCustomRequests(r.Context(), email)
	if err != nil {
		log.Printf("list custom requests for %s failed: %v", email, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database query failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, requests)
}

// GetCustomRequest returns one custom request, or null when absent.
func (h *Handler) GetCustomRequest(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request id")
		return
	}

	req, err := h.store.FindCustomRequest(r.Context(), id)
	if err != nil {
		log.Printf("find custom request %s failed: %v", id.Hex(), err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database query failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, req)
}

// UpdateCustomRequest rewrites the editable fields of a custom request.
func (h *Handler) UpdateCustomRequest(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request id")
		return
	}

	var req models.CustomAssetRequest
	if err := utils.ParseJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	result, err := h.store.UpdateCustomRequest(r.Context(), id, req)
	if err != nil {
		log.Printf("update custom request %s failed: %v", id.Hex(), err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database update failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, result)
}
