package handlers

import (
	"log"
	"net/http"

	"github.com/programarreza/TaskNestle-Server/utils"
)

// ListPackages returns the static upgrade catalog.
func (h *Handler) ListPackages(w http.ResponseWriter, r *http.Request) {
	packages, err := h.store.ListPackages(r.Context())
	if err != nil {
		log.Printf("list packages failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database query failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, packages)
}

// GetPackage returns one package, or null when absent.
func (h *Handler) GetPackage(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid package id")
		return
	}

	pkg, err := h.store.FindPackage(r.Context(), id)
	if err != nil {
		log.Printf("find package %s failed: %v", id.Hex(), err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database query failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, pkg)
}
