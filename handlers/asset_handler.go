package handlers

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/programarreza/TaskNestle-Server/models"
	"github.com/programarreza/TaskNestle-Server/store"
	"github.com/programarreza/TaskNestle-Server/utils"
)

// ListAssets returns the catalog with the optional name/type substring
// filters and an optional single-field sort (?sort=price&order=asc).
func (h *Handler) ListAssets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := store.AssetFilter{
		Name:  q.Get("name"),
		Type:  q.Get("type"),
		Email: q.Get("email"),
	}
	sort := store.Sort{
		Field: q.Get("sort"),
		Order: q.Get("order"),
	}

	assets, err := h.store.ListAssets(r.Context(), filter, sort)
	if err != nil {
		log.Printf("assets Find error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database query failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, assets)
}

// AddProduct inserts a catalog asset for the posting admin.
func (h *Handler) AddProduct(w http.ResponseWriter, r *http.Request) {
	var asset models.Asset
	if err := utils.ParseJSON(r, &asset); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	result, err := h.store.InsertAsset(r.Context(), asset)
	if err != nil {
		log.Printf("insert asset failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database insert failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, result)
}

// UpdateAsset applies the posted asset fields to an existing document.
func (h *Handler) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid asset id")
		return
	}

	var asset models.Asset
	if err := utils.ParseJSON(r, &asset); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	result, err := h.store.UpdateAssetFields(r.Context(), id, asset)
	if err != nil {
		log.Printf("update asset %s failed: %v", id.Hex(), err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database update failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, result)
}

// DeleteAsset removes one asset. Deleting an id that no longer exists
// reports DeletedCount 0, not an error.
func (h *Handler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid asset id")
		return
	}

	result, err := h.store.DeleteAsset(r.Context(), id)
	if err != nil {
		log.Printf("delete asset %s failed: %v", id.Hex(), err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database delete failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, result)
}

// LimitedStock lists an admin's assets with quantity under 10.
func (h *Handler) LimitedStock(w http.ResponseWriter, r *http.Request) {
	adminEmail := mux.Vars(r)["adminEmail"]

	assets, err := h.store.LimitedStock(r.Context(), adminEmail)
	if err != nil {
		log.Printf("limited stock for %s failed: %v", adminEmail, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database query failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, assets)
}

// ProductTypeCount reports how many returnable and non-returnable
// assets an admin owns, as two independent counts.
func (h *Handler) ProductTypeCount(w http.ResponseWriter, r *http.Request) {
	adminEmail := mux.Vars(r)["adminEmail"]

	returnable, err := h.store.CountAssetsByType(r.Context(), adminEmail, models.TypeReturnable)
	if err != nil {
		log.Printf("count returnable for %s failed: %v", adminEmail, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database query failed")
		return
	}

	nonReturnable, err := h.store.CountAssetsByType(r.Context(), adminEmail, models.TypeNonReturnable)
	if err != nil {
		log.Printf("count non-returnable for %s failed: %v", adminEmail, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database query failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]int64{
		"returnableCount": returnable,
		"nonReturnable":   nonReturnable,
	})
}
