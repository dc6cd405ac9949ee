package handlers

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/programarreza/TaskNestle-Server/middleware"
	"github.com/programarreza/TaskNestle-Server/models"
	"github.com/programarreza/TaskNestle-Server/utils"
)

// CreateUser stores a new user profile.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := utils.ParseJSON(r, &user); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	result, err := h.store.InsertUser(r.Context(), user)
	if err != nil {
		log.Printf("insert user failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database insert failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, result)
}

// GetUserByEmail returns the user document, or null when absent.
func (h *Handler) GetUserByEmail(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	user, err := h.store.FindUserByEmail(r.Context(), email)
	if err != nil {
		log.Printf("find user %s failed: %v", email, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database query failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, user)
}

// SaveUserOnLogin handles the social-login upsert. An existing user is
// returned exactly as stored; the posted profile is NOT applied to it.
// Only a first-time login writes anything.
func (h *Handler) SaveUserOnLogin(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	var user models.User
	if err := utils.ParseJSON(r, &user); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	existing, err := h.store.FindUserByEmail(r.Context(), email)
	if err != nil {
		log.Printf("find user %s failed: %v", email, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database query failed")
		return
	}
	if existing != nil {
		log.Printf("user found: %s", email)
		utils.RespondWithJSON(w, http.StatusOK, existing)
		return
	}

	result, err := h.store.UpsertUserByEmail(r.Context(), email, user)
	if err != nil {
		log.Printf("upsert user %s failed: %v", email, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database update failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, result)
}

// ListEmployees returns the calling admin's team.
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	adminEmail := middleware.EmailFromContext(r.Context())

	users, err := h.store.ListEmployees(r.Context(), adminEmail)
	if err != nil {
		log.Printf("list employees for %s failed: %v", adminEmail, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database query failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, users)
}

type teamUpdateRequest struct {
	Role       string `json:"role"`
	AdminEmail string `json:"adminEmail"`
}

// UpdateUserTeam moves a user onto or off an admin's team by rewriting
// role and adminEmail.
func (h *Handler) UpdateUserTeam(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var body teamUpdateRequest
	if err := utils.ParseJSON(r, &body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	result, err := h.store.SetUserTeam(r.Context(), id, body.Role, body.AdminEmail)
	if err != nil {
		log.Printf("update user team %s failed: %v", id.Hex(), err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database update failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, result)
}
