// handlers/auth_handler.go
package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/programarreza/TaskNestle-Server/utils"
)

type tokenRequest struct {
	Email string `json:"email"`
}

// IssueToken signs a short-lived bearer token for an email. Identity is
// established by the external login provider on the client side; this
// endpoint only mints the API credential.
func (h *Handler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var body tokenRequest
	if err := utils.ParseJSON(r, &body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	body.Email = strings.TrimSpace(body.Email)
	if body.Email == "" || !strings.Contains(body.Email, "@") {
		utils.RespondWithError(w, http.StatusBadRequest, "Valid email required")
		return
	}

	token, err := utils.GenerateJWT(body.Email)
	if err != nil {
		log.Printf("token generation failed for %s: %v", body.Email, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "token generation failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"token": token})
}
