package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/jesse-projects/onsite-crash-champions/config"
	"github.com/jesse-projects/onsite-crash-champions/middleware"
	"github.com/jesse-projects/onsite-crash-champions/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies an account manager's credentials and issues a session token.
// Unknown email and wrong password produce the same generic message so the
// endpoint cannot be used to enumerate accounts.
func Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Email and password required")
		return
	}

	var manager models.AccountManager
	err := config.DB.Where("email = ? AND is_active = ?", req.Email, true).First(&manager).Error
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	validPassword := config.DemoPassword != "" && req.Password == config.DemoPassword
	if !validPassword {
		validPassword = bcrypt.CompareHashAndPassword(
			[]byte(manager.PasswordHash), []byte(req.Password)) == nil
	}
	if !validPassword {
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := middleware.GenerateToken(manager.ID.String(), manager.Email, manager.FullName())
	if err != nil {
		config.Log.Error("Failed to sign session token", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user": map[string]string{
			"id":        manager.ID.String(),
			"email":     manager.Email,
			"firstName": manager.FirstName,
			"lastName":  manager.LastName,
		},
	})
}
