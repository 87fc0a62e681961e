package http

import (
	"encoding/json"
	"net/http"

	"carshowroom-backend/internal/domain"
	"carshowroom-backend/internal/logger"
	"carshowroom-backend/internal/service"
	"carshowroom-backend/internal/storage"
)

const maxUploadMemory = 32 << 20

type AuthHandler struct {
	authSvc service.AuthService
	images  *storage.ImageStore
}

func NewAuthHandler(authSvc service.AuthService, images *storage.ImageStore) *AuthHandler {
	return &AuthHandler{
		authSvc: authSvc,
		images:  images,
	}
}

// CreateAccount handles POST /createAccount. The body is multipart with an
// optional "profilePic" file.
func (h *AuthHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, domain.NewValidationError("request body must be multipart form data"))
		return
	}

	input := service.SignupInput{
		Email:            r.FormValue("email"),
		Password:         r.FormValue("password"),
		FirstName:        r.FormValue("firstName"),
		LastName:         r.FormValue("lastName"),
		UserType:         domain.UserType(r.FormValue("userType")),
		ShowroomLocation: r.FormValue("showroomLocation"),
		ShowroomName:     r.FormValue("showroomName"),
	}

	if file, header, err := r.FormFile("profilePic"); err == nil {
		url, err := h.images.Save(file, header, storage.CategoryUserPFP)
		if err != nil {
			writeError(w, domain.NewValidationError(err.Error()))
			return
		}
		input.ProfilePic = url
	}

	user, token, err := h.authSvc.Signup(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	logger.Info("account created", "userId", user.ID, "userType", user.UserType)
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Account has been set up successfully, now you can login!",
		"user":    user,
		"token":   token,
	})
}

// LoginUser handles POST /loginUser with a JSON body {email, password}.
func (h *AuthHandler) LoginUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.NewValidationError("invalid request body"))
		return
	}

	user, token, err := h.authSvc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "successfully logged in!!",
		"user":    user,
		"token":   token,
	})
}
