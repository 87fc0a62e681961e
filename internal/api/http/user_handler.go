package http

import (
	"net/http"

	"carshowroom-backend/internal/domain"
	"carshowroom-backend/internal/service"
	"carshowroom-backend/internal/storage"
)

type UserHandler struct {
	userSvc service.UserService
	images  *storage.ImageStore
}

func NewUserHandler(userSvc service.UserService, images *storage.ImageStore) *UserHandler {
	return &UserHandler{
		userSvc: userSvc,
		images:  images,
	}
}

// CompleteOwnerDetails handles PUT /completeOwnerDetails. Multipart with an
// optional "showRoomPFP" cover image.
func (h *UserHandler) CompleteOwnerDetails(w http.ResponseWriter, r *http.Request) {
	claims, ok := mustClaims(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, domain.NewValidationError("request body must be multipart form data"))
		return
	}

	coverPic := ""
	if file, header, err := r.FormFile("showRoomPFP"); err == nil {
		url, err := h.images.Save(file, header, storage.CategoryShowroomPFP)
		if err != nil {
			writeError(w, domain.NewValidationError(err.Error()))
			return
		}
		coverPic = url
	}

	user, err := h.userSvc.CompleteOwnerDetails(r.Context(), claims.UserID,
		r.FormValue("location"), r.FormValue("companyName"), coverPic)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Your details has been saved successfully!!",
		"user":    user,
	})
}

// ChangeUserProfileDetails handles PUT /changeUserProfileDetails. Multipart
// with optional "newProfilePic" and "newShowroomCover" files; the current
// password must be supplied as "confirmPassword".
func (h *UserHandler) ChangeUserProfileDetails(w http.ResponseWriter, r *http.Request) {
	claims, ok := mustClaims(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, domain.NewValidationError("request body must be multipart form data"))
		return
	}

	input := service.ProfileUpdateInput{
		FirstName:       r.FormValue("firstName"),
		LastName:        r.FormValue("lastName"),
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("confirmPassword"),
		NewLocation:     r.FormValue("newLocation"),
	}

	if file, header, err := r.FormFile("newProfilePic"); err == nil {
		url, err := h.images.Save(file, header, storage.CategoryUserPFP)
		if err != nil {
			writeError(w, domain.NewValidationError(err.Error()))
			return
		}
		input.NewProfilePic = url
	}
	if file, header, err := r.FormFile("newShowroomCover"); err == nil {
		url, err := h.images.Save(file, header, storage.CategoryShowroomPFP)
		if err != nil {
			writeError(w, domain.NewValidationError(err.Error()))
			return
		}
		input.NewShowroomPic = url
	}

	user, err := h.userSvc.ChangeProfileDetails(r.Context(), claims.UserID, input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "The details have been saved successfully, We will reload once to display new changes!!",
		"user":    user,
	})
}
