package http

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"carshowroom-backend/internal/domain"
	"carshowroom-backend/internal/service"
	"carshowroom-backend/internal/storage"

	"github.com/gorilla/mux"
)

type CarHandler struct {
	carSvc  service.CarService
	userSvc service.UserService
	images  *storage.ImageStore
}

func NewCarHandler(carSvc service.CarService, userSvc service.UserService, images *storage.ImageStore) *CarHandler {
	return &CarHandler{
		carSvc:  carSvc,
		userSvc: userSvc,
		images:  images,
	}
}

// AddNewCar handles POST /addNewCar. Multipart with 1-4 "carImages" files.
func (h *CarHandler) AddNewCar(w http.ResponseWriter, r *http.Request) {
	claims, ok := mustClaims(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, domain.NewValidationError("request body must be multipart form data"))
		return
	}

	files := r.MultipartForm.File["carImages"]
	if len(files) > domain.MaxCarImages {
		writeMessage(w, http.StatusBadRequest, "You can upload maximum 4 images")
		return
	}

	images, err := h.saveCarImages(files)
	if err != nil {
		writeError(w, domain.NewValidationError(err.Error()))
		return
	}

	car := &domain.Car{
		OwnerID:         claims.UserID,
		ModelName:       r.FormValue("modelName"),
		EngineType:      domain.EngineType(r.FormValue("engineType")),
		Price:           parseInt64(r.FormValue("carPrice")),
		Color:           domain.CarColor(r.FormValue("carColor")),
		SeatingCapacity: parseInt32(r.FormValue("seatingCapacity")),
		Mileage:         parseInt32(r.FormValue("carMileage")),
		Transmission:    domain.Transmission(r.FormValue("carTransmission")),
		Images:          images,
		Description:     r.FormValue("carDescription"),
		CarsCount:       parseInt32(r.FormValue("carsCount")),
	}
	if emi := parseInt64(r.FormValue("emiCount")); emi > 0 {
		car.EMIPerMonth = &emi
	}

	if err := h.carSvc.AddCar(r.Context(), car); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "This car model has been saved successfully!!",
		"car":     car,
	})
}

// ChangeCarDetails handles PUT /changeCarDetails. Multipart; replacement
// "carImages" files are optional, absent fields are left unchanged.
func (h *CarHandler) ChangeCarDetails(w http.ResponseWriter, r *http.Request) {
	claims, ok := mustClaims(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, domain.NewValidationError("request body must be multipart form data"))
		return
	}

	files := r.MultipartForm.File["carImages"]
	if len(files) > domain.MaxCarImages {
		writeMessage(w, http.StatusBadRequest, "You can upload maximum 4 images")
		return
	}

	images, err := h.saveCarImages(files)
	if err != nil {
		writeError(w, domain.NewValidationError(err.Error()))
		return
	}

	input := service.CarUpdateInput{
		CarID:       parseInt32(r.FormValue("carId")),
		Description: r.FormValue("carDescription"),
		Images:      images,
	}
	if v := r.FormValue("carPrice"); v != "" {
		price := parseInt64(v)
		input.Price = &price
	}
	if v := r.FormValue("carCount"); v != "" {
		count := parseInt32(v)
		input.CarsCount = &count
	}

	car, err := h.carSvc.UpdateCar(r.Context(), claims.UserID, input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "This car details has been updated successfully, we will reload page once to ensure the changes!!",
		"car":     car,
	})
}

// DeleteCar handles DELETE /deleteCar/{id}.
func (h *CarHandler) DeleteCar(w http.ResponseWriter, r *http.Request) {
	claims, ok := mustClaims(w, r)
	if !ok {
		return
	}

	carID := parseInt32(mux.Vars(r)["id"])
	if err := h.carSvc.DeleteCar(r.Context(), claims.UserID, carID); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusOK,
		"The car has been deleted successfully and it's all data will be erased. We will refresh the page once to ensure the changes!!")
}

// GetMineCars handles GET /getMineCars for the authenticated owner.
func (h *CarHandler) GetMineCars(w http.ResponseWriter, r *http.Request) {
	claims, ok := mustClaims(w, r)
	if !ok {
		return
	}

	cars, err := h.carSvc.ListMyCars(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	if len(cars) == 0 {
		writeMessage(w, http.StatusNotFound, "No cars found related with your showroom!!")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"cars": cars})
}

// GetAllShowrooms handles GET /getAllShowrooms (public).
func (h *CarHandler) GetAllShowrooms(w http.ResponseWriter, r *http.Request) {
	showrooms, err := h.carSvc.ListShowrooms(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"owners": showrooms})
}

// SearchShowrooms handles GET /search/showrooms/{searchTerm} (public).
func (h *CarHandler) SearchShowrooms(w http.ResponseWriter, r *http.Request) {
	showrooms, err := h.carSvc.SearchShowrooms(r.Context(), mux.Vars(r)["searchTerm"])
	if err != nil {
		writeError(w, err)
		return
	}
	if len(showrooms) == 0 {
		writeMessage(w, http.StatusNotFound, "No showroom founded for this location!!")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"showRooms": showrooms})
}

// FetchBookingCarDetails handles GET /owner/fetchPBcardetails?carId=N.
func (h *CarHandler) FetchBookingCarDetails(w http.ResponseWriter, r *http.Request) {
	car, err := h.carSvc.GetCar(r.Context(), parseInt32(r.URL.Query().Get("carId")))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"car": car})
}

// FetchBookingUserDetails handles GET /owner/fetchPBuserdetails?id=N.
func (h *CarHandler) FetchBookingUserDetails(w http.ResponseWriter, r *http.Request) {
	user, err := h.userSvc.GetUser(r.Context(), parseInt32(r.URL.Query().Get("id")))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

func (h *CarHandler) saveCarImages(files []*multipart.FileHeader) ([]string, error) {
	images := make([]string, 0, len(files))
	for _, header := range files {
		file, err := header.Open()
		if err != nil {
			return nil, err
		}
		url, err := h.images.Save(file, header, storage.CategoryCarImage)
		if err != nil {
			return nil, err
		}
		images = append(images, url)
	}
	return images, nil
}

func parseInt32(s string) int32 {
	v, _ := strconv.ParseInt(s, 10, 32)
	return int32(v)
}

func parseInt64(s string) int64 {
	v, _ := strconv.ParseInt(s, 10, 64)
	return v
}
