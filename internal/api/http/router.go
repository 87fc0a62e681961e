package http

import (
	"net/http"

	"carshowroom-backend/internal/storage"

	"github.com/gorilla/mux"
)

// NewRouter wires every endpoint. Paths and methods are the wire contract
// the web client depends on.
func NewRouter(
	authHandler *AuthHandler,
	userHandler *UserHandler,
	carHandler *CarHandler,
	bookingHandler *BookingHandler,
	visitHandler *VisitHandler,
	authMiddleware *AuthMiddleware,
	images *storage.ImageStore,
) *mux.Router {
	r := mux.NewRouter()

	// Public endpoints.
	r.HandleFunc("/createAccount", authHandler.CreateAccount).Methods(http.MethodPost)
	r.HandleFunc("/loginUser", authHandler.LoginUser).Methods(http.MethodPost)
	r.HandleFunc("/getAllShowrooms", carHandler.GetAllShowrooms).Methods(http.MethodGet)
	r.HandleFunc("/search/showrooms/{searchTerm}", carHandler.SearchShowrooms).Methods(http.MethodGet)
	r.HandleFunc("/owner/fetchPBcardetails", carHandler.FetchBookingCarDetails).Methods(http.MethodGet)
	r.HandleFunc("/owner/fetchPBuserdetails", carHandler.FetchBookingUserDetails).Methods(http.MethodGet)

	// Protected endpoints.
	protected := r.NewRoute().Subrouter()
	protected.Use(authMiddleware.Handler)

	protected.HandleFunc("/completeOwnerDetails", userHandler.CompleteOwnerDetails).Methods(http.MethodPut)
	protected.HandleFunc("/changeUserProfileDetails", userHandler.ChangeUserProfileDetails).Methods(http.MethodPut)

	protected.HandleFunc("/addNewCar", carHandler.AddNewCar).Methods(http.MethodPost)
	protected.HandleFunc("/changeCarDetails", carHandler.ChangeCarDetails).Methods(http.MethodPut)
	protected.HandleFunc("/deleteCar/{id}", carHandler.DeleteCar).Methods(http.MethodDelete)
	protected.HandleFunc("/getMineCars", carHandler.GetMineCars).Methods(http.MethodGet)

	protected.HandleFunc("/customers/saveCarBooking", bookingHandler.SaveCarBooking).Methods(http.MethodPost)
	protected.HandleFunc("/customers/recentlyVisitedShowrooms", visitHandler.NewVisit).Methods(http.MethodPost)
	protected.HandleFunc("/customers/allVisitedShowrooms", visitHandler.AllVisits).Methods(http.MethodGet)
	protected.HandleFunc("/customers/removeVisitedShowroom", visitHandler.RemoveVisit).Methods(http.MethodDelete)

	protected.HandleFunc("/owner/acceptCustomerPB", bookingHandler.AcceptBooking).Methods(http.MethodPut)
	protected.HandleFunc("/owner/rejectCustomerPB", bookingHandler.RejectBooking).Methods(http.MethodPut)
	protected.HandleFunc("/owner/fetchAllPendingAppointmentsForOwner", bookingHandler.FetchPendingBookingsForOwner).Methods(http.MethodGet)
	protected.HandleFunc("/owner/fetchCompletedBookingsForOwner", bookingHandler.FetchCompletedBookingsForOwner).Methods(http.MethodGet)
	protected.HandleFunc("/owner/fetchPendingcarBookings", bookingHandler.FetchCarPendingBookings).Methods(http.MethodGet)
	protected.HandleFunc("/owner/fetchPendingBookingsForOtherCars", bookingHandler.FetchPendingBookingsForOtherCars).Methods(http.MethodGet)

	protected.HandleFunc("/customer/fetchPendingBookingsForCustomer", bookingHandler.FetchPendingBookingsForCustomer).Methods(http.MethodGet)
	protected.HandleFunc("/customer/fetchAcceptedBookingsForCustomer", bookingHandler.FetchAcceptedBookingsForCustomer).Methods(http.MethodGet)
	protected.HandleFunc("/customer/fetchRejectedBookingsForCustomer", bookingHandler.FetchRejectedBookingsForCustomer).Methods(http.MethodGet)

	// Uploaded images are served back under fixed URL prefixes.
	for _, category := range []string{storage.CategoryUserPFP, storage.CategoryShowroomPFP, storage.CategoryCarImage} {
		prefix := "/" + category + "/"
		r.PathPrefix(prefix).Handler(
			http.StripPrefix(prefix, http.FileServer(http.Dir(images.Dir(category)))))
	}

	return r
}
