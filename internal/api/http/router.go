package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"rentadesk-backend/internal/security"
)

// Handlers bundles the HTTP handlers wired into the router.
type Handlers struct {
	Reservation *ReservationHandler
	Car         *CarHandler
	Customer    *CustomerHandler
	Part        *PartHandler
}

// NewRouter builds the API router. All routes live under /api/v1 and run
// through the logging and optional-auth middleware.
func NewRouter(h Handlers, tm security.TokenManager) *mux.Router {
	router := mux.NewRouter()

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(Logging)
	api.Use(Auth(tm))

	// Reservations
	api.HandleFunc("/reservations", h.Reservation.Create).Methods(http.MethodPost)
	api.HandleFunc("/reservations", h.Reservation.List).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{id}", h.Reservation.Get).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{id}/cancel", h.Reservation.Cancel).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{id}/checkout", h.Reservation.RegisterCheckout).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{id}/checkin", h.Reservation.RegisterCheckin).Methods(http.MethodPost)

	// Cars
	api.HandleFunc("/cars", h.Car.Create).Methods(http.MethodPost)
	api.HandleFunc("/cars", h.Car.List).Methods(http.MethodGet)
	api.HandleFunc("/cars/{id}", h.Car.Get).Methods(http.MethodGet)
	api.HandleFunc("/cars/{id}", h.Car.Update).Methods(http.MethodPut)
	api.HandleFunc("/cars/{id}", h.Car.Delete).Methods(http.MethodDelete)

	// Customers
	api.HandleFunc("/customers", h.Customer.Create).Methods(http.MethodPost)
	api.HandleFunc("/customers", h.Customer.List).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id}", h.Customer.Get).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id}", h.Customer.Update).Methods(http.MethodPut)
	api.HandleFunc("/customers/{id}", h.Customer.Delete).Methods(http.MethodDelete)

	// Parts
	api.HandleFunc("/parts", h.Part.Create).Methods(http.MethodPost)
	api.HandleFunc("/parts", h.Part.List).Methods(http.MethodGet)
	api.HandleFunc("/parts/{id}", h.Part.Get).Methods(http.MethodGet)
	api.HandleFunc("/parts/{id}", h.Part.Update).Methods(http.MethodPut)
	api.HandleFunc("/parts/{id}", h.Part.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/parts/{id}/adjust", h.Part.AdjustStock).Methods(http.MethodPost)

	// Health check stays outside the auth chain.
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	return router
}
