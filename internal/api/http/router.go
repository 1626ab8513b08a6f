package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth      *AuthHandler
	Scooter   *ScooterHandler
	Client    *ClientHandler
	Rental    *RentalHandler
	Expense   *ExpenseHandler
	Dashboard *DashboardHandler
}

// NewRouter mounts the API. Login is the only open endpoint; every other
// route requires an authenticated admin.
func NewRouter(h Handlers, auth *AuthMiddleware) http.Handler {
	r := mux.NewRouter()
	r.Use(RequestLogger)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/login", h.Auth.Login).Methods(http.MethodPost)

	admin := api.NewRoute().Subrouter()
	admin.Use(auth.RequireAdmin)

	admin.HandleFunc("/scooters", h.Scooter.List).Methods(http.MethodGet)
	admin.HandleFunc("/scooters/{id:[0-9]+}", h.Scooter.Get).Methods(http.MethodGet)
	admin.HandleFunc("/scooters/{id:[0-9]+}", h.Scooter.Update).Methods(http.MethodPut)
	admin.HandleFunc("/scooters/{id:[0-9]+}/status", h.Scooter.UpdateStatus).Methods(http.MethodPatch)
	admin.HandleFunc("/scooters/{id:[0-9]+}/maintenance", h.Scooter.AdjustMaintenance).Methods(http.MethodPatch)
	admin.HandleFunc("/scooters/{id:[0-9]+}", h.Scooter.Delete).Methods(http.MethodDelete)

	admin.HandleFunc("/clients", h.Client.List).Methods(http.MethodGet)
	admin.HandleFunc("/clients", h.Client.Create).Methods(http.MethodPost)
	admin.HandleFunc("/clients/{id:[0-9]+}", h.Client.Update).Methods(http.MethodPut)
	admin.HandleFunc("/clients/{id:[0-9]+}", h.Client.Delete).Methods(http.MethodDelete)

	admin.HandleFunc("/rentals", h.Rental.List).Methods(http.MethodGet)
	admin.HandleFunc("/rentals", h.Rental.Create).Methods(http.MethodPost)
	admin.HandleFunc("/rentals/overdue", h.Rental.ListOverdue).Methods(http.MethodGet)
	admin.HandleFunc("/rentals/{id:[0-9]+}", h.Rental.Get).Methods(http.MethodGet)
	admin.HandleFunc("/rentals/{id:[0-9]+}", h.Rental.Update).Methods(http.MethodPut)
	admin.HandleFunc("/rentals/{id:[0-9]+}/complete", h.Rental.Complete).Methods(http.MethodPost)
	admin.HandleFunc("/rentals/{id:[0-9]+}/revert", h.Rental.Revert).Methods(http.MethodPost)
	admin.HandleFunc("/rentals/{id:[0-9]+}", h.Rental.Delete).Methods(http.MethodDelete)

	admin.HandleFunc("/expenses", h.Expense.List).Methods(http.MethodGet)
	admin.HandleFunc("/expenses", h.Expense.Create).Methods(http.MethodPost)
	admin.HandleFunc("/expenses/{id:[0-9]+}", h.Expense.Update).Methods(http.MethodPut)
	admin.HandleFunc("/expenses/{id:[0-9]+}", h.Expense.Delete).Methods(http.MethodDelete)

	admin.HandleFunc("/dashboard/stats", h.Dashboard.Stats).Methods(http.MethodGet)
	admin.HandleFunc("/dashboard/analytics", h.Dashboard.Analytics).Methods(http.MethodGet)

	return r
}
