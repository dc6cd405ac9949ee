package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/programarreza/TaskNestle-Server/handlers"
	"github.com/programarreza/TaskNestle-Server/middleware"
	"github.com/programarreza/TaskNestle-Server/store"
	"github.com/programarreza/TaskNestle-Server/websocket"
)

// HTTP method constants for better maintainability
var (
	MethodsGetOnly    = []string{"GET", "OPTIONS"}
	MethodsPostOnly   = []string{"POST", "OPTIONS"}
	MethodsPutOnly    = []string{"PUT", "OPTIONS"}
	MethodsPatchOnly  = []string{"PATCH", "OPTIONS"}
	MethodsDeleteOnly = []string{"DELETE", "OPTIONS"}
)

// RegisterRoutes wires the three access tiers: public, token-holders,
// and admins (token plus stored admin role). Guards compose per route
// so each chain is visible at the registration site.
func RegisterRoutes(r *mux.Router, h *handlers.Handler, s store.Store, client *mongo.Client, hub *websocket.Hub) {
	authed := func(fn http.HandlerFunc) http.Handler {
		return middleware.Auth(fn)
	}
	adminOnly := func(fn http.HandlerFunc) http.Handler {
		return middleware.Auth(middleware.RequireAdmin(s)(fn))
	}

	// ====================
	// PUBLIC ROUTES
	// ====================
	r.HandleFunc("/", handlers.Home).Methods(MethodsGetOnly...)
	r.HandleFunc("/health", handlers.HealthCheck(client)).Methods(MethodsGetOnly...)
	r.HandleFunc("/jwt", h.IssueToken).Methods(MethodsPostOnly...)

	r.HandleFunc("/users", h.CreateUser).Methods(MethodsPostOnly...)
	r.HandleFunc("/users/{email}", h.GetUserByEmail).Methods(MethodsGetOnly...)
	r.HandleFunc("/users/{email}", h.SaveUserOnLogin).Methods(MethodsPutOnly...)

	r.HandleFunc("/asset-update/{id}", h.UpdateAsset).Methods(MethodsPatchOnly...)

	r.HandleFunc("/create-payment-intent", h.CreatePaymentIntent).Methods(MethodsPostOnly...)
	r.HandleFunc("/payments", h.RecordPayment).Methods(MethodsPostOnly...)

	// Live request feed for admin dashboards
	r.HandleFunc("/ws/request-updates", hub.ServeWS)

	// ====================
	// AUTHENTICATED ROUTES (valid bearer token)
	// ====================
	r.Handle("/assets", authed(h.ListAssets)).Methods(MethodsGetOnly...)

	r.Handle("/asset-request", authed(h.CreateCustomRequest)).Methods(MethodsPostOnly...)
	r.Handle("/custom-assets/{email}", authed(h.ListCustomRequests)).Methods(MethodsGetOnly...)
	r.Handle("/custom-asset/{id}", authed(h.GetCustomRequest)).Methods(MethodsGetOnly...)
	r.Handle("/custom-asset-update/{id}", authed(h.UpdateCustomRequest)).Methods(MethodsPatchOnly...)

	r.Handle("/request-asset", authed(h.RequestAsset)).Methods(MethodsPostOnly...)
	r.Handle("/requested-assets/{email}", authed(h.ListRequestedAssets)).Methods(MethodsGetOnly...)

	r.Handle("/packages", authed(h.ListPackages)).Methods(MethodsGetOnly...)
	r.Handle("/singePackage/{id}", authed(h.GetPackage)).Methods(MethodsGetOnly...)
	r.Handle("/payments/{email}", authed(h.ListPayments)).Methods(MethodsGetOnly...)

	// ====================
	// ADMIN ROUTES (valid token AND stored role == admin)
	// ====================
	r.Handle("/users", adminOnly(h.ListEmployees)).Methods(MethodsGetOnly...)
	r.Handle("/user-update/{id}", adminOnly(h.UpdateUserTeam)).Methods(MethodsPatchOnly...)

	r.Handle("/add-product", adminOnly(h.AddProduct)).Methods(MethodsPostOnly...)
	r.Handle("/asset/{id}", adminOnly(h.DeleteAsset)).Methods(MethodsDeleteOnly...)

	r.Handle("/all-requests/{adminEmail}", adminOnly(h.ListAllRequests)).Methods(MethodsGetOnly...)
	r.Handle("/request-asset-update/{id}", adminOnly(h.UpdateRequestStatus)).Methods(MethodsPatchOnly...)

	r.Handle("/top-requested-assets/{adminEmail}", adminOnly(h.TopRequestedAssets)).Methods(MethodsGetOnly...)
	r.Handle("/pending-requests/{adminEmail}", adminOnly(h.PendingRequests)).Methods(MethodsGetOnly...)
	r.Handle("/limited-stock/{adminEmail}", adminOnly(h.LimitedStock)).Methods(MethodsGetOnly...)
	r.Handle("/product-type-count/{adminEmail}", adminOnly(h.ProductTypeCount)).Methods(MethodsGetOnly...)
}
