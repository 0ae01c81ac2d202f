package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jesse-projects/onsite-crash-champions/config"
	"github.com/jesse-projects/onsite-crash-champions/handlers"
	"github.com/jesse-projects/onsite-crash-champions/middleware"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	// =====================================================
	// Public Routes (no authentication)
	// =====================================================
	r.HandleFunc("/api/health", handlers.Health).Methods("GET")
	r.HandleFunc("/api/login", handlers.Login).Methods("POST")
	r.HandleFunc("/api/checklist/{locationId}", handlers.GetChecklist).Methods("GET")
	r.HandleFunc("/api/checklist/{locationId}/submit", handlers.SubmitChecklist).Methods("POST")
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(config.UploadDir))),
	)

	// =====================================================
	// Protected API Routes (require JWT authentication)
	// =====================================================
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.JWTMiddleware)

	api.HandleFunc("/dashboard", handlers.Dashboard).Methods("GET")
	api.HandleFunc("/dashboard/export", handlers.ExportSubmissions).Methods("GET")
	api.HandleFunc("/submissions/{submissionId}", handlers.GetSubmission).Methods("GET")
	api.HandleFunc("/locations", handlers.GetLocations).Methods("GET")
	api.HandleFunc("/vendors", handlers.GetVendors).Methods("GET")
	api.HandleFunc("/ivrs", handlers.GetIVRs).Methods("GET")
	api.HandleFunc("/debug", handlers.Debug).Methods("GET")

	// Unmatched routes fall through to a JSON 404
	r.NotFoundHandler = http.HandlerFunc(notFound)

	return r
}

func notFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"error":"Route not found"}`))
}
