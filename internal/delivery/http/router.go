package http

import (
	"net/http"

	"kist-clinic-backend/internal/delivery/http/handler"
	"kist-clinic-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	userHandler          *handler.UserHandler
	appointmentHandler   *handler.AppointmentHandler
	labTestHandler       *handler.LaboratoryTestHandler
	pharmacyOrderHandler *handler.PharmacyOrderHandler
	medicineHandler      *handler.MedicineHandler
	medicalRecordHandler *handler.MedicalRecordHandler
	auditLogHandler      *handler.AuditLogHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
	mediaRoot            string
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	appointmentHandler *handler.AppointmentHandler,
	labTestHandler *handler.LaboratoryTestHandler,
	pharmacyOrderHandler *handler.PharmacyOrderHandler,
	medicineHandler *handler.MedicineHandler,
	medicalRecordHandler *handler.MedicalRecordHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	mediaRoot string,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		userHandler:          userHandler,
		appointmentHandler:   appointmentHandler,
		labTestHandler:       labTestHandler,
		pharmacyOrderHandler: pharmacyOrderHandler,
		medicineHandler:      medicineHandler,
		medicalRecordHandler: medicalRecordHandler,
		auditLogHandler:      auditLogHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
		mediaRoot:            mediaRoot,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh", r.authHandler.RefreshToken).Methods(http.MethodPost)
	auth.HandleFunc("/password-reset", r.authHandler.RequestPasswordReset).Methods(http.MethodPost)
	auth.HandleFunc("/password-reset/confirm", r.authHandler.ConfirmPasswordReset).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)

	// Medicine catalog (public reads)
	api.HandleFunc("/medicines", r.medicineHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/medicines/categories", r.medicineHandler.Categories).Methods(http.MethodGet)
	api.HandleFunc("/medicines/{id}", r.medicineHandler.Get).Methods(http.MethodGet)

	// Authenticated clinical resources
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	protected.HandleFunc("/users", r.userHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/users/{id}", r.userHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/users/{id}", r.userHandler.Update).Methods(http.MethodPut)

	protected.HandleFunc("/appointments", r.appointmentHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", r.appointmentHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.Delete).Methods(http.MethodDelete)

	protected.HandleFunc("/laboratory-tests", r.labTestHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/laboratory-tests", r.labTestHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/laboratory-tests/{id}", r.labTestHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/laboratory-tests/{id}", r.labTestHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/laboratory-tests/{id}", r.labTestHandler.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/laboratory-tests/{id}/cancel", r.labTestHandler.Cancel).Methods(http.MethodPatch)

	protected.HandleFunc("/pharmacy-orders", r.pharmacyOrderHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/pharmacy-orders", r.pharmacyOrderHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/pharmacy-orders/{id}", r.pharmacyOrderHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/pharmacy-orders/{id}", r.pharmacyOrderHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/pharmacy-orders/{id}", r.pharmacyOrderHandler.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/pharmacy-orders/{id}/cancel", r.pharmacyOrderHandler.Cancel).Methods(http.MethodPost)

	protected.HandleFunc("/medical-records", r.medicalRecordHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/medical-records", r.medicalRecordHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/medical-records/{id}", r.medicalRecordHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/medical-records/{id}", r.medicalRecordHandler.Delete).Methods(http.MethodDelete)
	// Alias for clients that cannot send DELETE.
	protected.HandleFunc("/medical-records/{id}/delete_record", r.medicalRecordHandler.Delete).Methods(http.MethodPost)

	// Staff-only routes
	staff := api.PathPrefix("").Subrouter()
	staff.Use(r.authMiddleware.Authenticate)
	staff.Use(middleware.RequireStaff)

	staff.HandleFunc("/users/{id}", r.userHandler.Delete).Methods(http.MethodDelete)
	staff.HandleFunc("/appointments/{id}/update_status", r.appointmentHandler.UpdateStatus).Methods(http.MethodPost)
	staff.HandleFunc("/laboratory-tests/{id}/update_status", r.labTestHandler.UpdateStatus).Methods(http.MethodPost)
	staff.HandleFunc("/pharmacy-orders/{id}/update_status", r.pharmacyOrderHandler.UpdateStatus).Methods(http.MethodPost)
	staff.HandleFunc("/medicines", r.medicineHandler.Create).Methods(http.MethodPost)
	staff.HandleFunc("/medicines/{id}", r.medicineHandler.Update).Methods(http.MethodPut)
	staff.HandleFunc("/medicines/{id}", r.medicineHandler.Delete).Methods(http.MethodDelete)
	staff.HandleFunc("/audit-logs", r.auditLogHandler.List).Methods(http.MethodGet)

	// Uploaded blobs
	r.router.PathPrefix("/media/").Handler(
		http.StripPrefix("/media/", http.FileServer(http.Dir(r.mediaRoot))))

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
