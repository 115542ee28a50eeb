package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"se-server/auth"
	"se-server/server/handlers"
)

type Router struct {
	authHandler      *handlers.AuthHandler
	projectHandler   *handlers.ProjectHandler
	forecastHandler  *handlers.ForecastHandler
	cableHandler     *handlers.CableHandler
	inferenceHandler *handlers.InferenceHandler
	tokens           *auth.TokenManager
	router           *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	authHandler *handlers.AuthHandler,
	projectHandler *handlers.ProjectHandler,
	forecastHandler *handlers.ForecastHandler,
	cableHandler *handlers.CableHandler,
	inferenceHandler *handlers.InferenceHandler,
	tokens *auth.TokenManager,
	router *mux.Router) *Router {
	return &Router{
		authHandler:      authHandler,
		projectHandler:   projectHandler,
		forecastHandler:  forecastHandler,
		cableHandler:     cableHandler,
		inferenceHandler: inferenceHandler,
		tokens:           tokens,
		router:           router,
	}
}

func (r *Router) RegisterRoutes() {
	// Public routes
	r.router.HandleFunc("/ping", ping).Methods("GET")
	r.router.HandleFunc("/v1/auth/register", r.authHandler.Register).Methods("POST")
	r.router.HandleFunc("/v1/auth/token", r.authHandler.Token).Methods("POST")

	// Everything below requires a bearer token
	r.protected("/v1/auth/me", r.authHandler.Me, "GET")

	r.protected("/v1/projects", r.projectHandler.Create, "POST")
	r.protected("/v1/projects", r.projectHandler.List, "GET")
	r.protected("/v1/projects/{id}", r.projectHandler.Get, "GET")
	r.protected("/v1/projects/{id}", r.projectHandler.Update, "PUT")
	r.protected("/v1/projects/{id}", r.projectHandler.Delete, "DELETE")
	r.protected("/v1/projects/{id}/forecasts", r.forecastHandler.ListByProject, "GET")

	r.protected("/v1/forecasts/upload", r.forecastHandler.Upload, "POST")
	r.protected("/v1/forecasts/sample", r.forecastHandler.Sample, "POST")
	r.protected("/v1/forecasts/run", r.forecastHandler.Run, "POST")
	r.protected("/v1/forecasts/{id}", r.forecastHandler.Get, "GET")
	r.protected("/v1/forecasts/{id}", r.forecastHandler.Delete, "DELETE")
	r.protected("/v1/forecasts/{id}/export", r.forecastHandler.Export, "GET")
	r.protected("/v1/forecasts/{id}/chart", r.forecastHandler.Chart, "GET")

	r.protected("/v1/cable/size", r.cableHandler.Size, "POST")
	r.protected("/v1/cable/sizes", r.cableHandler.Sizes, "GET")

	r.protected("/v1/faults/classify", r.inferenceHandler.ClassifyFault, "POST")
	r.protected("/v1/maintenance/score", r.inferenceHandler.ScoreMaintenance, "POST")
}

func (r *Router) protected(path string, handler http.HandlerFunc, method string) {
	r.router.HandleFunc(path, handlers.RequireAuth(r.tokens, handler)).Methods(method)
}

// ping handles GET /ping
func ping(w http.ResponseWriter, _ *http.Request) {
	log.Println("Pinging server")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "pong"})
}
