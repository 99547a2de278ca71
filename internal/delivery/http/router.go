package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "symposium/docs"
	"symposium/internal/delivery/http/controllers"
	"symposium/internal/delivery/http/middleware"
	"symposium/internal/domain"
)

// RouterDeps carries everything the router needs to wire routes.
type RouterDeps struct {
	Logger         *slog.Logger
	TokenVerifier  domain.TokenVerifier
	AllowedOrigins []string

	Auth         *controllers.AuthController
	Participants *controllers.ParticipantController
	Catalog      *controllers.CatalogController
	Schedule     *controllers.ScheduleController
	Stats        *controllers.StatsController
}

// NewRouter initializes the HTTP router with all application routes.
// Mutating routes require a Bearer token; reads are public.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()
	authed := middleware.RequireAuth(deps.TokenVerifier)

	// Auth
	mux.HandleFunc("POST /auth/signup", deps.Auth.SignUp)
	mux.HandleFunc("POST /auth/login", deps.Auth.Login)

	// Participants
	mux.HandleFunc("POST /participants", authed(deps.Participants.Register))
	mux.HandleFunc("PUT /participants/{participantID}", authed(deps.Participants.Update))
	mux.HandleFunc("GET /participants", deps.Participants.List)
	mux.HandleFunc("GET /participants/role/{role}", deps.Participants.ByRole)
	mux.HandleFunc("GET /participants/country/{country}", deps.Participants.ByCountry)

	// Catalog
	mux.HandleFunc("POST /topics", authed(deps.Catalog.CreateTopic))
	mux.HandleFunc("GET /topics", deps.Catalog.ListTopics)
	mux.HandleFunc("POST /hotels", authed(deps.Catalog.CreateHotel))
	mux.HandleFunc("GET /hotels", deps.Catalog.ListHotels)
	mux.HandleFunc("POST /halls", authed(deps.Catalog.CreateHall))
	mux.HandleFunc("GET /halls", deps.Catalog.ListHalls)

	// Presentations
	mux.HandleFunc("POST /presentations", authed(deps.Schedule.Schedule))
	mux.HandleFunc("GET /presentations", deps.Schedule.List)
	mux.HandleFunc("GET /presentations/{presentationID}", deps.Schedule.GetByID)
	mux.HandleFunc("DELETE /presentations/{presentationID}", authed(deps.Schedule.Delete))

	// Statistics
	mux.HandleFunc("GET /stats/top-speakers", deps.Stats.TopSpeakers)
	mux.HandleFunc("GET /halls/{hallID}/presentations/count", deps.Stats.CountByHall)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	var handler http.Handler = mux
	handler = middleware.CORS(deps.AllowedOrigins, handler)
	handler = middleware.LoggingMiddleware(deps.Logger, handler)
	handler = middleware.RequestID(handler)
	return handler
}
