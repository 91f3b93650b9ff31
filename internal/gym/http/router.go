package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ironloft/gymd/internal/gym/service"
	"github.com/ironloft/gymd/internal/gym/store"
	"github.com/ironloft/gymd/pkg/httpx"
	"github.com/ironloft/gymd/pkg/jwtx"
	"github.com/ironloft/gymd/pkg/slogx"

	_ "github.com/ironloft/gymd/api/gym" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store               store.Store
	AuthService         *service.AuthService
	TokenService        *service.TokenService
	UserService         *service.UserService
	CompanyService      *service.CompanyService
	ExerciseService     *service.ExerciseService
	WorkoutSheetService *service.WorkoutSheetService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerCompanies()
	r.registerExercises()
	r.registerWorkoutSheets()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Gymd API
//	@version		0.1.0
//	@description	Backend for gym management: authentication with JWT access
//	@description	tokens and rotating refresh tokens, plus members, companies,
//	@description	workout sheets and exercises.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// authed wraps h with token verification and a per-user rate limit.
func (r *Router) authed(h http.Handler, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(limit),
	)
}

// adminOnly additionally gates on the admin role, checked against the store
// on every request so demotions apply immediately.
func (r *Router) adminOnly(h http.Handler, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireRole(r.AuthService, "admin"),
		httpx.RateLimitByUser(limit),
	)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService, TokenService: r.TokenService}

	// Both endpoints accept credentials, so IP-level strict limits apply.
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/refresh",
		httpx.Chain(http.HandlerFunc(h.HandleRefresh),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	r.Mux.Handle("POST /v1/users", r.adminOnly(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/users", r.authed(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("GET /v1/users/{id}", r.authed(http.HandlerFunc(h.HandleGet), httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/users/{id}", r.authed(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/users/{id}", r.adminOnly(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/users/{id}/payment", r.adminOnly(http.HandlerFunc(h.HandlePayment), httpx.ModerateLimit))
}

func (r *Router) registerCompanies() {
	h := &CompaniesHandler{CompanyService: r.CompanyService}

	r.Mux.Handle("POST /v1/companies", r.adminOnly(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/companies", r.authed(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("GET /v1/companies/{id}", r.authed(http.HandlerFunc(h.HandleGet), httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/companies/{id}", r.adminOnly(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/companies/{id}", r.adminOnly(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
}

func (r *Router) registerExercises() {
	h := &ExercisesHandler{ExerciseService: r.ExerciseService}

	r.Mux.Handle("POST /v1/exercises", r.authed(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/exercises", r.authed(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("GET /v1/exercises/{id}", r.authed(http.HandlerFunc(h.HandleGet), httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/exercises/{id}", r.authed(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/exercises/{id}", r.authed(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
}

func (r *Router) registerWorkoutSheets() {
	h := &WorkoutSheetsHandler{WorkoutSheetService: r.WorkoutSheetService}

	r.Mux.Handle("POST /v1/workout-sheets", r.authed(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/workout-sheets", r.authed(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("GET /v1/workout-sheets/{id}", r.authed(http.HandlerFunc(h.HandleGet), httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/workout-sheets/{id}", r.authed(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/workout-sheets/{id}", r.authed(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))

	r.Mux.Handle("GET /v1/workout-sheets/{id}/workouts", r.authed(http.HandlerFunc(h.HandleListWorkouts), httpx.LenientLimit))
	r.Mux.Handle("POST /v1/workout-sheets/{id}/workouts", r.authed(http.HandlerFunc(h.HandleAddWorkout), httpx.ModerateLimit))

	r.Mux.Handle("GET /v1/users/{id}/workout-sheets", r.authed(http.HandlerFunc(h.HandleListByUser), httpx.LenientLimit))
	r.Mux.Handle("POST /v1/workout-sheets/{id}/users/{userID}", r.authed(http.HandlerFunc(h.HandleLinkUser), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/workout-sheets/{id}/users/{userID}", r.authed(http.HandlerFunc(h.HandleUnlinkUser), httpx.ModerateLimit))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.buildVersion, r.startTime))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.store))
}
