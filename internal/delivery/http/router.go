package http

import (
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"artwalls/internal/delivery/http/controllers"
	"artwalls/internal/delivery/http/middleware"
	"artwalls/internal/domain"
	"artwalls/internal/ratelimit"
)

// RouterConfig carries the cross-cutting pieces the route table needs.
type RouterConfig struct {
	Verifier        domain.TokenVerifier
	Limiter         *ratelimit.Limiter
	RateLimit       int
	RateLimitWindow time.Duration
}

// NewRouter initializes the HTTP router with all application routes.
// Write endpoints sit behind the rate limiter; everything under /hosts and /me
// requires a bearer token.
func NewRouter(
	cfg RouterConfig,
	authController *controllers.AuthController,
	requestController *controllers.RequestController,
	hostController *controllers.HostController,
	inviteController *controllers.InviteController,
) *http.ServeMux {
	mux := http.NewServeMux()

	auth := middleware.RequireAuth(cfg.Verifier)
	limited := middleware.RateLimit(cfg.Limiter, cfg.RateLimit, cfg.RateLimitWindow)

	// Auth
	mux.HandleFunc("POST /auth/signup", limited(authController.SignUp))
	mux.HandleFunc("POST /auth/login", limited(authController.Login))

	// Requests
	mux.HandleFunc("POST /hosts/{hostID}/requests", auth(limited(requestController.Create)))
	mux.HandleFunc("GET /hosts/{hostID}/requests", auth(requestController.ListForHost))
	mux.HandleFunc("PATCH /hosts/{hostID}/requests/{requestID}", auth(limited(requestController.Transition)))
	mux.HandleFunc("GET /me/requests", auth(requestController.ListMine))
	mux.HandleFunc("GET /me/requests/quota", auth(requestController.Quota))

	// Host settings
	mux.HandleFunc("GET /hosts/{hostID}/settings", auth(hostController.GetSettings))
	mux.HandleFunc("PATCH /hosts/{hostID}/settings/waitlist", auth(limited(hostController.SetWaitlist)))

	// Invites
	mux.HandleFunc("POST /hosts/{hostID}/invites", auth(limited(inviteController.Create)))
	mux.HandleFunc("GET /hosts/{hostID}/invites", auth(inviteController.List))
	mux.HandleFunc("GET /invites/{token}", inviteController.Open)
	mux.HandleFunc("POST /invites/{token}/accept", limited(inviteController.Accept))
	mux.HandleFunc("POST /invites/{token}/decline", limited(inviteController.Decline))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
