// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blissful Weddings Contributors

// Package web exposes the identity services over HTTP.
//
// Every response uses one envelope: {"status":"success","data":...} or
// {"status":"error","statusCode":...,"message":...,"errors":[...]}. Service
// errors are mapped to statuses by their errutil.Kind.
package web

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/samber/oops"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/blissfulweddings/blissful/internal/auth"
	"github.com/blissfulweddings/blissful/internal/observability"
	"github.com/blissfulweddings/blissful/internal/throttle"
)

// DefaultMaxBodyBytes bounds JSON request bodies.
const DefaultMaxBodyBytes = 10 << 10

const healthcheckPath = "/api/healthcheck"

// Registrar creates accounts from direct signups.
type Registrar interface {
	Register(ctx context.Context, in auth.RegisterInput) (*auth.AccountView, error)
}

// Challenger runs the SMS code signup flow.
type Challenger interface {
	RequestChallenge(ctx context.Context, phone string) error
	VerifyChallengeAndRegister(ctx context.Context, in auth.VerifyChallengeInput) (*auth.Session, error)
}

// PasswordLogin exchanges credentials for a session.
type PasswordLogin interface {
	Login(ctx context.Context, identifier, password string) (*auth.Session, error)
}

// Profiles reads and updates accounts.
type Profiles interface {
	Me(ctx context.Context, accountID int64) (*auth.AccountView, error)
	Get(ctx context.Context, id int64) (*auth.AccountView, error)
	UpdateMe(ctx context.Context, accountID int64, update auth.ProfileUpdate) (*auth.AccountView, error)
	ChangeRole(ctx context.Context, id int64, role string) (*auth.AccountView, error)
}

// TokenAuthenticator resolves a bearer token to the caller's identity.
type TokenAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*auth.Identity, error)
}

// Services are the handlers' collaborators. All are required.
type Services struct {
	Registration  Registrar
	Challenges    Challenger
	Login         PasswordLogin
	Profiles      Profiles
	Authenticator TokenAuthenticator
}

// Options tune the HTTP surface.
type Options struct {
	// Production hides internal error details from clients.
	Production bool
	// TrustProxy keys throttles by the first X-Forwarded-For entry.
	TrustProxy   bool
	MaxBodyBytes int64
}

// Server routes API requests to the identity services.
type Server struct {
	opts      Options
	register  Registrar
	challenge Challenger
	login     PasswordLogin
	profiles  Profiles
	tokens    TokenAuthenticator
	limiter   *throttle.Limiter
	validator *validator
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// NewServer creates a Server. A nil limiter disables throttling and a nil
// metrics records nothing.
func NewServer(opts Options, svc Services, limiter *throttle.Limiter, logger *slog.Logger, metrics *observability.Metrics) (*Server, error) {
	missing := func(what string) error {
		return oops.Code("WEB_INVALID_DEPENDENCY").Errorf("%s is required", what)
	}
	switch {
	case svc.Registration == nil:
		return nil, missing("registration service")
	case svc.Challenges == nil:
		return nil, missing("challenge service")
	case svc.Login == nil:
		return nil, missing("login service")
	case svc.Profiles == nil:
		return nil, missing("profile service")
	case svc.Authenticator == nil:
		return nil, missing("authenticator")
	case logger == nil:
		return nil, missing("logger")
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	return &Server{
		opts:      opts,
		register:  svc.Registration,
		challenge: svc.Challenges,
		login:     svc.Login,
		profiles:  svc.Profiles,
		tokens:    svc.Authenticator,
		limiter:   limiter,
		validator: newValidator(),
		logger:    logger,
		metrics:   metrics,
	}, nil
}

// Handler returns the fully wrapped API handler.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(s.notFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(s.methodNotAllowed)
	router.Use(tagRoute)
	s.RegisterRoutes(router)

	var h http.Handler = router
	h = s.generalGuard(h)
	h = s.limitBody(h)
	h = s.recoverPanic(h)
	h = s.observe(h)
	return otelhttp.NewHandler(h, "blissful.api")
}

// RegisterRoutes registers the API routes on router. The general throttle
// is applied by Handler, in front of routing.
func (s *Server) RegisterRoutes(router *mux.Router) {
	router.HandleFunc(healthcheckPath, s.healthcheck).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	sensitive := s.guard(throttle.Sensitive)
	challenge := s.guard(throttle.Challenge)
	admin := s.RequireRoles(auth.RoleAdmin)

	handle(api, http.MethodPost, "/auth/register", s.handleRegister, sensitive)
	handle(api, http.MethodPost, "/auth/login", s.handleLogin, sensitive)
	handle(api, http.MethodPost, "/auth/otp/request", s.handleRequestOTP, challenge)
	handle(api, http.MethodPost, "/auth/otp/verify", s.handleVerifyOTP)
	handle(api, http.MethodPost, "/auth/logout", s.handleLogout, s.authenticate)

	handle(api, http.MethodGet, "/users/me", s.handleGetMe, s.authenticate)
	handle(api, http.MethodPut, "/users/me", s.handleUpdateMe, s.authenticate)
	handle(api, http.MethodGet, "/users/{id:[0-9]+}", s.handleGetUser, s.authenticate, admin)
	handle(api, http.MethodPut, "/users/{id:[0-9]+}/role", s.handleChangeRole, s.authenticate, admin)
}

// generalGuard counts every /api request except the healthcheck against the
// general throttle, including requests that match no route.
func (s *Server) generalGuard(next http.Handler) http.Handler {
	guarded := s.guard(throttle.General)(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == healthcheckPath || !strings.HasPrefix(r.URL.Path, "/api/") {
			next.ServeHTTP(w, r)
			return
		}
		guarded.ServeHTTP(w, r)
	})
}

// handle registers h behind mw, outermost first.
func handle(r *mux.Router, method, path string, h http.HandlerFunc, mw ...mux.MiddlewareFunc) {
	var handler http.Handler = h
	for i := len(mw) - 1; i >= 0; i-- {
		handler = mw[i](handler)
	}
	r.Handle(path, handler).Methods(method)
}

// guard applies g keyed by client address. Throttling is off without a limiter.
func (s *Server) guard(g throttle.Guard) mux.MiddlewareFunc {
	if s.limiter == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return s.limiter.Middleware(g, throttle.ClientIP(s.opts.TrustProxy), s.fail)
}

func (s *Server) healthcheck(w http.ResponseWriter, _ *http.Request) {
	s.success(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorBody{
		Status:     "error",
		StatusCode: http.StatusNotFound,
		Message:    "The requested URL " + r.URL.Path + " was not found on this server.",
	})
}

func (s *Server) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, errorBody{
		Status:     "error",
		StatusCode: http.StatusMethodNotAllowed,
		Message:    "Method " + r.Method + " is not allowed on " + r.URL.Path + ".",
	})
}
