package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/usecase"
	"github.com/aussiebroadwan/todo/pkg/httpx"
	"github.com/aussiebroadwan/todo/pkg/idx"
	"github.com/aussiebroadwan/todo/pkg/jwtx"
	"github.com/aussiebroadwan/todo/pkg/slogx"
	"github.com/prometheus/client_golang/prometheus"

	_ "github.com/aussiebroadwan/todo/api/todo" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// APIVersion is the only version prefix currently served.
const APIVersion = "v1"

var reVersion = regexp.MustCompile(`^v[0-9]+$`)

// Options carries everything NewRouter needs besides the use cases.
type Options struct {
	Verifier jwtx.Verifier
	Logger   *slog.Logger

	RateLimits     httpx.RateLimitProfiles
	CORS           httpx.CORSConfig
	RequestTimeout time.Duration

	CookieMaxAge time.Duration
	CookieSecure bool

	// Registry receives the HTTP metrics and backs /metrics. A fresh
	// registry is used when nil.
	Registry *prometheus.Registry
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware
	handler     http.Handler

	opts     Options
	metrics  *httpx.Metrics
	registry *prometheus.Registry
	authn    httpx.Middleware

	UserUseCase        *usecase.UserUseCase
	TodoUseCase        *usecase.TodoUseCase
	HealthCheckUseCase *usecase.HealthCheckUseCase
}

func NewRouter(opts Options) *Router {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}

	r := &Router{
		Mux:      http.NewServeMux(),
		opts:     opts,
		registry: opts.Registry,
		metrics:  httpx.NewMetrics("todo", opts.Registry),
	}

	// Outermost first: the logger sees every response, including the 500
	// written by Recover and the 503 written by Timeout.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(opts.Logger),
		httpx.Recover(),
		httpx.CORS(opts.CORS),
	}
	if opts.RequestTimeout > 0 {
		r.middlewares = append(r.middlewares, httpx.Timeout(opts.RequestTimeout))
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.authn = httpx.AuthnMiddleware(httpx.AuthnConfig{
		Verifier: r.opts.Verifier,
		Resolve:  r.resolveUser,
		Cookies:  []string{SessionCookie},
	})

	r.registerHealth()
	r.registerAuth()
	r.registerUsers()
	r.registerTodos()

	r.Mux.Handle("GET /metrics", httpx.Handler(r.registry))
	r.Mux.Handle("/swagger/", httpSwagger.Handler())
	r.Mux.Handle("/", http.HandlerFunc(r.fallback))

	r.handler = httpx.Chain(r.Mux, r.middlewares...)
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Todo Service API
//	@version		0.1.0
//	@description	CRUD over todos and users with JWT session authentication.
//	@description
//	@description	Every response is wrapped in {result, message, data}. Domain failures such as
//	@description	"data not found" are reported with HTTP 200 and result=false.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/todo
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
//	@description				Session JWT from /v1/auth/login. Format: "Bearer {token}". The "token" cookie is accepted too.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.handler.ServeHTTP(w, req)
}

// handle registers h under "METHOD /v1/path" with per-route metrics.
func (r *Router) handle(method, path string, h http.HandlerFunc, mws ...httpx.Middleware) {
	pattern := method + " /" + APIVersion + path
	mws = append([]httpx.Middleware{r.metrics.Instrument(pattern)}, mws...)
	r.Mux.Handle(pattern, httpx.Chain(h, mws...))
}

// secured prepends authentication to a per-user rate limit.
func (r *Router) secured(limit httpx.RateLimitConfig) []httpx.Middleware {
	return []httpx.Middleware{r.authn, httpx.RateLimitByUser(limit)}
}

func (r *Router) registerHealth() {
	h := &HealthHandler{HealthCheckUseCase: r.HealthCheckUseCase}
	public := httpx.RateLimitByIP(r.opts.RateLimits.Public)

	r.handle(http.MethodGet, "/hc", h.HandleLiveness, public)
	r.handle(http.MethodGet, "/hc/postgres", h.HandleDatabase, public)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		UserUseCase:  r.UserUseCase,
		CookieMaxAge: r.opts.CookieMaxAge,
		CookieSecure: r.opts.CookieSecure,
	}

	// Strict by IP: brute force protection on credentials.
	strict := httpx.RateLimitByIP(r.opts.RateLimits.Strict)

	r.handle(http.MethodPost, "/auth/create", h.HandleCreate, strict)
	r.handle(http.MethodPost, "/auth/login", h.HandleLogin, strict)
}

func (r *Router) registerUsers() {
	h := &UserHandler{UserUseCase: r.UserUseCase}
	reads := r.secured(r.opts.RateLimits.Lenient)

	r.handle(http.MethodGet, "/user", h.HandleFind, reads...)
	r.handle(http.MethodGet, "/user/{id}", h.HandleGet, reads...)
}

func (r *Router) registerTodos() {
	h := &TodoHandler{TodoUseCase: r.TodoUseCase}
	reads := r.secured(r.opts.RateLimits.Lenient)
	writes := r.secured(r.opts.RateLimits.Moderate)

	r.handle(http.MethodGet, "/todo", h.HandleFind, reads...)
	r.handle(http.MethodPost, "/todo", h.HandleCreate, writes...)
	r.handle(http.MethodGet, "/todo/statuses", h.HandleStatuses, reads...)
	r.handle(http.MethodGet, "/todo/{id}", h.HandleGet, reads...)
	r.handle(http.MethodPatch, "/todo/{id}", h.HandleUpdate, writes...)
	r.handle(http.MethodPut, "/todo/{id}", h.HandleUpsert, writes...)
	r.handle(http.MethodDelete, "/todo/{id}", h.HandleDelete, writes...)
}

// resolveUser loads the token's subject so handlers see a live account.
func (r *Router) resolveUser(ctx context.Context, claims jwtx.Claims) (any, error) {
	id, err := idx.Parse[domain.User](claims.Subject)
	if err != nil {
		return nil, httpx.ErrUnknownPrincipal
	}
	user, err := r.UserUseCase.GetUser(ctx, id)
	if errors.Is(err, usecase.ErrUserNotFound) {
		return nil, httpx.ErrUnknownPrincipal
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// fallback answers every request no route matched. The catch-all "/"
// pattern shadows the mux's own 405, so known paths are checked here.
func (r *Router) fallback(w http.ResponseWriter, req *http.Request) {
	first, _, _ := strings.Cut(strings.TrimPrefix(req.URL.Path, "/"), "/")
	if reVersion.MatchString(first) && first != APIVersion {
		httpx.WriteFailure(w, http.StatusBadRequest, "Unknown api version("+first+").")
		return
	}
	if allowed := r.allowedMethods(req); len(allowed) > 0 {
		w.Header().Set("Allow", strings.Join(allowed, ", "))
		httpx.WriteFailure(w, http.StatusMethodNotAllowed, httpx.ErrorMessage("method not allowed"))
		return
	}
	httpx.WriteFailure(w, http.StatusNotFound, httpx.ErrorMessage("abnormal uri"))
}

var routeMethods = []string{
	http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete,
}

// allowedMethods lists the methods a route is registered for at req's path.
func (r *Router) allowedMethods(req *http.Request) []string {
	var allowed []string
	for _, method := range routeMethods {
		if method == req.Method {
			continue
		}
		alt := req.Clone(req.Context())
		alt.Method = method
		if _, pattern := r.Mux.Handler(alt); pattern != "" && pattern != "/" {
			allowed = append(allowed, method)
		}
	}
	return allowed
}
