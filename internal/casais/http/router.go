package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/casais/internal/casais/domain"
	"github.com/aussiebroadwan/casais/internal/casais/service"
	"github.com/aussiebroadwan/casais/internal/casais/store"
	"github.com/aussiebroadwan/casais/pkg/httpx"
	"github.com/aussiebroadwan/casais/pkg/jwtx"
	"github.com/aussiebroadwan/casais/pkg/slogx"

	_ "github.com/aussiebroadwan/casais/api/casais" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// DefaultMaxUploadBytes caps a multipart body when no limit is configured.
const DefaultMaxUploadBytes = 10 << 20

// PublicPaths bypass the Access Gate. Entries ending in "/" cover their
// subtree.
var PublicPaths = []string{"/", "/login", "/register", "/livez", "/readyz", "/swagger/"}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store              store.Store
	AccountService     *service.AccountService
	CasalService       *service.CasalService
	CasalSimpleService *service.CasalSimpleService
	EventoService      *service.EventoService

	// MaxUploadBytes bounds multipart bodies on the casal endpoints.
	MaxUploadBytes int64
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
	corsOrigins ...string,
) *Router {
	r := &Router{
		Mux:            http.NewServeMux(),
		verifier:       verifier,
		buildVersion:   buildVersion,
		startTime:      time.Now(),
		store:          st,
		logger:         logger,
		MaxUploadBytes: DefaultMaxUploadBytes,
	}

	// Default middleware chain: logging, CORS, then the Access Gate
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(corsOrigins...),
		httpx.AuthnMiddleware(r.verifier, PublicPaths...),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerSystem()
	r.registerAccounts()
	r.registerHistory()
	r.registerCasais()
	r.registerCasaisSimples()
	r.registerEventos()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Casais API
//	@version		0.1.0
//	@description	Multi-tenant record keeping for couples: accounts, casal records with photos, a simplified casal list, per-account name history and a shared calendar of eventos.
//	@description
//	@description				Every response carries a boolean "status"; failures add "errorMessage".
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/casais
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:2000
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT session token. Format: "Bearer {token}". The legacy "token" header is also accepted.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// authed wraps record endpoints. Identity is already attached by the global
// Access Gate.
func authed(h http.Handler, extra ...httpx.Middleware) http.Handler {
	mws := append(extra, httpx.RateLimitBySubject(httpx.ModerateLimit))
	return httpx.Chain(h, mws...)
}

func leaderOnly(h http.Handler) http.Handler {
	return authed(h, httpx.RequireRole(domain.RoleLeader))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /{$}", RootHandler())
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerAccounts() {
	// POST /register and /login - strict rate limit by IP (credential stuffing)
	register := &RegisterHandler{AccountService: r.AccountService}
	r.Mux.Handle("POST /register",
		httpx.Chain(register,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	login := &LoginHandler{AccountService: r.AccountService}
	r.Mux.Handle("POST /login",
		httpx.Chain(login,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerHistory() {
	h := &HistoryHandler{AccountService: r.AccountService}

	r.Mux.Handle("GET /history", authed(http.HandlerFunc(h.HandleGet)))
	r.Mux.Handle("POST /history", authed(http.HandlerFunc(h.HandleAppend)))
	r.Mux.Handle("PUT /history", authed(http.HandlerFunc(h.HandleAppend)))
	r.Mux.Handle("DELETE /history", authed(http.HandlerFunc(h.HandleRemove)))
}

func (r *Router) registerCasais() {
	h := &CasaisHandler{
		CasalService:   r.CasalService,
		MaxUploadBytes: r.MaxUploadBytes,
	}

	r.Mux.Handle("GET /get-casal", authed(http.HandlerFunc(h.HandleList)))
	r.Mux.Handle("POST /add-casal", authed(http.HandlerFunc(h.HandleAdd)))
	r.Mux.Handle("PUT /update-casal/{id}", authed(http.HandlerFunc(h.HandleUpdate)))
	r.Mux.Handle("DELETE /delete-casal/{id}", authed(http.HandlerFunc(h.HandleDelete)))

	// Legacy forms carry the id in the body
	r.Mux.Handle("POST /update-casal", authed(http.HandlerFunc(h.HandleUpdate)))
	r.Mux.Handle("POST /delete-casal", authed(http.HandlerFunc(h.HandleDeleteLegacy)))
}

func (r *Router) registerCasaisSimples() {
	h := &CasaisSimplesHandler{CasalSimpleService: r.CasalSimpleService}

	r.Mux.Handle("GET /get-casal-simple", authed(http.HandlerFunc(h.HandleList)))
	r.Mux.Handle("POST /add-casal-simple", authed(http.HandlerFunc(h.HandleAdd)))
	r.Mux.Handle("PUT /update-casal-simple/{id}", authed(http.HandlerFunc(h.HandleUpdate)))
	r.Mux.Handle("DELETE /delete-casal-simple/{id}", authed(http.HandlerFunc(h.HandleDelete)))
}

func (r *Router) registerEventos() {
	h := &EventosHandler{EventoService: r.EventoService}

	r.Mux.Handle("GET /eventos", authed(http.HandlerFunc(h.HandleList)))
	r.Mux.Handle("GET /eventos/{id}", authed(http.HandlerFunc(h.HandleGet)))
	r.Mux.Handle("POST /eventos", leaderOnly(http.HandlerFunc(h.HandleCreate)))
	r.Mux.Handle("PUT /eventos/{id}", leaderOnly(http.HandlerFunc(h.HandleUpdate)))
	r.Mux.Handle("DELETE /eventos/{id}", leaderOnly(http.HandlerFunc(h.HandleDelete)))
}
