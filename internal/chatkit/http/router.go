package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/chatkit/internal/chatkit/service"
	"github.com/aussiebroadwan/chatkit/internal/chatkit/store"
	"github.com/aussiebroadwan/chatkit/pkg/httpx"
	"github.com/aussiebroadwan/chatkit/pkg/sessiontoken"
	"github.com/aussiebroadwan/chatkit/pkg/slogx"

	_ "github.com/aussiebroadwan/chatkit/api/chatkit" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	codec        *sessiontoken.Codec
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store               store.Store
	SessionService      *service.SessionService
	ConversationService *service.ConversationService
	UsageService        *service.UsageService
}

func NewRouter(
	codec *sessiontoken.Codec,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		codec:        codec,
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
	r.registerSession()
	r.registerConversations()
	r.registerUsage()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			ChatKit Session Service API
//	@version		0.1.0
//	@description	Backend for the chatkit UI: issues short-lived session tokens against an
//	@description	upstream identity provider, stores opaque conversation payloads, and
//	@description	records usage analytics per subject.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/chatkit
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	SessionAuth
//	@in							header
//	@name						Authorization
//	@description				ChatKit session token. Format: "Bearer {token}", paired with the X-Chatkit-User header.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerSession() {
	createHandler := &SessionCreateHandler{SessionService: r.SessionService}

	// POST /v1/session - strict rate limit by IP (token issuance)
	r.Mux.Handle("POST /v1/session",
		httpx.Chain(createHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /v1/session/verify - advisory introspection, moderate limit.
	// Deliberately unauthenticated: it only reports what the codec would
	// say, and the UI calls it before it has a proven session.
	verifyHandler := &SessionVerifyHandler{SessionService: r.SessionService}
	r.Mux.Handle("POST /v1/session/verify",
		httpx.Chain(verifyHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerConversations() {
	h := &ConversationsHandler{ConversationService: r.ConversationService}

	authn := httpx.SessionAuthnMiddleware(r.codec)

	r.Mux.Handle("PUT /v1/conversations/{id}",
		httpx.Chain(http.HandlerFunc(h.HandlePut),
			authn,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/conversations/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			authn,
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/conversations",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			authn,
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/conversations/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			authn,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerUsage() {
	h := &UsageHandler{UsageService: r.UsageService}

	authn := httpx.SessionAuthnMiddleware(r.codec)

	r.Mux.Handle("POST /v1/usage/events",
		httpx.Chain(http.HandlerFunc(h.HandleRecord),
			authn,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/usage/summary",
		httpx.Chain(http.HandlerFunc(h.HandleSummary),
			authn,
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring may poll)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.codec),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
