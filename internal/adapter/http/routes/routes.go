package routes

import (
	"crypto/subtle"
	"log"
	"net/http"
	"strings"
	"time"

	_ "orcamento_bot/docs"
	"orcamento_bot/internal/adapter/http/handlers"
	"orcamento_bot/pkg"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	PathMessages = "/messages"
	PathHandoffs = "/handoffs"
	PathSessions = "/sessions"
	PathCatalog  = "/catalog"
	PathOrders   = "/orders"
)

// Handlers groups what the router serves. Message is nil when customers
// arrive through long polling instead of the webhook.
type Handlers struct {
	Message *handlers.MessageHandler
	Handoff *handlers.HandoffHandler
	Session *handlers.SessionHandler
	Catalog *handlers.CatalogHandler
	Order   *handlers.OrderHandler
}

type Options struct {
	// AdminToken protects the operator routes with a bearer token. Empty
	// leaves them open.
	AdminToken string
	Metrics    http.Handler
}

// NewRouter builds the gin engine with every route mounted.
func NewRouter(h Handlers, opts Options) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if opts.Metrics != nil {
		router.GET("/metrics", gin.WrapH(opts.Metrics))
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	if h.Message != nil {
		v1.POST(PathMessages, h.Message.Receive)
	}

	admin := v1.Group("")
	if opts.AdminToken != "" {
		admin.Use(requireBearer(opts.AdminToken))
	}
	addAdminRoutes(admin, h)
	return router
}

// NewServer wraps the router in an http.Server ready for graceful shutdown.
func NewServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addAdminRoutes(rg *gin.RouterGroup, h Handlers) {
	if h.Handoff != nil {
		handoffs := rg.Group(PathHandoffs)
		{
			handoffs.GET("", h.Handoff.List)
			handoffs.POST("", h.Handoff.Start)
			handoffs.DELETE("/:chat_id", h.Handoff.End)
		}
	}

	if h.Session != nil {
		sessions := rg.Group(PathSessions)
		{
			sessions.GET("/:chat_id", h.Session.Get)
			sessions.DELETE("/:chat_id", h.Session.Reset)
		}
	}

	if h.Catalog != nil {
		catalog := rg.Group(PathCatalog)
		{
			catalog.POST("/refresh", h.Catalog.Refresh)
			catalog.GET("/lookup", h.Catalog.Lookup)
		}
	}

	if h.Order != nil {
		orders := rg.Group(PathOrders)
		{
			orders.GET("", h.Order.ListByChatID)
			orders.GET("/:id", h.Order.GetByID)
			orders.POST("/:id/resubmit", h.Order.Resubmit)
		}
	}
}

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid bearer token", http.StatusUnauthorized)

func requireBearer(token string) gin.HandlerFunc {
	want := []byte(token)
	return func(c *gin.Context) {
		got, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(strings.TrimSpace(got)), want) != 1 {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		c.Next()
	}
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
