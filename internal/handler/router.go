package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"vtcquote/internal/handler/api"
	"vtcquote/internal/handler/middleware"
	"vtcquote/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	vehicleHandler *api.VehicleHandler,
	clientHandler *api.ClientHandler,
	quoteHandler *api.QuoteHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, vehicleHandler, clientHandler, quoteHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	vehicleHandler *api.VehicleHandler,
	clientHandler *api.ClientHandler,
	quoteHandler *api.QuoteHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		// The estimate endpoint backs the public booking widget; everything
		// else under /quotes is driver-only.
		apiGroup.POST("/quotes/estimate", quoteHandler.Estimate)

		vehicles := apiGroup.Group("/vehicles")
		vehicles.Use(authMiddleware.RequireAuth())
		{
			addRoutes(vehicles, []route{
				{Method: http.MethodGet, Path: "", Handler: vehicleHandler.List},
				{Method: http.MethodPost, Path: "", Handler: vehicleHandler.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: vehicleHandler.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: vehicleHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: vehicleHandler.Delete},
				{Method: http.MethodPatch, Path: "/:id/active", Handler: vehicleHandler.SetActive},
			})
		}

		clients := apiGroup.Group("/clients")
		clients.Use(authMiddleware.RequireAuth())
		{
			addRoutes(clients, []route{
				{Method: http.MethodGet, Path: "", Handler: clientHandler.List},
				{Method: http.MethodPost, Path: "", Handler: clientHandler.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: clientHandler.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: clientHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: clientHandler.Delete},
			})
		}

		quotes := apiGroup.Group("/quotes")
		quotes.Use(authMiddleware.RequireAuth())
		{
			addRoutes(quotes, []route{
				{Method: http.MethodGet, Path: "", Handler: quoteHandler.List},
				{Method: http.MethodPost, Path: "", Handler: quoteHandler.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: quoteHandler.Get},
				{Method: http.MethodDelete, Path: "/:id", Handler: quoteHandler.Delete},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: quoteHandler.UpdateStatus},
				{Method: http.MethodGet, Path: "/:id/pdf", Handler: quoteHandler.DownloadPDF},
				{Method: http.MethodPost, Path: "/:id/send", Handler: quoteHandler.Send},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
