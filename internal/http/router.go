package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/headuck/gophonelite/platform/httpkit"
)

// NewRouter builds the gin engine for app: global middleware, health check,
// the /api/v1 route groups, and every module's routes.
func NewRouter(app *App) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(httpkit.RequestLogger(app.Logger))
	engine.Use(httpkit.SecurityHeaders())
	engine.Use(corsMiddleware(app.Config))

	engine.GET("/api/health", func(c *gin.Context) {
		status := http.StatusOK
		if app.Health != nil {
			if err := app.Health.Ping(c.Request.Context()); err != nil {
				status = http.StatusServiceUnavailable
			}
		}
		c.JSON(status, gin.H{"status": statusText(status)})
	})

	v1 := engine.Group("/api/v1")
	protected := v1.Group("")
	protected.Use(httpkit.AuthRequired(app.Config))
	admin := protected.Group("/admin")
	admin.Use(httpkit.RequireRole("admin"))

	authRateLimiter := httpkit.NewAuthRateLimiter(app.Logger)

	ctx := &RouterContext{
		Engine:          engine,
		V1:              v1,
		Protected:       protected,
		Admin:           admin,
		Config:          app.Config,
		AuthRateLimiter: authRateLimiter,
	}

	for _, mod := range app.Modules {
		mod.RegisterRoutes(ctx)
	}

	return engine
}

func corsMiddleware(cfg RouterConfig) gin.HandlerFunc {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowCredentials = cfg.GetCORSAllowCreds()
	if cfg.GetCORSAllowAll() {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.GetCORSOrigins()
	}
	corsCfg.AllowHeaders = []string{"Authorization", "Content-Type"}
	return cors.New(corsCfg)
}

func statusText(status int) string {
	if status == http.StatusOK {
		return "ok"
	}
	return "degraded"
}
