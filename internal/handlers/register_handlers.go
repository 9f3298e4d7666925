package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"

	"github.com/kbouri/performup-platform-sub000/cmd/docs"
	portssvc "github.com/kbouri/performup-platform-sub000/internal/core/ports/services"
	"github.com/kbouri/performup-platform-sub000/internal/dto"
	"github.com/kbouri/performup-platform-sub000/internal/middleware"
	"github.com/kbouri/performup-platform-sub000/internal/platform/config"
	"github.com/kbouri/performup-platform-sub000/internal/platform/metrics"
	"github.com/kbouri/performup-platform-sub000/internal/utils"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// writeLimiter may be nil to disable rate limiting on ledger writes.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	writeLimiter *limiter.Limiter,
) error {
	if err := registerBindingValidators(); err != nil {
		return err
	}

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	setupAPIV1Routes(r, cfg, services, writeLimiter)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// registerBindingValidators adds the ledger tags to gin's validator engine.
func registerBindingValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	return dto.RegisterValidators(v)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	writeLimiter *limiter.Limiter,
) {
	v1 := r.Group("/api/v1", middleware.ActorMiddleware(false))

	var writeMiddleware []gin.HandlerFunc
	if writeLimiter != nil {
		writeMiddleware = append(writeMiddleware, middleware.RateLimit(writeLimiter))
	}
	registerLedgerRoutes(v1, services, utils.NewAmountFormatter(cfg.AmountLocale), writeMiddleware...)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
