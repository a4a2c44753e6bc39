package v1

import (
	"net/http"
	"time"

	"go-resume-builder/config"
	"go-resume-builder/internal/delivery/http/middleware"
	"go-resume-builder/internal/delivery/http/response"
	"go-resume-builder/internal/usecase"
	"go-resume-builder/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ResumeUC     usecase.ResumeUsecase
	PhotoUC      usecase.PhotoUsecase
	JWKSProvider *auth.Provider
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Usecases read the caller identity from the request context;
	// without the fallback gin never consults it for typed keys.
	r.ContextWithFallback = true

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RateLimitMiddleware(middleware.DefaultRateLimitConfig(
		deps.Config.RateLimitGlobalThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	)))
	r.Use(middleware.CSRFMiddleware())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.JWKSProvider, deps.Config))
	{
		NewResumeHandler(protected, deps.ResumeUC)
		NewEditorHandler(protected, deps.ResumeUC)

		// Photo uploads carry their own, tighter limit on top of the
		// global one.
		uploads := protected.Group("")
		uploads.Use(middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig()))
		NewPhotoHandler(uploads, deps.PhotoUC)
	}

	return r
}
