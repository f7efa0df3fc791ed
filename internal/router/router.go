package router

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/campaign-next/internal/cache"
	"github.com/campaign-next/internal/config"
	adminhandlers "github.com/campaign-next/internal/http/handlers/admin"
	"github.com/campaign-next/internal/http/response"
	"github.com/campaign-next/internal/logger"
	"github.com/campaign-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	adminHandler := adminhandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "campaign"
	}
	redisClient := cache.Client()
	commandRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:command", redisPrefix),
		WindowSeconds: cfg.Security.CommandRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.CommandRateLimit.MaxRequests,
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiV1 := r.Group("/api/v1")
	{
		auth := apiV1.Group("/auth")
		{
			auth.POST("/login", adminHandler.AdminLogin)
		}

		admin := apiV1.Group("/admin")
		admin.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo))
		{
			admin.POST("/command", RateLimitMiddleware(redisClient, commandRule, KeyByIP), adminHandler.ExecuteCommand)
			admin.POST("/reset", adminHandler.ResetSystem)
			admin.GET("/time", adminHandler.GetCurrentTime)
			admin.GET("/products/:code", adminHandler.GetProduct)
			admin.GET("/campaigns/:name", adminHandler.GetCampaign)
			admin.GET("/campaigns/:name/report", adminHandler.GetCampaignReport)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "route not found")
	})

	return r
}
