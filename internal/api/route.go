package api

import (
	"FutureMe/internal/api/middleware"
	"FutureMe/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong"})
		})

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/register", group.UserHandler.Register)
			authGroup.POST("/login", group.UserHandler.Login)
			authGroup.POST("/logout", middleware.AuthMiddleware(), group.UserHandler.Logout)
		}

		// 无需登录，或登录后附加个人数据
		authOptGroup := apiGroup.Group("")
		authOptGroup.Use(middleware.AuthOptionalMiddleware())
		{
			authOptGroup.POST("/reflect", group.ReflectHandler.Reflect)
			authOptGroup.POST("/sentiment", group.SentimentHandler.Classify)
			authOptGroup.GET("/sentiment/trend", group.SentimentHandler.Trend)
		}

		userGroup := apiGroup.Group("")
		userGroup.Use(middleware.AuthMiddleware())
		{
			userGroup.POST("/entries", group.EntryHandler.CreateEntry)
			userGroup.GET("/entries", group.EntryHandler.ListEntries)
			userGroup.PUT("/entries/:id", group.EntryHandler.UpdateEntry)
			userGroup.DELETE("/entries/:id", group.EntryHandler.DeleteEntry)
			userGroup.GET("/entries/:id/replies", group.EntryHandler.ListReplies)

			userGroup.GET("/prompts/today", group.PromptHandler.Today)
			userGroup.GET("/stats", group.EntryHandler.GetStats)
			userGroup.POST("/reflection-letter", group.ReflectHandler.ReflectionLetter)

			exportGroup := userGroup.Group("/export")
			exportGroup.Use(middleware.SoftPaywallMiddleware())
			{
				exportGroup.GET("/entries", group.EntryHandler.ExportEntries)
			}
		}
	}

	return r
}
