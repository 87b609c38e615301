package router

import (
	"github.com/gin-gonic/gin"

	"pitchbot/internal/config"
	"pitchbot/internal/handler"
	"pitchbot/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	resumeH *handler.ResumeHandler,
	botH *handler.BotHandler,
	chatH *handler.ChatHandler,
	chatbotH *handler.ChatbotHandler,
	cryptoH *handler.CryptoHandler,
	sessionH *handler.SessionHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Resume pipeline (public: the session id is the capability)
	v1.POST("/resume/parse", resumeH.Parse)

	sessions := v1.Group("/sessions")
	sessions.POST("", sessionH.Create)
	sessions.GET("/:id", sessionH.Get)
	sessions.PUT("/:id/enrichments", sessionH.SetEnrichment)
	sessions.POST("/:id/build", sessionH.Build)
	sessions.POST("/:id/reset", sessionH.Reset)
	sessions.POST("/:id/finalize", middleware.AuthMiddleware(cfg.JWT), sessionH.Finalize)

	// Knowledge-base lifecycle
	bots := v1.Group("/bots")
	bots.POST("/build", botH.Build)
	bots.POST("/add", botH.AddText)
	v1.POST("/collections/finalize", botH.Finalize)

	// Chat
	v1.POST("/chat", chatH.Chat)
	v1.POST("/chat/reset", chatH.Reset)
	v1.GET("/chat/memory/:collection", chatH.Memory)

	// Credential cipher
	v1.POST("/crypto", cryptoH.Transform)

	// Registry - requires valid JWT
	chatbots := v1.Group("/chatbots")
	chatbots.Use(middleware.AuthMiddleware(cfg.JWT))
	chatbots.POST("", chatbotH.Create)
	chatbots.GET("", chatbotH.List)
	chatbots.GET("/primary", chatbotH.GetPrimary)
	chatbots.GET("/:id", chatbotH.GetByID)
	chatbots.PUT("/:id", chatbotH.Update)
	chatbots.DELETE("/:id", chatbotH.Archive)
	chatbots.GET("/:id/embed", chatbotH.Embed)
	chatbots.POST("/:id/report", chatbotH.Report)

	return r
}
