package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	// Registra a especificação OpenAPI servida em /swagger
	_ "github.com/rafabene/inhouse-backend/docs"
	"github.com/rafabene/inhouse-backend/internal/domain/ports"
	"github.com/rafabene/inhouse-backend/internal/handlers/dto"
	"github.com/rafabene/inhouse-backend/internal/handlers/middleware"
	"github.com/rafabene/inhouse-backend/internal/infrastructure/i18n"
)

// Handlers agrupa os handlers de cada recurso
type Handlers struct {
	Auth         *AuthHandler
	Post         *PostHandler
	Property     *PropertyHandler
	Engagement   *EngagementHandler
	Owner        *OwnerHandler
	Chat         *ChatHandler
	ChatStream   *ChatStreamHandler
	Notification *NotificationHandler
}

// RouterOptions contém as dependências transversais do roteador
type RouterOptions struct {
	Logger         ports.Logger
	I18n           *i18n.Service
	Tokens         ports.TokenIssuer
	AllowedOrigins string
	BaseURL        string
}

// NewRouter monta o engine Gin com middlewares e todas as rotas /api
func NewRouter(h Handlers, opts RouterOptions) *gin.Engine {
	dto.RegisterValidation()

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(opts.Logger),
		middleware.CORS(opts.AllowedOrigins),
		middleware.BaseURL(opts.BaseURL),
		middleware.NewI18nMiddleware(opts.I18n).DetectLanguage(),
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.NoRoute(func(c *gin.Context) {
		dto.AbortWithProblem(c, dto.NotFoundErrorResponseI18n(c, "Route"))
	})

	api := router.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/signup", h.Auth.Signup)

	api.PUT("/users/profile", middleware.RequireAuth(opts.Tokens, unauthorized), h.Auth.UpdateProfile)

	api.GET("/posts", h.Post.ListPosts)
	api.POST("/posts", h.Post.CreatePost)
	api.POST("/posts/:id/like", h.Post.LikePost)

	api.GET("/properties", h.Property.ListProperties)
	api.POST("/properties", h.Property.CreateProperty)
	api.GET("/properties/:id", h.Property.GetProperty)
	api.PUT("/properties/:id/photos", h.Property.UpdatePhotos)
	api.POST("/properties/:id/views", h.Property.RecordView)

	api.POST("/favorites", h.Engagement.AddFavorite)
	api.GET("/favorites", h.Engagement.ListFavorites)
	api.DELETE("/favorites", h.Engagement.RemoveFavorite)
	api.DELETE("/favorites/:propertyId", h.Engagement.RemoveFavorite)

	api.POST("/interactions", h.Engagement.RecordInteraction)
	api.GET("/interactions/stats/:propertyId", h.Engagement.GetStats)

	owner := api.Group("/owner")
	owner.GET("/dashboard", h.Owner.Dashboard)
	owner.GET("/properties", h.Owner.ListProperties)
	owner.GET("/leads", h.Owner.ListLeads)
	owner.PUT("/leads/:id", h.Owner.UpdateLeadStatus)

	api.POST("/leads", h.Owner.CreateLead)

	api.GET("/chats", h.Chat.ListChats)
	api.POST("/chats", h.Chat.CreateChat)
	api.GET("/chats/:id/messages", h.Chat.ListMessages)
	api.GET("/chats/:id/ws", h.ChatStream.Stream)
	api.POST("/messages", h.Chat.SendMessage)

	api.GET("/notifications", h.Notification.ListNotifications)
	api.PUT("/notifications/:id/read", h.Notification.MarkRead)

	return router
}
