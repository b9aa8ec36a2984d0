package httptransport

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	sloggin "github.com/samber/slog-gin"

	"github.com/azamatdev/library-api/internal/repository"
	"github.com/azamatdev/library-api/internal/transport/http/handler"
	"github.com/azamatdev/library-api/internal/transport/http/middleware"
)

func NewRouter(
	logger *slog.Logger,
	authHandler *handler.AuthHandler,
	bookHandler *handler.BookHandler,
	memberHandler *handler.MemberHandler,
	tokens repository.TokenRepository,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	// Public auth routes
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)

	authMW := middleware.Auth(tokens, logger)

	// Protected book routes
	books := r.Group("/books", authMW)
	books.POST("", bookHandler.Create)
	books.GET("", bookHandler.List)
	books.GET("/:id", bookHandler.GetByID)
	books.PUT("/:id", bookHandler.Update)
	books.DELETE("/:id", bookHandler.Delete)

	// Protected member routes
	members := r.Group("/members", authMW)
	members.POST("", memberHandler.Create)
	members.GET("", memberHandler.List)
	members.GET("/:id", memberHandler.GetByID)
	members.PUT("/:id", memberHandler.Update)
	members.DELETE("/:id", memberHandler.Delete)

	return r
}
