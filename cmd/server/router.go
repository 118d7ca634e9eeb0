package main

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/Nourbaganne/Esport-post-board/internal/handlers"
	"github.com/Nourbaganne/Esport-post-board/internal/middleware"
	pkgauth "github.com/Nourbaganne/Esport-post-board/pkg/auth"
)

func APIEndpoints(
	r *gin.Engine,
	jwtMgr *pkgauth.JWTManager,
	rdb *redis.Client,
	authH *handlers.AuthHandler,
	postH *handlers.PostHandler,
	profileH *handlers.ProfileHandler,
	catalogH *handlers.CatalogHandler,
	feedH *handlers.FeedHandler,
) {
	// Auth endpoints
	auth := r.Group("/auth")
	{
		auth.POST("/register", authH.Register)
		auth.POST("/login", authH.Login)
		auth.POST("/logout", authH.Logout)
		auth.GET("/me", middleware.AuthMiddleware(jwtMgr, rdb), authH.Me)
	}

	// API endpoints
	api := r.Group("/api/v1")
	{
		api.GET("/catalog", catalogH.GetCatalog)
		api.GET("/posts", postH.ListPosts)
		api.GET("/profiles/:id", profileH.GetProfile)

		// Фид, как и список, доступен гостям: смотреть доску и получать
		// живые обновления можно без входа
		api.GET("/feed", feedH.HandleFeed)

		api.POST("/posts", middleware.AuthMiddleware(jwtMgr, rdb), postH.CreatePost)
		api.DELETE("/posts/:id", middleware.AuthMiddleware(jwtMgr, rdb), postH.DeletePost)
	}
}
