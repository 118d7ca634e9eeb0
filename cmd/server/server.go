package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/Nourbaganne/Esport-post-board/internal/changefeed"
	"github.com/Nourbaganne/Esport-post-board/internal/database"
	"github.com/Nourbaganne/Esport-post-board/internal/handlers"
	"github.com/Nourbaganne/Esport-post-board/pkg/auth"
)

type Server struct {
	Router     *gin.Engine
	DB         *database.Database
	Redis      *redis.Client
	JWTManager *auth.JWTManager
	Hub        *changefeed.Hub
}

func NewServer() *Server {
	if err := godotenv.Load(".env.local"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println(".env not found, using environment variables")
		}
	}

	dbConn := &database.Database{}
	if err := dbConn.Connect(); err != nil {
		log.Fatalf("Postgres connect failed: %v", err)
	}

	redisOpts, err := redis.ParseURL(os.Getenv("REDIS_URL"))
	if err != nil {
		log.Fatalf("invalid REDIS_URL: %v", err)
	}
	rdb := redis.NewClient(redisOpts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Redis connect failed: %v", err)
	}

	jwtMgr := auth.NewJWTManager(
		os.Getenv("JWT_SECRET"),
		24*time.Hour,
	)

	hub := changefeed.NewHub()
	bridge := changefeed.NewBridge(rdb, hub)

	go hub.Run()
	go bridge.Run(context.Background())

	authH := handlers.NewAuthHandler(dbConn, jwtMgr, rdb)
	postH := handlers.NewPostHandler(dbConn, changefeed.NewPublisher(rdb))
	profileH := handlers.NewProfileHandler(dbConn)
	catalogH := handlers.NewCatalogHandler()
	feedH := handlers.NewFeedHandler(hub)

	router := gin.Default()
	APIEndpoints(router, jwtMgr, rdb, authH, postH, profileH, catalogH, feedH)

	return &Server{
		Router:     router,
		DB:         dbConn,
		Redis:      rdb,
		JWTManager: jwtMgr,
		Hub:        hub,
	}
}

func (s *Server) Run() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server starting on port %s", port)
	if err := s.Router.Run(":" + port); err != nil {
		log.Fatalf("Server run error: %v", err)
	}
}
