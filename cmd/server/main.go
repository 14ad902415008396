package main

import (
	"log"
	"microblog/internal/api"
	"microblog/internal/cache"
	"microblog/internal/middleware"
	"microblog/internal/repository"
	"microblog/internal/service"
	"microblog/pkg/config"
	"microblog/pkg/db"
	"microblog/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := config.Init(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.InitLogger(config.GlobalConfig.Log.Level, config.GlobalConfig.Log.ProductionMode); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if err := db.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	userRepo := repository.NewUserRepository()
	groupRepo := repository.NewGroupRepository()
	postRepo := repository.NewPostRepository()
	commentRepo := repository.NewCommentRepository()
	followRepo := repository.NewFollowRepository()

	feedCache := cache.NewFeedCache(cache.DefaultTTL, nil)

	postService := service.NewPostService(postRepo, commentRepo, groupRepo)
	groupService := service.NewGroupService(groupRepo)
	followService := service.NewFollowService(followRepo, userRepo)
	feedService := service.NewFeedService(postRepo, groupRepo, userRepo, feedCache)

	authHandler := api.NewAuthHandler()
	postHandler := api.NewPostHandler(postService)
	groupHandler := api.NewGroupHandler(groupService)
	followHandler := api.NewFollowHandler(followService)
	feedHandler := api.NewFeedHandler(feedService, followService)

	r := gin.New()
	r.Use(middleware.GinZapLogger(), gin.Recovery())

	// Public routes; optional auth so feeds can show caller-specific extras.
	public := r.Group("/api", middleware.OptionalAuthMiddleware())
	{
		public.POST("/auth/register", authHandler.Register)
		public.POST("/auth/login", authHandler.Login)

		public.GET("/posts", feedHandler.Index)
		public.GET("/posts/:id", postHandler.GetPost)
		public.GET("/groups/:slug", groupHandler.GetGroup)
		public.GET("/groups/:slug/posts", feedHandler.GroupFeed)
		public.GET("/users/:username/posts", feedHandler.Profile)
	}

	// Routes that require a resolved identity.
	protected := r.Group("/api", middleware.AuthMiddleware())
	{
		protected.POST("/posts", postHandler.CreatePost)
		protected.PUT("/posts/:id", postHandler.UpdatePost)
		protected.DELETE("/posts/:id", postHandler.DeletePost)
		protected.POST("/posts/:id/comments", postHandler.AddComment)

		protected.POST("/groups", groupHandler.CreateGroup)
		protected.PUT("/groups/:slug", groupHandler.UpdateGroup)
		protected.DELETE("/groups/:slug", groupHandler.DeleteGroup)

		protected.POST("/users/:username/follow", followHandler.Follow)
		protected.DELETE("/users/:username/follow", followHandler.Unfollow)
		protected.GET("/follow", feedHandler.SubscriptionsFeed)

		protected.POST("/cache/clear", feedHandler.ClearCache)
	}

	if err := r.Run(config.GlobalConfig.Server.Addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
