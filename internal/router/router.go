// Package router assembles the Track-R HTTP surface.
package router

import (
	"net/http"

	"trackr/backend/internal/auth"
	"trackr/backend/internal/handler"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Options configure the engine. Storage may be nil, in which case
// uploaded objects are not served.
type Options struct {
	Handler  *handler.Handler
	Sessions auth.SessionResolver
	Storage  http.FileSystem
	Log      zerolog.Logger
}

// New returns the engine with every route registered.
func New(opts Options) *gin.Engine {
	h := opts.Handler
	router := gin.New()
	router.Use(RequestLogger(opts.Log), h.Metrics.Middleware(), gin.Recovery())

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
	router.GET("/metrics", gin.WrapH(h.Metrics.Handler()))

	if opts.Storage != nil {
		router.StaticFS("/storage", opts.Storage)
	}

	optional := auth.OptionalAuthMiddleware(opts.Sessions)
	required := auth.AuthMiddleware(opts.Sessions)

	// Page views
	views := router.Group("")
	views.Use(optional)
	{
		views.GET("/", h.HomePage)
		views.GET("/login", h.AuthPage(handler.ViewLogin))
		views.GET("/register", h.AuthPage(handler.ViewRegister))
		views.GET("/dashboard", h.DashboardPage)
		views.GET("/settings", h.SettingsPage)
	}

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		public := apiV1.Group("")
		public.Use(optional)
		{
			public.GET("/home", h.HomePage)
			public.GET("/dashboard", h.DashboardPage)
			public.GET("/settings", h.SettingsPage)
			public.GET("/layout", h.GetLayout)
			public.GET("/theme", h.GetTheme)
			public.PUT("/theme", h.SetTheme)
		}

		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", h.RegisterUser)
			authRoutes.POST("/login", h.LoginUser)
			authRoutes.GET("/confirm-email", h.ConfirmEmail)

			protected := authRoutes.Group("")
			protected.Use(required)
			{
				protected.GET("/me", h.GetMe)
				protected.POST("/logout", h.LogoutUser)
				protected.POST("/refresh", h.RefreshToken)
				protected.GET("/events", h.SessionEvents)
			}
		}

		// Catalog reads are public; tracking needs a session
		gameRoutes := apiV1.Group("/games")
		{
			gameRoutes.GET("", h.GetGames)
			gameRoutes.GET("/:id", h.GetGameByID)
			gameRoutes.GET("/:id/progress", required, h.GetGameProgress)
			gameRoutes.POST("/:id/follow", required, h.ToggleFollowGame)
		}

		consoleRoutes := apiV1.Group("/consoles")
		{
			consoleRoutes.GET("", h.GetConsoles)
			consoleRoutes.GET("/:id", h.GetConsoleByID)
		}

		achievementRoutes := apiV1.Group("/achievements")
		{
			achievementRoutes.GET("", h.GetAchievements)
			achievementRoutes.GET("/:id", h.GetAchievementByID)
			achievementRoutes.POST("/:id/unlock", required, h.ToggleUnlockAchievement)
		}

		playerRoutes := apiV1.Group("/players")
		{
			playerRoutes.GET("", h.GetPlayers)
			playerRoutes.GET("/:id", h.GetPlayerByID)
		}

		settingsRoutes := apiV1.Group("/settings")
		settingsRoutes.Use(required)
		{
			settingsRoutes.PUT("/nickname", h.UpdateNickname)
			settingsRoutes.PUT("/email", h.RequestEmailChange)
			settingsRoutes.PUT("/password", h.ChangePassword)
			settingsRoutes.DELETE("/account", h.DeleteAccount)
		}

		// Admin routes (protected by auth and admin check)
		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(required, auth.AdminMiddleware())
		{
			adminGameRoutes := adminRoutes.Group("/games")
			{
				adminGameRoutes.POST("", h.CreateGame)
				adminGameRoutes.PUT("/:id", h.UpdateGame)
				adminGameRoutes.DELETE("/:id", h.DeleteGame)
			}

			adminConsoleRoutes := adminRoutes.Group("/consoles")
			{
				adminConsoleRoutes.POST("", h.CreateConsole)
				adminConsoleRoutes.PUT("/:id", h.UpdateConsole)
				adminConsoleRoutes.DELETE("/:id", h.DeleteConsole)
			}

			adminAchievementRoutes := adminRoutes.Group("/achievements")
			{
				adminAchievementRoutes.POST("", h.CreateAchievement)
				adminAchievementRoutes.PUT("/:id", h.UpdateAchievement)
				adminAchievementRoutes.DELETE("/:id", h.DeleteAchievement)
			}

			adminRoutes.GET("/forms/:entity", h.GetForm)
			adminRoutes.POST("/forms/:entity", h.SubmitForm)
			adminRoutes.POST("/forms/:entity/:id", h.SubmitForm)
			adminRoutes.POST("/uploads/:bucket", h.UploadImage)
		}
	}

	router.NoRoute(optional, h.NotFound)
	return router
}
