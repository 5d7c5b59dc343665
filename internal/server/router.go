package server

import (
	"net/http"

	"fittracker/internal/challenge"
	"fittracker/internal/config"
	"fittracker/internal/database"
	"fittracker/internal/handlers"
	"fittracker/internal/middleware"
	"fittracker/internal/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Static("/static", "./web/static")
	r.LoadHTMLGlob("web/templates/*.html")

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSAllowedOrigin},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("fittracker_session", store))

	r.Use(middleware.InjectIdentity())

	handlers.UseChallengeEngine(
		challenge.NewEngine(database.NewEnrollmentStore(database.DB)),
	)

	// PUBLIC PAGES
	r.GET("/", handlers.IndexPage)
	r.GET("/feedback", handlers.FeedbackPage)
	r.GET("/contact", handlers.ContactPage)
	r.GET("/afterlogin", handlers.AfterLoginPage)

	// AUTH
	r.GET("/signup", handlers.ShowSignup)
	r.POST("/signup", handlers.Signup)
	r.GET("/login", handlers.ShowLogin)
	r.POST("/loginkr", handlers.Login)
	r.GET("/logout", handlers.Logout)

	// DIET CALCULATOR (no login required)
	r.GET("/diet", handlers.ShowDiet)
	r.POST("/diet", handlers.Diet)

	// DASHBOARDS
	r.GET("/admin",
		middleware.RequireRole(models.RoleAdmin),
		handlers.AdminDashboard,
	)
	r.GET("/user",
		middleware.RequireAuth(),
		handlers.UserDashboard,
	)

	// CHALLENGES
	r.POST("/enroll_challenge",
		middleware.RequireAuthJSON(),
		handlers.EnrollChallenge,
	)
	r.POST("/update_progress",
		middleware.RequireAuth(),
		handlers.UpdateProgress,
	)
	r.POST("/complete_challenge",
		middleware.RequireAuth(),
		handlers.CompleteChallenge,
	)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
