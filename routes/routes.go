package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"salonbook/auth"
	"salonbook/config"
	"salonbook/controllers"
	"salonbook/store"
)

// Deps carries the explicitly constructed collaborators; there are no
// package-level singletons.
type Deps struct {
	Config   config.Config
	Log      zerolog.Logger
	Store    *store.Store
	Auth     *auth.Manager
	Verifier controllers.TokenVerifier
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8081"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger(d.Log))

	sessions := auth.Middleware(d.Config.JWTSecret, d.Auth)

	authController := controllers.AuthController{
		Auth:      d.Auth,
		Verifier:  d.Verifier,
		Store:     d.Store,
		JWTSecret: d.Config.JWTSecret,
		JWTExpiry: time.Duration(d.Config.JWTExpiryHours) * time.Hour,
	}
	appointmentController := controllers.AppointmentController{Store: d.Store}
	salonController := controllers.SalonController{Store: d.Store}
	serviceController := controllers.ServiceController{Store: d.Store}
	profileController := controllers.ProfileController{Store: d.Store}
	statsController := controllers.StatsController{Store: d.Store}

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/google", authController.GoogleSignIn)

		authGroup.Use(sessions)
		authGroup.GET("/me", authController.Me)
		authGroup.POST("/signout", authController.SignOut)
	}

	api := r.Group("/api")
	api.Use(sessions)
	{
		// Appointment routes
		appointments := api.Group("/appointments")
		{
			appointments.POST("", appointmentController.CreateAppointment)
			appointments.GET("", appointmentController.ListAppointments)
			appointments.GET("/:id", appointmentController.GetAppointment)
			appointments.PUT("/:id", appointmentController.UpdateAppointment)
			appointments.DELETE("/:id", appointmentController.DeleteAppointment)
		}

		// Salon configuration routes
		salon := api.Group("/salon")
		{
			salon.GET("", salonController.GetSalon)
			salon.PUT("", salonController.SaveSalon)
			salon.PUT("/hours", salonController.UpdateWorkingHours)

			services := salon.Group("/services")
			{
				services.POST("", serviceController.CreateService)
				services.GET("", serviceController.GetServices)
				services.PUT("/:id", serviceController.UpdateService)
				services.DELETE("/:id", serviceController.DeleteService)
			}
		}

		// Profile routes
		profile := api.Group("/profile")
		{
			profile.GET("", profileController.GetProfile)
			profile.PUT("", profileController.UpdateProfile)
		}

		// Stats routes
		api.GET("/stats", statsController.GetStats)
	}

	return r
}
