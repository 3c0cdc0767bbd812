package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ShwetaRajputsk/xfasbackend-sub001/controllers"
	"github.com/ShwetaRajputsk/xfasbackend-sub001/database"
	"github.com/ShwetaRajputsk/xfasbackend-sub001/middleware"
	"github.com/ShwetaRajputsk/xfasbackend-sub001/models"
	"github.com/ShwetaRajputsk/xfasbackend-sub001/pricing"
	"github.com/ShwetaRajputsk/xfasbackend-sub001/utils"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file")
	}

	ctx := context.Background()
	if err := database.EnsureIndexes(ctx); err != nil {
		log.Fatal(err)
	}
	//seeding admin user
	usersCol := database.OpenCollection("users")
	if err := utils.SeedAdminUser(ctx, usersCol); err != nil {
		log.Fatal(err)
	}

	pricingClient, err := pricing.NewClientFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	r := gin.New()
	v := utils.NewPDFOrImageValidator()

	origins := os.Getenv("ALLOWED_ORIGINS")
	allowedOrigins := map[string]bool{}
	for _, origin := range strings.Split(origins, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			allowedOrigins[origin] = true
		}
	}
	log.Printf("Allowed origins: %v", allowedOrigins)
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return allowedOrigins[origin]
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	r.POST("/auth/register", controllers.Register())
	r.POST("/auth/login", controllers.Login())
	r.POST("/auth/refresh", controllers.Refresh())
	r.POST("/auth/logout", controllers.Logout())

	r.POST("/quotes", controllers.GetQuotes(pricingClient))
	r.GET("/quotes/priority-connections/countries", controllers.GetPriorityCountries())
	r.GET("/carriers", controllers.GetCarriers())
	r.GET("/carriers/:id", controllers.GetCarrier())
	r.GET("/carriers/code/:code", controllers.GetCarrier())
	r.GET("/tracking/:awb", controllers.TrackShipment())

	user := r.Group("/")
	user.Use(middleware.AuthMiddleware())
	{
		user.POST("/bookings", controllers.CreateBooking())
		user.DELETE("/bookings/:id", controllers.CancelBooking())
		user.GET("/orders", controllers.GetMyOrders())
		user.GET("/orders/:id", controllers.GetMyOrder())
	}

	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(models.RoleAdmin))
	{
		admin.POST("/carriers", controllers.AddCarrier())
		admin.PATCH("/carriers/:id", controllers.UpdateCarrier())
		admin.DELETE("/carriers/:id", controllers.DeleteCarrier())

		admin.GET("/bookings", controllers.AdminGetBookings())
		admin.GET("/bookings/:id", controllers.AdminGetBooking())
		admin.PATCH("/bookings/:id/status", controllers.AdminUpdateBookingStatus())
		admin.POST("/bookings/:id/events", controllers.AdminAddTrackingEvent())
		admin.POST("/bookings/:id/notes", controllers.AdminAddBookingNote())
		admin.POST("/bookings/:id/label", controllers.AdminUploadLabel())
		admin.POST("/bookings/:id/proof", controllers.AdminUploadProofOfDelivery(v))

		admin.GET("/priority-countries", controllers.AdminGetPriorityCountries())
		admin.POST("/priority-countries", controllers.AdminAddPriorityCountry())
		admin.PATCH("/priority-countries/:id", controllers.AdminUpdatePriorityCountry())
		admin.DELETE("/priority-countries/:id", controllers.AdminDeletePriorityCountry())

		admin.POST("/users", controllers.CreateAdminUser())
		admin.POST("/users/me/password", controllers.ChangeMyPassword())
	}

	// Server listens on 0.0.0.0:8080 unless PORT overrides it
	r.Run()
}
