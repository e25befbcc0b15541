package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Sakil71/doctors-portal-server/internal/handlers"
	"github.com/Sakil71/doctors-portal-server/internal/middleware"
)

const databaseName = "doctors-portal"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}
	log.Printf("DB_USER: %s", os.Getenv("DB_USER"))
	if os.Getenv("ACCESS_TOKEN") != "" {
		log.Println("ACCESS_TOKEN is SET.")
	} else {
		log.Println("ACCESS_TOKEN is NOT SET.")
	}

	// --- Database Connection ---
	// The driver connects lazily, so bad credentials only surface on the
	// first actual operation.
	uri := fmt.Sprintf(
		"mongodb+srv://%s:%s@cluster1.pw2gnqu.mongodb.net/?retryWrites=true&w=majority",
		url.QueryEscape(os.Getenv("DB_USER")),
		url.QueryEscape(os.Getenv("DB_PASS")),
	)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to create MongoDB client: %v", err)
	}
	defer client.Disconnect(ctx)
	db := client.Database(databaseName)

	// --- Initialize Handlers with DB ---
	h := handlers.NewHandler(db)

	// --- Gin Router ---
	r := gin.Default()

	// --- Middleware ---
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	// --- Routes ---
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Doctors portal server running...")
	})

	r.GET("/treatment", h.GetTreatments)

	r.POST("/bookings", h.CreateBooking)
	r.GET("/bookings", middleware.VerifyJWT(), h.GetBookings)

	r.POST("/users", h.CreateUser)
	r.GET("/users", h.GetUsers)
	r.PUT("/users/admin/:id", middleware.VerifyJWT(), h.MakeAdmin)
	r.GET("/users/admin/:email", h.CheckAdmin)
	r.DELETE("/users/:id", h.DeleteUser)

	r.GET("/doctorSpecialty", h.GetDoctorSpecialties)
	r.POST("/doctor", h.CreateDoctor)
	r.GET("/doctor", h.GetDoctors)
	r.DELETE("/doctor/:id", h.DeleteDoctor)

	r.GET("/jwt", h.GetAccessToken)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000" // Default port
	}
	log.Printf("server running on port: %s", port)
	r.Run(":" + port)
}
