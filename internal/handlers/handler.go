package handlers

import "go.mongodb.org/mongo-driver/mongo"

// Collection names in the doctors-portal database.
const (
	treatmentCollection = "treatment"
	bookingsCollection  = "bookings"
	usersCollection     = "users"
	doctorsCollection   = "doctors"
)

// Handler holds the dependencies every route handler needs. The database is
// injected once at startup and shared for the life of the process.
type Handler struct {
	DB *mongo.Database
}

func NewHandler(db *mongo.Database) *Handler {
	return &Handler{DB: db}
}
