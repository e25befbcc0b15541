package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// CreateBooking inserts a booking unless one already exists for the same
// (date, email, treatmentName). The body is stored verbatim so clients can
// attach extra fields. The existence check and the insert are separate store
// operations, so two identical concurrent requests can both get through.
func (h *Handler) CreateBooking(c *gin.Context) {
	var booking bson.M
	if err := c.ShouldBindJSON(&booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	query := bson.M{
		"date":          booking["date"],
		"email":         booking["email"],
		"treatmentName": booking["treatmentName"],
	}

	collection := h.DB.Collection(bookingsCollection)
	cursor, err := collection.Find(context.TODO(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing bookings"})
		return
	}
	defer cursor.Close(context.TODO())

	var alreadyBooked []bson.M
	if err = cursor.All(context.TODO(), &alreadyBooked); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode bookings"})
		return
	}

	if len(alreadyBooked) > 0 {
		message := fmt.Sprintf("You already have a booking on %v", booking["date"])
		c.JSON(http.StatusOK, gin.H{"acknowledged": false, "message": message})
		return
	}

	result, err := collection.InsertOne(context.TODO(), booking)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": result.InsertedID})
}

// GetBookings lists the bookings for the email given in the query string.
// The route is JWT-guarded, but the queried email is not cross-checked
// against the token's email.
func (h *Handler) GetBookings(c *gin.Context) {
	email := c.Query("email")

	collection := h.DB.Collection(bookingsCollection)
	cursor, err := collection.Find(context.TODO(), bson.M{"email": email})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bookings"})
		return
	}
	defer cursor.Close(context.TODO())

	var appointments []bson.M
	if err = cursor.All(context.TODO(), &appointments); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode bookings"})
		return
	}

	if appointments == nil {
		appointments = make([]bson.M, 0)
	}
	c.JSON(http.StatusOK, appointments)
}
