package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Sakil71/doctors-portal-server/internal/models"
	"github.com/Sakil71/doctors-portal-server/internal/services"
)

// GetTreatments lists every treatment with the slots still open on the
// requested date. Availability is computed per request; stored treatment
// documents are never modified.
func (h *Handler) GetTreatments(c *gin.Context) {
	date := c.Query("date")

	collection := h.DB.Collection(treatmentCollection)
	cursor, err := collection.Find(context.TODO(), bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve treatments"})
		return
	}
	defer cursor.Close(context.TODO())

	var treatments []models.Treatment
	if err = cursor.All(context.TODO(), &treatments); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode treatments"})
		return
	}

	// Without a date the filter matches only bookings that carry no date
	// field at all, so every slot stays open.
	bookingQuery := bson.M{"date": date}
	if date == "" {
		bookingQuery = bson.M{"date": bson.M{"$exists": false}}
	}

	bookingCursor, err := h.DB.Collection(bookingsCollection).Find(context.TODO(), bookingQuery)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bookings"})
		return
	}
	defer bookingCursor.Close(context.TODO())

	var alreadyBooked []models.Booking
	if err = bookingCursor.All(context.TODO(), &alreadyBooked); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode bookings"})
		return
	}

	services.ApplyAvailability(treatments, alreadyBooked)

	if treatments == nil {
		treatments = make([]models.Treatment, 0)
	}
	c.JSON(http.StatusOK, treatments)
}

// GetDoctorSpecialties returns the treatment names only, for populating the
// specialty picker on the add-doctor form.
func (h *Handler) GetDoctorSpecialties(c *gin.Context) {
	findOptions := options.Find().SetProjection(bson.M{"name": 1})

	collection := h.DB.Collection(treatmentCollection)
	cursor, err := collection.Find(context.TODO(), bson.M{}, findOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve specialties"})
		return
	}
	defer cursor.Close(context.TODO())

	var specialties []bson.M
	if err = cursor.All(context.TODO(), &specialties); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode specialties"})
		return
	}

	if specialties == nil {
		specialties = make([]bson.M, 0)
	}
	c.JSON(http.StatusOK, specialties)
}
