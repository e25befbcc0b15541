package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateDoctor stores the doctor document exactly as the client sent it.
func (h *Handler) CreateDoctor(c *gin.Context) {
	var doctor bson.M
	if err := c.ShouldBindJSON(&doctor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	collection := h.DB.Collection(doctorsCollection)
	result, err := collection.InsertOne(context.TODO(), doctor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create doctor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": result.InsertedID})
}

// GetDoctors lists every doctor.
func (h *Handler) GetDoctors(c *gin.Context) {
	collection := h.DB.Collection(doctorsCollection)
	cursor, err := collection.Find(context.TODO(), bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve doctors"})
		return
	}
	defer cursor.Close(context.TODO())

	var doctors []bson.M
	if err = cursor.All(context.TODO(), &doctors); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode doctors"})
		return
	}

	if doctors == nil {
		doctors = make([]bson.M, 0)
	}
	c.JSON(http.StatusOK, doctors)
}

// DeleteDoctor removes a doctor by id.
func (h *Handler) DeleteDoctor(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid doctor ID format"})
		return
	}

	collection := h.DB.Collection(doctorsCollection)
	result, err := collection.DeleteOne(context.TODO(), bson.M{"_id": id})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete doctor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "deletedCount": result.DeletedCount})
}
