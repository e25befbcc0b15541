package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Sakil71/doctors-portal-server/internal/models"
	"github.com/Sakil71/doctors-portal-server/internal/utils"
)

// CreateUser stores the signup document verbatim, hashing a password field
// first when the client sends one.
func (h *Handler) CreateUser(c *gin.Context) {
	var user bson.M
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if password, ok := user["password"].(string); ok && password != "" {
		hashed, err := utils.HashPassword(password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		user["password"] = hashed
	}

	collection := h.DB.Collection(usersCollection)
	result, err := collection.InsertOne(context.TODO(), user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": result.InsertedID})
}

// GetUsers lists every user. Password hashes are stripped before the
// documents go out.
func (h *Handler) GetUsers(c *gin.Context) {
	collection := h.DB.Collection(usersCollection)
	cursor, err := collection.Find(context.TODO(), bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}
	defer cursor.Close(context.TODO())

	var users []bson.M
	if err = cursor.All(context.TODO(), &users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode users"})
		return
	}

	for _, user := range users {
		delete(user, "password")
	}

	if users == nil {
		users = make([]bson.M, 0)
	}
	c.JSON(http.StatusOK, users)
}

// MakeAdmin promotes the user with the given id to the admin role. Only a
// caller whose token email belongs to an existing admin may do this.
func (h *Handler) MakeAdmin(c *gin.Context) {
	decodedEmail, _ := c.Get("email")

	var caller models.User
	collection := h.DB.Collection(usersCollection)
	err := collection.FindOne(context.TODO(), bson.M{"email": decodedEmail}).Decode(&caller)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up caller"})
		return
	}
	if !caller.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"message": "Access forbidden"})
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return
	}

	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"role": "admin"}}
	opts := options.Update().SetUpsert(true)

	result, err := collection.UpdateOne(context.TODO(), filter, update, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"acknowledged":  true,
		"matchedCount":  result.MatchedCount,
		"modifiedCount": result.ModifiedCount,
		"upsertedId":    result.UpsertedID,
	})
}

// CheckAdmin reports whether the user with the given email holds the admin
// role. An unknown email is simply not an admin; this endpoint never fails.
func (h *Handler) CheckAdmin(c *gin.Context) {
	email := c.Param("email")

	var user models.User
	collection := h.DB.Collection(usersCollection)
	err := collection.FindOne(context.TODO(), bson.M{"email": email}).Decode(&user)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"isAdmin": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"isAdmin": user.IsAdmin()})
}

// DeleteUser removes a user by id. Deleting an id that does not exist is not
// an error; the response just reports zero deletions.
func (h *Handler) DeleteUser(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return
	}

	collection := h.DB.Collection(usersCollection)
	result, err := collection.DeleteOne(context.TODO(), bson.M{"_id": id})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "deletedCount": result.DeletedCount})
}
