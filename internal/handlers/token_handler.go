package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Sakil71/doctors-portal-server/internal/models"
	"github.com/Sakil71/doctors-portal-server/internal/utils"
)

// GetAccessToken issues a signed access token for the requested email, but
// only if a user with that email already exists. Unknown emails get 403 with
// an empty token, which the portal client treats as "log in first".
func (h *Handler) GetAccessToken(c *gin.Context) {
	email := c.Query("email")

	var user models.User
	collection := h.DB.Collection(usersCollection)
	err := collection.FindOne(context.TODO(), bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusForbidden, gin.H{"accessToken": ""})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
		return
	}

	token, err := utils.GenerateJWT(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}
