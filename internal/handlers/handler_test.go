package handlers

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// newTestRouter wires every route against the given database, replacing the
// JWT guard with a stub that injects callerEmail as the decoded identity.
func newTestRouter(db *mongo.Database, callerEmail string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(db)

	stubAuth := func(c *gin.Context) {
		c.Set("email", callerEmail)
		c.Next()
	}

	r := gin.New()
	r.GET("/treatment", h.GetTreatments)
	r.POST("/bookings", h.CreateBooking)
	r.GET("/bookings", stubAuth, h.GetBookings)
	r.POST("/users", h.CreateUser)
	r.GET("/users", h.GetUsers)
	r.PUT("/users/admin/:id", stubAuth, h.MakeAdmin)
	r.GET("/users/admin/:email", h.CheckAdmin)
	r.DELETE("/users/:id", h.DeleteUser)
	r.GET("/doctorSpecialty", h.GetDoctorSpecialties)
	r.POST("/doctor", h.CreateDoctor)
	r.GET("/doctor", h.GetDoctors)
	r.DELETE("/doctor/:id", h.DeleteDoctor)
	r.GET("/jwt", h.GetAccessToken)
	return r
}
