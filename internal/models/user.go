package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name,omitempty" json:"name,omitempty"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password,omitempty" json:"-"` // Hide from JSON responses
	Role     string             `bson:"role,omitempty" json:"role,omitempty"` // only "admin" grants elevated access
}

// IsAdmin reports whether the stored role is exactly "admin". Any other
// value, including a missing role, is non-admin.
func (u User) IsAdmin() bool {
	return u.Role == "admin"
}
