package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Treatment documents are seeded externally; the server only reads them and
// rewrites Slots in responses. The stored document is never mutated by booking.
type Treatment struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name  string             `bson:"name" json:"name"`
	Price int                `bson:"price,omitempty" json:"price,omitempty"`
	Slots []string           `bson:"slots" json:"slots"`
}
