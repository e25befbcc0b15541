package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Booking struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Date          string             `bson:"date" json:"date"` // calendar date as sent by the client, e.g. "May 15, 2024"
	Email         string             `bson:"email" json:"email"`
	TreatmentName string             `bson:"treatmentName" json:"treatmentName"` // references Treatment.Name by value
	Slot          string             `bson:"slot" json:"slot"`
	Patient       string             `bson:"patient,omitempty" json:"patient,omitempty"`
	Phone         string             `bson:"phone,omitempty" json:"phone,omitempty"`
}
