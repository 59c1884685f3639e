package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Employee struct {
	ID                primitive.ObjectID `json:"id" bson:"_id"`
	VenueID           primitive.ObjectID `json:"venueId" bson:"venueId"`
	DisplayName       string             `json:"displayName" bson:"displayName"`
	PrimaryPositionID primitive.ObjectID `json:"primaryPositionId" bson:"primaryPositionId"`
	EmploymentStatus  string             `json:"employmentStatus" bson:"employmentStatus"`
	MaxHoursPerWeek   float64            `json:"maxHoursPerWeek,omitempty" bson:"maxHoursPerWeek,omitempty"`
	CreatedAt         time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt" bson:"updatedAt"`
}

var EmployeeIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "venueId", Value: 1}, {Key: "employmentStatus", Value: 1}},
		Options: options.Index().SetName("idx_venueId_employmentStatus"),
	},
	{
		Keys:    bson.D{{Key: "venueId", Value: 1}, {Key: "primaryPositionId", Value: 1}},
		Options: options.Index().SetName("idx_venueId_primaryPositionId"),
	},
}
