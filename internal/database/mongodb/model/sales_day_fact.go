package model

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SalesDayFact 每日營收結構事實；BeverageShare 為飲務營收占比 (0–1)。
type SalesDayFact struct {
	ID            primitive.ObjectID `json:"id" bson:"_id"`
	VenueID       primitive.ObjectID `json:"venueId" bson:"venueId"`
	BusinessDate  string             `json:"businessDate" bson:"businessDate"`
	Revenue       float64            `json:"revenue" bson:"revenue"`
	BeverageShare float64            `json:"beverageShare" bson:"beverageShare"`
}

var SalesDayFactIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "venueId", Value: 1}, {Key: "businessDate", Value: -1}},
		Options: options.Index().SetName("idx_venueId_businessDate"),
	},
}
