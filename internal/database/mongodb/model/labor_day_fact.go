package model

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LaborDayFact 每日勞動彙總事實，由 POS 匯入批次寫入；排班只讀不寫。
type LaborDayFact struct {
	ID           primitive.ObjectID `json:"id" bson:"_id"`
	VenueID      primitive.ObjectID `json:"venueId" bson:"venueId"`
	BusinessDate string             `json:"businessDate" bson:"businessDate"`
	Covers       float64            `json:"covers" bson:"covers"`
	FOHHours     float64            `json:"fohHours" bson:"fohHours"`
	BOHHours     float64            `json:"bohHours" bson:"bohHours"`
	FOHHeadcount int                `json:"fohHeadcount" bson:"fohHeadcount"`
	BOHHeadcount int                `json:"bohHeadcount" bson:"bohHeadcount"`
}

var LaborDayFactIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "venueId", Value: 1}, {Key: "businessDate", Value: -1}},
		Options: options.Index().SetName("idx_venueId_businessDate"),
	},
	{
		Keys:    bson.D{{Key: "venueId", Value: 1}, {Key: "covers", Value: -1}},
		Options: options.Index().SetName("idx_venueId_covers"),
	},
}
