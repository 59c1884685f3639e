package core

import "go.mongodb.org/mongo-driver/bson"

// ─── Database Types ────────────────────────────────────────────────────────────

// DatabaseType defines the type of database
type DatabaseType string

const (
	Mongo DatabaseType = "mongo"
	Redis DatabaseType = "redis"
)

// Databases contains all supported database types
var Databases = []DatabaseType{Mongo, Redis}

type MongoDatabaseName string
type MongoCollection string
type RedisKey string
type FluentdSubTag string

// ─── MongoDB ───────────────────────────────────────────────────────────────────
const (
	MongoDBShiftwave MongoDatabaseName = "shiftwave"
)

// MongoDB collections
const (
	MongoCollectionVenues           MongoCollection = "venues"
	MongoCollectionPositions        MongoCollection = "positions"
	MongoCollectionEmployees        MongoCollection = "employees"
	MongoCollectionDemandForecasts  MongoCollection = "demand_forecasts"
	MongoCollectionLaborDayFacts    MongoCollection = "labor_day_facts"
	MongoCollectionSalesDayFacts    MongoCollection = "sales_day_facts"
	MongoCollectionWeeklySchedules  MongoCollection = "weekly_schedules"
	MongoCollectionShiftAssignments MongoCollection = "shift_assignments"
)

// ─── Redis Keys ────────────────────────────────────────────────────────────────

const (
	RedisKeyScheduleRunLock RedisKey = "schedule_run_lock" // 同一 (venue, week) 的產生互斥鎖
	RedisKeyServerName      RedisKey = "shiftwave"         // 伺服器名稱
)

const (
	FluentdScheduleRun FluentdSubTag = "schedule_run_log"
	FluentdRequest     FluentdSubTag = "request_log"
)

type ListOptions struct {
	Filter bson.M `json:"filter,omitempty" bson:"filter,omitempty"`
	Page   int64  `json:"page,omitempty" bson:"page,omitempty"`
	Size   int64  `json:"size,omitempty" bson:"size,omitempty"`
}
