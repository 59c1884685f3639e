package core

// PositionCategory
type PositionCategory string

const (
	CategoryFrontOfHouse PositionCategory = "front_of_house"
	CategoryBackOfHouse  PositionCategory = "back_of_house"
	CategoryManagement   PositionCategory = "management"
)

// VenueClass 決定吧檯複合模型的 DPLH 與飲務占比預設值
type VenueClass string

const (
	VenueClassNightclub      VenueClass = "nightclub"
	VenueClassLateNightBar   VenueClass = "late_night_lounge"
	VenueClassMemberClub     VenueClass = "member_club"
	VenueClassSupperClub     VenueClass = "supper_club"
	VenueClassUnclassified   VenueClass = ""
)

// ShiftType 對應波次模板的時段標記
type ShiftType string

const (
	ShiftTypeOpening   ShiftType = "opening"
	ShiftTypeLunch     ShiftType = "lunch"
	ShiftTypeDinner    ShiftType = "dinner"
	ShiftTypeLateNight ShiftType = "late_night"
)

// ScheduleStatus
type ScheduleStatus string

const (
	ScheduleStatusDraft     ScheduleStatus = "draft"
	ScheduleStatusPublished ScheduleStatus = "published"
)

// ShiftStatus
type ShiftStatus string

const (
	ShiftStatusScheduled ShiftStatus = "scheduled"
)

// EmploymentStatus
const (
	EmploymentStatusActive = "active"
	VenueStatusActive      = "active"
	PositionStatusActive   = "active"
)
