package laundry

import "time"

// SlotStatus is the lifecycle of a laundry slot.
type SlotStatus string

const (
	Booked    SlotStatus = "Booked"
	Available SlotStatus = "Available"
	Completed SlotStatus = "Completed"
	Cancelled SlotStatus = "Cancelled"
)

// Slot is a bookable laundry time unit for a room and date.
type Slot struct {
	ID           string     `json:"id" bson:"id"`
	Date         time.Time  `json:"date" bson:"date"`
	Time         string     `json:"time" bson:"time"`
	Status       SlotStatus `json:"status" bson:"status"`
	ReminderSent bool       `json:"reminderSent" bson:"reminderSent"`
	BookedBy     string     `json:"bookedBy" bson:"bookedBy"`
}

// WeeklySchedule is a room's usual laundry day.
type WeeklySchedule struct {
	Day         string `json:"day" bson:"day"`
	DefaultTime string `json:"defaultTime" bson:"defaultTime"`
}

// Laundry is the slot list of one room; there is one per hostel room.
type Laundry struct {
	ID             string          `json:"id" bson:"_id"`
	HostelName     string          `json:"hostelName" bson:"hostelName"`
	RoomNumber     string          `json:"roomNumber" bson:"roomNumber"`
	UserID         string          `json:"userId" bson:"userId"`
	Slots          []Slot          `json:"slots" bson:"slots"`
	WeeklySchedule *WeeklySchedule `json:"weeklySchedule,omitempty" bson:"weeklySchedule,omitempty"`
}

// Booking asks for a slot; Date is a calendar day (YYYY-MM-DD).
type Booking struct {
	Date string `json:"date" binding:"required,datetime=2006-01-02"`
	Time string `json:"time" binding:"required,clock"`
}

// StatusChange moves a slot to another status.
type StatusChange struct {
	Status SlotStatus `json:"status" binding:"required,oneof=Booked Available Completed Cancelled"`
}

// DueSlot is a booked slot found by the reminder scan.
type DueSlot struct {
	LaundryID  string
	UserID     string
	HostelName string
	RoomNumber string
	Slot       Slot
}
