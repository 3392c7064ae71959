package roommate

import "time"

// Presence says whether a roommate is in the room.
type Presence string

const (
	In  Presence = "In"
	Out Presence = "Out"
)

// Mate is one entry on a resident's roommate roster.
type Mate struct {
	ID              string     `json:"id" bson:"id"`
	RoommateID      string     `json:"roommateId,omitempty" bson:"roommateId,omitempty"`
	Name            string     `json:"name" bson:"name"`
	PhoneNumber     string     `json:"phoneNumber" bson:"phoneNumber"`
	Status          Presence   `json:"status" bson:"status"`
	LastCheckIn     *time.Time `json:"lastCheckIn,omitempty" bson:"lastCheckIn,omitempty"`
	LastCheckOut    *time.Time `json:"lastCheckOut,omitempty" bson:"lastCheckOut,omitempty"`
	LocationSharing bool       `json:"locationSharing" bson:"locationSharing"`
}

// Roster is the roommate list owned by one resident.
type Roster struct {
	ID        string `json:"id" bson:"_id"`
	UserID    string `json:"userId" bson:"userId"`
	Roommates []Mate `json:"roommates" bson:"roommates"`
}

// NewMate is what a resident submits to add a roommate. RoommateID links a
// registered user whose name and phone fill blanks on read.
type NewMate struct {
	RoommateID      string   `json:"roommateId"`
	Name            string   `json:"name" binding:"required_without=RoommateID"`
	PhoneNumber     string   `json:"phoneNumber"`
	Status          Presence `json:"status" binding:"omitempty,oneof=In Out"`
	LocationSharing bool     `json:"locationSharing"`
}

// StatusChange records a check in or check out.
type StatusChange struct {
	Status Presence `json:"status" binding:"required"`
}
