package user

import "time"

// HostelDetails places a resident in a hostel room.
type HostelDetails struct {
	HostelName string `json:"hostelName" bson:"hostelName"`
	RoomNumber string `json:"roomNumber" bson:"roomNumber"`
	Floor      int    `json:"floor" bson:"floor"`
	Block      string `json:"block" bson:"block"`
}

// EmergencyContact is who to call for a resident.
type EmergencyContact struct {
	Name     string `json:"name" bson:"name"`
	Phone    string `json:"phone" bson:"phone"`
	Relation string `json:"relation" bson:"relation"`
}

// User is a registered resident. Password holds the bcrypt hash and is never serialized to JSON.
type User struct {
	ID               string           `json:"id" bson:"_id"`
	Name             string           `json:"name" bson:"name"`
	Email            string           `json:"email" bson:"email"`
	Password         string           `json:"-" bson:"password"`
	USN              string           `json:"usn" bson:"usn"`
	PhoneNumber      string           `json:"phoneNumber" bson:"phoneNumber"`
	BloodType        string           `json:"bloodType" bson:"bloodType"`
	Birthday         *time.Time       `json:"birthday,omitempty" bson:"birthday,omitempty"`
	EmergencyContact EmergencyContact `json:"emergencyContact" bson:"emergencyContact"`
	HostelDetails    HostelDetails    `json:"hostelDetails" bson:"hostelDetails"`
	Branch           string           `json:"branch" bson:"branch"`
	Semester         int              `json:"semester" bson:"semester"`
	ProfilePicture   string           `json:"profilePicture" bson:"profilePicture"`
	CreatedAt        time.Time        `json:"createdAt" bson:"createdAt"`
}

// NewUser contains what a resident submits to register.
type NewUser struct {
	Name          string        `json:"name" binding:"required"`
	Email         string        `json:"email" binding:"required,email"`
	Password      string        `json:"password" binding:"required,min=6"`
	USN           string        `json:"usn" binding:"required"`
	PhoneNumber   string        `json:"phoneNumber"`
	HostelDetails HostelDetails `json:"hostelDetails"`
}

// ProfileUpdate lists the profile fields a resident may change. Nil fields are left as is.
type ProfileUpdate struct {
	Name             *string           `json:"name" binding:"omitempty,min=1"`
	PhoneNumber      *string           `json:"phoneNumber"`
	BloodType        *string           `json:"bloodType"`
	Birthday         *time.Time        `json:"birthday"`
	EmergencyContact *EmergencyContact `json:"emergencyContact"`
	HostelDetails    *HostelDetails    `json:"hostelDetails"`
	Branch           *string           `json:"branch"`
	Semester         *int              `json:"semester" binding:"omitempty,min=1,max=12"`
	ProfilePicture   *string           `json:"profilePicture"`
}

// Summary is the public part of a user returned at login.
type Summary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u User) Summary() Summary {
	return Summary{ID: u.ID, Name: u.Name, Email: u.Email}
}

func (u *User) apply(pu ProfileUpdate) {
	if pu.Name != nil {
		u.Name = *pu.Name
	}
	if pu.PhoneNumber != nil {
		u.PhoneNumber = *pu.PhoneNumber
	}
	if pu.BloodType != nil {
		u.BloodType = *pu.BloodType
	}
	if pu.Birthday != nil {
		b := *pu.Birthday
		u.Birthday = &b
	}
	if pu.EmergencyContact != nil {
		u.EmergencyContact = *pu.EmergencyContact
	}
	if pu.HostelDetails != nil {
		u.HostelDetails = *pu.HostelDetails
	}
	if pu.Branch != nil {
		u.Branch = *pu.Branch
	}
	if pu.Semester != nil {
		u.Semester = *pu.Semester
	}
	if pu.ProfilePicture != nil {
		u.ProfilePicture = *pu.ProfilePicture
	}
}
