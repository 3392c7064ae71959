package timetable

import "time"

// Class is one weekly slot in a timetable.
type Class struct {
	ID          string `json:"id" bson:"id"`
	Day         string `json:"day" bson:"day" binding:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday"`
	Subject     string `json:"subject" bson:"subject" binding:"required"`
	SubjectCode string `json:"subjectCode" bson:"subjectCode"`
	StartTime   string `json:"startTime" bson:"startTime" binding:"required,clock"`
	EndTime     string `json:"endTime" bson:"endTime" binding:"required,clock"`
	Room        string `json:"room" bson:"room"`
	Block       string `json:"block" bson:"block"`
	Professor   string `json:"professor" bson:"professor"`
	Type        string `json:"type" bson:"type" binding:"omitempty,oneof=Lecture Lab Tutorial"`
}

// Timetable is a resident's weekly schedule. There is one per user.
type Timetable struct {
	ID        string    `json:"id" bson:"_id"`
	UserID    string    `json:"userId" bson:"userId"`
	Semester  int       `json:"semester" bson:"semester"`
	Classes   []Class   `json:"classes" bson:"classes"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Input replaces the caller's timetable.
type Input struct {
	Semester int     `json:"semester" binding:"omitempty,min=1,max=12"`
	Classes  []Class `json:"classes" binding:"dive"`
}
