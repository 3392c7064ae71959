package attendance

import "time"

// Status of a single class for a student.
type Status string

const (
	Present Status = "Present"
	Absent  Status = "Absent"
	Leave   Status = "Leave"
	Medical Status = "Medical"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case Present, Absent, Leave, Medical:
		return true
	}
	return false
}

// Record is one marked class.
type Record struct {
	Date        time.Time `json:"date" bson:"date"`
	Status      Status    `json:"status" bson:"status"`
	Reason      string    `json:"reason,omitempty" bson:"reason,omitempty"`
	Certificate string    `json:"certificate,omitempty" bson:"certificate,omitempty"`
}

// Attendance tracks one subject for one student.
// AttendedClasses never exceeds TotalClasses.
type Attendance struct {
	ID                 string   `json:"id" bson:"_id"`
	UserID             string   `json:"userId" bson:"userId"`
	Subject            string   `json:"subject" bson:"subject"`
	SubjectCode        string   `json:"subjectCode" bson:"subjectCode"`
	TotalClasses       int      `json:"totalClasses" bson:"totalClasses"`
	AttendedClasses    int      `json:"attendedClasses" bson:"attendedClasses"`
	Records            []Record `json:"records" bson:"records"`
	RequiredPercentage float64  `json:"requiredPercentage" bson:"requiredPercentage"`
	Semester           int      `json:"semester" bson:"semester"`
}

// WithStanding is an attendance document with its computed standing.
type WithStanding struct {
	Attendance
	Standing
}

// NewAttendance starts tracking a subject.
type NewAttendance struct {
	Subject            string   `json:"subject" binding:"required"`
	SubjectCode        string   `json:"subjectCode"`
	TotalClasses       int      `json:"totalClasses" binding:"min=0"`
	AttendedClasses    int      `json:"attendedClasses" binding:"min=0,ltefield=TotalClasses"`
	RequiredPercentage *float64 `json:"requiredPercentage" binding:"omitempty,gt=0,lte=100"`
	Semester           int      `json:"semester" binding:"omitempty,min=1,max=12"`
}

// Mark records the outcome of one class.
type Mark struct {
	Status      Status `json:"status" binding:"required,oneof=Present Absent Leave Medical"`
	Reason      string `json:"reason"`
	Certificate string `json:"certificate" binding:"omitempty,url"`
}

// DefaultRequiredPercentage applies when a subject does not set one.
const DefaultRequiredPercentage = 75
