package notice

import "time"

const (
	AudienceAll   = "All"
	AudienceBoys  = "Boys"
	AudienceGirls = "Girls"
	AudienceBlock = "Specific Block"
)

// Notice is a hostel announcement.
type Notice struct {
	ID             string     `json:"id" bson:"_id"`
	HostelName     string     `json:"hostelName" bson:"hostelName"`
	Title          string     `json:"title" bson:"title"`
	Description    string     `json:"description" bson:"description"`
	Type           string     `json:"type" bson:"type"`
	Date           *time.Time `json:"date,omitempty" bson:"date,omitempty"`
	Time           string     `json:"time" bson:"time"`
	PostedBy       string     `json:"postedBy" bson:"postedBy"`
	PosterID       string     `json:"-" bson:"posterId"`
	TargetAudience string     `json:"targetAudience" bson:"targetAudience"`
	Block          string     `json:"block" bson:"block"`
	IsActive       bool       `json:"isActive" bson:"isActive"`
	CreatedAt      time.Time  `json:"createdAt" bson:"createdAt"`
}

// NewNotice is a notice as submitted for publishing. HostelName and PostedBy
// default to the poster's hostel and name.
type NewNotice struct {
	HostelName     string     `json:"hostelName"`
	Title          string     `json:"title" binding:"required"`
	Description    string     `json:"description" binding:"required"`
	Type           string     `json:"type" binding:"required,oneof=Inspection Laundry Maintenance Event Emergency General"`
	Date           *time.Time `json:"date"`
	Time           string     `json:"time" binding:"omitempty,clock"`
	PostedBy       string     `json:"postedBy"`
	TargetAudience string     `json:"targetAudience" binding:"omitempty,oneof=All Boys Girls 'Specific Block'"`
	Block          string     `json:"block" binding:"required_if=TargetAudience 'Specific Block'"`
}

// visibleTo reports whether a resident of block should see n.
func (n Notice) visibleTo(block string) bool {
	if n.TargetAudience != AudienceBlock {
		return true
	}
	return n.Block != "" && n.Block == block
}
