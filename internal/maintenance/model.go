package maintenance

import "time"

const (
	Pending    = "Pending"
	InProgress = "In Progress"
	Resolved   = "Resolved"
	Rejected   = "Rejected"
)

// Ticket is a repair request for a resident's room.
type Ticket struct {
	ID          string     `json:"id" bson:"_id"`
	UserID      string     `json:"userId" bson:"userId"`
	HostelName  string     `json:"hostelName" bson:"hostelName"`
	RoomNumber  string     `json:"roomNumber" bson:"roomNumber"`
	IssueType   string     `json:"issueType" bson:"issueType"`
	Description string     `json:"description" bson:"description"`
	Urgency     string     `json:"urgency" bson:"urgency"`
	Status      string     `json:"status" bson:"status"`
	Images      []string   `json:"images" bson:"images"`
	AssignedTo  string     `json:"assignedTo" bson:"assignedTo"`
	ResolvedAt  *time.Time `json:"resolvedAt,omitempty" bson:"resolvedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt" bson:"createdAt"`
}

// NewTicket is a repair request as submitted; the room comes from the profile.
type NewTicket struct {
	IssueType   string   `json:"issueType" binding:"required,oneof=Electrical Plumbing Furniture AC Internet Other"`
	Description string   `json:"description" binding:"required"`
	Urgency     string   `json:"urgency" binding:"omitempty,oneof=Low Medium High Emergency"`
	Images      []string `json:"images" binding:"omitempty,dive,url"`
}
