package assignment

import "time"

type Status string

const (
	Pending    Status = "Pending"
	InProgress Status = "In Progress"
	Completed  Status = "Completed"
	Overdue    Status = "Overdue"
)

type Priority string

const (
	Low    Priority = "Low"
	Medium Priority = "Medium"
	High   Priority = "High"
)

// Assignment is a piece of coursework with a deadline.
type Assignment struct {
	ID           string    `json:"id" bson:"_id"`
	UserID       string    `json:"userId" bson:"userId"`
	Subject      string    `json:"subject" bson:"subject"`
	Title        string    `json:"title" bson:"title"`
	Description  string    `json:"description" bson:"description"`
	DueDate      time.Time `json:"dueDate" bson:"dueDate"`
	Status       Status    `json:"status" bson:"status"`
	Priority     Priority  `json:"priority" bson:"priority"`
	Attachments  []string  `json:"attachments" bson:"attachments"`
	ReminderSent bool      `json:"reminderSent" bson:"reminderSent"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}

// NewAssignment is what a resident submits to track coursework.
type NewAssignment struct {
	Subject     string    `json:"subject" binding:"required"`
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate" binding:"required"`
	Priority    Priority  `json:"priority" binding:"omitempty,oneof=Low Medium High"`
	Attachments []string  `json:"attachments" binding:"omitempty,dive,url"`
}

// Patch changes an assignment; nil fields are kept. Moving the due date
// re-arms the reminder.
type Patch struct {
	Subject     *string    `json:"subject" binding:"omitempty,min=1"`
	Title       *string    `json:"title" binding:"omitempty,min=1"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	Status      *Status    `json:"status" binding:"omitempty,oneof=Pending 'In Progress' Completed"`
	Priority    *Priority  `json:"priority" binding:"omitempty,oneof=Low Medium High"`
	Attachments *[]string  `json:"attachments" binding:"omitempty,dive,url"`
}

func (p Patch) apply(a *Assignment) {
	if p.Subject != nil {
		a.Subject = *p.Subject
	}
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.DueDate != nil {
		a.DueDate = p.DueDate.UTC()
		a.ReminderSent = false
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.Priority != nil {
		a.Priority = *p.Priority
	}
	if p.Attachments != nil {
		a.Attachments = *p.Attachments
	}
}

func (p Patch) fields() map[string]any {
	set := map[string]any{}
	if p.Subject != nil {
		set["subject"] = *p.Subject
	}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.DueDate != nil {
		set["dueDate"] = p.DueDate.UTC()
		set["reminderSent"] = false
	}
	if p.Status != nil {
		set["status"] = *p.Status
	}
	if p.Priority != nil {
		set["priority"] = *p.Priority
	}
	if p.Attachments != nil {
		set["attachments"] = *p.Attachments
	}
	return set
}

// effective reports Overdue for open assignments whose deadline has passed.
func (a Assignment) effective(now time.Time) Assignment {
	if (a.Status == Pending || a.Status == InProgress) && a.DueDate.Before(now) {
		a.Status = Overdue
	}
	return a
}
