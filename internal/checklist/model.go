package checklist

import "time"

// Item is one thing to carry when leaving the room.
type Item struct {
	ID        string `json:"id" bson:"id"`
	Name      string `json:"name" bson:"name"`
	Emoji     string `json:"emoji" bson:"emoji"`
	IsChecked bool   `json:"isChecked" bson:"isChecked"`
	IsDefault bool   `json:"isDefault" bson:"isDefault"`
}

// Checklist is a resident's daily checklist. There is one per user.
type Checklist struct {
	ID        string    `json:"id" bson:"_id"`
	UserID    string    `json:"userId" bson:"userId"`
	Items     []Item    `json:"items" bson:"items"`
	LastReset time.Time `json:"lastReset" bson:"lastReset"`
}

// NewItem is a custom item added by the resident.
type NewItem struct {
	Name  string `json:"name" binding:"required,max=60"`
	Emoji string `json:"emoji" binding:"max=16"`
}

var defaultItems = []struct{ name, emoji string }{
	{"ID Card", "🪪"},
	{"Keys", "🔑"},
	{"Wallet", "💳"},
	{"Phone", "📱"},
	{"Books", "📚"},
}
