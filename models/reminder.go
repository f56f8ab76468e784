// models/reminder.go
package models

import "time"

// ReminderType categorizes a reminder for display purposes.
type ReminderType string

const (
	ReminderTypeConcert   ReminderType = "concert"
	ReminderTypeRehearsal ReminderType = "rehearsal"
	ReminderTypeAdmin     ReminderType = "admin"
	ReminderTypeCreative  ReminderType = "creative"
	ReminderTypeGeneral   ReminderType = "general"
)

// TargetAudience selects which users receive a reminder broadcast.
type TargetAudience string

const (
	AudienceAll     TargetAudience = "all"
	AudienceAdmin   TargetAudience = "admin"
	AudienceArtists TargetAudience = "artists"
	AudienceBallet  TargetAudience = "ballet"
	AudienceChoir   TargetAudience = "choir"
)

// Reminder is a scheduled notification record for an upcoming event.
type Reminder struct {
	ID                  string         `bson:"id" json:"id"`
	Title               string         `bson:"title" json:"title"`
	Message             string         `bson:"message" json:"message"`
	Type                ReminderType   `bson:"type" json:"type"`
	EventDate           time.Time      `bson:"eventDate" json:"eventDate"`
	NotifyBefore        int64          `bson:"notifyBefore" json:"notifyBefore"` // seconds before eventDate
	TargetUsers         TargetAudience `bson:"targetUsers" json:"targetUsers"`
	IsActive            bool           `bson:"isActive" json:"isActive"`
	CreatedBy           string         `bson:"createdBy" json:"createdBy"`
	CreatedAt           time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time      `bson:"updatedAt" json:"updatedAt"`
	LocalNotificationID string         `bson:"localNotificationId,omitempty" json:"localNotificationId,omitempty"`
}

// NotifyBeforeOptions is the closed set of lead times (in seconds) a reminder
// may use, from 15 minutes up to one week.
var NotifyBeforeOptions = []int64{
	900,    // 15m
	1800,   // 30m
	3600,   // 1h
	7200,   // 2h
	10800,  // 3h
	43200,  // 12h
	86400,  // 1d
	259200, // 3d
	604800, // 1w
}

// IsValidNotifyBefore reports whether seconds is one of the allowed lead times.
func IsValidNotifyBefore(seconds int64) bool {
	for _, opt := range NotifyBeforeOptions {
		if opt == seconds {
			return true
		}
	}
	return false
}

// ReminderTypeOption is a picker entry for a reminder type.
type ReminderTypeOption struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// ReminderTypeOptions maps each reminder type to its display label and color.
var ReminderTypeOptions = map[ReminderType]ReminderTypeOption{
	ReminderTypeConcert:   {Label: "Концерт", Color: "#D32F2F"},
	ReminderTypeRehearsal: {Label: "Репетиция", Color: "#1976D2"},
	ReminderTypeAdmin:     {Label: "Административное", Color: "#7B1FA2"},
	ReminderTypeCreative:  {Label: "Творческое", Color: "#388E3C"},
	ReminderTypeGeneral:   {Label: "Общее", Color: "#616161"},
}

// IsValidReminderType reports whether t is one of the known reminder types.
func IsValidReminderType(t ReminderType) bool {
	_, ok := ReminderTypeOptions[t]
	return ok
}

// IsValidAudience reports whether a is one of the known target audiences.
func IsValidAudience(a TargetAudience) bool {
	switch a {
	case AudienceAll, AudienceAdmin, AudienceArtists, AudienceBallet, AudienceChoir:
		return true
	}
	return false
}
