package model

import (
	"strings"
	"time"
)

// ContactInfo is a singleton resource: every call site reads and replaces
// the one record. Singularity is enforced by the repository, not by a
// database constraint.
type ContactInfo struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Instagram string    `json:"instagram,omitempty"`
	Hours     WorkingHours `gorm:"embedded;embeddedPrefix:hours_" json:"working_hours"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ContactInfo) TableName() string {
	return "contact_info"
}

// WorkingHours keeps the weekday and weekend schedules as separate fields.
// The legacy storefront stored both in one string split on ", "; that
// format survives only at the presentation boundary.
type WorkingHours struct {
	Weekdays string `json:"weekdays"` // e.g. "Пн-Пт 9:00-18:00"
	Weekend  string `json:"weekend"`  // e.g. "Сб-Вс 10:00-16:00"
}

// DisplayString formats working hours in the legacy "weekday, weekend" form
func (w WorkingHours) DisplayString() string {
	switch {
	case w.Weekdays == "" && w.Weekend == "":
		return ""
	case w.Weekend == "":
		return w.Weekdays
	case w.Weekdays == "":
		return w.Weekend
	default:
		return w.Weekdays + ", " + w.Weekend
	}
}

// ParseWorkingHours splits a legacy display string back into the structured
// form. Accepted for backward compatibility on writes only.
func ParseWorkingHours(s string) WorkingHours {
	parts := strings.SplitN(s, ", ", 2)
	hours := WorkingHours{Weekdays: strings.TrimSpace(parts[0])}
	if len(parts) == 2 {
		hours.Weekend = strings.TrimSpace(parts[1])
	}
	return hours
}
