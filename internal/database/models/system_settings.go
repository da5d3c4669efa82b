package models

import "time"

// SettingsKey identifies the single settings row
const SettingsKey = "global"

// SystemSettings holds game-wide switches. Only one row exists.
type SystemSettings struct {
	BaseModel
	Key           string     `json:"-" gorm:"uniqueIndex;not null;size:20;default:'global'"`
	DraftDeadline *time.Time `json:"draftDeadline"`
}

// TableName returns the table name for SystemSettings
func (SystemSettings) TableName() string {
	return "system_settings"
}

// DraftClosed reports whether team edits are locked at the given instant.
// The deadline itself is still open.
func (s *SystemSettings) DraftClosed(now time.Time) bool {
	return s != nil && s.DraftDeadline != nil && now.After(*s.DraftDeadline)
}
