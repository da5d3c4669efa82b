package models

import (
	"github.com/google/uuid"
)

// BonusMalusEvent is a signed score change applied to an artist.
// Deleting the row is how an event is reverted.
type BonusMalusEvent struct {
	BaseModel
	ArtistID    uuid.UUID  `json:"artistId" gorm:"type:uuid;not null;index"`
	Points      int        `json:"points" gorm:"not null"`
	Description string     `json:"description" gorm:"not null;size:500"`
	RuleID      *uuid.UUID `json:"ruleId,omitempty" gorm:"type:uuid;index"`
	CreatedByID *uuid.UUID `json:"createdById,omitempty" gorm:"type:uuid"`

	Artist    *Artist         `json:"artist,omitempty" gorm:"foreignKey:ArtistID"`
	Rule      *RuleDefinition `json:"rule,omitempty" gorm:"foreignKey:RuleID"`
	CreatedBy *User           `json:"createdBy,omitempty" gorm:"foreignKey:CreatedByID"`
}

// TableName returns the table name for BonusMalusEvent
func (BonusMalusEvent) TableName() string {
	return "bonus_malus_events"
}
