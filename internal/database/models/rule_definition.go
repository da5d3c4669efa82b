package models

// RuleDefinition is a catalogued scoring rule shown to players
type RuleDefinition struct {
	BaseModel
	Category    string `json:"category" gorm:"not null;size:50;index"`
	Title       string `json:"title" gorm:"not null;size:200"`
	Description string `json:"description" gorm:"size:1000"`
	Points      int    `json:"points" gorm:"not null"`
}

// TableName returns the table name for RuleDefinition
func (RuleDefinition) TableName() string {
	return "rule_definitions"
}
