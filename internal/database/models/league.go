package models

// League groups teams into a ranking
type League struct {
	BaseModel
	Name string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`

	Teams []TeamLeague `json:"teams,omitempty" gorm:"foreignKey:LeagueID"`
}

// TableName returns the table name for League
func (League) TableName() string {
	return "leagues"
}
