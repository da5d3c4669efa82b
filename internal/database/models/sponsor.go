package models

// Sponsor is a partner logo shown in the footer
type Sponsor struct {
	BaseModel
	Name    string `json:"name" gorm:"not null;size:100"`
	LogoURL string `json:"logoUrl" gorm:"not null;size:500"`
}

// TableName returns the table name for Sponsor
func (Sponsor) TableName() string {
	return "sponsors"
}
