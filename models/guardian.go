package models

// Guardian is a community-safety participant signed up through the public
// join form. It has no relation to the authenticated User.
type Guardian struct {
	ID       uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string  `gorm:"size:120;not null" json:"name"`
	Contact  string  `gorm:"size:120;not null" json:"contact"`
	Location *string `gorm:"size:255" json:"location"`
}

func (Guardian) TableName() string {
	return "guardians"
}
