package models

type ContactMessage struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string `gorm:"size:120;not null" json:"name"`
	Email   string `gorm:"size:120;not null" json:"email"`
	Subject string `gorm:"size:255;not null" json:"subject"`
	Message string `gorm:"type:text;not null" json:"message"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}
