package models

type Report struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string `gorm:"size:120;not null" json:"title"`
	Location    string `gorm:"size:255;not null" json:"location"`
	Severity    string `gorm:"size:50;not null" json:"severity"`
	Description string `gorm:"type:text;not null" json:"description"`
}

func (Report) TableName() string {
	return "reports"
}
