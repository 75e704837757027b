package models

// Restaurant represents a restaurant with its address
type Restaurant struct {
	ID      int    `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Address string `gorm:"not null" json:"address"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}
