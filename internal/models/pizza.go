package models

// Pizza represents a pizza that restaurants can offer
type Pizza struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Ingredients string `gorm:"not null" json:"ingredients"`
}

func (Pizza) TableName() string {
	return "pizzas"
}
