package models

type Category struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Products    []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
}
