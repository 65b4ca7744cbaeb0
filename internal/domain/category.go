package domain

import "time"

// Category is a directory taxonomy entry
type Category struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"column:name;type:varchar(255)" json:"name"`
	Slug        string    `gorm:"column:slug;type:varchar(255);uniqueIndex" json:"slug"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Status      string    `gorm:"column:status;type:varchar(30);default:published" json:"status"`
	CreatedBy   uint64    `gorm:"column:created_by" json:"created_by"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Category) TableName() string { return "categories" }
