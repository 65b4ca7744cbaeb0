package domain

import "time"

// Blog is an editorial article
type Blog struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"column:title;type:varchar(255)" json:"title"`
	Content     string    `gorm:"column:content;type:mediumtext" json:"content"`
	Category    string    `gorm:"column:category;type:varchar(100)" json:"category"`
	IsPublished bool      `gorm:"column:is_published" json:"is_published"`
	Status      string    `gorm:"column:status;type:varchar(30);default:pending;index" json:"status"`
	CreatedBy   uint64    `gorm:"column:created_by" json:"created_by"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Blog) TableName() string { return "blogs" }
