package domain

import "time"

// Banner is a promotional banner slot
type Banner struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"column:title;type:varchar(255)" json:"title"`
	ImageURL    string    `gorm:"column:image_url;type:varchar(500)" json:"image_url"`
	LinkURL     string    `gorm:"column:link_url;type:varchar(500)" json:"link_url"`
	Position    string    `gorm:"column:position;type:varchar(50)" json:"position"`
	IsPublished bool      `gorm:"column:is_published" json:"is_published"`
	Status      string    `gorm:"column:status;type:varchar(30);default:pending" json:"status"`
	CreatedBy   uint64    `gorm:"column:created_by" json:"created_by"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Banner) TableName() string { return "banners" }
