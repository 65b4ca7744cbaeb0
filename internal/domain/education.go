package domain

import "time"

// Education is a class/course listing
type Education struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"column:title;type:varchar(255)" json:"title"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Price       float64   `gorm:"column:price" json:"price"`
	Category    string    `gorm:"column:category;type:varchar(100)" json:"category"`
	Address     string    `gorm:"column:address;type:varchar(255)" json:"address"`
	Featured    bool      `gorm:"column:featured" json:"featured"`
	IsPublished bool      `gorm:"column:is_published" json:"is_published"`
	Status      string    `gorm:"column:status;type:varchar(30);default:pending;index" json:"status"`
	CreatedBy   uint64    `gorm:"column:created_by" json:"created_by"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Education) TableName() string { return "education_classes" }
