package domain

import "time"

// Contest is a competition listing. The contest-timing state machine runs
// elsewhere; only the listing row participates in the shared lifecycle.
type Contest struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"column:title;type:varchar(255)" json:"title"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Price       float64   `gorm:"column:price" json:"price"`
	StartsAt    time.Time `gorm:"column:starts_at" json:"starts_at"`
	EndsAt      time.Time `gorm:"column:ends_at" json:"ends_at"`
	IsPublished bool      `gorm:"column:is_published" json:"is_published"`
	Status      string    `gorm:"column:status;type:varchar(30);default:pending;index" json:"status"`
	CreatedBy   uint64    `gorm:"column:created_by" json:"created_by"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Contest) TableName() string { return "contests" }
