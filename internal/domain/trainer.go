package domain

import "time"

// Trainer is a directory listing for an individual trainer
type Trainer struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"column:name;type:varchar(255)" json:"name"`
	Email       string    `gorm:"column:email;type:varchar(255);index" json:"email"`
	Phone       string    `gorm:"column:phone;type:varchar(50)" json:"phone"`
	Bio         string    `gorm:"column:bio;type:text" json:"bio"`
	Address     string    `gorm:"column:address;type:varchar(255)" json:"address"`
	Category    string    `gorm:"column:category;type:varchar(100)" json:"category"`
	Featured    bool      `gorm:"column:featured" json:"featured"`
	IsPublished bool      `gorm:"column:is_published" json:"is_published"`
	Status      string    `gorm:"column:status;type:varchar(30);default:pending;index" json:"status"`
	CreatedBy   uint64    `gorm:"column:created_by" json:"created_by"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Trainer) TableName() string { return "trainers" }
