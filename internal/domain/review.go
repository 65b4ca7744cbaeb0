package domain

import "time"

// Review is a member review of a trainer or product
type Review struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"column:title;type:varchar(255)" json:"title"`
	Name      string    `gorm:"column:name;type:varchar(255)" json:"name"`
	Email     string    `gorm:"column:email;type:varchar(255)" json:"email"`
	Content   string    `gorm:"column:content;type:text" json:"content"`
	Rating    int       `gorm:"column:rating" json:"rating"`
	Status    string    `gorm:"column:status;type:varchar(30);default:pending;index" json:"status"`
	CreatedBy uint64    `gorm:"column:created_by" json:"created_by"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Review) TableName() string { return "reviews" }
