package domain

import "time"

// Job is a job-board posting
type Job struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"column:title;type:varchar(255)" json:"title"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	CompanyName string    `gorm:"column:company_name;type:varchar(255)" json:"company_name"`
	Email       string    `gorm:"column:email;type:varchar(255)" json:"email"`
	Phone       string    `gorm:"column:phone;type:varchar(50)" json:"phone"`
	Address     string    `gorm:"column:address;type:varchar(255)" json:"address"`
	Salary      string    `gorm:"column:salary;type:varchar(100)" json:"salary"`
	Featured    bool      `gorm:"column:featured" json:"featured"`
	IsPublished bool      `gorm:"column:is_published" json:"is_published"`
	Status      string    `gorm:"column:status;type:varchar(30);default:pending;index" json:"status"`
	CreatedBy   uint64    `gorm:"column:created_by" json:"created_by"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Job) TableName() string { return "jobs" }
