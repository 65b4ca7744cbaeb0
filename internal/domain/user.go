package domain

import "time"

// User is a site member account. Authentication itself lives outside this
// service; the row is carried here so accounts share the same soft-delete
// and version-history lifecycle as listings.
type User struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(255)" json:"name"`
	Email     string    `gorm:"column:email;type:varchar(255);index" json:"email"`
	Phone     string    `gorm:"column:phone;type:varchar(50)" json:"phone"`
	Role      string    `gorm:"column:role;type:varchar(30);default:member" json:"role"`
	Status    string    `gorm:"column:status;type:varchar(30);default:pending;index" json:"status"`
	CreatedBy uint64    `gorm:"column:created_by" json:"created_by"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }
