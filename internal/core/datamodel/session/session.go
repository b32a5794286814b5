package session

import "time"

// Session is the persisted server-side session row. The token is the only
// thing the client ever holds.
type Session struct {
	Token      string    `gorm:"primaryKey;column:token"`
	UserID     int64     `gorm:"column:user_id;not null"`
	UserName   string    `gorm:"column:user_name;not null"`
	UserEmail  string    `gorm:"column:user_email;not null"`
	EmployeeID *int64    `gorm:"column:employee_id"`
	Role       string    `gorm:"column:role;not null"`
	ExpiresAt  time.Time `gorm:"column:expires_at;index;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Session) TableName() string {
	return "sessions"
}
