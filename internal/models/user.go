package models

import "time"

// Risk profiles a user can declare.
const (
	RiskProfileLow      = "Low"
	RiskProfileModerate = "Moderate"
	RiskProfileHigh     = "High"
)

// User represents an investor account. The password hash never leaves the server.
type User struct {
	ID          uint      `gorm:"column:user_id;primaryKey" json:"user_id"`
	Name        string    `gorm:"not null" json:"name"`
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"not null" json:"-"`
	Phone       *string   `json:"phone"`
	RiskProfile string    `gorm:"not null;default:'Moderate'" json:"risk_profile"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName overrides the table name used by User.
func (User) TableName() string { return "users" }
