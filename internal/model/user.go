package model

import "time"

// MinAge is the minimum age accepted at signup.
const MinAge = 15

type User struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Username        string    `gorm:"type:varchar(64);uniqueIndex:idx_username;not null" json:"username"`
	Email           string    `gorm:"type:varchar(128)" json:"email"`
	Age             int       `gorm:"not null" json:"age"`
	CanBeContacted  bool      `gorm:"default:false" json:"can_be_contacted"`
	CanDataBeShared bool      `gorm:"default:false" json:"can_data_be_shared"`
	Password        string    `gorm:"type:varchar(128);not null" json:"-"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }
