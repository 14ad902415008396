package model

import (
	"time"
)

type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Username  string `gorm:"type:varchar(150);not null;uniqueIndex:idx_user_username" json:"username"`
	Email     string `gorm:"type:varchar(254);not null;uniqueIndex:idx_user_email" json:"-"`
	Password  string `gorm:"type:varchar(128);not null" json:"-"`
	Avatar    string `gorm:"type:varchar(255)" json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
