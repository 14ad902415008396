package model

import (
	"time"
)

// Group is a community/category a post may belong to.
// The slug is its stable identity and never changes once posts reference it.
type Group struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"type:varchar(200);not null" json:"title"`
	Slug        string `gorm:"type:varchar(200);not null;uniqueIndex:idx_group_slug" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"-"`
}
