package model

import (
	"time"
)

// Follow is a directed edge in the social graph: UserID follows AuthorID.
// The pair is unique; self-follows are rejected before insert.
type Follow struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	UserID    uint `gorm:"not null;index;uniqueIndex:idx_follow_pair" json:"user_id"`
	AuthorID  uint `gorm:"not null;index;uniqueIndex:idx_follow_pair" json:"author_id"`
	CreatedAt time.Time `json:"created_at"`

	User   User `gorm:"foreignKey:UserID" json:"-"`
	Author User `gorm:"foreignKey:AuthorID" json:"-"`
}
