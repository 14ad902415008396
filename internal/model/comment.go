package model

import (
	"time"
)

// MaxCommentLength bounds comment text, in runes.
const MaxCommentLength = 500

type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	Text      string    `gorm:"type:varchar(500);not null" json:"text"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`

	Author User `gorm:"foreignKey:AuthorID" json:"author"`
}
