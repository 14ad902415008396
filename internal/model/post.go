package model

import (
	"time"
)

// Post belongs to exactly one author and optionally to one group.
// CreatedAt is set once on insert and never updated; Image is an opaque
// reference into whatever blob storage the deployment uses.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	GroupID   *uint     `gorm:"index" json:"group_id"`
	Image     string    `gorm:"type:varchar(255)" json:"image"`

	Author User   `gorm:"foreignKey:AuthorID" json:"author"`
	Group  *Group `gorm:"foreignKey:GroupID" json:"group,omitempty"`
}
