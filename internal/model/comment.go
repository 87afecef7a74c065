package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment uses a random UUID as primary key so comment ids cannot be
// enumerated.
type Comment struct {
	ID          string    `gorm:"type:char(36);primaryKey" json:"id"`
	Description string    `gorm:"type:text;not null" json:"description"`
	AuthorID    uint      `gorm:"not null" json:"author_id"`
	IssueID     uint      `gorm:"not null;index:idx_issue_id" json:"issue_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	Author *User  `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
	Issue  *Issue `gorm:"foreignKey:IssueID;constraint:OnDelete:CASCADE" json:"issue,omitempty"`
}

func (Comment) TableName() string { return "comments" }

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
