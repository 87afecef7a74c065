package model

import (
	"fmt"
	"time"
)

type Contributor struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:uk_user_project" json:"user_id"`
	ProjectID uint      `gorm:"not null;uniqueIndex:uk_user_project;index:idx_project_id" json:"project_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	User    *User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Project *Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"project,omitempty"`
}

func (Contributor) TableName() string { return "contributors" }

// DisplayName is the string form used when a contributor is referenced
// from another resource (e.g. issue assignment).
func (c *Contributor) DisplayName() string {
	username, title := "", ""
	if c.User != nil {
		username = c.User.Username
	}
	if c.Project != nil {
		title = c.Project.Title
	}
	return fmt.Sprintf("%s - %s", username, title)
}
