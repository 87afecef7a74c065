package model

import "time"

// Project types accepted by the API.
const (
	TypeBackEnd  = "back-end"
	TypeFrontEnd = "front-end"
	TypeIOS      = "iOS"
	TypeAndroid  = "Android"
)

type Project struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Type        string    `gorm:"type:varchar(20);not null;default:back-end" json:"type"`
	AuthorID    uint      `gorm:"not null;index:idx_author_id" json:"author_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Author       *User         `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
	Contributors []Contributor `gorm:"foreignKey:ProjectID" json:"contributors,omitempty"`
}

func (Project) TableName() string { return "projects" }
