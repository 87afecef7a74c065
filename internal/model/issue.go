package model

import "time"

// Issue priorities.
const (
	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
)

// Issue tags.
const (
	TagBug     = "BUG"
	TagFeature = "FEATURE"
	TagTask    = "TASK"
)

// Issue statuses.
const (
	StatusToDo       = "TO_DO"
	StatusInProgress = "IN_PROGRESS"
	StatusFinished   = "FINISHED"
)

type Issue struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"type:varchar(255);not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	Priority     string    `gorm:"type:varchar(10);not null" json:"priority"`
	Tag          string    `gorm:"type:varchar(10);not null" json:"tag"`
	Status       string    `gorm:"type:varchar(15);not null;default:TO_DO" json:"status"`
	ProjectID    uint      `gorm:"not null;index:idx_project_id" json:"project_id"`
	AssignedToID *uint     `json:"assigned_to_id"`
	AuthorID     uint      `gorm:"not null" json:"author_id"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`

	Project    *Project     `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"project,omitempty"`
	AssignedTo *Contributor `gorm:"foreignKey:AssignedToID;constraint:OnDelete:SET NULL" json:"assigned_to,omitempty"`
	Author     *User        `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
}

func (Issue) TableName() string { return "issues" }
