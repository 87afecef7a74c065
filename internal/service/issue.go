package service

import (
	"errors"
	"fmt"

	"github.com/softdesk/backend/internal/access"
	"github.com/softdesk/backend/internal/model"
	"gorm.io/gorm"
)

type IssueService struct {
	db *gorm.DB
	// assignableIssues enables the optional assigned_to field on
	// creation; when off the creator is always self-assigned.
	assignableIssues bool
}

func NewIssueService(db *gorm.DB, assignableIssues bool) *IssueService {
	return &IssueService{db: db, assignableIssues: assignableIssues}
}

type CreateIssueInput struct {
	ProjectID   uint
	Title       string
	Description string
	Priority    string
	Tag         string
	Status      string
	// AssignedToUserID is honored only when the assignable-issues
	// feature is on; the user must be a contributor of the project.
	AssignedToUserID *uint
}

// Create files an issue on a project the actor contributes to. The
// issue is assigned to a contributor row of the same project: the
// actor's own row by default.
func (s *IssueService) Create(actorID uint, in CreateIssueInput) (*model.Issue, error) {
	var project model.Project
	err := s.db.Scopes(access.VisibleProjects(actorID)).First(&project, in.ProjectID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("40402:project not found")
		}
		return nil, err
	}

	var actorRow model.Contributor
	err = s.db.Where("project_id = ? AND user_id = ?", project.ID, actorID).First(&actorRow).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("40302:you must be a contributor of the project to create an issue")
		}
		return nil, err
	}

	assigned := actorRow
	if s.assignableIssues && in.AssignedToUserID != nil {
		err = s.db.Where("project_id = ? AND user_id = ?", project.ID, *in.AssignedToUserID).First(&assigned).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("40002:assigned_to must be a contributor of the project")
			}
			return nil, err
		}
	}

	status := in.Status
	if status == "" {
		status = model.StatusToDo
	}

	issue := &model.Issue{
		Title:        in.Title,
		Description:  in.Description,
		Priority:     in.Priority,
		Tag:          in.Tag,
		Status:       status,
		ProjectID:    project.ID,
		AssignedToID: &assigned.ID,
		AuthorID:     actorID,
	}
	if err := s.db.Create(issue).Error; err != nil {
		return nil, err
	}
	return s.GetByID(actorID, issue.ID)
}

func (s *IssueService) List(actorID uint) ([]model.Issue, error) {
	var issues []model.Issue
	err := s.db.Scopes(access.VisibleIssues(actorID)).
		Preload("Author").Preload("AssignedTo.User").Preload("AssignedTo.Project").
		Order("id asc").Find(&issues).Error
	if err != nil {
		return nil, err
	}
	return issues, nil
}

func (s *IssueService) GetByID(actorID, id uint) (*model.Issue, error) {
	var issue model.Issue
	err := s.db.Scopes(access.VisibleIssues(actorID)).
		Preload("Author").Preload("AssignedTo.User").Preload("AssignedTo.Project").
		First(&issue, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("40404:issue not found")
		}
		return nil, err
	}
	return &issue, nil
}

func (s *IssueService) Update(actorID, id uint, updates map[string]interface{}) (*model.Issue, error) {
	if err := s.db.Model(&model.Issue{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(actorID, id)
}

func (s *IssueService) Delete(id uint) error {
	return s.db.Delete(&model.Issue{}, id).Error
}
