package service

import (
	"errors"
	"fmt"

	"github.com/softdesk/backend/internal/access"
	"github.com/softdesk/backend/internal/model"
	"gorm.io/gorm"
)

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

// Create persists the project and adds the author as its first
// contributor, in one transaction. Every project therefore has at
// least one contributor from the moment it exists.
func (s *ProjectService) Create(actorID uint, title, description, projectType string) (*model.Project, error) {
	project := &model.Project{
		Title:       title,
		Description: description,
		Type:        projectType,
		AuthorID:    actorID,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}
		authorRow := &model.Contributor{UserID: actorID, ProjectID: project.ID}
		return tx.Create(authorRow).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(actorID, project.ID)
}

func (s *ProjectService) List(actorID uint) ([]model.Project, error) {
	var projects []model.Project
	err := s.db.Scopes(access.VisibleProjects(actorID)).
		Preload("Author").Preload("Contributors.User").
		Order("id asc").Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *ProjectService) GetByID(actorID, id uint) (*model.Project, error) {
	var project model.Project
	err := s.db.Scopes(access.VisibleProjects(actorID)).
		Preload("Author").Preload("Contributors.User").
		First(&project, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("40402:project not found")
		}
		return nil, err
	}
	return &project, nil
}

func (s *ProjectService) Update(actorID, id uint, updates map[string]interface{}) (*model.Project, error) {
	if err := s.db.Model(&model.Project{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(actorID, id)
}

// Delete removes the project; contributors, issues and their comments
// follow through the FK cascades.
func (s *ProjectService) Delete(id uint) error {
	return s.db.Delete(&model.Project{}, id).Error
}

// IsContributor reports whether the user has a contributor row on the
// project.
func (s *ProjectService) IsContributor(projectID, userID uint) bool {
	var count int64
	s.db.Model(&model.Contributor{}).Where("project_id = ? AND user_id = ?", projectID, userID).Count(&count)
	return count > 0
}
