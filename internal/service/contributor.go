package service

import (
	"errors"
	"fmt"

	"github.com/softdesk/backend/internal/access"
	"github.com/softdesk/backend/internal/model"
	"gorm.io/gorm"
)

type ContributorService struct {
	db *gorm.DB
}

func NewContributorService(db *gorm.DB) *ContributorService {
	return &ContributorService{db: db}
}

// Create adds a user to a project. The caller has already resolved the
// project through the actor's visibility scope and passed the guard;
// what remains is the target-user lookup and the uniqueness invariant.
// The unique index backs up the pre-check under concurrent creates.
func (s *ContributorService) Create(userID, projectID uint) (*model.Contributor, error) {
	var user model.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("40401:user not found")
		}
		return nil, err
	}

	var count int64
	s.db.Model(&model.Contributor{}).Where("user_id = ? AND project_id = ?", userID, projectID).Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("40901:user is already a contributor of this project")
	}

	contributor := &model.Contributor{UserID: userID, ProjectID: projectID}
	if err := s.db.Create(contributor).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("40901:user is already a contributor of this project")
		}
		return nil, err
	}
	return s.get(contributor.ID)
}

func (s *ContributorService) List(actorID uint) ([]model.Contributor, error) {
	var contributors []model.Contributor
	err := s.db.Scopes(access.VisibleContributors(actorID)).
		Preload("User").Preload("Project").
		Order("id asc").Find(&contributors).Error
	if err != nil {
		return nil, err
	}
	return contributors, nil
}

func (s *ContributorService) GetByID(actorID, id uint) (*model.Contributor, error) {
	var contributor model.Contributor
	err := s.db.Scopes(access.VisibleContributors(actorID)).
		Preload("User").Preload("Project").
		First(&contributor, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("40403:contributor not found")
		}
		return nil, err
	}
	return &contributor, nil
}

// UpdateUser swaps the member user on an existing contributor row. The
// project reference is immutable.
func (s *ContributorService) UpdateUser(contributor *model.Contributor, newUserID uint) (*model.Contributor, error) {
	if newUserID == contributor.UserID {
		return contributor, nil
	}
	var user model.User
	if err := s.db.First(&user, newUserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("40401:user not found")
		}
		return nil, err
	}

	var count int64
	s.db.Model(&model.Contributor{}).Where("user_id = ? AND project_id = ?", newUserID, contributor.ProjectID).Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("40901:user is already a contributor of this project")
	}

	err := s.db.Model(&model.Contributor{}).Where("id = ?", contributor.ID).Update("user_id", newUserID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("40901:user is already a contributor of this project")
		}
		return nil, err
	}
	return s.get(contributor.ID)
}

// Delete removes the contributor row; issues assigned to it fall back
// to unassigned through the SET NULL constraint.
func (s *ContributorService) Delete(id uint) error {
	return s.db.Delete(&model.Contributor{}, id).Error
}

func (s *ContributorService) get(id uint) (*model.Contributor, error) {
	var contributor model.Contributor
	if err := s.db.Preload("User").Preload("Project").First(&contributor, id).Error; err != nil {
		return nil, err
	}
	return &contributor, nil
}
