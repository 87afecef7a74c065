package service

import (
	"errors"
	"fmt"

	"github.com/softdesk/backend/internal/access"
	"github.com/softdesk/backend/internal/model"
	"gorm.io/gorm"
)

type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

// Create posts a comment on an issue the actor can see. Visibility is
// the only requirement: any contributor or the project author may
// comment.
func (s *CommentService) Create(actorID, issueID uint, description string) (*model.Comment, error) {
	var issue model.Issue
	err := s.db.Scopes(access.VisibleIssues(actorID)).First(&issue, issueID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("40404:issue not found")
		}
		return nil, err
	}

	comment := &model.Comment{
		Description: description,
		AuthorID:    actorID,
		IssueID:     issue.ID,
	}
	if err := s.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return s.get(comment.ID)
}

func (s *CommentService) List(actorID uint) ([]model.Comment, error) {
	var comments []model.Comment
	err := s.db.Scopes(access.VisibleComments(actorID)).
		Preload("Author").
		Order("created_at asc").Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *CommentService) GetByID(actorID uint, id string) (*model.Comment, error) {
	var comment model.Comment
	err := s.db.Scopes(access.VisibleComments(actorID)).
		Preload("Author").
		Where("comments.id = ?", id).First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("40405:comment not found")
		}
		return nil, err
	}
	return &comment, nil
}

func (s *CommentService) Update(id string, updates map[string]interface{}) (*model.Comment, error) {
	if err := s.db.Model(&model.Comment{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.get(id)
}

func (s *CommentService) Delete(id string) error {
	return s.db.Where("id = ?", id).Delete(&model.Comment{}).Error
}

func (s *CommentService) get(id string) (*model.Comment, error) {
	var comment model.Comment
	if err := s.db.Preload("Author").Where("id = ?", id).First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}
