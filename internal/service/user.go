package service

import (
	"errors"
	"fmt"

	"github.com/softdesk/backend/internal/model"
	"github.com/softdesk/backend/pkg/password"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type CreateUserInput struct {
	Username        string
	Email           string
	Age             int
	CanBeContacted  bool
	CanDataBeShared bool
	Password        string
}

func (s *UserService) Create(in CreateUserInput) (*model.User, error) {
	if in.Age < model.MinAge {
		return nil, fmt.Errorf("40002:age must be at least %d", model.MinAge)
	}

	hashed, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:        in.Username,
		Email:           in.Email,
		Age:             in.Age,
		CanBeContacted:  in.CanBeContacted,
		CanDataBeShared: in.CanDataBeShared,
		Password:        hashed,
	}
	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("40901:username already taken")
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) List(page, pageSize int) ([]model.User, int64, error) {
	query := s.db.Model(&model.User{})

	var total int64
	query.Count(&total)

	var users []model.User
	if err := query.Order("id asc").Offset((page - 1) * pageSize).Limit(pageSize).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (s *UserService) GetByID(id uint) (*model.User, error) {
	var user model.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("40401:user not found")
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Update(id uint, updates map[string]interface{}) (*model.User, error) {
	if age, ok := updates["age"]; ok {
		if v, ok := age.(int); ok && v < model.MinAge {
			return nil, fmt.Errorf("40002:age must be at least %d", model.MinAge)
		}
	}
	if plain, ok := updates["password"]; ok {
		hashed, err := password.Hash(plain.(string))
		if err != nil {
			return nil, err
		}
		updates["password"] = hashed
	}
	if err := s.db.Model(&model.User{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("40901:username already taken")
		}
		return nil, err
	}
	return s.GetByID(id)
}

// Delete removes the account. Authored projects, issues, comments and
// contributor rows go with it through the FK cascades.
func (s *UserService) Delete(id uint) error {
	return s.db.Delete(&model.User{}, id).Error
}
