package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/softdesk/backend/internal/model"
	jwtpkg "github.com/softdesk/backend/pkg/jwt"
	"github.com/softdesk/backend/pkg/password"
	"gorm.io/gorm"
)

type AuthService struct {
	db        *gorm.DB
	jwtSecret string
	jwtExpire int
}

func NewAuthService(db *gorm.DB, jwtSecret string, jwtExpire int) *AuthService {
	return &AuthService{db: db, jwtSecret: jwtSecret, jwtExpire: jwtExpire}
}

// Login checks the credentials and issues a bearer token. The same
// error comes back for an unknown username and a wrong password.
func (s *AuthService) Login(username, plain string) (*model.User, string, time.Time, error) {
	var user model.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", time.Time{}, fmt.Errorf("40104:invalid username or password")
		}
		return nil, "", time.Time{}, err
	}
	if !password.Verify(user.Password, plain) {
		return nil, "", time.Time{}, fmt.Errorf("40104:invalid username or password")
	}

	token, expireAt, err := jwtpkg.GenerateToken(s.jwtSecret, user.ID, s.jwtExpire)
	if err != nil {
		return nil, "", time.Time{}, fmt.Errorf("generate token: %w", err)
	}
	return &user, token, expireAt, nil
}
