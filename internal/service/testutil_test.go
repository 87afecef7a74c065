package service

import (
	"path/filepath"
	"strconv"
	"testing"

	"github.com/softdesk/backend/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "softdesk.db") + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.Contributor{},
		&model.Issue{},
		&model.Comment{},
	); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	user, err := NewUserService(db).Create(CreateUserInput{
		Username: username,
		Email:    username + "@example.com",
		Age:      30,
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return user
}

func seedProject(t *testing.T, db *gorm.DB, authorID uint, title string) *model.Project {
	t.Helper()
	project, err := NewProjectService(db).Create(authorID, title, "", model.TypeBackEnd)
	if err != nil {
		t.Fatalf("seed project %s: %v", title, err)
	}
	return project
}

// errCode extracts the five-digit prefix of a coded service error.
func errCode(err error) int {
	if err == nil {
		return 0
	}
	msg := err.Error()
	if len(msg) > 5 && msg[5] == ':' {
		if code, e := strconv.Atoi(msg[:5]); e == nil {
			return code
		}
	}
	return -1
}
