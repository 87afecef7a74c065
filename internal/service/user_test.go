package service

import (
	"fmt"
	"testing"

	"github.com/softdesk/backend/internal/model"
	"github.com/softdesk/backend/pkg/password"
)

func TestUserCreateAgeValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	_, err := svc.Create(CreateUserInput{Username: "kid", Age: 14, Password: "password123"})
	if errCode(err) != 40002 {
		t.Fatalf("age 14: got %v, want 40002", err)
	}

	if _, err := svc.Create(CreateUserInput{Username: "teen", Age: 15, Password: "password123"}); err != nil {
		t.Fatalf("age 15: %v", err)
	}
}

func TestUserPasswordStoredHashed(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	user, err := svc.Create(CreateUserInput{Username: "alice", Age: 30, Password: "s3cret-pass"})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if user.Password == "s3cret-pass" {
		t.Fatal("password stored in plaintext")
	}
	if !password.Verify(user.Password, "s3cret-pass") {
		t.Error("stored hash does not verify against the plaintext")
	}
}

func TestUserDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	seedUser(t, db, "alice")
	_, err := svc.Create(CreateUserInput{Username: "alice", Age: 30, Password: "password123"})
	if errCode(err) != 40901 {
		t.Fatalf("duplicate username: got %v, want 40901", err)
	}
}

func TestUserUpdateRehashesPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	alice := seedUser(t, db, "alice")

	updated, err := svc.Update(alice.ID, map[string]interface{}{"password": "new-password"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !password.Verify(updated.Password, "new-password") {
		t.Error("updated password hash does not verify")
	}
}

func TestUserDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice")
	svc := NewUserService(db)
	issues := NewIssueService(db, false)
	comments := NewCommentService(db)
	project := seedProject(t, db, alice.ID, "API")

	issue, err := issues.Create(alice.ID, CreateIssueInput{
		ProjectID: project.ID,
		Title:     "bug",
		Priority:  model.PriorityLow,
		Tag:       model.TagBug,
	})
	if err != nil {
		t.Fatalf("create issue: %v", err)
	}
	if _, err := comments.Create(alice.ID, issue.ID, "note"); err != nil {
		t.Fatalf("create comment: %v", err)
	}

	if err := svc.Delete(alice.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	var count int64
	db.Model(&model.Project{}).Count(&count)
	if count != 0 {
		t.Errorf("projects left after author delete: %d", count)
	}
	db.Model(&model.Contributor{}).Count(&count)
	if count != 0 {
		t.Errorf("contributors left after author delete: %d", count)
	}
	db.Model(&model.Issue{}).Count(&count)
	if count != 0 {
		t.Errorf("issues left after author delete: %d", count)
	}
	db.Model(&model.Comment{}).Count(&count)
	if count != 0 {
		t.Errorf("comments left after author delete: %d", count)
	}
}

func TestUserListPagination(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	for i := 0; i < 12; i++ {
		seedUser(t, db, fmt.Sprintf("user%02d", i))
	}

	users, total, err := svc.List(1, 10)
	if err != nil {
		t.Fatalf("list page 1: %v", err)
	}
	if total != 12 {
		t.Errorf("total = %d, want 12", total)
	}
	if len(users) != 10 {
		t.Errorf("page 1 = %d users, want 10", len(users))
	}

	users, _, err = svc.List(2, 10)
	if err != nil {
		t.Fatalf("list page 2: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("page 2 = %d users, want 2", len(users))
	}
}
