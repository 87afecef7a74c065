package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/softdesk/backend/internal/model"
)

func TestCommentCreateOnVisibleIssue(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	contributors := NewContributorService(db)
	issues := NewIssueService(db, false)
	comments := NewCommentService(db)
	project := seedProject(t, db, alice.ID, "API")

	if _, err := contributors.Create(bob.ID, project.ID); err != nil {
		t.Fatalf("add contributor: %v", err)
	}
	issue, err := issues.Create(alice.ID, CreateIssueInput{
		ProjectID: project.ID,
		Title:     "bug",
		Priority:  model.PriorityLow,
		Tag:       model.TagBug,
	})
	if err != nil {
		t.Fatalf("create issue: %v", err)
	}

	// Any contributor may comment, not just the issue author.
	comment, err := comments.Create(bob.ID, issue.ID, "same here")
	if err != nil {
		t.Fatalf("create comment: %v", err)
	}
	if comment.AuthorID != bob.ID {
		t.Errorf("author = %d, want %d", comment.AuthorID, bob.ID)
	}
	if _, err := uuid.Parse(comment.ID); err != nil {
		t.Errorf("comment id %q is not a UUID: %v", comment.ID, err)
	}
}

func TestCommentCreateRequiresVisibleIssue(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice")
	carol := seedUser(t, db, "carol")
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

	if _, err := comments.Create(carol.ID, issue.ID, "drive-by"); errCode(err) != 40404 {
		t.Fatalf("outsider comment: got %v, want 40404", err)
	}
}

func TestCommentVisibilityFollowsMembership(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	contributors := NewContributorService(db)
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
	comment, err := comments.Create(alice.ID, issue.ID, "first")
	if err != nil {
		t.Fatalf("create comment: %v", err)
	}

	if _, err := comments.GetByID(bob.ID, comment.ID); errCode(err) != 40405 {
		t.Fatalf("outsider retrieve: got %v, want 40405", err)
	}

	row, err := contributors.Create(bob.ID, project.ID)
	if err != nil {
		t.Fatalf("add contributor: %v", err)
	}
	if _, err := comments.GetByID(bob.ID, comment.ID); err != nil {
		t.Fatalf("member retrieve: %v", err)
	}
	list, _ := comments.List(bob.ID)
	if len(list) != 1 {
		t.Fatalf("member list = %d comments, want 1", len(list))
	}

	if err := contributors.Delete(row.ID); err != nil {
		t.Fatalf("remove contributor: %v", err)
	}
	if _, err := comments.GetByID(bob.ID, comment.ID); errCode(err) != 40405 {
		t.Fatalf("retrieve after removal: got %v, want 40405", err)
	}
}

func TestCommentUpdate(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice")
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
	comment, err := comments.Create(alice.ID, issue.ID, "tpyo")
	if err != nil {
		t.Fatalf("create comment: %v", err)
	}

	updated, err := comments.Update(comment.ID, map[string]interface{}{"description": "typo"})
	if err != nil {
		t.Fatalf("update comment: %v", err)
	}
	if updated.Description != "typo" {
		t.Errorf("description = %q, want %q", updated.Description, "typo")
	}
}
