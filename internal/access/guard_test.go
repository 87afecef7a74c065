package access

import (
	"testing"

	"github.com/softdesk/backend/internal/model"
)

func TestGuards(t *testing.T) {
	project := &model.Project{ID: 1, AuthorID: 10}
	issue := &model.Issue{ID: 2, ProjectID: 1, AuthorID: 11}
	comment := &model.Comment{ID: "c1", IssueID: 2, AuthorID: 12}
	user := &model.User{ID: 13}

	tests := []struct {
		name    string
		check   func(actorID uint) error
		actorID uint
		allow   bool
	}{
		{"project author may modify", func(a uint) error { return CanModifyProject(project, a) }, 10, true},
		{"contributor may not modify project", func(a uint) error { return CanModifyProject(project, a) }, 11, false},
		{"project author manages contributors", func(a uint) error { return CanManageContributors(project, a) }, 10, true},
		{"member may not manage contributors", func(a uint) error { return CanManageContributors(project, a) }, 11, false},
		{"issue author may modify", func(a uint) error { return CanModifyIssue(issue, a) }, 11, true},
		{"project author may not modify foreign issue", func(a uint) error { return CanModifyIssue(issue, a) }, 10, false},
		{"comment author may modify", func(a uint) error { return CanModifyComment(comment, a) }, 12, true},
		{"issue author may not modify foreign comment", func(a uint) error { return CanModifyComment(comment, a) }, 11, false},
		{"account owner may modify", func(a uint) error { return CanModifyUser(user, a) }, 13, true},
		{"other account may not modify", func(a uint) error { return CanModifyUser(user, a) }, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.check(tt.actorID)
			if tt.allow && err != nil {
				t.Errorf("denied: %v", err)
			}
			if !tt.allow && err == nil {
				t.Error("allowed, want denial")
			}
		})
	}
}
