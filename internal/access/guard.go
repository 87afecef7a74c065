package access

import (
	"fmt"

	"github.com/softdesk/backend/internal/model"
)

// Write authorization. Guard checks run after visibility: the row has
// already been resolved through the actor's scope, so a denial here
// means "visible but not yours", never an existence leak.
//
// Errors carry a five-digit code prefix ("NNNNN:message"); the handler
// layer derives the HTTP status from the first three digits.

// CanModifyProject allows update/delete of a project to its author.
func CanModifyProject(p *model.Project, actorID uint) error {
	if p.AuthorID != actorID {
		return fmt.Errorf("40301:only the project author may modify or delete the project")
	}
	return nil
}

// CanManageContributors allows adding, updating and removing
// contributors of a project to its author.
func CanManageContributors(p *model.Project, actorID uint) error {
	if p.AuthorID != actorID {
		return fmt.Errorf("40301:only the project author may manage contributors")
	}
	return nil
}

// CanModifyIssue allows update/delete of an issue to its author. The
// project author has no special rights over issues filed by others.
func CanModifyIssue(i *model.Issue, actorID uint) error {
	if i.AuthorID != actorID {
		return fmt.Errorf("40303:only the issue author may modify or delete the issue")
	}
	return nil
}

// CanModifyComment allows update/delete of a comment to its author.
func CanModifyComment(c *model.Comment, actorID uint) error {
	if c.AuthorID != actorID {
		return fmt.Errorf("40303:only the comment author may modify or delete the comment")
	}
	return nil
}

// CanModifyUser allows update/delete of an account to its owner.
func CanModifyUser(u *model.User, actorID uint) error {
	if u.ID != actorID {
		return fmt.Errorf("40303:only the account owner may modify or delete it")
	}
	return nil
}
