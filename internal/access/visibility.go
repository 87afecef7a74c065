package access

import "gorm.io/gorm"

// Visibility scopes. Every list and every retrieve-by-id goes through
// the scope for its entity, so rows outside the actor's reach resolve
// to record-not-found rather than forbidden. Membership is checked via
// subqueries, which also keeps results free of join duplicates.

// VisibleProjects selects projects the actor authored or contributes to.
func VisibleProjects(actorID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(
			"projects.author_id = ? OR projects.id IN (SELECT project_id FROM contributors WHERE user_id = ?)",
			actorID, actorID,
		)
	}
}

// VisibleContributors selects contributor rows of projects the actor
// authored. Only project authors enumerate their contributors.
func VisibleContributors(actorID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(
			"contributors.project_id IN (SELECT id FROM projects WHERE author_id = ?)",
			actorID,
		)
	}
}

// VisibleIssues selects issues of projects the actor authored or
// contributes to.
func VisibleIssues(actorID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(
			"issues.project_id IN (SELECT id FROM projects WHERE author_id = ?) OR issues.project_id IN (SELECT project_id FROM contributors WHERE user_id = ?)",
			actorID, actorID,
		)
	}
}

// VisibleComments selects comments whose parent issue is visible to
// the actor.
func VisibleComments(actorID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(
			"comments.issue_id IN (SELECT id FROM issues WHERE project_id IN (SELECT id FROM projects WHERE author_id = ?) OR project_id IN (SELECT project_id FROM contributors WHERE user_id = ?))",
			actorID, actorID,
		)
	}
}
