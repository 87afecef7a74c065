package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/softdesk/backend/internal/access"
	"github.com/softdesk/backend/internal/middleware"
	"github.com/softdesk/backend/internal/model"
	"github.com/softdesk/backend/internal/service"
)

type IssueHandler struct {
	issueService *service.IssueService
}

func NewIssueHandler(issueService *service.IssueService) *IssueHandler {
	return &IssueHandler{issueService: issueService}
}

func issueJSON(i *model.Issue) gin.H {
	data := gin.H{
		"id":          i.ID,
		"title":       i.Title,
		"description": i.Description,
		"priority":    i.Priority,
		"tag":         i.Tag,
		"status":      i.Status,
		"project":     i.ProjectID,
		"created_at":  i.CreatedAt,
	}
	if i.Author != nil {
		data["author"] = i.Author.Username
	}
	// assigned_to serializes as the contributor display string, or
	// null once the contributor row is gone.
	if i.AssignedTo != nil {
		data["assigned_to"] = i.AssignedTo.DisplayName()
	} else {
		data["assigned_to"] = nil
	}
	return data
}

// POST /issues
func (h *IssueHandler) Create(c *gin.Context) {
	var req struct {
		Title       string `json:"title" binding:"required,max=255"`
		Description string `json:"description" binding:"max=5000"`
		Priority    string `json:"priority" binding:"required,oneof=LOW MEDIUM HIGH"`
		Tag         string `json:"tag" binding:"required,oneof=BUG FEATURE TASK"`
		Status      string `json:"status" binding:"omitempty,oneof=TO_DO IN_PROGRESS FINISHED"`
		ProjectID   uint   `json:"project" binding:"required"`
		AssignedTo  *uint  `json:"assigned_to"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid payload: "+err.Error())
		return
	}

	actorID := middleware.GetCurrentUserID(c)
	issue, err := h.issueService.Create(actorID, service.CreateIssueInput{
		ProjectID:        req.ProjectID,
		Title:            req.Title,
		Description:      req.Description,
		Priority:         req.Priority,
		Tag:              req.Tag,
		Status:           req.Status,
		AssignedToUserID: req.AssignedTo,
	})
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, issueJSON(issue))
}

// GET /issues
func (h *IssueHandler) List(c *gin.Context) {
	actorID := middleware.GetCurrentUserID(c)

	issues, err := h.issueService.List(actorID)
	if err != nil {
		Fail(c, err)
		return
	}

	list := make([]gin.H, 0, len(issues))
	for i := range issues {
		list = append(list, issueJSON(&issues[i]))
	}
	Success(c, list)
}

// GET /issues/:id
func (h *IssueHandler) GetDetail(c *gin.Context) {
	actorID := middleware.GetCurrentUserID(c)

	issue, err := h.issueService.GetByID(actorID, parseID(c.Param("id")))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, issueJSON(issue))
}

// PUT/PATCH /issues/:id
func (h *IssueHandler) Update(c *gin.Context) {
	id := parseID(c.Param("id"))
	actorID := middleware.GetCurrentUserID(c)

	issue, err := h.issueService.GetByID(actorID, id)
	if err != nil {
		Fail(c, err)
		return
	}
	if err := access.CanModifyIssue(issue, actorID); err != nil {
		Fail(c, err)
		return
	}

	var req struct {
		Title       *string `json:"title" binding:"omitempty,max=255"`
		Description *string `json:"description" binding:"omitempty,max=5000"`
		Priority    *string `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
		Tag         *string `json:"tag" binding:"omitempty,oneof=BUG FEATURE TASK"`
		Status      *string `json:"status" binding:"omitempty,oneof=TO_DO IN_PROGRESS FINISHED"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid payload: "+err.Error())
		return
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Priority != nil {
		updates["priority"] = *req.Priority
	}
	if req.Tag != nil {
		updates["tag"] = *req.Tag
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	updated, err := h.issueService.Update(actorID, id, updates)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, issueJSON(updated))
}

// DELETE /issues/:id
func (h *IssueHandler) Delete(c *gin.Context) {
	id := parseID(c.Param("id"))
	actorID := middleware.GetCurrentUserID(c)

	issue, err := h.issueService.GetByID(actorID, id)
	if err != nil {
		Fail(c, err)
		return
	}
	if err := access.CanModifyIssue(issue, actorID); err != nil {
		Fail(c, err)
		return
	}

	if err := h.issueService.Delete(id); err != nil {
		Fail(c, err)
		return
	}
	Success(c, gin.H{"message": "issue deleted"})
}
