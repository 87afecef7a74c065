package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/softdesk/backend/internal/access"
	"github.com/softdesk/backend/internal/middleware"
	"github.com/softdesk/backend/internal/model"
	"github.com/softdesk/backend/internal/service"
)

type ProjectHandler struct {
	projectService *service.ProjectService
}

func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func projectJSON(p *model.Project) gin.H {
	contributors := make([]gin.H, 0, len(p.Contributors))
	for _, ct := range p.Contributors {
		item := gin.H{"id": ct.ID}
		if ct.User != nil {
			item["user"] = ct.User.Username
		}
		contributors = append(contributors, item)
	}

	data := gin.H{
		"id":           p.ID,
		"title":        p.Title,
		"description":  p.Description,
		"type":         p.Type,
		"contributors": contributors,
		"created_at":   p.CreatedAt,
		"updated_at":   p.UpdatedAt,
	}
	if p.Author != nil {
		data["author"] = p.Author.Username
	}
	return data
}

// POST /projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req struct {
		Title       string `json:"title" binding:"required,max=255"`
		Description string `json:"description" binding:"max=5000"`
		Type        string `json:"type" binding:"required,oneof=back-end front-end iOS Android"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid payload: "+err.Error())
		return
	}

	actorID := middleware.GetCurrentUserID(c)
	project, err := h.projectService.Create(actorID, req.Title, req.Description, req.Type)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, projectJSON(project))
}

// GET /projects
func (h *ProjectHandler) List(c *gin.Context) {
	actorID := middleware.GetCurrentUserID(c)

	projects, err := h.projectService.List(actorID)
	if err != nil {
		Fail(c, err)
		return
	}

	list := make([]gin.H, 0, len(projects))
	for i := range projects {
		list = append(list, projectJSON(&projects[i]))
	}
	Success(c, list)
}

// GET /projects/:id
func (h *ProjectHandler) GetDetail(c *gin.Context) {
	actorID := middleware.GetCurrentUserID(c)

	project, err := h.projectService.GetByID(actorID, parseID(c.Param("id")))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, projectJSON(project))
}

// PUT/PATCH /projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	id := parseID(c.Param("id"))
	actorID := middleware.GetCurrentUserID(c)

	project, err := h.projectService.GetByID(actorID, id)
	if err != nil {
		Fail(c, err)
		return
	}
	if err := access.CanModifyProject(project, actorID); err != nil {
		Fail(c, err)
		return
	}

	var req struct {
		Title       *string `json:"title" binding:"omitempty,max=255"`
		Description *string `json:"description" binding:"omitempty,max=5000"`
		Type        *string `json:"type" binding:"omitempty,oneof=back-end front-end iOS Android"`
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
	if req.Type != nil {
		updates["type"] = *req.Type
	}

	updated, err := h.projectService.Update(actorID, id, updates)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, projectJSON(updated))
}

// DELETE /projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	id := parseID(c.Param("id"))
	actorID := middleware.GetCurrentUserID(c)

	project, err := h.projectService.GetByID(actorID, id)
	if err != nil {
		Fail(c, err)
		return
	}
	if err := access.CanModifyProject(project, actorID); err != nil {
		Fail(c, err)
		return
	}

	if err := h.projectService.Delete(id); err != nil {
		Fail(c, err)
		return
	}
	Success(c, gin.H{"message": "project deleted"})
}
