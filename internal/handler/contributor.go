package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/softdesk/backend/internal/access"
	"github.com/softdesk/backend/internal/middleware"
	"github.com/softdesk/backend/internal/model"
	"github.com/softdesk/backend/internal/service"
)

type ContributorHandler struct {
	contributorService *service.ContributorService
	projectService     *service.ProjectService
}

func NewContributorHandler(contributorService *service.ContributorService, projectService *service.ProjectService) *ContributorHandler {
	return &ContributorHandler{contributorService: contributorService, projectService: projectService}
}

func contributorJSON(ct *model.Contributor) gin.H {
	data := gin.H{
		"id":         ct.ID,
		"project":    ct.ProjectID,
		"created_at": ct.CreatedAt,
	}
	if ct.User != nil {
		data["user"] = ct.User.Username
	}
	if ct.Project != nil {
		data["project_title"] = ct.Project.Title
	}
	return data
}

// POST /contributors
func (h *ContributorHandler) Create(c *gin.Context) {
	var req struct {
		UserID    uint `json:"user_id" binding:"required"`
		ProjectID uint `json:"project" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid payload: "+err.Error())
		return
	}

	actorID := middleware.GetCurrentUserID(c)
	project, err := h.projectService.GetByID(actorID, req.ProjectID)
	if err != nil {
		Fail(c, err)
		return
	}
	if err := access.CanManageContributors(project, actorID); err != nil {
		Fail(c, err)
		return
	}

	contributor, err := h.contributorService.Create(req.UserID, req.ProjectID)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, contributorJSON(contributor))
}

// GET /contributors
func (h *ContributorHandler) List(c *gin.Context) {
	actorID := middleware.GetCurrentUserID(c)

	contributors, err := h.contributorService.List(actorID)
	if err != nil {
		Fail(c, err)
		return
	}

	list := make([]gin.H, 0, len(contributors))
	for i := range contributors {
		list = append(list, contributorJSON(&contributors[i]))
	}
	Success(c, list)
}

// GET /contributors/:id
func (h *ContributorHandler) GetDetail(c *gin.Context) {
	actorID := middleware.GetCurrentUserID(c)

	contributor, err := h.contributorService.GetByID(actorID, parseID(c.Param("id")))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, contributorJSON(contributor))
}

// PUT/PATCH /contributors/:id
func (h *ContributorHandler) Update(c *gin.Context) {
	id := parseID(c.Param("id"))
	actorID := middleware.GetCurrentUserID(c)

	contributor, err := h.contributorService.GetByID(actorID, id)
	if err != nil {
		Fail(c, err)
		return
	}
	if err := access.CanManageContributors(contributor.Project, actorID); err != nil {
		Fail(c, err)
		return
	}

	var req struct {
		UserID *uint `json:"user_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid payload: "+err.Error())
		return
	}

	if req.UserID == nil {
		Success(c, contributorJSON(contributor))
		return
	}

	updated, err := h.contributorService.UpdateUser(contributor, *req.UserID)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, contributorJSON(updated))
}

// DELETE /contributors/:id
func (h *ContributorHandler) Delete(c *gin.Context) {
	id := parseID(c.Param("id"))
	actorID := middleware.GetCurrentUserID(c)

	contributor, err := h.contributorService.GetByID(actorID, id)
	if err != nil {
		Fail(c, err)
		return
	}
	if err := access.CanManageContributors(contributor.Project, actorID); err != nil {
		Fail(c, err)
		return
	}

	if err := h.contributorService.Delete(id); err != nil {
		Fail(c, err)
		return
	}
	Success(c, gin.H{"message": "contributor removed"})
}
