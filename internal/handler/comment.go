package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/softdesk/backend/internal/access"
	"github.com/softdesk/backend/internal/middleware"
	"github.com/softdesk/backend/internal/model"
	"github.com/softdesk/backend/internal/service"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func commentJSON(cm *model.Comment) gin.H {
	data := gin.H{
		"id":          cm.ID,
		"description": cm.Description,
		"issue":       cm.IssueID,
		"created_at":  cm.CreatedAt,
	}
	if cm.Author != nil {
		data["author"] = cm.Author.Username
	}
	return data
}

// POST /comments
func (h *CommentHandler) Create(c *gin.Context) {
	var req struct {
		Description string `json:"description" binding:"required"`
		IssueID     uint   `json:"issue" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid payload: "+err.Error())
		return
	}

	actorID := middleware.GetCurrentUserID(c)
	comment, err := h.commentService.Create(actorID, req.IssueID, req.Description)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, commentJSON(comment))
}

// GET /comments
func (h *CommentHandler) List(c *gin.Context) {
	actorID := middleware.GetCurrentUserID(c)

	comments, err := h.commentService.List(actorID)
	if err != nil {
		Fail(c, err)
		return
	}

	list := make([]gin.H, 0, len(comments))
	for i := range comments {
		list = append(list, commentJSON(&comments[i]))
	}
	Success(c, list)
}

// GET /comments/:id
func (h *CommentHandler) GetDetail(c *gin.Context) {
	actorID := middleware.GetCurrentUserID(c)

	comment, err := h.commentService.GetByID(actorID, c.Param("id"))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, commentJSON(comment))
}

// PUT/PATCH /comments/:id
func (h *CommentHandler) Update(c *gin.Context) {
	id := c.Param("id")
	actorID := middleware.GetCurrentUserID(c)

	comment, err := h.commentService.GetByID(actorID, id)
	if err != nil {
		Fail(c, err)
		return
	}
	if err := access.CanModifyComment(comment, actorID); err != nil {
		Fail(c, err)
		return
	}

	var req struct {
		Description *string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid payload: "+err.Error())
		return
	}

	if req.Description == nil {
		Success(c, commentJSON(comment))
		return
	}

	updated, err := h.commentService.Update(id, map[string]interface{}{"description": *req.Description})
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, commentJSON(updated))
}

// DELETE /comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	actorID := middleware.GetCurrentUserID(c)

	comment, err := h.commentService.GetByID(actorID, id)
	if err != nil {
		Fail(c, err)
		return
	}
	if err := access.CanModifyComment(comment, actorID); err != nil {
		Fail(c, err)
		return
	}

	if err := h.commentService.Delete(id); err != nil {
		Fail(c, err)
		return
	}
	Success(c, gin.H{"message": "comment deleted"})
}
