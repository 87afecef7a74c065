package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/softdesk/backend/internal/access"
	"github.com/softdesk/backend/internal/middleware"
	"github.com/softdesk/backend/internal/model"
	"github.com/softdesk/backend/internal/service"
)

type UserHandler struct {
	userService *service.UserService
	pageSize    int
}

func NewUserHandler(userService *service.UserService, pageSize int) *UserHandler {
	return &UserHandler{userService: userService, pageSize: pageSize}
}

func userJSON(u *model.User) gin.H {
	return gin.H{
		"id":                 u.ID,
		"username":           u.Username,
		"email":              u.Email,
		"age":                u.Age,
		"can_be_contacted":   u.CanBeContacted,
		"can_data_be_shared": u.CanDataBeShared,
		"created_at":         u.CreatedAt,
		"updated_at":         u.UpdatedAt,
	}
}

// POST /users (public signup)
func (h *UserHandler) Create(c *gin.Context) {
	var req struct {
		Username        string `json:"username" binding:"required,max=64"`
		Email           string `json:"email" binding:"omitempty,email"`
		Age             int    `json:"age" binding:"required"`
		CanBeContacted  bool   `json:"can_be_contacted"`
		CanDataBeShared bool   `json:"can_data_be_shared"`
		Password        string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid payload: "+err.Error())
		return
	}

	user, err := h.userService.Create(service.CreateUserInput{
		Username:        req.Username,
		Email:           req.Email,
		Age:             req.Age,
		CanBeContacted:  req.CanBeContacted,
		CanDataBeShared: req.CanDataBeShared,
		Password:        req.Password,
	})
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, userJSON(user))
}

// GET /users
func (h *UserHandler) List(c *gin.Context) {
	page, pageSize := parsePage(c, h.pageSize)

	users, total, err := h.userService.List(page, pageSize)
	if err != nil {
		Fail(c, err)
		return
	}

	list := make([]gin.H, 0, len(users))
	for i := range users {
		list = append(list, userJSON(&users[i]))
	}
	SuccessPaged(c, list, total, page, pageSize)
}

// GET /users/:id
func (h *UserHandler) GetDetail(c *gin.Context) {
	user, err := h.userService.GetByID(parseID(c.Param("id")))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, userJSON(user))
}

// PUT/PATCH /users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id := parseID(c.Param("id"))
	actorID := middleware.GetCurrentUserID(c)

	user, err := h.userService.GetByID(id)
	if err != nil {
		Fail(c, err)
		return
	}
	if err := access.CanModifyUser(user, actorID); err != nil {
		Fail(c, err)
		return
	}

	var req struct {
		Username        *string `json:"username" binding:"omitempty,max=64"`
		Email           *string `json:"email" binding:"omitempty,email"`
		Age             *int    `json:"age"`
		CanBeContacted  *bool   `json:"can_be_contacted"`
		CanDataBeShared *bool   `json:"can_data_be_shared"`
		Password        *string `json:"password" binding:"omitempty,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid payload: "+err.Error())
		return
	}

	updates := make(map[string]interface{})
	if req.Username != nil {
		updates["username"] = *req.Username
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Age != nil {
		updates["age"] = *req.Age
	}
	if req.CanBeContacted != nil {
		updates["can_be_contacted"] = *req.CanBeContacted
	}
	if req.CanDataBeShared != nil {
		updates["can_data_be_shared"] = *req.CanDataBeShared
	}
	if req.Password != nil {
		updates["password"] = *req.Password
	}

	updated, err := h.userService.Update(id, updates)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, userJSON(updated))
}

// DELETE /users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id := parseID(c.Param("id"))
	actorID := middleware.GetCurrentUserID(c)

	user, err := h.userService.GetByID(id)
	if err != nil {
		Fail(c, err)
		return
	}
	if err := access.CanModifyUser(user, actorID); err != nil {
		Fail(c, err)
		return
	}

	if err := h.userService.Delete(id); err != nil {
		Fail(c, err)
		return
	}
	Success(c, gin.H{"message": "user deleted"})
}
