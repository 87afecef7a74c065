package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/softdesk/backend/internal/middleware"
	"github.com/softdesk/backend/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid payload: "+err.Error())
		return
	}

	user, token, expireAt, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		Fail(c, err)
		return
	}

	Success(c, gin.H{
		"token":     token,
		"expire_at": expireAt,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
		},
	})
}

// GET /auth/me
func (h *AuthHandler) GetMe(c *gin.Context) {
	user := middleware.GetCurrentUser(c)
	Success(c, userJSON(user))
}
