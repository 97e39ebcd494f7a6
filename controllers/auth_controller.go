package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/zninennea/nani-plate-perfect/pkg/resp"
	"github.com/zninennea/nani-plate-perfect/services"
	"github.com/zninennea/nani-plate-perfect/utils"
)

type AuthController struct {
	Svc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{Svc: svc}
}

type registerReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"fullName" binding:"required"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

// POST /auth/register
func (h *AuthController) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := h.Svc.Register(req.Email, req.Password, req.FullName, req.Phone, req.Role)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, user)
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/login
func (h *AuthController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	token, user, err := h.Svc.Login(req.Email, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

type oauthReq struct {
	Provider string `json:"provider" binding:"required"`
	Code     string `json:"code" binding:"required"`
}

// POST /auth/oauth
func (h *AuthController) LoginWithOAuth(c *gin.Context) {
	var req oauthReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	token, user, err := h.Svc.LoginWithOAuth(req.Provider, req.Code)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

// GET /auth/me
func (h *AuthController) Me(c *gin.Context) {
	user, err := h.Svc.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, user)
}

type updateMeReq struct {
	FullName *string `json:"fullName"`
	Phone    *string `json:"phone"`
}

// PATCH /auth/me
func (h *AuthController) UpdateMe(c *gin.Context) {
	var req updateMeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := h.Svc.UpdateProfile(utils.CurrentUserID(c), req.FullName, req.Phone)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, user)
}
