package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/zninennea/nani-plate-perfect/pkg/resp"
	"github.com/zninennea/nani-plate-perfect/services"
)

type MenuController struct {
	Svc *services.MenuService
}

func NewMenuController(svc *services.MenuService) *MenuController {
	return &MenuController{Svc: svc}
}

// GET /menu — customers see available items only
func (h *MenuController) ListAvailable(c *gin.Context) {
	items, err := h.Svc.ListAvailable()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /owner/menu
func (h *MenuController) ListAll(c *gin.Context) {
	items, err := h.Svc.ListAll()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /owner/menu
func (h *MenuController) Create(c *gin.Context) {
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m, err := h.Svc.Create(&req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, m)
}

// PATCH /owner/menu/:id
func (h *MenuController) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req services.MenuItemPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m, err := h.Svc.Update(id, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, m)
}

// DELETE /owner/menu/:id
func (h *MenuController) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Delete(id); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

func paramID(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || n == 0 {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(n), true
}
