package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/zninennea/nani-plate-perfect/pkg/resp"
	"github.com/zninennea/nani-plate-perfect/services"
	"github.com/zninennea/nani-plate-perfect/utils"
)

type CartController struct {
	Svc *services.CartService
}

func NewCartController(svc *services.CartService) *CartController {
	return &CartController{Svc: svc}
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	cart, subtotal, err := h.Svc.Get(utils.CurrentUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": cart, "subtotal": subtotal})
}

type addCartReq struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity"`
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	var req addCartReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Add(utils.CurrentUserID(c), req.MenuItemID, req.Quantity); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, gin.H{"added": req.MenuItemID})
}

type setQtyReq struct {
	Quantity int `json:"quantity"`
}

// PATCH /cart/items/:menuItemId — quantity <= 0 removes the line
func (h *CartController) SetQuantity(c *gin.Context) {
	id, ok := paramID(c, "menuItemId")
	if !ok {
		return
	}
	var req setQtyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.SetQuantity(utils.CurrentUserID(c), id, req.Quantity); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"menuItemId": id, "quantity": req.Quantity})
}

// DELETE /cart/items/:menuItemId
func (h *CartController) Remove(c *gin.Context) {
	id, ok := paramID(c, "menuItemId")
	if !ok {
		return
	}
	if err := h.Svc.Remove(utils.CurrentUserID(c), id); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": id})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	if err := h.Svc.Clear(utils.CurrentUserID(c)); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
