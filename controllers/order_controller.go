package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/zninennea/nani-plate-perfect/pkg/resp"
	"github.com/zninennea/nani-plate-perfect/services"
	"github.com/zninennea/nani-plate-perfect/utils"
)

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

// POST /orders — checkout from the caller's cart
func (h *OrderController) Checkout(c *gin.Context) {
	var req services.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := h.Svc.Checkout(utils.CurrentUserID(c), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders
func (h *OrderController) ListMine(c *gin.Context) {
	orders, err := h.Svc.ListForCustomer(utils.CurrentUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/:id — receipt / detail view, with the derived capabilities
// the client renders from
func (h *OrderController) Detail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	o, err := h.Svc.Get(id, utils.CurrentUserID(c), utils.CurrentRole(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{
		"order":           o,
		"chatEnabled":     o.ChatEnabled(),
		"trackingEnabled": o.TrackingEnabled(),
		"reviewOpen":      o.ReviewOpen(),
	})
}

// GET /orders/:id/tracking
func (h *OrderController) Tracking(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	info, err := h.Svc.Tracking(id, utils.CurrentUserID(c), utils.CurrentRole(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, info)
}
