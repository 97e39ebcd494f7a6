package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/zninennea/nani-plate-perfect/entity"
	"github.com/zninennea/nani-plate-perfect/pkg/resp"
	"github.com/zninennea/nani-plate-perfect/services"
)

type OwnerOrderController struct {
	Svc *services.OrderService
}

func NewOwnerOrderController(svc *services.OrderService) *OwnerOrderController {
	return &OwnerOrderController{Svc: svc}
}

// GET /owner/orders?status=
func (h *OwnerOrderController) List(c *gin.Context) {
	var status *entity.OrderStatus
	if q := c.Query("status"); q != "" {
		st := entity.OrderStatus(q)
		if !st.Valid() {
			resp.BadRequest(c, "unknown status")
			return
		}
		status = &st
	}
	orders, err := h.Svc.ListForOwner(status)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, orders)
}

type advanceReq struct {
	Status entity.OrderStatus `json:"status" binding:"required"`
}

// PATCH /owner/orders/:id/status
func (h *OwnerOrderController) Advance(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req advanceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if !req.Status.Valid() {
		resp.BadRequest(c, "unknown status")
		return
	}
	if err := h.Svc.OwnerAdvance(id, req.Status); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "status": req.Status})
}

// PATCH /owner/orders/:id/cancel
func (h *OwnerOrderController) Cancel(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.OwnerCancel(id); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "status": entity.StatusCancelled})
}
