package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/zninennea/nani-plate-perfect/entity"
	"github.com/zninennea/nani-plate-perfect/pkg/resp"
	"github.com/zninennea/nani-plate-perfect/services"
	"github.com/zninennea/nani-plate-perfect/utils"
)

type DriverController struct {
	Svc    *services.DriverService
	Orders *services.OrderService
}

func NewDriverController(svc *services.DriverService, orders *services.OrderService) *DriverController {
	return &DriverController{Svc: svc, Orders: orders}
}

// GET /driver/orders/available — ready orders nobody has claimed
func (h *DriverController) Available(c *gin.Context) {
	orders, err := h.Svc.ListClaimable()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, orders)
}

// POST /driver/orders/:id/claim
func (h *DriverController) Claim(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.Orders.DriverClaim(utils.CurrentUserID(c), id); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "status": entity.StatusPickedUp})
}

type driverAdvanceReq struct {
	Status entity.OrderStatus `json:"status" binding:"required"`
}

// PATCH /driver/orders/:id/status — on_the_way, then delivered
func (h *DriverController) Advance(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req driverAdvanceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if !req.Status.Valid() {
		resp.BadRequest(c, "unknown status")
		return
	}
	if err := h.Orders.DriverAdvance(utils.CurrentUserID(c), id, req.Status); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "status": req.Status})
}

// GET /driver/orders
func (h *DriverController) ListMine(c *gin.Context) {
	orders, err := h.Svc.ListMine(utils.CurrentUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, orders)
}

type locationReq struct {
	Lat float64 `json:"lat" binding:"required"`
	Lng float64 `json:"lng" binding:"required"`
}

// PATCH /driver/location
func (h *DriverController) UpdateLocation(c *gin.Context) {
	var req locationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.UpdateLocation(utils.CurrentUserID(c), req.Lat, req.Lng); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"lat": req.Lat, "lng": req.Lng})
}
