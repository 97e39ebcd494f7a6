package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/zninennea/nani-plate-perfect/pkg/resp"
	"github.com/zninennea/nani-plate-perfect/services"
	"github.com/zninennea/nani-plate-perfect/utils"
)

type ReviewController struct {
	Svc *services.ReviewService
}

func NewReviewController(svc *services.ReviewService) *ReviewController {
	return &ReviewController{Svc: svc}
}

// POST /orders/:id/reviews
func (h *ReviewController) Submit(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req services.SubmitReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rv, err := h.Svc.Submit(utils.CurrentUserID(c), id, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, rv)
}

// GET /owner/reviews — review dashboard
func (h *ReviewController) List(c *gin.Context) {
	reviews, err := h.Svc.List()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, reviews)
}
