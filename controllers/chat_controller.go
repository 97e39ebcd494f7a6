package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/zninennea/nani-plate-perfect/pkg/resp"
	"github.com/zninennea/nani-plate-perfect/services"
	"github.com/zninennea/nani-plate-perfect/utils"
)

type ChatController struct {
	Svc *services.ChatService
}

func NewChatController(svc *services.ChatService) *ChatController {
	return &ChatController{Svc: svc}
}

// GET /orders/:id/chat
func (h *ChatController) History(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	msgs, err := h.Svc.History(id, utils.CurrentUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, msgs)
}

type sendMessageReq struct {
	Body string `json:"body" binding:"required"`
}

// POST /orders/:id/chat
func (h *ChatController) Send(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	msg, err := h.Svc.Send(id, utils.CurrentUserID(c), req.Body)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, msg)
}
