package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/zninennea/nani-plate-perfect/entity"
	"github.com/zninennea/nani-plate-perfect/pkg/resp"
	"github.com/zninennea/nani-plate-perfect/services"
	"github.com/zninennea/nani-plate-perfect/utils"
)

// ChatHub fans chat messages out to everyone connected to an order's room.
// Rooms are keyed by order id; access and the open/closed state of the chat
// are decided by the chat service, not here.
type ChatHub struct {
	clients    map[uint]map[*websocket.Conn]bool // orderID -> connections
	broadcast  chan broadcastMessage
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
	service    *services.ChatService
	log        *zap.Logger
}

type subscription struct {
	Conn    *websocket.Conn
	OrderID uint
	UserID  uint
}

type broadcastMessage struct {
	OrderID uint
	Message *entity.ChatMessage
}

func NewChatHub(service *services.ChatService, log *zap.Logger) *ChatHub {
	return &ChatHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan broadcastMessage),
		register:   make(chan subscription),
		unregister: make(chan subscription),
		service:    service,
		log:        log,
	}
}

func (h *ChatHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.OrderID] == nil {
				h.clients[sub.OrderID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.OrderID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.OrderID][sub.Conn]; ok {
				delete(h.clients[sub.OrderID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[msg.OrderID] {
				if err := conn.WriteJSON(msg.Message); err != nil {
					h.log.Warn("ws write failed", zap.Error(err))
					conn.Close()
					delete(h.clients[msg.OrderID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// GET /ws/chat/:id (auth middleware runs first)
func (h *ChatHub) HandleWebSocket(c *gin.Context) {
	orderID, err := orderParam(c)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	userID := utils.CurrentUserID(c)

	ok, err := h.service.CanAccess(userID, orderID)
	if err != nil || !ok {
		resp.Forbidden(c, "no access to this chat")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("ws upgrade failed", zap.Error(err))
		return
	}

	sub := subscription{Conn: conn, OrderID: orderID, UserID: userID}
	h.register <- sub

	go h.listen(sub)
}

// listen reads messages from one client until the connection drops; the
// deferred unregister is the teardown that keeps rooms leak-free.
func (h *ChatHub) listen(sub subscription) {
	defer func() { h.unregister <- sub }()

	for {
		_, data, err := sub.Conn.ReadMessage()
		if err != nil {
			return
		}

		var payload struct {
			Body string `json:"body"`
		}
		if err := json.Unmarshal(data, &payload); err != nil {
			h.log.Warn("ws bad payload", zap.Error(err))
			continue
		}

		// sender identity comes from the token, never the frame
		msg, err := h.service.Send(sub.OrderID, sub.UserID, payload.Body)
		if err != nil {
			h.log.Warn("ws send rejected", zap.Error(err))
			continue
		}

		h.broadcast <- broadcastMessage{OrderID: sub.OrderID, Message: msg}
	}
}
