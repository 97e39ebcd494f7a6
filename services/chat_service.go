package services

import (
	"errors"
	"strings"

	"github.com/zninennea/nani-plate-perfect/entity"
	"github.com/zninennea/nani-plate-perfect/pkg/realtime"
	"github.com/zninennea/nani-plate-perfect/repository"
)

var (
	ErrChatClosed   = errors.New("chat is not open for this order")
	ErrEmptyMessage = errors.New("message body is required")
)

type ChatService struct {
	Repo   *repository.ChatRepository
	Orders *repository.OrderRepository
	Hub    *realtime.Hub
}

func NewChatService(repo *repository.ChatRepository, orders *repository.OrderRepository, hub *realtime.Hub) *ChatService {
	return &ChatService{Repo: repo, Orders: orders, Hub: hub}
}

// CanAccess limits a chat to the order's customer<->driver pair.
func (s *ChatService) CanAccess(userID, orderID uint) (bool, error) {
	o, err := s.Orders.Get(orderID)
	if err != nil {
		return false, err
	}
	if o.CustomerID == userID {
		return true, nil
	}
	return o.DriverID != nil && *o.DriverID == userID, nil
}

// Send appends a message. Allowed only while the capability predicate
// holds (driver assigned and order in transit); the receiver is the other
// side of the pair, derived from the order, never trusted from the caller.
func (s *ChatService) Send(orderID, senderID uint, body string) (*entity.ChatMessage, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrEmptyMessage
	}

	o, err := s.Orders.Get(orderID)
	if err != nil {
		return nil, err
	}
	if !o.ChatEnabled() {
		return nil, ErrChatClosed
	}

	var receiverID uint
	switch senderID {
	case o.CustomerID:
		receiverID = *o.DriverID
	case *o.DriverID:
		receiverID = o.CustomerID
	default:
		return nil, ErrForbidden
	}

	msg := &entity.ChatMessage{
		OrderID:    orderID,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Body:       body,
	}
	if err := s.Repo.Create(msg); err != nil {
		return nil, err
	}

	if s.Hub != nil {
		s.Hub.Publish(realtime.Event{
			Collection: realtime.CollectionChatMessages,
			Kind:       realtime.KindInsert,
			OrderID:    orderID,
			CustomerID: o.CustomerID,
			DriverID:   *o.DriverID,
		})
	}
	return msg, nil
}

func (s *ChatService) History(orderID, viewerID uint) ([]entity.ChatMessage, error) {
	ok, err := s.CanAccess(viewerID, orderID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}
	return s.Repo.History(orderID, 0)
}
