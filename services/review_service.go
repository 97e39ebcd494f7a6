package services

import (
	"errors"

	"github.com/zninennea/nani-plate-perfect/entity"
	"github.com/zninennea/nani-plate-perfect/repository"
)

var (
	ErrNotDelivered    = errors.New("order is not delivered yet")
	ErrAlreadyReviewed = errors.New("order already reviewed")
	ErrRatingRange     = errors.New("rating must be between 1 and 5")
)

type ReviewService struct {
	Repo   *repository.ReviewRepository
	Orders *repository.OrderRepository
}

func NewReviewService(repo *repository.ReviewRepository, orders *repository.OrderRepository) *ReviewService {
	return &ReviewService{Repo: repo, Orders: orders}
}

type SubmitReviewReq struct {
	FoodRating   int    `json:"foodRating" binding:"required"`
	DriverRating *int   `json:"driverRating"`
	Comment      string `json:"comment"`
}

// Submit writes the one review an order may ever have. The pre-check gives
// a friendly error; the unique index on order_id backs it up when two
// submissions race.
func (s *ReviewService) Submit(customerID, orderID uint, req *SubmitReviewReq) (*entity.Review, error) {
	if req.FoodRating < 1 || req.FoodRating > 5 {
		return nil, ErrRatingRange
	}
	if req.DriverRating != nil && (*req.DriverRating < 1 || *req.DriverRating > 5) {
		return nil, ErrRatingRange
	}

	o, err := s.Orders.Get(orderID)
	if err != nil {
		return nil, err
	}
	if o.CustomerID != customerID {
		return nil, ErrForbidden
	}
	if !o.ReviewOpen() {
		return nil, ErrNotDelivered
	}

	exists, err := s.Repo.ExistsForOrder(orderID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyReviewed
	}

	rv := &entity.Review{
		OrderID:      orderID,
		CustomerID:   customerID,
		DriverID:     o.DriverID,
		FoodRating:   req.FoodRating,
		DriverRating: req.DriverRating,
		Comment:      req.Comment,
	}
	if err := s.Repo.Create(rv); err != nil {
		// unique index violation from a concurrent submit
		return nil, ErrAlreadyReviewed
	}
	return rv, nil
}

func (s *ReviewService) List() ([]entity.Review, error) {
	return s.Repo.List(0)
}
