package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/zninennea/nani-plate-perfect/entity"
	"github.com/zninennea/nani-plate-perfect/pkg/realtime"
)

var (
	ErrConflict       = errors.New("order changed underneath the update, re-fetch and retry")
	ErrAlreadyClaimed = errors.New("order already claimed by another driver")
	ErrNotYourOrder   = errors.New("order is assigned to a different driver")
)

// ----- Owner actions -----

// OwnerAdvance moves an order along the kitchen sequence. The transition
// table rejects skips; the conditional update rejects stale writes racing
// with another operator session.
func (s *OrderService) OwnerAdvance(orderID uint, to entity.OrderStatus) error {
	o, err := s.Repo.Get(orderID)
	if err != nil {
		return err
	}
	if err := entity.CanTransition(o.Status, to, entity.ActorOwner); err != nil {
		return err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrConflict
		}
		return nil
	})
	if err != nil {
		return err
	}

	o.Status = to
	s.publish(realtime.KindUpdate, o)
	return nil
}

func (s *OrderService) OwnerCancel(orderID uint) error {
	o, err := s.Repo.Get(orderID)
	if err != nil {
		return err
	}
	if o.Status.Terminal() {
		return entity.CanTransition(o.Status, entity.StatusCancelled, entity.ActorOwner)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.CancelGuard(tx, o.ID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrConflict
		}
		return nil
	})
	if err != nil {
		return err
	}

	o.Status = entity.StatusCancelled
	s.publish(realtime.KindUpdate, o)
	return nil
}

// ----- Driver actions -----

// DriverClaim attaches the driver to a ready, unassigned order and advances
// it to picked_up in a single conditional update. Losing the race is
// reported as ErrAlreadyClaimed, never resolved by overwriting.
func (s *OrderService) DriverClaim(driverID, orderID uint) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.ClaimDriver(tx, orderID, driverID)
		if err != nil {
			return err
		}
		if affected == 0 {
			cur, err := s.Repo.Get(orderID)
			if err != nil {
				return err
			}
			if cur.DriverID != nil {
				return ErrAlreadyClaimed
			}
			return entity.CanTransition(cur.Status, entity.StatusPickedUp, entity.ActorDriver)
		}
		return nil
	})
	if err != nil {
		return err
	}

	o, err := s.Repo.Get(orderID)
	if err == nil {
		s.publish(realtime.KindUpdate, o)
	}
	return nil
}

// DriverAdvance covers picked_up→on_the_way→delivered for the driver
// holding the order.
func (s *OrderService) DriverAdvance(driverID, orderID uint, to entity.OrderStatus) error {
	o, err := s.Repo.Get(orderID)
	if err != nil {
		return err
	}
	if o.DriverID == nil || *o.DriverID != driverID {
		return ErrNotYourOrder
	}
	if err := entity.CanTransition(o.Status, to, entity.ActorDriver); err != nil {
		return err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrConflict
		}
		return nil
	})
	if err != nil {
		return err
	}

	o.Status = to
	s.publish(realtime.KindUpdate, o)
	return nil
}
