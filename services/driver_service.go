package services

import (
	"github.com/zninennea/nani-plate-perfect/entity"
	"github.com/zninennea/nani-plate-perfect/pkg/realtime"
	"github.com/zninennea/nani-plate-perfect/repository"
)

type DriverService struct {
	Users  *repository.UserRepository
	Orders *repository.OrderRepository
	Hub    *realtime.Hub
}

func NewDriverService(users *repository.UserRepository, orders *repository.OrderRepository, hub *realtime.Hub) *DriverService {
	return &DriverService{Users: users, Orders: orders, Hub: hub}
}

// UpdateLocation stores the driver's last reported position and notifies
// tracking pages through the profiles collection.
func (s *DriverService) UpdateLocation(driverID uint, lat, lng float64) error {
	if err := s.Users.UpdateLocation(driverID, lat, lng); err != nil {
		return err
	}
	if s.Hub != nil {
		s.Hub.Publish(realtime.Event{
			Collection: realtime.CollectionProfiles,
			Kind:       realtime.KindUpdate,
			ProfileID:  driverID,
			DriverID:   driverID,
		})
	}
	return nil
}

func (s *DriverService) ListClaimable() ([]entity.Order, error) {
	return s.Orders.ListClaimable(0)
}

func (s *DriverService) ListMine(driverID uint) ([]entity.Order, error) {
	return s.Orders.ListForDriver(driverID, 0)
}
