package services

import (
	"errors"
	"strings"

	"github.com/zninennea/nani-plate-perfect/entity"
	"github.com/zninennea/nani-plate-perfect/repository"
)

var ErrBadPrice = errors.New("price must be positive")

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

type MenuItemIn struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"required"`
	Category    string `json:"category"`
	ImageRef    string `json:"imageRef"`
	Available   *bool  `json:"available"`
}

func (s *MenuService) Create(in *MenuItemIn) (*entity.MenuItem, error) {
	if in.Price <= 0 {
		return nil, ErrBadPrice
	}
	m := &entity.MenuItem{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		ImageRef:    in.ImageRef,
		Available:   true,
	}
	if in.Available != nil {
		m.Available = *in.Available
	}
	if err := s.Repo.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

type MenuItemPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int64  `json:"price"`
	Category    *string `json:"category"`
	ImageRef    *string `json:"imageRef"`
	Available   *bool   `json:"available"`
}

func (s *MenuService) Update(id uint, in *MenuItemPatch) (*entity.MenuItem, error) {
	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Price != nil {
		if *in.Price <= 0 {
			return nil, ErrBadPrice
		}
		updates["price"] = *in.Price
	}
	if in.Category != nil {
		updates["category"] = *in.Category
	}
	if in.ImageRef != nil {
		updates["image_ref"] = *in.ImageRef
	}
	if in.Available != nil {
		updates["available"] = *in.Available
	}
	if len(updates) > 0 {
		if err := s.Repo.Update(id, updates); err != nil {
			return nil, err
		}
	}
	return s.Repo.Get(id)
}

func (s *MenuService) Delete(id uint) error {
	return s.Repo.Delete(id)
}

func (s *MenuService) ListAvailable() ([]entity.MenuItem, error) {
	return s.Repo.ListAvailable()
}

func (s *MenuService) ListAll() ([]entity.MenuItem, error) {
	return s.Repo.ListAll()
}
