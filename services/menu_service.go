package services

import (
	"foodcourt/entity"
	"foodcourt/repository"
)

type MenuService struct {
	Repo     *repository.MenuRepository
	RestRepo *repository.RestaurantRepository
}

func NewMenuService(repo *repository.MenuRepository, restRepo *repository.RestaurantRepository) *MenuService {
	return &MenuService{Repo: repo, RestRepo: restRepo}
}

type MenuIn struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"required,min=1"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Available   *bool  `json:"available"`
}

func (s *MenuService) ListMine(ownerID uint) ([]entity.Menu, error) {
	rest, err := s.RestRepo.FindByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListByRestaurant(rest.ID)
}

func (s *MenuService) Create(ownerID uint, in *MenuIn) (*entity.Menu, error) {
	rest, err := s.RestRepo.FindByOwner(ownerID)
	if err != nil {
		return nil, err
	}

	m := &entity.Menu{
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		Image:        in.Image,
		Category:     in.Category,
		Available:    true,
		RestaurantID: rest.ID,
	}
	if in.Available != nil {
		m.Available = *in.Available
	}
	if err := s.Repo.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MenuService) Update(ownerID, menuID uint, updates map[string]any) (*entity.Menu, error) {
	m, err := s.Repo.FindByID(menuID)
	if err != nil {
		return nil, err
	}
	ok, err := s.RestRepo.IsOwnedBy(m.RestaurantID, ownerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, entity.ErrNotAuthorized
	}

	if err := s.Repo.Update(menuID, updates); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(menuID)
}

func (s *MenuService) Delete(ownerID, menuID uint) error {
	m, err := s.Repo.FindByID(menuID)
	if err != nil {
		return err
	}
	ok, err := s.RestRepo.IsOwnedBy(m.RestaurantID, ownerID)
	if err != nil {
		return err
	}
	if !ok {
		return entity.ErrNotAuthorized
	}
	return s.Repo.Delete(menuID)
}
