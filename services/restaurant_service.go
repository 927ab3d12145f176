package services

import (
	"foodcourt/entity"
	"foodcourt/repository"
)

type RestaurantService struct {
	Repo *repository.RestaurantRepository
}

func NewRestaurantService(repo *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{Repo: repo}
}

func (s *RestaurantService) List() ([]entity.Restaurant, error) {
	return s.Repo.List()
}

func (s *RestaurantService) Detail(id uint) (*entity.Restaurant, error) {
	return s.Repo.FindByID(id)
}

// Mine returns the restaurant owned by the given account.
func (s *RestaurantService) Mine(ownerID uint) (*entity.Restaurant, error) {
	return s.Repo.FindByOwner(ownerID)
}

func (s *RestaurantService) UpdateMine(ownerID uint, updates map[string]any) (*entity.Restaurant, error) {
	rest, err := s.Repo.FindByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Update(rest.ID, updates); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(rest.ID)
}
