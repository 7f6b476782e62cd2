package service

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"food-ordering/internal/domain"
)

type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func notFound(err error, what string, id int) error {
	if isNoRows(err) {
		return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
	}
	return err
}

func (s *CatalogService) CreateRestaurant(rest *domain.Restaurant) error {
	rest.Name = strings.TrimSpace(rest.Name)
	if rest.Name == "" {
		return ErrInvalidRestaurant
	}
	return s.repo.CreateRestaurant(rest)
}

// GetOrCreateRestaurant returns the restaurant whose name matches
// case-insensitively, creating it when there is none.
func (s *CatalogService) GetOrCreateRestaurant(name string) (*domain.Restaurant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidRestaurant
	}
	existing, err := s.repo.FindRestaurantByName(name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	rest := &domain.Restaurant{Name: name}
	if err := s.repo.CreateRestaurant(rest); err != nil {
		return nil, err
	}
	return rest, nil
}

func (s *CatalogService) ListRestaurants() ([]domain.Restaurant, error) {
	restaurants, err := s.repo.ListRestaurants()
	if err != nil {
		return nil, err
	}
	for i := range restaurants {
		menu, err := s.Menu(restaurants[i].ID)
		if err != nil {
			return nil, err
		}
		restaurants[i].Menu = menu
	}
	return restaurants, nil
}

func (s *CatalogService) GetRestaurant(id int) (*domain.Restaurant, error) {
	rest, err := s.repo.GetRestaurant(id)
	if err != nil {
		return nil, notFound(err, "restaurant", id)
	}
	menu, err := s.Menu(id)
	if err != nil {
		return nil, err
	}
	rest.Menu = menu
	return rest, nil
}

func (s *CatalogService) RenameRestaurant(id int, name string) (*domain.Restaurant, error) {
	rest := &domain.Restaurant{ID: id, Name: strings.TrimSpace(name)}
	if rest.Name == "" {
		return nil, ErrInvalidRestaurant
	}
	if err := s.repo.UpdateRestaurant(rest); err != nil {
		return nil, notFound(err, "restaurant", id)
	}
	return rest, nil
}

// DeleteRestaurant removes a restaurant and its menu. Restaurants that
// orders still point at are kept so the ledger stays intact.
func (s *CatalogService) DeleteRestaurant(id int) error {
	orders, err := s.repo.CountRestaurantOrders(id)
	if err != nil {
		return err
	}
	if orders > 0 {
		return fmt.Errorf("restaurant %d has %d orders: %w", id, orders, ErrRestaurantHasOrders)
	}
	rows, err := s.repo.DeleteRestaurant(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("restaurant %d: %w", id, ErrNotFound)
	}
	return nil
}

func validateFood(food *domain.FoodItem) error {
	food.Name = strings.TrimSpace(food.Name)
	food.Category = domain.NormalizeCategory(string(food.Category))
	if food.Name == "" || food.Category == "" || food.Price < 0 {
		return ErrInvalidFood
	}
	if strings.ContainsAny(food.Name, "|\r\n") {
		return fmt.Errorf("%w: name may not contain '|' or line breaks", ErrInvalidFood)
	}
	return nil
}

func (s *CatalogService) AddFood(food *domain.FoodItem) error {
	if err := validateFood(food); err != nil {
		return err
	}
	if _, err := s.repo.GetRestaurant(food.RestaurantID); err != nil {
		return notFound(err, "restaurant", food.RestaurantID)
	}
	return s.repo.CreateFood(food)
}

func (s *CatalogService) UpdateFood(food *domain.FoodItem) error {
	if err := validateFood(food); err != nil {
		return err
	}
	rows, err := s.repo.UpdateFood(food)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("food %d: %w", food.ID, ErrNotFound)
	}
	return nil
}

func (s *CatalogService) DeleteFood(restaurantID, foodID int) error {
	rows, err := s.repo.DeleteFood(restaurantID, foodID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("food %d: %w", foodID, ErrNotFound)
	}
	return nil
}

// Menu lists a restaurant's food the way menus are shown: by category rank,
// then by name.
func (s *CatalogService) Menu(restaurantID int) ([]domain.FoodItem, error) {
	items, err := s.repo.ListFood(restaurantID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		ri, rj := items[i].Category.Rank(), items[j].Category.Rank()
		if ri != rj {
			return ri < rj
		}
		return items[i].Name < items[j].Name
	})
	return items, nil
}

func (s *CatalogService) FindFoodByName(name string) (*domain.FoodItem, error) {
	item, err := s.repo.FindFoodByName(name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("food %q: %w", name, ErrNotFound)
	}
	return item, err
}
