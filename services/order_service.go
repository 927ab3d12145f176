package services

import (
	"foodcourt/entity"
	"foodcourt/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderNotifier receives a signal after an order is created or its status
// changes, so live feeds can push fresh snapshots. Implemented by the
// websocket hub; nil disables pushes.
type OrderNotifier interface {
	OrderChanged(customerID, restaurantID uint)
}

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	RestRepo *repository.RestaurantRepository
	UserRepo *repository.UserRepository
	Notifier OrderNotifier
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	restRepo *repository.RestaurantRepository,
	userRepo *repository.UserRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, RestRepo: restRepo, UserRepo: userRepo}
}

func (s *OrderService) notify(customerID, restaurantID uint) {
	if s.Notifier != nil {
		s.Notifier.OrderChanged(customerID, restaurantID)
	}
}

// Checkout is the sole creation point for orders. The cart fans out into
// one PENDING order per restaurant; each order's TotalAmount is that
// restaurant's line subtotal only; discount, tax and delivery fee are
// cart-level and not attributed per restaurant. All orders are created in
// one transaction. The cart is NOT cleared here; the caller does that after
// a successful checkout so the two stay separable.
func (s *OrderService) Checkout(userID uint) ([]entity.Order, error) {
	cart, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, entity.ErrEmptyCart
	}

	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	// Group lines by restaurant, preserving first-seen order.
	type group struct {
		restaurantID   uint
		restaurantName string
		items          []entity.CartItem
		subtotal       int64
	}
	groups := make(map[uint]*group)
	var sequence []uint
	for _, it := range cart.Items {
		g, ok := groups[it.RestaurantID]
		if !ok {
			g = &group{restaurantID: it.RestaurantID, restaurantName: it.RestaurantName}
			groups[it.RestaurantID] = g
			sequence = append(sequence, it.RestaurantID)
		}
		g.items = append(g.items, it)
		g.subtotal += it.UnitPrice * int64(it.Qty)
	}

	var orders []entity.Order
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		for _, restID := range sequence {
			g := groups[restID]
			items := make([]entity.OrderItem, 0, len(g.items))
			for _, it := range g.items {
				items = append(items, entity.OrderItem{
					Name:      it.Name,
					Qty:       it.Qty,
					UnitPrice: it.UnitPrice,
					Total:     it.UnitPrice * int64(it.Qty),
					MenuID:    it.MenuID,
				})
			}
			order := entity.Order{
				Reference:      uuid.NewString(),
				TotalAmount:    g.subtotal,
				Status:         entity.StatusPending,
				UserID:         userID,
				CustomerName:   user.Name,
				RestaurantID:   g.restaurantID,
				RestaurantName: g.restaurantName,
				Items:          items,
			}
			if err := s.Repo.CreateOrder(tx, &order); err != nil {
				return err
			}
			orders = append(orders, order)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, o := range orders {
		s.notify(o.UserID, o.RestaurantID)
	}
	return orders, nil
}

// ---------------- Reads ----------------

func (s *OrderService) ListForUser(userID uint, limit int) ([]entity.Order, error) {
	return s.Repo.ListOrdersForUser(userID, limit)
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*entity.Order, error) {
	return s.Repo.GetOrderForUser(userID, orderID)
}

type OwnerOrderList struct {
	Items []entity.Order `json:"items"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

func (s *OrderService) ListForRestaurant(ownerID, restID uint, status *entity.OrderStatus, page, limit int) (*OwnerOrderList, error) {
	ok, err := s.RestRepo.IsOwnedBy(restID, ownerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, entity.ErrNotAuthorized
	}

	items, total, err := s.Repo.ListOrdersForRestaurant(restID, status, page, limit)
	if err != nil {
		return nil, err
	}
	return &OwnerOrderList{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *OrderService) DetailForRestaurant(ownerID, restID, orderID uint) (*entity.Order, error) {
	ok, err := s.RestRepo.IsOwnedBy(restID, ownerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, entity.ErrNotAuthorized
	}
	return s.Repo.GetOrderForRestaurant(restID, orderID)
}

func (s *OrderService) ListAll(limit int) ([]entity.Order, error) {
	return s.Repo.ListAllOrders(limit)
}

// OwnerDashboard is the owner's at-a-glance view: queue breakdown plus
// revenue of delivered orders.
type OwnerDashboard struct {
	Pending   int64 `json:"pending"`
	Preparing int64 `json:"preparing"`
	Delivered int64 `json:"delivered"`
	Revenue   int64 `json:"revenue"`
}

func (s *OrderService) DashboardForRestaurant(ownerID, restID uint) (*OwnerDashboard, error) {
	ok, err := s.RestRepo.IsOwnedBy(restID, ownerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, entity.ErrNotAuthorized
	}

	var d OwnerDashboard
	if d.Pending, err = s.Repo.CountByStatus(restID, entity.StatusPending); err != nil {
		return nil, err
	}
	if d.Preparing, err = s.Repo.CountByStatus(restID, entity.StatusPreparing); err != nil {
		return nil, err
	}
	if d.Delivered, err = s.Repo.CountByStatus(restID, entity.StatusDelivered); err != nil {
		return nil, err
	}
	if d.Revenue, err = s.Repo.DeliveredRevenue(restID); err != nil {
		return nil, err
	}
	return &d, nil
}
