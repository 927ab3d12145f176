package repository

import (
	"foodcourt/entity"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

// CreateOrder inserts the order and its snapshot items.
func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Preload("Items").
		Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForRestaurant(restID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Preload("Items").
		Where("id = ? AND restaurant_id = ?", orderID, restID).First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ListOrdersForUser is the customer's order history, newest first.
func (r *OrderRepository) ListOrdersForUser(userID uint, limit int) ([]entity.Order, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []entity.Order
	err := r.DB.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).
		Find(&out).Error
	return out, err
}

// ListOrdersForRestaurant is the owner's queue, optionally filtered by status.
func (r *OrderRepository) ListOrdersForRestaurant(restID uint, status *entity.OrderStatus, page, limit int) ([]entity.Order, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset := (page - 1) * limit

	q := r.DB.Model(&entity.Order{}).Where("restaurant_id = ?", restID)
	if status != nil && *status != "" {
		q = q.Where("status = ?", *status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []entity.Order
	err := q.Preload("Items").
		Order("created_at DESC").Offset(offset).Limit(limit).
		Find(&out).Error
	return out, total, err
}

// ListAllOrders is the admin's global ledger, newest first.
func (r *OrderRepository) ListAllOrders(limit int) ([]entity.Order, error) {
	if limit <= 0 {
		limit = 200
	}
	var out []entity.Order
	err := r.DB.Preload("Items").
		Order("created_at DESC").Limit(limit).
		Find(&out).Error
	return out, err
}

// UpdateStatusGuard advances the status only when the stored value still
// equals from. A zero affected count means the edge was illegal by the time
// the write landed (stale read or double click).
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// DeliveredRevenue sums completed order totals for a restaurant.
func (r *OrderRepository) DeliveredRevenue(restID uint) (int64, error) {
	var sum int64
	err := r.DB.Model(&entity.Order{}).
		Where("restaurant_id = ? AND status = ?", restID, entity.StatusDelivered).
		Select("COALESCE(SUM(total_amount), 0)").Scan(&sum).Error
	return sum, err
}

// CountByStatus is the owner dashboard breakdown.
func (r *OrderRepository) CountByStatus(restID uint, status entity.OrderStatus) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Order{}).
		Where("restaurant_id = ? AND status = ?", restID, status).
		Count(&count).Error
	return count, err
}
