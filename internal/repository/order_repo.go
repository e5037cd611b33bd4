package repository

import (
	"context"
	"fmt"

	"cake_orders/internal/model"
)

// OrderRepository defines operations for order data
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	FindAll(ctx context.Context) ([]model.Order, error)
}

type orderRepository struct {
	db Querier
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(db Querier) OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts a new order. ID and CreatedAt are assigned by the
// database; whatever the caller put there is overwritten.
func (r *orderRepository) Create(ctx context.Context, o *model.Order) error {
	sql := `INSERT INTO orders (name, phone, product, quantity, details, total_cost)
            VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
	err := r.db.QueryRow(ctx, sql, o.Name, o.Phone, o.Product, o.Quantity, o.Details, o.TotalCost).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// FindAll retrieves every order, most recent first. Orders sharing a
// timestamp keep insertion order.
func (r *orderRepository) FindAll(ctx context.Context) ([]model.Order, error) {
	sql := `SELECT id, name, phone, product, quantity, details, total_cost, created_at
            FROM orders ORDER BY created_at DESC, id ASC`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(
			&o.ID, &o.Name, &o.Phone, &o.Product, &o.Quantity,
			&o.Details, &o.TotalCost, &o.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		orders = append(orders, o)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order rows: %w", err)
	}
	return orders, nil
}
