package service

import (
	"context"
	"errors"
	"fmt"

	"cake_orders/internal/model"
	"cake_orders/internal/repository"
	"cake_orders/internal/utils"
)

var ErrInvalidPhone = errors.New("invalid phone number, use the +7 (XXX) XXX-XX-XX format or 10-11 digits")

// OrderService defines operations for cake orders
type OrderService interface {
	CreateOrder(ctx context.Context, req model.CreateOrderRequest) (*model.Order, error)
	ListOrders(ctx context.Context) ([]model.Order, error)
}

type orderService struct {
	repo repository.OrderRepository
}

// NewOrderService creates a new OrderService
func NewOrderService(repo repository.OrderRepository) OrderService {
	return &orderService{repo: repo}
}

// CreateOrder validates and persists a new order. Rejected orders are
// never stored. Quantity and total cost are accepted as-is.
func (s *orderService) CreateOrder(ctx context.Context, req model.CreateOrderRequest) (*model.Order, error) {
	if !utils.ValidatePhone(req.Phone) {
		return nil, ErrInvalidPhone
	}

	order := &model.Order{
		Name:      req.Name,
		Phone:     req.Phone,
		Product:   req.Product,
		Quantity:  req.Quantity,
		Details:   req.Details,
		TotalCost: req.TotalCost,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order in repo: %w", err)
	}
	return order, nil
}

// ListOrders returns every order, most recent first
func (s *orderService) ListOrders(ctx context.Context) ([]model.Order, error) {
	orders, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders from repo: %w", err)
	}
	return orders, nil
}
