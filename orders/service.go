// Package orders implements order placement and the order status lifecycle.
package orders

import (
	"errors"
	"log"
	"time"

	"github.com/onlinestore/backend/apperr"
	"github.com/onlinestore/backend/auth"
	"github.com/onlinestore/backend/events"
	"github.com/onlinestore/backend/models"
	"github.com/onlinestore/backend/storage"
)

type ItemRequest struct {
	ProductID uint `json:"productID"`
	Quantity  int  `json:"quantity"`
}

type PlaceOrderRequest struct {
	CustomerID            uint                `json:"customerID"`
	Items                 []ItemRequest       `json:"items"`
	PaymentMethod         string              `json:"paymentMethod"`
	ShippingAddress       string              `json:"shippingAddress"`
	CarrierName           string              `json:"carrierName"`
	EstimatedDeliveryDate *time.Time          `json:"estimatedDeliveryDate"`
	OrderStatus           *models.OrderStatus `json:"orderStatus"`
}

type PlacedOrder struct {
	Success    bool               `json:"success"`
	Message    string             `json:"message"`
	Order      models.Order       `json:"order"`
	OrderItems []models.OrderItem `json:"orderItems"`
	Payment    models.Payment     `json:"payment"`
	Shipping   models.Shipping    `json:"shipping"`
}

type Service struct {
	store  storage.Store
	events events.Publisher
}

func NewService(store storage.Store, publisher events.Publisher) *Service {
	return &Service{store: store, events: publisher}
}

// validatedItem carries the server-side price snapshot taken at validation
// time. Client-supplied prices are never accepted.
type validatedItem struct {
	productID uint
	quantity  int
	price     float64
	lineTotal float64
}

// PlaceOrder validates the request against live stock and authoritative
// prices, then creates the order, its items, the payment and the shipping
// record in a single transaction. The stock decrement is a conditional
// update inside the same transaction, so a concurrent order for the same
// product rolls this one back instead of driving stock negative.
func (s *Service) PlaceOrder(caller auth.Identity, req PlaceOrderRequest) (*PlacedOrder, error) {
	if !auth.CanAccessCustomer(caller, req.CustomerID) {
		return nil, apperr.Forbidden("You can only place orders for your own account")
	}

	exists, err := s.store.CustomerExists(req.CustomerID)
	if err != nil {
		return nil, apperr.Persistence(err, "failed to look up customer")
	}
	if !exists {
		return nil, apperr.Validation("Customer with ID %d does not exist", req.CustomerID)
	}

	items, total, err := s.validateItems(req.Items)
	if err != nil {
		return nil, err
	}

	if req.PaymentMethod == "" {
		return nil, apperr.Validation("Payment method is required")
	}
	if req.ShippingAddress == "" {
		return nil, apperr.Validation("Shipping address is required")
	}
	if req.CarrierName == "" {
		return nil, apperr.Validation("Carrier name is required")
	}

	status := models.OrderPending
	if req.OrderStatus != nil && req.OrderStatus.Valid() {
		status = *req.OrderStatus
	}

	now := time.Now().UTC()
	estimatedDelivery := now.AddDate(0, 0, 7)
	if req.EstimatedDeliveryDate != nil {
		estimatedDelivery = *req.EstimatedDeliveryDate
	}

	result := &PlacedOrder{}
	err = s.store.Transaction(func(tx storage.Store) error {
		order := models.Order{
			CustomerID:  req.CustomerID,
			OrderDate:   now,
			TotalAmount: total,
			Status:      status,
		}
		if err := tx.CreateOrder(&order); err != nil {
			return err
		}

		orderItems := make([]models.OrderItem, 0, len(items))
		for _, it := range items {
			orderItems = append(orderItems, models.OrderItem{
				OrderID:         order.ID,
				ProductID:       it.productID,
				Quantity:        it.quantity,
				Price:           it.price,
				TotalItemsPrice: it.lineTotal,
			})
		}
		if err := tx.CreateOrderItems(orderItems); err != nil {
			return err
		}

		payment := models.Payment{
			OrderID:         order.ID,
			Amount:          total,
			Method:          req.PaymentMethod,
			TransactionDate: now,
		}
		if err := tx.CreatePayment(&payment); err != nil {
			return err
		}

		shipping := models.Shipping{
			OrderID:               order.ID,
			CarrierName:           req.CarrierName,
			TrackingNumber:        GenerateTrackingNumber(),
			Status:                models.ShippingProcessing,
			EstimatedDeliveryDate: estimatedDelivery,
		}
		if err := tx.CreateShipping(&shipping); err != nil {
			return err
		}

		for _, it := range items {
			if err := tx.DecrementStock(it.productID, it.quantity); err != nil {
				if errors.Is(err, storage.ErrInsufficientStock) {
					// A concurrent order won the race since validation.
					return s.insufficientStock(tx, it.productID, it.quantity)
				}
				return err
			}
		}

		result.Order = order
		result.OrderItems = orderItems
		result.Payment = payment
		result.Shipping = shipping
		return nil
	})
	if err != nil {
		switch apperr.KindOf(err) {
		case apperr.KindValidation, apperr.KindNotFound, apperr.KindForbidden:
			return nil, err
		default:
			return nil, apperr.Persistence(err, "failed to create order")
		}
	}

	result.Success = true
	result.Message = "Order created successfully"

	evt := events.OrderPlacedEvent{
		OrderID:     result.Order.ID,
		CustomerID:  result.Order.CustomerID,
		TotalAmount: result.Order.TotalAmount,
		ItemCount:   len(result.OrderItems),
	}
	if err := s.events.PublishOrderPlaced(evt); err != nil {
		log.Printf("failed to publish order-placed event for order %d: %v", result.Order.ID, err)
	}

	return result, nil
}

func (s *Service) validateItems(items []ItemRequest) ([]validatedItem, float64, error) {
	if len(items) == 0 {
		return nil, 0, apperr.Validation("Order must contain at least one item")
	}

	validated := make([]validatedItem, 0, len(items))
	var total float64
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, 0, apperr.Validation("Invalid quantity for product %d", item.ProductID)
		}
		product, err := s.store.FindProduct(item.ProductID)
		if err != nil {
			if storage.IsNotFound(err) {
				return nil, 0, apperr.Validation("Product with ID %d does not exist", item.ProductID)
			}
			return nil, 0, apperr.Persistence(err, "failed to look up product %d", item.ProductID)
		}
		if product.Stock < item.Quantity {
			return nil, 0, &apperr.InsufficientStockError{
				Product:   product.Name,
				Available: product.Stock,
				Requested: item.Quantity,
			}
		}
		lineTotal := product.Price * float64(item.Quantity)
		total += lineTotal
		validated = append(validated, validatedItem{
			productID: item.ProductID,
			quantity:  item.Quantity,
			price:     product.Price,
			lineTotal: lineTotal,
		})
	}
	return validated, total, nil
}

func (s *Service) insufficientStock(tx storage.Store, productID uint, requested int) error {
	product, err := tx.FindProduct(productID)
	if err != nil {
		return apperr.Persistence(err, "failed to look up product %d", productID)
	}
	return &apperr.InsufficientStockError{
		Product:   product.Name,
		Available: product.Stock,
		Requested: requested,
	}
}
