// Package storage is the persistence layer. Store is the port the rest of
// the application depends on; GormStore is the gorm-backed adapter.
package storage

import (
	"errors"

	"gorm.io/gorm"

	"github.com/onlinestore/backend/models"
)

// ErrInsufficientStock is returned by DecrementStock when the conditional
// update matched no rows, i.e. the product no longer has enough stock.
var ErrInsufficientStock = errors.New("insufficient stock")

type DashboardStats struct {
	TotalCustomers  int64   `json:"totalCustomers"`
	TotalProducts   int64   `json:"totalProducts"`
	TotalOrders     int64   `json:"totalOrders"`
	PendingOrders   int64   `json:"pendingOrders"`
	CancelledOrders int64   `json:"cancelledOrders"`
	CompletedOrders int64   `json:"completedOrders"`
	TotalRevenue    float64 `json:"totalRevenue"`
}

type Store interface {
	// Customers
	ListCustomers() ([]models.Customer, error)
	FindCustomer(id uint) (*models.Customer, error)
	FindCustomerByUsername(username string) (*models.Customer, error)
	CustomerExists(id uint) (bool, error)
	CreateCustomer(c *models.Customer) error
	SaveCustomer(c *models.Customer) error
	DeleteCustomer(id uint) error

	// Categories
	ListCategories() ([]models.Category, error)
	FindCategory(id uint) (*models.Category, error)
	CreateCategory(c *models.Category) error
	SaveCategory(c *models.Category) error
	DeleteCategory(id uint) error

	// Products
	ListProducts() ([]models.Product, error)
	FindProduct(id uint) (*models.Product, error)
	CreateProduct(p *models.Product) error
	SaveProduct(p *models.Product) error
	DeleteProduct(id uint) error
	ProductExists(id uint) (bool, error)
	CheckAvailable(productID uint, quantity int) (bool, error)
	DecrementStock(productID uint, quantity int) error

	// Images
	CreateImage(img *models.Image) error
	FindImage(id uint) (*models.Image, error)
	ImagesByProduct(productID uint) ([]models.Image, error)
	DeleteImage(id uint) error

	// Orders
	ListOrders() ([]models.Order, error)
	FindOrder(id uint) (*models.Order, error)
	OrdersByCustomer(customerID uint) ([]models.Order, error)
	OrderExists(id uint) (bool, error)
	CreateOrder(o *models.Order) error
	SaveOrder(o *models.Order) error
	DeleteOrder(id uint) error

	// Order items
	CreateOrderItems(items []models.OrderItem) error
	ItemsByOrder(orderID uint) ([]models.OrderItem, error)

	// Payments
	ListPayments() ([]models.Payment, error)
	CreatePayment(p *models.Payment) error
	PaymentByOrder(orderID uint) (*models.Payment, error)

	// Shippings
	ListShippings() ([]models.Shipping, error)
	FindShipping(id uint) (*models.Shipping, error)
	CreateShipping(s *models.Shipping) error
	SaveShipping(s *models.Shipping) error
	ShippingByOrder(orderID uint) (*models.Shipping, error)

	// Reviews
	CreateReview(r *models.Review) error
	ReviewsByProduct(productID uint) ([]models.Review, error)

	Stats() (*DashboardStats, error)

	// Transaction runs fn against a Store bound to a database transaction.
	// An error from fn rolls everything back.
	Transaction(fn func(tx Store) error) error
}

// IsNotFound reports whether err means the requested row does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsDuplicate reports whether err is a unique-constraint violation. Requires
// the gorm connection to be opened with TranslateError enabled.
func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// AutoMigrate creates or updates the schema for every entity.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Customer{},
		&models.Category{},
		&models.Product{},
		&models.Image{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.Shipping{},
		&models.Review{},
	)
}
