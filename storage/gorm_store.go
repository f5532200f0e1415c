package storage

import (
	"gorm.io/gorm"

	"github.com/onlinestore/backend/models"
)

// GormStore implements Store against a *gorm.DB.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Transaction(fn func(tx Store) error) error {
	return s.db.Transaction(func(txdb *gorm.DB) error {
		return fn(&GormStore{db: txdb})
	})
}

// ---- Customers ----

func (s *GormStore) ListCustomers() ([]models.Customer, error) {
	var customers []models.Customer
	err := s.db.Find(&customers).Error
	return customers, err
}

func (s *GormStore) FindCustomer(id uint) (*models.Customer, error) {
	var c models.Customer
	if err := s.db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *GormStore) FindCustomerByUsername(username string) (*models.Customer, error) {
	var c models.Customer
	if err := s.db.Where("username = ?", username).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *GormStore) CustomerExists(id uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Customer{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (s *GormStore) CreateCustomer(c *models.Customer) error { return s.db.Create(c).Error }
func (s *GormStore) SaveCustomer(c *models.Customer) error   { return s.db.Save(c).Error }

func (s *GormStore) DeleteCustomer(id uint) error {
	return s.db.Delete(&models.Customer{}, id).Error
}

// ---- Categories ----

func (s *GormStore) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	err := s.db.Find(&categories).Error
	return categories, err
}

func (s *GormStore) FindCategory(id uint) (*models.Category, error) {
	var c models.Category
	if err := s.db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *GormStore) CreateCategory(c *models.Category) error { return s.db.Create(c).Error }
func (s *GormStore) SaveCategory(c *models.Category) error   { return s.db.Save(c).Error }

func (s *GormStore) DeleteCategory(id uint) error {
	return s.db.Delete(&models.Category{}, id).Error
}

// ---- Products ----

func (s *GormStore) ListProducts() ([]models.Product, error) {
	var products []models.Product
	err := s.db.Find(&products).Error
	return products, err
}

func (s *GormStore) FindProduct(id uint) (*models.Product, error) {
	var p models.Product
	if err := s.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *GormStore) CreateProduct(p *models.Product) error { return s.db.Create(p).Error }
func (s *GormStore) SaveProduct(p *models.Product) error   { return s.db.Save(p).Error }

func (s *GormStore) DeleteProduct(id uint) error {
	return s.db.Delete(&models.Product{}, id).Error
}

func (s *GormStore) ProductExists(id uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Product{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (s *GormStore) CheckAvailable(productID uint, quantity int) (bool, error) {
	p, err := s.FindProduct(productID)
	if err != nil {
		return false, err
	}
	return p.Stock >= quantity, nil
}

// DecrementStock is a single conditional update so concurrent orders for the
// same product cannot drive stock negative. Zero rows affected means another
// order won the race or stock was never sufficient.
func (s *GormStore) DecrementStock(productID uint, quantity int) error {
	res := s.db.Model(&models.Product{}).
		Where("id = ? AND stock >= ?", productID, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientStock
	}
	return nil
}

// ---- Images ----

func (s *GormStore) CreateImage(img *models.Image) error { return s.db.Create(img).Error }

func (s *GormStore) FindImage(id uint) (*models.Image, error) {
	var img models.Image
	if err := s.db.First(&img, id).Error; err != nil {
		return nil, err
	}
	return &img, nil
}

func (s *GormStore) ImagesByProduct(productID uint) ([]models.Image, error) {
	var images []models.Image
	err := s.db.Where("product_id = ?", productID).Order("image_order").Find(&images).Error
	return images, err
}

func (s *GormStore) DeleteImage(id uint) error {
	return s.db.Delete(&models.Image{}, id).Error
}

// ---- Orders ----

func (s *GormStore) ListOrders() ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Find(&orders).Error
	return orders, err
}

func (s *GormStore) FindOrder(id uint) (*models.Order, error) {
	var o models.Order
	if err := s.db.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *GormStore) OrdersByCustomer(customerID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Where("customer_id = ?", customerID).Find(&orders).Error
	return orders, err
}

func (s *GormStore) OrderExists(id uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Order{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (s *GormStore) CreateOrder(o *models.Order) error { return s.db.Create(o).Error }
func (s *GormStore) SaveOrder(o *models.Order) error   { return s.db.Save(o).Error }

func (s *GormStore) DeleteOrder(id uint) error {
	return s.db.Delete(&models.Order{}, id).Error
}

// ---- Order items ----

func (s *GormStore) CreateOrderItems(items []models.OrderItem) error {
	return s.db.Create(&items).Error
}

func (s *GormStore) ItemsByOrder(orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := s.db.Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

// ---- Payments ----

func (s *GormStore) ListPayments() ([]models.Payment, error) {
	var payments []models.Payment
	err := s.db.Find(&payments).Error
	return payments, err
}

func (s *GormStore) CreatePayment(p *models.Payment) error { return s.db.Create(p).Error }

func (s *GormStore) PaymentByOrder(orderID uint) (*models.Payment, error) {
	var p models.Payment
	if err := s.db.Where("order_id = ?", orderID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ---- Shippings ----

func (s *GormStore) ListShippings() ([]models.Shipping, error) {
	var shippings []models.Shipping
	err := s.db.Find(&shippings).Error
	return shippings, err
}

func (s *GormStore) FindShipping(id uint) (*models.Shipping, error) {
	var sh models.Shipping
	if err := s.db.First(&sh, id).Error; err != nil {
		return nil, err
	}
	return &sh, nil
}

func (s *GormStore) CreateShipping(sh *models.Shipping) error { return s.db.Create(sh).Error }
func (s *GormStore) SaveShipping(sh *models.Shipping) error   { return s.db.Save(sh).Error }

func (s *GormStore) ShippingByOrder(orderID uint) (*models.Shipping, error) {
	var sh models.Shipping
	if err := s.db.Where("order_id = ?", orderID).First(&sh).Error; err != nil {
		return nil, err
	}
	return &sh, nil
}

// ---- Reviews ----

func (s *GormStore) CreateReview(r *models.Review) error { return s.db.Create(r).Error }

func (s *GormStore) ReviewsByProduct(productID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.Where("product_id = ?", productID).Find(&reviews).Error
	return reviews, err
}

// ---- Stats ----

func (s *GormStore) Stats() (*DashboardStats, error) {
	var stats DashboardStats
	if err := s.db.Model(&models.Customer{}).Count(&stats.TotalCustomers).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Order{}).Where("status = ?", models.OrderPending).Count(&stats.PendingOrders).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Order{}).Where("status = ?", models.OrderCancelled).Count(&stats.CancelledOrders).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Order{}).Where("status = ?", models.OrderCompleted).Count(&stats.CompletedOrders).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Order{}).Select("COALESCE(SUM(total_amount), 0)").Scan(&stats.TotalRevenue).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}
