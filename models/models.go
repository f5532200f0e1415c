package models

import "time"

// OrderStatus values match the numeric codes stored in the orders table.
type OrderStatus int16

const (
	OrderPending    OrderStatus = 1
	OrderProcessing OrderStatus = 2
	OrderShipped    OrderStatus = 3
	OrderDelivered  OrderStatus = 4
	OrderCancelled  OrderStatus = 5
	OrderCompleted  OrderStatus = 6
)

func (s OrderStatus) Valid() bool {
	return s >= OrderPending && s <= OrderCompleted
}

// Terminal reports whether no further customer action is possible.
func (s OrderStatus) Terminal() bool {
	return s == OrderCancelled || s == OrderDelivered || s == OrderCompleted
}

func (s OrderStatus) String() string {
	switch s {
	case OrderPending:
		return "Pending"
	case OrderProcessing:
		return "Processing"
	case OrderShipped:
		return "Shipped"
	case OrderDelivered:
		return "Delivered"
	case OrderCancelled:
		return "Cancelled"
	case OrderCompleted:
		return "Completed"
	}
	return "Unknown"
}

type ShippingStatus int16

const (
	ShippingProcessing     ShippingStatus = 1
	ShippingOutForDelivery ShippingStatus = 2
	ShippingDelivered      ShippingStatus = 3
	ShippingReturnToSender ShippingStatus = 4
	ShippingOnHold         ShippingStatus = 5
	ShippingDelayed        ShippingStatus = 6
	ShippingLost           ShippingStatus = 7
)

const (
	RoleCustomer = "Customer"
	RoleAdmin    = "Admin"
)

type Customer struct {
	ID       uint   `json:"customerID" gorm:"primaryKey"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Username string `json:"username" gorm:"uniqueIndex"`
	Password string `json:"-"`
	Role     string `json:"role"`
}

type Category struct {
	ID          uint   `json:"categoryID" gorm:"primaryKey"`
	Name        string `json:"categoryName"`
	Description string `json:"description"`
}

type Product struct {
	ID          uint    `json:"productID" gorm:"primaryKey"`
	Name        string  `json:"productName"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"quantityInStock"`
	CategoryID  uint    `json:"categoryID" gorm:"index"`
}

// Image is a product photo. ImageOrder controls the display order in the
// storefront gallery.
type Image struct {
	ID         uint   `json:"imageID" gorm:"primaryKey"`
	ProductID  uint   `json:"productID" gorm:"index"`
	ImageURL   string `json:"imageURL"`
	ImageOrder int    `json:"imageOrder"`
}

type Order struct {
	ID          uint        `json:"orderID" gorm:"primaryKey"`
	CustomerID  uint        `json:"customerID" gorm:"index;not null"`
	OrderDate   time.Time   `json:"orderDate"`
	TotalAmount float64     `json:"totalAmount"`
	Status      OrderStatus `json:"status"`
}

// OrderItem snapshots the unit price at purchase time so later product
// price changes do not alter historical orders.
type OrderItem struct {
	OrderID         uint    `json:"orderID" gorm:"primaryKey"`
	ProductID       uint    `json:"productID" gorm:"primaryKey"`
	Quantity        int     `json:"quantity"`
	Price           float64 `json:"price"`
	TotalItemsPrice float64 `json:"totalItemsPrice"`
}

type Payment struct {
	ID              uint      `json:"paymentID" gorm:"primaryKey"`
	OrderID         uint      `json:"orderID" gorm:"uniqueIndex"`
	Amount          float64   `json:"amount"`
	Method          string    `json:"paymentMethod"`
	TransactionDate time.Time `json:"transactionDate"`
}

type Shipping struct {
	ID                    uint           `json:"shippingID" gorm:"primaryKey"`
	OrderID               uint           `json:"orderID" gorm:"uniqueIndex"`
	CarrierName           string         `json:"carrierName"`
	TrackingNumber        string         `json:"trackingNumber"`
	Status                ShippingStatus `json:"shippingStatus"`
	EstimatedDeliveryDate time.Time      `json:"estimatedDeliveryDate"`
	ActualDeliveryDate    *time.Time     `json:"actualDeliveryDate,omitempty"`
}

type Review struct {
	ID         uint      `json:"reviewID" gorm:"primaryKey"`
	ProductID  uint      `json:"productID" gorm:"index"`
	CustomerID uint      `json:"customerID" gorm:"index"`
	Rating     int       `json:"rating"`
	ReviewText string    `json:"reviewText"`
	ReviewDate time.Time `json:"reviewDate"`
}
