package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onlinestore/backend/models"
	"github.com/onlinestore/backend/storage"
)

func TestProductCRUD(t *testing.T) {
	r, store, tokens := newTestRouter(t)
	admin := seedAccount(t, store, "boss", models.RoleAdmin)
	adminToken := tokenFor(t, tokens, admin)

	w := doJSON(t, r, "POST", "/products", adminToken, gin.H{
		"productName": "Bread", "price": 3.5, "quantityInStock": 10,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Bread", created.Name)

	// Catalog reads are public.
	w = doJSON(t, r, "GET", "/products", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, "GET", fmt.Sprintf("/products/%d", created.ID), "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, "PUT", fmt.Sprintf("/products/%d", created.ID), adminToken, gin.H{
		"productName": "Sourdough", "price": 4.5, "quantityInStock": 8,
	})
	require.Equal(t, http.StatusOK, w.Code)
	updated, err := store.FindProduct(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sourdough", updated.Name)
	assert.Equal(t, 8, updated.Stock)

	w = doJSON(t, r, "DELETE", fmt.Sprintf("/products/%d", created.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	_, err = store.FindProduct(created.ID)
	assert.True(t, storage.IsNotFound(err))
}

func TestProductValidationAndGating(t *testing.T) {
	r, store, tokens := newTestRouter(t)
	admin := seedAccount(t, store, "boss", models.RoleAdmin)
	customer := seedAccount(t, store, "junejun", models.RoleCustomer)

	w := doJSON(t, r, "POST", "/products", tokenFor(t, tokens, admin), gin.H{
		"productName": "", "price": -1.0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, "POST", "/products", tokenFor(t, tokens, customer), gin.H{
		"productName": "Bread", "price": 3.5, "quantityInStock": 10,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, "GET", "/products/999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(t, r, "GET", "/products/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductExistsEndpoint(t *testing.T) {
	r, store, _ := newTestRouter(t)
	product := seedCatalogProduct(t, store, "Bread", 3.5, 10)

	w := doJSON(t, r, "GET", fmt.Sprintf("/products/exists/%d", product.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "true", w.Body.String())

	w = doJSON(t, r, "GET", "/products/exists/999", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "false", w.Body.String())
}

func TestProductImages(t *testing.T) {
	r, store, tokens := newTestRouter(t)
	admin := seedAccount(t, store, "boss", models.RoleAdmin)
	customer := seedAccount(t, store, "junejun", models.RoleCustomer)
	product := seedCatalogProduct(t, store, "Lamp", 30.0, 2)
	adminToken := tokenFor(t, tokens, admin)

	w := doJSON(t, r, "POST", "/images", adminToken, gin.H{
		"productID": product.ID, "imageURL": "https://img.example.com/b.jpg", "imageOrder": 2,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = doJSON(t, r, "POST", "/images", adminToken, gin.H{
		"productID": product.ID, "imageURL": "https://img.example.com/a.jpg", "imageOrder": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Gallery reads are public and sorted by display order.
	w = doJSON(t, r, "GET", fmt.Sprintf("/products/%d/images", product.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var images []models.Image
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &images))
	require.Len(t, images, 2)
	assert.Equal(t, "https://img.example.com/a.jpg", images[0].ImageURL)
	assert.Equal(t, "https://img.example.com/b.jpg", images[1].ImageURL)

	w = doJSON(t, r, "POST", "/images", adminToken, gin.H{"productID": product.ID, "imageURL": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = doJSON(t, r, "POST", "/images", adminToken, gin.H{"productID": product.ID + 100, "imageURL": "https://img.example.com/x.jpg"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = doJSON(t, r, "POST", "/images", tokenFor(t, tokens, customer), gin.H{
		"productID": product.ID, "imageURL": "https://img.example.com/c.jpg",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = doJSON(t, r, "GET", "/products/999/images", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, "DELETE", fmt.Sprintf("/images/%d", images[0].ID), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	remaining, err := store.ImagesByProduct(product.ID)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)

	w = doJSON(t, r, "DELETE", "/images/999", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCategoryCRUD(t *testing.T) {
	r, store, tokens := newTestRouter(t)
	admin := seedAccount(t, store, "boss", models.RoleAdmin)
	adminToken := tokenFor(t, tokens, admin)

	w := doJSON(t, r, "POST", "/categories", adminToken, gin.H{"categoryName": "Bakery"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, "GET", "/categories", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Bakery", list[0].Name)

	w = doJSON(t, r, "PUT", fmt.Sprintf("/categories/%d", created.ID), adminToken, gin.H{
		"categoryName": "Pastry", "description": "Flaky things",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, "DELETE", fmt.Sprintf("/categories/%d", created.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	_, err := store.FindCategory(created.ID)
	assert.True(t, storage.IsNotFound(err))
}

func TestCustomerProfileAccess(t *testing.T) {
	r, store, tokens := newTestRouter(t)
	customer := seedAccount(t, store, "junejun", models.RoleCustomer)
	other := seedAccount(t, store, "mallory", models.RoleCustomer)
	admin := seedAccount(t, store, "boss", models.RoleAdmin)

	path := fmt.Sprintf("/customers/%d", customer.ID)

	w := doJSON(t, r, "GET", path, tokenFor(t, tokens, customer), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, "GET", path, tokenFor(t, tokens, other), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Self-update cannot escalate role.
	w = doJSON(t, r, "PUT", path, tokenFor(t, tokens, customer), gin.H{
		"name": "June J", "email": "june@example.com", "role": models.RoleAdmin,
	})
	require.Equal(t, http.StatusOK, w.Code)
	updated, err := store.FindCustomer(customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "June J", updated.Name)
	assert.Equal(t, models.RoleCustomer, updated.Role)

	// Admin may change roles and list everyone.
	w = doJSON(t, r, "PUT", path, tokenFor(t, tokens, admin), gin.H{
		"name": "June J", "email": "june@example.com", "role": models.RoleAdmin,
	})
	require.Equal(t, http.StatusOK, w.Code)
	updated, err = store.FindCustomer(customer.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, updated.Role)

	w = doJSON(t, r, "GET", "/customers", tokenFor(t, tokens, admin), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, "GET", "/customers", tokenFor(t, tokens, other), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestReviews(t *testing.T) {
	r, store, tokens := newTestRouter(t)
	customer := seedAccount(t, store, "junejun", models.RoleCustomer)
	product := seedCatalogProduct(t, store, "Coffee", 10.0, 5)
	token := tokenFor(t, tokens, customer)

	w := doJSON(t, r, "POST", "/reviews", token, gin.H{
		"productID": product.ID, "customerID": customer.ID, "rating": 5, "reviewText": "Great",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, "POST", "/reviews", token, gin.H{
		"productID": product.ID, "customerID": customer.ID, "rating": 6,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, "POST", "/reviews", token, gin.H{
		"productID": product.ID, "customerID": customer.ID + 1, "rating": 4,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, "GET", fmt.Sprintf("/products/%d/reviews", product.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var reviews []models.Review
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reviews))
	require.Len(t, reviews, 1)
	assert.Equal(t, 5, reviews[0].Rating)
}

func TestShippingAdminUpdate(t *testing.T) {
	r, store, tokens := newTestRouter(t)
	customer := seedAccount(t, store, "junejun", models.RoleCustomer)
	admin := seedAccount(t, store, "boss", models.RoleAdmin)
	order := &models.Order{CustomerID: customer.ID, TotalAmount: 10, Status: models.OrderShipped}
	require.NoError(t, store.CreateOrder(order))
	shipping := &models.Shipping{OrderID: order.ID, CarrierName: "FedEx", TrackingNumber: "TRACK-20260831-123456", Status: models.ShippingProcessing}
	require.NoError(t, store.CreateShipping(shipping))

	w := doJSON(t, r, "PUT", fmt.Sprintf("/shippings/%d", shipping.ID), tokenFor(t, tokens, admin), gin.H{
		"shippingStatus": models.ShippingOutForDelivery,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated, err := store.FindShipping(shipping.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ShippingOutForDelivery, updated.Status)

	w = doJSON(t, r, "PUT", fmt.Sprintf("/shippings/%d", shipping.ID), tokenFor(t, tokens, admin), gin.H{
		"shippingStatus": 99,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, "PUT", fmt.Sprintf("/shippings/%d", shipping.ID), tokenFor(t, tokens, customer), gin.H{
		"shippingStatus": models.ShippingDelivered,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}
