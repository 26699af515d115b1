package main

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/food-order-app/cart"
	"github.com/yeremiapane/food-order-app/database"
	"github.com/yeremiapane/food-order-app/models"
	"github.com/yeremiapane/food-order-app/router"
	"github.com/yeremiapane/food-order-app/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

// TestEndToEndIntegration menguji flow utama:
// 1. Register & login -> token
// 2. Browse restaurants & menu
// 3. Add item A dua kali, item B sekali
// 4. Cek cart (total 500)
// 5. Place order -> cart kosong, order tersimpan
// 6. Cek riwayat order
// 7. Logout -> token tidak bisa dipakai lagi
func TestEndToEndIntegration(t *testing.T) {
	db := setupIntegrationDB()
	utils.InitDB(db)

	gin.SetMode(gin.TestMode)
	carts := cart.NewStore()
	r := router.SetupRouter(db, carts)

	registerTest(t, r)
	token := loginTest(t, r)

	menuItems := browseMenuTest(t, r, token)

	// Item A (Chicken Biryani, 150) dua kali, item B (Margherita Pizza, 200) sekali
	addToCartTest(t, r, token, menuItems["Chicken Biryani"])
	addToCartTest(t, r, token, menuItems["Chicken Biryani"])
	addToCartTest(t, r, token, menuItems["Margherita Pizza"])

	checkCartTest(t, r, token)
	orderID := placeOrderTest(t, r, token)
	checkOrderHistoryTest(t, r, token, orderID)
	logoutTest(t, r, token)
}

// setupIntegrationDB -> migrasi model di SQLite in-memory + seed data
func setupIntegrationDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to open in-memory sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	if err := database.Seed(db); err != nil {
		log.Fatalf("failed to seed: %v", err)
	}
	return db
}

func doRequest(t *testing.T, r *gin.Engine, method, url, token string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		b, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewBuffer(b)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, body)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func parseData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, _ := resp["data"].(map[string]interface{})
	return data
}

func registerTest(t *testing.T, r *gin.Engine) {
	w := doRequest(t, r, "POST", "/register", "", map[string]string{
		"name":     "Integration User",
		"email":    "integration@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func loginTest(t *testing.T, r *gin.Engine) string {
	w := doRequest(t, r, "POST", "/login", "", map[string]string{
		"email":    "integration@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	data := parseData(t, w)
	token, ok := data["token"].(string)
	assert.True(t, ok)
	assert.NotEmpty(t, token)
	return token
}

// browseMenuTest -> restoran butuh login, lalu ambil menu restoran pertama
func browseMenuTest(t *testing.T, r *gin.Engine, token string) map[string]map[string]interface{} {
	// Tanpa token harus ditolak
	w := doRequest(t, r, "GET", "/restaurants", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, r, "GET", "/restaurants", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Menu dari kedua restoran seed
	items := make(map[string]map[string]interface{})
	for _, id := range []string{"1", "2"} {
		w = doRequest(t, r, "GET", "/restaurants/"+id+"/menu", token, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		data := parseData(t, w)
		for _, raw := range data["items"].([]interface{}) {
			item := raw.(map[string]interface{})
			items[item["name"].(string)] = item
		}
	}

	assert.Contains(t, items, "Chicken Biryani")
	assert.Contains(t, items, "Margherita Pizza")
	return items
}

func addToCartTest(t *testing.T, r *gin.Engine, token string, menuItem map[string]interface{}) {
	w := doRequest(t, r, "POST", "/cart/items", token, map[string]interface{}{
		"item_id": menuItem["id"],
		"name":    menuItem["name"],
		"price":   menuItem["price"],
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func checkCartTest(t *testing.T, r *gin.Engine, token string) {
	w := doRequest(t, r, "GET", "/cart", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	data := parseData(t, w)
	items := data["items"].([]interface{})
	assert.Len(t, items, 2)

	first := items[0].(map[string]interface{})
	assert.Equal(t, float64(2), first["quantity"])
	second := items[1].(map[string]interface{})
	assert.Equal(t, float64(1), second["quantity"])

	assert.Equal(t, "500", data["total"])
}

func placeOrderTest(t *testing.T, r *gin.Engine, token string) float64 {
	w := doRequest(t, r, "POST", "/orders", token, nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	data := parseData(t, w)
	orderID, ok := data["order_id"].(float64)
	assert.True(t, ok)
	assert.NotZero(t, orderID)

	// Cart kosong setelah checkout
	w = doRequest(t, r, "GET", "/cart", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	cartData := parseData(t, w)
	assert.Len(t, cartData["items"], 0)
	assert.Equal(t, "0", cartData["total"])

	// Checkout kedua dengan cart kosong -> EmptyCart, tidak ada order baru
	w = doRequest(t, r, "POST", "/orders", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	return orderID
}

func checkOrderHistoryTest(t *testing.T, r *gin.Engine, token string, orderID float64) {
	w := doRequest(t, r, "GET", "/orders", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	orders := resp["data"].([]interface{})
	assert.Len(t, orders, 1)

	order := orders[0].(map[string]interface{})
	assert.Equal(t, orderID, order["id"])
	assert.Equal(t, "500", order["total_amount"])

	orderItems := order["order_items"].([]interface{})
	assert.Len(t, orderItems, 2)
	first := orderItems[0].(map[string]interface{})
	assert.Equal(t, float64(2), first["quantity"])
	assert.Equal(t, "150", first["price"])
	second := orderItems[1].(map[string]interface{})
	assert.Equal(t, float64(1), second["quantity"])
	assert.Equal(t, "200", second["price"])
}

func logoutTest(t *testing.T, r *gin.Engine, token string) {
	w := doRequest(t, r, "POST", "/logout", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Token yang sudah di-blacklist tidak bisa dipakai lagi
	w = doRequest(t, r, "GET", "/profile", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
