package paymentControllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/websocket"
	"github.com/sheep-june/react-node-shop/models"
	"github.com/sheep-june/react-node-shop/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.HistoryEntry{},
		&models.Payment{},
		&models.PaymentItem{},
	))

	r := gin.New()
	routes.SetupRoutes(r, db, t.TempDir())
	return r, db
}

func signToken(t *testing.T, userID uint) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func checkout(t *testing.T, r *gin.Engine, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/users/payment", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCheckoutRecordsHistoryPaymentAndSoldCounts(t *testing.T) {
	r, db := setupTest(t)

	user := models.User{Email: "buyer@example.com", Password: "x", Name: "Buyer"}
	require.NoError(t, db.Create(&user).Error)
	token := signToken(t, user.ID)

	boots := models.Product{Title: "Boots", Price: 30, Sold: 0, WriterID: user.ID}
	hat := models.Product{Title: "Hat", Price: 10, Sold: 3, WriterID: user.ID}
	require.NoError(t, db.Create(&boots).Error)
	require.NoError(t, db.Create(&hat).Error)

	require.NoError(t, db.Create(&models.CartItem{UserID: user.ID, ProductID: boots.ID, Quantity: 2, AddedAt: time.Now()}).Error)
	require.NoError(t, db.Create(&models.CartItem{UserID: user.ID, ProductID: hat.ID, Quantity: 1, AddedAt: time.Now()}).Error)

	lines := []gin.H{
		{"id": boots.ID, "name": boots.Title, "price": boots.Price, "quantity": 2},
		{"id": hat.ID, "name": hat.Title, "price": hat.Price, "quantity": 1},
	}
	w := checkout(t, r, token, lines)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Two history entries, each with its own payment-line identifier
	var history []models.HistoryEntry
	require.NoError(t, db.Where("user_id = ?", user.ID).Order("id").Find(&history).Error)
	require.Len(t, history, 2)
	assert.NotEmpty(t, history[0].PaymentID)
	assert.NotEmpty(t, history[1].PaymentID)
	assert.Equal(t, boots.ID, history[0].ProductID)
	assert.Equal(t, 2, history[0].Quantity)

	// One payment record with two line items snapshotting the buyer
	var payments []models.Payment
	require.NoError(t, db.Preload("Items").Find(&payments).Error)
	require.Len(t, payments, 1)
	assert.Equal(t, user.Email, payments[0].UserEmail)
	assert.Len(t, payments[0].Items, 2)

	// Sold counters incremented by each line's quantity
	var gotBoots, gotHat models.Product
	require.NoError(t, db.First(&gotBoots, boots.ID).Error)
	require.NoError(t, db.First(&gotHat, hat.ID).Error)
	assert.Equal(t, 2, gotBoots.Sold)
	assert.Equal(t, 4, gotHat.Sold)

	// Cart cleared in the same transaction
	var cartCount int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&cartCount).Error)
	assert.Equal(t, int64(0), cartCount)
}

func TestCheckoutWithNoItemsRejected(t *testing.T) {
	r, db := setupTest(t)

	user := models.User{Email: "buyer@example.com", Password: "x", Name: "Buyer"}
	require.NoError(t, db.Create(&user).Error)
	token := signToken(t, user.ID)

	w := checkout(t, r, token, []gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutBroadcastsPaymentOverWebSocket(t *testing.T) {
	r, db := setupTest(t)
	t.Setenv("ADMIN_API_KEY", "admin-key")

	user := models.User{Email: "buyer@example.com", Password: "x", Name: "Buyer"}
	require.NoError(t, db.Create(&user).Error)
	token := signToken(t, user.ID)

	boots := models.Product{Title: "Boots", Price: 30, WriterID: user.ID}
	require.NoError(t, db.Create(&boots).Error)

	srv := httptest.NewServer(r)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/admin/payments/ws"
	header := http.Header{"X-API-KEY": []string{"admin-key"}}
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, header)
	require.NoError(t, err)
	defer conn.Close()

	// give the server side a moment to register the connection
	time.Sleep(50 * time.Millisecond)

	lines := []gin.H{{"id": boots.ID, "name": boots.Title, "price": boots.Price, "quantity": 1}}
	w := checkout(t, r, token, lines)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var payment models.Payment
	require.NoError(t, json.Unmarshal(data, &payment))
	assert.Equal(t, user.Email, payment.UserEmail)
	require.Len(t, payment.Items, 1)
	assert.Equal(t, boots.ID, payment.Items[0].ProductID)
}

func TestCheckoutRequiresToken(t *testing.T) {
	r, _ := setupTest(t)

	req := httptest.NewRequest(http.MethodPost, "/users/payment", bytes.NewReader([]byte("[]")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
