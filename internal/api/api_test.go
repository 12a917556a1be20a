package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/GuimaraesZ/workshop/config"
	"github.com/GuimaraesZ/workshop/internal/auth"
	"github.com/GuimaraesZ/workshop/internal/categories"
	"github.com/GuimaraesZ/workshop/internal/domain"
	"github.com/GuimaraesZ/workshop/internal/orders"
	"github.com/GuimaraesZ/workshop/internal/products"
	"github.com/GuimaraesZ/workshop/internal/users"
	"github.com/GuimaraesZ/workshop/internal/webserver"
)

func newTestServer(t *testing.T) (*webserver.WebServer, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(domain.Tables...))

	cfg := *config.DefaultAppConfig
	cfg.Web.UploadDir = t.TempDir()

	userRepo := users.NewGormRepository(db)
	ws := webserver.NewWebServer(&cfg)
	NewHandlers(&cfg, db,
		users.NewService(userRepo),
		products.NewService(products.NewGormRepository(db)),
		categories.NewService(categories.NewGormRepository(db)),
		orders.NewService(orders.NewGormRepository(db)),
		auth.NewService(userRepo, cfg.Web.Secret),
	).Register(ws)
	return ws, db
}

func doRequest(ws *webserver.WebServer, method, target, body string, header map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echoHeaderContentType, "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	ws.Echo().ServeHTTP(rec, req)
	return rec
}

const echoHeaderContentType = "Content-Type"

func seedClientAndProduct(t *testing.T, db *gorm.DB) (*domain.User, *domain.Product) {
	t.Helper()
	user := &domain.User{Name: "Maria Silva", Email: "maria@example.com", Phone: "11999999999", Password: "x"}
	require.NoError(t, db.Create(user).Error)
	product := &domain.Product{Name: "Book", Price: 10.0}
	require.NoError(t, db.Create(product).Error)
	return user, product
}

func TestCreateOrderRequiresUserHeader(t *testing.T) {
	ws, db := newTestServer(t)
	_, product := seedClientAndProduct(t, db)

	body := fmt.Sprintf(`{"items":[{"product_id":%d,"quantity":1,"price":10.0}]}`, product.ID)
	rec := doRequest(ws, http.MethodPost, "/orders", body, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var errBody webserver.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
	assert.Equal(t, http.StatusUnauthorized, errBody.Status)
	assert.NotEmpty(t, errBody.Message)
}

func TestCreateOrderEndToEnd(t *testing.T) {
	ws, db := newTestServer(t)
	user, product := seedClientAndProduct(t, db)

	body := fmt.Sprintf(`{"items":[{"product_id":%d,"quantity":2,"price":10.0}]}`, product.ID)
	rec := doRequest(ws, http.MethodPost, "/orders", body, map[string]string{
		"X-User-Id": fmt.Sprintf("%d", user.ID),
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("Location"))

	var resp struct {
		ID          int64   `json:"id"`
		OrderNumber string  `json:"order_number"`
		Status      string  `json:"status"`
		Total       float64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "WAITING_PAYMENT", resp.Status)
	assert.Equal(t, 20.0, resp.Total)
	assert.Equal(t, fmt.Sprintf("ORD-%05d", resp.ID), resp.OrderNumber)

	// fetch it back
	rec = doRequest(ws, http.MethodGet, fmt.Sprintf("/orders/%d", resp.ID), "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetUserNotFound(t *testing.T) {
	ws, _ := newTestServer(t)

	rec := doRequest(ws, http.MethodGet, "/users/4242", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var errBody webserver.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
	assert.Equal(t, http.StatusNotFound, errBody.Status)
	assert.Contains(t, errBody.Message, "4242")
}

func TestInvalidIDParam(t *testing.T) {
	ws, _ := newTestServer(t)

	rec := doRequest(ws, http.MethodGet, "/users/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteUserWithOrdersConflicts(t *testing.T) {
	ws, db := newTestServer(t)
	user, product := seedClientAndProduct(t, db)

	body := fmt.Sprintf(`{"items":[{"product_id":%d,"quantity":1,"price":10.0}]}`, product.ID)
	rec := doRequest(ws, http.MethodPost, "/orders", body, map[string]string{
		"X-User-Id": fmt.Sprintf("%d", user.ID),
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(ws, http.MethodDelete, fmt.Sprintf("/users/%d", user.ID), "", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLoginFlow(t *testing.T) {
	ws, _ := newTestServer(t)

	rec := doRequest(ws, http.MethodPost, "/auth/signup",
		`{"name":"Maria Silva","email":"maria@example.com","phone":"11999999999","password":"123456"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doRequest(ws, http.MethodPost, "/auth/login",
		`{"email":"maria@example.com","password":"123456"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)

	rec = doRequest(ws, http.MethodPost, "/auth/login",
		`{"email":"maria@example.com","password":"wrong"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMalformedBodyIsBadRequest(t *testing.T) {
	ws, _ := newTestServer(t)

	rec := doRequest(ws, http.MethodPost, "/auth/login", `{"email":`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
