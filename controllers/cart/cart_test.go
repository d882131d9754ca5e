package cartControllers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retailgate/storefront-api/cart"
	cartControllers "github.com/retailgate/storefront-api/controllers/cart"
)

func newRouter(carts *cart.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	fakeAuth := func(c *gin.Context) { c.Set("user_id", "u1") }
	r.GET("/user/cart", fakeAuth, cartControllers.GetUserCart(carts))
	r.DELETE("/user/cart/:product_id", fakeAuth, cartControllers.RemoveCartItem(carts))
	r.DELETE("/user/cart", fakeAuth, cartControllers.ClearUserCart(carts))
	// No fake auth on add, to exercise the unauthorized branch.
	r.POST("/user/cart", cartControllers.AddCartItem(nil, carts))
	return r
}

func TestGetCartReturnsSnapshot(t *testing.T) {
	carts := cart.NewStore()
	carts.Add("u1", cart.Product{ID: "p1", Name: "Widget", Price: 10}, 2)
	r := newRouter(carts)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/user/cart", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"subtotal":20`)
	assert.Contains(t, w.Body.String(), `"product_id":"p1"`)
}

func TestRemoveCartItem(t *testing.T) {
	carts := cart.NewStore()
	carts.Add("u1", cart.Product{ID: "p1", Name: "Widget", Price: 10}, 2)
	r := newRouter(carts)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/user/cart/p1", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, carts.Get("u1").Items)

	// Removing again is a no-op, not an error.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/user/cart/p1", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestClearCart(t *testing.T) {
	carts := cart.NewStore()
	carts.Add("u1", cart.Product{ID: "p1", Name: "Widget", Price: 10}, 2)
	r := newRouter(carts)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/user/cart", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, carts.Get("u1").Items)
}

func TestAddCartItemUnauthorized(t *testing.T) {
	r := newRouter(cart.NewStore())

	req := httptest.NewRequest(http.MethodPost, "/user/cart", strings.NewReader(`{"product_id":"p1","quantity":1}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCartInputBindsZeroAndNegativeQuantity(t *testing.T) {
	// Zero and negative quantities are valid adjustments, not validation
	// errors.
	for _, body := range []string{
		`{"product_id":"p1","quantity":0}`,
		`{"product_id":"p1","quantity":-2}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/user/cart", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		var input cartControllers.CartItemInput
		require.NoError(t, binding.JSON.Bind(req, &input), "body %s must bind", body)
	}

	req := httptest.NewRequest(http.MethodPost, "/user/cart", strings.NewReader(`{"quantity":1}`))
	req.Header.Set("Content-Type", "application/json")
	var input cartControllers.CartItemInput
	assert.Error(t, binding.JSON.Bind(req, &input), "product_id stays required")
}

func TestCartHandlersRejectNonStringUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	carts := cart.NewStore()
	r := gin.New()
	badAuth := func(c *gin.Context) { c.Set("user_id", 42) }
	r.GET("/user/cart", badAuth, cartControllers.GetUserCart(carts))
	r.DELETE("/user/cart/:product_id", badAuth, cartControllers.RemoveCartItem(carts))
	r.DELETE("/user/cart", badAuth, cartControllers.ClearUserCart(carts))
	r.POST("/user/cart", badAuth, cartControllers.AddCartItem(nil, carts))

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/user/cart", nil),
		httptest.NewRequest(http.MethodDelete, "/user/cart/p1", nil),
		httptest.NewRequest(http.MethodDelete, "/user/cart", nil),
		httptest.NewRequest(http.MethodPost, "/user/cart", strings.NewReader(`{"product_id":"p1"}`)),
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", req.Method, req.URL.Path)
	}
}
