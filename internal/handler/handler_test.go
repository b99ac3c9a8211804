package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"charm-shop/internal/catalog"
	"charm-shop/internal/database"
	"charm-shop/internal/middleware"
	"charm-shop/internal/models"
	"charm-shop/internal/session"
	"charm-shop/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fixture struct {
	router   *gin.Engine
	db       *gorm.DB
	accounts *store.AccountStore
	cart     *store.CartStore
	sessions *session.Registry
}

// newFixture wires the form routes the way the real router does, minus
// templates and static files, against a private in-memory database.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	cat := catalog.Default()
	sessions := session.NewRegistry()
	accounts := store.NewAccountStore(db, bcrypt.MinCost)
	cart := store.NewCartStore(db, cat)

	r := gin.New()
	r.Use(middleware.CurrentUser(sessions, accounts))

	auth := NewAuthHandler(accounts, sessions)
	r.POST("/register", auth.Register)
	r.POST("/login", auth.Login)
	r.GET("/logout", auth.Logout)

	authed := r.Group("", middleware.RequireUser())
	carts := NewCartHandler(cart, cat)
	authed.POST("/add_cart", carts.AddCart)
	authed.POST("/remove_cart", carts.RemoveCart)
	authed.POST("/customize_add_cart", carts.CustomizeAddCart)

	favorites := NewFavoriteHandler(cat, sessions)
	authed.POST("/add_favorite", favorites.AddFavorite)
	authed.POST("/remove_favorite", favorites.RemoveFavorite)

	return &fixture{router: r, db: db, accounts: accounts, cart: cart, sessions: sessions}
}

func (f *fixture) postForm(path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	t.Fatal("expected a session cookie")
	return nil
}

func register(t *testing.T, f *fixture, username string) *http.Cookie {
	t.Helper()
	w := f.postForm("/register", url.Values{
		"username":         {username},
		"email":            {username + "@example.com"},
		"password":         {"pw1"},
		"password_confirm": {"pw1"},
	}, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/", w.Header().Get("Location"))
	return sessionCookie(t, w)
}

func TestRegisterLoginFlow(t *testing.T) {
	f := newFixture(t)

	cookie := register(t, f, "alice")
	username, ok := f.sessions.Resolve(cookie.Value)
	require.True(t, ok)
	assert.Equal(t, "alice", username)

	// duplicate username
	w := f.postForm("/register", url.Values{
		"username":         {"alice"},
		"email":            {"other@example.com"},
		"password":         {"pw2"},
		"password_confirm": {"pw2"},
	}, nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/register?error=username_taken", w.Header().Get("Location"))

	// mismatched confirmation
	w = f.postForm("/register", url.Values{
		"username":         {"bob"},
		"email":            {"bob@example.com"},
		"password":         {"pw1"},
		"password_confirm": {"pw2"},
	}, nil)
	assert.Equal(t, "/register?error=passwords_mismatch", w.Header().Get("Location"))

	// login with the registered credentials
	w = f.postForm("/login", url.Values{
		"username": {"alice"},
		"password": {"pw1"},
	}, nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	sessionCookie(t, w)

	// wrong password
	w = f.postForm("/login", url.Values{
		"username": {"alice"},
		"password": {"nope"},
	}, nil)
	assert.Equal(t, "/login?error=invalid_credentials", w.Header().Get("Location"))
}

func TestLogoutDestroysSession(t *testing.T) {
	f := newFixture(t)
	cookie := register(t, f, "alice")

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	_, ok := f.sessions.Resolve(cookie.Value)
	assert.False(t, ok, "token must be dead after logout")

	cleared := sessionCookie(t, w)
	assert.Empty(t, cleared.Value)
}

func TestCartLifecycle(t *testing.T) {
	f := newFixture(t)
	cookie := register(t, f, "alice")

	w := f.postForm("/add_cart", url.Values{"product_id": {"1"}}, cookie)
	require.Equal(t, http.StatusSeeOther, w.Code)

	user, err := f.accounts.FindByUsername("alice")
	require.NoError(t, err)

	items, err := f.cart.ListFor(user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 8500, items[0].Price)

	itemID := fmt.Sprint(items[0].ID)
	w = f.postForm("/remove_cart", url.Values{"product_id": {itemID}}, cookie)
	require.Equal(t, http.StatusSeeOther, w.Code)

	items, err = f.cart.ListFor(user.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	// removing again is a silent no-op
	w = f.postForm("/remove_cart", url.Values{"product_id": {itemID}}, cookie)
	assert.Equal(t, http.StatusSeeOther, w.Code)
}

func TestAddCartUnknownProduct(t *testing.T) {
	f := newFixture(t)
	cookie := register(t, f, "alice")

	w := f.postForm("/add_cart", url.Values{"product_id": {"999"}}, cookie)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "error=product_not_found")
}

func TestAnonymousMutationsRedirectToLogin(t *testing.T) {
	f := newFixture(t)

	for _, path := range []string{
		"/add_cart", "/remove_cart", "/customize_add_cart",
		"/add_favorite", "/remove_favorite",
	} {
		w := f.postForm(path, url.Values{"product_id": {"1"}}, nil)
		assert.Equal(t, http.StatusSeeOther, w.Code, path)
		assert.Equal(t, "/login", w.Header().Get("Location"), path)
	}

	// nothing was created anywhere
	var count int64
	require.NoError(t, f.db.Model(&models.CartItem{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCustomizeAddCart(t *testing.T) {
	f := newFixture(t)
	cookie := register(t, f, "alice")

	// invalid size rejects with a single error code
	w := f.postForm("/customize_add_cart", url.Values{
		"base_product_id": {"1"},
		"color":           {"#fff"},
		"size":            {"XL"},
	}, cookie)
	assert.Equal(t, "/customize?error=invalid_params", w.Header().Get("Location"))

	// unknown base product is the same rejection
	w = f.postForm("/customize_add_cart", url.Values{
		"base_product_id": {"999"},
		"color":           {"#fff"},
		"size":            {"M"},
	}, cookie)
	assert.Equal(t, "/customize?error=invalid_params", w.Header().Get("Location"))

	// valid customization lands in the cart
	w = f.postForm("/customize_add_cart", url.Values{
		"base_product_id": {"1"},
		"color":           {"#aabbcc"},
		"size":            {"M"},
	}, cookie)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/cart", w.Header().Get("Location"))

	user, err := f.accounts.FindByUsername("alice")
	require.NoError(t, err)
	items, err := f.cart.ListFor(user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].IsCustom)
	assert.Contains(t, items[0].Name, "M")
	assert.Contains(t, items[0].Name, "#aabbcc")
}

func TestFavoriteFlow(t *testing.T) {
	f := newFixture(t)
	cookie := register(t, f, "alice")

	w := f.postForm("/add_favorite", url.Values{"product_id": {"1"}}, cookie)
	require.Equal(t, http.StatusSeeOther, w.Code)

	// adding twice stays a single entry
	f.postForm("/add_favorite", url.Values{"product_id": {"1"}}, cookie)

	favs := f.sessions.Favorites(cookie.Value)
	require.Len(t, favs, 1)
	assert.Equal(t, 1, favs[0].ID)

	w = f.postForm("/remove_favorite", url.Values{"product_id": {"1"}}, cookie)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Empty(t, f.sessions.Favorites(cookie.Value))
}

func TestRedirectBackUsesReferer(t *testing.T) {
	f := newFixture(t)
	cookie := register(t, f, "alice")

	req := httptest.NewRequest(http.MethodPost, "/add_cart",
		strings.NewReader(url.Values{"product_id": {"1"}}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Referer", "/catalog?brand=Nike")
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/catalog?brand=Nike", w.Header().Get("Location"))
}
