package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"parkside-realty/internal/flash"
	"parkside-realty/internal/middleware"
	"parkside-realty/internal/models"
	"parkside-realty/internal/repositories"
	"parkside-realty/internal/services"
	"parkside-realty/internal/validators"
	"parkside-realty/pkg/config"
	"parkside-realty/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	testCookieName = "realty_session"
	testSecret     = "test-secret"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = testSecret
	cfg.Session.CookieName = testCookieName
	cfg.Session.MaxAge = 3600
	return cfg
}

// setupRouter wires the site routes the way the application does, with an
// in-memory database and flash store.
func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)
	logger.InitLogger(io.Discard, "ERROR")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.Account{}, &models.ClientProfile{}, &models.RealtorProfile{}, &models.Property{}))

	cfg := testConfig()
	store := flash.NewMemoryStore()

	accountRepo := repositories.NewAccountRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	propertyRepo := repositories.NewPropertyRepository(db)

	accounts := services.NewAccountService(db, accountRepo, profileRepo, validators.NewSignupValidator(), cfg.JWT.Secret)
	properties := services.NewPropertyService(propertyRepo, profileRepo, validators.NewPropertyValidator())
	listings := services.NewListingService(propertyRepo, profileRepo)

	home := NewHomeHandler(listings, store)
	listing := NewListingHandler(listings, store)
	property := NewPropertyHandler(properties, store)
	dashboard := NewDashboardHandler(listings, store)
	auth := NewAuthHandler(accounts, store, cfg)

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.Identity(accounts, cfg.Session.CookieName, cfg.JWT.Secret))

	r.GET("/", home.Home)
	r.GET("/properties/", listing.List)
	r.GET("/properties/:id/", property.Detail)
	r.POST("/signup/client/", auth.ClientSignup)
	r.POST("/signup/realtor/", auth.RealtorSignup)
	r.POST("/login/", auth.Login)
	r.POST("/logout/", auth.Logout)
	r.GET("/dashboard/", dashboard.Dashboard)
	r.POST("/property/add/", property.Add)
	r.POST("/property/edit/:id/", property.Edit)
	r.POST("/property/delete/:id/", property.Delete)

	return r, db
}

func postForm(r *gin.Engine, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == testCookieName {
			return cookie
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func realtorSignupForm(username, license string) url.Values {
	return url.Values{
		"username":       {username},
		"email":          {username + "@example.com"},
		"password":       {"sup3rsecret"},
		"password2":      {"sup3rsecret"},
		"phone":          {"5550100"},
		"license_number": {license},
	}
}

func TestHome_RendersFeaturedAndRealtors(t *testing.T) {
	r, db := setupRouter(t)

	w := postForm(r, "/signup/realtor/", realtorSignupForm("avery", "LIC-100"))
	assert.Equal(t, http.StatusFound, w.Code)
	var realtor models.RealtorProfile
	assert.NoError(t, db.First(&realtor).Error)

	assert.NoError(t, db.Create(&models.Property{
		Title:        "Showpiece",
		PropertyType: models.PropertyTypeHouse,
		Status:       models.PropertyStatusForSale,
		Address:      "1 Main St",
		Price:        500000,
		Area:         200,
		IsFeatured:   true,
		RealtorID:    realtor.ID,
	}).Error)

	w = get(r, "/")
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Featured []models.Property       `json:"featured"`
		Realtors []models.RealtorProfile `json:"realtors"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Featured, 1)
	assert.Equal(t, "Showpiece", body.Featured[0].Title)
	assert.Len(t, body.Realtors, 1)
}

func TestPropertyAdd_UnreadableFormRendersValidationShape(t *testing.T) {
	r, db := setupRouter(t)

	w := postForm(r, "/signup/realtor/", realtorSignupForm("avery", "LIC-100"))
	session := sessionCookie(t, w)

	form := url.Values{
		"title":         {"Sunny flat"},
		"property_type": {"apartment"},
		"address":       {"1 Main St"},
		"price":         {"not-a-number"},
	}
	w = postForm(r, "/property/add/", form, session)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Error struct {
			Code   string            `json:"code"`
			Fields map[string]string `json:"fields"`
		} `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Contains(t, body.Error.Fields, "form")

	var count int64
	db.Model(&models.Property{}).Count(&count)
	assert.Zero(t, count)
}

func TestDetail_UnknownIDReturns404(t *testing.T) {
	r, _ := setupRouter(t)

	w := get(r, "/properties/9999/")
	assert.Equal(t, http.StatusNotFound, w.Code)

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "PROPERTY_NOT_FOUND", body.Error.Code)
}

func TestDetail_MalformedIDReturns404(t *testing.T) {
	r, _ := setupRouter(t)

	w := get(r, "/properties/abc/")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClientSignup_SetsSessionAndRedirects(t *testing.T) {
	r, db := setupRouter(t)

	form := url.Values{
		"username":  {"jordan"},
		"email":     {"jordan@example.com"},
		"password":  {"sup3rsecret"},
		"password2": {"sup3rsecret"},
		"phone":     {"5550100"},
	}
	w := postForm(r, "/signup/client/", form)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.NotEmpty(t, sessionCookie(t, w).Value)

	var count int64
	db.Model(&models.ClientProfile{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestClientSignup_ValidationErrorsRenderFields(t *testing.T) {
	r, _ := setupRouter(t)

	form := url.Values{
		"username":  {"jordan"},
		"email":     {"not-an-email"},
		"password":  {"sup3rsecret"},
		"password2": {"different"},
		"phone":     {"5550100"},
	}
	w := postForm(r, "/signup/client/", form)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Error struct {
			Code   string            `json:"code"`
			Fields map[string]string `json:"fields"`
		} `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Contains(t, body.Error.Fields, "email")
	assert.Contains(t, body.Error.Fields, "password2")
}

func TestDashboard_AnonymousRedirectsHomeWithNotice(t *testing.T) {
	r, _ := setupRouter(t)

	browser := &http.Cookie{Name: flash.CookieName, Value: "browser-1"}
	w := get(r, "/dashboard/", browser)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	// the notice is queued for the next page the browser loads
	w = get(r, "/", browser)
	assert.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Notices []string `json:"notices"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Notices, 1)

	// consumed notices do not reappear
	w = get(r, "/", browser)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body.Notices)
}

func TestPropertyAdd_RealtorFlow(t *testing.T) {
	r, db := setupRouter(t)

	w := postForm(r, "/signup/realtor/", realtorSignupForm("avery", "LIC-100"))
	assert.Equal(t, http.StatusFound, w.Code)
	session := sessionCookie(t, w)

	form := url.Values{
		"title":         {"Sunny flat"},
		"property_type": {"apartment"},
		"address":       {"1 Main St"},
		"price":         {"250000"},
		"area":          {"90"},
		"bedrooms":      {"2"},
		"bathrooms":     {"1"},
	}
	w = postForm(r, "/property/add/", form, session)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard/", w.Header().Get("Location"))

	var property models.Property
	assert.NoError(t, db.First(&property).Error)
	assert.Equal(t, "Sunny flat", property.Title)
	assert.NotNil(t, property.ClientID)

	w = get(r, "/dashboard/", session)
	assert.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Properties []models.Property `json:"properties"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Properties, 1)
}

func TestPropertyAdd_ClientRedirectedHome(t *testing.T) {
	r, db := setupRouter(t)

	form := url.Values{
		"username":  {"jordan"},
		"email":     {"jordan@example.com"},
		"password":  {"sup3rsecret"},
		"password2": {"sup3rsecret"},
		"phone":     {"5550100"},
	}
	w := postForm(r, "/signup/client/", form)
	session := sessionCookie(t, w)

	w = postForm(r, "/property/add/", url.Values{"title": {"Nope"}}, session)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	var count int64
	db.Model(&models.Property{}).Count(&count)
	assert.Zero(t, count)
}

func TestPropertyEdit_ForeignRealtorRedirectsToDashboard(t *testing.T) {
	r, db := setupRouter(t)

	w := postForm(r, "/signup/realtor/", realtorSignupForm("avery", "LIC-100"))
	owner := sessionCookie(t, w)
	w = postForm(r, "/signup/realtor/", realtorSignupForm("blake", "LIC-200"))
	intruder := sessionCookie(t, w)

	form := url.Values{
		"title":         {"Sunny flat"},
		"property_type": {"apartment"},
		"address":       {"1 Main St"},
		"price":         {"250000"},
		"area":          {"90"},
	}
	w = postForm(r, "/property/add/", form, owner)
	assert.Equal(t, http.StatusFound, w.Code)

	var property models.Property
	assert.NoError(t, db.First(&property).Error)

	form.Set("title", "Hijacked")
	w = postForm(r, "/property/edit/"+itoa(property.ID)+"/", form, intruder)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard/", w.Header().Get("Location"))

	assert.NoError(t, db.First(&property, property.ID).Error)
	assert.Equal(t, "Sunny flat", property.Title)
}

func TestLoginAndLogout(t *testing.T) {
	r, _ := setupRouter(t)

	postForm(r, "/signup/client/", url.Values{
		"username":  {"jordan"},
		"email":     {"jordan@example.com"},
		"password":  {"sup3rsecret"},
		"password2": {"sup3rsecret"},
		"phone":     {"5550100"},
	})

	w := postForm(r, "/login/", url.Values{"username": {"jordan"}, "password": {"wrong"}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postForm(r, "/login/", url.Values{"username": {"jordan"}, "password": {"sup3rsecret"}})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.NotEmpty(t, sessionCookie(t, w).Value)

	w = postForm(r, "/logout/", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Empty(t, sessionCookie(t, w).Value)
}

func TestListing_FiltersAndPaginationLinks(t *testing.T) {
	r, db := setupRouter(t)

	w := postForm(r, "/signup/realtor/", realtorSignupForm("avery", "LIC-100"))
	assert.Equal(t, http.StatusFound, w.Code)
	var realtor models.RealtorProfile
	assert.NoError(t, db.First(&realtor).Error)

	for i := 0; i < 12; i++ {
		assert.NoError(t, db.Create(&models.Property{
			Title:        "Listing",
			PropertyType: models.PropertyTypeApartment,
			Status:       models.PropertyStatusForSale,
			Address:      "1 Main St",
			Price:        float64(100000 + i*1000),
			Area:         80,
			RealtorID:    realtor.ID,
		}).Error)
	}

	w = get(r, "/properties/?price__gte=100000&page=1")
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Properties []models.Property `json:"properties"`
		Meta       models.PaginationMeta
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Properties, 9)
	assert.NotNil(t, body.Meta.Next)
	assert.Contains(t, *body.Meta.Next, "page=2")
	assert.Contains(t, *body.Meta.Next, "price__gte=100000")
	assert.Nil(t, body.Meta.Prev)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
