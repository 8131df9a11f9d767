package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stayrooted/constants"
	"stayrooted/services"
	"stayrooted/services/logger"
	"stayrooted/services/notification"
	"stayrooted/store"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Code  int             `json:"code"`
	Mess  string          `json:"mess"`
	Data  json.RawMessage `json:"data"`
	Total int             `json:"total"`
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	log := logger.NewNop()
	cache := store.NewMemoryCache()
	catalog := store.NewMemoryCatalog()
	bookings := store.NewMemoryBookings()

	catalogService := services.NewCatalogService(catalog)
	authService := services.NewAuthService(services.AuthServiceOptions{
		Catalog:    catalog,
		Sessions:   cache,
		Tokens:     services.NewTokenManager("test-secret", time.Hour),
		Logger:     log,
		SessionTTL: time.Hour,
	})
	dispatcher := notification.NewDispatcher(nil, nil, log)

	router := gin.New()
	SetupRoutes(router, Dependencies{
		Auth:     authService,
		Catalog:  catalogService,
		Filters:  services.NewFiltersCache(cache),
		Bookings: services.NewBookingService(catalogService, bookings, dispatcher, log),
		Host:     services.NewHostService(catalogService, bookings, log),
		Upload:   services.NewUploadService(nil, log),
		Melody:   melody.New(),
		Logger:   log,
	})
	return router
}

func do(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 && w.Header().Get("Content-Type") != "text/plain; charset=utf-8" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func loginAs(t *testing.T, r *gin.Engine, email string) map[string]string {
	t.Helper()
	w, env := do(t, r, http.MethodPost, "/api/v1/auth/login", map[string]string{"email": email, "password": "secret"}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var data struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.AccessToken)
	return map[string]string{"Authorization": "Bearer " + data.AccessToken}
}

func TestPing(t *testing.T) {
	r := newTestRouter()
	w, _ := do(t, r, http.MethodGet, "/ping", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestListExperiencesFilters(t *testing.T) {
	r := newTestRouter()

	w, env := do(t, r, http.MethodGet, "/api/v1/experiences", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 6, env.Total)

	w, env = do(t, r, http.MethodGet, "/api/v1/experiences?city=Mumbai", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, env.Total)

	w, env = do(t, r, http.MethodGet, "/api/v1/experiences?category=Food%20Tours&priceMax=1300", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, env.Total)

	w, _ = do(t, r, http.MethodGet, "/api/v1/experiences?priceMin=abc", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetExperienceNotFound(t *testing.T) {
	r := newTestRouter()

	w, env := do(t, r, http.MethodGet, "/api/v1/experience/99", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, constants.MsgExperienceNotFound, env.Mess)

	w, env = do(t, r, http.MethodGet, "/api/v1/stay/99", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, constants.MsgStayNotFound, env.Mess)
}

func TestLastFiltersPerSession(t *testing.T) {
	r := newTestRouter()
	session := map[string]string{constants.SessionIDHeader: "browser-1"}

	w, _ := do(t, r, http.MethodGet, "/api/v1/experiences?city=Delhi", nil, session)
	require.Equal(t, http.StatusOK, w.Code)

	w, env := do(t, r, http.MethodGet, "/api/v1/experiences?category=Food%20Tours&merge=true", nil, session)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, env.Total)

	w, env = do(t, r, http.MethodGet, "/api/v1/experiences/last-filters", nil, session)
	require.Equal(t, http.StatusOK, w.Code)
	var last struct {
		Experiences struct {
			City     string `json:"city"`
			Category string `json:"category"`
		} `json:"experiences"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &last))
	assert.Equal(t, "Delhi", last.Experiences.City)
	assert.Equal(t, "Food Tours", last.Experiences.Category)

	w, env = do(t, r, http.MethodGet, "/api/v1/experiences/last-filters", nil, map[string]string{constants.SessionIDHeader: "browser-2"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, string(env.Data), "Delhi")

	w, _ = do(t, r, http.MethodDelete, "/api/v1/last-filters", nil, session)
	require.Equal(t, http.StatusOK, w.Code)
	_, env = do(t, r, http.MethodGet, "/api/v1/experiences/last-filters", nil, session)
	assert.NotContains(t, string(env.Data), "Delhi")
}

func TestFiltersNotRememberedWithoutSessionHeader(t *testing.T) {
	r := newTestRouter()

	w, _ := do(t, r, http.MethodGet, "/api/v1/experiences?city=Delhi", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	generated := w.Header().Get(constants.SessionIDHeader)
	require.NotEmpty(t, generated)

	w, env := do(t, r, http.MethodGet, "/api/v1/experiences/last-filters", nil, map[string]string{constants.SessionIDHeader: generated})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, string(env.Data), "Delhi")
}

func TestBookExperienceRequiresLogin(t *testing.T) {
	r := newTestRouter()

	w, env := do(t, r, http.MethodPost, "/api/v1/experience/1/book", map[string]any{"date": "2030-03-10", "group_size": 2}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Please log in to continue", env.Mess)
}

func TestBookExperienceFlow(t *testing.T) {
	r := newTestRouter()
	auth := loginAs(t, r, "arjun@example.com")

	w, env := do(t, r, http.MethodPost, "/api/v1/experience/1/quote", map[string]any{"group_size": 3}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"total_price":4500`)

	w, env = do(t, r, http.MethodPost, "/api/v1/experience/1/book", map[string]any{"group_size": 2}, auth)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, constants.MsgSelectDate, env.Mess)

	w, env = do(t, r, http.MethodPost, "/api/v1/experience/1/book", map[string]any{"date": "2030-03-10", "group_size": 2}, auth)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, constants.MsgExperienceBooked, env.Mess)

	var booking struct {
		ID          string `json:"id"`
		TotalAmount int    `json:"total_amount"`
		Status      string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &booking))
	assert.Equal(t, 3000, booking.TotalAmount)
	assert.Equal(t, "confirmed", booking.Status)

	w, env = do(t, r, http.MethodGet, "/api/v1/bookings", nil, auth)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), booking.ID)

	w, env = do(t, r, http.MethodPut, "/api/v1/bookings/"+booking.ID+"/status", map[string]string{"action": "cancel"}, auth)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Booking cancelled", env.Mess)

	w, _ = do(t, r, http.MethodPut, "/api/v1/bookings/"+booking.ID+"/status", map[string]string{"action": "complete"}, auth)
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = do(t, r, http.MethodPut, "/api/v1/bookings/"+booking.ID+"/status", map[string]string{"action": "archive"}, auth)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookStayFlow(t *testing.T) {
	r := newTestRouter()
	auth := loginAs(t, r, "arjun@example.com")

	body := map[string]any{"check_in": "2030-01-13", "check_out": "2030-01-10", "guests": 2}
	w, env := do(t, r, http.MethodPost, "/api/v1/stay/1/book", body, auth)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, constants.MsgCheckOutAfterCheckIn, env.Mess)

	body = map[string]any{"check_in": "2030-01-10", "check_out": "2030-01-13", "guests": 2}
	w, env = do(t, r, http.MethodPost, "/api/v1/stay/1/book", body, auth)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "Booking confirmed for 3 nights! Total: ₹7500", env.Mess)
}

func TestHostRoutes(t *testing.T) {
	r := newTestRouter()

	w, _ := do(t, r, http.MethodGet, "/api/v1/host-dashboard", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	traveler := loginAs(t, r, "arjun@example.com")
	w, env := do(t, r, http.MethodGet, "/api/v1/host-dashboard", nil, traveler)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, constants.MsgHostOnly, env.Mess)

	host := loginAs(t, r, "raj@example.com")
	w, _ = do(t, r, http.MethodGet, "/api/v1/host-dashboard", nil, host)
	assert.Equal(t, http.StatusOK, w.Code)

	w, env = do(t, r, http.MethodGet, "/api/v1/profile", nil, host)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), "Raj Patel")
}

func TestLogoutInvalidatesSession(t *testing.T) {
	r := newTestRouter()
	auth := loginAs(t, r, "arjun@example.com")

	w, _ := do(t, r, http.MethodGet, "/api/v1/profile", nil, auth)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = do(t, r, http.MethodDelete, "/api/v1/auth/logout", nil, auth)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = do(t, r, http.MethodGet, "/api/v1/profile", nil, auth)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
