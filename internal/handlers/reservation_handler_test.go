package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ReserveAquiServices/api-reservas/internal/audit"
	dbpkg "github.com/ReserveAquiServices/api-reservas/internal/db"
	"github.com/ReserveAquiServices/api-reservas/internal/httperr"
	infra "github.com/ReserveAquiServices/api-reservas/internal/infra/repository"
	"github.com/ReserveAquiServices/api-reservas/internal/middleware"
	"github.com/ReserveAquiServices/api-reservas/internal/models"
	ucReservation "github.com/ReserveAquiServices/api-reservas/internal/usecase/reservation"
)

// ======================================================
// FIXTURES
// ======================================================

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB, *models.Restaurant) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(db))

	owner := models.User{
		Name:         "Dono",
		Email:        "dono@reserveaqui.com.br",
		PasswordHash: "x",
		Role:         "owner",
	}
	require.NoError(t, db.Create(&owner).Error)

	rest := models.Restaurant{
		Name:       "Cantina da Esquina",
		Email:      "cantina@reserveaqui.com.br",
		OwnerID:    owner.ID,
		TableCount: 10,
		Timezone:   "UTC",
		Active:     true,
	}
	require.NoError(t, db.Create(&rest).Error)

	repo := infra.NewReservationGormRepository(db)
	dispatcher := audit.NewDispatcher(audit.New(db))

	h := NewReservationHandler(
		ucReservation.NewCreateReservation(repo, dispatcher),
		ucReservation.NewCancelReservation(repo, dispatcher),
		ucReservation.NewConfirmReservation(repo, dispatcher),
		ucReservation.NewCompleteReservation(repo, dispatcher),
		ucReservation.NewLinkTable(repo, dispatcher),
		ucReservation.NewUnlinkTable(repo, dispatcher),
		ucReservation.NewListReservationsByDate(repo),
		repo,
	)

	r := gin.New()
	r.Use(headerIdentity)
	r.POST("/api/restaurants/:id/reservations", h.Create)
	r.GET("/api/restaurants/:id/reservations", h.ListByDate)
	r.GET("/api/restaurants/:id/reservations/:reservation_id", h.Get)
	r.PATCH("/api/restaurants/:id/reservations/:reservation_id/cancel", h.Cancel)
	r.PATCH("/api/restaurants/:id/reservations/:reservation_id/confirm", h.Confirm)
	r.POST("/api/restaurants/:id/reservations/:reservation_id/tables", h.LinkTable)
	r.PATCH("/api/reservations/:code/cancel", h.CancelByCode)

	return r, db, &rest
}

// headerIdentity injeta a identidade que o middleware de auth colocaria
// no contexto, lida de headers do próprio teste.
func headerIdentity(c *gin.Context) {
	if v := c.GetHeader("X-User-ID"); v != "" {
		id, _ := strconv.ParseUint(v, 10, 32)
		c.Set(middleware.ContextUserID, uint(id))
		c.Set(middleware.ContextUserRole, c.GetHeader("X-User-Role"))
	}
	c.Next()
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	return doJSONAs(t, r, method, path, body, 0, "")
}

func doJSONAs(
	t *testing.T,
	r *gin.Engine,
	method, path string,
	body any,
	userID uint,
	role string,
) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		req.Header.Set("X-User-ID", strconv.FormatUint(uint64(userID), 10))
		req.Header.Set("X-User-Role", role)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func reservationBody(offset time.Duration, partySize int) gin.H {
	at := time.Now().UTC().Add(offset)
	return gin.H{
		"date":          at.Format("2006-01-02"),
		"time":          at.Format("15:04"),
		"party_size":    partySize,
		"contact_name":  "Maria Silva",
		"contact_phone": "11999990000",
	}
}

type createResponse struct {
	Reservation    models.Reservation `json:"reservation"`
	RequiredTables int                `json:"required_tables"`
}

// ======================================================
// TESTS
// ======================================================

func TestCreateReservationEndpoint(t *testing.T) {
	r, _, rest := setupRouter(t)

	w := doJSON(t, r, http.MethodPost,
		fmt.Sprintf("/api/restaurants/%d/reservations", rest.ID),
		reservationBody(5*time.Hour, 6))

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var out createResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))

	assert.NotZero(t, out.Reservation.ID)
	assert.NotEmpty(t, out.Reservation.Code)
	assert.Equal(t, "pending", out.Reservation.Status)
	assert.Equal(t, 2, out.RequiredTables)
}

func TestCreateReservationEndpointLeadTime(t *testing.T) {
	r, _, rest := setupRouter(t)

	w := doJSON(t, r, http.MethodPost,
		fmt.Sprintf("/api/restaurants/%d/reservations", rest.ID),
		reservationBody(time.Hour, 4))

	require.Equal(t, http.StatusBadRequest, w.Code)

	var out httperr.HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, httperr.CodeLeadTimeViolation, out.Code)
}

func TestCreateReservationEndpointPartySize(t *testing.T) {
	r, _, rest := setupRouter(t)

	w := doJSON(t, r, http.MethodPost,
		fmt.Sprintf("/api/restaurants/%d/reservations", rest.ID),
		reservationBody(5*time.Hour, 0))

	require.Equal(t, http.StatusBadRequest, w.Code)

	var out httperr.HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, httperr.CodeInvalidPartySize, out.Code)
}

func TestCreateReservationEndpointRejectsBadPhone(t *testing.T) {
	r, _, rest := setupRouter(t)

	body := reservationBody(5*time.Hour, 4)
	body["contact_phone"] = "abc"

	w := doJSON(t, r, http.MethodPost,
		fmt.Sprintf("/api/restaurants/%d/reservations", rest.ID),
		body)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var out httperr.HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "invalid_phone", out.Code)
}

func TestGetReservationEndpoint(t *testing.T) {
	r, _, rest := setupRouter(t)

	w := doJSON(t, r, http.MethodPost,
		fmt.Sprintf("/api/restaurants/%d/reservations", rest.ID),
		reservationBody(5*time.Hour, 5))
	require.Equal(t, http.StatusCreated, w.Code)

	var created createResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodGet,
		fmt.Sprintf("/api/restaurants/%d/reservations/%d", rest.ID, created.Reservation.ID),
		nil)
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		Reservation    models.Reservation `json:"reservation"`
		RequiredTables int                `json:"required_tables"`
		CanCancel      bool               `json:"can_cancel"`
		Tables         []models.Table     `json:"tables"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))

	assert.Equal(t, created.Reservation.Code, out.Reservation.Code)
	assert.Equal(t, 2, out.RequiredTables)
	assert.True(t, out.CanCancel)
	assert.Empty(t, out.Tables)
}

func TestCancelReservationEndpoint(t *testing.T) {
	r, _, rest := setupRouter(t)

	w := doJSON(t, r, http.MethodPost,
		fmt.Sprintf("/api/restaurants/%d/reservations", rest.ID),
		reservationBody(5*time.Hour, 4))
	require.Equal(t, http.StatusCreated, w.Code)

	var created createResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	path := fmt.Sprintf("/api/restaurants/%d/reservations/%d/cancel", rest.ID, created.Reservation.ID)

	w = doJSONAs(t, r, http.MethodPatch, path, nil, 999, "staff")
	require.Equal(t, http.StatusOK, w.Code)

	var cancelled models.Reservation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cancelled))
	assert.Equal(t, "cancelled", cancelled.Status)

	// Segundo cancelamento bate no estado terminal.
	w = doJSONAs(t, r, http.MethodPatch, path, nil, 999, "staff")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var out httperr.HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, httperr.CodeNotCancellable, out.Code)
}

func TestLinkTableEndpointDuplicate(t *testing.T) {
	r, db, rest := setupRouter(t)

	table := models.Table{
		RestaurantID: rest.ID,
		Number:       1,
		Capacity:     4,
		Status:       "available",
		Active:       true,
	}
	require.NoError(t, db.Create(&table).Error)

	w := doJSON(t, r, http.MethodPost,
		fmt.Sprintf("/api/restaurants/%d/reservations", rest.ID),
		reservationBody(5*time.Hour, 4))
	require.Equal(t, http.StatusCreated, w.Code)

	var created createResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	path := fmt.Sprintf("/api/restaurants/%d/reservations/%d/tables", rest.ID, created.Reservation.ID)
	body := gin.H{"table_id": table.ID}

	w = doJSON(t, r, http.MethodPost, path, body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, path, body)
	require.Equal(t, http.StatusConflict, w.Code)

	var out httperr.HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, httperr.CodeDuplicateLink, out.Code)
}

func TestCreateReservationEndpointUnknownRestaurant(t *testing.T) {
	r, _, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost,
		"/api/restaurants/999999/reservations",
		reservationBody(5*time.Hour, 4))

	require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())

	var out httperr.HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "restaurant_not_found", out.Code)
}

func TestCancelReservationEndpointAuthorization(t *testing.T) {
	r, _, rest := setupRouter(t)

	// Reserva criada pelo cliente 7.
	w := doJSONAs(t, r, http.MethodPost,
		fmt.Sprintf("/api/restaurants/%d/reservations", rest.ID),
		reservationBody(5*time.Hour, 4), 7, "customer")
	require.Equal(t, http.StatusCreated, w.Code)

	var created createResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	path := fmt.Sprintf("/api/restaurants/%d/reservations/%d/cancel", rest.ID, created.Reservation.ID)

	// Outro cliente autenticado não cancela reserva alheia.
	w = doJSONAs(t, r, http.MethodPatch, path, nil, 8, "customer")
	require.Equal(t, http.StatusForbidden, w.Code)

	var out httperr.HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "not_reservation_owner", out.Code)

	// O próprio cliente cancela.
	w = doJSONAs(t, r, http.MethodPatch, path, nil, 7, "customer")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestCancelReservationEndpointAllowsRestaurantOwner(t *testing.T) {
	r, _, rest := setupRouter(t)

	// Reserva anônima: sem usuário vinculado.
	w := doJSON(t, r, http.MethodPost,
		fmt.Sprintf("/api/restaurants/%d/reservations", rest.ID),
		reservationBody(5*time.Hour, 4))
	require.Equal(t, http.StatusCreated, w.Code)

	var created createResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	path := fmt.Sprintf("/api/restaurants/%d/reservations/%d/cancel", rest.ID, created.Reservation.ID)

	w = doJSONAs(t, r, http.MethodPatch, path, nil, rest.OwnerID, "owner")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestCancelReservationByCodeEndpoint(t *testing.T) {
	r, _, rest := setupRouter(t)

	// Reserva anônima; o código devolvido é a credencial de cancelamento.
	w := doJSON(t, r, http.MethodPost,
		fmt.Sprintf("/api/restaurants/%d/reservations", rest.ID),
		reservationBody(5*time.Hour, 4))
	require.Equal(t, http.StatusCreated, w.Code)

	var created createResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.Reservation.Code)

	w = doJSON(t, r, http.MethodPatch,
		"/api/reservations/"+created.Reservation.Code+"/cancel", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var cancelled models.Reservation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cancelled))
	assert.Equal(t, "cancelled", cancelled.Status)

	// Código desconhecido não revela nada além de 404.
	w = doJSON(t, r, http.MethodPatch,
		"/api/reservations/00000000-0000-0000-0000-000000000000/cancel", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestReservationEndpointsRejectBadID(t *testing.T) {
	r, _, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/restaurants/abc/reservations/1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/restaurants/0/reservations/1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
