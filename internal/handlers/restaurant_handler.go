package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ReserveAquiServices/api-reservas/internal/httperr"
	"github.com/ReserveAquiServices/api-reservas/internal/httpresp"
	"github.com/ReserveAquiServices/api-reservas/internal/middleware"
	"github.com/ReserveAquiServices/api-reservas/internal/models"
	"github.com/ReserveAquiServices/api-reservas/internal/timezone"
	ucRestaurant "github.com/ReserveAquiServices/api-reservas/internal/usecase/restaurant"
)

const maxTableCount = 1000

// ======================================================
// HANDLER
// ======================================================

type RestaurantHandler struct {
	db          *gorm.DB
	provisionUC *ucRestaurant.ProvisionTables
}

func NewRestaurantHandler(
	db *gorm.DB,
	provisionUC *ucRestaurant.ProvisionTables,
) *RestaurantHandler {
	return &RestaurantHandler{
		db:          db,
		provisionUC: provisionUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateRestaurantRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Address     string `json:"address" binding:"required"`
	City        string `json:"city" binding:"required"`
	State       string `json:"state" binding:"required,len=2"`
	Zip         string `json:"zip" binding:"required"`
	Phone       string `json:"phone"`
	Email       string `json:"email" binding:"required,email"`
	TableCount  *int   `json:"table_count"`
	Timezone    string `json:"timezone"`
}

type UpdateRestaurantRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	Zip         *string `json:"zip"`
	Phone       *string `json:"phone"`
	TableCount  *int    `json:"table_count"`
	Active      *bool   `json:"active"`
}

// ======================================================
// CREATE
// ======================================================

func (h *RestaurantHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.Restaurant{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_exists", "Já existe um restaurante com este email.")
		return
	}

	tableCount := 10
	if req.TableCount != nil {
		if *req.TableCount < 0 || *req.TableCount > maxTableCount {
			httperr.BadRequest(c, "invalid_table_count", "A quantidade de mesas deve estar entre 0 e 1000.")
			return
		}
		tableCount = *req.TableCount
	}

	tz := req.Timezone
	if !timezone.IsValid(tz) {
		tz = timezone.DefaultTimezone
	}

	rest := models.Restaurant{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		City:        req.City,
		State:       strings.ToUpper(req.State),
		Zip:         req.Zip,
		Phone:       req.Phone,
		Email:       email,
		OwnerID:     userID,
		TableCount:  tableCount,
		Timezone:    tz,
		Active:      true,
	}

	if err := h.db.Create(&rest).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.BadRequest(c, "email_already_exists", "Já existe um restaurante com este email.")
			return
		}
		httperr.Internal(c, "failed_to_create_restaurant", "Erro ao criar restaurante.")
		return
	}

	// Provisionamento síncrono das mesas declaradas.
	if _, err := h.provisionUC.Execute(c.Request.Context(), rest.ID, &userID); err != nil {
		httperr.Internal(c, "failed_to_provision_tables", "Restaurante criado, mas houve erro ao provisionar mesas.")
		return
	}

	httpresp.Created(c, rest)
}

// ======================================================
// UPDATE
// ======================================================

func (h *RestaurantHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	rest, ok := h.getOwnedRestaurant(c, userID, role)
	if !ok {
		return
	}

	var req UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	if req.Name != nil {
		rest.Name = *req.Name
	}
	if req.Description != nil {
		rest.Description = *req.Description
	}
	if req.Address != nil {
		rest.Address = *req.Address
	}
	if req.City != nil {
		rest.City = *req.City
	}
	if req.State != nil {
		rest.State = strings.ToUpper(*req.State)
	}
	if req.Zip != nil {
		rest.Zip = *req.Zip
	}
	if req.Phone != nil {
		rest.Phone = *req.Phone
	}
	if req.Active != nil {
		rest.Active = *req.Active
	}

	if req.TableCount != nil {
		if *req.TableCount < 0 || *req.TableCount > maxTableCount {
			httperr.BadRequest(c, "invalid_table_count", "A quantidade de mesas deve estar entre 0 e 1000.")
			return
		}
		// Reduzir o alvo nunca remove mesas já provisionadas.
		rest.TableCount = *req.TableCount
	}

	if err := h.db.Save(rest).Error; err != nil {
		httperr.Internal(c, "failed_to_update_restaurant", "Erro ao salvar o restaurante.")
		return
	}

	if _, err := h.provisionUC.Execute(c.Request.Context(), rest.ID, &userID); err != nil {
		httperr.Internal(c, "failed_to_provision_tables", "Restaurante salvo, mas houve erro ao provisionar mesas.")
		return
	}

	httpresp.OK(c, rest)
}

// ======================================================
// LIST / GET (público)
// ======================================================

func (h *RestaurantHandler) List(c *gin.Context) {
	city := strings.TrimSpace(c.Query("city"))

	q := h.db.Where("active = ?", true)
	if city != "" {
		q = q.Where("LOWER(city) = LOWER(?)", city)
	}

	var restaurants []models.Restaurant
	if err := q.Order("name ASC").Find(&restaurants).Error; err != nil {
		httperr.Internal(c, "failed_to_list_restaurants", "Erro ao listar restaurantes.")
		return
	}

	httpresp.List(c, restaurants)
}

func (h *RestaurantHandler) Get(c *gin.Context) {
	var rest models.Restaurant
	if err := h.db.First(&rest, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "restaurant_not_found", "Restaurante não encontrado.")
		return
	}

	var totalTables int64
	h.db.Model(&models.Table{}).Where("restaurant_id = ?", rest.ID).Count(&totalTables)

	c.JSON(http.StatusOK, gin.H{
		"restaurant":   rest,
		"total_tables": totalTables,
	})
}

// ======================================================
// HELPERS
// ======================================================

func (h *RestaurantHandler) getOwnedRestaurant(
	c *gin.Context,
	userID uint,
	role string,
) (*models.Restaurant, bool) {

	var rest models.Restaurant
	if err := h.db.First(&rest, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "restaurant_not_found", "Restaurante não encontrado.")
		return nil, false
	}

	if rest.OwnerID != userID && role != "admin" {
		httperr.Forbidden(c, "not_restaurant_owner", "Apenas o proprietário pode alterar o restaurante.")
		return nil, false
	}

	return &rest, true
}
