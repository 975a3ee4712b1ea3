package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ReserveAquiServices/api-reservas/internal/httperr"
	"github.com/ReserveAquiServices/api-reservas/internal/httpresp"
	"github.com/ReserveAquiServices/api-reservas/internal/middleware"
	"github.com/ReserveAquiServices/api-reservas/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type TableHandler struct {
	db *gorm.DB
}

func NewTableHandler(db *gorm.DB) *TableHandler {
	return &TableHandler{db: db}
}

var tableStatuses = map[string]bool{
	"available":   true,
	"occupied":    true,
	"reserved":    true,
	"maintenance": true,
}

// ======================================================
// LIST (público)
// ======================================================

func (h *TableHandler) List(c *gin.Context) {
	restaurantID := c.Param("id")

	q := h.db.Where("restaurant_id = ?", restaurantID)

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var tables []models.Table
	if err := q.Order("number ASC").Find(&tables).Error; err != nil {
		httperr.Internal(c, "failed_to_list_tables", "Erro ao listar mesas.")
		return
	}

	httpresp.List(c, tables)
}

// ======================================================
// CREATE (manual, além do provisionamento)
// ======================================================

type CreateTableRequest struct {
	Number int `json:"number" binding:"required,min=1"`
}

func (h *TableHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	rest, ok := h.getOwnedRestaurant(c, userID, role)
	if !ok {
		return
	}

	var req CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	var count int64
	h.db.Model(&models.Table{}).
		Where("restaurant_id = ? AND number = ?", rest.ID, req.Number).
		Count(&count)
	if count > 0 {
		httperr.Conflict(c, httperr.CodeDuplicateTableNumber, "Já existe uma mesa com este número neste restaurante.")
		return
	}

	table := models.Table{
		RestaurantID: rest.ID,
		Number:       req.Number,
		Capacity:     4,
		Status:       "available",
		Active:       true,
	}

	if err := h.db.Create(&table).Error; err != nil {
		// Corrida entre a verificação e o insert: o índice único decide.
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, httperr.CodeDuplicateTableNumber, "Já existe uma mesa com este número neste restaurante.")
			return
		}
		httperr.Internal(c, "failed_to_create_table", "Erro ao criar mesa.")
		return
	}

	httpresp.Created(c, table)
}

// ======================================================
// UPDATE STATUS
// ======================================================

type UpdateTableStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Active *bool  `json:"active"`
}

func (h *TableHandler) UpdateStatus(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	rest, ok := h.getOwnedRestaurant(c, userID, role)
	if !ok {
		return
	}

	var req UpdateTableStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	if !tableStatuses[req.Status] {
		httperr.BadRequest(c, "invalid_table_status", "Status de mesa inválido.")
		return
	}

	var table models.Table
	if err := h.db.
		Where("id = ? AND restaurant_id = ?", c.Param("table_id"), rest.ID).
		First(&table).Error; err != nil {
		httperr.NotFound(c, "table_not_found", "Mesa não encontrada.")
		return
	}

	table.Status = req.Status
	if req.Active != nil {
		table.Active = *req.Active
	}

	if err := h.db.Save(&table).Error; err != nil {
		httperr.Internal(c, "failed_to_update_table", "Erro ao atualizar mesa.")
		return
	}

	httpresp.OK(c, table)
}

// ======================================================
// HELPERS
// ======================================================

func (h *TableHandler) getOwnedRestaurant(
	c *gin.Context,
	userID uint,
	role string,
) (*models.Restaurant, bool) {

	var rest models.Restaurant
	if err := h.db.First(&rest, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "restaurant_not_found", "Restaurante não encontrado.")
		return nil, false
	}

	if rest.OwnerID != userID && role != "admin" && role != "staff" {
		httperr.Forbidden(c, "not_restaurant_owner", "Sem permissão para gerenciar mesas deste restaurante.")
		return nil, false
	}

	return &rest, true
}
