package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/ReserveAquiServices/api-reservas/internal/domain/reservation"
	"github.com/ReserveAquiServices/api-reservas/internal/httperr"
	"github.com/ReserveAquiServices/api-reservas/internal/httpresp"
	"github.com/ReserveAquiServices/api-reservas/internal/middleware"
	"github.com/ReserveAquiServices/api-reservas/internal/models"
	"github.com/ReserveAquiServices/api-reservas/internal/timezone"
	ucReservation "github.com/ReserveAquiServices/api-reservas/internal/usecase/reservation"
	"github.com/ReserveAquiServices/api-reservas/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	createUC   *ucReservation.CreateReservation
	cancelUC   *ucReservation.CancelReservation
	confirmUC  *ucReservation.ConfirmReservation
	completeUC *ucReservation.CompleteReservation
	linkUC     *ucReservation.LinkTable
	unlinkUC   *ucReservation.UnlinkTable
	listUC     *ucReservation.ListReservationsByDate
	repo       domain.Repository
}

func NewReservationHandler(
	createUC *ucReservation.CreateReservation,
	cancelUC *ucReservation.CancelReservation,
	confirmUC *ucReservation.ConfirmReservation,
	completeUC *ucReservation.CompleteReservation,
	linkUC *ucReservation.LinkTable,
	unlinkUC *ucReservation.UnlinkTable,
	listUC *ucReservation.ListReservationsByDate,
	repo domain.Repository,
) *ReservationHandler {
	return &ReservationHandler{
		createUC:   createUC,
		cancelUC:   cancelUC,
		confirmUC:  confirmUC,
		completeUC: completeUC,
		linkUC:     linkUC,
		unlinkUC:   unlinkUC,
		listUC:     listUC,
		repo:       repo,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	Date         string `json:"date" binding:"required"`
	Time         string `json:"time" binding:"required"`
	PartySize    int    `json:"party_size"`
	ContactName  string `json:"contact_name" binding:"required"`
	ContactPhone string `json:"contact_phone" binding:"required"`
	ContactEmail string `json:"contact_email"`
	Notes        string `json:"notes"`
}

type LinkTableRequest struct {
	TableID uint `json:"table_id" binding:"required"`
}

// ======================================================
// ERROR MAPPING
// ======================================================

var businessMessages = map[string]string{
	httperr.CodeLeadTimeViolation:    "A reserva deve ser feita com pelo menos 2 horas de antecedência.",
	httperr.CodeInvalidPartySize:     "A quantidade de pessoas deve ser maior que zero.",
	httperr.CodeDuplicateLink:        "Esta mesa já está vinculada à reserva.",
	httperr.CodeDuplicateTableNumber: "Já existe uma mesa com este número neste restaurante.",
	httperr.CodeNotCancellable:       "A reserva não pode mais ser cancelada.",
	httperr.CodeInvalidState:         "A reserva não permite esta transição de status.",
	"invalid_date_or_time":           "Data ou hora inválida.",
	"restaurant_not_found":           "Restaurante não encontrado.",
	"reservation_not_found":          "Reserva não encontrada.",
	"table_not_found":                "Mesa não encontrada.",
}

func writeBusinessError(c *gin.Context, err error) bool {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		return false
	}

	msg, ok := businessMessages[code]
	if !ok {
		msg = "Operação inválida."
	}

	switch code {
	case "restaurant_not_found", "reservation_not_found", "table_not_found":
		httperr.NotFound(c, code, msg)
	case httperr.CodeDuplicateLink, httperr.CodeDuplicateTableNumber:
		httperr.Conflict(c, code, msg)
	default:
		httperr.BadRequest(c, code, msg)
	}
	return true
}

// ======================================================
// CREATE (público; usuário anexado quando autenticado)
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	restaurantID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	if !validators.IsPhoneValid(req.ContactPhone) {
		httperr.BadRequest(c, "invalid_phone", "Telefone de contato inválido.")
		return
	}

	res, err := h.createUC.Execute(c.Request.Context(), ucReservation.CreateReservationInput{
		RestaurantID: restaurantID,
		UserID:       middleware.OptionalUserID(c),
		Date:         req.Date,
		Time:         req.Time,
		PartySize:    req.PartySize,
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
		Notes:        req.Notes,
	})
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_create_reservation", "Erro ao criar reserva.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"reservation":     res,
		"required_tables": domain.RequiredTables(res.PartySize),
	})
}

// ======================================================
// GET
// ======================================================

func (h *ReservationHandler) Get(c *gin.Context) {
	restaurantID, ok := paramID(c, "id")
	if !ok {
		return
	}
	reservationID, ok := paramID(c, "reservation_id")
	if !ok {
		return
	}

	res, err := h.repo.GetReservation(c.Request.Context(), restaurantID, reservationID)
	if err != nil {
		httperr.NotFound(c, "reservation_not_found", "Reserva não encontrada.")
		return
	}

	rest, err := h.repo.GetRestaurantByID(c.Request.Context(), restaurantID)
	if err != nil {
		httperr.Internal(c, "restaurant_not_found", "Restaurante não encontrado.")
		return
	}

	tables, err := h.repo.ListTablesForReservation(c.Request.Context(), res.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_tables", "Erro ao listar mesas da reserva.")
		return
	}

	now := timezone.NowIn(rest.Timezone)

	c.JSON(http.StatusOK, gin.H{
		"reservation":     res,
		"required_tables": domain.RequiredTables(res.PartySize),
		"can_cancel":      domain.CanCancel(res, now),
		"tables":          tables,
	})
}

// ======================================================
// LIST BY DATE
// ======================================================

func (h *ReservationHandler) ListByDate(c *gin.Context) {
	restaurantID, ok := paramID(c, "id")
	if !ok {
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	rest, err := h.repo.GetRestaurantByID(c.Request.Context(), restaurantID)
	if err != nil {
		httperr.NotFound(c, "restaurant_not_found", "Restaurante não encontrado.")
		return
	}

	date, err := timezone.ParseDate(dateStr, rest.Timezone)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	out, err := h.listUC.Execute(c.Request.Context(), restaurantID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_reservations", "Erro ao listar reservas.")
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// STATUS TRANSITIONS
// ======================================================

// Cancel exige vínculo com a reserva: o cliente que a criou, o dono do
// restaurante ou staff/admin. Clientes autenticados não cancelam reservas
// alheias.
func (h *ReservationHandler) Cancel(c *gin.Context) {
	if !h.canCancelAs(c) {
		return
	}
	h.transition(c, h.cancelUC.Execute)
}

// CancelByCode é o cancelamento do cliente anônimo: o código de
// confirmação recebido na criação funciona como credencial.
func (h *ReservationHandler) CancelByCode(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		httperr.BadRequest(c, "invalid_code", "Código de reserva inválido.")
		return
	}

	res, err := h.cancelUC.ExecuteByCode(
		c.Request.Context(),
		code,
		middleware.OptionalUserID(c),
	)
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_update_reservation", "Erro ao atualizar reserva.")
		return
	}

	httpresp.OK(c, res)
}

func (h *ReservationHandler) canCancelAs(c *gin.Context) bool {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	if role == "admin" || role == "staff" {
		return true
	}

	restaurantID, ok := paramID(c, "id")
	if !ok {
		return false
	}
	reservationID, ok := paramID(c, "reservation_id")
	if !ok {
		return false
	}

	res, err := h.repo.GetReservation(c.Request.Context(), restaurantID, reservationID)
	if err != nil {
		httperr.NotFound(c, "reservation_not_found", "Reserva não encontrada.")
		return false
	}

	if res.UserID != nil && *res.UserID == userID {
		return true
	}

	rest, err := h.repo.GetRestaurantByID(c.Request.Context(), restaurantID)
	if err != nil {
		httperr.NotFound(c, "restaurant_not_found", "Restaurante não encontrado.")
		return false
	}

	if rest.OwnerID == userID {
		return true
	}

	httperr.Forbidden(c, "not_reservation_owner", "Sem permissão para cancelar esta reserva.")
	return false
}

func (h *ReservationHandler) Confirm(c *gin.Context) {
	h.transition(c, h.confirmUC.Execute)
}

func (h *ReservationHandler) Complete(c *gin.Context) {
	h.transition(c, h.completeUC.Execute)
}

// ======================================================
// TABLE LINKS
// ======================================================

func (h *ReservationHandler) LinkTable(c *gin.Context) {
	restaurantID, ok := paramID(c, "id")
	if !ok {
		return
	}
	reservationID, ok := paramID(c, "reservation_id")
	if !ok {
		return
	}

	var req LinkTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	link, err := h.linkUC.Execute(
		c.Request.Context(),
		restaurantID,
		reservationID,
		req.TableID,
		middleware.OptionalUserID(c),
	)
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_link_table", "Erro ao vincular mesa.")
		return
	}

	httpresp.Created(c, link)
}

func (h *ReservationHandler) UnlinkTable(c *gin.Context) {
	restaurantID, ok := paramID(c, "id")
	if !ok {
		return
	}
	reservationID, ok := paramID(c, "reservation_id")
	if !ok {
		return
	}
	tableID, ok := paramID(c, "table_id")
	if !ok {
		return
	}

	err := h.unlinkUC.Execute(
		c.Request.Context(),
		restaurantID,
		reservationID,
		tableID,
		middleware.OptionalUserID(c),
	)
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_unlink_table", "Erro ao desvincular mesa.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *ReservationHandler) ListTables(c *gin.Context) {
	restaurantID, ok := paramID(c, "id")
	if !ok {
		return
	}
	reservationID, ok := paramID(c, "reservation_id")
	if !ok {
		return
	}

	res, err := h.repo.GetReservation(c.Request.Context(), restaurantID, reservationID)
	if err != nil {
		httperr.NotFound(c, "reservation_not_found", "Reserva não encontrada.")
		return
	}

	tables, err := h.repo.ListTablesForReservation(c.Request.Context(), res.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_tables", "Erro ao listar mesas da reserva.")
		return
	}

	httpresp.List(c, tables)
}

// ======================================================
// HELPERS
// ======================================================

func (h *ReservationHandler) transition(
	c *gin.Context,
	exec func(
		ctx context.Context,
		restaurantID uint,
		reservationID uint,
		actorID *uint,
	) (*models.Reservation, error),
) {
	restaurantID, ok := paramID(c, "id")
	if !ok {
		return
	}
	reservationID, ok := paramID(c, "reservation_id")
	if !ok {
		return
	}

	res, err := exec(
		c.Request.Context(),
		restaurantID,
		reservationID,
		middleware.OptionalUserID(c),
	)
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_update_reservation", "Erro ao atualizar reserva.")
		return
	}

	httpresp.OK(c, res)
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}
