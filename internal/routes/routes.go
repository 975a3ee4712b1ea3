package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/ReserveAquiServices/api-reservas/internal/audit"
	"github.com/ReserveAquiServices/api-reservas/internal/config"
	"github.com/ReserveAquiServices/api-reservas/internal/handlers"
	infraRepo "github.com/ReserveAquiServices/api-reservas/internal/infra/repository"
	"github.com/ReserveAquiServices/api-reservas/internal/middleware"
	ucReservation "github.com/ReserveAquiServices/api-reservas/internal/usecase/reservation"
	ucRestaurant "github.com/ReserveAquiServices/api-reservas/internal/usecase/restaurant"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	reservationRepo := infraRepo.NewReservationGormRepository(db)
	restaurantRepo := infraRepo.NewRestaurantGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	provisionTablesUC := ucRestaurant.NewProvisionTables(
		restaurantRepo,
		auditDispatcher,
	)

	createReservationUC := ucReservation.NewCreateReservation(
		reservationRepo,
		auditDispatcher,
	)

	cancelReservationUC := ucReservation.NewCancelReservation(
		reservationRepo,
		auditDispatcher,
	)

	confirmReservationUC := ucReservation.NewConfirmReservation(
		reservationRepo,
		auditDispatcher,
	)

	completeReservationUC := ucReservation.NewCompleteReservation(
		reservationRepo,
		auditDispatcher,
	)

	linkTableUC := ucReservation.NewLinkTable(
		reservationRepo,
		auditDispatcher,
	)

	unlinkTableUC := ucReservation.NewUnlinkTable(
		reservationRepo,
		auditDispatcher,
	)

	listReservationsUC := ucReservation.NewListReservationsByDate(
		reservationRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, rdb, cfg)
	meHandler := handlers.NewMeHandler(db)
	restaurantHandler := handlers.NewRestaurantHandler(db, provisionTablesUC)
	tableHandler := handlers.NewTableHandler(db)

	reservationHandler := handlers.NewReservationHandler(
		createReservationUC,
		cancelReservationUC,
		confirmReservationUC,
		completeReservationUC,
		linkTableUC,
		unlinkTableUC,
		listReservationsUC,
		reservationRepo,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/recover", authHandler.RecoverPassword)
		api.POST("/auth/reset", authHandler.ResetPassword)

		// ------------------------------
		// PÚBLICO
		// ------------------------------
		api.GET("/restaurants", restaurantHandler.List)
		api.GET("/restaurants/:id", restaurantHandler.Get)
		api.GET("/restaurants/:id/tables", tableHandler.List)

		// Reserva pública: anônima ou com usuário anexado via token.
		api.POST(
			"/restaurants/:id/reservations",
			middleware.OptionalAuth(cfg),
			reservationHandler.Create,
		)

		// Cancelamento anônimo: o código de confirmação é a credencial.
		api.PATCH(
			"/reservations/:code/cancel",
			middleware.OptionalAuth(cfg),
			reservationHandler.CancelByCode,
		)

		// ------------------------------
		// PRIVADO
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// Restaurantes (proprietário/admin)
			restricted := secured.Group("/")
			restricted.Use(middleware.RequireRoles("owner", "admin"))
			{
				restricted.POST("/restaurants", restaurantHandler.Create)
				restricted.PATCH("/restaurants/:id", restaurantHandler.Update)
				restricted.GET("/restaurants/:id/audit-logs", auditLogsHandler.List)
			}

			// Mesas (staff do restaurante)
			staff := secured.Group("/")
			staff.Use(middleware.RequireRoles("owner", "admin", "staff"))
			{
				staff.POST("/restaurants/:id/tables", tableHandler.Create)
				staff.PATCH("/restaurants/:id/tables/:table_id", tableHandler.UpdateStatus)

				staff.GET("/restaurants/:id/reservations", reservationHandler.ListByDate)
				staff.PATCH("/restaurants/:id/reservations/:reservation_id/confirm", reservationHandler.Confirm)
				staff.PATCH("/restaurants/:id/reservations/:reservation_id/complete", reservationHandler.Complete)

				staff.GET("/restaurants/:id/reservations/:reservation_id/tables", reservationHandler.ListTables)
				staff.POST("/restaurants/:id/reservations/:reservation_id/tables", reservationHandler.LinkTable)
				staff.DELETE("/restaurants/:id/reservations/:reservation_id/tables/:table_id", reservationHandler.UnlinkTable)
			}

			// Consulta vale para qualquer autenticado; o cancelamento
			// confere o vínculo com a reserva dentro do handler.
			secured.GET("/restaurants/:id/reservations/:reservation_id", reservationHandler.Get)
			secured.PATCH("/restaurants/:id/reservations/:reservation_id/cancel", reservationHandler.Cancel)
		}
	}
}
