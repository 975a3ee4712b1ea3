package restaurant

import (
	"context"

	"github.com/ReserveAquiServices/api-reservas/internal/audit"
	rsv "github.com/ReserveAquiServices/api-reservas/internal/domain/reservation"
	domain "github.com/ReserveAquiServices/api-reservas/internal/domain/restaurant"
	"github.com/ReserveAquiServices/api-reservas/internal/httperr"
	"github.com/ReserveAquiServices/api-reservas/internal/models"
)

// ProvisionTables cria as mesas que faltam para os números 1..TableCount
// existirem. Substitui o gatilho reativo do sistema de origem por uma
// chamada síncrona explícita: nunca apaga nem renumera mesas existentes,
// apenas preenche os números ausentes. Mesas criadas manualmente dentro
// da faixa são respeitadas. Chamável repetidas vezes.
type ProvisionTables struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewProvisionTables(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ProvisionTables {
	return &ProvisionTables{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ProvisionTables) Execute(
	ctx context.Context,
	restaurantID uint,
	actorID *uint,
) (int, error) {

	rest, err := uc.repo.GetByID(ctx, restaurantID)
	if err != nil {
		return 0, err
	}

	numbers, err := uc.repo.ListTableNumbers(ctx, restaurantID)
	if err != nil {
		return 0, err
	}

	taken := make(map[int]bool, len(numbers))
	for _, n := range numbers {
		taken[n] = true
	}

	var missing []*models.Table
	for number := 1; number <= rest.TableCount; number++ {
		if taken[number] {
			continue
		}
		missing = append(missing, &models.Table{
			RestaurantID: restaurantID,
			Number:       number,
			Capacity:     rsv.TableCapacity,
			Status:       "available",
			Active:       true,
		})
	}

	if len(missing) == 0 {
		return 0, nil
	}

	// Lote transacional: uma corrida com outro escritor bate no índice
	// único e nenhuma mesa fica gravada pela metade.
	if err := uc.repo.CreateTables(ctx, missing); err != nil {
		if httperr.IsUniqueViolation(err) {
			return 0, httperr.ErrBusiness(httperr.CodeDuplicateTableNumber)
		}
		return 0, err
	}

	uc.audit.Dispatch(audit.Event{
		RestaurantID: restaurantID,
		UserID:       actorID,
		Action:       "tables_provisioned",
		Entity:       "restaurant",
		EntityID:     &rest.ID,
		Metadata:     map[string]any{"created": len(missing), "target": rest.TableCount},
	})

	return len(missing), nil
}
