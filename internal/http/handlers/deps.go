package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bizhub/internal/config"
	"bizhub/internal/repos"
	"bizhub/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	Settings *services.SettingsService

	DashboardHandler  *DashboardHandler
	RegisterHandler   *RegisterHandler
	RestaurantHandler *RestaurantHandler
	InventoryHandler  *InventoryHandler
	SettingsHandler   *SettingsHandler
	ProfileHandler    *ProfileHandler
	WarehouseHandler  *WarehouseHandler
	HelpHandler       *HelpHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) (*Deps, error) {
	prodRepo := repos.NewProductRepo(db)
	saleRepo := repos.NewSaleRepo(db)
	menuRepo := repos.NewMenuRepo(db)
	userRepo := repos.NewUserRepo(db)

	settingsSvc, err := services.NewSettingsService(repos.NewSettingsRepo(db))
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	// The owner may have deleted the account; the services then answer not found.
	var ownerID string
	if u, err := userRepo.ByEmail(cfg.OwnerEmail); err == nil {
		ownerID = u.ID
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("load owner: %w", err)
	}

	return &Deps{
		Settings: settingsSvc,

		DashboardHandler: &DashboardHandler{
			Dash: services.NewDashboardService(repos.NewWidgetRepo(db), saleRepo),
		},
		RegisterHandler: &RegisterHandler{
			Register: services.NewRegisterService(prodRepo, saleRepo, cfg.PageSize),
		},
		RestaurantHandler: &RestaurantHandler{
			Restaurant: services.NewRestaurantService(menuRepo, saleRepo),
		},
		InventoryHandler: &InventoryHandler{
			Inv: services.NewInventoryService(prodRepo, cfg.PageSize),
		},
		SettingsHandler: &SettingsHandler{
			Settings: settingsSvc,
			Account:  services.NewAccountService(userRepo, ownerID),
		},
		ProfileHandler: &ProfileHandler{
			Profile: services.NewProfileService(userRepo, ownerID),
		},
		WarehouseHandler: &WarehouseHandler{
			Warehouse: services.NewWarehouseService(repos.NewWarehouseRepo(db)),
		},
		HelpHandler: &HelpHandler{
			Help: services.NewHelpService(repos.NewHelpRepo(db)),
		},
	}, nil
}

// ExpireSessions drops checkout sessions idle since before cutoff and reports
// how many went.
func (d *Deps) ExpireSessions(cutoff time.Time) int {
	return d.RegisterHandler.Register.ExpireIdle(cutoff) + d.RestaurantHandler.Restaurant.ExpireIdle(cutoff)
}
