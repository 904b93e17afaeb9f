package handler

import (
	"net/http"

	"household-hub-go/internal/config"
	familydomain "household-hub-go/internal/domain/family"
	laundrydomain "household-hub-go/internal/domain/laundry"
	mealsdomain "household-hub-go/internal/domain/meals"
	shoppingdomain "household-hub-go/internal/domain/shopping"
	tasksdomain "household-hub-go/internal/domain/tasks"
	userdomain "household-hub-go/internal/domain/user"
	weatherdomain "household-hub-go/internal/domain/weather"
	"household-hub-go/pkg/logger"
)

type Handlers struct {
	Users    *userdomain.Service
	Families *familydomain.Service
	Tasks    *tasksdomain.Service
	Meals    *mealsdomain.Service
	Shopping *shoppingdomain.Service
	Laundry  *laundrydomain.Service
	Weather  *weatherdomain.Service

	weatherCfg config.WeatherConfig
	log        logger.Logger
}

func New(
	users *userdomain.Service,
	families *familydomain.Service,
	tasks *tasksdomain.Service,
	meals *mealsdomain.Service,
	shopping *shoppingdomain.Service,
	laundry *laundrydomain.Service,
	weather *weatherdomain.Service,
	weatherCfg config.WeatherConfig,
	log logger.Logger,
) *Handlers {
	return &Handlers{
		Users:      users,
		Families:   families,
		Tasks:      tasks,
		Meals:      meals,
		Shopping:   shopping,
		Laundry:    laundry,
		Weather:    weather,
		weatherCfg: weatherCfg,
		log:        log,
	}
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
