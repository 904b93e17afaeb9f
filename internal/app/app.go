package app

import (
	"net/http"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"household-hub-go/internal/client/openai"
	"household-hub-go/internal/client/openweather"
	"household-hub-go/internal/config"
	"household-hub-go/internal/db"
	familydomain "household-hub-go/internal/domain/family"
	laundrydomain "household-hub-go/internal/domain/laundry"
	mealsdomain "household-hub-go/internal/domain/meals"
	shoppingdomain "household-hub-go/internal/domain/shopping"
	tasksdomain "household-hub-go/internal/domain/tasks"
	userdomain "household-hub-go/internal/domain/user"
	weatherdomain "household-hub-go/internal/domain/weather"
	familyrepo "household-hub-go/internal/repository/postgres/family"
	mealsrepo "household-hub-go/internal/repository/postgres/meals"
	shoppingrepo "household-hub-go/internal/repository/postgres/shopping"
	tasksrepo "household-hub-go/internal/repository/postgres/tasks"
	userrepo "household-hub-go/internal/repository/postgres/user"
	"household-hub-go/internal/repository/rediscache"
	"household-hub-go/internal/transport/httpserver"
	"household-hub-go/internal/transport/httpserver/handler"
	"household-hub-go/pkg/logger"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
	redis      *redis.Client
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	log.Info("app: applying migrations")
	if err := db.Migrate(dbConn, log); err != nil {
		return nil, err
	}

	var redisClient *redis.Client
	var forecastCache weatherdomain.Cache
	if cfg.Redis.Enabled {
		log.Info("app: initializing redis", "addr", cfg.Redis.Addr)
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		forecastCache = rediscache.NewForecastCache(redisClient)
	}

	openaiClient := openai.New(cfg.OpenAI)
	weatherClient := openweather.New(cfg.Weather)

	users := userdomain.NewService(userrepo.NewPostgres(dbConn))
	families := familydomain.NewService(familyrepo.NewPostgres(dbConn))
	tasks := tasksdomain.NewService(tasksrepo.NewPostgres(dbConn))
	meals := mealsdomain.NewService(mealsrepo.NewPostgres(dbConn), openaiClient)
	shopping := shoppingdomain.NewService(shoppingrepo.NewPostgres(dbConn))
	laundry := laundrydomain.NewService(openaiClient)
	weather := weatherdomain.NewService(weatherClient, forecastCache, cfg.Weather.CacheTTL)

	handlers := handler.New(users, families, tasks, meals, shopping, laundry, weather, cfg.Weather, log)

	log.Info("app: initializing router")
	router := httpserver.NewRouter(cfg, handlers, log)

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
		redis:      redisClient,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			return err
		}
	}
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
