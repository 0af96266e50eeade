package main

import (
	"database/sql"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"invenBack/internal/config"
	"invenBack/internal/handlers"
	"invenBack/internal/repositories"
	"invenBack/internal/services"
	"invenBack/utils"
)

type application struct {
	errorLog        *log.Logger
	infoLog         *log.Logger
	db              *sql.DB
	tokenManager    *utils.Manager
	sessions        *repositories.SessionStore
	userHandler     *handlers.UserHandler
	itemHandler     *handlers.ItemHandler
	activityHandler *handlers.ActivityHandler
}

func initializeApp(db *sql.DB, rdb *redis.Client, cfg config.Config, errorLog, infoLog *log.Logger) (*application, error) {
	accessTTL := time.Duration(cfg.Auth.AccessTTLMin) * time.Minute
	refreshTTL := time.Duration(cfg.Auth.RefreshTTLHours) * time.Hour
	if refreshTTL <= 0 {
		refreshTTL = 30 * 24 * time.Hour
	}

	tokenManager, err := utils.NewManager(cfg.Auth.SigningKey, accessTTL)
	if err != nil {
		return nil, err
	}
	sessions := &repositories.SessionStore{Client: rdb, TTL: refreshTTL}

	// Repositories
	userRepo := repositories.UserRepository{DB: db}
	itemRepo := repositories.ItemRepository{DB: db}
	activityRepo := repositories.ActivityRepository{DB: db}

	// Services
	activityService := &services.ActivityService{ActivityRepo: &activityRepo, ErrorLog: errorLog}
	itemService := &services.ItemService{ItemRepo: &itemRepo, Activity: activityService}
	userService := &services.UserService{
		UserRepo:     &userRepo,
		Sessions:     sessions,
		Activity:     activityService,
		TokenManager: tokenManager,
	}

	// Handlers
	userHandler := &handlers.UserHandler{Service: userService}
	itemHandler := &handlers.ItemHandler{Service: itemService}
	activityHandler := &handlers.ActivityHandler{Service: activityService}

	return &application{
		errorLog:        errorLog,
		infoLog:         infoLog,
		db:              db,
		tokenManager:    tokenManager,
		sessions:        sessions,
		userHandler:     userHandler,
		itemHandler:     itemHandler,
		activityHandler: activityHandler,
	}, nil
}
