package di

import (
	"context"
	"fmt"
	"log"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"se-server/api"
	"se-server/api/inference"
	"se-server/auth"
	"se-server/config"
	"se-server/dao/redis"
	"se-server/db"
	"se-server/forecasting"
	"se-server/publisher"
	"se-server/server"
	"se-server/server/handlers"
	services "se-server/service"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient              db.RedisClient
	RedisUserDao             *redis.RedisUserDAO
	RedisProjectDao          *redis.RedisProjectDAO
	RedisForecastDao         *redis.RedisForecastDAO
	TokenManager             *auth.TokenManager
	InferenceAPI             inference.InferenceAPI
	AlertPublisher           *publisher.AlertPublisher
	ProjectService           *services.ProjectService
	ForecastService          *services.ForecastService
	ForecastRefresherService *services.ForecastRefresherService
	MuxRouter                *mux.Router
	Router                   *server.Router
	SmartElectroHttpServer   *server.SmartElectroHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(cfg *config.Config) *Container {
	env := cfg.GetEnv()
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     cfg.GetRedisAddress(),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Initialize Redis client
	redisClient := db.NewKVRedisClient(ctx, redisInternalClient)
	if err := redisClient.Ping(); err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}

	// Initialize DAOs
	redisUserDao := redis.NewRedisUserDAO(redisClient)
	redisProjectDao := redis.NewRedisProjectDAO(redisClient)
	redisForecastDao := redis.NewRedisForecastDAO(redisClient)

	// Initialize token manager
	tokenManager := auth.NewTokenManager(
		cfg.GetJWTSecret(),
		time.Duration(cfg.GetTokenExpiryMinutes())*time.Minute,
	)

	// Initialize inference API - mock outside prod
	var inferenceAPI inference.InferenceAPI
	if env != "prod" {
		inferenceAPI = inference.NewInferenceApiClientMock()
		log.Printf("Using mock inference api")
	} else {
		log.Printf("Using prod inference api")
		httpClient := api.NewHTTPClient(cfg.Inference.BaseURL)
		if cfg.Inference.Token != "" {
			httpClient.Session.Login(cfg.Inference.Token)
		}
		inferenceAPI = inference.NewInferenceApiClient(httpClient)
	}

	// Initialize alert publisher (no-op when MQTT is disabled)
	alertPublisher, err := publisher.New(cfg.MQTT)
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to MQTT broker: %v", err))
	}

	// Initialize service layer
	projectService := services.NewProjectService(redisProjectDao)
	forecastService := services.NewForecastService(redisForecastDao, projectService)
	forecastRefresherService := services.NewForecastRefresherService(redisForecastDao)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(redisUserDao, tokenManager)
	projectHandler := handlers.NewProjectHandler(projectService)
	forecastHandler := handlers.NewForecastHandler(forecastService, forecasting.NewSampleGenerator(time.Now().UnixNano()))
	cableHandler := handlers.NewCableHandler()
	inferenceHandler := handlers.NewInferenceHandler(inferenceAPI, alertPublisher)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(
		authHandler,
		projectHandler,
		forecastHandler,
		cableHandler,
		inferenceHandler,
		tokenManager,
		muxRouter,
	)

	smartElectroHttpServer := server.NewSmartElectroHttpServer(router, muxRouter, cfg.GetListenAddress())

	return &Container{
		RedisClient:              redisClient,
		RedisUserDao:             redisUserDao,
		RedisProjectDao:          redisProjectDao,
		RedisForecastDao:         redisForecastDao,
		TokenManager:             tokenManager,
		InferenceAPI:             inferenceAPI,
		AlertPublisher:           alertPublisher,
		ProjectService:           projectService,
		ForecastService:          forecastService,
		ForecastRefresherService: forecastRefresherService,
		MuxRouter:                muxRouter,
		Router:                   router,
		SmartElectroHttpServer:   smartElectroHttpServer,
	}
}
