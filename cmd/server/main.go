package main

import (
	"os"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Duvar1/vakit/internal/config"
	"github.com/Duvar1/vakit/internal/db"
	"github.com/Duvar1/vakit/internal/http/middleware"
	"github.com/Duvar1/vakit/internal/redis"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// initialize PostgreSQL
	if err := db.Init(cfg.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db init")
	}

	// run pending migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate")
	}

	store := db.NewStore(nil)

	// redis backs the per-city timings cache
	redis.InitRedis(cfg.RedisAddress, cfg.RedisUsername, cfg.RedisPassword)

	// MQTT carries alarm commands to devices and heading samples back
	var mqttClient mqtt.Client
	if cfg.MQTTBrokerURL != "" {
		middleware.SetBrokerURL(cfg.MQTTBrokerURL)
	}
	mqttClient, err = middleware.CreateMQTTClient("vakit-server")
	if err != nil {
		log.Fatal().Err(err).Msg("mqtt connect")
	}

	storageSystem := InitStorage(cfg)

	// set up gin router
	r := gin.Default()
	RegisterRoutes(r, cfg, store, storageSystem, mqttClient)

	log.Info().Str("address", cfg.ServerAddress).Msg("listening")
	if err := r.Run(cfg.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
