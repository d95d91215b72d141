package main

import (
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Duvar1/vakit/internal/config"
	"github.com/Duvar1/vakit/internal/content"
	"github.com/Duvar1/vakit/internal/db"
	"github.com/Duvar1/vakit/internal/geoloc"
	"github.com/Duvar1/vakit/internal/heading"
	"github.com/Duvar1/vakit/internal/http/api"
	authapi "github.com/Duvar1/vakit/internal/http/api/mobile/auth/endpoints"
	contentapi "github.com/Duvar1/vakit/internal/http/api/mobile/content/endpoints"
	prayerapi "github.com/Duvar1/vakit/internal/http/api/mobile/prayer/endpoints"
	qiblaapi "github.com/Duvar1/vakit/internal/http/api/mobile/qibla/endpoints"
	quranapi "github.com/Duvar1/vakit/internal/http/api/mobile/quran/endpoints"
	referralapi "github.com/Duvar1/vakit/internal/http/api/mobile/referral/endpoints"
	stepsapi "github.com/Duvar1/vakit/internal/http/api/mobile/steps/endpoints"
	"github.com/Duvar1/vakit/internal/http/middleware"
	"github.com/Duvar1/vakit/internal/notify"
	"github.com/Duvar1/vakit/internal/prayer"
	"github.com/Duvar1/vakit/internal/quran"
	"github.com/Duvar1/vakit/internal/redis"
	"github.com/Duvar1/vakit/internal/referral"
	"github.com/Duvar1/vakit/internal/reminder"
	"github.com/Duvar1/vakit/internal/steps"
	"github.com/Duvar1/vakit/internal/storage"
	"github.com/Duvar1/vakit/internal/timings"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, cfg *config.Config, store db.Store, storageSystem storage.Storage, mqttClient mqtt.Client) {
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		ExposeHeaders: []string{
			"Content-Length",
		},
		AllowCredentials: false,
	}))

	// the JWT middleware resolves users through the injected store
	r.Use(middleware.InjectStore(store))

	// one fetch per second against the upstream timings API is plenty
	source := timings.NewRateLimitedSource(timings.NewAladhanSource(""), 1, 3)
	cache := redis.NewTimingsCache(redis.Rdb)
	prayerService := prayer.NewService(source, cache, cfg.TimingsCountry, cfg.TimingsMethod)

	schedulers := reminder.NewRegistry(func(deviceID string) notify.Notifier {
		return notify.NewMQTTNotifier(mqttClient, deviceID)
	})

	positions := geoloc.NewStore(geoloc.DefaultMaxStaleness)
	compasses := heading.NewManager(heading.NewSubscriber(mqttClient))

	quranClient := quran.NewClient()
	contentService := content.NewService(quranClient)
	referralService := referral.NewService(store, referral.DefaultReward, referral.DefaultPremiumThreshold)

	fitClient := steps.NewFitClient(steps.OAuthConfig(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL))
	stepsService := steps.NewService(fitClient, store)

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/mobile",
		Auth:   false,
	},
		authapi.AuthPublicModule(cfg.JWTSecret, store),
		contentapi.ContentPublicModule(contentService),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/mobile",
		Auth:      true,
		SecretKey: cfg.JWTSecret,
	},
		authapi.AuthSessionModule(cfg.JWTSecret, store, compasses),
		prayerapi.PrayerModule(store, prayerService, schedulers),
		qiblaapi.QiblaModule(positions, compasses),
		quranapi.QuranModule(store, quranClient),
		stepsapi.StepsModule(fitClient, stepsService),
		referralapi.ReferralModule(referralService),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/admin",
		Auth:      true,
		SecretKey: cfg.JWTSecret,
	},
		contentapi.ContentAdminModule(storageSystem),
	)

	// Static content
	if !cfg.UseSpaces {
		r.Static("/uploads", "./uploads")
	}
}
