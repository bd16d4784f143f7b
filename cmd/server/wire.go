// File: cmd/server/wire.go
//go:build wireinject
// +build wireinject

package main

import (
	"log"

	"synapse_backend/internal/app"
	"synapse_backend/internal/auth"
	"synapse_backend/internal/config"
	"synapse_backend/internal/enrichment"
	"synapse_backend/internal/jobs"
	"synapse_backend/internal/listing"
	"synapse_backend/internal/notification"
	"synapse_backend/internal/places"
	"synapse_backend/internal/platform/database"
	"synapse_backend/internal/platform/logger"
	"synapse_backend/internal/user"

	"github.com/google/wire"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// initializeServer is the main Wire injector.
func initializeServer(cfg *config.Config) (*app.Server, func(), error) {
	wire.Build(
		// Platform Layer
		logger.New,
		database.NewGORM,
		provideCleanup,

		// Auth
		auth.NewTokenService,

		// Enrichment
		enrichment.NewHTTPExtractor,
		wire.Bind(new(enrichment.Extractor), new(*enrichment.HTTPExtractor)),
		enrichment.NewHTTPGeocoder,
		wire.Bind(new(enrichment.Geocoder), new(*enrichment.HTTPGeocoder)),
		enrichment.NewPipeline,
		wire.Bind(new(listing.Enricher), new(*enrichment.Pipeline)),

		// Users
		user.NewGORMRepository,
		user.NewService,
		user.NewHandler,

		// Listings
		listing.NewGORMRepository,
		listing.NewService,
		listing.NewHandler,

		// Notifications
		notification.NewGORMRepository,
		notification.NewService,
		notification.NewHandler,

		// Places proxy
		places.NewClient,
		places.NewHandler,

		// Jobs
		jobs.NewListingCloseJob,

		// Application Layer
		app.NewServer,
	)
	return nil, nil, nil
}

func provideCleanup(logger *zap.Logger, db *gorm.DB) func() {
	return func() {
		logger.Info("Executing cleanup tasks...")
		database.CloseGORMDB(db)
		if err := logger.Sync(); err != nil {
			log.Printf("ERROR: Failed to sync logger during cleanup: %v", err)
		}
		log.Println("Cleanup finished.")
	}
}
