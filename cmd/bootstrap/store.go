package bootstrap

import (
	"context"
	"fmt"

	"go-medical-appointment/config"
	domainRepo "go-medical-appointment/internal/domain/repository"
	"go-medical-appointment/internal/infrastructure/cache"
	"go-medical-appointment/internal/infrastructure/database"
	"go-medical-appointment/internal/infrastructure/nosql"
	"go-medical-appointment/internal/repository"
)

// initializeRepository connects to the configured store once per process and
// returns the repository the usecase receives.
func (app *App) initializeRepository(ctx context.Context) (domainRepo.AppointmentRepository, error) {
	cfg := app.Config

	switch cfg.Store.Driver {
	case config.StoreDriverDynamoDB:
		client, err := nosql.NewDynamoDBClient(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, fmt.Errorf("failed to configure DynamoDB: %w", err)
		}
		return repository.NewAppointmentDynamoDBRepository(client, cfg.DynamoDB.Table), nil

	case config.StoreDriverRedis:
		client, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = client
		return repository.NewAppointmentRedisRepository(client, cfg.Redis.KeyPrefix), nil

	case config.StoreDriverPostgres:
		db, err := database.NewPostgresConnection(cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		app.DB = db
		return repository.NewAppointmentPostgresRepository(db), nil

	case config.StoreDriverMemory:
		app.Log.Warn("Using in-memory appointment store; records are lost on restart")
		return repository.NewAppointmentMemoryRepository(), nil
	}

	return nil, fmt.Errorf("%w: %s", config.ErrUnknownStoreDriver, cfg.Store.Driver)
}
