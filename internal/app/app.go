package app

import (
	"dispatch-engine/config"
	"dispatch-engine/internal/notify"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Application holds core application dependencies.
type Application struct {
	Config      *config.Config
	DBPool      *pgxpool.Pool
	RedisClient *redis.Client
	Validator   *validator.Validate
	Notifier    notify.Notifier
}
