package usecase

import (
	"context"

	"candidate-search-backend/pkg/redis"

	"github.com/jackc/pgx/v5/pgxpool"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	db *pgxpool.Pool
}

func NewHealthUsecase(db *pgxpool.Pool) HealthUsecase {
	return &healthUsecase{db: db}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	status := map[string]string{
		"status":   "ok",
		"database": "ok",
		"redis":    "ok",
	}

	if err := u.db.Ping(ctx); err != nil {
		status["status"] = "degraded"
		status["database"] = "unreachable"
	}
	if err := redis.HealthCheck(ctx); err != nil {
		status["redis"] = "unavailable"
	}
	return status
}
