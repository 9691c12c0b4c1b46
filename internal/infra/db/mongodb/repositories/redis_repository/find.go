package redis_repository

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/anuntech/expense-backend/internal/domain/models"
	"github.com/anuntech/expense-backend/internal/infra/db/mongodb/helpers"
)

func (r *ReportArchiveRepository) Find(ctx context.Context, key string) (models.ReportFormat, []byte, error) {
	format, err := formatFromKey(key)
	if err != nil {
		return "", nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, helpers.RedisTimeout)
	defer cancel()

	value, err := r.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil, fmt.Errorf("%w: %s", models.ErrReportNotFound, key)
	}
	if err != nil {
		return "", nil, fmt.Errorf("find report %s: %w", key, err)
	}

	payload, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return "", nil, fmt.Errorf("decode report %s: %w", key, err)
	}

	return format, payload, nil
}

func formatFromKey(key string) (models.ReportFormat, error) {
	parts := strings.Split(key, ":")
	if len(parts) != 3 || parts[0] != keyPrefix || parts[2] == "" {
		return "", fmt.Errorf("%w: %s", models.ErrReportNotFound, key)
	}
	format, err := models.ParseReportFormat(parts[1])
	if err != nil {
		return "", fmt.Errorf("%w: %s", models.ErrReportNotFound, key)
	}
	return format, nil
}
