// Package redis_repository archives rendered reports in Redis for later download.
package redis_repository

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/anuntech/expense-backend/internal/domain/models"
	"github.com/anuntech/expense-backend/internal/infra/db/mongodb/helpers"
)

const keyPrefix = "report"

type ReportArchiveRepository struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewReportArchiveRepository(client *redis.Client, ttl time.Duration) *ReportArchiveRepository {
	return &ReportArchiveRepository{
		Client: client,
		TTL:    ttl,
	}
}

// ArchiveKey is content addressed, so saving the same artifact twice refreshes one entry.
func ArchiveKey(format models.ReportFormat, payload []byte) string {
	sum := sha256.Sum256(payload)
	return fmt.Sprintf("%s:%s:%s", keyPrefix, format, hex.EncodeToString(sum[:]))
}

func (r *ReportArchiveRepository) Save(ctx context.Context, format models.ReportFormat, payload []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, helpers.RedisTimeout)
	defer cancel()

	key := ArchiveKey(format, payload)
	encoded := base64.StdEncoding.EncodeToString(payload)

	if err := r.Client.Set(ctx, key, encoded, r.TTL).Err(); err != nil {
		return "", fmt.Errorf("save report %s: %w", key, err)
	}

	return key, nil
}
