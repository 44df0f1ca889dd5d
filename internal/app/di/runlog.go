package di

import (
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/rushilshah11/automated-financial-data-pipeline/internal/feature/digest/usecase"
	"github.com/rushilshah11/automated-financial-data-pipeline/internal/platform/storage"
)

// NewRunLogSink creates a RunLogSink implementation.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to the local filesystem so run summaries are
// never silently lost.
func NewRunLogSink(rdb *redis.Client) usecase.RunLogSink {
	if rdb != nil {
		return storage.NewRunLogRedis(rdb, "runlog", 0)
	}
	return storage.NewRunLogFile(os.Getenv("RUN_LOG_DIR"))
}
