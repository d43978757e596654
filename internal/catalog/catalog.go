// Package catalog answers the read side of the game catalog: filtered and
// ordered listings of games, publishers and genres.
package catalog

import (
	"strings"
	"time"

	"gamehub/backend/internal/logger"
	"gamehub/backend/internal/metrics"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewService(db *gorm.DB, log *logger.Logger) *Service {
	return &Service{db: db, log: log.With(zap.String("service", "catalog"))}
}

// observe records the latency of one catalog operation.
func observe(operation string) func() {
	start := time.Now()
	return func() {
		metrics.CatalogQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching s anywhere, case folded.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}
