package storage

import (
	"time"

	"github.com/google/uuid"

	"mdharness/internal/config"
	"mdharness/internal/domain"
)

// Storage persists and loads recorded pathological runs (for the failures viewer).
type Storage interface {
	Save(record *domain.RunRecord) error
	Load() (*domain.RunRecord, error)
}

// JSONStorage stores the last run in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}

// NewRecord builds a record of one run. Only failed and errored outcomes are
// kept as details; passed cases are represented by the tally.
func NewRecord(corpusName, subject string, startedAt time.Time, duration time.Duration, tally domain.Tally, outcomes []domain.Outcome) *domain.RunRecord {
	details := make([]domain.Outcome, 0, tally.Failed+tally.Errored)
	for _, o := range outcomes {
		if o.Status != domain.StatusPassed {
			details = append(details, o)
		}
	}
	return &domain.RunRecord{
		ID:        uuid.New(),
		Corpus:    corpusName,
		Subject:   subject,
		StartedAt: startedAt,
		Duration:  duration.String(),
		Tally:     tally,
		Details:   details,
	}
}
