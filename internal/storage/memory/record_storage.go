// Package memory holds analysis records in process memory. Records are lost on restart.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/tickerlens/internal/common"
	"github.com/ternarybob/tickerlens/internal/interfaces"
	"github.com/ternarybob/tickerlens/internal/models"
)

// RecordStorage implements interfaces.RecordStorage with a map
type RecordStorage struct {
	mu      sync.RWMutex
	records map[string]*models.AnalysisRecord
	logger  arbor.ILogger
	now     func() time.Time
}

// Option configures a RecordStorage
type Option func(*RecordStorage)

// WithClock overrides the timestamp source
func WithClock(now func() time.Time) Option {
	return func(s *RecordStorage) {
		s.now = now
	}
}

// NewRecordStorage creates an empty in-memory store
func NewRecordStorage(logger arbor.ILogger, opts ...Option) *RecordStorage {
	s := &RecordStorage{
		records: make(map[string]*models.AnalysisRecord),
		logger:  logger,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns a deep copy of the record for symbol
func (s *RecordStorage) Get(ctx context.Context, symbol string) (*models.AnalysisRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[common.NormalizeSymbol(symbol)]
	if !ok {
		return nil, interfaces.ErrRecordNotFound
	}
	return record.Clone(), nil
}

// Put stores a copy of record, replacing any previous record for the symbol
func (s *RecordStorage) Put(ctx context.Context, record *models.AnalysisRecord) (*models.AnalysisRecord, error) {
	stored := record.Clone()
	stored.Symbol = common.NormalizeSymbol(record.Symbol)
	if stored.ID == "" {
		stored.ID = common.NewRecordID()
	}

	s.mu.Lock()
	now := s.now()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	s.records[stored.Symbol] = stored
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Debug().Str("symbol", stored.Symbol).Str("id", stored.ID).Msg("Stored analysis record")
	}

	return stored.Clone(), nil
}

// Update merges update into the record for symbol
func (s *RecordStorage) Update(ctx context.Context, symbol string, update models.RecordUpdate) (*models.AnalysisRecord, error) {
	key := common.NormalizeSymbol(symbol)

	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[key]
	if !ok {
		return nil, interfaces.ErrRecordNotFound
	}
	update.Apply(record)
	record.UpdatedAt = s.now()

	return record.Clone(), nil
}

// List returns copies of all records ordered by symbol
func (s *RecordStorage) List(ctx context.Context) ([]*models.AnalysisRecord, error) {
	s.mu.RLock()
	out := make([]*models.AnalysisRecord, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r.Clone())
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out, nil
}

// Close is a no-op
func (s *RecordStorage) Close() error {
	return nil
}
