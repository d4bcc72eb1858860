package badger

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/tickerlens/internal/common"
	"github.com/ternarybob/tickerlens/internal/interfaces"
	"github.com/ternarybob/tickerlens/internal/models"
	"github.com/timshannon/badgerhold/v4"
)

// RecordStorage implements interfaces.RecordStorage on badgerhold
type RecordStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
	now    func() time.Time

	// serializes read-modify-write in Put and Update
	mu sync.Mutex
}

// Option configures a RecordStorage
type Option func(*RecordStorage)

// WithClock overrides the timestamp source
func WithClock(now func() time.Time) Option {
	return func(s *RecordStorage) {
		s.now = now
	}
}

// NewRecordStorage creates a record store on an open database
func NewRecordStorage(db *BadgerDB, logger arbor.ILogger, opts ...Option) *RecordStorage {
	s := &RecordStorage{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get retrieves the record for symbol (case-insensitive)
func (s *RecordStorage) Get(ctx context.Context, symbol string) (*models.AnalysisRecord, error) {
	var record models.AnalysisRecord
	err := s.db.Store().Get(common.NormalizeSymbol(symbol), &record)
	if errors.Is(err, badgerhold.ErrNotFound) {
		return nil, interfaces.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	return &record, nil
}

// Put stores record under its normalized symbol, replacing any previous record
func (s *RecordStorage) Put(ctx context.Context, record *models.AnalysisRecord) (*models.AnalysisRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *record
	stored.Symbol = common.NormalizeSymbol(record.Symbol)
	if stored.ID == "" {
		stored.ID = common.NewRecordID()
	}
	now := s.now()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	if err := s.db.Store().Upsert(stored.Symbol, &stored); err != nil {
		return nil, fmt.Errorf("failed to put record: %w", err)
	}

	s.logger.Debug().Str("symbol", stored.Symbol).Str("id", stored.ID).Msg("Stored analysis record")
	return &stored, nil
}

// Update merges update into the existing record for symbol
func (s *RecordStorage) Update(ctx context.Context, symbol string, update models.RecordUpdate) (*models.AnalysisRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := common.NormalizeSymbol(symbol)
	var record models.AnalysisRecord
	err := s.db.Store().Get(key, &record)
	if errors.Is(err, badgerhold.ErrNotFound) {
		return nil, interfaces.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	update.Apply(&record)
	record.UpdatedAt = s.now()

	if err := s.db.Store().Upsert(key, &record); err != nil {
		return nil, fmt.Errorf("failed to update record: %w", err)
	}

	s.logger.Debug().Str("symbol", key).Msg("Updated analysis record")
	return &record, nil
}

// List returns every stored record ordered by symbol
func (s *RecordStorage) List(ctx context.Context) ([]*models.AnalysisRecord, error) {
	var records []models.AnalysisRecord
	if err := s.db.Store().Find(&records, nil); err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	out := make([]*models.AnalysisRecord, len(records))
	for i := range records {
		out[i] = &records[i]
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out, nil
}

// Close closes the underlying database
func (s *RecordStorage) Close() error {
	return s.db.Close()
}
