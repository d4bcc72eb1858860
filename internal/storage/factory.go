package storage

import (
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/tickerlens/internal/common"
	"github.com/ternarybob/tickerlens/internal/interfaces"
	"github.com/ternarybob/tickerlens/internal/storage/badger"
	"github.com/ternarybob/tickerlens/internal/storage/memory"
)

// NewRecordStorage creates the record store selected by config
func NewRecordStorage(logger arbor.ILogger, config *common.Config) (interfaces.RecordStorage, error) {
	switch config.Storage.Type {
	case "", "memory":
		logger.Debug().Msg("Using in-memory record storage")
		return memory.NewRecordStorage(logger), nil
	case "badger":
		db, err := badger.NewBadgerDB(logger, &config.Storage.Badger)
		if err != nil {
			return nil, err
		}
		return badger.NewRecordStorage(db, logger), nil
	default:
		return nil, fmt.Errorf("unsupported storage type: %s (expected 'memory' or 'badger')", config.Storage.Type)
	}
}
