package database

// DataStore defines the unified interface for all data operations needed by the
// services, TUI and CLI. Consumers that only read can depend on RecordReader.
type DataStore interface {
	RecordRepository
}

// Compile-time verification that *Repository implements DataStore
var _ DataStore = (*Repository)(nil)
