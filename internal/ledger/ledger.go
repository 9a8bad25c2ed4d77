package ledger

import (
	"errors"
	"fmt"
	"sync"
)

// ErrKeyNotFound is returned by GetState when no record exists under a key.
var ErrKeyNotFound = errors.New("key not found in ledger")

// Write is a single pending key/value update.
type Write struct {
	Key   string
	Value []byte
}

// StateStore defines the transactional key-value ledger the auction
// system runs on. PutBatch applies all writes or none of them;
// serialization of concurrent invocations is the store's responsibility.
type StateStore interface {
	GetState(key string) ([]byte, error)
	PutState(key string, value []byte) error
	PutBatch(writes []Write) error
}

// MemoryLedger is a concurrency-safe in-memory implementation of StateStore
type MemoryLedger struct {
	mu    sync.RWMutex
	state map[string][]byte // key -> serialized record
}

// NewMemoryLedger creates a new in-memory ledger instance
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		state: make(map[string][]byte),
	}
}

// GetState returns a copy of the record stored under key
func (l *MemoryLedger) GetState(key string) ([]byte, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	value, ok := l.state[key]
	if !ok {
		return nil, fmt.Errorf("get state %s: %w", key, ErrKeyNotFound)
	}
	return append([]byte(nil), value...), nil
}

// PutState stores a single record under key
func (l *MemoryLedger) PutState(key string, value []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.put(key, value)
}

// PutBatch applies all writes as one unit. Validation runs before any
// mutation so a bad write leaves the ledger untouched.
func (l *MemoryLedger) PutBatch(writes []Write) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, w := range writes {
		if err := validateWrite(w.Key, w.Value); err != nil {
			return fmt.Errorf("put batch: %w", err)
		}
	}
	for _, w := range writes {
		l.state[w.Key] = append([]byte(nil), w.Value...)
	}
	return nil
}

// put stores a defensive copy; callers must hold the write lock.
func (l *MemoryLedger) put(key string, value []byte) error {
	if err := validateWrite(key, value); err != nil {
		return fmt.Errorf("put state: %w", err)
	}
	l.state[key] = append([]byte(nil), value...)
	return nil
}

func validateWrite(key string, value []byte) error {
	if key == "" {
		return errors.New("empty key")
	}
	if len(value) == 0 {
		return fmt.Errorf("empty value for key %s", key)
	}
	return nil
}
