package issuance

import (
	"context"
	"fmt"
	"sync"
)

var _ Repository = &MemoryRepository{}

// MemoryRepository keeps issuance records for the life of the process.
type MemoryRepository struct {
	mu      sync.Mutex
	records map[string]Record
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		records: map[string]Record{},
	}
}

func (m *MemoryRepository) GetIssuanceRecord(ctx context.Context, phoneNumber string) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.records[phoneNumber]
	if !ok {
		return Record{}, NewRecordDoesNotExistError(fmt.Sprintf("No issuance record for %s", phoneNumber), nil)
	}

	return record, nil
}

func (m *MemoryRepository) CreateIssuanceRecord(ctx context.Context, record Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[record.PhoneNumber]; ok {
		return NewRecordAlreadyExistsError(fmt.Sprintf("Issuance record for %s already exists", record.PhoneNumber), nil)
	}
	m.records[record.PhoneNumber] = record

	return nil
}

func (m *MemoryRepository) DeleteIssuanceRecord(ctx context.Context, phoneNumber string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.records, phoneNumber)

	return nil
}
