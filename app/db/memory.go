package db

import "sync"

type InMemoryStorage struct {
	reports map[string]Record
	mx      sync.RWMutex
}

func (d *InMemoryStorage) GetReport(word string) (Record, error) {
	d.mx.RLock()
	defer d.mx.RUnlock()
	record, ok := d.reports[word]
	if !ok {
		return Record{}, ErrNotFound
	}
	return record, nil
}

func (d *InMemoryStorage) SaveReport(record Record) error {
	d.mx.Lock()
	defer d.mx.Unlock()
	d.reports[record.Word] = record
	return nil
}

func NewInMemoryStorage() *InMemoryStorage {
	return &InMemoryStorage{reports: make(map[string]Record)}
}
