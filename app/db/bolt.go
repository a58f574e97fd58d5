package db

import (
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"
)

const bucketReports = "Reports"

// BoltStorage implements storage interface for BoltDB
type BoltStorage struct {
	db *bolt.DB
}

// GetReport from database
func (b *BoltStorage) GetReport(word string) (Record, error) {
	var res Record
	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketReports))
		jdata := bucket.Get([]byte(word))
		if len(jdata) == 0 {
			return ErrNotFound
		}
		if err := json.Unmarshal(jdata, &res); err != nil {
			return fmt.Errorf("unmarshal report: %w", err)
		}
		return nil
	})
	return res, err
}

// SaveReport to database
func (b *BoltStorage) SaveReport(record Record) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketReports))
		jdata, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		if err := bucket.Put([]byte(record.Word), jdata); err != nil {
			return fmt.Errorf("put report: %w", err)
		}
		return nil
	})
}

// NewBoltStorage creates BoltStorage instance and initialize buckets
func NewBoltStorage(db *bolt.DB) (*BoltStorage, error) {
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketReports))
		return err
	})
	if err != nil {
		return nil, err
	}
	return &BoltStorage{db: db}, nil
}
