package db

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

const prefixReport = "report:"

type RedisStorage struct {
	db *redis.Client
}

// GetReport from redis
func (s *RedisStorage) GetReport(word string) (Record, error) {
	data, err := s.db.Get(context.Background(), prefixReport+word).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Record{}, ErrNotFound
		}
		return Record{}, fmt.Errorf("fetching report: %w", err)
	}
	var record Record
	if jerr := json.NewDecoder(bytes.NewBufferString(data)).Decode(&record); jerr != nil {
		return record, fmt.Errorf("unmarshal report: %w", jerr)
	}
	return record, nil
}

// SaveReport to redis
func (s *RedisStorage) SaveReport(record Record) error {
	jdata, jerr := json.Marshal(record)
	if jerr != nil {
		return fmt.Errorf("marshal report: %w", jerr)
	}
	set := s.db.Set(context.Background(), prefixReport+record.Word, string(jdata), 0)
	if err := set.Err(); err != nil {
		return fmt.Errorf("saving report: %w", err)
	}
	return nil
}

// Close closes redis client
func (s *RedisStorage) Close() error {
	return s.db.Close()
}

// NewRedisStorage creates RedisStorage with given url
func NewRedisStorage(url string) (*RedisStorage, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisStorage{db: rdb}, nil
}
