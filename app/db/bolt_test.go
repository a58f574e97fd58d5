package db

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
)

func getBoltDB(t *testing.T) (*bolt.DB, func()) {
	tmpFile, err := os.CreateTemp("", "bolt_test")
	require.NoError(t, err)
	require.NoError(t, tmpFile.Close())
	boltDB, err := bolt.Open(tmpFile.Name(), 0600, nil)
	require.NoError(t, err)
	return boltDB, func() {
		boltDB.Close()
		os.Remove(tmpFile.Name())
	}
}

func getStorage(t *testing.T) (*BoltStorage, func()) {
	boltDB, cleanup := getBoltDB(t)
	storage, err := NewBoltStorage(boltDB)
	require.NoError(t, err)
	return storage, cleanup
}

func TestNewBoltStorage(t *testing.T) {
	boltDB, cleanup := getBoltDB(t)
	defer cleanup()
	_, err := NewBoltStorage(boltDB)
	require.NoError(t, err)
	err = boltDB.View(func(tx *bolt.Tx) error {
		assert.NotNil(t, tx.Bucket([]byte(bucketReports)))
		return nil
	})
	assert.NoError(t, err)
}

func TestBoltGetReport(t *testing.T) {
	t.Run("existing", func(t *testing.T) {
		storage, cleanup := getStorage(t)
		defer cleanup()
		record := getRecord()
		require.NoError(t, storage.SaveReport(record))

		res, err := storage.GetReport("hello")
		assert.NoError(t, err)
		assert.Equal(t, record, res)
	})
	t.Run("not found", func(t *testing.T) {
		storage, cleanup := getStorage(t)
		defer cleanup()
		_, err := storage.GetReport("hello")
		assert.ErrorIs(t, err, ErrNotFound)
	})
	t.Run("invalid JSON", func(t *testing.T) {
		storage, cleanup := getStorage(t)
		defer cleanup()
		require.NoError(t, storage.db.Update(func(tx *bolt.Tx) error {
			return tx.Bucket([]byte(bucketReports)).Put([]byte("hello"), []byte("NOT_JSON"))
		}))
		_, err := storage.GetReport("hello")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestBoltSaveReport(t *testing.T) {
	t.Run("overwrite", func(t *testing.T) {
		storage, cleanup := getStorage(t)
		defer cleanup()
		record := getRecord()
		require.NoError(t, storage.SaveReport(record))
		record.Text = "updated"
		require.NoError(t, storage.SaveReport(record))

		res, err := storage.GetReport("hello")
		assert.NoError(t, err)
		assert.Equal(t, "updated", res.Text)
	})
}
