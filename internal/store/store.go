// Package store persists the stage history in a BoltDB file
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/pomo/internal/osutil"
	"github.com/ayoisaiah/pomo/internal/timeutil"
)

const stageBucket = "stages"

var _ DB = (*Client)(nil)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	// Create the bucket for storing data if it does not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(stageBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errOpenDB.Wrap(err)
	}

	return &Client{
		db,
	}, nil
}

// openDB creates or opens a database and locks it.
func openDB(dbPath string) (*bolt.DB, error) {
	err := os.MkdirAll(filepath.Dir(dbPath), osutil.DirPermission)
	if err != nil {
		return nil, errOpenDB.Wrap(err)
	}

	db, err := bolt.Open(
		dbPath,
		osutil.FilePermission,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errPomoRunning
		}

		return nil, errOpenDB.Wrap(err)
	}

	return db, nil
}

func (c *Client) PutRecord(r *Record) error {
	if r.EndedAt.IsZero() {
		return errMissingEndTime.Fmt(r.ID)
	}

	value, err := json.Marshal(r)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(stageBucket)).Put(timeutil.ToKey(r.EndedAt), value)
	})
}

func (c *Client) Records(since, until time.Time) ([]Record, error) {
	var records []Record

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(stageBucket)).Cursor()
		min := timeutil.ToKey(since)
		max := timeutil.ToKey(until)

		for k, v := cur.Seek(min); k != nil && bytes.Compare(k, max) <= 0; k, v = cur.Next() {
			var r Record

			if err := json.Unmarshal(v, &r); err != nil {
				return errCorruptRecord.Fmt(string(k)).Wrap(err)
			}

			records = append(records, r)
		}

		return nil
	})

	return records, err
}

func (c *Client) DeleteRecords(records []Record) error {
	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(stageBucket))

		for i := range records {
			if err := b.Delete(timeutil.ToKey(records[i].EndedAt)); err != nil {
				return err
			}
		}

		return nil
	})
}
