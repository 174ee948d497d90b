// Package store connects to the data store and manages routines and runs
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/intervals/internal/models"
	"github.com/ayoisaiah/intervals/internal/osutil"
	"github.com/ayoisaiah/intervals/internal/routine"
	"github.com/ayoisaiah/intervals/internal/timeutil"
)

const (
	routineBucket = "routines"
	runBucket     = "runs"
	metaBucket    = "meta"

	// seededKey is set once the preset routines have been offered.
	seededKey = "seeded"
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
	path string
}

func (c *Client) GetRoutine(id string) (*routine.Routine, error) {
	var r routine.Routine

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(routineBucket)).Get([]byte(id))
		if v == nil {
			return ErrRoutineNotFound.Fmt(id)
		}

		return json.Unmarshal(v, &r)
	})
	if err != nil {
		return nil, err
	}

	return &r, nil
}

func (c *Client) ListRoutines() ([]routine.Routine, error) {
	var routines []routine.Routine

	err := c.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(routineBucket)).ForEach(func(_, v []byte) error {
			var r routine.Routine

			if err := json.Unmarshal(v, &r); err != nil {
				return err
			}

			routines = append(routines, r)

			return nil
		})
	})

	return routines, err
}

func (c *Client) SaveRoutine(r *routine.Routine) error {
	if err := r.ValidateForSave(); err != nil {
		return errInvalidRoutine.Fmt(r.Name).Wrap(err)
	}

	value, err := json.Marshal(r)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(routineBucket)).Put([]byte(r.ID), value)
	})
}

func (c *Client) ReplaceRoutines(routines []routine.Routine) error {
	for i := range routines {
		if err := routines[i].ValidateForSave(); err != nil {
			return errInvalidRoutine.Fmt(routines[i].Name).Wrap(err)
		}
	}

	return c.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket([]byte(routineBucket)); err != nil {
			return err
		}

		b, err := tx.CreateBucket([]byte(routineBucket))
		if err != nil {
			return err
		}

		return putRoutines(b, routines)
	})
}

func (c *Client) DeleteRoutine(id string) error {
	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(routineBucket))

		if b.Get([]byte(id)) == nil {
			return ErrRoutineNotFound.Fmt(id)
		}

		return b.Delete([]byte(id))
	})
}

func (c *Client) SeedRoutines(routines []routine.Routine) (bool, error) {
	var seeded bool

	err := c.Update(func(tx *bolt.Tx) error {
		meta := tx.Bucket([]byte(metaBucket))
		if meta.Get([]byte(seededKey)) != nil {
			return nil
		}

		if err := meta.Put([]byte(seededKey), []byte("true")); err != nil {
			return err
		}

		// a store created before seeding was tracked keeps its routines
		b := tx.Bucket([]byte(routineBucket))
		if k, _ := b.Cursor().First(); k != nil {
			return nil
		}

		seeded = len(routines) > 0

		return putRoutines(b, routines)
	})

	return seeded, err
}

func (c *Client) SaveRun(run *models.Run) error {
	key := timeutil.ToKey(run.StartTime)

	value, err := json.Marshal(run)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(runBucket)).Put(key, value)
	})
}

func (c *Client) GetRuns(since, until time.Time) ([]models.Run, error) {
	var b [][]byte

	err := c.View(func(tx *bolt.Tx) error {
		c := tx.Bucket([]byte(runBucket)).Cursor()
		lower := timeutil.ToKey(since)
		upper := timeutil.ToKey(until)

		//nolint:ineffassign,staticcheck // due to how boltdb works
		sk, sv := c.Seek(lower)
		// get the previous run so as to check if
		// it was ended within the specified time bounds
		pk, pv := c.Prev()
		if pk != nil {
			var run models.Run

			err := json.Unmarshal(pv, &run)
			if err != nil {
				return err
			}

			if run.EndTime.After(since) {
				sk, sv = pk, pv
			} else {
				sk, sv = c.Next()
			}
		} else {
			sk, sv = c.Seek(lower)
		}

		for k, v := sk, sv; k != nil && bytes.Compare(k, upper) <= 0; k, v = c.Next() {
			b = append(b, v)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	runs := make([]models.Run, 0, len(b))

	for _, v := range b {
		var run models.Run

		if err := json.Unmarshal(v, &run); err != nil {
			return nil, err
		}

		runs = append(runs, run)
	}

	return runs, nil
}

func (c *Client) Open() error {
	db, err := openDB(c.path)
	if err != nil {
		return err
	}

	c.DB = db

	return nil
}

func putRoutines(b *bolt.Bucket, routines []routine.Routine) error {
	for i := range routines {
		value, err := json.Marshal(&routines[i])
		if err != nil {
			return err
		}

		if err := b.Put([]byte(routines[i].ID), value); err != nil {
			return err
		}
	}

	return nil
}

// open creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	db, err := bolt.Open(
		pathToDB,
		osutil.FilePermission,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errIntervalsRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	// Create the necessary buckets for storing data if they do not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{routineBucket, runBucket, metaBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}

		return migrate(tx)
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("preparing database: %w", err)
	}

	return &Client{
		DB:   db,
		path: dbPath,
	}, nil
}
