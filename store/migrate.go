package store

import (
	"bytes"
	"encoding/json"

	"go.etcd.io/bbolt"

	"github.com/ayoisaiah/intervals/internal/models"
	"github.com/ayoisaiah/intervals/internal/routine"
	"github.com/ayoisaiah/intervals/internal/timeutil"
)

// legacyRoutinesKey held every routine in a single JSON array.
const legacyRoutinesKey = "@routines"

// migrateRoutines splits a legacy routine array into one key per routine.
// Routines saved under their own id win over legacy copies.
func migrateRoutines(tx *bbolt.Tx) error {
	bucket := tx.Bucket([]byte(routineBucket))

	v := bucket.Get([]byte(legacyRoutinesKey))
	if v == nil {
		return nil
	}

	var routines []routine.Routine

	err := json.Unmarshal(v, &routines)
	if err != nil {
		return err
	}

	for i := range routines {
		r := &routines[i]

		if r.ID == "" {
			r.ID = routine.NewID()
		}

		if bucket.Get([]byte(r.ID)) != nil {
			continue
		}

		b, err := json.Marshal(r)
		if err != nil {
			return err
		}

		err = bucket.Put([]byte(r.ID), b)
		if err != nil {
			return err
		}
	}

	return bucket.Delete([]byte(legacyRoutinesKey))
}

// migrateRuns rewrites run keys that do not use the fixed-width key layout.
func migrateRuns(tx *bbolt.Tx) error {
	bucket := tx.Bucket([]byte(runBucket))

	type rekey struct {
		from, to, value []byte
	}

	var pending []rekey

	cur := bucket.Cursor()

	for k, v := cur.First(); k != nil; k, v = cur.Next() {
		var run models.Run

		err := json.Unmarshal(v, &run)
		if err != nil {
			return err
		}

		newKey := timeutil.ToKey(run.StartTime)
		if bytes.Equal(k, newKey) {
			continue
		}

		pending = append(pending, rekey{
			from:  bytes.Clone(k),
			to:    newKey,
			value: bytes.Clone(v),
		})
	}

	for _, p := range pending {
		err := bucket.Delete(p.from)
		if err != nil {
			return err
		}

		err = bucket.Put(p.to, p.value)
		if err != nil {
			return err
		}
	}

	return nil
}

func migrate(tx *bbolt.Tx) error {
	err := migrateRoutines(tx)
	if err != nil {
		return err
	}

	return migrateRuns(tx)
}
