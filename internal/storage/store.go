package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/pders01/tmr/internal/debuglog"
	"github.com/pders01/tmr/internal/timer"
)

var (
	stateBucket    = []byte("state")
	sessionsBucket = []byte("sessions")

	snapshotKey = []byte("current")
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

type Store struct {
	db *bolt.DB
}

func NewStore(dbPath string, timeout time.Duration) (*Store, error) {
	if timeout <= 0 {
		timeout = 1 * time.Second
	}
	db, err := bolt.Open(dbPath, 0o600, &bolt.Options{Timeout: timeout})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{stateBucket, sessionsBucket} {
			if _, createErr := tx.CreateBucketIfNotExists(bucket); createErr != nil {
				return createErr
			}
		}
		return nil
	})

	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating buckets: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Path() string {
	return s.db.Path()
}

func (s *Store) SaveSnapshot(snap timer.Snapshot) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		data, err := json.Marshal(snap)
		if err != nil {
			return err
		}
		return tx.Bucket(stateBucket).Put(snapshotKey, data)
	})
}

func (s *Store) LoadSnapshot() (timer.Snapshot, error) {
	var snap timer.Snapshot
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(stateBucket).Get(snapshotKey)
		if data == nil {
			return fmt.Errorf("snapshot: %w", ErrNotFound)
		}
		return json.Unmarshal(data, &snap)
	})
	return snap, err
}

func (s *Store) ClearSnapshot() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(stateBucket).Delete(snapshotKey)
	})
}

// AppendSession stores a finished session. Sessions without an ID get one from
// the bucket sequence.
func (s *Store) AppendSession(session *Session) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(sessionsBucket)
		if session.ID == "" {
			seq, err := b.NextSequence()
			if err != nil {
				return err
			}
			session.ID = fmt.Sprintf("%020d", seq)
		}
		data, err := json.Marshal(session)
		if err != nil {
			return err
		}
		return b.Put([]byte(session.ID), data)
	})
}

// RecentSessions returns up to limit sessions, newest first. A limit of zero
// or less returns all of them.
func (s *Store) RecentSessions(limit int) ([]*Session, error) {
	var sessions []*Session
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(sessionsBucket)
		return b.ForEach(func(k []byte, v []byte) error {
			var session Session
			if err := json.Unmarshal(v, &session); err != nil {
				debuglog.Warnf("skipping unreadable session %s: %v", k, err)
				return nil
			}
			sessions = append(sessions, &session)
			return nil
		})
	})
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].EndedAt.After(sessions[j].EndedAt)
	})
	if limit > 0 && len(sessions) > limit {
		sessions = sessions[:limit]
	}
	return sessions, err
}

func (s *Store) ClearSessions() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(sessionsBucket); err != nil {
			return err
		}
		_, err := tx.CreateBucket(sessionsBucket)
		return err
	})
}
