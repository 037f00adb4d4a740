// Package store abstracts the persistent command history used by the
// interactive mode. It is backed by a bolt database.
package store

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"time"

	bolt "go.etcd.io/bbolt"
)

// ErrNoMatchingCmd is the error returned when a Cmd query completes with no
// result.
var ErrNoMatchingCmd = errors.New("no matching command line")

// Cmd is an entry in the command history.
type Cmd struct {
	Text string
	Seq  int
}

// Store is the interface satisfied by the command history storage.
type Store interface {
	// NextCmdSeq returns the sequence number the next added command will get.
	NextCmdSeq() (int, error)
	// AddCmd adds a new command, returning its sequence number.
	AddCmd(text string) (int, error)
	// Cmd queries the command with the given sequence number.
	Cmd(seq int) (string, error)
	// CmdsWithSeq returns all commands with sequence numbers in [from, upto).
	CmdsWithSeq(from, upto int) ([]Cmd, error)
	// Close waits for all outstanding operations and closes the database.
	Close() error
}

var bucketCmd = []byte("cmd")

type dbStore struct {
	db *bolt.DB
}

// NewStore creates a Store backed by the named file, creating the file and
// the schema if needed.
func NewStore(name string) (Store, error) {
	db, err := bolt.Open(name, 0644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketCmd)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &dbStore{db}, nil
}

func (s *dbStore) Close() error {
	return s.db.Close()
}

func (s *dbStore) NextCmdSeq() (int, error) {
	var seq uint64
	err := s.db.View(func(tx *bolt.Tx) error {
		seq = tx.Bucket(bucketCmd).Sequence() + 1
		return nil
	})
	return int(seq), err
}

func (s *dbStore) AddCmd(text string) (int, error) {
	var seq uint64
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketCmd)
		var err error
		seq, err = b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), []byte(text))
	})
	return int(seq), err
}

func (s *dbStore) Cmd(seq int) (string, error) {
	var text string
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketCmd).Get(marshalSeq(uint64(seq)))
		if v == nil {
			return ErrNoMatchingCmd
		}
		text = string(v)
		return nil
	})
	return text, err
}

func (s *dbStore) CmdsWithSeq(from, upto int) ([]Cmd, error) {
	var cmds []Cmd
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketCmd).Cursor()
		for k, v := c.Seek(marshalSeq(uint64(from))); k != nil && unmarshalSeq(k) < uint64(upto); k, v = c.Next() {
			cmds = append(cmds, Cmd{Text: string(v), Seq: int(unmarshalSeq(k))})
		}
		return nil
	})
	return cmds, err
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

func unmarshalSeq(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}

// MustTempStore returns a Store backed by a temporary file, and a cleanup
// function that should be called when the Store is no longer used.
func MustTempStore() (Store, func()) {
	f, err := os.CreateTemp("", "sx.test")
	if err != nil {
		panic(fmt.Sprintf("open temp file: %v", err))
	}
	st, err := NewStore(f.Name())
	if err != nil {
		panic(fmt.Sprintf("create temp store: %v", err))
	}
	return st, func() {
		st.Close()
		f.Close()
		os.Remove(f.Name())
	}
}
