package storage

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/dgraph-io/badger/v4"
	"github.com/hailam/othello/internal/othello"
)

// Storage keys
const (
	boardPrefix  = "board/"
	maxNameBytes = 128
)

var (
	// ErrBoardNotFound is returned when no board is stored under a name.
	ErrBoardNotFound = errors.New("storage: board not found")

	// ErrInvalidName is returned for empty, overlong or non-printable names.
	ErrInvalidName = errors.New("storage: invalid board name")

	// ErrCorruptValue is returned when a stored value is not exactly one
	// 64-bit board.
	ErrCorruptValue = errors.New("storage: stored value is not an 8-byte board")
)

// Options configures Open.
type Options struct {
	// Dir is the database directory. An empty Dir keeps everything in memory.
	Dir string

	// Logger receives badger's internal log output. Nil disables it.
	Logger *slog.Logger
}

// Storage wraps BadgerDB for persistent storage of named boards. Each board
// is stored as its raw value, 8 bytes big-endian.
type Storage struct {
	db *badger.DB
}

// NewStorage opens the database in the platform data directory.
func NewStorage(logger *slog.Logger) (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(Options{Dir: dbDir, Logger: logger})
}

// Open opens or creates a database.
func Open(opts Options) (*Storage, error) {
	bopts := badger.DefaultOptions(opts.Dir)
	if opts.Dir == "" {
		bopts = bopts.WithInMemory(true)
	}
	bopts.Logger = nil // Disable logging
	if opts.Logger != nil {
		bopts.Logger = newBadgerLogger(opts.Logger)
	}

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("storage: open %q: %w", opts.Dir, err)
	}

	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func validateName(name string) error {
	if name == "" || len(name) > maxNameBytes {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	for _, r := range name {
		if unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return fmt.Errorf("%w: %q", ErrInvalidName, name)
		}
	}
	return nil
}

func boardKey(name string) []byte {
	return []byte(boardPrefix + name)
}

func encodeBoard(b othello.Bitboard) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], b.Raw())
	return buf[:]
}

func decodeBoard(val []byte) (othello.Bitboard, error) {
	if len(val) != 8 {
		return othello.Empty, fmt.Errorf("%w: %d bytes", ErrCorruptValue, len(val))
	}
	return othello.FromRaw(binary.BigEndian.Uint64(val)), nil
}

// SaveBoard stores b under name, replacing any previous board.
func (s *Storage) SaveBoard(name string, b othello.Bitboard) error {
	if err := validateName(name); err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(boardKey(name), encodeBoard(b))
	})
}

// LoadBoard returns the board stored under name.
func (s *Storage) LoadBoard(name string) (othello.Bitboard, error) {
	if err := validateName(name); err != nil {
		return othello.Empty, err
	}

	var b othello.Bitboard
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(boardKey(name))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %q", ErrBoardNotFound, name)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			b, err = decodeBoard(val)
			return err
		})
	})

	return b, err
}

// DeleteBoard removes the board stored under name.
func (s *Storage) DeleteBoard(name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		key := boardKey(name)
		if _, err := txn.Get(key); errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %q", ErrBoardNotFound, name)
		} else if err != nil {
			return err
		}
		return txn.Delete(key)
	})
}

// ListBoards returns the names of all stored boards in ascending order.
func (s *Storage) ListBoards() ([]string, error) {
	var names []string

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(boardPrefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			key := string(it.Item().Key())
			names = append(names, strings.TrimPrefix(key, boardPrefix))
		}
		return nil
	})

	return names, err
}
