package storage

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/go-cmp/cmp"
	"github.com/hailam/othello/internal/othello"
)

func openMemory(t *testing.T) *Storage {
	t.Helper()
	s, err := Open(Options{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return s
}

func TestSaveLoadBoard(t *testing.T) {
	s := openMemory(t)

	boards := map[string]othello.Bitboard{
		"empty":   othello.Empty,
		"full":    othello.Full,
		"a1":      othello.FromRaw(0x8000000000000000),
		"opening": othello.FromRaw(0x0000001008000000),
	}
	for name, b := range boards {
		if err := s.SaveBoard(name, b); err != nil {
			t.Fatalf("SaveBoard(%q): %v", name, err)
		}
	}
	for name, want := range boards {
		got, err := s.LoadBoard(name)
		if err != nil {
			t.Fatalf("LoadBoard(%q): %v", name, err)
		}
		if got != want {
			t.Errorf("LoadBoard(%q) = %#016x, want %#016x", name, got.Raw(), want.Raw())
		}
	}
}

func TestSaveBoardOverwrites(t *testing.T) {
	s := openMemory(t)

	if err := s.SaveBoard("b", othello.Rank1); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveBoard("b", othello.Rank1.RotateClockwise()); err != nil {
		t.Fatal(err)
	}
	got, err := s.LoadBoard("b")
	if err != nil {
		t.Fatal(err)
	}
	if want := othello.Rank1.RotateClockwise(); got != want {
		t.Errorf("LoadBoard = %#016x, want %#016x", got.Raw(), want.Raw())
	}
}

func TestStoredValueIsRawBigEndian(t *testing.T) {
	s := openMemory(t)
	if err := s.SaveBoard("x", othello.FromRaw(0x0102030405060708)); err != nil {
		t.Fatal(err)
	}

	var val []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte("board/x"))
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]byte{1, 2, 3, 4, 5, 6, 7, 8}, val); diff != "" {
		t.Errorf("stored bytes mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadBoardNotFound(t *testing.T) {
	s := openMemory(t)
	if _, err := s.LoadBoard("missing"); !errors.Is(err, ErrBoardNotFound) {
		t.Errorf("LoadBoard error = %v, want ErrBoardNotFound", err)
	}
}

func TestLoadBoardCorrupt(t *testing.T) {
	s := openMemory(t)
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte("board/bad"), []byte{1, 2, 3})
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.LoadBoard("bad"); !errors.Is(err, ErrCorruptValue) {
		t.Errorf("LoadBoard error = %v, want ErrCorruptValue", err)
	}
}

func TestDeleteBoard(t *testing.T) {
	s := openMemory(t)
	if err := s.SaveBoard("gone", othello.Full); err != nil {
		t.Fatal(err)
	}
	if err := s.DeleteBoard("gone"); err != nil {
		t.Fatalf("DeleteBoard: %v", err)
	}
	if _, err := s.LoadBoard("gone"); !errors.Is(err, ErrBoardNotFound) {
		t.Errorf("LoadBoard after delete error = %v, want ErrBoardNotFound", err)
	}
	if err := s.DeleteBoard("gone"); !errors.Is(err, ErrBoardNotFound) {
		t.Errorf("second DeleteBoard error = %v, want ErrBoardNotFound", err)
	}
}

func TestListBoards(t *testing.T) {
	s := openMemory(t)

	names, err := s.ListBoards()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 0 {
		t.Errorf("ListBoards on empty store = %v", names)
	}

	for _, name := range []string{"zeta", "alpha", "mid/dle"} {
		if err := s.SaveBoard(name, othello.Empty); err != nil {
			t.Fatal(err)
		}
	}
	names, err = s.ListBoards()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"alpha", "mid/dle", "zeta"}, names); diff != "" {
		t.Errorf("ListBoards mismatch (-want +got):\n%s", diff)
	}
}

func TestInvalidNames(t *testing.T) {
	s := openMemory(t)

	for _, name := range []string{"", "two words", "tab\there", "nl\n", strings.Repeat("x", maxNameBytes+1)} {
		if err := s.SaveBoard(name, othello.Full); !errors.Is(err, ErrInvalidName) {
			t.Errorf("SaveBoard(%q) error = %v, want ErrInvalidName", name, err)
		}
		if _, err := s.LoadBoard(name); !errors.Is(err, ErrInvalidName) {
			t.Errorf("LoadBoard(%q) error = %v, want ErrInvalidName", name, err)
		}
		if err := s.DeleteBoard(name); !errors.Is(err, ErrInvalidName) {
			t.Errorf("DeleteBoard(%q) error = %v, want ErrInvalidName", name, err)
		}
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	b := othello.FromRaw(0x00003C3C3C3C0000)

	s, err := Open(Options{Dir: dir})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.SaveBoard("square", b); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = Open(Options{Dir: dir})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	got, err := s.LoadBoard("square")
	if err != nil {
		t.Fatal(err)
	}
	if got != b {
		t.Errorf("LoadBoard after reopen = %#016x, want %#016x", got.Raw(), b.Raw())
	}
}

func TestBadgerLogger(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	bl := newBadgerLogger(l)

	bl.Errorf("compaction failed: %d\n", 3)
	bl.Warningf("slow write")
	bl.Infof("opened %s", "db")
	bl.Debugf("level %d", 1)

	out := buf.String()
	for _, want := range []string{
		`level=ERROR msg="compaction failed: 3" component=badger`,
		`level=WARN msg="slow write" component=badger`,
		`level=INFO msg="opened db" component=badger`,
		`level=DEBUG msg="level 1" component=badger`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestDataPaths(t *testing.T) {
	t.Run("override", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "custom")
		t.Setenv(DataDirEnv, dir)

		got, err := GetDataDir()
		if err != nil {
			t.Fatalf("GetDataDir: %v", err)
		}
		if got != dir {
			t.Errorf("GetDataDir() = %q, want %q", got, dir)
		}

		dbDir, err := GetDatabaseDir()
		if err != nil {
			t.Fatalf("GetDatabaseDir: %v", err)
		}
		if dbDir != filepath.Join(dir, "db") {
			t.Errorf("GetDatabaseDir() = %q", dbDir)
		}
		if info, err := os.Stat(dbDir); err != nil || !info.IsDir() {
			t.Errorf("database directory was not created: %v", err)
		}
	})

	t.Run("platform default", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv(DataDirEnv, "")
		t.Setenv("HOME", home)
		t.Setenv("XDG_DATA_HOME", home)
		t.Setenv("APPDATA", home)

		got, err := GetDataDir()
		if err != nil {
			t.Fatalf("GetDataDir: %v", err)
		}
		if filepath.Base(got) != appName {
			t.Errorf("GetDataDir() = %q, want a directory named %q", got, appName)
		}
		if !strings.HasPrefix(got, home) {
			t.Errorf("GetDataDir() = %q, want it under %q", got, home)
		}
	})
}

func TestNewStorageUsesDataDir(t *testing.T) {
	t.Setenv(DataDirEnv, t.TempDir())

	s, err := NewStorage(nil)
	if err != nil {
		t.Fatalf("NewStorage: %v", err)
	}
	defer s.Close()

	if err := s.SaveBoard("x", othello.Full); err != nil {
		t.Fatal(err)
	}
}
