package daily

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
)

// markerSuite runs the same checks against every MarkerStore backend.
type markerSuite struct {
	suite.Suite
	ctx  context.Context
	dir  string
	open func(t *testing.T, dir string) MarkerStore
}

func (s *markerSuite) SetupTest() {
	s.ctx = context.Background()
	s.dir = s.T().TempDir()
}

func (s *markerSuite) store() MarkerStore { return s.open(s.T(), s.dir) }

func (s *markerSuite) TestEmptyByDefault() {
	last, err := s.store().Last(s.ctx)
	s.Require().NoError(err)
	s.Empty(last)
}

func (s *markerSuite) TestMarkThenLast() {
	st := s.store()
	s.Require().NoError(st.Mark(s.ctx, "2024-01-01"))

	last, err := st.Last(s.ctx)
	s.Require().NoError(err)
	s.Equal("2024-01-01", last)

	s.Require().NoError(st.Mark(s.ctx, "2024-01-02"))
	last, err = st.Last(s.ctx)
	s.Require().NoError(err)
	s.Equal("2024-01-02", last)
}

func (s *markerSuite) TestPersistsAcrossInstances() {
	s.Require().NoError(s.store().Mark(s.ctx, "2024-03-03"))

	last, err := s.store().Last(s.ctx)
	s.Require().NoError(err)
	s.Equal("2024-03-03", last)
}

func TestFileStoreSuite(t *testing.T) {
	suite.Run(t, &markerSuite{
		open: func(_ *testing.T, dir string) MarkerStore {
			return NewFileStore(filepath.Join(dir, "nested", "last_played"))
		},
	})
}

func TestSQLStoreSuite(t *testing.T) {
	suite.Run(t, &markerSuite{
		open: func(t *testing.T, dir string) MarkerStore {
			st, err := OpenSQLStore(context.Background(), filepath.Join(dir, "data", "levdle.db"))
			if err != nil {
				t.Fatalf("open sql store: %v", err)
			}
			t.Cleanup(func() { _ = st.Close() })
			return st
		},
	})
}

func TestFileStoreCreatesEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "marker")
	st := NewFileStore(path)

	last, err := st.Last(context.Background())
	if err != nil {
		t.Fatalf("Last: %v", err)
	}
	if last != "" {
		t.Fatalf("Last = %q, want empty", last)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("marker file not created: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("marker file size = %d, want 0", info.Size())
	}
}

func TestFileStoreTrimsContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "marker")
	if err := os.WriteFile(path, []byte("2024-01-01\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	last, err := NewFileStore(path).Last(context.Background())
	if err != nil {
		t.Fatalf("Last: %v", err)
	}
	if last != "2024-01-01" {
		t.Errorf("Last = %q", last)
	}
}

func TestFileStoreUnreadable(t *testing.T) {
	// A directory where the file should be cannot be opened as a marker.
	dir := t.TempDir()
	st := NewFileStore(dir)
	if _, err := st.Last(context.Background()); err == nil {
		t.Error("expected error reading a directory as marker")
	}
	if err := st.Mark(context.Background(), "2024-01-01"); err == nil {
		t.Error("expected error writing over a directory")
	}
}

func TestFileStoreHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	st := NewFileStore(filepath.Join(t.TempDir(), "marker"))
	if _, err := st.Last(ctx); err == nil {
		t.Error("Last with cancelled context should fail")
	}
	if err := st.Mark(ctx, "2024-01-01"); err == nil {
		t.Error("Mark with cancelled context should fail")
	}
}

func TestSQLStoreClaimIsAtomic(t *testing.T) {
	ctx := context.Background()
	st, err := OpenSQLStore(ctx, filepath.Join(t.TempDir(), "levdle.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer st.Close()

	const racers = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		claimed int
	)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := st.Claim(ctx, "2024-05-05")
			if err != nil {
				t.Errorf("claim: %v", err)
				return
			}
			if ok {
				mu.Lock()
				claimed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if claimed != 1 {
		t.Fatalf("claimed %d times, want exactly 1", claimed)
	}

	ok, err := st.Claim(ctx, "2024-05-06")
	if err != nil || !ok {
		t.Fatalf("claim next day = %v, %v; want true", ok, err)
	}
}

func TestSQLStoreMigrateTwice(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "levdle.db")

	st, err := OpenSQLStore(ctx, path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if err := st.Mark(ctx, "2024-01-01"); err != nil {
		t.Fatal(err)
	}
	_ = st.Close()

	st, err = OpenSQLStore(ctx, path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer st.Close()
	last, err := st.Last(ctx)
	if err != nil || last != "2024-01-01" {
		t.Fatalf("Last = %q, %v", last, err)
	}
}
