package store

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/roach88/svlinks/internal/config"
	"github.com/roach88/svlinks/internal/engine"
	"github.com/roach88/svlinks/internal/sv"
	"github.com/roach88/svlinks/internal/testutil"
)

// createTestStore creates a new on-disk store in a temp dir for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestReport runs the engine over a small assembled chain: var1 resolves
// through var2, var3 and var4; var5 is single-ended.
func createTestReport(t *testing.T, runID string) *engine.Report {
	t.Helper()

	f := testutil.NewVariantFactory()
	cache := testutil.NewCache(
		f.CreateBnd("1", 1000, sv.PosOrient, "2", 5000, sv.NegOrient, testutil.WithInsertLength(1000)),
		f.CreateDel("1", 1000, 3000, testutil.WithEndAssemblies("asm1")),
		f.CreateDel("1", 3500, 6000, testutil.WithStartAssemblies("asm1"), testutil.WithEndAssemblies("asm2")),
		f.CreateBnd("1", 6500, sv.PosOrient, "2", 5000, sv.NegOrient, testutil.WithStartAssemblies("asm2")),
		f.CreateSgl("3", 1000, sv.PosOrient),
	)

	e := engine.New(cache, config.Default(),
		engine.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		engine.WithRunIDGenerator(testutil.NewFixedRunIDGenerator(runID)),
	)

	report, err := e.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	return report
}
