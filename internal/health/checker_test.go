package health

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bhava-app/bhava/internal/infra/sqlite"
)

func newTestDB(t *testing.T) (*sqlite.DB, string) {
	t.Helper()
	dir := t.TempDir()
	db, err := sqlite.Open(dir)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, dir
}

type fakeRemote struct{ err error }

func (f fakeRemote) Ping(ctx context.Context) error { return f.err }

// ─── Checker Tests ──────────────────────────────────────────────────────────

func TestNewChecker(t *testing.T) {
	db, dir := newTestDB(t)

	if c := NewChecker(db, dir, nil); len(c.checks) != 2 {
		t.Errorf("checks = %d, want 2", len(c.checks))
	}
	if c := NewChecker(db, dir, fakeRemote{}); len(c.checks) != 3 {
		t.Errorf("checks with remote = %d, want 3", len(c.checks))
	}
}

func TestChecker_RunAllHealthy(t *testing.T) {
	db, dir := newTestDB(t)

	c := NewChecker(db, dir, fakeRemote{})
	c.RunOnce(context.Background())

	statuses := c.Statuses()
	if len(statuses) != 3 {
		t.Fatalf("Statuses() = %d, want 3", len(statuses))
	}
	for _, s := range statuses {
		if !s.Healthy {
			t.Errorf("check %q should be healthy, got error: %s", s.Name, s.Error)
		}
	}
	if !c.IsHealthy() {
		t.Error("IsHealthy() should be true when all checks pass")
	}
}

func TestChecker_IsHealthy_BeforeRun(t *testing.T) {
	db, dir := newTestDB(t)
	c := NewChecker(db, dir, nil)

	// no statuses yet
	if !c.IsHealthy() {
		t.Error("IsHealthy() should be true before first run")
	}
}

func TestChecker_RemoteDownStaysHealthy(t *testing.T) {
	db, dir := newTestDB(t)

	c := NewChecker(db, dir, fakeRemote{err: errors.New("unreachable")})
	c.RunOnce(context.Background())

	var remote Status
	for _, s := range c.Statuses() {
		if s.Name == "sync_remote" {
			remote = s
		}
	}
	if remote.Healthy || remote.Error == "" {
		t.Errorf("sync_remote should report the failure, got %+v", remote)
	}
	if !c.IsHealthy() {
		t.Error("a failing remote should not make the process unhealthy")
	}
}

func TestChecker_SQLiteClosed(t *testing.T) {
	dir := t.TempDir()
	db, err := sqlite.Open(dir)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	db.Close()

	c := NewChecker(db, dir, nil)
	c.RunOnce(context.Background())
	if c.IsHealthy() {
		t.Error("IsHealthy() should be false with a closed database")
	}
}

func TestChecker_DataDirRecovers(t *testing.T) {
	db, _ := newTestDB(t)
	missing := filepath.Join(t.TempDir(), "gone")

	c := NewChecker(db, missing, nil)
	c.RunOnce(context.Background())
	if c.IsHealthy() {
		t.Fatal("missing data dir should be unhealthy")
	}
	if _, err := os.Stat(missing); err != nil {
		t.Fatalf("recovery should recreate the dir: %v", err)
	}

	c.RunOnce(context.Background())
	if !c.IsHealthy() {
		t.Error("should be healthy after recovery")
	}
}

func TestCheckWritable_File(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(f, []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := checkWritable(f); err == nil {
		t.Error("a regular file should fail the check")
	}
}

func TestChecker_RunStopsOnCancel(t *testing.T) {
	db, dir := newTestDB(t)
	c := NewChecker(db, dir, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		c.Run(ctx)
		close(done)
	}()
	cancel()
	<-done

	if len(c.Statuses()) != 2 {
		t.Error("Run should check once before waiting")
	}
}
