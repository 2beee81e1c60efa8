package customcmd

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/byteorem/banshee-bot/utils/database"
)

const (
	testGuild  = "100200300400500600"
	otherGuild = "700800900100200300"
	testAuthor = "111222333444555666"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := database.Init(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to init test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewService(db)
}

func TestCreateViewRoundTrip(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(testGuild, testAuthor, "lootpolicy", "Loot rules: main spec first.")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("Create did not assign an ID")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatal("Create did not set timestamps")
	}

	// Lookup is case-insensitive.
	got, err := svc.View(testGuild, "LootPolicy")
	if err != nil {
		t.Fatalf("View failed: %v", err)
	}
	if got.Content != "Loot rules: main spec first." {
		t.Fatalf("View content = %q, want original content", got.Content)
	}
	if got.CreatedBy != testAuthor {
		t.Fatalf("View created_by = %q, want %q", got.CreatedBy, testAuthor)
	}
}

func TestCreateInvalidName(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(testGuild, testAuthor, "Loot Policy!", "content")
	if !errors.Is(err, ErrInvalidName) {
		t.Fatalf("Create error = %v, want ErrInvalidName", err)
	}

	cmds, err := svc.List(testGuild)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(cmds) != 0 {
		t.Fatalf("invalid create persisted %d records, want 0", len(cmds))
	}
}

func TestCreateDuplicate(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Create(testGuild, testAuthor, "raidtimes", "Tue/Thu 20:00"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.Create(testGuild, testAuthor, "RaidTimes", "other"); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("duplicate Create error = %v, want ErrAlreadyExists", err)
	}

	// The same name is free in another guild.
	if _, err := svc.Create(otherGuild, testAuthor, "raidtimes", "Mon 19:00"); err != nil {
		t.Fatalf("Create in other guild failed: %v", err)
	}
}

func TestConcurrentCreateSingleWinner(t *testing.T) {
	svc := newTestService(t)

	var wg sync.WaitGroup
	errs := make([]error, 4)
	for n := range errs {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, errs[n] = svc.Create(testGuild, testAuthor, "contested", "content")
		}(n)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrAlreadyExists):
		default:
			t.Fatalf("unexpected error from concurrent Create: %v", err)
		}
	}
	if successes != 1 {
		t.Fatalf("concurrent Create succeeded %d times, want exactly 1", successes)
	}
}

func TestEditRename(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Create(testGuild, testAuthor, "foo", "bar"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	edited, err := svc.Edit(testGuild, "foo", "baz", "qux")
	if err != nil {
		t.Fatalf("Edit failed: %v", err)
	}
	if edited.CommandName != "baz" || edited.Content != "qux" {
		t.Fatalf("Edit returned (%q, %q), want (baz, qux)", edited.CommandName, edited.Content)
	}

	if _, err := svc.View(testGuild, "foo"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("View of old name = %v, want ErrNotFound", err)
	}
	got, err := svc.View(testGuild, "baz")
	if err != nil {
		t.Fatalf("View of new name failed: %v", err)
	}
	if got.Content != "qux" {
		t.Fatalf("View content = %q, want qux", got.Content)
	}
}

func TestEditRenameCollision(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Create(testGuild, testAuthor, "foo", "a"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.Create(testGuild, testAuthor, "bar", "b"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := svc.Edit(testGuild, "foo", "bar", "c"); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("colliding Edit error = %v, want ErrAlreadyExists", err)
	}

	// Rewriting content under the same name is not a collision.
	if _, err := svc.Edit(testGuild, "foo", "foo", "rewritten"); err != nil {
		t.Fatalf("same-name Edit failed: %v", err)
	}
}

func TestEditValidation(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Edit(testGuild, "missing", "missing", "content"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Edit of missing command = %v, want ErrNotFound", err)
	}

	if _, err := svc.Create(testGuild, testAuthor, "foo", "bar"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.Edit(testGuild, "foo", "bad name", "content"); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("Edit with invalid new name = %v, want ErrInvalidName", err)
	}
	if _, err := svc.Edit(testGuild, "foo", "foo", ""); !errors.Is(err, ErrEmptyContent) {
		t.Fatalf("Edit with empty content = %v, want ErrEmptyContent", err)
	}
}

func TestDelete(t *testing.T) {
	svc := newTestService(t)

	if err := svc.Delete(testGuild, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Delete of missing command = %v, want ErrNotFound", err)
	}

	if _, err := svc.Create(testGuild, testAuthor, "doomed", "content"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := svc.Delete(testGuild, "Doomed"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := svc.View(testGuild, "doomed"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("View after Delete = %v, want ErrNotFound", err)
	}
}

func TestListOrderAndIsolation(t *testing.T) {
	svc := newTestService(t)

	cmds, err := svc.List(testGuild)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(cmds) != 0 {
		t.Fatalf("List of empty guild returned %d records, want 0", len(cmds))
	}

	for _, name := range []string{"alpha", "bravo", "charlie"} {
		if _, err := svc.Create(testGuild, testAuthor, name, "content"); err != nil {
			t.Fatalf("Create %s failed: %v", name, err)
		}
	}
	if _, err := svc.Create(otherGuild, testAuthor, "delta", "content"); err != nil {
		t.Fatalf("Create in other guild failed: %v", err)
	}

	cmds, err = svc.List(testGuild)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	want := []string{"alpha", "bravo", "charlie"}
	if len(cmds) != len(want) {
		t.Fatalf("List returned %d records, want %d", len(cmds), len(want))
	}
	for n, name := range want {
		if cmds[n].CommandName != name {
			t.Fatalf("List[%d] = %q, want %q", n, cmds[n].CommandName, name)
		}
	}
}
