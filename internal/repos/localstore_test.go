package repos_test

import (
	"testing"

	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"perfumeshop/internal/repos"
)

func memdb(t *testing.T) *repos.LocalRepo {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	return repos.NewLocalRepo(db)
}

func TestLocalRepo_RoundTrip(t *testing.T) {
	local := memdb(t)

	// absent key
	_, ok, err := local.Get("auth")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("expected no value for fresh key")
	}

	if err := local.Set("auth", `{"isAuthenticated":true}`); err != nil {
		t.Fatal(err)
	}
	v, ok, err := local.Get("auth")
	if err != nil {
		t.Fatal(err)
	}
	if !ok || v != `{"isAuthenticated":true}` {
		t.Fatalf("want stored blob back, got ok=%v v=%q", ok, v)
	}

	// overwrite wins
	if err := local.Set("auth", `{"isAuthenticated":false}`); err != nil {
		t.Fatal(err)
	}
	v, _, _ = local.Get("auth")
	if v != `{"isAuthenticated":false}` {
		t.Fatalf("want last write, got %q", v)
	}

	if err := local.Delete("auth"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := local.Get("auth"); ok {
		t.Fatal("key should be gone after delete")
	}

	// delete is idempotent
	if err := local.Delete("auth"); err != nil {
		t.Fatal(err)
	}
}
