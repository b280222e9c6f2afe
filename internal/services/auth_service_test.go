package services_test

import (
	"encoding/json"
	"testing"

	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"perfumeshop/internal/domain"
	"perfumeshop/internal/repos"
	"perfumeshop/internal/services"
)

func authSvc(t *testing.T) (*services.AuthService, *repos.LocalRepo) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	local := repos.NewLocalRepo(db)
	return &services.AuthService{Local: local, Delay: 0}, local
}

func TestRestore_FirstRunAutoSignsIn(t *testing.T) {
	svc, local := authSvc(t)

	sess, err := svc.Restore()
	if err != nil {
		t.Fatal(err)
	}
	if !sess.IsAuthenticated || sess.User.Email != "admin@perfumeshop.com" {
		t.Fatalf("want demo auto-login, got %+v", sess)
	}

	// blob must now be persisted under the single key
	raw, ok, err := local.Get("auth")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("auth blob not written")
	}
	var stored domain.Session
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		t.Fatal(err)
	}
	if stored.User.ID != sess.User.ID || !stored.IsAuthenticated {
		t.Fatalf("blob mismatch: %+v", stored)
	}
}

func TestRestore_PrefersStoredSession(t *testing.T) {
	svc, local := authSvc(t)

	blob, _ := json.Marshal(domain.Session{
		User:            domain.User{ID: 2, Name: "Sales Manager", Email: "sales@perfumeshop.com", Role: "Manager", Permissions: []string{"sales"}},
		IsAuthenticated: true,
	})
	if err := local.Set("auth", string(blob)); err != nil {
		t.Fatal(err)
	}

	sess, err := svc.Restore()
	if err != nil {
		t.Fatal(err)
	}
	if sess.User.Email != "sales@perfumeshop.com" {
		t.Fatalf("stored session must win over auto-login, got %+v", sess)
	}
}

func TestLoginLogout_RoundTrip(t *testing.T) {
	svc, local := authSvc(t)

	sess, err := svc.Login("whoever@example.com", "anything")
	if err != nil {
		t.Fatal(err)
	}
	if !sess.IsAuthenticated {
		t.Fatalf("mock login always succeeds, got %+v", sess)
	}
	if _, ok, _ := local.Get("auth"); !ok {
		t.Fatal("login must persist the blob")
	}

	if err := svc.Logout(); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := local.Get("auth"); ok {
		t.Fatal("logout must clear the blob")
	}
}

func TestHasPermission(t *testing.T) {
	svc, _ := authSvc(t)

	admin := domain.User{Role: "Admin"}
	if !svc.HasPermission(admin, "anything") {
		t.Fatal("admin can do everything")
	}

	manager := domain.User{Role: "Manager", Permissions: []string{"sales", "orders"}}
	if !svc.HasPermission(manager, "sales") {
		t.Fatal("listed capability must pass")
	}
	if svc.HasPermission(manager, "inventory") {
		t.Fatal("unlisted capability must fail")
	}

	staff := domain.User{Role: "Staff", Permissions: []string{domain.PermissionAll}}
	if !svc.HasPermission(staff, "inventory") {
		t.Fatal(`"all" sentinel grants everything`)
	}
}
