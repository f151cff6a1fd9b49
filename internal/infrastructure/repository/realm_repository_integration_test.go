package repository_test

import (
	"context"
	"errors"
	"testing"

	domain "github.com/mohammadpnp/scim-provision/internal/domain/user"
	"github.com/mohammadpnp/scim-provision/internal/infrastructure/repository"
)

func TestRealmRepositoryIntegration(t *testing.T) {
	gdb, _ := setupIntegration(t)
	repo := repository.NewRealmRepository(gdb)

	record, err := domain.NewRealm("engineering", "eng tenant")
	if err != nil {
		t.Fatalf("NewRealm: %v", err)
	}

	created, err := repo.Create(context.Background(), record)
	if err != nil {
		t.Fatalf("create realm: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected generated primary key")
	}

	fetched, err := repo.GetByRealmID(context.Background(), created.RealmID)
	if err != nil {
		t.Fatalf("get realm: %v", err)
	}
	if fetched.Name != "engineering" {
		t.Fatalf("Name = %q, want engineering", fetched.Name)
	}

	exists, err := repo.Exists(context.Background(), created.RealmID)
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !exists {
		t.Fatal("Exists() = false for created realm")
	}

	exists, err = repo.Exists(context.Background(), "realm_missing0")
	if err != nil {
		t.Fatalf("exists missing: %v", err)
	}
	if exists {
		t.Fatal("Exists() = true for unknown realm")
	}

	if _, err := repo.GetByRealmID(context.Background(), "realm_missing0"); !errors.Is(err, domain.ErrRealmNotFound) {
		t.Fatalf("get missing realm error = %v, want ErrRealmNotFound", err)
	}

	realms, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list realms: %v", err)
	}
	if len(realms) != 1 {
		t.Fatalf("got %d realms, want 1", len(realms))
	}
}

func TestAdminRepositoryIntegration(t *testing.T) {
	gdb, _ := setupIntegration(t)
	repo := repository.NewAdminRepository(gdb)

	created, err := repo.Create(context.Background(), domain.Admin{
		Username:     "root",
		PasswordHash: "$2a$10$notarealhashnotarealhashnotarealha",
		Email:        "root@example.com",
		IsActive:     true,
	})
	if err != nil {
		t.Fatalf("create admin: %v", err)
	}

	if _, err := repo.Create(context.Background(), domain.Admin{
		Username:     "root",
		PasswordHash: "x",
		Email:        "other@example.com",
	}); !errors.Is(err, domain.ErrDuplicateAdmin) {
		t.Fatalf("duplicate admin error = %v, want ErrDuplicateAdmin", err)
	}

	fetched, err := repo.GetByUsername(context.Background(), "root")
	if err != nil {
		t.Fatalf("get admin: %v", err)
	}
	if fetched.ID != created.ID || fetched.LastLogin != nil {
		t.Fatalf("unexpected admin record: %+v", fetched)
	}

	if err := repo.TouchLastLogin(context.Background(), "root"); err != nil {
		t.Fatalf("touch last login: %v", err)
	}
	fetched, err = repo.GetByUsername(context.Background(), "root")
	if err != nil {
		t.Fatalf("get admin after touch: %v", err)
	}
	if fetched.LastLogin == nil {
		t.Fatal("LastLogin not set after TouchLastLogin")
	}

	if _, err := repo.GetByUsername(context.Background(), "ghost"); !errors.Is(err, domain.ErrAdminNotFound) {
		t.Fatalf("get missing admin error = %v, want ErrAdminNotFound", err)
	}
}
