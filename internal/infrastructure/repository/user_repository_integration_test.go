package repository_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	domain "github.com/mohammadpnp/scim-provision/internal/domain/user"
	"github.com/mohammadpnp/scim-provision/internal/infrastructure/db/models"
	"github.com/mohammadpnp/scim-provision/internal/infrastructure/repository"
)

func setupIntegration(t *testing.T) (*gorm.DB, *pgxpool.Pool) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect db: %v", err)
	}

	if err := gdb.AutoMigrate(&models.Realm{}, &models.AdminUser{}, &models.SCIMUser{}); err != nil {
		t.Fatalf("failed schema setup: %v", err)
	}

	cleanupSQL := `
    DELETE FROM scim_users;
    DELETE FROM admin_users;
    DELETE FROM realms;
    `
	if err := gdb.Exec(cleanupSQL).Error; err != nil {
		t.Fatalf("failed cleanup: %v", err)
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("failed to create pgx pool: %v", err)
	}
	t.Cleanup(pool.Close)

	return gdb, pool
}

func mustRealm(t *testing.T, gdb *gorm.DB) domain.Realm {
	t.Helper()

	realms := repository.NewRealmRepository(gdb)
	record, err := domain.NewRealm("integration", "integration tenant")
	if err != nil {
		t.Fatalf("NewRealm: %v", err)
	}
	created, err := realms.Create(context.Background(), record)
	if err != nil {
		t.Fatalf("create realm: %v", err)
	}
	return created
}

func TestUserRepositoryRoundTripIntegration(t *testing.T) {
	gdb, pool := setupIntegration(t)
	realm := mustRealm(t, gdb)
	repo := repository.NewUserRepository(pool)

	record, err := domain.NewUser("jdoe", "John", "Doe", "", "ext-42", true, []domain.Email{
		{Value: "jdoe@example.com", Primary: true},
		{Value: "john.doe@personal.example.com"},
	})
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}
	record.RealmID = realm.RealmID

	created, err := repo.Create(context.Background(), record)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated user id")
	}

	byID, err := repo.GetByID(context.Background(), realm.RealmID, created.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if byID.UserName != "jdoe" || len(byID.Emails) != 2 {
		t.Fatalf("round trip mismatch: %+v", byID)
	}

	byName, err := repo.GetByUserName(context.Background(), realm.RealmID, "jdoe")
	if err != nil {
		t.Fatalf("get by user name: %v", err)
	}
	if byName.ID != created.ID {
		t.Fatalf("get by user name returned %s, want %s", byName.ID, created.ID)
	}

	byEmail, err := repo.GetByEmail(context.Background(), realm.RealmID, "john.doe@personal.example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if byEmail.ID != created.ID {
		t.Fatalf("get by email returned %s, want %s", byEmail.ID, created.ID)
	}

	byID.DisplayName = "Johnny"
	byID.Active = false
	updated, err := repo.Update(context.Background(), byID)
	if err != nil {
		t.Fatalf("update user: %v", err)
	}
	if updated.DisplayName != "Johnny" || updated.Active {
		t.Fatalf("update not applied: %+v", updated)
	}

	if err := repo.Delete(context.Background(), realm.RealmID, created.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}
	if err := repo.Delete(context.Background(), realm.RealmID, created.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("second delete error = %v, want ErrUserNotFound", err)
	}
}

func TestUserRepositoryDuplicateUserNameIntegration(t *testing.T) {
	gdb, pool := setupIntegration(t)
	realm := mustRealm(t, gdb)
	repo := repository.NewUserRepository(pool)

	record, err := domain.NewUser("jdoe", "John", "Doe", "", "", true, []domain.Email{{Value: "jdoe@example.com", Primary: true}})
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}
	record.RealmID = realm.RealmID

	if _, err := repo.Create(context.Background(), record); err != nil {
		t.Fatalf("first create: %v", err)
	}

	record.ID = ""
	_, err = repo.Create(context.Background(), record)
	if !errors.Is(err, domain.ErrDuplicateUserName) {
		t.Fatalf("duplicate create error = %v, want ErrDuplicateUserName", err)
	}
}

func TestUserRepositoryListFilterIntegration(t *testing.T) {
	gdb, pool := setupIntegration(t)
	realm := mustRealm(t, gdb)
	repo := repository.NewUserRepository(pool)

	for _, name := range []string{"jdoe", "asmith", "jwalker"} {
		record, err := domain.NewUser(name, "First", "Last", "", "", true, []domain.Email{{Value: name + "@example.com", Primary: true}})
		if err != nil {
			t.Fatalf("NewUser %s: %v", name, err)
		}
		record.RealmID = realm.RealmID
		if _, err := repo.Create(context.Background(), record); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	records, total, err := repo.List(context.Background(), realm.RealmID, domain.ListQuery{StartIndex: 1, Count: 10, Filter: "j"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 2 || len(records) != 2 {
		t.Fatalf("filtered list = %d records, total %d; want 2/2", len(records), total)
	}

	records, total, err = repo.List(context.Background(), realm.RealmID, domain.ListQuery{StartIndex: 2, Count: 1})
	if err != nil {
		t.Fatalf("paged list: %v", err)
	}
	if total != 3 || len(records) != 1 {
		t.Fatalf("paged list = %d records, total %d; want 1/3", len(records), total)
	}
}
