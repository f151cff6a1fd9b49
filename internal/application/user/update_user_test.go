package user_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	app "github.com/mohammadpnp/scim-provision/internal/application/user"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestUpdateUserPartial(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	seeded := seedUser(t, repo, "realm_abc12345", "jdoe")
	uc := app.NewUpdateUser(repo)

	out, err := uc.Execute(context.Background(), app.UpdateUserInput{
		RealmID:     "realm_abc12345",
		UserID:      seeded.ID,
		DisplayName: strPtr("Johnny D"),
		Active:      boolPtr(false),
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out.DisplayName != "Johnny D" {
		t.Fatalf("DisplayName = %q, want Johnny D", out.DisplayName)
	}
	if out.Active {
		t.Fatal("Active should be false after update")
	}
	if out.UserName != "jdoe" {
		t.Fatalf("UserName changed unexpectedly: %q", out.UserName)
	}
	if out.ID != seeded.ID {
		t.Fatalf("ID changed across update: %q", out.ID)
	}
}

func TestUpdateUserRejectsInvalidResult(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	seeded := seedUser(t, repo, "realm_abc12345", "jdoe")
	uc := app.NewUpdateUser(repo)

	_, err := uc.Execute(context.Background(), app.UpdateUserInput{
		RealmID:  "realm_abc12345",
		UserID:   seeded.ID,
		UserName: strPtr(""),
	})
	if !errors.Is(err, app.ErrInvalidUser) {
		t.Fatalf("Execute() error = %v, want ErrInvalidUser", err)
	}
}

func TestUpdateUserNotFound(t *testing.T) {
	t.Parallel()

	uc := app.NewUpdateUser(newFakeUserRepo())

	_, err := uc.Execute(context.Background(), app.UpdateUserInput{
		RealmID: "realm_abc12345",
		UserID:  uuid.NewString(),
	})
	if !errors.Is(err, app.ErrUserNotFound) {
		t.Fatalf("Execute() error = %v, want ErrUserNotFound", err)
	}
}

func TestDeleteUserSuccess(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	seeded := seedUser(t, repo, "realm_abc12345", "jdoe")
	uc := app.NewDeleteUser(repo)

	if err := uc.Execute(context.Background(), app.DeleteUserInput{RealmID: "realm_abc12345", UserID: seeded.ID}); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != seeded.ID {
		t.Fatalf("deleted = %v, want [%s]", repo.deleted, seeded.ID)
	}
}

func TestDeleteUserMalformedID(t *testing.T) {
	t.Parallel()

	uc := app.NewDeleteUser(newFakeUserRepo())

	err := uc.Execute(context.Background(), app.DeleteUserInput{RealmID: "realm_abc12345", UserID: "nope"})
	if !errors.Is(err, app.ErrInvalidUserID) {
		t.Fatalf("Execute() error = %v, want ErrInvalidUserID", err)
	}
}

func TestListUsersDefaultsAndShape(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	seedUser(t, repo, "realm_abc12345", "jdoe")
	seedUser(t, repo, "realm_abc12345", "asmith")
	seedUser(t, repo, "realm_other000", "outsider")
	uc := app.NewListUsers(repo)

	out, err := uc.Execute(context.Background(), app.ListUsersInput{RealmID: "realm_abc12345"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out.TotalResults != 2 {
		t.Fatalf("TotalResults = %d, want 2", out.TotalResults)
	}
	if out.StartIndex != 1 {
		t.Fatalf("StartIndex = %d, want default 1", out.StartIndex)
	}
	if out.ItemsPerPage != 2 {
		t.Fatalf("ItemsPerPage = %d, want 2", out.ItemsPerPage)
	}
	if len(out.Schemas) != 1 || out.Schemas[0] != "urn:ietf:params:scim:api:messages:2.0:ListResponse" {
		t.Fatalf("Schemas = %v", out.Schemas)
	}
}
