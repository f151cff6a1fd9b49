package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/mohammadpnp/scim-provision/internal/domain/user"
)

const uniqueViolationCode = "23505"

const userColumns = "id, realm_id, user_name, external_id, first_name, sur_name, display_name, active, emails, created_at, updated_at"

// UserRepository persists user records with pgx directly; the hot paths of
// provisioning skip the ORM.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

type emailRecord struct {
	Value   string `json:"value"`
	Primary bool   `json:"primary"`
}

func encodeEmails(emails []domain.Email) ([]byte, error) {
	records := make([]emailRecord, 0, len(emails))
	for _, email := range emails {
		records = append(records, emailRecord{Value: email.Value, Primary: email.Primary})
	}
	return json.Marshal(records)
}

func decodeEmails(raw []byte) ([]domain.Email, error) {
	var records []emailRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, err
	}
	emails := make([]domain.Email, 0, len(records))
	for _, record := range records {
		emails = append(emails, domain.Email{Value: record.Value, Primary: record.Primary})
	}
	return emails, nil
}

func (r *UserRepository) Create(ctx context.Context, u domain.User) (domain.User, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}

	emails, err := encodeEmails(u.Emails)
	if err != nil {
		return domain.User{}, fmt.Errorf("encode emails: %w", err)
	}

	row := r.pool.QueryRow(ctx, `
INSERT INTO scim_users (id, realm_id, user_name, external_id, first_name, sur_name, display_name, active, emails, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
RETURNING `+userColumns, u.ID, u.RealmID, u.UserName, nullableText(u.ExternalID), u.FirstName, u.SurName, u.DisplayName, u.Active, emails)

	created, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return domain.User{}, domain.ErrDuplicateUserName
		}
		return domain.User{}, fmt.Errorf("insert user: %w", err)
	}
	return created, nil
}

func (r *UserRepository) GetByID(ctx context.Context, realmID, userID string) (domain.User, error) {
	return r.getOne(ctx, `
SELECT `+userColumns+`
FROM scim_users
WHERE realm_id = $1 AND id = $2`, realmID, userID)
}

func (r *UserRepository) GetByUserName(ctx context.Context, realmID, userName string) (domain.User, error) {
	return r.getOne(ctx, `
SELECT `+userColumns+`
FROM scim_users
WHERE realm_id = $1 AND user_name = $2`, realmID, userName)
}

func (r *UserRepository) GetByEmail(ctx context.Context, realmID, email string) (domain.User, error) {
	match, err := json.Marshal([]map[string]string{{"value": email}})
	if err != nil {
		return domain.User{}, fmt.Errorf("encode email filter: %w", err)
	}
	return r.getOne(ctx, `
SELECT `+userColumns+`
FROM scim_users
WHERE realm_id = $1 AND emails @> $2
ORDER BY created_at
LIMIT 1`, realmID, match)
}

func (r *UserRepository) List(ctx context.Context, realmID string, q domain.ListQuery) ([]domain.User, int64, error) {
	where := "realm_id = $1"
	args := []any{realmID}
	if q.Filter != "" {
		where += " AND (user_name ILIKE $2 OR display_name ILIKE $2 OR external_id ILIKE $2)"
		args = append(args, "%"+q.Filter+"%")
	}

	var total int64
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM scim_users WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	offset := q.StartIndex - 1
	if offset < 0 {
		offset = 0
	}
	limitPos := len(args) + 1
	args = append(args, q.Count, offset)

	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
SELECT %s
FROM scim_users
WHERE %s
ORDER BY created_at, id
LIMIT $%d OFFSET $%d`, userColumns, where, limitPos, limitPos+1), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var records []domain.User
	for rows.Next() {
		record, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan user: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}

	return records, total, nil
}

func (r *UserRepository) Update(ctx context.Context, u domain.User) (domain.User, error) {
	emails, err := encodeEmails(u.Emails)
	if err != nil {
		return domain.User{}, fmt.Errorf("encode emails: %w", err)
	}

	row := r.pool.QueryRow(ctx, `
UPDATE scim_users
SET user_name = $3,
    external_id = $4,
    first_name = $5,
    sur_name = $6,
    display_name = $7,
    active = $8,
    emails = $9,
    updated_at = NOW()
WHERE realm_id = $1 AND id = $2
RETURNING `+userColumns, u.RealmID, u.ID, u.UserName, nullableText(u.ExternalID), u.FirstName, u.SurName, u.DisplayName, u.Active, emails)

	updated, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return domain.User{}, domain.ErrDuplicateUserName
		}
		return domain.User{}, fmt.Errorf("update user: %w", err)
	}
	return updated, nil
}

func (r *UserRepository) Delete(ctx context.Context, realmID, userID string) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM scim_users WHERE realm_id = $1 AND id = $2", realmID, userID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) getOne(ctx context.Context, query string, args ...any) (domain.User, error) {
	record, err := scanUser(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}
	return record, nil
}

func scanUser(row pgx.Row) (domain.User, error) {
	var (
		record     domain.User
		externalID *string
		emails     []byte
		createdAt  time.Time
		updatedAt  time.Time
	)
	if err := row.Scan(&record.ID, &record.RealmID, &record.UserName, &externalID, &record.FirstName, &record.SurName, &record.DisplayName, &record.Active, &emails, &createdAt, &updatedAt); err != nil {
		return domain.User{}, err
	}
	if externalID != nil {
		record.ExternalID = *externalID
	}
	decoded, err := decodeEmails(emails)
	if err != nil {
		return domain.User{}, fmt.Errorf("decode emails: %w", err)
	}
	record.Emails = decoded
	record.CreatedAt = createdAt
	record.UpdatedAt = updatedAt
	return record, nil
}

func nullableText(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
