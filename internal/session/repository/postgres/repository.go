// Package postgres contains the PostgreSQL implementation of the
// session credential store.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	autherror "github.com/lizTheDeveloper/multiverse-bazaar-sub001/internal/errors"
	"github.com/lizTheDeveloper/multiverse-bazaar-sub001/internal/session/domain"
)

// PgxPool is a minimal abstraction over a Postgres connection pool.
// It is implemented by *pgxpool.Pool and pgxmock.PgxPoolIface.
type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db PgxPool
}

func NewPostgresRepository(db PgxPool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FindIdentityByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	query := `
		SELECT id, email, COALESCE(display_name, ''), created_at
		FROM identities
		WHERE email = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, email)

	var identity domain.Identity
	err := row.Scan(&identity.ID, &identity.Email, &identity.DisplayName, &identity.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get identity by email: %w", err)
	}

	return &identity, nil
}

func (r *PostgresRepository) FindIdentityByID(ctx context.Context, id string) (*domain.Identity, error) {
	query := `
		SELECT id, email, COALESCE(display_name, ''), created_at
		FROM identities
		WHERE id = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, id)

	var identity domain.Identity
	err := row.Scan(&identity.ID, &identity.Email, &identity.DisplayName, &identity.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get identity by id: %w", err)
	}

	return &identity, nil
}

func (r *PostgresRepository) CreateIdentity(ctx context.Context, identity *domain.Identity) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO identities (id, email, display_name, created_at)
        VALUES ($1, $2, NULLIF($3, ''), $4)
    `, identity.ID, identity.Email, identity.DisplayName, identity.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return autherror.ErrIdentityExists
		}
		return fmt.Errorf("failed to create identity: %w", err)
	}

	return nil
}

func (r *PostgresRepository) StoreRenewalCredential(ctx context.Context, rc *domain.RenewalCredential) error {
	query := `INSERT INTO renewal_credentials (id, identity_id, secret_hash, expires_at, created_at, revoked_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query,
		rc.ID, rc.IdentityID, rc.SecretHash, rc.ExpiresAt, rc.CreatedAt, rc.RevokedAt)
	if err != nil {
		return fmt.Errorf("failed to store renewal credential: %w", err)
	}

	return nil
}

func (r *PostgresRepository) FindRenewalCredentialByHash(ctx context.Context, secretHash string) (*domain.RenewalCredential, error) {
	query := `
		SELECT id, identity_id, secret_hash, expires_at, created_at, revoked_at
		FROM renewal_credentials
		WHERE secret_hash = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, secretHash)

	var rc domain.RenewalCredential
	err := row.Scan(&rc.ID, &rc.IdentityID, &rc.SecretHash, &rc.ExpiresAt, &rc.CreatedAt, &rc.RevokedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get renewal credential: %w", err)
	}

	return &rc, nil
}

func (r *PostgresRepository) RevokeRenewalCredential(ctx context.Context, id string) error {
	query := `UPDATE renewal_credentials SET revoked_at = now() WHERE id = $1 AND revoked_at IS NULL`
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to revoke renewal credential: %w", err)
	}

	return nil
}

func (r *PostgresRepository) RevokeAllRenewalCredentials(ctx context.Context, identityID string) (int, error) {
	query := `UPDATE renewal_credentials SET revoked_at = now() WHERE identity_id = $1 AND revoked_at IS NULL`
	tag, err := r.db.Exec(ctx, query, identityID)
	if err != nil {
		return 0, fmt.Errorf("failed to revoke renewal credentials: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

func (r *PostgresRepository) RecordAttempt(ctx context.Context, attempt *domain.AttemptRecord) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO login_attempts (id, email, identity_id, succeeded, origin_address, user_agent, created_at)
		VALUES ($1, $2, NULLIF($3, '')::uuid, $4, $5, NULLIF($6, ''), $7)
	`, attempt.ID, attempt.Email, attempt.IdentityID, attempt.Succeeded,
		attempt.OriginAddress, attempt.UserAgent, attempt.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record login attempt: %w", err)
	}

	return nil
}

func (r *PostgresRepository) CountAttemptsByEmail(ctx context.Context, email string, since time.Time) (int, time.Time, error) {
	query := `
		SELECT COUNT(*), MIN(created_at)
		FROM login_attempts
		WHERE email = $1 AND created_at >= $2
	`
	return r.countWindow(ctx, query, email, since)
}

func (r *PostgresRepository) CountFailedAttemptsByOrigin(ctx context.Context, originAddress string, since time.Time) (int, time.Time, error) {
	query := `
		SELECT COUNT(*), MIN(created_at)
		FROM login_attempts
		WHERE origin_address = $1 AND created_at >= $2 AND NOT succeeded
	`
	return r.countWindow(ctx, query, originAddress, since)
}

func (r *PostgresRepository) countWindow(ctx context.Context, query, key string, since time.Time) (int, time.Time, error) {
	var count int
	var oldest *time.Time

	err := r.db.QueryRow(ctx, query, key, since).Scan(&count, &oldest)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("failed to count login attempts: %w", err)
	}

	if oldest == nil {
		return count, time.Time{}, nil
	}

	return count, *oldest, nil
}

// isUniqueViolation reports whether the error is a unique constraint violation.
func isUniqueViolation(err error) bool {
	var pg *pgconn.PgError
	return errors.As(err, &pg) && pg.Code == pgerrcode.UniqueViolation
}
