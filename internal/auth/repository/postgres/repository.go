package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/bluearnk/bluearnk-api/internal/auth/domain"
)

// PgxIface is the slice of pgxpool.Pool the repository needs. pgxmock
// satisfies it, which is how the repository tests run without a database.
type PgxIface interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db PgxIface
}

func NewPostgresRepository(db PgxIface) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, email, password_hash, first_name, last_name, phone, role, active, email_verified, last_login_at, created_at, updated_at`

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1 LIMIT 1`, userColumns)
	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1 LIMIT 1`, userColumns)
	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO users (id, email, password_hash, first_name, last_name, phone, role, active, email_verified, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `, user.ID, user.Email, user.PasswordHash, user.FirstName, user.LastName,
		user.Phone, user.Role, user.Active, user.EmailVerified, user.CreatedAt, user.UpdatedAt)
	return err
}

func (r *PostgresRepository) List(ctx context.Context) ([]domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users ORDER BY created_at DESC`, userColumns)
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

func (r *PostgresRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET password_hash = $1, updated_at = now() WHERE id = $2
	`, passwordHash, userID)
	return err
}

func (r *PostgresRepository) SetEmailVerified(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET email_verified = TRUE, updated_at = now() WHERE id = $1
	`, userID)
	return err
}

func (r *PostgresRepository) SetActive(ctx context.Context, userID string, active bool) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET active = $1, updated_at = now() WHERE id = $2
	`, active, userID)
	return err
}

func (r *PostgresRepository) UpdateRole(ctx context.Context, userID, role string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET role = $1, updated_at = now() WHERE id = $2
	`, role, userID)
	return err
}

func (r *PostgresRepository) UpdateLastLogin(ctx context.Context, userID string, at time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET last_login_at = $1 WHERE id = $2
	`, at, userID)
	return err
}

func (r *PostgresRepository) RecordLoginAttempt(ctx context.Context, email, ip string, success bool) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO login_attempts (id, email, ip_address, attempt_time, successful)
		VALUES (gen_random_uuid(), $1, $2, now(), $3)
	`, email, ip, success)
	return err
}

func (r *PostgresRepository) CountRecentFailedAttempts(ctx context.Context, email, ip string, windowMinutes int) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM login_attempts
		WHERE email = $1 AND ip_address = $2 AND successful = FALSE
		  AND attempt_time > now() - ($3 * INTERVAL '1 minute')
	`, email, ip, windowMinutes).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count login attempts: %w", err)
	}
	return count, nil
}

func (r *PostgresRepository) StoreRefreshToken(ctx context.Context, rt *domain.RefreshToken) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO refresh_tokens (id, user_id, token_hash, ip_address, user_agent, expires_at, created_at, revoked_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, rt.ID, rt.UserID, rt.TokenHash, rt.IPAddress, rt.UserAgent, rt.ExpiresAt, rt.CreatedAt, rt.RevokedAt)
	return err
}

func (r *PostgresRepository) GetRefreshTokenByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, token_hash, ip_address, user_agent, expires_at, created_at, revoked_at
		FROM refresh_tokens
		WHERE token_hash = $1
		LIMIT 1
	`, tokenHash)

	var rt domain.RefreshToken
	err := row.Scan(&rt.ID, &rt.UserID, &rt.TokenHash, &rt.IPAddress, &rt.UserAgent,
		&rt.ExpiresAt, &rt.CreatedAt, &rt.RevokedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}
	return &rt, nil
}

func (r *PostgresRepository) RevokeRefreshToken(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE refresh_tokens SET revoked_at = now() WHERE id = $1 AND revoked_at IS NULL
	`, id)
	return err
}

func (r *PostgresRepository) RevokeAllRefreshTokensByUserID(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE refresh_tokens SET revoked_at = now() WHERE user_id = $1 AND revoked_at IS NULL
	`, userID)
	return err
}

func (r *PostgresRepository) GetSessionsByUserID(ctx context.Context, userID string) ([]domain.RefreshToken, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, token_hash, ip_address, user_agent, expires_at, created_at, revoked_at
		FROM refresh_tokens
		WHERE user_id = $1 AND revoked_at IS NULL AND expires_at > now()
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []domain.RefreshToken
	for rows.Next() {
		var rt domain.RefreshToken
		if err := rows.Scan(&rt.ID, &rt.UserID, &rt.TokenHash, &rt.IPAddress, &rt.UserAgent,
			&rt.ExpiresAt, &rt.CreatedAt, &rt.RevokedAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, rt)
	}
	return sessions, rows.Err()
}

func (r *PostgresRepository) CreateEmailVerificationToken(ctx context.Context, t *domain.EmailVerificationToken) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO email_verification_tokens (id, user_id, token_hash, otp, expires_at, used_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, t.ID, t.UserID, t.TokenHash, t.OTP, t.ExpiresAt, t.UsedAt, t.CreatedAt)
	return err
}

func (r *PostgresRepository) GetEmailVerificationByOTP(ctx context.Context, userID, otp string) (*domain.EmailVerificationToken, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, token_hash, otp, expires_at, used_at, created_at
		FROM email_verification_tokens
		WHERE user_id = $1 AND otp = $2 AND used_at IS NULL AND expires_at > now()
		LIMIT 1
	`, userID, otp)
	return scanVerificationToken(row)
}

func (r *PostgresRepository) GetEmailVerificationByHash(ctx context.Context, tokenHash string) (*domain.EmailVerificationToken, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, token_hash, otp, expires_at, used_at, created_at
		FROM email_verification_tokens
		WHERE token_hash = $1 AND used_at IS NULL AND expires_at > now()
		LIMIT 1
	`, tokenHash)
	return scanVerificationToken(row)
}

func (r *PostgresRepository) MarkEmailVerificationUsed(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE email_verification_tokens SET used_at = now() WHERE id = $1 AND used_at IS NULL
	`, id)
	return err
}

func (r *PostgresRepository) InvalidateEmailVerificationTokens(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE email_verification_tokens SET used_at = now() WHERE user_id = $1 AND used_at IS NULL
	`, userID)
	return err
}

func (r *PostgresRepository) CreatePasswordResetToken(ctx context.Context, t *domain.PasswordResetToken) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO password_reset_tokens (id, user_id, token_hash, expires_at, used_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, t.ID, t.UserID, t.TokenHash, t.ExpiresAt, t.UsedAt, t.CreatedAt)
	return err
}

func (r *PostgresRepository) GetPasswordResetByHash(ctx context.Context, tokenHash string) (*domain.PasswordResetToken, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, token_hash, expires_at, used_at, created_at
		FROM password_reset_tokens
		WHERE token_hash = $1 AND used_at IS NULL AND expires_at > now()
		LIMIT 1
	`, tokenHash)

	var t domain.PasswordResetToken
	err := row.Scan(&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.UsedAt, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get password reset token: %w", err)
	}
	return &t, nil
}

func (r *PostgresRepository) MarkPasswordResetUsed(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE password_reset_tokens SET used_at = now() WHERE id = $1 AND used_at IS NULL
	`, id)
	return err
}

func (r *PostgresRepository) InvalidatePasswordResetTokens(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE password_reset_tokens SET used_at = now() WHERE user_id = $1 AND used_at IS NULL
	`, userID)
	return err
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.FirstName, &user.LastName,
		&user.Phone, &user.Role, &user.Active, &user.EmailVerified, &user.LastLoginAt,
		&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func scanVerificationToken(row pgx.Row) (*domain.EmailVerificationToken, error) {
	var t domain.EmailVerificationToken
	err := row.Scan(&t.ID, &t.UserID, &t.TokenHash, &t.OTP, &t.ExpiresAt, &t.UsedAt, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get verification token: %w", err)
	}
	return &t, nil
}
