package providers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"boardpulse/internal/domains"
	"boardpulse/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AuthProvider struct {
	db *pgxpool.Pool
}

func NewAuthProvider(db *pgxpool.Pool) *AuthProvider {
	return &AuthProvider{
		db: db,
	}
}

const accountColumns = `id, full_name, email, passhash AS password, role, created_at, disabled_at`

func (p *AuthProvider) SaveAccount(ctx context.Context, passHash string, account domains.Account) error {
	role := account.Role
	if role == "" {
		role = domains.RoleUser
	}

	_, err := p.db.Exec(ctx,
		`INSERT INTO accounts (full_name, email, passhash, role, created_at)
         VALUES ($1, $2, $3, $4, NOW())`,
		account.FullName, account.Email, passHash, role,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return storage.ErrUserExist
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

func (p *AuthProvider) GetAccountByEmail(ctx context.Context, email string) (domains.Account, error) {
	rows, err := p.db.Query(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE email = $1 AND disabled_at IS NULL`,
		email,
	)
	if err != nil {
		return domains.Account{}, fmt.Errorf("select account by email: %w", err)
	}
	defer rows.Close()

	account, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domains.Account])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domains.Account{}, storage.ErrNotFound
		}
		return domains.Account{}, err
	}
	return account, nil
}

func (p *AuthProvider) GetAccountByID(ctx context.Context, id int64) (domains.Account, error) {
	rows, err := p.db.Query(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = $1`,
		id,
	)
	if err != nil {
		return domains.Account{}, fmt.Errorf("select account by id: %w", err)
	}
	defer rows.Close()

	account, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domains.Account])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domains.Account{}, storage.ErrNotFound
		}
		return domains.Account{}, err
	}
	return account, nil
}

func (p *AuthProvider) SaveSession(ctx context.Context, session domains.Session) error {
	_, err := p.db.Exec(ctx,
		`INSERT INTO sessions (token, account_id, expires_at, created_at)
         VALUES ($1, $2, $3, NOW())`,
		session.Token, session.AccountID, session.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (p *AuthProvider) GetSession(ctx context.Context, token string) (domains.Session, error) {
	var session domains.Session
	err := p.db.QueryRow(ctx,
		`SELECT token, account_id, expires_at, created_at FROM sessions WHERE token = $1`,
		token,
	).Scan(&session.Token, &session.AccountID, &session.ExpiresAt, &session.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domains.Session{}, storage.ErrNotFound
		}
		return domains.Session{}, fmt.Errorf("select session: %w", err)
	}
	return session, nil
}

func (p *AuthProvider) DeleteSession(ctx context.Context, token string) error {
	_, err := p.db.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (p *AuthProvider) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	tag, err := p.db.Exec(ctx, `DELETE FROM sessions WHERE expires_at < $1`, now)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}
