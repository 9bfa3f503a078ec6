package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"social-analytics-backend/internal/domains/account/model"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresAccountRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresAccountRepository(pool *pgxpool.Pool) AccountRepository {
	return &postgresAccountRepository{pool: pool}
}

const accountColumns = `
	username, display_name, biography, profile_pic_url,
	follower_count, following_count, posts_count,
	account_type, verification_status,
	collection_date, last_updated
`

func scanAccount(row pgx.Row) (*model.Account, error) {
	account := &model.Account{}
	err := row.Scan(
		&account.Username,
		&account.DisplayName,
		&account.Biography,
		&account.ProfilePicURL,
		&account.FollowerCount,
		&account.FollowingCount,
		&account.PostsCount,
		&account.AccountType,
		&account.VerificationStatus,
		&account.CollectionDate,
		&account.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	return account, nil
}

// Upsert inserts or updates an account keyed on the username.
func (r *postgresAccountRepository) Upsert(ctx context.Context, account *model.Account) error {
	query := `
		INSERT INTO accounts (
			username, display_name, biography, profile_pic_url,
			follower_count, following_count, posts_count,
			account_type, verification_status,
			collection_date, last_updated
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (username) DO UPDATE SET
			display_name        = EXCLUDED.display_name,
			biography           = EXCLUDED.biography,
			profile_pic_url     = EXCLUDED.profile_pic_url,
			follower_count      = EXCLUDED.follower_count,
			following_count     = EXCLUDED.following_count,
			posts_count         = EXCLUDED.posts_count,
			account_type        = EXCLUDED.account_type,
			verification_status = EXCLUDED.verification_status,
			collection_date     = EXCLUDED.collection_date,
			last_updated        = EXCLUDED.last_updated
	`

	_, err := r.pool.Exec(ctx, query,
		account.Username,
		account.DisplayName,
		account.Biography,
		account.ProfilePicURL,
		account.FollowerCount,
		account.FollowingCount,
		account.PostsCount,
		account.AccountType,
		account.VerificationStatus,
		account.CollectionDate,
		account.LastUpdated,
	)

	if err != nil {
		return fmt.Errorf("failed to upsert account: %w", err)
	}

	return nil
}

func (r *postgresAccountRepository) GetByUsername(ctx context.Context, username string) (*model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE username = $1`

	account, err := scanAccount(r.pool.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return account, nil
}

func (r *postgresAccountRepository) List(ctx context.Context, limit, offset int) ([]model.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		ORDER BY follower_count DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	return collectAccounts(rows)
}

func (r *postgresAccountRepository) ListUsernames(ctx context.Context) ([]string, error) {
	query := `SELECT username FROM accounts ORDER BY username`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list usernames: %w", err)
	}
	defer rows.Close()

	var usernames []string
	for rows.Next() {
		var username string
		if err := rows.Scan(&username); err != nil {
			return nil, fmt.Errorf("failed to scan username: %w", err)
		}
		usernames = append(usernames, username)
	}

	return usernames, rows.Err()
}

func (r *postgresAccountRepository) TopByFollowers(ctx context.Context, n int) ([]model.Account, error) {
	return r.List(ctx, n, 0)
}

func (r *postgresAccountRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	return count, nil
}

func collectAccounts(rows pgx.Rows) ([]model.Account, error) {
	var accounts []model.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, *account)
	}
	return accounts, rows.Err()
}
