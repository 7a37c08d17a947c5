package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-courses-app/internal/core/domain/users"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Save(ctx context.Context, user users.User) error {
	query := `
		INSERT INTO users (id, first_name, last_name, email_address, password_hash)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query, user.ID, user.FirstName, user.LastName, user.EmailAddress, user.PasswordHash)
	if err != nil {
		// The UNIQUE constraint backs up the service's pre-create check.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return users.ErrEmailTaken
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (users.User, error) {
	// WHERE clause is a byte-exact match: email lookups are case-sensitive
	// as stored.
	query := `
		SELECT id, first_name, last_name, email_address, password_hash
		FROM users
		WHERE email_address = $1
	`
	row := r.db.QueryRow(ctx, query, email)

	var user users.User
	err := row.Scan(&user.ID, &user.FirstName, &user.LastName, &user.EmailAddress, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}
