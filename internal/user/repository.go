package user

import (
	"context"
	"database/sql"
	"errors"

	"bazario-be/internal/logger"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, email, passwordHash string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Upsert(ctx context.Context, params UpsertParams) (*User, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const userColumns = `
	id, email, password_hash, first_name, last_name, phone,
	address, city, pin_code, profile_image_url, created_at, updated_at`

func scanUser(row *sql.Row) (*User, error) {
	var u User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.FirstName,
		&u.LastName,
		&u.Phone,
		&u.Address,
		&u.City,
		&u.PinCode,
		&u.ProfileImageURL,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) Create(ctx context.Context, email, passwordHash string) (*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateUser"),
	)

	query := `
	INSERT INTO users (id, email, password_hash)
	VALUES ($1, $2, $3)
	RETURNING` + userColumns

	row := r.db.QueryRowContext(ctx, query, uuid.NewString(), email, passwordHash)
	u, err := scanUser(row)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == PgUniqueViolation {
			return nil, ErrEmailExists
		}
		log.Error("failed to insert user", zap.Error(err))
		return nil, err
	}

	log.Info("user created", zap.String("user_id", u.ID))
	return u, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*User, error) {
	query := `SELECT` + userColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	query := `SELECT` + userColumns + ` FROM users WHERE email = $1`

	u, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return u, nil
}

// Upsert inserts the user on first authentication and merges the provided
// profile fields on subsequent calls. Nil params keep the stored column.
func (r *repository) Upsert(ctx context.Context, params UpsertParams) (*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "UpsertUser"),
		zap.String("user_id", params.ID),
	)

	query := `
	INSERT INTO users (
		id, email, first_name, last_name, phone,
		address, city, pin_code, profile_image_url
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (id) DO UPDATE SET
		email             = COALESCE(EXCLUDED.email, users.email),
		first_name        = COALESCE(EXCLUDED.first_name, users.first_name),
		last_name         = COALESCE(EXCLUDED.last_name, users.last_name),
		phone             = COALESCE(EXCLUDED.phone, users.phone),
		address           = COALESCE(EXCLUDED.address, users.address),
		city              = COALESCE(EXCLUDED.city, users.city),
		pin_code          = COALESCE(EXCLUDED.pin_code, users.pin_code),
		profile_image_url = COALESCE(EXCLUDED.profile_image_url, users.profile_image_url),
		updated_at        = NOW()
	RETURNING` + userColumns

	row := r.db.QueryRowContext(ctx, query,
		params.ID,
		params.Email,
		params.FirstName,
		params.LastName,
		params.Phone,
		params.Address,
		params.City,
		params.PinCode,
		params.ProfileImageURL,
	)

	u, err := scanUser(row)
	if err != nil {
		log.Error("failed to upsert user", zap.Error(err))
		return nil, err
	}

	return u, nil
}
