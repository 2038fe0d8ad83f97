package userrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/vending/internal/domain"
	"github.com/GlebRadaev/vending/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const userColumns = "id, name, rfid_tag, credits, created_at, updated_at"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Name, &user.RFIDTag, &user.Credits, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// one runs a single-row statement. A missing row, or an id the store cannot
// parse, is reported as nil, nil.
func (repo *Repository) one(ctx context.Context, msg, query string, args ...any) (*domain.User, error) {
	user, err := scanUser(repo.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) || pg.IsInvalidText(err) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error(msg, zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`
	return repo.one(ctx, "can't find user", query, id)
}

func (repo *Repository) FindByRFID(ctx context.Context, rfidTag string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE rfid_tag = $1
	`
	return repo.one(ctx, "can't find user by rfid", query, rfidTag)
}

func (repo *Repository) List(ctx context.Context) ([]domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY created_at
	`
	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate user rows", zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (id, name, rfid_tag, credits)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + userColumns
	created, err := scanUser(repo.db.QueryRow(ctx, query, user.ID, user.Name, user.RFIDTag, user.Credits))
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// Debit subtracts amount only if the balance covers it. It returns nil, nil
// when the guard rejects the update or the user does not exist.
func (repo *Repository) Debit(ctx context.Context, id string, amount int64) (*domain.User, error) {
	query := `
		UPDATE users
		SET credits = credits - $1, updated_at = now()
		WHERE id = $2 AND credits >= $1
		RETURNING ` + userColumns
	return repo.one(ctx, "can't debit user", query, amount, id)
}

func (repo *Repository) Credit(ctx context.Context, id string, amount int64) (*domain.User, error) {
	query := `
		UPDATE users
		SET credits = credits + $1, updated_at = now()
		WHERE id = $2
		RETURNING ` + userColumns
	return repo.one(ctx, "can't credit user", query, amount, id)
}

func (repo *Repository) SetCredits(ctx context.Context, id string, credits int64) (*domain.User, error) {
	query := `
		UPDATE users
		SET credits = $1, updated_at = now()
		WHERE id = $2
		RETURNING ` + userColumns
	return repo.one(ctx, "can't set user credits", query, credits, id)
}
