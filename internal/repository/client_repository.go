package repository

import (
	"context"
	"database/sql"
	"errors"

	"agent-match/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrClientNotFound = errors.New("client not found")

type Client struct {
	ID   uuid.UUID
	Name string
}

type ClientRepository interface {
	Create(ctx context.Context, name string) (Client, error)
	GetByID(ctx context.Context, id uuid.UUID) (Client, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	ListAll(ctx context.Context) ([]Client, error)
}

type PostgresClientRepository struct {
	db database.DB
}

func NewPostgresClientRepository(db database.DB) *PostgresClientRepository {
	return &PostgresClientRepository{db: db}
}

func (r *PostgresClientRepository) Create(ctx context.Context, name string) (Client, error) {
	id := uuid.New()
	_, err := r.db.Exec(ctx, `INSERT INTO clients (id, name) VALUES ($1, $2)`, id, name)
	if err != nil {
		return Client{}, err
	}
	return Client{ID: id, Name: name}, nil
}

func (r *PostgresClientRepository) GetByID(ctx context.Context, id uuid.UUID) (Client, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name FROM clients WHERE id = $1`, id)

	var c Client
	if err := row.Scan(&c.ID, &c.Name); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Client{}, ErrClientNotFound
		}
		return Client{}, err
	}
	return c, nil
}

func (r *PostgresClientRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM clients WHERE id = $1)`, id)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresClientRepository) ListAll(ctx context.Context) ([]Client, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM clients ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Client, 0)
	for rows.Next() {
		var c Client
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
