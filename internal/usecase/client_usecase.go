package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"agent-match/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrAlreadyExists = errors.New("already exists")

type ClientItem struct {
	ID   uuid.UUID
	Name string
}

type ClientUsecase interface {
	AddClient(ctx context.Context, name string) (ClientItem, error)
	ListClients(ctx context.Context) ([]ClientItem, error)
}

type Client struct {
	repo repository.ClientRepository
}

func NewClientUsecase(repo repository.ClientRepository) *Client {
	return &Client{repo: repo}
}

func (u *Client) AddClient(ctx context.Context, name string) (ClientItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ClientItem{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	created, err := u.repo.Create(ctx, name)
	if err != nil {
		if isUniqueViolation(err) {
			return ClientItem{}, fmt.Errorf("%w: client %q", ErrAlreadyExists, name)
		}
		return ClientItem{}, storageErr(err)
	}
	return ClientItem{ID: created.ID, Name: created.Name}, nil
}

func (u *Client) ListClients(ctx context.Context) ([]ClientItem, error) {
	items, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, storageErr(err)
	}

	out := make([]ClientItem, 0, len(items))
	for _, it := range items {
		out = append(out, ClientItem{ID: it.ID, Name: it.Name})
	}
	return out, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
