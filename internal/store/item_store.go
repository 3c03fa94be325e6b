package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/Adithya700/Wadrobe/internal/domain"
)

// ItemStore is the relational repository for clothing items. All queries use
// bound parameters; values are never concatenated into SQL.
type ItemStore struct {
	db *sql.DB
}

func NewItemStore(db *sql.DB) *ItemStore {
	return &ItemStore{db: db}
}

func (s *ItemStore) Create(ctx context.Context, userID int64, name string, category domain.Category, color, imagePath string) (*domain.ClothingItem, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO clothing_items (user_id, name, category, color, image_path) VALUES (?, ?, ?, ?, ?)
	`, userID, name, string(category), color, imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *ItemStore) GetByID(ctx context.Context, id int64) (*domain.ClothingItem, error) {
	item := &domain.ClothingItem{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, name, category, color, image_path FROM clothing_items WHERE id = ?
	`, id).Scan(&item.ID, &item.UserID, &item.Name, &item.Category, &item.Color, &item.ImagePath)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return item, nil
}

// ListByUserID returns the user's items, oldest first. An unknown user yields
// an empty slice, not an error.
func (s *ItemStore) ListByUserID(ctx context.Context, userID int64) ([]*domain.ClothingItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, name, category, color, image_path FROM clothing_items
		WHERE user_id = ? ORDER BY id ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	var items []*domain.ClothingItem
	for rows.Next() {
		item := &domain.ClothingItem{}
		if err := rows.Scan(&item.ID, &item.UserID, &item.Name, &item.Category, &item.Color, &item.ImagePath); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating items: %w", err)
	}

	return items, nil
}
