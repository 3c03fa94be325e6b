package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/Adithya700/Wadrobe/internal/domain"
	"github.com/Adithya700/Wadrobe/internal/imagestore"
	"github.com/Adithya700/Wadrobe/internal/stylist"
)

// minOutfitItems is the smallest wardrobe that can produce an outfit: one
// item per slot.
const minOutfitItems = 3

// itemRepository is the subset of store.ItemStore that WardrobeService requires.
type itemRepository interface {
	Create(ctx context.Context, userID int64, name string, category domain.Category, color, imagePath string) (*domain.ClothingItem, error)
	ListByUserID(ctx context.Context, userID int64) ([]*domain.ClothingItem, error)
}

type WardrobeService struct {
	items          itemRepository
	images         imagestore.Store
	stylistAPI     stylist.Stylist
	stylistTimeout time.Duration
	logger         *slog.Logger
}

func NewWardrobeService(
	items itemRepository,
	images imagestore.Store,
	stylistAPI stylist.Stylist,
	stylistTimeout time.Duration,
	logger *slog.Logger,
) *WardrobeService {
	return &WardrobeService{
		items:          items,
		images:         images,
		stylistAPI:     stylistAPI,
		stylistTimeout: stylistTimeout,
		logger:         logger,
	}
}

// AddItem stores the uploaded image and inserts the item record. The file is
// written first; if the insert then fails, the file is deleted so storage
// does not accumulate orphans.
func (s *WardrobeService) AddItem(ctx context.Context, userID int64, name, category, color, originalFilename string, image io.Reader) (*domain.ClothingItem, error) {
	cat, err := domain.ParseCategory(category)
	if err != nil {
		return nil, fmt.Errorf("category %q: %w", category, err)
	}

	imagePath, err := s.images.Save(ctx, originalFilename, image)
	if err != nil {
		return nil, fmt.Errorf("failed to save image: %w", err)
	}
	s.logger.Debug("image saved", "user_id", userID, "image_path", imagePath)

	item, err := s.items.Create(ctx, userID, name, cat, color, imagePath)
	if err != nil {
		if derr := s.images.Delete(ctx, imagePath); derr != nil {
			s.logger.Error("failed to remove image after insert failure", "image_path", imagePath, "error", derr)
		}
		return nil, fmt.Errorf("failed to create item record: %w", err)
	}

	s.logger.Info("item uploaded", "user_id", userID, "item_id", item.ID, "category", item.Category)
	return item, nil
}

// GenerateOutfit loads the user's items, attaches their images, and asks the
// stylist for one top, one bottom, and one pair of shoes. Items whose image
// file is missing stay in the prompt as text but are not attached; if fewer
// than three images survive, the request fails before any external call.
func (s *WardrobeService) GenerateOutfit(ctx context.Context, userID int64) (*domain.Outfit, error) {
	items, err := s.items.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	if len(items) < minOutfitItems {
		return nil, fmt.Errorf("user %d has %d items: %w", userID, len(items), domain.ErrInsufficientItems)
	}

	candidates := make([]stylist.Candidate, 0, len(items))
	attached := 0
	for _, item := range items {
		c := stylist.Candidate{
			ID:       item.ID,
			Category: string(item.Category),
			Name:     item.Name,
			Color:    item.Color,
		}
		if data, mimeType, err := s.readImage(ctx, item.ImagePath); err != nil {
			s.logger.Warn("item image unavailable, describing in text only",
				"item_id", item.ID, "image_path", item.ImagePath, "error", err)
		} else {
			c.Image = data
			c.MimeType = mimeType
			attached++
		}
		candidates = append(candidates, c)
	}
	if attached < minOutfitItems {
		return nil, fmt.Errorf("only %d item images readable: %w", attached, domain.ErrMissingAssets)
	}

	if s.stylistTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.stylistTimeout)
		defer cancel()
	}

	s.logger.Info("outfit generation started", "user_id", userID, "candidates", len(candidates), "images", attached)
	selection, err := s.stylistAPI.Compose(ctx, candidates)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]*domain.ClothingItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	outfit := &domain.Outfit{Tip: selection.Tip}
	for _, slot := range []struct {
		id   int64
		dest **domain.ClothingItem
	}{
		{selection.TopID, &outfit.Top},
		{selection.BottomID, &outfit.Bottom},
		{selection.ShoesID, &outfit.Shoes},
	} {
		item, ok := byID[slot.id]
		if !ok {
			return nil, fmt.Errorf("%w: chosen id %d is not in the wardrobe", domain.ErrMalformedAIResponse, slot.id)
		}
		*slot.dest = item
	}

	s.logger.Info("outfit generated", "user_id", userID,
		"top_id", outfit.Top.ID, "bottom_id", outfit.Bottom.ID, "shoes_id", outfit.Shoes.ID)
	return outfit, nil
}

func (s *WardrobeService) readImage(ctx context.Context, imagePath string) ([]byte, string, error) {
	rc, mimeType, err := s.images.Open(ctx, imagePath)
	if err != nil {
		return nil, "", err
	}
	defer func() {
		if cerr := rc.Close(); cerr != nil {
			s.logger.Error("failed to close image reader", "image_path", imagePath, "error", cerr)
		}
	}()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read image: %w", err)
	}
	return data, mimeType, nil
}
