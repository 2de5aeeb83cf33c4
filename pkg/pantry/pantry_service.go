package pantry

import (
	"FamilyPantry-Backend/domain"
	"FamilyPantry-Backend/entities"
	"FamilyPantry-Backend/pkg/house"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	PantryService interface {
		AddEntry(ctx context.Context, houseID string, req domain.AddPantryEntryRequest, userID string) (domain.PantryEntryResponse, error)
		GetPantry(ctx context.Context, houseID string, userID string) ([]domain.PantryEntryResponse, error)
		ConsumeEntry(ctx context.Context, houseID string, entryID string, req domain.ConsumeEntryRequest, userID string) (domain.PantryEntryResponse, error)
		UnconsumeEntry(ctx context.Context, houseID string, entryID string, userID string) (domain.PantryEntryResponse, error)
	}

	pantryService struct {
		pantryRepository PantryRepository
		houseRepository  house.HouseRepository
	}
)

func NewPantryService(pantryRepository PantryRepository, houseRepository house.HouseRepository) PantryService {
	return &pantryService{
		pantryRepository: pantryRepository,
		houseRepository:  houseRepository,
	}
}

func (s *pantryService) checkMembership(ctx context.Context, houseID string, userID string) error {
	exists, err := s.houseRepository.HouseExists(ctx, houseID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrHouseNotFound
	}

	isMember, err := s.houseRepository.IsMember(ctx, houseID, userID)
	if err != nil {
		return err
	}
	if !isMember {
		return domain.ErrNotHouseMember
	}
	return nil
}

func (s *pantryService) AddEntry(ctx context.Context, houseID string, req domain.AddPantryEntryRequest, userID string) (domain.PantryEntryResponse, error) {
	if err := s.checkMembership(ctx, houseID, userID); err != nil {
		return domain.PantryEntryResponse{}, err
	}

	if req.Quantity <= 0 {
		return domain.PantryEntryResponse{}, domain.ErrInvalidQuantity
	}

	houseUUID, err := uuid.Parse(houseID)
	if err != nil {
		return domain.PantryEntryResponse{}, domain.ErrParseUUID
	}

	var expiryDate *time.Time
	if req.ExpiryDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.PantryEntryResponse{}, domain.ErrInvalidExpiryDate
		}
		expiryDate = &parsed
	}

	entry := &entities.PantryEntry{
		ID:         uuid.New(),
		HouseID:    houseUUID,
		FoodRef:    req.FoodRef,
		Quantity:   req.Quantity,
		Unit:       req.Unit,
		ExpiryDate: expiryDate,
	}

	if err := s.pantryRepository.AddEntry(ctx, entry); err != nil {
		return domain.PantryEntryResponse{}, err
	}

	return toEntryResponse(entry), nil
}

func (s *pantryService) GetPantry(ctx context.Context, houseID string, userID string) ([]domain.PantryEntryResponse, error) {
	if err := s.checkMembership(ctx, houseID, userID); err != nil {
		return nil, err
	}

	entries, err := s.pantryRepository.Snapshot(ctx, houseID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.PantryEntryResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, toEntryResponse(entry))
	}
	return response, nil
}

// ConsumeEntry marks an entry consumed, or splits off the requested quantity
// when less than the full stock is used.
func (s *pantryService) ConsumeEntry(ctx context.Context, houseID string, entryID string, req domain.ConsumeEntryRequest, userID string) (domain.PantryEntryResponse, error) {
	if err := s.checkMembership(ctx, houseID, userID); err != nil {
		return domain.PantryEntryResponse{}, err
	}

	entry, err := s.getHouseEntry(ctx, houseID, entryID)
	if err != nil {
		return domain.PantryEntryResponse{}, err
	}

	if entry.Consumed {
		return domain.PantryEntryResponse{}, domain.ErrEntryAlreadyConsumed
	}

	if req.Quantity == nil || *req.Quantity >= entry.Quantity {
		if req.Quantity != nil && *req.Quantity > entry.Quantity {
			return domain.PantryEntryResponse{}, domain.ErrConsumeExceedsStock
		}
		entry.Consumed = true
	} else {
		entry.Quantity -= *req.Quantity
	}

	if err := s.pantryRepository.UpdateEntry(ctx, entry); err != nil {
		return domain.PantryEntryResponse{}, err
	}
	return toEntryResponse(entry), nil
}

func (s *pantryService) UnconsumeEntry(ctx context.Context, houseID string, entryID string, userID string) (domain.PantryEntryResponse, error) {
	if err := s.checkMembership(ctx, houseID, userID); err != nil {
		return domain.PantryEntryResponse{}, err
	}

	entry, err := s.getHouseEntry(ctx, houseID, entryID)
	if err != nil {
		return domain.PantryEntryResponse{}, err
	}

	entry.Consumed = false
	if err := s.pantryRepository.UpdateEntry(ctx, entry); err != nil {
		return domain.PantryEntryResponse{}, err
	}
	return toEntryResponse(entry), nil
}

func (s *pantryService) getHouseEntry(ctx context.Context, houseID string, entryID string) (*entities.PantryEntry, error) {
	entry, err := s.pantryRepository.GetEntryByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPantryEntryNotFound
		}
		return nil, err
	}

	if entry.HouseID.String() != houseID {
		return nil, domain.ErrPantryEntryNotFound
	}
	return entry, nil
}

func toEntryResponse(entry *entities.PantryEntry) domain.PantryEntryResponse {
	return domain.PantryEntryResponse{
		ID:         entry.ID.String(),
		FoodRef:    entry.FoodRef,
		Quantity:   entry.Quantity,
		Unit:       entry.Unit,
		ExpiryDate: entry.ExpiryDate,
		Consumed:   entry.Consumed,
	}
}
