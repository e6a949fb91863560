package auction

import (
	"fmt"
	"sync"
	"time"

	"agro-trade/internal/auctionerrors"
	"agro-trade/internal/models"
	"agro-trade/internal/repository"
	"agro-trade/utils"
)

// Default display names substituted when the caller omits one.
const (
	DefaultFarmerName = "Unknown Farmer"
	DefaultTraderName = "Unknown Trader"
)

// AuctionService implements the auction ledger: crop listing, ascending
// bids, ownership-gated closing and payment recording, all over a pluggable
// CropStore. Every operation is one load-mutate-save cycle over the full
// collection; the mutex serializes those cycles so concurrent bids against a
// last-writer-wins store cannot drop each other's writes.
type AuctionService struct {
	mu   sync.Mutex
	repo repository.CropStore
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(repo repository.CropStore) *AuctionService {
	return &AuctionService{
		repo: repo,
	}
}

// CreateCrop lists a new crop for auction with its price floor. The crop
// starts active with CurrentPrice equal to minPrice and no bids.
func (s *AuctionService) CreateCrop(cropName string, quantity, minPrice float64, location, farmerID, farmerName string) (models.Crop, error) {
	if cropName == "" || location == "" || farmerID == "" {
		return models.Crop{}, fmt.Errorf("service: %w - cropName, location and farmerId are required", auctionerrors.ErrInvalidInput)
	}
	if quantity == 0 || minPrice == 0 {
		return models.Crop{}, fmt.Errorf("service: %w - quantity and minPrice are required", auctionerrors.ErrInvalidInput)
	}
	if farmerName == "" {
		farmerName = DefaultFarmerName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	crops, err := s.repo.LoadAll()
	if err != nil {
		return models.Crop{}, fmt.Errorf("service: failed to load crops: %w", err)
	}

	crop := models.Crop{
		CropID:       utils.GenerateID(),
		CropName:     cropName,
		Quantity:     quantity,
		MinPrice:     minPrice,
		CurrentPrice: minPrice,
		Location:     location,
		FarmerID:     farmerID,
		FarmerName:   farmerName,
		Status:       models.StatusActive,
		Bids:         []models.Bid{},
		CreatedAt:    time.Now().UTC(),
	}

	crops = append(crops, crop)
	if err := s.repo.SaveAll(crops); err != nil {
		return models.Crop{}, fmt.Errorf("service: failed to save crop %s: %w", crop.CropID, err)
	}

	return crop, nil
}

// PlaceBid validates and records a trader's bid against a crop. The bid must
// be strictly greater than the crop's current price; an equal bid is
// rejected.
func (s *AuctionService) PlaceBid(cropID string, amount float64, traderID, traderName string) (models.Bid, models.Crop, error) {
	if cropID == "" || traderID == "" {
		return models.Bid{}, models.Crop{}, fmt.Errorf("service: %w - cropId and traderId are required", auctionerrors.ErrInvalidInput)
	}
	if amount == 0 {
		return models.Bid{}, models.Crop{}, fmt.Errorf("service: %w - bidAmount is required", auctionerrors.ErrInvalidInput)
	}
	if traderName == "" {
		traderName = DefaultTraderName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	crops, err := s.repo.LoadAll()
	if err != nil {
		return models.Bid{}, models.Crop{}, fmt.Errorf("service: failed to load crops: %w", err)
	}

	idx := findCrop(crops, cropID)
	if idx < 0 {
		return models.Bid{}, models.Crop{}, fmt.Errorf("service: crop %s: %w", cropID, auctionerrors.ErrCropNotFound)
	}
	crop := &crops[idx]

	if crop.Status != models.StatusActive {
		return models.Bid{}, models.Crop{}, fmt.Errorf("service: crop %s: %w", cropID, auctionerrors.ErrAuctionClosed)
	}
	if amount <= crop.CurrentPrice {
		return models.Bid{}, models.Crop{}, fmt.Errorf("service: %w - bid must be higher than current price ₹%g", auctionerrors.ErrBidTooLow, crop.CurrentPrice)
	}

	bid := models.Bid{
		BidID:      utils.GenerateID(),
		TraderID:   traderID,
		TraderName: traderName,
		Amount:     amount,
		CreatedAt:  time.Now().UTC(),
	}

	crop.Bids = append(crop.Bids, bid)
	crop.CurrentPrice = amount
	crop.HighestBidder = &models.Trader{TraderID: traderID, TraderName: traderName}

	if err := s.repo.SaveAll(crops); err != nil {
		return models.Bid{}, models.Crop{}, fmt.Errorf("service: failed to save bid for crop %s by trader %s: %w", cropID, traderID, err)
	}

	return bid, crop.Clone(), nil
}

// CloseAuction ends an auction. Only the listing farmer may close it; a
// mismatched farmerID reports ErrCropNotFound so a non-owner cannot tell a
// foreign crop from a missing one. Closing an already-closed crop succeeds.
func (s *AuctionService) CloseAuction(cropID, farmerID string) error {
	if cropID == "" || farmerID == "" {
		return fmt.Errorf("service: %w - cropId and farmerId are required", auctionerrors.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	crops, err := s.repo.LoadAll()
	if err != nil {
		return fmt.Errorf("service: failed to load crops: %w", err)
	}

	idx := -1
	for i := range crops {
		if crops[i].CropID == cropID && crops[i].FarmerID == farmerID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("service: crop %s for farmer %s: %w", cropID, farmerID, auctionerrors.ErrCropNotFound)
	}

	crops[idx].Status = models.StatusClosed
	if err := s.repo.SaveAll(crops); err != nil {
		return fmt.Errorf("service: failed to close crop %s: %w", cropID, err)
	}
	return nil
}

// RecordPayment attaches a payment to a crop. The original marketplace never
// checked that the payer is the highest bidder, that the auction is closed,
// or that no payment exists; a later call simply overwrites the earlier one.
func (s *AuctionService) RecordPayment(cropID, traderID, paymentID string) error {
	if cropID == "" || traderID == "" || paymentID == "" {
		return fmt.Errorf("service: %w - cropId, traderId and paymentId are required", auctionerrors.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	crops, err := s.repo.LoadAll()
	if err != nil {
		return fmt.Errorf("service: failed to load crops: %w", err)
	}

	idx := findCrop(crops, cropID)
	if idx < 0 {
		return fmt.Errorf("service: crop %s: %w", cropID, auctionerrors.ErrCropNotFound)
	}

	crops[idx].Payment = &models.Payment{
		TraderID:  traderID,
		PaymentID: paymentID,
		Timestamp: time.Now().UTC(),
		Status:    "completed",
	}

	if err := s.repo.SaveAll(crops); err != nil {
		return fmt.Errorf("service: failed to save payment %s for crop %s: %w", paymentID, cropID, err)
	}
	return nil
}

// GetAllCrops returns every crop listing, active and closed.
func (s *AuctionService) GetAllCrops() ([]models.Crop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	crops, err := s.repo.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("service: failed to load crops: %w", err)
	}
	if crops == nil {
		crops = []models.Crop{}
	}
	return crops, nil
}

// findCrop returns the index of the crop with id, or -1.
func findCrop(crops []models.Crop, id string) int {
	for i := range crops {
		if crops[i].CropID == id {
			return i
		}
	}
	return -1
}
