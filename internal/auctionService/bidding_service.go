package auction

import (
	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/models"
	"auction-engine/internal/repository"
	"fmt"
	"math"
	"time"
)

// BiddingService defines the business logic for bid placement and the read
// accessors consumed by reporting.
type BiddingService struct {
	store repository.AuctionStore
	now   func() time.Time
}

// NewBiddingService creates a new BiddingService instance using the wall clock
func NewBiddingService(store repository.AuctionStore) *BiddingService {
	return NewBiddingServiceWithClock(store, time.Now)
}

// NewBiddingServiceWithClock creates a BiddingService with an injected clock
// so close-time behavior is deterministic in tests.
func NewBiddingServiceWithClock(store repository.AuctionStore, clock func() time.Time) *BiddingService {
	return &BiddingService{
		store: store,
		now:   clock,
	}
}

// PlaceBid validates and records or updates a bidder's offer on an open
// auction. A repeat bid by the same bidder replaces the previous amount; no
// ranking happens here — the winner is computed only at closeout.
func (s *BiddingService) PlaceBid(auctionID, userID string, amount float64) (models.BidEntry, error) {
	if err := validateBid(auctionID, userID, amount); err != nil {
		return models.BidEntry{}, err
	}

	now := s.now().UTC()
	a, err := s.store.UpsertBid(auctionID, userID, amount, now)
	if err != nil {
		return models.BidEntry{}, fmt.Errorf("service: failed to record bid for auction %s by user %s: %w", auctionID, userID, err)
	}

	for _, b := range a.Bids {
		if b.UserID == userID {
			return b, nil
		}
	}
	// UpsertBid guarantees the entry exists on success
	return models.BidEntry{UserID: userID, Amount: amount, PlacedAt: now}, nil
}

// validateBid checks input validity before any store access. The close-time
// and existence checks happen inside the store's atomic upsert.
func validateBid(auctionID, userID string, amount float64) error {
	if auctionID == "" || userID == "" {
		return fmt.Errorf("service: %w - missing auctionID or userID", auctionerrors.ErrInvalidBid)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Errorf("service: %w - bid amount is not a finite number", auctionerrors.ErrInvalidBid)
	}
	if amount <= 0 {
		return fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidBid)
	}
	return nil
}

// GetAuction returns the auction record
func (s *BiddingService) GetAuction(auctionID string) (models.Auction, error) {
	if auctionID == "" {
		return models.Auction{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidBid)
	}

	a, err := s.store.GetAuction(auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}
	return a, nil
}

// GetBidsForAuction returns all current bid entries for an auction
func (s *BiddingService) GetBidsForAuction(auctionID string) ([]models.BidEntry, error) {
	if auctionID == "" {
		return nil, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidBid)
	}

	bids, err := s.store.GetBidsByAuction(auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for auction %s: %w", auctionID, err)
	}
	return bids, nil
}

// GetWinningBid returns the recorded winning bid for a closed-out auction
func (s *BiddingService) GetWinningBid(auctionID string) (models.WinningBid, error) {
	if auctionID == "" {
		return models.WinningBid{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidBid)
	}

	wb, err := s.store.GetWinningBidByAuction(auctionID)
	if err != nil {
		return models.WinningBid{}, fmt.Errorf("service: failed to get winning bid for auction %s: %w", auctionID, err)
	}
	return wb, nil
}
