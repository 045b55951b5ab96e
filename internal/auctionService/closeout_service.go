package auction

import (
	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/models"
	"auction-engine/internal/notifier"
	"auction-engine/internal/repository"
	"auction-engine/utils"
	"errors"
	"fmt"
	"sort"
	"time"
)

// CloseoutService finds expired open auctions, resolves their winners, records
// winning bids, and notifies winners. One bad auction never blocks the rest of
// the batch.
type CloseoutService struct {
	store    repository.AuctionStore
	notifier notifier.Notifier
	now      func() time.Time
}

// NewCloseoutService creates a new CloseoutService instance using the wall clock
func NewCloseoutService(store repository.AuctionStore, n notifier.Notifier) *CloseoutService {
	return NewCloseoutServiceWithClock(store, n, time.Now)
}

// NewCloseoutServiceWithClock creates a CloseoutService with an injected clock
func NewCloseoutServiceWithClock(store repository.AuctionStore, n notifier.Notifier, clock func() time.Time) *CloseoutService {
	return &CloseoutService{
		store:    store,
		notifier: n,
		now:      clock,
	}
}

// ResolveWinner picks the winning entry from an auction's bid list. Ties on
// the highest amount resolve to the entry that was placed first: the stable
// sort keeps insertion order among equal amounts. Returns false for an empty
// list.
func ResolveWinner(bids []models.BidEntry) (models.BidEntry, bool) {
	if len(bids) == 0 {
		return models.BidEntry{}, false
	}

	ranked := append([]models.BidEntry(nil), bids...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Amount > ranked[j].Amount
	})
	return ranked[0], true
}

// RunCloseout processes every auction whose close time has passed and whose
// status is still OPEN. Per auction: resolve the winner, flip the status,
// record the winning bid, notify the winner. Failures are collected per
// auction; notification failures are logged and swallowed. Safe to invoke
// repeatedly: already-closed auctions are excluded by the scanner, and the
// conditional status transition makes overlapping runs skip each other's work.
func (s *CloseoutService) RunCloseout(now time.Time) (models.CloseoutSummary, error) {
	expired, err := s.store.ListExpiredOpen(now)
	if err != nil {
		return models.CloseoutSummary{}, fmt.Errorf("service: failed to list expired auctions: %w", err)
	}

	summary := models.CloseoutSummary{
		Outcomes: make([]models.CloseoutOutcome, 0, len(expired)),
		Errors:   make([]models.CloseoutError, 0),
	}

	for _, a := range expired {
		outcome, err := s.closeOne(a)
		if err != nil {
			if errors.Is(err, auctionerrors.ErrAlreadyClosed) {
				// another run got there first
				continue
			}
			summary.Errors = append(summary.Errors, models.CloseoutError{
				AuctionID: a.AuctionID,
				Message:   err.Error(),
			})
			continue
		}
		summary.Outcomes = append(summary.Outcomes, outcome)
		summary.Processed++
	}

	return summary, nil
}

// closeOne handles a single expired auction: resolve -> transition -> record
// winning bid -> notify, in that order.
func (s *CloseoutService) closeOne(a models.Auction) (models.CloseoutOutcome, error) {
	winner, hasWinner := ResolveWinner(a.Bids)

	if err := s.store.CloseAuction(a.AuctionID); err != nil {
		return models.CloseoutOutcome{}, err
	}

	product, err := s.store.GetProduct(a.ProductID)
	if err != nil {
		return models.CloseoutOutcome{}, fmt.Errorf("service: failed to load product for auction %s: %w", a.AuctionID, err)
	}

	if !hasWinner {
		return models.CloseoutOutcome{
			AuctionID:     a.AuctionID,
			ProductName:   product.Name,
			WinningAmount: 0,
			WinnerName:    models.NoBidders,
		}, nil
	}

	user, err := s.store.GetUser(winner.UserID)
	if err != nil {
		return models.CloseoutOutcome{}, fmt.Errorf("service: failed to load winner for auction %s: %w", a.AuctionID, err)
	}

	wb := models.WinningBid{
		WinningBidID: utils.GenerateID(),
		AuctionID:    a.AuctionID,
		ProductID:    a.ProductID,
		UserID:       winner.UserID,
		Amount:       winner.Amount,
		ClosedAt:     a.CloseAt,
	}
	if err := s.store.CreateWinningBid(wb); err != nil {
		return models.CloseoutOutcome{}, fmt.Errorf("service: failed to record winning bid for auction %s: %w", a.AuctionID, err)
	}

	s.notify(user.Email, product.Name, winner.Amount, a.AuctionID)

	return models.CloseoutOutcome{
		AuctionID:     a.AuctionID,
		ProductName:   product.Name,
		WinningAmount: winner.Amount,
		WinnerName:    user.Username,
		WinnerEmail:   user.Email,
	}, nil
}

// AdminResolveDispute closes an auction and declares a winner outside the
// automatic flow. It skips the close-time and bid-list checks, but an auction
// still gets at most one winning bid: a second resolution fails with
// ErrWinningBidExists.
func (s *CloseoutService) AdminResolveDispute(auctionID, winnerID string, amount float64) (models.WinningBid, error) {
	if auctionID == "" || winnerID == "" {
		return models.WinningBid{}, fmt.Errorf("service: %w - missing auctionID or winnerID", auctionerrors.ErrInvalidBid)
	}

	a, err := s.store.GetAuction(auctionID)
	if err != nil {
		return models.WinningBid{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}

	product, err := s.store.GetProduct(a.ProductID)
	if err != nil {
		return models.WinningBid{}, fmt.Errorf("service: failed to load product for auction %s: %w", auctionID, err)
	}

	user, err := s.store.GetUser(winnerID)
	if err != nil {
		return models.WinningBid{}, fmt.Errorf("service: failed to load winner %s: %w", winnerID, err)
	}

	if err := s.store.CloseAuction(auctionID); err != nil && !errors.Is(err, auctionerrors.ErrAlreadyClosed) {
		return models.WinningBid{}, fmt.Errorf("service: failed to close auction %s: %w", auctionID, err)
	}

	wb := models.WinningBid{
		WinningBidID: utils.GenerateID(),
		AuctionID:    auctionID,
		ProductID:    a.ProductID,
		UserID:       winnerID,
		Amount:       amount,
		ClosedAt:     s.now().UTC(),
	}
	if err := s.store.CreateWinningBid(wb); err != nil {
		return models.WinningBid{}, fmt.Errorf("service: failed to record winning bid for auction %s: %w", auctionID, err)
	}

	s.notify(user.Email, product.Name, amount, auctionID)

	return wb, nil
}

// notify sends the winner email; failures are logged and swallowed so a broken
// mail relay cannot fail the closeout.
func (s *CloseoutService) notify(email, productName string, amount float64, auctionID string) {
	if err := s.notifier.NotifyWinner(email, productName, amount); err != nil {
		utils.Warn("winner notification failed", map[string]any{
			"auction_id": auctionID,
			"email":      email,
			"error":      err.Error(),
		})
	}
}
