package repository

import (
	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
	"fmt"
	"sync"
	"time"
)

// AuctionStore defines the persistence interface for the auction engine
type AuctionStore interface {
	UpsertBid(auctionID, userID string, amount float64, now time.Time) (model.Auction, error)
	GetAuction(auctionID string) (model.Auction, error)
	GetBidsByAuction(auctionID string) ([]model.BidEntry, error)
	ListExpiredOpen(now time.Time) ([]model.Auction, error)
	CloseAuction(auctionID string) error
	CreateWinningBid(wb model.WinningBid) error
	GetWinningBidByAuction(auctionID string) (model.WinningBid, error)
	ListWinningBidsBySeller(sellerID string, from, to time.Time) ([]model.WinningBid, error)
	GetProduct(productID string) (model.Product, error)
	GetUser(userID string) (model.User, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionStore
type MemoryRepo struct {
	mu          sync.RWMutex
	auctions    map[string]model.Auction    // key: auctionID
	winningBids map[string]model.WinningBid // key: auctionID; at most one per auction
	products    map[string]model.Product    // key: productID
	users       map[string]model.User       // key: userID
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		auctions:    make(map[string]model.Auction),
		winningBids: make(map[string]model.WinningBid),
		products:    make(map[string]model.Product),
		users:       make(map[string]model.User),
	}
}

// UpsertBid records or replaces a bidder's offer on an open auction. The whole
// read-modify-write runs under the write lock, so concurrent bids by different
// bidders cannot overwrite each other. The close-time check happens here, under
// the same lock, and is authoritative even when the status has not been flipped
// yet by the closeout executor.
func (r *MemoryRepo) UpsertBid(auctionID, userID string, amount float64, now time.Time) (model.Auction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("upsert bid for auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	if a.Status != model.AuctionOpen || now.After(a.CloseAt) {
		return model.Auction{}, fmt.Errorf("upsert bid for auction %s: %w", auctionID, auctionerrors.ErrAuctionClosed)
	}

	bids := append([]model.BidEntry(nil), a.Bids...)
	replaced := false
	for i := range bids {
		if bids[i].UserID == userID {
			bids[i].Amount = amount
			bids[i].PlacedAt = now
			replaced = true
			break
		}
	}
	if !replaced {
		bids = append(bids, model.BidEntry{UserID: userID, Amount: amount, PlacedAt: now})
	}
	a.Bids = bids
	r.auctions[auctionID] = a

	return copyAuction(a), nil
}

// GetAuction returns a copy of the auction record
func (r *MemoryRepo) GetAuction(auctionID string) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return copyAuction(a), nil
}

// GetBidsByAuction returns all current bid entries for an auction
func (r *MemoryRepo) GetBidsByAuction(auctionID string) ([]model.BidEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.auctions[auctionID]
	if !ok {
		return nil, fmt.Errorf("get bids for auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return append([]model.BidEntry(nil), a.Bids...), nil
}

// ListExpiredOpen returns all auctions still OPEN whose close time has passed.
// Read-only; repeated calls before any closeout return the same set.
func (r *MemoryRepo) ListExpiredOpen(now time.Time) ([]model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	expired := make([]model.Auction, 0)
	for _, a := range r.auctions {
		if a.Status == model.AuctionOpen && a.CloseAt.Before(now) {
			expired = append(expired, copyAuction(a))
		}
	}
	return expired, nil
}

// CloseAuction transitions an auction OPEN -> CLOSED. The transition is
// conditional: if another closeout run already flipped the status, the call
// fails with ErrAlreadyClosed and the caller must skip further processing.
func (r *MemoryRepo) CloseAuction(auctionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.auctions[auctionID]
	if !ok {
		return fmt.Errorf("close auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	if a.Status != model.AuctionOpen {
		return fmt.Errorf("close auction %s: %w", auctionID, auctionerrors.ErrAlreadyClosed)
	}
	a.Status = model.AuctionClosed
	r.auctions[auctionID] = a
	return nil
}

// CreateWinningBid stores the winning-bid record for an auction. Each auction
// produces at most one record, ever.
func (r *MemoryRepo) CreateWinningBid(wb model.WinningBid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.winningBids[wb.AuctionID]; exists {
		return fmt.Errorf("create winning bid for auction %s: %w", wb.AuctionID, auctionerrors.ErrWinningBidExists)
	}
	r.winningBids[wb.AuctionID] = wb
	return nil
}

// GetWinningBidByAuction returns the recorded winning bid for a closed auction
func (r *MemoryRepo) GetWinningBidByAuction(auctionID string) (model.WinningBid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wb, ok := r.winningBids[auctionID]
	if !ok {
		return model.WinningBid{}, fmt.Errorf("get winning bid for auction %s: %w", auctionID, auctionerrors.ErrNoWinningBid)
	}
	return wb, nil
}

// ListWinningBidsBySeller returns winning bids whose product belongs to the
// seller, closed within [from, to). Zero-valued bounds are unbounded.
func (r *MemoryRepo) ListWinningBidsBySeller(sellerID string, from, to time.Time) ([]model.WinningBid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]model.WinningBid, 0)
	for _, wb := range r.winningBids {
		p, ok := r.products[wb.ProductID]
		if !ok || p.SellerID != sellerID {
			continue
		}
		if !from.IsZero() && wb.ClosedAt.Before(from) {
			continue
		}
		if !to.IsZero() && !wb.ClosedAt.Before(to) {
			continue
		}
		results = append(results, wb)
	}
	return results, nil
}

// GetProduct returns product details for winning-bid enrichment and reporting
func (r *MemoryRepo) GetProduct(productID string) (model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[productID]
	if !ok {
		return model.Product{}, fmt.Errorf("get product %s: %w", productID, auctionerrors.ErrProductNotFound)
	}
	return p, nil
}

// GetUser returns user details for notification and reporting
func (r *MemoryRepo) GetUser(userID string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	return u, nil
}

// AddAuction seeds an auction into the repository
func (r *MemoryRepo) AddAuction(a model.Auction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a.Status == "" {
		a.Status = model.AuctionOpen
	}
	r.auctions[a.AuctionID] = a
}

// AddProduct seeds a product into the repository
func (r *MemoryRepo) AddProduct(p model.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ProductID] = p
}

// AddUser seeds a user into the repository
func (r *MemoryRepo) AddUser(u model.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.UserID] = u
}

// copyAuction returns a copy with its own bids slice so callers never share
// backing arrays with the store.
func copyAuction(a model.Auction) model.Auction {
	a.Bids = append([]model.BidEntry(nil), a.Bids...)
	return a
}
