package models

import "time"

// Auction lifecycle statuses. An auction starts OPEN and is flipped to CLOSED
// exactly once, either by the closeout executor or by the admin dispute path.
type AuctionStatus string

const (
	AuctionOpen   AuctionStatus = "OPEN"
	AuctionClosed AuctionStatus = "CLOSED"
)

// NoBidders is the winner name reported for auctions that expired without bids.
const NoBidders = "No bidders"

// User represents a marketplace account able to bid on auctions
type User struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Product represents a listed product an auction is attached to
type Product struct {
	ProductID string  `json:"product_id"`
	SellerID  string  `json:"seller_id"`
	Name      string  `json:"name"`
	CostPrice float64 `json:"cost_price"`
}

// BidEntry is a single bidder's current offer on an auction. An auction holds
// at most one entry per bidder; a repeat bid overwrites the amount in place.
type BidEntry struct {
	UserID   string    `json:"user_id"`
	Amount   float64   `json:"amount"`
	PlacedAt time.Time `json:"placed_at"`
}

// Auction represents a timed auction on a product
type Auction struct {
	AuctionID  string        `json:"auction_id"`
	ProductID  string        `json:"product_id"`
	StartPrice float64       `json:"start_price"`
	CloseAt    time.Time     `json:"close_at"`
	Bids       []BidEntry    `json:"bids"`
	Status     AuctionStatus `json:"status"`
}

// WinningBid is the immutable record linking a closed auction to its resolved
// winner. At most one exists per auction.
type WinningBid struct {
	WinningBidID string    `json:"winning_bid_id"`
	AuctionID    string    `json:"auction_id"`
	ProductID    string    `json:"product_id"`
	UserID       string    `json:"user_id"`
	Amount       float64   `json:"amount"`
	ClosedAt     time.Time `json:"closed_at"`
}

// CloseoutOutcome is the per-auction result of one executor run. WinnerName is
// NoBidders and WinningAmount 0 when the auction expired without bids.
type CloseoutOutcome struct {
	AuctionID     string  `json:"auction_id"`
	ProductName   string  `json:"product_name"`
	WinningAmount float64 `json:"winning_amount"`
	WinnerName    string  `json:"winner_name"`
	WinnerEmail   string  `json:"winner_email,omitempty"`
}

// CloseoutError captures a failure while processing a single auction; the rest
// of the batch is unaffected.
type CloseoutError struct {
	AuctionID string `json:"auction_id"`
	Message   string `json:"message"`
}

// CloseoutSummary is the aggregate result of one executor run
type CloseoutSummary struct {
	Processed int               `json:"processed"`
	Outcomes  []CloseoutOutcome `json:"outcomes"`
	Errors    []CloseoutError   `json:"errors"`
}

// IncomeLine is one winning bid viewed as seller income
type IncomeLine struct {
	AuctionID   string    `json:"auction_id"`
	ProductName string    `json:"product_name"`
	WinnerName  string    `json:"winner_name"`
	Revenue     float64   `json:"revenue"`
	Profit      float64   `json:"profit"`
	ClosedAt    time.Time `json:"closed_at"`
}

// IncomeReport aggregates a seller's auction income over a date range
type IncomeReport struct {
	SellerID     string       `json:"seller_id"`
	From         time.Time    `json:"from"`
	To           time.Time    `json:"to"`
	Lines        []IncomeLine `json:"lines"`
	TotalRevenue float64      `json:"total_revenue"`
	TotalProfit  float64      `json:"total_profit"`
}
