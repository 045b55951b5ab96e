package helpers

// Request/Response DTOs
type PlaceBidRequest struct {
	AuctionID string  `json:"auction_id" binding:"required"`
	UserID    string  `json:"user_id" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
}

type BidResponse struct {
	AuctionID string  `json:"auction_id"`
	UserID    string  `json:"user_id"`
	Amount    float64 `json:"amount"`
	PlacedAt  string  `json:"placed_at"`
}

type ResolveDisputeRequest struct {
	WinnerID string  `json:"winner_id" binding:"required"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
}

type WinningBidResponse struct {
	WinningBidID string  `json:"winning_bid_id"`
	AuctionID    string  `json:"auction_id"`
	ProductID    string  `json:"product_id"`
	UserID       string  `json:"user_id"`
	Amount       float64 `json:"amount"`
	ClosedAt     string  `json:"closed_at"`
}
