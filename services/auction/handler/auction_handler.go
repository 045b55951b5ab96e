package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
	"auction-engine/services/auction/helpers"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

type BiddingServiceInterface interface {
	PlaceBid(auctionID, userID string, amount float64) (model.BidEntry, error)
	GetAuction(auctionID string) (model.Auction, error)
	GetBidsForAuction(auctionID string) ([]model.BidEntry, error)
	GetWinningBid(auctionID string) (model.WinningBid, error)
	BidIncome(sellerID string, from, to time.Time) (model.IncomeReport, error)
}

type CloseoutServiceInterface interface {
	RunCloseout(now time.Time) (model.CloseoutSummary, error)
	AdminResolveDispute(auctionID, winnerID string, amount float64) (model.WinningBid, error)
}

type AuctionHandler struct {
	bidding  BiddingServiceInterface
	closeout CloseoutServiceInterface
}

func NewAuctionHandler(bidding BiddingServiceInterface, closeout CloseoutServiceInterface) *AuctionHandler {
	return &AuctionHandler{bidding: bidding, closeout: closeout}
}

// PlaceBidHandler handles POST /bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	entry, err := h.bidding.PlaceBid(req.AuctionID, req.UserID, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler":    "PlaceBidHandler",
			"auction_id": req.AuctionID,
			"user_id":    req.UserID,
			"error":      err.Error(),
		})
		return
	}

	resp := helpers.BidResponse{
		AuctionID: req.AuctionID,
		UserID:    entry.UserID,
		Amount:    entry.Amount,
		PlacedAt:  entry.PlacedAt.UTC().Format(time.RFC3339),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"auction_id": req.AuctionID,
		"user_id":    entry.UserID,
		"amount":     entry.Amount,
	})
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	a, err := h.bidding.GetAuction(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionHandler: error retrieving auction", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, a, "auction retrieved successfully")
	helpers.LogSuccess("GetAuctionHandler", "auction retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"status":     string(a.Status),
	})
}

// GetBidsByAuctionHandler handles GET /auctions/:auction_id/bids
func (h *AuctionHandler) GetBidsByAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	bids, err := h.bidding.GetBidsForAuction(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidsByAuctionHandler: error retrieving bids", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	if bids == nil {
		bids = []model.BidEntry{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByAuctionHandler", "bids retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(bids),
	})
}

// GetWinningBidHandler handles GET /auctions/:auction_id/winning
func (h *AuctionHandler) GetWinningBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	wb, err := h.bidding.GetWinningBid(auctionID)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrNoWinningBid) {
			utils.JSONError(c, http.StatusNotFound, err, "no winning bid found")
			utils.Info("GetWinningBidHandler: no winning bid found", map[string]any{"auction_id": auctionID})
			return
		}
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetWinningBidHandler: winning bid error", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	resp := helpers.WinningBidResponse{
		WinningBidID: wb.WinningBidID,
		AuctionID:    wb.AuctionID,
		ProductID:    wb.ProductID,
		UserID:       wb.UserID,
		Amount:       wb.Amount,
		ClosedAt:     wb.ClosedAt.UTC().Format(time.RFC3339),
	}

	utils.JSONResponse(c, http.StatusOK, resp, "winning bid retrieved successfully")
	helpers.LogSuccess("GetWinningBidHandler", "winning bid retrieved successfully", map[string]any{
		"winning_bid_id": wb.WinningBidID,
		"auction_id":     wb.AuctionID,
		"user_id":        wb.UserID,
		"amount":         wb.Amount,
	})
}

// RunCloseoutHandler handles POST /closeouts — the on-demand admin trigger for
// the closeout executor.
func (h *AuctionHandler) RunCloseoutHandler(c *gin.Context) {
	summary, err := h.closeout.RunCloseout(time.Now().UTC())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("RunCloseoutHandler: closeout failed", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, summary, "closeout completed")
	helpers.LogSuccess("RunCloseoutHandler", "closeout completed", map[string]any{
		"processed": summary.Processed,
		"errors":    len(summary.Errors),
	})
}

// ResolveDisputeHandler handles POST /auctions/:auction_id/dispute
func (h *AuctionHandler) ResolveDisputeHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.ResolveDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ResolveDisputeHandler", err)
		return
	}

	wb, err := h.closeout.AdminResolveDispute(auctionID, req.WinnerID, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("ResolveDisputeHandler: failed to resolve dispute", map[string]any{
			"auction_id": auctionID,
			"winner_id":  req.WinnerID,
			"error":      err.Error(),
		})
		return
	}

	resp := helpers.WinningBidResponse{
		WinningBidID: wb.WinningBidID,
		AuctionID:    wb.AuctionID,
		ProductID:    wb.ProductID,
		UserID:       wb.UserID,
		Amount:       wb.Amount,
		ClosedAt:     wb.ClosedAt.UTC().Format(time.RFC3339),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "dispute resolved")
	helpers.LogSuccess("ResolveDisputeHandler", "dispute resolved", map[string]any{
		"auction_id": auctionID,
		"winner_id":  req.WinnerID,
		"amount":     req.Amount,
	})
}

// BidIncomeHandler handles GET /sellers/:seller_id/income
func (h *AuctionHandler) BidIncomeHandler(c *gin.Context) {
	sellerID := c.Param("seller_id")

	from, err := parseTimeQuery(c, "from")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err, "invalid 'from' timestamp")
		return
	}
	to, err := parseTimeQuery(c, "to")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err, "invalid 'to' timestamp")
		return
	}

	report, err := h.bidding.BidIncome(sellerID, from, to)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("BidIncomeHandler: error building income report", map[string]any{"seller_id": sellerID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, report, "income report generated")
	helpers.LogSuccess("BidIncomeHandler", "income report generated", map[string]any{
		"seller_id":     sellerID,
		"lines":         len(report.Lines),
		"total_revenue": report.TotalRevenue,
	})
}

// parseTimeQuery reads an optional RFC 3339 query parameter; absent means the
// zero time (unbounded).
func parseTimeQuery(c *gin.Context, name string) (time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %s: %w", name, err)
	}
	return t, nil
}
