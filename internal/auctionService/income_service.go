package auction

import (
	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/models"
	"fmt"
	"time"
)

// BidIncome aggregates a seller's auction income over a date range: one line
// per winning bid on the seller's products, revenue = winning amount, profit =
// winning amount minus the product's cost price.
func (s *BiddingService) BidIncome(sellerID string, from, to time.Time) (models.IncomeReport, error) {
	if sellerID == "" {
		return models.IncomeReport{}, fmt.Errorf("service: %w - empty seller ID", auctionerrors.ErrInvalidBid)
	}

	wbs, err := s.store.ListWinningBidsBySeller(sellerID, from, to)
	if err != nil {
		return models.IncomeReport{}, fmt.Errorf("service: failed to list winning bids for seller %s: %w", sellerID, err)
	}

	report := models.IncomeReport{
		SellerID: sellerID,
		From:     from,
		To:       to,
		Lines:    make([]models.IncomeLine, 0, len(wbs)),
	}

	for _, wb := range wbs {
		product, err := s.store.GetProduct(wb.ProductID)
		if err != nil {
			return models.IncomeReport{}, fmt.Errorf("service: failed to load product %s: %w", wb.ProductID, err)
		}

		winnerName := wb.UserID
		if user, err := s.store.GetUser(wb.UserID); err == nil {
			winnerName = user.Username
		}

		line := models.IncomeLine{
			AuctionID:   wb.AuctionID,
			ProductName: product.Name,
			WinnerName:  winnerName,
			Revenue:     wb.Amount,
			Profit:      wb.Amount - product.CostPrice,
			ClosedAt:    wb.ClosedAt,
		}
		report.Lines = append(report.Lines, line)
		report.TotalRevenue += line.Revenue
		report.TotalProfit += line.Profit
	}

	return report, nil
}
