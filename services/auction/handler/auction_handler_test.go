package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
	"auction-engine/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func setupHandlerTest(t *testing.T) (*MockBiddingServiceInterface, *MockCloseoutServiceInterface, *gin.Engine) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockBidding := NewMockBiddingServiceInterface(ctrl)
	mockCloseout := NewMockCloseoutServiceInterface(ctrl)
	h := NewAuctionHandler(mockBidding, mockCloseout)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/bids", h.PlaceBidHandler)
	router.GET("/auctions/:auction_id", h.GetAuctionHandler)
	router.GET("/auctions/:auction_id/bids", h.GetBidsByAuctionHandler)
	router.GET("/auctions/:auction_id/winning", h.GetWinningBidHandler)
	router.POST("/auctions/:auction_id/dispute", h.ResolveDisputeHandler)
	router.POST("/closeouts", h.RunCloseoutHandler)
	router.GET("/sellers/:seller_id/income", h.BidIncomeHandler)

	return mockBidding, mockCloseout, router
}

func doRequest(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case string:
		reqBody = []byte(v)
	default:
		b, err := json.Marshal(v)
		require.NoError(t, err)
		reqBody = b
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp, w
}

// Test PlaceBidHandler
func TestPlaceBidHandler(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func(mockBidding *MockBiddingServiceInterface)
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name: "success_valid_bid",
			requestBody: helpers.PlaceBidRequest{
				AuctionID: "auction1",
				UserID:    "user1",
				Amount:    120,
			},
			mockSetup: func(mockBidding *MockBiddingServiceInterface) {
				mockBidding.EXPECT().
					PlaceBid("auction1", "user1", 120.0).
					Return(model.BidEntry{UserID: "user1", Amount: 120, PlacedAt: now}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "bid recorded successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "auction1", data["auction_id"])
				require.Equal(t, "user1", data["user_id"])
				require.Equal(t, 120.0, data["amount"])
				_, err := time.Parse(time.RFC3339, data["placed_at"].(string))
				require.NoError(t, err)
			},
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func(*MockBiddingServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "missing_auction_id",
			requestBody: helpers.PlaceBidRequest{
				UserID: "user1",
				Amount: 50,
			},
			mockSetup:      func(*MockBiddingServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "non_positive_amount",
			requestBody: map[string]any{
				"auction_id": "auction1",
				"user_id":    "user1",
				"amount":     -5.0,
			},
			mockSetup:      func(*MockBiddingServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "auction_not_found",
			requestBody: helpers.PlaceBidRequest{
				AuctionID: "auctionX",
				UserID:    "user1",
				Amount:    120,
			},
			mockSetup: func(mockBidding *MockBiddingServiceInterface) {
				mockBidding.EXPECT().
					PlaceBid("auctionX", "user1", 120.0).
					Return(model.BidEntry{}, auctionerrors.ErrAuctionNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "auction not found",
		},
		{
			name: "auction_already_closed",
			requestBody: helpers.PlaceBidRequest{
				AuctionID: "auction1",
				UserID:    "user1",
				Amount:    120,
			},
			mockSetup: func(mockBidding *MockBiddingServiceInterface) {
				mockBidding.EXPECT().
					PlaceBid("auction1", "user1", 120.0).
					Return(model.BidEntry{}, auctionerrors.ErrAuctionClosed)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "auction has already closed",
		},
		{
			name: "internal_error",
			requestBody: helpers.PlaceBidRequest{
				AuctionID: "auction1",
				UserID:    "user1",
				Amount:    120,
			},
			mockSetup: func(mockBidding *MockBiddingServiceInterface) {
				mockBidding.EXPECT().
					PlaceBid("auction1", "user1", 120.0).
					Return(model.BidEntry{}, errors.New("store down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			mockBidding, _, router := setupHandlerTest(t)
			tc.mockSetup(mockBidding)

			resp, w := doRequest(t, router, http.MethodPost, "/bids", tc.requestBody)
			require.Equal(t, tc.expectedStatus, w.Code)
			require.Equal(t, tc.expectedMsg, resp["message"])

			if tc.validateData != nil {
				tc.validateData(t, resp["data"].(map[string]any))
			}
		})
	}
}

// Test RunCloseoutHandler
func TestRunCloseoutHandler(t *testing.T) {
	t.Run("returns_summary", func(t *testing.T) {
		_, mockCloseout, router := setupHandlerTest(t)

		mockCloseout.EXPECT().
			RunCloseout(gomock.Any()).
			Return(model.CloseoutSummary{
				Processed: 2,
				Outcomes: []model.CloseoutOutcome{
					{AuctionID: "auction1", ProductName: "Denim Jacket", WinningAmount: 140, WinnerName: "bob", WinnerEmail: "bob@example.com"},
					{AuctionID: "auction2", ProductName: "Silk Scarf", WinningAmount: 0, WinnerName: model.NoBidders},
				},
				Errors: []model.CloseoutError{},
			}, nil)

		resp, w := doRequest(t, router, http.MethodPost, "/closeouts", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "closeout completed", resp["message"])

		data := resp["data"].(map[string]any)
		require.Equal(t, 2.0, data["processed"])
		outcomes := data["outcomes"].([]any)
		require.Len(t, outcomes, 2)
		noBidders := outcomes[1].(map[string]any)
		require.Equal(t, model.NoBidders, noBidders["winner_name"])
		require.Equal(t, 0.0, noBidders["winning_amount"])
	})

	t.Run("executor_failure", func(t *testing.T) {
		_, mockCloseout, router := setupHandlerTest(t)

		mockCloseout.EXPECT().
			RunCloseout(gomock.Any()).
			Return(model.CloseoutSummary{}, errors.New("db unavailable"))

		_, w := doRequest(t, router, http.MethodPost, "/closeouts", nil)
		require.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

// Test ResolveDisputeHandler
func TestResolveDisputeHandler(t *testing.T) {
	now := time.Now().UTC()

	t.Run("success", func(t *testing.T) {
		_, mockCloseout, router := setupHandlerTest(t)

		mockCloseout.EXPECT().
			AdminResolveDispute("auction1", "user1", 175.0).
			Return(model.WinningBid{
				WinningBidID: "wb1",
				AuctionID:    "auction1",
				ProductID:    "prod1",
				UserID:       "user1",
				Amount:       175,
				ClosedAt:     now,
			}, nil)

		resp, w := doRequest(t, router, http.MethodPost, "/auctions/auction1/dispute",
			helpers.ResolveDisputeRequest{WinnerID: "user1", Amount: 175})
		require.Equal(t, http.StatusCreated, w.Code)

		data := resp["data"].(map[string]any)
		require.Equal(t, "wb1", data["winning_bid_id"])
		require.Equal(t, "user1", data["user_id"])
		require.Equal(t, 175.0, data["amount"])
	})

	t.Run("missing_winner_id", func(t *testing.T) {
		_, _, router := setupHandlerTest(t)

		_, w := doRequest(t, router, http.MethodPost, "/auctions/auction1/dispute",
			map[string]any{"amount": 175})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("already_resolved", func(t *testing.T) {
		_, mockCloseout, router := setupHandlerTest(t)

		mockCloseout.EXPECT().
			AdminResolveDispute("auction1", "user1", 175.0).
			Return(model.WinningBid{}, auctionerrors.ErrWinningBidExists)

		_, w := doRequest(t, router, http.MethodPost, "/auctions/auction1/dispute",
			helpers.ResolveDisputeRequest{WinnerID: "user1", Amount: 175})
		require.Equal(t, http.StatusConflict, w.Code)
	})
}

// Test GetWinningBidHandler
func TestGetWinningBidHandler(t *testing.T) {
	now := time.Now().UTC()

	t.Run("recorded_winning_bid", func(t *testing.T) {
		mockBidding, _, router := setupHandlerTest(t)

		mockBidding.EXPECT().
			GetWinningBid("auction1").
			Return(model.WinningBid{
				WinningBidID: "wb1",
				AuctionID:    "auction1",
				ProductID:    "prod1",
				UserID:       "user2",
				Amount:       140,
				ClosedAt:     now,
			}, nil)

		resp, w := doRequest(t, router, http.MethodGet, "/auctions/auction1/winning", nil)
		require.Equal(t, http.StatusOK, w.Code)

		data := resp["data"].(map[string]any)
		require.Equal(t, "user2", data["user_id"])
		require.Equal(t, 140.0, data["amount"])
	})

	t.Run("no_winning_bid", func(t *testing.T) {
		mockBidding, _, router := setupHandlerTest(t)

		mockBidding.EXPECT().
			GetWinningBid("auction1").
			Return(model.WinningBid{}, auctionerrors.ErrNoWinningBid)

		_, w := doRequest(t, router, http.MethodGet, "/auctions/auction1/winning", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// Test BidIncomeHandler
func TestBidIncomeHandler(t *testing.T) {
	t.Run("report_with_range", func(t *testing.T) {
		mockBidding, _, router := setupHandlerTest(t)

		from := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

		mockBidding.EXPECT().
			BidIncome("seller1", from, to).
			Return(model.IncomeReport{
				SellerID:     "seller1",
				From:         from,
				To:           to,
				Lines:        []model.IncomeLine{{AuctionID: "auction1", ProductName: "Denim Jacket", Revenue: 140, Profit: 100}},
				TotalRevenue: 140,
				TotalProfit:  100,
			}, nil)

		resp, w := doRequest(t, router, http.MethodGet,
			"/sellers/seller1/income?from=2026-02-01T00:00:00Z&to=2026-03-01T00:00:00Z", nil)
		require.Equal(t, http.StatusOK, w.Code)

		data := resp["data"].(map[string]any)
		require.Equal(t, "seller1", data["seller_id"])
		require.Equal(t, 140.0, data["total_revenue"])
		require.Equal(t, 100.0, data["total_profit"])
	})

	t.Run("invalid_from_timestamp", func(t *testing.T) {
		_, _, router := setupHandlerTest(t)

		_, w := doRequest(t, router, http.MethodGet, "/sellers/seller1/income?from=not-a-time", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
