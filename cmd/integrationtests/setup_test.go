package integrationtests

import (
	auction "auction-engine/internal/auctionService"
	model "auction-engine/internal/models"
	"auction-engine/internal/notifier"
	"auction-engine/internal/repository"
	"auction-engine/internal/server"
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// SetupTestRouter wires the full stack over an in-memory repository and
// returns the router and the repo for direct seeding/inspection.
func SetupTestRouter() (*gin.Engine, *repository.MemoryRepo) {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()
	biddingSvc := auction.NewBiddingService(repo)
	closeoutSvc := auction.NewCloseoutService(repo, notifier.NewLogNotifier())
	router := server.SetupRouter(biddingSvc, closeoutSvc)
	return router, repo
}

// SeedReferenceData adds the users and products the API tests bid against
func SeedReferenceData(repo *repository.MemoryRepo) {
	repo.AddUser(model.User{UserID: "user1", Username: "alice", Email: "alice@example.com"})
	repo.AddUser(model.User{UserID: "user2", Username: "bob", Email: "bob@example.com"})
	repo.AddProduct(model.Product{ProductID: "prod1", SellerID: "seller1", Name: "Denim Jacket", CostPrice: 40})
	repo.AddProduct(model.Product{ProductID: "prod2", SellerID: "seller1", Name: "Leather Boots", CostPrice: 80})
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}
