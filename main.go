package main

import (
	auction "auction-engine/internal/auctionService"
	"auction-engine/internal/config"
	model "auction-engine/internal/models"
	"auction-engine/internal/notifier"
	"auction-engine/internal/repository"
	"auction-engine/internal/server"
	"auction-engine/utils"
	"fmt"
	"os"
	"time"

	"github.com/robfig/cron/v3"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	utils.SetLevel(cfg.LogLevel)

	repo := repository.NewMemoryRepo()

	prepopulate(repo)

	var winnerNotifier notifier.Notifier
	if cfg.SMTPAddr != "" {
		winnerNotifier = notifier.NewSMTPNotifier(cfg.SMTPAddr, cfg.SMTPFrom)
	} else {
		winnerNotifier = notifier.NewLogNotifier()
	}

	biddingSvc := auction.NewBiddingService(repo)
	closeoutSvc := auction.NewCloseoutService(repo, winnerNotifier)

	router := server.SetupRouter(biddingSvc, closeoutSvc)

	if err := startCloseoutCron(closeoutSvc, cfg.CloseoutSchedule); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start closeout scheduler: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%s", cfg.Port)
	fmt.Printf("Starting auction server on %s...\n", addr)
	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// closeoutRunner is the slice of CloseoutService the scheduler needs
type closeoutRunner interface {
	RunCloseout(now time.Time) (model.CloseoutSummary, error)
}

// startCloseoutCron registers the periodic closeout job. The executor is
// re-entrant, so an overlapping tick is harmless.
func startCloseoutCron(svc closeoutRunner, schedule string) error {
	scheduler := cron.New()

	if _, err := scheduler.AddFunc(schedule, func() {
		summary, err := svc.RunCloseout(time.Now().UTC())
		if err != nil {
			utils.Error("scheduled closeout failed", map[string]any{"error": err.Error()})
			return
		}
		if summary.Processed > 0 || len(summary.Errors) > 0 {
			utils.Info("scheduled closeout completed", map[string]any{
				"processed": summary.Processed,
				"errors":    len(summary.Errors),
			})
		}
	}); err != nil {
		return err
	}

	scheduler.Start()
	return nil
}

// prepopulate adds sample users, products, and auctions to the in-memory repo
func prepopulate(repo *repository.MemoryRepo) {
	users := []model.User{
		{UserID: "user1", Username: "alice", Email: "alice@example.com"},
		{UserID: "user2", Username: "bob", Email: "bob@example.com"},
		{UserID: "user3", Username: "carol", Email: "carol@example.com"},
	}
	for _, u := range users {
		repo.AddUser(u)
	}

	products := []model.Product{
		{ProductID: "prod1", SellerID: "seller1", Name: "Denim Jacket", CostPrice: 40},
		{ProductID: "prod2", SellerID: "seller1", Name: "Leather Boots", CostPrice: 80},
		{ProductID: "prod3", SellerID: "seller2", Name: "Silk Scarf", CostPrice: 15},
	}
	for _, p := range products {
		repo.AddProduct(p)
	}

	now := time.Now().UTC()
	auctions := []model.Auction{
		{AuctionID: "auction1", ProductID: "prod1", StartPrice: 100, CloseAt: now.Add(24 * time.Hour), Status: model.AuctionOpen},
		{AuctionID: "auction2", ProductID: "prod2", StartPrice: 200, CloseAt: now.Add(48 * time.Hour), Status: model.AuctionOpen},
		{AuctionID: "auction3", ProductID: "prod3", StartPrice: 50, CloseAt: now.Add(time.Hour), Status: model.AuctionOpen},
	}
	for _, a := range auctions {
		repo.AddAuction(a)
	}
}
