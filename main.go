package main

import (
	"fmt"
	"os"

	auction "vehicle-auction/internal/auctionService"
	"vehicle-auction/internal/contract"
	"vehicle-auction/internal/ledger"
	"vehicle-auction/internal/repository"
	"vehicle-auction/internal/server"
	"vehicle-auction/utils"
)

func main() {

	store := ledger.NewMemoryLedger()
	repo := repository.NewEntityRepo(store)

	auctionSvc := auction.NewAuctionService(repo)

	if err := auctionSvc.InitLedger(); err != nil {
		utils.Fatal("failed to seed ledger", map[string]any{"error": err.Error()})
	}

	registry := contract.NewRegistry(auctionSvc)

	router := server.SetupRouter(registry)

	port := getPort()
	fmt.Printf("Starting auction settlement server on %s...\n", port)
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}
