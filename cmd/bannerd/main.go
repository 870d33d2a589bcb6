package main

import (
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"

	pb "github.com/danielpatrickdp/banner-bayes/go-analyzer/gen/bannerpb"
	"github.com/danielpatrickdp/banner-bayes/go-analyzer/internal/experiment"
	"github.com/danielpatrickdp/banner-bayes/go-analyzer/internal/pipeline"
	"github.com/danielpatrickdp/banner-bayes/go-analyzer/internal/priors"
	"github.com/danielpatrickdp/banner-bayes/go-analyzer/internal/rpc"
)

// #region main
func main() {
	dbPath := envOr("BANNER_DB", "banner_bayes.db")
	addr := envOr("BANNER_ADDR", "localhost:50061")
	priorName := envOr("BANNER_PRIOR", "uniform")

	store, err := experiment.NewStore(dbPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	priorStore, err := priors.NewPriorStore(store.DB())
	if err != nil {
		log.Fatalf("failed to open prior store: %v", err)
	}
	if err := priorStore.SeedDefaults(); err != nil {
		log.Fatalf("failed to seed priors: %v", err)
	}

	config := pipeline.DefaultConfig()
	config.PriorName = priorName

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("failed to listen on %s: %v", addr, err)
	}

	grpcServer := grpc.NewServer()
	pb.RegisterBannerAnalysisServer(grpcServer, rpc.NewServer(store, priorStore, config))

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		log.Println("shutting down...")
		grpcServer.GracefulStop()
	}()

	log.Printf("banner analyzer ready. DB: %s | addr: %s | prior: %s", dbPath, addr, priorName)
	if err := grpcServer.Serve(lis); err != nil {
		log.Fatalf("serve: %v", err)
	}
}

// #endregion main

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
