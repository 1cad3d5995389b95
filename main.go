package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/apex/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/maplefeline/fenboard/fen"
)

var (
	addr          = flag.String("addr", ":8080", "HTTP listen address")
	fenFlag       = flag.String("fen", "", "decode and print a single FEN string, then exit")
	retention     = flag.Duration("retention", 30*24*time.Hour, "age after which stored positions are pruned")
	pruneInterval = flag.Duration("prune-interval", time.Minute, "time between prune passes")
)

var sigint chan os.Signal

func waitShutdown(e *echo.Echo, idleConnsClosed chan<- interface{}) {
	defer close(idleConnsClosed)

	sigint = make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt)
	defer signal.Stop(sigint)

	<-sigint
	log.Info("received shutdown signal")

	idleError("HTTP server shutdown:", e.Shutdown(context.Background()))
}

func listenAndServe(store positionStore, addr string, idleConnsClosed chan<- interface{}) {
	e := apiHandler(store)
	go waitShutdown(e, idleConnsClosed)

	e.Use(middleware.Logger())

	idleError("HTTP server end:", e.Start(addr))
}

// Open open.
func Open(store positionStore, addr string) {
	idleConnsClosed := make(chan interface{})
	go listenAndServe(store, addr, idleConnsClosed)
	<-idleConnsClosed
}

func idle(store positionStore, retention time.Duration) {
	pruned, err := store.prunePositions(time.Now().Add(-retention))
	idleError("prune idle complete:", err)
	if pruned > 0 {
		log.WithField("pruned", pruned).Info("pruned positions")
	}
}

func checkFlags(pruneInterval, retention time.Duration) error {
	if pruneInterval <= 0 {
		return fmt.Errorf("prune-interval must be positive: %v", pruneInterval)
	}
	if retention <= 0 {
		return fmt.Errorf("retention must be positive: %v", retention)
	}
	return nil
}

func printBoard(text string) int {
	board, err := fen.Decode(text)
	if err != nil {
		fmt.Println(err)
		return 1
	}
	fmt.Print(board)
	return 0
}

func main() {
	flag.Parse()
	if *fenFlag != "" {
		os.Exit(printBoard(*fenFlag))
	}
	if err := checkFlags(*pruneInterval, *retention); err != nil {
		log.WithError(err).Fatal("invalid flags")
	}

	store, err := openStore()
	if err != nil {
		log.WithError(err).Fatal("failed to open store")
	}
	defer func() {
		idleError("close server:", store.Close())
	}()
	go func() {
		for {
			idle(store, *retention)
			time.Sleep(*pruneInterval)
		}
	}()
	log.WithField("addr", *addr).Info("serving")
	Open(store, *addr)
}
