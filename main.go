package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	restapi "github.com/hedisam/ledgercore/api/rest"
	"github.com/hedisam/ledgercore/internal/custompromauto"
	"github.com/hedisam/ledgercore/internal/eth"
	"github.com/hedisam/ledgercore/internal/ingest"
	"github.com/hedisam/ledgercore/internal/store/memdb"
)

type Options struct {
	ServerAddr             string
	NodeAddr               string
	PollInterval           time.Duration
	ReorgConfirmationDepth uint
	MemSize                int
	Verbose                bool
}

func main() {
	var opts Options
	flag.StringVar(&opts.ServerAddr, "server-addr", "localhost:8080", "Server addr to serve the http server on")
	flag.StringVar(&opts.NodeAddr, "node-addr", "", "Optional Ethereum node to follow; confirmed headers are appended to the chain. Empty disables following")
	flag.DurationVar(&opts.PollInterval, "poll-interval", time.Second*10, "ETH node polling interval. Recommend no less than 6 seconds")
	flag.UintVar(&opts.ReorgConfirmationDepth, "reorg-confirmation-depth", 3, "Number of descendant headers required before a followed header is appended. Cannot be less than 1")
	flag.IntVar(&opts.MemSize, "mem-size", memdb.DefaultMemSize, "Initial number of accounts and blocks the in-memory stores make room for")
	flag.BoolVar(&opts.Verbose, "v", false, "Verbose output")
	flag.Parse()

	logger := logrus.New()
	ensureValidOpts(logger, opts)

	if opts.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	chainStore := memdb.NewChainStore(memdb.WithMemSize(opts.MemSize))
	stateStore := memdb.NewStateStore(memdb.WithMemSize(opts.MemSize))

	if opts.NodeAddr != "" {
		httpClient := &http.Client{Timeout: time.Second * 10}
		ethClient := eth.New(logger, httpClient, opts.NodeAddr)
		headers := ethClient.Stream(ctx, opts.PollInterval)
		confirmedHeaders := eth.ReorgFilter(ctx, logger, headers, opts.ReorgConfirmationDepth)

		ingester := ingest.New(logger, chainStore)
		go ingester.Start(ctx, confirmedHeaders)
		logger.WithField("node_addr", opts.NodeAddr).Info("Following eth node headers")
	}

	mux := http.NewServeMux()
	restapi.NewServer(logger, chainStore, stateStore).Register(mux)

	// use a custom prom registry to avoid recording the default http handler metrics
	mux.Handle("/metrics", custompromauto.Handler())

	mustListenAndServe(ctx, logger, opts.ServerAddr, mux)
}

func mustListenAndServe(ctx context.Context, logger *logrus.Logger, addr string, handler http.Handler) {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.WithField("addr", addr).Info("Serving server...")
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Server failed with error")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	logger.Info("Shutting down server...")
	err := srv.Shutdown(shutdownCtx)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		logger.WithError(err).Error("Failed to shutdown server gracefully")
	}
}

func ensureValidOpts(logger *logrus.Logger, opts Options) {
	if opts.ServerAddr == "" {
		logger.Error("--server-addr is required")
		flag.Usage()
		os.Exit(1)
	}
	if opts.MemSize < 0 {
		logger.Error("--mem-size cannot be negative")
		flag.Usage()
		os.Exit(1)
	}
	if opts.NodeAddr == "" {
		return
	}
	if opts.PollInterval < time.Second*3 {
		logger.Error("--poll-interval is too small, it cannot be less than 3 seconds")
		flag.Usage()
		os.Exit(1)
	}
	if opts.ReorgConfirmationDepth < 1 {
		logger.Error("--reorg-confirmation-depth is too small, it cannot be less than 1")
		flag.Usage()
		os.Exit(1)
	}
}
