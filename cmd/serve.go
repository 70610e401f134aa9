package main

import (
	"fmt"
	"net"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"skillswap/exchange-service/internal/chatsync"
	grpcServer "skillswap/exchange-service/internal/grpc"
	"skillswap/exchange-service/internal/httpserver"
	"skillswap/exchange-service/internal/identity"
	"skillswap/exchange-service/internal/repository"
	"skillswap/exchange-service/internal/service"
)

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	b, err := openBackend(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Error("Failed to open storage")
		return err
	}
	defer b.Close()

	chatRepo := repository.NewChatRepository(b.store)
	catalogRepo := repository.NewCatalogRepository(b.store)

	chatService := service.NewChatService(chatRepo, catalogRepo, logger)
	matchService := service.NewMatchService(catalogRepo, logger)
	catalogService := service.NewCatalogService(catalogRepo, logger)

	validator, err := identity.NewValidator(ctx, cfg.Auth, logger)
	if err != nil {
		logger.WithError(err).Error("Failed to configure auth")
		return err
	}
	defer validator.Close()

	syncConfig := chatsync.Config{
		Interval:     cfg.Sync.PollInterval,
		FetchTimeout: cfg.Sync.FetchTimeout,
	}
	grpcSrv := grpcServer.NewServer(
		grpcServer.NewChatServer(chatService, validator, syncConfig, logger),
		validator,
		cfg.GRPC.ReflectionEnabled,
		logger,
	)

	address := cfg.Server.Addr()
	lis, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", address, err)
	}

	httpSrv := httpserver.New(cfg, httpserver.Deps{
		Chat:      chatService,
		Matches:   matchService,
		Catalog:   catalogService,
		Validator: validator,
		Ready:     b.Ready,
		Logger:    logger,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return grpcSrv.Serve(lis)
	})
	g.Go(func() error {
		return httpSrv.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down gRPC server...")
		grpcSrv.Shutdown(cfg.GRPC.ShutdownTimeout)
		return nil
	})

	err = g.Wait()
	if err != nil {
		logger.WithError(err).Error("Server stopped with error")
	}
	logger.Info("Server exited")
	return err
}

