package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skillswap-backend/internal/api"
	"skillswap-backend/internal/auth"
	"skillswap-backend/internal/config"
	"skillswap-backend/internal/logging"
	"skillswap-backend/internal/repository"
	"skillswap-backend/internal/service"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

func main() {
	// O .env é opcional: em container as variáveis já vêm do ambiente
	envErr := godotenv.Load()

	var cfg config.Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "falha ao carregar configuração: %v\n", err)
		os.Exit(1)
	}

	log := logging.New(logging.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	if envErr != nil {
		log.Debug().Err(envErr).Msg("arquivo .env não carregado, usando variáveis de ambiente existentes")
	}

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("servidor encerrado com erro")
	}
	log.Info().Msg("servidor encerrado")
}

func run(cfg config.Config, log zerolog.Logger) error {
	// Diretório de usuários: vive enquanto o processo viver
	store := repository.NewInMemoryStore()

	tokenService, err := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return fmt.Errorf("falha ao iniciar TokenService: %w", err)
	}

	userService := service.NewUserService(store, tokenService, log)
	accountService := service.NewAccountService(log)
	tradeService := service.NewTradeService(store, log)

	handler := api.NewHandler(userService, accountService, tradeService, tokenService, log, cfg.AllowedOrigins)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      handler.Routes(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Msgf("servidor iniciado em http://localhost:%d/v1", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("erro ao iniciar servidor: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("recebido sinal de desligamento, encerrando servidor...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("erro no graceful shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
