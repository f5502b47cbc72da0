package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"

	healthgrpc "github.com/louisbranch/chronicles.mud/internal/services/game/api/grpc/health"
	"github.com/louisbranch/chronicles.mud/internal/services/game/api/grpc/interceptors"
	grpcmeta "github.com/louisbranch/chronicles.mud/internal/services/game/api/grpc/metadata"
	"github.com/louisbranch/chronicles.mud/internal/services/game/authz"
	"github.com/louisbranch/chronicles.mud/internal/services/game/command"
	healthsvc "github.com/louisbranch/chronicles.mud/internal/services/game/health"
	"github.com/louisbranch/chronicles.mud/internal/services/game/i18n"
	"github.com/louisbranch/chronicles.mud/internal/services/game/storage"
)

// Config describes how the game server is assembled.
type Config struct {
	// Addr is the listen address, e.g. ":8082".
	Addr string
	// Storage selects the character store backend: sqlite or bbolt.
	Storage string
	// DBPath overrides the backend's default database file.
	DBPath string
	// Glyphs selects the +health box style.
	Glyphs command.GlyphStyle
	// Locale is used when a call carries no locale header.
	Locale string
	// StaffTokens enables staff bearer tokens when set.
	StaffTokens *authz.StaffTokenConfig
}

// Server hosts the chronicles game server.
type Server struct {
	listener   net.Listener
	grpcServer *grpc.Server
	health     *health.Server
	store      storage.CharacterStore
}

// New creates a configured game server listening on cfg.Addr.
func New(ctx context.Context, cfg Config) (*Server, error) {
	var verifier interceptors.StaffTokenVerifier
	if cfg.StaffTokens != nil {
		staffVerifier, err := authz.NewStaffVerifier(*cfg.StaffTokens)
		if err != nil {
			return nil, fmt.Errorf("configure staff tokens: %w", err)
		}
		verifier = staffVerifier
	}
	if cfg.Glyphs == "" {
		cfg.Glyphs = command.GlyphsASCII
	}
	if cfg.Locale == "" {
		cfg.Locale = i18n.Default().String()
	}

	listener, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", cfg.Addr, err)
	}
	store, err := openCharacterStore(ctx, cfg.Storage, cfg.DBPath)
	if err != nil {
		_ = listener.Close()
		return nil, err
	}

	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpcmeta.UnaryServerInterceptor(nil),
			interceptors.ErrorInterceptor(cfg.Locale),
			interceptors.CallerInterceptor(verifier),
			interceptors.AuditInterceptor(log.Printf),
		),
	)
	service := healthsvc.NewService(store, healthsvc.WithAuthorizer(authz.Policy{}))
	executor := command.NewExecutor(service, cfg.Glyphs)
	healthgrpc.RegisterHealthServiceServer(grpcServer, healthgrpc.NewServer(service, executor, cfg.Locale))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(healthgrpc.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	return &Server{
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
		store:      store,
	}, nil
}

// Addr returns the listener address for the game server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run creates and serves a game server until the context ends.
func Run(ctx context.Context, cfg Config) error {
	grpcServer, err := New(ctx, cfg)
	if err != nil {
		return err
	}
	return grpcServer.Serve(ctx)
}

// Serve starts the game server and blocks until it stops or the context ends.
func (s *Server) Serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.closeStore()

	log.Printf("game server listening at %v", s.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	handleErr := func(err error) error {
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	}

	select {
	case <-ctx.Done():
		if s.health != nil {
			s.health.Shutdown()
		}
		s.grpcServer.GracefulStop()
		err := <-serveErr
		return handleErr(err)
	case err := <-serveErr:
		return handleErr(err)
	}
}

func (s *Server) closeStore() {
	if s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		log.Printf("close character store: %v", err)
	}
}
