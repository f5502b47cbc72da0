// Package admin parses admin command flags and runs +health commands
// against a game server.
package admin

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"google.golang.org/grpc"

	entrypoint "github.com/louisbranch/chronicles.mud/internal/platform/cmd"
	apperrors "github.com/louisbranch/chronicles.mud/internal/platform/errors"
	platformgrpc "github.com/louisbranch/chronicles.mud/internal/platform/grpc"
	"github.com/louisbranch/chronicles.mud/internal/platform/timeouts"
	healthgrpc "github.com/louisbranch/chronicles.mud/internal/services/game/api/grpc/health"
	grpcmeta "github.com/louisbranch/chronicles.mud/internal/services/game/api/grpc/metadata"
	"github.com/louisbranch/chronicles.mud/internal/services/game/authz"
)

// Config holds the admin command configuration.
type Config struct {
	GameAddr     string        `env:"ADMIN_GAME_ADDR" envDefault:"localhost:8082"`
	CallerID     string        `env:"ADMIN_CALLER_ID"`
	StaffToken   string        `env:"ADMIN_STAFF_TOKEN"`
	StaffSubject string        `env:"ADMIN_STAFF_SUBJECT"`
	Issuer       string        `env:"STAFF_TOKEN_ISSUER"`
	Audience     string        `env:"STAFF_TOKEN_AUDIENCE"`
	Locale       string        `env:"ADMIN_LOCALE"`
	DialTimeout  time.Duration `env:"ADMIN_DIAL_TIMEOUT" envDefault:"2s"`

	// Create names a character to create instead of running a command.
	Create    string
	MaxHealth int
	// Command is the +health line built from the remaining arguments.
	Command string
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.GameAddr, "game-addr", cfg.GameAddr, "game server address")
	fs.StringVar(&cfg.CallerID, "caller", cfg.CallerID, "character id acting as the caller")
	fs.StringVar(&cfg.StaffToken, "token", cfg.StaffToken, "staff bearer token")
	fs.StringVar(&cfg.StaffSubject, "staff", cfg.StaffSubject, "mint a staff token for this subject with the local signing key")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "message locale")
	fs.DurationVar(&cfg.DialTimeout, "dial-timeout", cfg.DialTimeout, "game server dial timeout")
	fs.StringVar(&cfg.Create, "create", "", "create a character with this name")
	fs.IntVar(&cfg.MaxHealth, "max", 0, "health boxes for -create (0 uses the default)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	cfg.Command = strings.TrimSpace(strings.Join(fs.Args(), " "))
	if cfg.Create == "" && cfg.Command == "" {
		return Config{}, errors.New("a +health command or -create is required")
	}
	return cfg, nil
}

// staffToken returns the configured bearer token, minting one when a staff
// subject is set and a signing key is available.
func staffToken(cfg Config, now time.Time) (string, error) {
	if cfg.StaffToken != "" || cfg.StaffSubject == "" {
		return cfg.StaffToken, nil
	}
	key, ok, err := authz.LoadStaffSigningKeyFromEnv()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errors.New("-staff requires a staff token signing key")
	}
	return authz.SignStaffToken(key, authz.StaffTokenRequest{
		Issuer:   cfg.Issuer,
		Audience: cfg.Audience,
		Subject:  cfg.StaffSubject,
		TTL:      timeouts.GRPCRequest * 2,
		Now:      now,
	})
}

// Run dials the game server and runs the configured request, writing the
// reply to out.
func Run(ctx context.Context, cfg Config, out io.Writer, opts ...grpc.DialOption) error {
	token, err := staffToken(cfg, time.Now())
	if err != nil {
		return fmt.Errorf("staff token: %w", err)
	}
	if len(opts) == 0 {
		opts = platformgrpc.DefaultClientDialOptions()
	}
	conn, err := platformgrpc.DialWithHealth(ctx, nil, cfg.GameAddr, cfg.DialTimeout, log.Printf, opts...)
	if err != nil {
		return fmt.Errorf("dial game server %s: %w", cfg.GameAddr, err)
	}
	defer conn.Close()

	client := healthgrpc.NewClient(conn, grpcmeta.Outgoing{
		CallerID:   cfg.CallerID,
		StaffToken: token,
		Locale:     cfg.Locale,
	})
	callCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
	defer cancel()

	if cfg.Create != "" {
		created, err := client.CreateCharacter(callCtx, cfg.Create, cfg.MaxHealth)
		if err != nil {
			return errors.New(apperrors.LocalizedMessageFromStatus(err))
		}
		_, err = fmt.Fprintf(out, "%s\t%s\t%d\n", created.CharacterID, created.Name, created.MaxHealth)
		return err
	}

	reply, err := client.Execute(callCtx, cfg.Command)
	if err != nil {
		return errors.New(apperrors.LocalizedMessageFromStatus(err))
	}
	_, err = fmt.Fprintln(out, reply.Text)
	return err
}
