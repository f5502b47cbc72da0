// Package game parses game command flags and starts the game service.
package game

import (
	"context"
	"flag"
	"fmt"
	"time"

	entrypoint "github.com/louisbranch/chronicles.mud/internal/platform/cmd"
	server "github.com/louisbranch/chronicles.mud/internal/services/game/app"
	"github.com/louisbranch/chronicles.mud/internal/services/game/authz"
	"github.com/louisbranch/chronicles.mud/internal/services/game/command"
)

// Config holds game command configuration.
type Config struct {
	Port    int    `env:"GAME_PORT" envDefault:"8082"`
	Addr    string `env:"GAME_ADDR"`
	Storage string `env:"GAME_STORAGE" envDefault:"sqlite"`
	DBPath  string `env:"GAME_DB_PATH"`
	Glyphs  string `env:"GAME_GLYPHS" envDefault:"ascii"`
	Locale  string `env:"GAME_LOCALE" envDefault:"en"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The game server port")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "The game server listen address (overrides -port)")
	fs.StringVar(&cfg.Storage, "storage", cfg.Storage, "Character store backend (sqlite or bbolt)")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "Character database path")
	fs.StringVar(&cfg.Glyphs, "glyphs", cfg.Glyphs, "Health box style (ascii or unicode)")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "Default message locale")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// serverConfig resolves flags and staff token settings into the server
// configuration.
func serverConfig(cfg Config) (server.Config, error) {
	glyphs, err := command.ParseGlyphStyle(cfg.Glyphs)
	if err != nil {
		return server.Config{}, err
	}
	addr := cfg.Addr
	if addr == "" {
		addr = fmt.Sprintf(":%d", cfg.Port)
	}
	out := server.Config{
		Addr:    addr,
		Storage: cfg.Storage,
		DBPath:  cfg.DBPath,
		Glyphs:  glyphs,
		Locale:  cfg.Locale,
	}
	staff, ok, err := authz.LoadStaffTokenConfigFromEnv(time.Now)
	if err != nil {
		return server.Config{}, err
	}
	if ok {
		out.StaffTokens = &staff
	}
	return out, nil
}

// Run starts the game service.
func Run(ctx context.Context, cfg Config) error {
	srvCfg, err := serverConfig(cfg)
	if err != nil {
		return err
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceGame, func(ctx context.Context) error {
		return server.Run(ctx, srvCfg)
	})
}
