// ABOUTME: Command running the local stub admin API
// ABOUTME: Gives developers a loopback backend with a seeded admin account

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/manish201258/Hichhki-admin/internal/config"
	"github.com/manish201258/Hichhki-admin/internal/stubserver"
)

var stubServerCmd = &cobra.Command{
	Use:   "stub-server",
	Short: "Run a local stub of the admin API",
	Long: `Run an in-memory admin API for development. Seeds one admin account
(STUB_ADMIN_EMAIL / STUB_ADMIN_PASSWORD) and a small catalog. Point the CLI at
it with --api-url http://localhost:<port>/api/v1/admin.

Set STUB_REDIS_ADDR to keep refresh tokens in Redis instead of memory.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runStubServer(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(stubServerCmd)
}

func runStubServer() error {
	cfg := config.Load()

	opts := stubserver.Options{
		JWTSecret:     cfg.StubJWTSecret,
		AdminEmail:    cfg.StubAdminEmail,
		AdminPassword: cfg.StubAdminPassword,
		AccessTTL:     time.Duration(cfg.StubAccessTTLMin) * time.Minute,
		RefreshTTL:    time.Duration(cfg.StubRefreshTTLDays) * 24 * time.Hour,
	}
	if cfg.StubRedisAddr != "" {
		opts.RefreshStore = stubserver.NewRedisRefreshStore(redis.NewClient(&redis.Options{
			Addr: cfg.StubRedisAddr,
		}))
	}

	srv, err := stubserver.New(opts)
	if err != nil {
		return fmt.Errorf("failed to build stub server: %w", err)
	}

	fmt.Printf("Stub admin API listening on :%s (admin: %s)\n", cfg.StubPort, cfg.StubAdminEmail)
	return srv.Start(":" + cfg.StubPort)
}
