// Command imgbbctl uploads images to and deletes images from ImgBB.
//
// Usage:
//
//	IMGBB_API_KEY=... imgbbctl upload <path>
//	IMGBB_API_KEY=... imgbbctl delete <delete-url>
//
// Optional environment: IMGBB_BASE_URL, IMGBB_TIMEOUT, IMGBB_USER_AGENT,
// IMGBB_NAME, IMGBB_TITLE, IMGBB_ALBUM, IMGBB_EXPIRATION, LOG_LEVEL.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	imgbb "github.com/utafrali/imgbb-go"
	"github.com/utafrali/imgbb-go/internal/logging"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("fatal error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: imgbbctl upload <path> | imgbbctl delete <delete-url>")
	}
	command, arg := args[0], args[1]

	// Load configuration from environment variables.
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Initialize structured logger.
	log := logging.New("imgbbctl", cfg.LogLevel)

	client := imgbb.NewWithConfig(cfg.APIKey, imgbb.Config{
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.Timeout,
		UserAgent: cfg.UserAgent,
		Logger:    log,
	})

	// Create a context that is canceled on SIGINT or SIGTERM, with one
	// correlation id per invocation.
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	ctx = logging.WithCorrelationID(ctx, logging.NewCorrelationID())

	switch command {
	case "upload":
		return upload(ctx, client, cfg, arg)
	case "delete":
		return client.Delete(ctx, arg)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func upload(ctx context.Context, client *imgbb.Client, cfg *Config, path string) error {
	uploader, err := client.ReadFile(path)
	if err != nil {
		return err
	}

	if cfg.Name != "" {
		uploader.Name(cfg.Name)
	}
	if cfg.Title != "" {
		uploader.Title(cfg.Title)
	}
	if cfg.Album != "" {
		uploader.Album(cfg.Album)
	}
	if cfg.Expiration != nil {
		uploader.Expiration(*cfg.Expiration)
	}

	resp, err := uploader.Upload(ctx)
	if err != nil {
		return err
	}

	if resp.Data == nil {
		return fmt.Errorf("upload succeeded but response carried no data record")
	}
	if resp.Data.URL != nil {
		fmt.Printf("url: %s\n", *resp.Data.URL)
	}
	if resp.Data.DeleteURL != nil {
		fmt.Printf("delete_url: %s\n", *resp.Data.DeleteURL)
	}
	return nil
}
