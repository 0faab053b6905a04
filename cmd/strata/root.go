package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/strata-app/strata/cache"
	"github.com/strata-app/strata/remote"
	enginesync "github.com/strata-app/strata/sync"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "strata",
	Short: "Hierarchical task management with local-first sync",
	Long: "Strata keeps a nested document of groups, areas, projects, phases and tasks\n" +
		"consistent between a local cache and a per-user remote document store.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}
		return initLogging(viper.GetString("log_level"))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/strata/strata.yaml)")
	rootCmd.PersistentFlags().String("cache", "", "path to the local cache file")
	rootCmd.PersistentFlags().String("user", "", "user identifier for remote sync")
	_ = viper.BindPFlag("cache_path", rootCmd.PersistentFlags().Lookup("cache"))
	_ = viper.BindPFlag("user_id", rootCmd.PersistentFlags().Lookup("user"))
}

// initConfig wires viper: explicit file, then config dir, then STRATA_*
// environment variables, then defaults.
func initConfig() error {
	viper.SetDefault("log_level", "warn")
	viper.SetDefault("cache_path", filepath.Join(xdgDataDir(), "strata.json"))
	viper.SetDefault("debounce", "1s")
	viper.SetDefault("request_timeout", "15s")
	viper.SetDefault("remote.backend", "none")
	viper.SetDefault("remote.table", "documents")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("strata")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(filepath.Join(xdgDataDir()))
		viper.AddConfigPath("$HOME/.config/strata")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("STRATA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Missing config is fine; everything has a default.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

// openRemote builds the configured remote store, or nil for local-only.
func openRemote() (remote.Store, error) {
	switch backend := viper.GetString("remote.backend"); backend {
	case "", "none":
		return nil, nil
	case "http":
		url := viper.GetString("remote.url")
		if url == "" {
			return nil, fmt.Errorf("remote.url is required for the http backend")
		}
		return remote.NewHTTPStore(remote.HTTPOptions{
			BaseURL: url,
			APIKey:  viper.GetString("remote.api_key"),
			Token:   viper.GetString("remote.token"),
			Table:   viper.GetString("remote.table"),
			Timeout: viper.GetDuration("request_timeout"),
		}), nil
	case "sqlite":
		path := viper.GetString("remote.sqlite_path")
		if path == "" {
			path = filepath.Join(xdgDataDir(), "remote.db")
		}
		return remote.NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("unknown remote backend %q", backend)
	}
}

// withEngine runs fn against a fully wired engine and flushes any edit
// to the remote store before tearing the session down.
func withEngine(fn func(ctx context.Context, eng *enginesync.Engine) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	store := cache.New(viper.GetString("cache_path"))
	rem, err := openRemote()
	if err != nil {
		return err
	}

	eng, err := enginesync.New(enginesync.Options{
		Cache:          store,
		Remote:         rem,
		Debounce:       viper.GetDuration("debounce"),
		RequestTimeout: viper.GetDuration("request_timeout"),
	})
	if err != nil {
		return err
	}
	defer eng.Close()

	userID := viper.GetString("user_id")
	if rem != nil && userID != "" {
		if err := eng.SetIdentity(ctx, userID); err != nil {
			return err
		}
		if loadErr := eng.LastError(); loadErr != nil {
			fmt.Printf("warning: %v (continuing with local state)\n", loadErr)
		}
	}

	if err := fn(ctx, eng); err != nil {
		return err
	}

	// A one-shot CLI session would otherwise always end inside the
	// debounce window, losing the write. Flush before teardown.
	if rem != nil && userID != "" {
		if err := eng.Flush(ctx); err != nil {
			fmt.Printf("warning: %v (edit kept locally)\n", err)
		}
	}
	return nil
}
