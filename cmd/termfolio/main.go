package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	// earlyinit must be listed before any bubbletea-importing package so its
	// init() runs first and suppresses the OSC 11 terminal colour query.
	_ "github.com/KindaJayant/termfolio/internal/earlyinit"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/KindaJayant/termfolio/internal/config"
	"github.com/KindaJayant/termfolio/internal/logger"
	"github.com/KindaJayant/termfolio/internal/server"
	"github.com/KindaJayant/termfolio/internal/tui"
)

var (
	version = "2.0.0"
	commit  = "dev"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "termfolio",
		Short: "termfolio - Jayant's portfolio as an interactive terminal",
		Long: `termfolio turns Jayant Singh Bisht's portfolio into an interactive
terminal session: type commands to explore the resume and projects,
or enter AI mode to chat with the portfolio assistant.`,
		RunE:          runTUI,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("theme", "t", "", "Theme to start with (matrix, amber, light)")

	rootCmd.AddCommand(
		serveCmd(),
		configCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runTUI is the default command, starting the interactive session.
func runTUI(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("termfolio needs an interactive terminal (try 'termfolio serve' for the headless proxy)")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlags(cmd, cfg)

	if _, err := logger.Init(cfg.Log); err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}

	return tui.Run(cfg)
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the chat completion proxy",
		Long:  "Start the headless HTTP proxy the terminal's AI mode talks to.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if port, _ := cmd.Flags().GetInt("port"); port != 0 {
				cfg.Server.Port = port
			}

			if _, err := logger.Init(cfg.Log); err != nil {
				return fmt.Errorf("failed to set up logging: %w", err)
			}

			srv := server.New(cfg)

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				<-sigCh
				fmt.Println("\nShutting down server...")
				srv.Stop()
			}()

			return srv.Start()
		},
	}
	cmd.Flags().IntP("port", "P", 0, "Port to listen on")
	return cmd
}

func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			out, err := cfg.Dump()
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("termfolio version %s (%s)\n", version, commit)
			fmt.Printf("go version %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if t, _ := cmd.Flags().GetString("theme"); t != "" {
		cfg.Theme = t
	}
}
