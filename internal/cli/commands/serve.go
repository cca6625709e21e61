package commands

import (
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/datavisbr/painel-salarios/internal/cli/config"
	"github.com/datavisbr/painel-salarios/internal/ui"
)

// ServeOptions holds options for the serve command.
type ServeOptions struct {
	Port      int
	NoBrowser bool
	Watch     bool
}

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the salary dashboard",
		Long: `Start a local web server with the interactive salary dashboard.

The dashboard provides:
- Multi-select filters for year, seniority, contract type and company size
- Metric cards summarizing the filtered salaries
- Salary charts by job title, country, seniority and work modality
- A detail table of the underlying records`,
		Example: `  # Start on the default port
  painel serve

  # Start on a custom port
  painel serve --port 3000

  # Serve a local CSV and reload when it changes
  painel serve --data-file salaries.csv --watch`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Port, "port", 0, "Port to serve on (default: 8765)")
	cmd.Flags().BoolVar(&opts.NoBrowser, "no-browser", false, "Don't auto-open browser")
	cmd.Flags().BoolVar(&opts.Watch, "watch", true, "Reload when the local CSV changes")

	return cmd
}

func runServe(cmd *cobra.Command, opts *ServeOptions) error {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	// CLI flags override config file
	port := cfg.UI.Port
	if opts.Port != 0 {
		port = opts.Port
	}

	autoOpen := cfg.UI.AutoOpen
	if opts.NoBrowser {
		autoOpen = false
	}

	watch := cfg.UI.Watch
	if cmd.Flags().Changed("watch") {
		watch = opts.Watch
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	fmt.Println("Loading salary dataset...")
	st, cache, err := buildStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}
	defer func() { _ = st.Close() }()

	server := ui.NewServer(ui.Config{
		Store:      st,
		Cache:      cache,
		DataFile:   cfg.Data.File,
		Port:       port,
		Watch:      watch && cfg.Data.File != "",
		TableLimit: cfg.UI.TableLimit,
		Logger:     logger,
	})

	if autoOpen {
		url := fmt.Sprintf("http://localhost:%d", port)
		go openBrowser(url)
	}

	fmt.Printf("Starting dashboard on http://localhost:%d\n", port)
	fmt.Println("Press Ctrl+C to stop")

	return server.Serve(ctx)
}

// openBrowser opens the default browser to the specified URL.
func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url) //nolint:noctx
	case "linux":
		cmd = exec.Command("xdg-open", url) //nolint:noctx
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url) //nolint:noctx
	default:
		return
	}

	_ = cmd.Start()
}
