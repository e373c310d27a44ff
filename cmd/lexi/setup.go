package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmcdole/lexi/internal/adapter/dictapi"
	"github.com/mmcdole/lexi/internal/config"
	"github.com/mmcdole/lexi/internal/tui/styles"
)

// clearSpinnerLine clears the spinner line from the terminal
const clearSpinnerLine = "\r                                    \r"

const probeTimeout = 15 * time.Second

// runSetupFlow asks for the API URL, checks it answers and saves the config
func runSetupFlow(cmd *cobra.Command, cfg *config.Config) error {
	out := cmd.OutOrStdout()
	reader := bufio.NewReader(cmd.InOrStdin())

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Welcome to Lexi!")
	fmt.Fprintln(out)

	var baseURL string
	for {
		fmt.Fprint(out, "Enter the dictionary API URL (e.g., http://localhost:8080): ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		baseURL = strings.TrimRight(strings.TrimSpace(input), "/")

		if baseURL == "" {
			fmt.Fprintln(out, "API URL cannot be empty. Please try again.")
			continue
		}

		fmt.Fprintln(out)
		if err := probeWithSpinner(cmd.Context(), out, baseURL); err != nil {
			fmt.Fprintf(out, "\n✗ Could not reach the dictionary API: %v\n", err)
			fmt.Fprintln(out, "Please check the URL and try again.")
			fmt.Fprintln(out)
			continue
		}
		break
	}

	cfg.API.URL = baseURL

	path, err := loader.Save(cfg)
	if err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	logger.Info("config saved", "path", path)

	fmt.Fprintln(out)
	fmt.Fprintf(out, "✓ Configuration saved to %s\n", path)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run lexi again to start browsing.")

	return nil
}

// probeWithSpinner pings the API with a visual spinner
func probeWithSpinner(parent context.Context, out io.Writer, baseURL string) error {
	ctx, cancel := context.WithTimeout(parent, probeTimeout)
	defer cancel()

	resultCh := make(chan error, 1)
	go func() {
		resultCh <- dictapi.NewClient(baseURL, logger).Ping(ctx)
	}()

	frame := 0
	fmt.Fprintf(out, "\r%s Contacting %s...", styles.SpinnerFrames[frame], baseURL)

	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case err := <-resultCh:
			fmt.Fprint(out, clearSpinnerLine)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "✓ Dictionary API found")
			return nil

		case <-ticker.C:
			frame++
			fmt.Fprintf(out, "\r%s Contacting %s...", styles.SpinnerFrames[frame%len(styles.SpinnerFrames)], baseURL)

		case <-ctx.Done():
			fmt.Fprint(out, clearSpinnerLine)
			return fmt.Errorf("timed out after %s", probeTimeout)
		}
	}
}
