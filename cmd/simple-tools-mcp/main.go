package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/averycrespi/simple-tools-mcp/internal/auth"
	"github.com/averycrespi/simple-tools-mcp/internal/server"
	"github.com/averycrespi/simple-tools-mcp/pkg/project"
	"github.com/averycrespi/simple-tools-mcp/pkg/types"
)

var (
	cfg    = types.ConfigFromEnv()
	logger = logrus.New()
)

func main() {
	rootCmd := &cobra.Command{
		Use:   project.Name,
		Short: "MCP server exposing a user-scoped key-value store",
		Long: "A demonstration MCP server with three tools over a per-user " +
			"key-value store. Callers authenticate with an API key saved " +
			"through the auth command.",
		Version:       project.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging()
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&cfg.Environment, "environment", cfg.Environment, "Deployment environment (local uses file-backed credentials)")
	rootCmd.PersistentFlags().StringVar(&cfg.CredentialsDir, "credentials-dir", cfg.CredentialsDir, "Directory holding local credential files")
	rootCmd.PersistentFlags().StringVar(&cfg.APIBaseURL, "api-base-url", cfg.APIBaseURL, "Base URL of the hosted credential service")
	rootCmd.PersistentFlags().StringVar(&cfg.APIKey, "api-key", cfg.APIKey, "Service API key for the hosted credential service")

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newAuthCommand())

	if err := rootCmd.Execute(); err != nil {
		logger.WithError(err).Fatal("Command failed")
	}
}

func configureLogging() {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	// Stdout carries the MCP protocol when serving over stdio, so all
	// logging goes to stderr.
	logger.SetOutput(os.Stderr)
}

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := server.NewSimpleToolsServer(cfg, logger)
			return srv.Serve(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&cfg.Transport, "transport", cfg.Transport, "Serving transport (stdio or sse)")
	cmd.Flags().StringVar(&cfg.ListenAddr, "addr", cfg.ListenAddr, "Listen address for the sse transport")
	cmd.Flags().StringVar(&cfg.UserID, "user", cfg.UserID, "Default user identity for requests")

	return cmd
}

func newAuthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Save the Simple Tools API key for a user",
		Long: "Prompts for a Simple Tools API key and saves it with the " +
			"configured credential client, so the server can authenticate " +
			"tool calls for that user.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuth(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&cfg.UserID, "user", cfg.UserID, "User to save credentials for")

	return cmd
}

func runAuth(ctx context.Context) error {
	logger.WithField("user", cfg.UserID).Info("Starting simple-tools authentication")

	apiKey, err := readAPIKey(os.Stdin)
	if err != nil {
		return err
	}
	if apiKey == "" {
		return errors.New("API key cannot be empty")
	}

	client := auth.NewClient(cfg, logger)
	if err := client.SaveUserCredentials(ctx, project.ServiceName, cfg.UserID, &auth.Credentials{APIKey: apiKey}); err != nil {
		return fmt.Errorf("failed to save credentials: %w", err)
	}

	logger.WithField("user", cfg.UserID).Info("Simple Tools API key saved. You can now run the server.")
	return nil
}

// readAPIKey prompts for the API key, hiding input when attached to a
// terminal and reading a plain line otherwise.
func readAPIKey(in *os.File) (string, error) {
	fmt.Print("Please enter your Simple Tools API key: ")

	fd := int(in.Fd())
	if term.IsTerminal(fd) {
		keyBytes, err := term.ReadPassword(fd)
		fmt.Print("\n")
		if err != nil {
			return "", fmt.Errorf("failed to read API key: %w", err)
		}
		return strings.TrimSpace(string(keyBytes)), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read API key: %w", err)
	}
	return strings.TrimSpace(line), nil
}
