package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Parthiban024/jira-automation/engine/infra/server"
	"github.com/Parthiban024/jira-automation/pkg/config"
	"github.com/Parthiban024/jira-automation/pkg/logger"
)

func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "jira-automation",
		Short: "Forward Jira issue webhooks to Asana tasks",
	}
	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().Bool("log-json", false, "emit logs as JSON")
	root.PersistentFlags().Bool("log-source", false, "include caller information in logs")
	root.AddCommand(StartCmd())
	return root
}

func StartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the webhook server",
		RunE:  runStart,
	}
	cmd.Flags().String("env-file", "", "path to a .env file to load before reading configuration")
	cmd.Flags().String("host", "", "bind address override")
	cmd.Flags().Int("port", 0, "bind port override")
	return cmd
}

func runStart(cmd *cobra.Command, _ []string) error {
	envFile, err := cmd.Flags().GetString("env-file")
	if err != nil {
		return fmt.Errorf("failed to get env-file flag: %w", err)
	}
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	} else {
		// A local .env is optional.
		_ = godotenv.Load()
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logLevel, logJSON, logSource, err := logger.GetLoggerConfig(cmd)
	if err != nil {
		return err
	}
	if logLevel == "" {
		logLevel = cfg.Runtime.LogLevel
	}
	logger.SetupLogger(logLevel, logJSON, logSource)

	if host, err := cmd.Flags().GetString("host"); err == nil && host != "" {
		cfg.Server.Host = host
	}
	if port, err := cmd.Flags().GetInt("port"); err == nil && port != 0 {
		cfg.Server.Port = port
	}

	if cfg.Asana.Token.Value() == "" {
		logger.Warn("ASANA_TOKEN is not set; task creation will fail with authorization errors")
	}
	if cfg.Asana.ProjectID == "" {
		logger.Warn("ASANA_PROJECT_ID is not set; created tasks will have no destination project")
	}

	return server.NewServer(cfg).Run()
}
