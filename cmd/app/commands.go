package main

import (
	"context"
	"fmt"
	"strings"

	"WhaleEye/internal/di"
	"WhaleEye/internal/domain/models"
	"WhaleEye/pkg/config"
	xhttp "WhaleEye/pkg/http"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3B82F6")).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3B82F6")).
			Padding(0, 1)

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "whaleeye",
		Short:         "WhaleEye - whale activity and crypto news analysis",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "config/config.yaml", "config file path")

	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newAskCmd(&configPath))
	return root
}

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadWithEnv(*configPath)
			if err != nil {
				return fmt.Errorf("config load failed: %w", err)
			}

			app, cleanup, err := di.InitializeApp(cfg)
			if err != nil {
				return fmt.Errorf("app initialization failed: %w", err)
			}
			defer cleanup()

			return app.Run(cmd.Context())
		},
	}
}

func newAskCmd(configPath *string) *cobra.Command {
	var (
		role   string
		format string
	)

	cmd := &cobra.Command{
		Use:   "ask [MESSAGE]",
		Short: "Answer one chat message in-process and print the reply",
		Long: `Run the orchestrator once without starting the server.
Example: whaleeye ask --role investor "analyze wallet 0xd8da6bf26964af9d7eed9e03e53415d37aa96045"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadWithEnv(*configPath)
			if err != nil {
				return fmt.Errorf("config load failed: %w", err)
			}
			// keep stdout for the reply
			cfg.Log.Output = "stderr"
			cfg.Log.Level = "warn"

			orch, cleanup, err := di.InitializeOrchestrator(cfg)
			if err != nil {
				return fmt.Errorf("orchestrator initialization failed: %w", err)
			}
			defer cleanup()

			req := &models.OrchestratorRequest{
				Message:   strings.Join(args, " "),
				UserRole:  models.Role(role),
				Format:    format,
				RequestID: uuid.NewString(),
			}
			if verr := xhttp.ValidateStruct(req); verr != nil {
				return fmt.Errorf("invalid request: %s", verr[0].Message)
			}

			return runAsk(cmd.Context(), cmd, orch, req)
		},
	}

	cmd.Flags().StringVar(&role, "role", string(models.RoleTrader), "persona the reply is written for (trader, investor, analyst)")
	cmd.Flags().StringVar(&format, "format", models.FormatMarkdown, "reply format (markdown or html)")
	return cmd
}

type orchestrator interface {
	Handle(ctx context.Context, req *models.OrchestratorRequest) (*models.OrchestratorResponse, error)
}

func runAsk(ctx context.Context, cmd *cobra.Command, orch orchestrator, req *models.OrchestratorRequest) error {
	if ctx == nil {
		ctx = context.Background()
	}
	resp, err := orch.Handle(ctx, req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, headerStyle.Render("WhaleEye · "+models.Role(resp.Role).Title()))
	fmt.Fprintln(out, metaStyle.Render(fmt.Sprintf("query: %s  request: %s", resp.QueryType, req.RequestID)))
	fmt.Fprintln(out)
	fmt.Fprintln(out, resp.Response)
	return nil
}
