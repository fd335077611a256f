package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"technova/internal/bootstrap"
	"technova/internal/platform/config"
	"technova/internal/platform/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
	seed       uint64
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "technova",
		Short:         "Career simulation, burnout detection and prompt assessment",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML config file (optional)")
	root.PersistentFlags().Uint64Var(&opts.seed, "seed", 0, "random seed for simulations (0 = entropy)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug|info|warn|error")

	root.AddCommand(newSimulateCmd(opts))
	root.AddCommand(newCompareCmd(opts))
	root.AddCommand(newTracksCmd(opts))
	root.AddCommand(newBurnoutCmd(opts))
	root.AddCommand(newAssessCmd(opts))
	root.AddCommand(newTUICmd(opts))
	return root
}

func loadApp(cmd *cobra.Command, opts *rootOptions) (*bootstrap.App, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = opts.seed
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return bootstrap.New(cmd.Context(), cfg, logging.New(cfg.Log))
}

func newSimulateCmd(opts *rootOptions) *cobra.Command {
	var requestPath, careerPath, comparisonPath string
	var simulations int

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a Monte Carlo projection for a career track",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			if requestPath != "" {
				raw, err := readRequest(cmd, requestPath)
				if err != nil {
					return err
				}
				out, err := app.CareerCLI.SimulateRequest(cmd.Context(), raw)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), out)
			}
			if careerPath == "" {
				return fmt.Errorf("either --request or --career-path is required")
			}
			out, err := app.CareerCLI.Simulate(cmd.Context(), careerPath, comparisonPath, changedInt(cmd, "simulations", simulations))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&requestPath, "request", "", "JSON request file, - for stdin")
	cmd.Flags().StringVar(&careerPath, "career-path", "", "track to simulate")
	cmd.Flags().StringVar(&comparisonPath, "comparison-path", "", "second track to simulate alongside (optional)")
	cmd.Flags().IntVar(&simulations, "simulations", 0, "number of runs (default from config)")
	return cmd
}

func newCompareCmd(opts *rootOptions) *cobra.Command {
	var requestPath string
	var simulations int

	cmd := &cobra.Command{
		Use:   "compare [path1 path2]",
		Short: "Compare two career tracks by risk-adjusted return",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			if requestPath != "" {
				raw, err := readRequest(cmd, requestPath)
				if err != nil {
					return err
				}
				out, err := app.CareerCLI.CompareRequest(cmd.Context(), raw)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), out)
			}
			if len(args) != 2 {
				return fmt.Errorf("compare needs two track names or --request")
			}
			out, err := app.CareerCLI.Compare(cmd.Context(), args[0], args[1], changedInt(cmd, "simulations", simulations))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&requestPath, "request", "", "JSON request file, - for stdin")
	cmd.Flags().IntVar(&simulations, "simulations", 0, "number of runs (default from config)")
	return cmd
}

func newTracksCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tracks",
		Short: "List the configured career tracks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			tracks, err := app.CareerCLI.ListTracks(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), tracks)
		},
	}
}

func newBurnoutCmd(opts *rootOptions) *cobra.Command {
	var requestPath string
	var derive bool

	burnout := &cobra.Command{
		Use:   "burnout",
		Short: "Score burnout risk from an activity log",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, raw, err := loadWithRequest(cmd, opts, requestPath)
			if err != nil {
				return err
			}
			out, err := app.BurnoutCLI.DetectRequest(cmd.Context(), raw, derive)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	burnout.PersistentFlags().StringVar(&requestPath, "request", "", "JSON request file with activityLog, - for stdin")
	burnout.PersistentFlags().BoolVar(&derive, "derive-time-of-day", false, "fill missing timeOfDay from the timestamp hour")

	burnout.AddCommand(&cobra.Command{
		Use:   "plan",
		Short: "Score burnout risk and propose interventions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, raw, err := loadWithRequest(cmd, opts, requestPath)
			if err != nil {
				return err
			}
			out, err := app.BurnoutCLI.PlanRequest(cmd.Context(), raw, derive)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	})
	return burnout
}

func newAssessCmd(opts *rootOptions) *cobra.Command {
	var requestPath, question, prompt, aiOutput string

	assess := &cobra.Command{
		Use:   "assess",
		Short: "Score a prompt-engineering attempt",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			if requestPath != "" {
				raw, err := readRequest(cmd, requestPath)
				if err != nil {
					return err
				}
				out, err := app.PromptCLI.AssessRequest(cmd.Context(), raw)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), out)
			}
			if !cmd.Flags().Changed("prompt") {
				return fmt.Errorf("either --request or --prompt is required")
			}
			out, err := app.PromptCLI.Assess(cmd.Context(), question, prompt, aiOutput)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	assess.Flags().StringVar(&requestPath, "request", "", "JSON request file, - for stdin")
	assess.Flags().StringVar(&question, "question", "", "the task the prompt was written for")
	assess.Flags().StringVar(&prompt, "prompt", "", "the user's prompt")
	assess.Flags().StringVar(&aiOutput, "ai-output", "", "the model's answer (optional)")

	var sessionRequest string
	session := &cobra.Command{
		Use:   "session",
		Short: "Score a list of prompts and award a badge",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, raw, err := loadWithRequest(cmd, opts, sessionRequest)
			if err != nil {
				return err
			}
			out, err := app.PromptCLI.SessionRequest(cmd.Context(), raw)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	session.Flags().StringVar(&sessionRequest, "request", "", "JSON request file with items, - for stdin")
	assess.AddCommand(session)
	return assess
}

func newTUICmd(opts *rootOptions) *cobra.Command {
	var activityLog string
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the technova terminal dashboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app, activityLog)
		},
	}
	cmd.Flags().StringVar(&activityLog, "activity-log", "", "burnout request file to show on the Burnout tab")
	return cmd
}

func loadWithRequest(cmd *cobra.Command, opts *rootOptions, requestPath string) (*bootstrap.App, []byte, error) {
	if requestPath == "" {
		return nil, nil, fmt.Errorf("--request is required")
	}
	app, err := loadApp(cmd, opts)
	if err != nil {
		return nil, nil, err
	}
	raw, err := readRequest(cmd, requestPath)
	if err != nil {
		return nil, nil, err
	}
	return app, raw, nil
}

func readRequest(cmd *cobra.Command, path string) ([]byte, error) {
	if strings.TrimSpace(path) == "-" {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read request from stdin: %w", err)
		}
		return raw, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read request: %w", err)
	}
	return raw, nil
}

// changedInt returns nil unless the flag was set so the configured default applies.
func changedInt(cmd *cobra.Command, name string, v int) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &v
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
