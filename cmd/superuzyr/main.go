package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/deepmindru-afk/superuzyr/internal/application/port/input"
	"github.com/deepmindru-afk/superuzyr/internal/di"
	"github.com/deepmindru-afk/superuzyr/internal/domain/entity"
	"github.com/deepmindru-afk/superuzyr/internal/infrastructure/env"
	"github.com/deepmindru-afk/superuzyr/internal/infrastructure/userinteraction"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "superuzyr",
		Short:         "Browser automation applet marketplace",
		Long:          "Superuzyr stores browser automation tasks and runs them on a mock, cloud or local browser.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newTasksCommand())
	rootCmd.AddCommand(newPlanCommand())
	rootCmd.AddCommand(newRunCommand())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newContainer(ctx context.Context, adjust func(*di.Config)) (*di.Container, error) {
	cfg := configFromEnv(env.NewEnvService())
	if adjust != nil {
		adjust(&cfg)
	}
	container, err := di.NewContainer(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize: %w", err)
	}
	return container, nil
}

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, _ := cmd.Flags().GetString("addr")

			container, err := newContainer(cmd.Context(), func(cfg *di.Config) {
				cfg.HTTP.AccessLog = true
				if addr != "" {
					cfg.HTTP.Addr = addr
				}
			})
			if err != nil {
				return err
			}
			defer container.Close()

			return container.Server.ListenAndServe(cmd.Context())
		},
	}
	cmd.Flags().String("addr", "", "listen address (overrides LISTEN_ADDR)")
	return cmd
}

func newTasksCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "List stored tasks, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := newContainer(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer container.Close()

			tasks, err := container.Tasks.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list tasks: %w", err)
			}
			userinteraction.NewConsolePrinter(cmd.OutOrStdout()).ShowTasks(tasks)
			return nil
		},
	}
}

func newPlanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan <task-id>",
		Short: "Generate and print the plan for a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, _ := cmd.Flags().GetStringArray("param")
			params, err := parseParams(raw)
			if err != nil {
				return err
			}

			container, err := newContainer(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer container.Close()

			plan, err := container.Runner.Plan(cmd.Context(), args[0], params)
			if err != nil {
				return err
			}
			userinteraction.NewConsolePrinter(cmd.OutOrStdout()).ShowPlan(plan)
			return nil
		},
	}
	cmd.Flags().StringArray("param", nil, "parameter binding as name=value (repeatable)")
	return cmd
}

func newRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <task-id>",
		Short: "Run a task in-process",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, _ := cmd.Flags().GetStringArray("param")
			mode, _ := cmd.Flags().GetString("mode")
			stream, _ := cmd.Flags().GetBool("stream")

			params, err := parseParams(raw)
			if err != nil {
				return err
			}

			container, err := newContainer(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer container.Close()

			printer := userinteraction.NewConsolePrinter(cmd.OutOrStdout())
			in := input.RunInput{Params: params, Mode: entity.ParseExecutionMode(mode)}

			if stream {
				return container.Runner.Stream(cmd.Context(), args[0], in, func(msg input.StreamMessage) error {
					printer.ShowEvent(msg)
					return nil
				})
			}

			resp, err := container.Runner.Run(cmd.Context(), args[0], in)
			if err != nil {
				return err
			}
			printer.ShowRun(resp)
			if resp.Status != entity.RunCompleted {
				return fmt.Errorf("execution %s failed", resp.ExecutionID)
			}
			return nil
		},
	}
	cmd.Flags().StringArray("param", nil, "parameter binding as name=value (repeatable)")
	cmd.Flags().String("mode", string(entity.ModeCloud), "execution mode: cloud, local or streaming")
	cmd.Flags().Bool("stream", false, "print progress events as they happen")
	return cmd
}
