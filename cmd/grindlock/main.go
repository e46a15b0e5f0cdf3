package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"grindlock/internal/bootstrap"
	catalogoutadapter "grindlock/internal/modules/catalog/adapter/out"
	enforcedto "grindlock/internal/modules/enforce/dto"
	"grindlock/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var home string

	root := &cobra.Command{
		Use:           "grindlock",
		Short:         "Daily problem-quota enforcement",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&home, "home", "", "grindlock home directory (default ~/.grindlock)")

	root.AddCommand(newCheckCmd(&home))
	root.AddCommand(newPollCmd(&home))
	root.AddCommand(newStatusCmd(&home))
	root.AddCommand(newNextCmd(&home))
	root.AddCommand(newUnblockCmd(&home))
	root.AddCommand(newSetupCmd(&home))
	root.AddCommand(newCatalogCmd(&home))
	root.AddCommand(newHistoryCmd(&home))
	root.AddCommand(newDaemonCmd(&home))
	root.AddCommand(newTUICmd(&home))
	return root
}

func loadApp(home string) (*bootstrap.App, error) {
	cfg, err := config.New(home)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func printDecision(cmd *cobra.Command, decision enforcedto.DecisionOutput) {
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "phase=%s today=%d yesterday=%d", decision.Phase, decision.Today, decision.Yesterday)
	if decision.ShouldBlock {
		_, _ = fmt.Fprintf(out, " BEHIND (%d/%d)", decision.Actual, decision.Threshold)
	} else {
		_, _ = fmt.Fprintf(out, " ok (%d/%d)", decision.Actual, decision.Threshold)
	}
	if decision.Delta > 0 {
		_, _ = fmt.Fprintf(out, " — %d more needed today", decision.Delta)
	}
	_, _ = fmt.Fprintln(out)
	if decision.BlockActive {
		_, _ = fmt.Fprintln(out, "distraction blocking is ACTIVE")
	}
	if decision.GuidedTask != nil {
		_, _ = fmt.Fprintf(out, "next problem: %s\n  %s\n  %s\n",
			decision.GuidedTask.Title, decision.GuidedTask.NeetCodeURL, decision.GuidedTask.LeetCodeURL)
	}
}

func runCheck(cmd *cobra.Command, home, mode string) error {
	app, err := loadApp(home)
	if err != nil {
		return err
	}
	decision, err := app.EnforceCLI.RunCheck(context.Background(), mode)
	if err != nil {
		return err
	}
	printDecision(cmd, decision)
	return nil
}

func newCheckCmd(home *string) *cobra.Command {
	return &cobra.Command{
		Use:       "check <morning|midday|evening>",
		Short:     "Run a scheduled goal check",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"morning", "midday", "evening"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, *home, args[0])
		},
	}
}

func newPollCmd(home *string) *cobra.Command {
	return &cobra.Command{
		Use:   "poll",
		Short: "Re-evaluate the goal that triggered an active block",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, *home, "poll")
		},
	}
}

func newStatusCmd(home *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show progress without touching the block list",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, *home, "status")
		},
	}
}

func newNextCmd(home *string) *cobra.Command {
	var open bool
	cmd := &cobra.Command{
		Use:   "next",
		Short: "Show the next unsolved problem",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			task, err := app.EnforceCLI.NextTask(context.Background(), open)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n  %s\n  %s\n", task.Title, task.NeetCodeURL, task.LeetCodeURL)
			return nil
		},
	}
	cmd.Flags().BoolVar(&open, "open", false, "open the problem in the browser")
	return cmd
}

func newUnblockCmd(home *string) *cobra.Command {
	return &cobra.Command{
		Use:   "unblock",
		Short: "Force-remove grindlock's block list entries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			if err := app.EnforceCLI.ForceUnblock(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "block removed")
			return nil
		},
	}
}

func newSetupCmd(home *string) *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Write the default config and store the LeetCode session cookie",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.WriteDefault(*home)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "config: %s\n", path)

			cfg, err := config.New(*home)
			if err != nil {
				return err
			}
			catalogPath, err := catalogoutadapter.NewYAMLCatalogStore(cfg.CatalogPath).Materialize()
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "catalog: %s\n", catalogPath)

			app, err := bootstrap.New(cfg)
			if err != nil {
				return err
			}
			if app.Progress.HasSession() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "session cookie already stored; leave blank to keep it")
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), "LEETCODE_SESSION cookie: ")
			reader := bufio.NewReader(cmd.InOrStdin())
			token, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("read session cookie: %w", err)
			}
			token = strings.TrimSpace(token)
			if token == "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "session cookie unchanged")
				return nil
			}
			if err := app.Progress.StoreSession(token); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "session cookie stored in the system keychain")
			return nil
		},
	}
}

func newCatalogCmd(home *string) *cobra.Command {
	catalog := &cobra.Command{Use: "catalog", Short: "Inspect the reference problem list"}

	catalog.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every problem in canonical order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			tasks, err := app.CatalogCLI.List(context.Background())
			if err != nil {
				return err
			}
			for _, task := range tasks {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%3d  %-45s %-6s %s\n",
					task.Index+1, task.Title, task.Difficulty, task.Category)
			}
			return nil
		},
	})

	catalog.AddCommand(&cobra.Command{
		Use:   "next",
		Short: "Show the next unsolved problem",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			task, err := app.EnforceCLI.NextTask(context.Background(), false)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n  %s\n  %s\n", task.Title, task.NeetCodeURL, task.LeetCodeURL)
			return nil
		},
	})
	return catalog
}

func newHistoryCmd(home *string) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent goal checks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			checks, err := app.HistoryCLI.Recent(context.Background(), limit)
			if err != nil {
				return err
			}
			for _, check := range checks {
				verdict := "ok"
				if check.ShouldBlock {
					verdict = "BLOCK"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %-8s %-5s today=%d yesterday=%d delta=%d\n",
					check.At.Format("2006-01-02 15:04"), check.Phase, verdict, check.Today, check.Yesterday, check.Delta)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "number of checks to show")
	return cmd
}

func newDaemonCmd(home *string) *cobra.Command {
	return &cobra.Command{
		Use:   "daemon",
		Short: "Run the scheduler loop in the foreground",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return bootstrap.RunDaemon(ctx, app)
		},
	}
}

func newTUICmd(home *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the grindlock dashboard",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}
