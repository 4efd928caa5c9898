// Package cli provides command definitions for labelsync.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/klauern/labelsync/internal/config"
	"github.com/klauern/labelsync/internal/label"
	"github.com/klauern/labelsync/internal/labelfile"
	"github.com/klauern/labelsync/internal/logging"
	"github.com/klauern/labelsync/internal/progress"
	"github.com/klauern/labelsync/internal/reconcile"
	"github.com/klauern/labelsync/internal/report"
	"github.com/klauern/labelsync/internal/store"
	"github.com/klauern/labelsync/internal/ui/tui"
	"github.com/klauern/labelsync/internal/util"
)

func configCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Display or initialize labelsync configuration",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Write a default configuration file",
				Action: func(_ context.Context, _ *cli.Command) error {
					if config.Exists() {
						return fmt.Errorf("config file already exists at %s", config.FilePath())
					}
					cfg := config.Default()
					if err := cfg.Save(); err != nil {
						return fmt.Errorf("failed to write config: %w", err)
					}
					fmt.Printf("Wrote default configuration to %s\n", config.FilePath())
					return nil
				},
			},
		},
		Action: func(_ context.Context, _ *cli.Command) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			fmt.Printf("Config file: %s", config.FilePath())
			if !config.Exists() {
				fmt.Print(" (not present, using defaults)")
			}
			fmt.Println()
			fmt.Printf("  repository: %s\n", orUnset(cfg.Repo.Repository))
			fmt.Printf("  manifest:   %s\n", orUnset(cfg.Sync.Manifest))
			fmt.Printf("  policy:     %s\n", cfg.GetPolicy())
			fmt.Printf("  format:     %s\n", cfg.Output.Format)
			fmt.Printf("  color:      %s\n", cfg.Output.Color)
			return nil
		},
	}
}

func syncCommand() *cli.Command {
	return &cli.Command{
		Name:      "sync",
		Usage:     "Reconcile repository labels against the manifest",
		UsageText: "labelsync sync [options]",
		Description: `Reconcile the labels of a repository against a declarative manifest.

   Labels in the manifest are created or updated as needed; aliases rename
   existing labels. Deletion is off unless a policy enables it.

   Examples:
     labelsync sync --repo octocat/hello-world
     labelsync sync --repo octocat/hello-world --file .github/labels.yml --dry-run
     labelsync sync --repo octocat/hello-world --policy declarative --interactive`,
		Flags: append(repoFlags(),
			&cli.StringFlag{
				Name:  "policy",
				Usage: "Deletion policy: none, explicit, or declarative",
			},
			&cli.BoolFlag{
				Name:    "dry-run",
				Aliases: []string{"d"},
				Usage:   "Preview changes without applying them",
			},
			&cli.BoolFlag{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "Review the planned changes before applying (requires a terminal)",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			rc, err := resolveRun(cmd)
			if err != nil {
				return err
			}

			dryRun := cmd.Bool("dry-run") || rc.cfg.Sync.DryRun
			reporter := newReporter(dryRun)

			if cmd.Bool("interactive") && !dryRun {
				if !term.IsTerminal(int(os.Stdout.Fd())) {
					return errors.New("interactive review requires a terminal")
				}
				approved, err := reviewPlan(ctx, rc)
				if err != nil {
					return fmt.Errorf("plan review failed: %w", err)
				}
				if !approved {
					fmt.Println("Aborted, no changes applied")
					return nil
				}
			}

			st, err := newStore(rc, dryRun)
			if err != nil {
				return err
			}

			bar := progress.Simple(int64(len(rc.manifest.Labels)), "Reconciling labels")
			reporter = report.WithProgress(reporter, bar)

			result := reconcile.New(st, reporter).Reconcile(ctx, rc.manifest, reconcile.Options{
				Policy: rc.policy,
				DryRun: dryRun,
			})

			if err := reporter.WriteSummary(result); err != nil {
				return fmt.Errorf("failed to write summary: %w", err)
			}
			if !result.Success() {
				return fmt.Errorf("%d operation(s) failed", len(result.Failed()))
			}
			return nil
		},
	}
}

func diffCommand() *cli.Command {
	return &cli.Command{
		Name:      "diff",
		Usage:     "Show the changes a sync would make",
		UsageText: "labelsync diff [options]",
		Flags: append(repoFlags(),
			&cli.StringFlag{
				Name:  "policy",
				Usage: "Deletion policy: none, explicit, or declarative",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format: text or json",
			},
			&cli.BoolFlag{
				Name:  "exit-code",
				Usage: "Exit with an error when changes are pending",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			rc, err := resolveRun(cmd)
			if err != nil {
				return err
			}

			format := cmd.String("format")
			if format == "" {
				format = rc.cfg.Output.Format
			}

			st, err := newStore(rc, true)
			if err != nil {
				return err
			}

			var reporter report.Reporter = report.NewConsole(os.Stdout)
			if format == "json" {
				reporter = &report.Noop{}
			}

			result := reconcile.New(st, reporter).Reconcile(ctx, rc.manifest, reconcile.Options{
				Policy: rc.policy,
				DryRun: true,
			})

			switch format {
			case "json":
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(result); err != nil {
					return fmt.Errorf("failed to encode result: %w", err)
				}
			case "text":
				if err := reporter.WriteSummary(result); err != nil {
					return fmt.Errorf("failed to write summary: %w", err)
				}
			default:
				return fmt.Errorf("unsupported format %q (expected text or json)", format)
			}

			if !result.Success() {
				return fmt.Errorf("%d operation(s) failed", len(result.Failed()))
			}
			if cmd.Bool("exit-code") && result.Changed() > 0 {
				return fmt.Errorf("%d change(s) pending", result.Changed())
			}
			return nil
		},
	}
}

func validateCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "Validate a label manifest without contacting any repository",
		UsageText: "labelsync validate [options]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Path to the label manifest",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			path, manifest, err := loadManifest(cmd, cfg)
			if err != nil {
				return err
			}
			fmt.Printf("%s is valid: %d label(s)", path, len(manifest.Labels))
			if len(manifest.Ignore) > 0 {
				fmt.Printf(", %d ignore pattern(s)", len(manifest.Ignore))
			}
			if len(manifest.Delete) > 0 {
				fmt.Printf(", %d delete entr(ies)", len(manifest.Delete))
			}
			fmt.Println()
			return nil
		},
	}
}

// runContext carries everything a reconciliation command needs.
type runContext struct {
	cfg      *config.Config
	manifest *label.Manifest
	owner    string
	repo     string
	policy   reconcile.DeletionPolicy
}

// repoFlags returns the flags shared by sync and diff.
func repoFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Target repository as owner/name",
		},
		&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "Path to the label manifest",
		},
	}
}

// resolveRun loads config, manifest, repository, and policy from flags
// with config values as fallback.
func resolveRun(cmd *cli.Command) (*runContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if repo := cmd.String("repo"); repo != "" {
		cfg.Repo.Repository = repo
	}
	owner, repo, err := cfg.SplitRepository()
	if err != nil {
		return nil, err
	}

	_, manifest, err := loadManifest(cmd, cfg)
	if err != nil {
		return nil, err
	}

	policy := cfg.GetPolicy()
	if p := cmd.String("policy"); p != "" {
		policy = reconcile.DeletionPolicy(p)
		if !policy.IsValid() {
			return nil, fmt.Errorf("invalid policy %q (expected none, explicit, or declarative)", p)
		}
	}

	return &runContext{
		cfg:      cfg,
		manifest: manifest,
		owner:    owner,
		repo:     repo,
		policy:   policy,
	}, nil
}

// loadManifest resolves the manifest path from the flag, the config,
// or discovery in the working directory, then loads and validates it.
func loadManifest(cmd *cli.Command, cfg *config.Config) (string, *label.Manifest, error) {
	path := cmd.String("file")
	if path == "" {
		path = cfg.Sync.Manifest
	}
	if path == "" {
		discovered, err := labelfile.Discover(".")
		if err != nil {
			return "", nil, err
		}
		path = discovered
	}
	path = util.ExpandPath(path, ".")

	manifest, err := labelfile.Load(path)
	if err != nil {
		return "", nil, err
	}
	logging.Info("manifest loaded", logging.Count(len(manifest.Labels)))
	return path, manifest, nil
}

// newStore builds the label store for the resolved repository.
func newStore(rc *runContext, dryRun bool) (store.Store, error) {
	return store.NewGitHub(store.GitHubOptions{
		Token:  rc.cfg.Repo.Token,
		Owner:  rc.owner,
		Repo:   rc.repo,
		DryRun: dryRun,
	})
}

// newReporter picks the reporter for the current environment. Runs
// inside GitHub Actions emit workflow annotations and a step summary.
func newReporter(dryRun bool) report.Reporter {
	if report.RunningInActions() {
		return report.NewActions(os.Stdout)
	}
	console := report.NewConsole(os.Stdout)
	if dryRun {
		fmt.Println("Dry run: no changes will be applied")
	}
	return console
}

// reviewPlan computes the pending operations with a dry run and asks
// the user to confirm them.
func reviewPlan(ctx context.Context, rc *runContext) (bool, error) {
	st, err := newStore(rc, true)
	if err != nil {
		return false, err
	}
	plan := reconcile.New(st, nil).Reconcile(ctx, rc.manifest, reconcile.Options{
		Policy: rc.policy,
		DryRun: true,
	})
	if plan.Changed() == 0 {
		fmt.Println("No changes to apply")
	}
	return tui.ReviewPlan(plan.Operations)
}

func orUnset(s string) string {
	if s == "" {
		return "(unset)"
	}
	return s
}
