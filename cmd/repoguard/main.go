// Package main implements the repoguard CLI, a commit-time guard that keeps
// confidential semiconductor process files and vendor IP out of public
// repositories. It is installed as a git pre-commit hook or run manually.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/repoguard/internal/config"
	"github.com/fyrsmithlabs/repoguard/internal/gitx"
	"github.com/fyrsmithlabs/repoguard/internal/guard"
	"github.com/fyrsmithlabs/repoguard/internal/logging"
	"github.com/fyrsmithlabs/repoguard/internal/policy"
)

var (
	flagLocal   bool
	flagReport  bool
	flagVerbose bool
	flagConfig  string

	// version information
	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\nERROR: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "repoguard",
	Short: "Block confidential files and oversized change-sets at commit time",
	Long: `repoguard checks the staged change-set against the repository hygiene
policy: blocked path patterns (with allowlisted subtrees), prohibited content
tokens scanned over whole staged files, and limits on how many files one
commit may add or change. Repositories whose remotes are all confidential
mirrors are exempt.

Examples:
  # Check the staged changes (pre-commit hook usage)
  repoguard

  # Audit an entire working tree before publishing it
  repoguard --local

  # Show the change-set counts and every match decision
  repoguard --report --verbose`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCheck,
}

func init() {
	rootCmd.Flags().BoolVar(&flagLocal, "local", false, "scan the entire working tree instead of the staged changes")
	rootCmd.Flags().BoolVar(&flagReport, "report", false, "print added/changed counts and the added files before applying limits")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "print every pattern match decision")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "policy file (default ~/.config/repoguard/policy.yaml)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	log := logging.New(flagVerbose)
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	classifier, err := policy.New(cfg, log.Named("policy"))
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	repo, err := gitx.Open(cwd)
	if err != nil {
		return fmt.Errorf("repoguard must run inside a git working tree: %w", err)
	}
	if repo.Root() != cwd {
		log.Info("running from repository root", zap.String("root", repo.Root()))
	}

	g := guard.New(repo, classifier, log.Named("guard"), guard.Options{Report: flagReport})

	var violations []policy.Violation
	if flagLocal {
		violations, err = g.AuditTree(cmd.Context(), repo.Root())
	} else {
		violations, err = g.CheckStaged(cmd.Context())
	}
	if err != nil {
		return err
	}

	if len(violations) > 0 {
		for _, v := range violations {
			fmt.Fprintf(os.Stderr, "\n%s\n", v.String())
		}
		return fmt.Errorf("%d policy violation(s); to request an exception please contact %s",
			len(violations), cfg.ExceptionContact)
	}

	fmt.Println("Passed")
	return nil
}
