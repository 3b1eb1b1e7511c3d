package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vitalvas/secretkit/shamir"
	"github.com/vitalvas/secretkit/sharefile"
	"github.com/vitalvas/secretkit/xcmd"
)

var reconstructCmd = &cobra.Command{
	Use:   "reconstruct <file> [file...]",
	Short: "Recover secrets from share documents",
	Long: `Recover the secret hidden in each share document and print one
secret per line, in argument order. Documents are processed concurrently.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReconstruct,
}

func runReconstruct(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	flags := cmd.Flags()
	if flags.Changed("solver") {
		cfg.Solver, _ = flags.GetString("solver")
	}

	if flags.Changed("verify") {
		cfg.Verify, _ = flags.GetBool("verify")
	}

	if flags.Changed("jobs") {
		cfg.Jobs, _ = flags.GetInt("jobs")
	}

	switch cfg.Solver {
	case "exact", "float":
	default:
		return fmt.Errorf("unknown solver %q (want exact or float)", cfg.Solver)
	}

	ctx, stop := xcmd.NotifyContext(cmd.Context())
	defer stop()

	group, _ := xcmd.ErrGroup(ctx)
	if cfg.Jobs > 0 {
		group.SetLimit(cfg.Jobs)
	}

	results := make([]string, len(args))

	for i, filename := range args {
		i, filename := i, filename

		group.Go(func(ctx context.Context) error {
			secret, err := reconstructFile(ctx, filename)
			if err != nil {
				return fmt.Errorf("%s: %w", filename, err)
			}

			results[i] = secret

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	for _, secret := range results {
		fmt.Fprintln(cmd.OutOrStdout(), secret)
	}

	return nil
}

func reconstructFile(ctx context.Context, filename string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	doc, err := sharefile.ParseFile(filename)
	if err != nil {
		return "", err
	}

	shares, err := doc.Shares()
	if err != nil {
		return "", err
	}

	if cfg.Verify {
		ok, err := shamir.VerifyShares(shares, doc.K)
		if err != nil {
			return "", err
		}

		if !ok {
			logger.Warn("shares do not agree on a single polynomial", "file", filename)
		}
	}

	if cfg.Solver == "float" {
		value, report, err := shamir.ReconstructFloat(shares, doc.K)
		if err != nil {
			return "", err
		}

		logConsistency(filename, report)

		return strconv.FormatFloat(value, 'g', -1, 64), nil
	}

	secret, err := shamir.Reconstruct(shares, doc.K)
	if err != nil {
		return "", err
	}

	return secret.String(), nil
}

func logConsistency(filename string, report *shamir.Consistency) {
	if report.OK() {
		if report.Checked > 0 {
			logger.Debug("extra shares are consistent",
				"file", filename,
				"checked", report.Checked,
			)
		}

		return
	}

	for _, mismatch := range report.Mismatches {
		logger.Warn("share disagrees with the fitted polynomial",
			"file", filename,
			"share", shamir.Fingerprint(mismatch.Share),
			"got", mismatch.Got,
			"want", mismatch.Want,
			"residual", mismatch.Residual,
		)
	}

	logger.Warn("consistency check failed",
		"file", filename,
		"checked", report.Checked,
		"max_residual", report.MaxResidual,
		"mean_residual", report.MeanResidual,
	)
}

func init() {
	flags := reconstructCmd.Flags()
	flags.String("solver", "", "solver to use (exact, float)")
	flags.Bool("verify", false, "check all shares against the fitted polynomial")
	flags.Int("jobs", 0, "maximum number of files processed at once (0 for no limit)")

	rootCmd.AddCommand(reconstructCmd)
}
