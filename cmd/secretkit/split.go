package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/spf13/cobra"

	"github.com/vitalvas/secretkit/shamir"
	"github.com/vitalvas/secretkit/sharefile"
)

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Split a secret into a share document",
	Args:  cobra.NoArgs,
	RunE:  runSplit,
}

var (
	splitSecret    string
	splitThreshold int
	splitTotal     int
	splitBase      int
	splitOutput    string
)

func runSplit(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true

	secret, ok := new(big.Int).SetString(splitSecret, 10)
	if !ok {
		return fmt.Errorf("secret %q is not a decimal integer", splitSecret)
	}

	shares, err := shamir.Split(secret, splitThreshold, splitTotal)
	if err != nil {
		return err
	}

	data, err := sharefile.Encode(shares, splitThreshold, splitBase)
	if err != nil {
		return err
	}

	data = append(data, '\n')

	if splitOutput == "" || splitOutput == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.WriteFile(splitOutput, data, 0o600); err != nil {
		return fmt.Errorf("failed to write share document: %w", err)
	}

	logger.Info("share document written",
		"file", splitOutput,
		"shares", len(shares),
		"threshold", splitThreshold,
	)

	return nil
}

func init() {
	flags := splitCmd.Flags()
	flags.StringVar(&splitSecret, "secret", "", "decimal secret to split")
	flags.IntVarP(&splitThreshold, "threshold", "k", 3, "minimum shares needed to reconstruct")
	flags.IntVarP(&splitTotal, "total", "n", 5, "total number of shares to generate")
	flags.IntVar(&splitBase, "base", 10, "numeric base for encoded share values")
	flags.StringVarP(&splitOutput, "output", "o", "", "output file (default stdout)")

	_ = splitCmd.MarkFlagRequired("secret")

	rootCmd.AddCommand(splitCmd)
}
