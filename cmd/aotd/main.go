package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/albumoftheday/aotd/pkg/env"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "aotd",
	Short: "Create and decompose album-of-the-day images",
	Long: `aotd renders album-of-the-day images from a template photo, fitting the title,
genres and comments into their regions, and crops existing images into their
named regions for OCR.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	// .env file is optional
	cobra.OnInitialize(env.Load)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&output, "output", "", "Output directory or gs://bucket/prefix (env AOTD_OUTPUT, default .)")
	rootCmd.PersistentFlags().StringVar(&layoutPath, "layout", "", "YAML file with an alternate geometry (env AOTD_LAYOUT_FILE)")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logrus.WithError(err).Error("Command failed")
		os.Exit(1)
	}
}
