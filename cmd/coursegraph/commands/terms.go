package commands

import (
	"coursegraph/internal/banner"
	"coursegraph/internal/telemetry"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(termsCmd)
}

var termsCmd = &cobra.Command{
	Use:   "terms",
	Short: "Lists the terms the banner instance can be searched for.",
	Args:  exactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := readConfig(configPath)
		if err != nil {
			return err
		}
		scraper, err := newScraper(cfg, telemetry.SlogAPI{})
		if err != nil {
			return err
		}

		termForm, err := scraper.TermForm(cmd.Context())
		if err != nil {
			return err
		}
		terms, err := termForm.Select(banner.FieldTerm)
		if err != nil {
			return err
		}
		renderOptions(terms)
		return nil
	},
}
