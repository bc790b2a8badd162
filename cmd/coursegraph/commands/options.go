package commands

import (
	"coursegraph/internal/banner"
	"coursegraph/internal/telemetry"

	"github.com/spf13/cobra"
)

var optionsField string

func init() {
	optionsCmd.Flags().StringVar(&optionsField, "field", banner.FieldSubject, "The select of the search form to list (ex. sel_levl, sel_instr).")
	rootCmd.AddCommand(optionsCmd)
}

var optionsCmd = &cobra.Command{
	Use:   "options <term> [--field sel_subj]",
	Short: "Lists the options a select of the class search form has for a term.",
	Args:  exactArgs(1),
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
		termCode, err := scraper.TermCode(termForm, args[0])
		if err != nil {
			return err
		}
		searchForm, err := scraper.SearchForm(cmd.Context(), termForm, termCode)
		if err != nil {
			return err
		}

		options, err := searchForm.Select(optionsField)
		if err != nil {
			return err
		}
		renderOptions(options)
		return nil
	},
}
