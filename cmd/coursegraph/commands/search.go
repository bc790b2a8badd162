package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"coursegraph/internal/banner"
	"coursegraph/internal/graph"
	"coursegraph/internal/telemetry"

	"github.com/spf13/cobra"
)

var (
	levels      []string
	instructors []string
	subjects    []string
	courses     []string
	format      string
	focus       string
	outputPath  string
)

func initSearchFlags() {
	flags := rootCmd.Flags()
	flags.StringArrayVar(&levels, "level", nil, "A level code to search for, can be repeated.")
	// StringArray so names like "Smith, Jane" are not split on the comma
	flags.StringArrayVar(&instructors, "instructor", nil, "An instructor name to search for, can be repeated.")
	flags.StringArrayVar(&subjects, "subject", nil, "A subject code to search for, can be repeated.")
	flags.StringArrayVar(&courses, "course", nil, "A course number to search for.")
	flags.StringVar(&format, "format", string(graph.FormatDOT), "The output format, dot or json.")
	flags.StringVar(&focus, "focus", "", "Only output this course (ex. CS_3000) and everything it requires.")
	flags.StringVarP(&outputPath, "output", "o", "", "The file to write the graph to instead of stdout.")
}

func searchRequest(term string) (banner.Request, graph.Format, error) {
	outFormat, err := graph.ParseFormat(format)
	if err != nil {
		return banner.Request{}, "", usageError{err: err}
	}
	if len(courses) > 1 {
		return banner.Request{}, "", usageError{err: fmt.Errorf("--course can only be given once")}
	}

	req := banner.Request{
		Term:        term,
		Levels:      levels,
		Instructors: instructors,
		Subjects:    subjects,
	}
	if len(courses) == 1 {
		req.Course = courses[0]
	}
	return req, outFormat, nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	req, outFormat, err := searchRequest(args[0])
	if err != nil {
		return err
	}

	cfg, err := readConfig(configPath)
	if err != nil {
		return err
	}
	scraper, err := newScraper(cfg, telemetry.SlogAPI{})
	if err != nil {
		return err
	}

	g, err := scraper.Run(cmd.Context(), req)
	if err != nil {
		return err
	}
	slog.Info("extracted requisite graph", "courses", g.Len(), "requisites", g.EdgeCount())

	if focus != "" {
		id := graph.NormalizeID(focus)
		if _, ok := g.Node(id); !ok {
			return fmt.Errorf("course '%s' is not in the results", id)
		}
		g = g.Subgraph(id)
	}

	var out io.Writer = os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return graph.Write(out, g, outFormat)
}
