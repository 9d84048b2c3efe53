package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/careguide"
	"github.com/poiesic/careguide/batch"
	"github.com/poiesic/careguide/catalog"
	"github.com/poiesic/careguide/core"
)

func loadConfig(c *cli.Context) (*careguide.Config, error) {
	cfg := careguide.DefaultConfig()
	if path := c.String("config"); path != "" {
		loaded, err := careguide.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if path := c.String("catalog"); path != "" {
		cfg.CatalogFile = path
		cfg.CatalogDB = ""
	}
	if path := c.String("catalog-db"); path != "" {
		cfg.CatalogDB = path
		cfg.CatalogFile = ""
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newEngine(c *cli.Context) (*careguide.Engine, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}
	return careguide.NewEngine(careguide.WithConfig(cfg), careguide.WithLogger(slog.Default()))
}

func symptomsArg(c *cli.Context) string {
	return strings.Join(c.Args().Slice(), " ")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func triageCommand(c *cli.Context) error {
	engine, err := newEngine(c)
	if err != nil {
		return err
	}
	return writeJSON(c.App.Writer, engine.Triage(symptomsArg(c), c.Bool("candidates")))
}

func assessCommand(c *cli.Context) error {
	engine, err := newEngine(c)
	if err != nil {
		return err
	}
	return writeJSON(c.App.Writer, engine.Assess(symptomsArg(c), c.Bool("candidates"), c.Int("top-k")))
}

func retrieveCommand(c *cli.Context) error {
	evidence, err := parseEvidence(c.String("evidence"), c.String("evidence-json"))
	if err != nil {
		return err
	}

	engine, err := newEngine(c)
	if err != nil {
		return err
	}

	topK := c.Int("top-k")
	if topK <= 0 {
		topK = engine.Config().Retrieval.DefaultTopK
	}

	condition := c.String("condition")
	if c.Bool("grouped") {
		return writeJSON(c.App.Writer, engine.RetrieveGrouped(condition, symptomsArg(c), evidence, topK))
	}
	return writeJSON(c.App.Writer, engine.Retrieve(condition, symptomsArg(c), evidence, topK))
}

func parseEvidence(text, object string) (core.EvidencePayload, error) {
	switch {
	case text != "" && object != "":
		return core.NoEvidence(), errors.New("--evidence and --evidence-json are mutually exclusive")
	case object != "":
		// Numbers stay json.Number so integers fingerprint without a fraction.
		dec := json.NewDecoder(strings.NewReader(object))
		dec.UseNumber()
		var fields map[string]any
		if err := dec.Decode(&fields); err != nil {
			return core.NoEvidence(), fmt.Errorf("invalid --evidence-json: %w", err)
		}
		return core.MappingEvidence(fields), nil
	case text != "":
		return core.TextEvidence(text), nil
	default:
		return core.NoEvidence(), nil
	}
}

func batchCommand(c *cli.Context) error {
	if c.Int("report-interval") <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}

	var in io.Reader = c.App.Reader
	if path := c.String("input"); path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	inputs, err := batch.ReadInputs(in)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	engine, err := newEngine(c)
	if err != nil {
		return err
	}

	opts := []batch.Option{
		batch.WithLogger(slog.Default()),
		batch.WithTopK(c.Int("top-k")),
		batch.WithCandidates(c.Bool("candidates")),
		batch.WithProgress(c.App.ErrWriter, c.Int("report-interval")),
	}
	if workers := c.Int("workers"); workers > 0 {
		opts = append(opts, batch.WithPoolSize(workers))
	}

	processor, err := batch.NewProcessor(engine, opts...)
	if err != nil {
		return fmt.Errorf("failed to create processor: %w", err)
	}
	defer processor.Release()

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)
	defer stop()

	outcomes, err := processor.Process(ctx, inputs)
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}

	if c.Bool("summary") {
		return writeJSON(c.App.Writer, batch.Summarize(outcomes))
	}

	enc := json.NewEncoder(c.App.Writer)
	enc.SetEscapeHTML(false)
	for _, o := range outcomes {
		if err := enc.Encode(o); err != nil {
			return err
		}
	}
	return nil
}

func catalogSeedCommand(c *cli.Context) error {
	dbPath := c.String("db")
	if dbPath == "" {
		return fmt.Errorf("database path is required")
	}

	engine, err := newEngine(c)
	if err != nil {
		return err
	}

	cat := engine.Catalog()
	if err := careguide.SeedCatalogDB(c.Context, dbPath, cat); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	fmt.Fprintf(c.App.ErrWriter, "Seeded %d rules and %d documents into %s\n",
		len(cat.Rules()), len(cat.Documents()), dbPath)
	return nil
}

func catalogExportCommand(c *cli.Context) error {
	engine, err := newEngine(c)
	if err != nil {
		return err
	}

	out := c.String("out")
	if err := catalog.WriteFile(out, engine.Catalog()); err != nil {
		return fmt.Errorf("failed to export catalog: %w", err)
	}

	fmt.Fprintf(c.App.ErrWriter, "Wrote catalog revision %d to %s\n", engine.Catalog().Revision(), out)
	return nil
}

func catalogListCommand(c *cli.Context) error {
	engine, err := newEngine(c)
	if err != nil {
		return err
	}
	cat := engine.Catalog()

	tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RULE\tCONDITION\tURGENCY\tEMERGENCY\tWEIGHT")
	for _, r := range cat.Rules() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%.2f\n", r.ID, r.ConditionKey, r.Urgency, r.Emergency, r.Weight)
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "DOCUMENT\tTYPE\tYEAR\tTITLE")
	for _, d := range cat.Documents() {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", d.ID, d.Type, d.Year, d.Title)
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "CONDITION\tDOCUMENTS")
	docs := cat.Documents()
	for _, key := range cat.ConditionKeys() {
		n := 0
		for i := range docs {
			if docs[i].HasCondition(key) {
				n++
			}
		}
		fmt.Fprintf(tw, "%s\t%d\n", key, n)
	}
	return tw.Flush()
}
