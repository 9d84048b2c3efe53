package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/careguide/batch"
	"github.com/poiesic/careguide/core"
)

func runApp(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Reader = strings.NewReader(stdin)
	app.Writer = &out
	app.ErrWriter = io.Discard
	err := app.Run(append([]string{"careguide", "--log-level", "error"}, args...))
	return out.String(), err
}

func TestTriageCommand(t *testing.T) {
	out, err := runApp(t, "", "triage", "가슴이", "아프고", "식은땀이", "나요")
	require.NoError(t, err)

	var result core.TriageResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "acute_coronary_syndrome_pattern", result.Best.RuleID)
	assert.Equal(t, 0.44, result.Best.Confidence)
	assert.Nil(t, result.Candidates)
	assert.Contains(t, out, "급성 관상동맥 증후군", "korean text should not be escaped")
}

func TestTriageCommand_Candidates(t *testing.T) {
	out, err := runApp(t, "", "triage", "--candidates", "배가 아프고 오른쪽 아랫배가 아파요, 열도 나요")
	require.NoError(t, err)

	var result core.TriageResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Len(t, result.Candidates, 2)
}

func TestAssessCommand(t *testing.T) {
	out, err := runApp(t, "", "assess", "-k", "2", "목이 아프고 삼키기 힘들어요")
	require.NoError(t, err)

	var a core.Assessment
	require.NoError(t, json.Unmarshal([]byte(out), &a))
	assert.Equal(t, "급성 인두염", a.Triage.Best.ConditionKey)
	assert.Len(t, a.Documents, 2)
	assert.Equal(t, a.Triage.Best.ConditionKey, a.Query.ConditionKey)
}

func TestRetrieveCommand(t *testing.T) {
	t.Run("condition is required", func(t *testing.T) {
		_, err := runApp(t, "", "retrieve", "목이 아파요")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "condition")
	})

	t.Run("ranked documents", func(t *testing.T) {
		out, err := runApp(t, "", "retrieve", "--condition", "급성 관상동맥 증후군", "--top-k", "3",
			"--evidence-json", `{"gate_matched":["가슴"],"support_matched":["식은땀"]}`,
			"가슴이 아프고 식은땀이 나요")
		require.NoError(t, err)

		var docs []core.ScoredDoc
		require.NoError(t, json.Unmarshal([]byte(out), &docs))
		require.Len(t, docs, 3)
		assert.Equal(t, "acs-esc-guideline-2023", docs[0].ID)
		assert.Equal(t, []string{"식은땀"}, docs[0].Evidence.RedFlags)
	})

	t.Run("grouped", func(t *testing.T) {
		out, err := runApp(t, "", "retrieve", "--condition", "급성 인두염", "--grouped", "목이 아파요")
		require.NoError(t, err)
		assert.Contains(t, out, `"grouped"`)
		assert.Contains(t, out, `"query"`)
	})

	t.Run("conflicting evidence flags", func(t *testing.T) {
		_, err := runApp(t, "", "retrieve", "--condition", "x", "--evidence", "a", "--evidence-json", "{}")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mutually exclusive")
	})

	t.Run("malformed evidence json", func(t *testing.T) {
		_, err := runApp(t, "", "retrieve", "--condition", "x", "--evidence-json", "[1,")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "evidence-json")
	})
}

func TestParseEvidence(t *testing.T) {
	ev, err := parseEvidence("", "")
	require.NoError(t, err)
	assert.Equal(t, core.EvidenceAbsent, ev.Kind())

	ev, err = parseEvidence("opaque", "")
	require.NoError(t, err)
	assert.Equal(t, core.EvidenceText, ev.Kind())
	assert.Equal(t, "opaque", ev.Text())

	ev, err = parseEvidence("", `{"gate_matched":["목"]}`)
	require.NoError(t, err)
	assert.Equal(t, core.EvidenceMapping, ev.Kind())
	assert.Equal(t, []string{"목"}, ev.StringList("gate_matched"))
}

func TestBatchCommand(t *testing.T) {
	input := "가슴이 아프고 식은땀이 나요\n\n목이 아프고 삼키기 힘들어요\n"

	t.Run("json lines", func(t *testing.T) {
		out, err := runApp(t, input, "batch", "--workers", "2", "-k", "1")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 2)

		var first batch.Outcome
		require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
		assert.Equal(t, 0, first.Index)
		assert.Equal(t, "가슴이 아프고 식은땀이 나요", first.Symptoms)
		assert.Equal(t, core.IDFromContent(first.Symptoms), first.ID)
		assert.Len(t, first.Assessment.Documents, 1)
	})

	t.Run("summary", func(t *testing.T) {
		out, err := runApp(t, input, "batch", "--summary")
		require.NoError(t, err)

		var s batch.Summary
		require.NoError(t, json.Unmarshal([]byte(out), &s))
		assert.Equal(t, 2, s.Total)
		assert.Equal(t, 1, s.Emergencies)
	})

	t.Run("input file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "inputs.txt")
		require.NoError(t, os.WriteFile(path, []byte(input), 0o644))

		out, err := runApp(t, "", "batch", "--input", path, "--summary")
		require.NoError(t, err)
		assert.Contains(t, out, `"total": 2`)
	})

	t.Run("missing input file", func(t *testing.T) {
		_, err := runApp(t, "", "batch", "--input", filepath.Join(t.TempDir(), "missing.txt"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to open input")
	})

	t.Run("invalid report interval", func(t *testing.T) {
		_, err := runApp(t, input, "batch", "--report-interval", "0")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "report-interval")
	})
}

func TestCatalogCommands(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "catalog_db")
	yamlPath := filepath.Join(dir, "catalog.yaml")

	t.Run("seed requires db", func(t *testing.T) {
		_, err := runApp(t, "", "catalog", "seed")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db")
	})

	t.Run("seed then list from db", func(t *testing.T) {
		_, err := runApp(t, "", "catalog", "seed", "--db", dbPath)
		require.NoError(t, err)

		out, err := runApp(t, "", "--catalog-db", dbPath, "catalog", "list")
		require.NoError(t, err)
		assert.Contains(t, out, "RULE")
		assert.Contains(t, out, "acute_coronary_syndrome_pattern")
		assert.Contains(t, out, "acs-esc-guideline-2023")
		assert.Contains(t, out, "CONDITION")
		assert.Contains(t, out, "급성 인두염")
	})

	t.Run("export then triage from file", func(t *testing.T) {
		_, err := runApp(t, "", "catalog", "export", "--out", yamlPath)
		require.NoError(t, err)
		require.FileExists(t, yamlPath)

		out, err := runApp(t, "", "--catalog", yamlPath, "triage", "가슴이 아프고 식은땀이 나요")
		require.NoError(t, err)
		assert.Contains(t, out, "acute_coronary_syndrome_pattern")
	})
}

func TestConfigFlag(t *testing.T) {
	dir := t.TempDir()

	t.Run("overrides thresholds", func(t *testing.T) {
		path := filepath.Join(dir, "careguide.yaml")
		require.NoError(t, os.WriteFile(path, []byte("triage:\n  medium_threshold: 0.4\n"), 0o644))

		out, err := runApp(t, "", "--config", path, "triage", "가슴이 아프고 식은땀이 나요")
		require.NoError(t, err)

		var result core.TriageResult
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		assert.Equal(t, core.ConfidenceMedium, result.Best.ConfidenceLabel)
	})

	t.Run("invalid config", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("retrieval:\n  cache_size: -1\n"), 0o644))

		_, err := runApp(t, "", "--config", path, "triage", "목")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid config")
	})
}

func TestSetupLogger(t *testing.T) {
	t.Run("valid log levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", "DEBUG", "WaRn"} {
			t.Run(level, func(t *testing.T) {
				app := &cli.App{
					Name: "test",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:  "log-level",
							Value: "info",
						},
					},
					Before: setupLogger,
					Action: func(c *cli.Context) error {
						return nil
					},
				}

				err := app.Run([]string{"test", "--log-level", level})
				require.NoError(t, err)
			})
		}
	})

	t.Run("debug level enables debug logs", func(t *testing.T) {
		app := &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "log-level",
					Aliases: []string{"l"},
					Value:   "info",
				},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error {
				assert.Equal(t, "debug", c.String("log-level"))
				return nil
			},
		}

		err := app.Run([]string{"test", "-l", "debug"})
		require.NoError(t, err)
		assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		_, err := runApp(t, "", "--log-level", "invalid", "triage", "목")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}
