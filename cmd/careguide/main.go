// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "careguide",
		Usage: "Symptom triage and evidence retrieval",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML config file",
			},
			&cli.StringFlag{
				Name:  "catalog",
				Usage: "Path to a YAML catalog file (overrides the config file)",
			},
			&cli.StringFlag{
				Name:  "catalog-db",
				Usage: "Path to a seeded BadgerDB catalog directory (overrides the config file)",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "triage",
				Usage:     "Rank triage candidates for a symptom description",
				ArgsUsage: "SYMPTOMS...",
				Action:    triageCommand,
				Flags: []cli.Flag{
					candidatesFlag(),
				},
			},
			{
				Name:      "assess",
				Usage:     "Triage symptoms and retrieve supporting documents",
				ArgsUsage: "SYMPTOMS...",
				Action:    assessCommand,
				Flags: []cli.Flag{
					candidatesFlag(),
					topKFlag(),
				},
			},
			{
				Name:      "retrieve",
				Usage:     "Rank reference documents for a condition",
				ArgsUsage: "SYMPTOMS...",
				Action:    retrieveCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "condition",
						Usage:    "Condition key to retrieve documents for",
						Required: true,
					},
					topKFlag(),
					&cli.StringFlag{
						Name:  "evidence",
						Usage: "Opaque evidence text",
					},
					&cli.StringFlag{
						Name:  "evidence-json",
						Usage: "Evidence as a JSON object (e.g. {\"gate_matched\":[\"목\"]})",
					},
					&cli.BoolFlag{
						Name:  "grouped",
						Usage: "Include the derived query and documents grouped by type",
					},
				},
			},
			{
				Name:   "batch",
				Usage:  "Assess one symptom description per input line",
				Action: batchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"i"},
						Usage:   "Input file, or - for stdin",
						Value:   "-",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of concurrent workers (defaults to the CPU count)",
					},
					candidatesFlag(),
					topKFlag(),
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N inputs",
						Value: 100,
					},
					&cli.BoolFlag{
						Name:  "summary",
						Usage: "Print only aggregate counts instead of every outcome",
					},
				},
			},
			{
				Name:  "catalog",
				Usage: "Manage the rule catalog and evidence corpus",
				Subcommands: []*cli.Command{
					{
						Name:   "seed",
						Usage:  "Write the catalog into a BadgerDB directory",
						Action: catalogSeedCommand,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     "db",
								Aliases:  []string{"d"},
								Usage:    "Path to BadgerDB database directory",
								Required: true,
							},
						},
					},
					{
						Name:   "export",
						Usage:  "Write the catalog as a YAML file",
						Action: catalogExportCommand,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     "out",
								Aliases:  []string{"o"},
								Usage:    "Output file path",
								Required: true,
							},
						},
					},
					{
						Name:   "list",
						Usage:  "List rules and documents",
						Action: catalogListCommand,
					},
				},
			},
		},
	}
}

func candidatesFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "candidates",
		Usage: "Include every matched candidate, best first",
	}
}

func topKFlag() cli.Flag {
	return &cli.IntFlag{
		Name:    "top-k",
		Aliases: []string{"k"},
		Usage:   "Number of documents to return (0 uses the configured default)",
	}
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
