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
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/civicmind"
	"github.com/poiesic/civicmind/ai"
	"github.com/poiesic/civicmind/router"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "civicmind",
		Usage: "Civic-service question answering for Chennai residents",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before:   setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "ask",
				Usage:     "Answer a single civic question",
				ArgsUsage: "<question>",
				Action:    askCommand,
				Flags:     engineFlags(),
			},
			{
				Name:   "chat",
				Usage:  "Answer questions interactively from stdin",
				Action: chatCommand,
				Flags:  engineFlags(),
			},
			{
				Name:      "route",
				Usage:     "Show how a question would be routed, without answering it",
				ArgsUsage: "<question>",
				Action:    routeCommand,
			},
			{
				Name:   "seed",
				Usage:  "Write the sample Chennai knowledge snapshots",
				Action: seedCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "data",
						Usage: "Directory to write the snapshots into",
						Value: "data",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func engineFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "data",
			Usage: "Directory holding the knowledge snapshots",
			Value: "data",
		},
		&cli.StringFlag{
			Name:  "index",
			Usage: "Path to the persistent chunk index (omit for in-memory)",
		},
		&cli.StringFlag{
			Name:  "host",
			Usage: "OpenAI-compatible service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "embeddinggemma",
		},
		&cli.StringFlag{
			Name:  "completion-model",
			Usage: "Completion model name for conversational replies",
			Value: "qwen2.5:3b",
		},
		&cli.BoolFlag{
			Name:  "enable-completion",
			Usage: "Generate conversational replies with the completion model",
		},
	}
}

func buildEngine(ctx context.Context, c *cli.Context) (*civicmind.Engine, error) {
	config := ai.NewConfig(
		ai.WithHost(c.String("host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithCompletionModel(c.String("completion-model")),
		ai.WithCompletion(c.Bool("enable-completion")),
	)

	opts := []civicmind.EngineOption{
		civicmind.WithAIConfig(config),
		civicmind.WithDataDir(c.String("data")),
	}
	if index := c.String("index"); index != "" {
		opts = append(opts, civicmind.WithIndexPath(index))
	}

	engine, err := civicmind.NewEngine(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build engine: %w", err)
	}

	for _, loadErr := range engine.LoadErrors() {
		fmt.Fprintf(os.Stderr, "warning: %s partition unavailable: %v\n", loadErr.Partition, loadErr.Err)
	}
	return engine, nil
}

func askCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("a question is required")
	}

	ctx := context.Background()
	engine, err := buildEngine(ctx, c)
	if err != nil {
		return err
	}
	defer engine.Close()

	answer := engine.Answer(ctx, query)
	fmt.Println(answer.Text)
	fmt.Printf("\n[%s, confidence %.2f]\n", answer.Strategy, answer.Confidence)
	return nil
}

func chatCommand(c *cli.Context) error {
	ctx := context.Background()
	engine, err := buildEngine(ctx, c)
	if err != nil {
		return err
	}
	defer engine.Close()

	fmt.Println("CivicMind ready. Ask a civic question, or type 'exit' to quit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}
		if query == "exit" || query == "quit" {
			break
		}

		answer := engine.Answer(ctx, query)
		fmt.Println(answer.Text)
		fmt.Printf("[%s, confidence %.2f]\n\n", answer.Strategy, answer.Confidence)
	}
	return scanner.Err()
}

func routeCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("a question is required")
	}

	r, err := router.New()
	if err != nil {
		return err
	}

	score := r.Classify(query)
	fmt.Printf("query: %q\n", query)
	for _, kind := range r.Priority() {
		fmt.Printf("  %s: %d\n", kind, score.Scores[kind])
		for _, signature := range score.Matched[kind] {
			fmt.Printf("    %s\n", signature)
		}
	}
	fmt.Printf("winner: %s (confidence %.2f)\n", score.Winner, score.Confidence)
	return nil
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
