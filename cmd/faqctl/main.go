package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"clinic-faq/internal/app"
	"clinic-faq/internal/config"
	"clinic-faq/internal/seed"
	"clinic-faq/internal/service"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:      "faqctl",
		Usage:     "Manage and query the clinic FAQ knowledge base",
		Writer:    out,
		ErrWriter: os.Stderr,
		Commands: []*cli.Command{
			{
				Name:   "seed",
				Usage:  "Replace every FAQ with the default clinic entries",
				Action: seedCommand,
			},
			{
				Name:      "ask",
				Usage:     "Answer a question and print the JSON response",
				ArgsUsage: "<question>",
				Action:    askCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "lang",
						Aliases: []string{"l"},
						Usage:   "Two-letter language code",
						Value:   "en",
					},
				},
			},
			{
				Name:   "list",
				Usage:  "List FAQs",
				Action: listCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "lang",
						Aliases: []string{"l"},
						Usage:   "Only list FAQs in this language",
					},
				},
			},
		},
	}
}

// open loads configuration and builds the shared components.
// Logs go to stderr so command output stays machine readable.
func open(ctx context.Context) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger := app.NewLogger(cfg, os.Stderr)
	slog.SetDefault(logger)

	return app.New(ctx, cfg, logger)
}

func seedCommand(c *cli.Context) error {
	ctx := context.Background()

	a, err := open(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = a.Close()
	}()

	n, err := seed.Seed(ctx, a.Store)
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	if err := a.InvalidateAnswers(ctx); err != nil {
		slog.Warn("failed to invalidate cached answers", "error", err)
	}

	_, _ = fmt.Fprintf(c.App.Writer, "Seeded %d FAQs\n", n)
	return nil
}

func askCommand(c *cli.Context) error {
	text := strings.Join(c.Args().Slice(), " ")

	ctx := context.Background()
	a, err := open(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = a.Close()
	}()

	resp, err := a.AskService.Ask(ctx, service.AskRequest{Text: text, Lang: c.String("lang")})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(c.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

func listCommand(c *cli.Context) error {
	ctx := context.Background()
	a, err := open(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = a.Close()
	}()

	faqs, err := a.FAQService.List(ctx, c.String("lang"))
	if err != nil {
		return err
	}

	for _, f := range faqs {
		_, _ = fmt.Fprintf(c.App.Writer, "%d\t[%s]\t%s\t(%s)\n", f.ID, f.Lang, f.Question, strings.Join(f.Tags, ", "))
	}
	return nil
}
