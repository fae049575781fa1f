package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/happyhackingspace/stoplist"
	"github.com/happyhackingspace/stoplist/internal/corpusio"
)

func (c *CLI) newTextCommand() *cobra.Command {
	var f buildFlags

	cmd := &cobra.Command{
		Use:   "text [path]",
		Short: "Build a stoplist from a single document by raw frequency",
		Args:  cobra.MaximumNArgs(1),
		Example: `  stoplist text oratore.txt --size 20

  # From stdin, with scores
  cat oratore.txt | stoplist text --counts`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.config(cmd)
			if err != nil {
				return err
			}

			var doc string
			if len(args) == 0 {
				if isStdinTerminal() {
					return cmd.Help()
				}
				doc, err = readStdinDocument()
				if err != nil {
					return err
				}
			} else {
				docs, err := corpusio.Load(args, corpusio.Options{Strip: cfg.Strip})
				if err != nil {
					return err
				}
				if len(docs) != 1 {
					return fmt.Errorf("%s holds %d documents, expected one", args[0], len(docs))
				}
				doc = docs[0]
			}

			builder := stoplist.NewTextBuilder(cfg.Language)
			start := time.Now()
			if f.counts {
				entries, err := builder.BuildScored(doc, cfg.Options())
				if err != nil {
					return err
				}
				slog.Debug("Stoplist built", "terms", len(entries), "duration", time.Since(start))
				return printEntries(entries, f.asJSON)
			}

			words, err := builder.Build(doc, cfg.Options())
			if err != nil {
				return err
			}
			slog.Debug("Stoplist built", "terms", len(words), "duration", time.Since(start))
			return printTerms(words, f.asJSON)
		},
	}

	f.register(cmd)
	return cmd
}
