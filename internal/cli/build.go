package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/happyhackingspace/stoplist"
	"github.com/happyhackingspace/stoplist/internal/config"
	"github.com/happyhackingspace/stoplist/internal/corpusio"
)

// buildFlags carries the options shared by the build and text commands.
// Explicit flags override values loaded from --config.
type buildFlags struct {
	configPath        string
	language          string
	basis             string
	size              int
	sortWords         bool
	lower             bool
	removePunctuation bool
	removeNumbers     bool
	foldDiacritics    bool
	stem              bool
	include           []string
	exclude           []string
	strip             []string
	counts            bool
	asJSON            bool
}

func (f *buildFlags) register(cmd *cobra.Command) {
	def := config.Default()
	cmd.Flags().StringVar(&f.configPath, "config", "", "Path to YAML config file")
	cmd.Flags().StringVar(&f.language, "language", def.Language, "Corpus language (used for stemming)")
	cmd.Flags().StringVar(&f.basis, "basis", def.Basis, "Ranking basis: frequency, tfidf, mean, variance, entropy, zou")
	cmd.Flags().IntVar(&f.size, "size", def.Size, "Number of terms to extract")
	cmd.Flags().BoolVar(&f.sortWords, "sort", def.SortWords, "Sort the result alphabetically")
	cmd.Flags().BoolVar(&f.lower, "lower", def.Lower, "Lowercase documents")
	cmd.Flags().BoolVar(&f.removePunctuation, "remove-punctuation", def.RemovePunctuation, "Strip punctuation")
	cmd.Flags().BoolVar(&f.removeNumbers, "remove-numbers", def.RemoveNumbers, "Strip digits")
	cmd.Flags().BoolVar(&f.foldDiacritics, "fold-diacritics", def.FoldDiacritics, "Fold diacritics to base letters")
	cmd.Flags().BoolVar(&f.stem, "stem", def.Stem, "Stem tokens before counting")
	cmd.Flags().StringSliceVar(&f.include, "include", nil, "Terms always added to the list")
	cmd.Flags().StringSliceVar(&f.exclude, "exclude", nil, "Terms never allowed in the list")
	cmd.Flags().StringSliceVar(&f.strip, "strip", nil, "Phrases removed from documents before building")
	cmd.Flags().BoolVar(&f.counts, "counts", false, "Print each term with its score")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "Print the result as JSON")
}

// config resolves the effective configuration: defaults, then the config
// file, then any flag the user set explicitly.
func (f *buildFlags) config(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("language") {
		cfg.Language = f.language
	}
	if flags.Changed("basis") {
		cfg.Basis = f.basis
	}
	if flags.Changed("size") {
		cfg.Size = f.size
	}
	if flags.Changed("sort") {
		cfg.SortWords = f.sortWords
	}
	if flags.Changed("lower") {
		cfg.Lower = f.lower
	}
	if flags.Changed("remove-punctuation") {
		cfg.RemovePunctuation = f.removePunctuation
	}
	if flags.Changed("remove-numbers") {
		cfg.RemoveNumbers = f.removeNumbers
	}
	if flags.Changed("fold-diacritics") {
		cfg.FoldDiacritics = f.foldDiacritics
	}
	if flags.Changed("stem") {
		cfg.Stem = f.stem
	}
	if flags.Changed("include") {
		cfg.Include = f.include
	}
	if flags.Changed("exclude") {
		cfg.Exclude = f.exclude
	}
	if flags.Changed("strip") {
		cfg.Strip = f.strip
	}
	return cfg, nil
}

func (c *CLI) newBuildCommand() *cobra.Command {
	var f buildFlags

	cmd := &cobra.Command{
		Use:   "build [paths...]",
		Short: "Build a stoplist from a corpus of files or directories",
		Example: `  # Build from a directory of .txt/.html documents
  stoplist build corpus/

  # Raw frequency, top 50, unsorted, with scores
  stoplist build corpus/ --basis frequency --size 50 --sort=false --counts

  # Pipe a single document from stdin
  cat oratore.txt | stoplist build

  # Settings from a YAML file, size overridden on the command line
  stoplist build corpus/ --config stoplist.yaml --size 200 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.config(cmd)
			if err != nil {
				return err
			}

			var texts []string
			if len(args) == 0 {
				if isStdinTerminal() {
					return cmd.Help()
				}
				doc, err := readStdinDocument()
				if err != nil {
					return err
				}
				texts = []string{doc}
			} else {
				texts, err = corpusio.Load(args, corpusio.Options{Strip: cfg.Strip})
				if err != nil {
					return err
				}
			}
			slog.Debug("Corpus ready", "documents", len(texts))

			builder, err := stoplist.New(cfg.Language)
			if err != nil {
				return err
			}

			start := time.Now()
			if f.counts {
				entries, err := builder.BuildScored(texts, cfg.Options())
				if err != nil {
					return err
				}
				slog.Debug("Stoplist built", "terms", len(entries), "duration", time.Since(start))
				return printEntries(entries, f.asJSON)
			}

			words, err := builder.Build(texts, cfg.Options())
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

func printTerms(words []string, asJSON bool) error {
	if asJSON {
		output, err := json.MarshalIndent(words, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(output))
		return nil
	}
	for _, w := range words {
		fmt.Println(w)
	}
	return nil
}

func printEntries(entries []stoplist.Entry, asJSON bool) error {
	if asJSON {
		output, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(output))
		return nil
	}
	for _, e := range entries {
		fmt.Printf("%s\t%g\n", e.Term, e.Score)
	}
	return nil
}

func isStdinTerminal() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func readStdinDocument() (string, error) {
	slog.Debug("Reading document from stdin")
	body, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	doc := strings.TrimSpace(string(body))
	if doc == "" {
		return "", fmt.Errorf("stdin is empty")
	}
	return doc, nil
}
