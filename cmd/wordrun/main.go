package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	wordrun "github.com/jamesainslie/go-wordrun"
	"github.com/jamesainslie/go-wordrun/internal/render"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type app struct {
	configPath string
	tok        *wordrun.Tokenizer
	color      bool
}

func newRootCommand() *cobra.Command {
	a := &app{}
	v := newViper()

	root := &cobra.Command{
		Use:           "wordrun",
		Short:         "Split text into word and separator tokens by Unicode category",
		Version:       fmt.Sprintf("%s (%s, %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v, cmd.Flags(), a.configPath)
			if err != nil {
				return err
			}

			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.LogLevel}))
			opts := cfg.options(logger)

			if cfg.Dictionary != "" {
				a.tok, err = wordrun.Open(cfg.Dictionary, opts...)
			} else {
				a.tok, err = wordrun.New(opts...)
			}
			if err != nil {
				return err
			}
			a.color = cfg.Color
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if a.tok == nil {
				return nil
			}
			return a.tok.Close()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Path to config file (yaml, json or toml)")
	flags.StringSlice("separators", nil, "Separator categories (default: built-in set)")
	flags.String("dictionary", "", "Dictionary file (.txt word list or binary)")
	flags.String("charset", "utf-8", "Input charset")
	flags.String("log-level", "warn", "Log level: debug, info, warn, error")
	flags.Bool("color", true, "Highlight output")

	root.AddCommand(
		a.runsCommand(),
		a.tokensCommand(),
		a.wordsCommand(),
		a.highlightCommand(),
		a.matchCommand(),
	)
	return root
}

// input returns the text from args, or stdin when there are none.
func (a *app) input(cmd *cobra.Command, args []string) (string, error) {
	var data []byte
	if len(args) > 0 {
		data = []byte(strings.Join(args, " "))
	} else {
		var err error
		data, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
	}
	return a.tok.Decode(data)
}

func (a *app) renderer(cmd *cobra.Command) *render.Renderer {
	return render.New(cmd.OutOrStdout(), a.tok.Dictionary(), a.color)
}

func (a *app) runsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "runs [TEXT...]",
		Short: "Print the category runs of the text",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.input(cmd, args)
			if err != nil {
				return err
			}
			return a.renderer(cmd).Runs(a.tok.Runs(text))
		},
	}
}

func (a *app) tokensCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [TEXT...]",
		Short: "Print one token per line; dictionary words are starred",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.input(cmd, args)
			if err != nil {
				return err
			}
			return a.renderer(cmd).Lines(a.tok.Tokens(text))
		},
	}
}

func (a *app) wordsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "words [TEXT...]",
		Short: "Print the word tokens, one per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.input(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, w := range a.tok.Words(text) {
				if _, err := fmt.Fprintln(out, w); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) highlightCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "highlight [TEXT...]",
		Short: "Echo the text with tokens highlighted",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.input(cmd, args)
			if err != nil {
				return err
			}
			if err := a.renderer(cmd).Tokens(a.tok.Tokens(text)); err != nil {
				return err
			}
			if !strings.HasSuffix(text, "\n") {
				_, err = fmt.Fprintln(cmd.OutOrStdout())
			}
			return err
		},
	}
}

func (a *app) matchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "match [TEXT...]",
		Short: "List word tokens with their offsets and dictionary status",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.input(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, m := range a.tok.Match(text) {
				if !m.Word {
					continue
				}
				status := "unknown"
				if m.Known {
					status = "known"
				}
				if _, err := fmt.Fprintf(out, "%d-%d\t%s\t%q\n", m.Start, m.End, status, m.Text); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
