package cli

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/dshills/glance/internal/config"
	"github.com/dshills/glance/internal/gemini"
	"github.com/dshills/glance/internal/logger"
	"github.com/dshills/glance/internal/output"
	"github.com/dshills/glance/internal/review"
	"github.com/dshills/glance/internal/selection"
)

// Shared flags
var (
	flagQuestion string
	flagMode     string
	flagPreset   string
	flagPrompt   string
	flagFormat   string
	flagModel    string
	flagNoRedact bool
	flagAddr     string
	flagLogLevel string
)

func addPromptFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagPreset, "preset", "", "Prompt preset (see 'glance prompts')")
	cmd.Flags().StringVar(&flagPrompt, "prompt", "", "Custom instruction placed before the code; overrides --preset")
	cmd.Flags().StringVar(&flagModel, "model", "", "Gemini model name")
	cmd.Flags().BoolVar(&flagNoRedact, "no-redact", false, "Disable secret redaction (use with caution)")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagMode != "" {
		m["mode"] = flagMode
	}
	if flagPreset != "" {
		m["preset"] = flagPreset
	}
	if flagPrompt != "" {
		m["prompt"] = flagPrompt
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagModel != "" {
		m["model"] = flagModel
	}
	if flagAddr != "" {
		m["server.addr"] = flagAddr
	}
	if flagLogLevel != "" {
		m["log.level"] = flagLogLevel
	}
	return m
}

// session is what every API-calling command needs.
type session struct {
	cfg    config.Config
	logger *slog.Logger
	client *gemini.Client
	opts   review.Options
}

func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load(buildOverrides())
	if err != nil {
		return nil, err
	}
	if flagNoRedact {
		cfg.Privacy.RedactSecrets = false
		fmt.Fprintln(cmd.ErrOrStderr(), "WARNING: secret redaction is disabled")
	}

	log := logger.NewLogger(cfg.Log, cmd.ErrOrStderr())

	prompt, err := review.ResolvePrompt(cfg.Preset, cfg.Prompt)
	if err != nil {
		return nil, err
	}
	mode, err := review.ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}

	client, err := gemini.NewClient(gemini.Options{
		Credential: cfg.APIKey,
		Endpoint:   cfg.Endpoint,
		Model:      cfg.Model,
		Logger:     log,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set GLANCE_API_KEY or run 'glance config set api_key <key>')", err)
	}

	return &session{
		cfg:    cfg,
		logger: log,
		client: client,
		opts: review.Options{
			Prompt:      prompt,
			Mode:        mode,
			Redact:      cfg.Privacy.RedactSecrets,
			RedactPaths: cfg.Privacy.RedactPaths,
			Logger:      log,
		},
	}, nil
}

// loadSelection reads the selection named by args, or stdin when there is none.
func loadSelection(args []string, stdin io.Reader) (selection.Selection, error) {
	if len(args) == 0 {
		return selection.FromReader(stdin)
	}
	spec, err := selection.ParseSpec(args[0])
	if err != nil {
		return selection.Selection{}, err
	}
	return selection.FromFile(spec)
}

// exitFor maps a review outcome to the process exit code.
func exitFor(res gemini.Result) int {
	switch res.Kind {
	case gemini.KindSuccess:
		return ExitSuccess
	case gemini.KindNoSelection, gemini.KindEmptyQuestion:
		return ExitUsageError
	case gemini.KindHTTPFailure:
		if res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden {
			return ExitAuthError
		}
		return ExitRuntimeError
	default:
		return ExitRuntimeError
	}
}

var reviewCmd = &cobra.Command{
	Use:   "review [path[:start-end]]",
	Short: "Review a file, a line range, or code from stdin",
	Long: `Review sends the selected code and an optional question to Gemini.

With no path the code is read from stdin. A line range selects part of a file:
  glance review main.go:10-40 -q "is the error handling right?"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}

		sel, err := loadSelection(args, cmd.InOrStdin())
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		presenter, err := output.GetPresenter(s.cfg.Format, cmd.OutOrStdout(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		console, isConsole := presenter.(*output.Console)
		if isConsole {
			label := sel.Label()
			if lang := review.DetectLanguage(sel.Path()); lang != "" {
				label += " (" + lang + ")"
			}
			console.Note(fmt.Sprintf("Reviewing %s with %s...", label, s.cfg.Model))
		}

		res := review.NewInteraction(s.client, sel, presenter, s.opts).Run(cmd.Context(), flagQuestion)

		if err := presenter.Err(); err != nil {
			s.logger.Error("writing output", "error", err)
			exitCode = ExitRuntimeError
			return nil
		}
		exitCode = exitFor(res)
		if exitCode == ExitAuthError && isConsole {
			console.Note("Check the API key (glance config show).")
		}
		return nil
	},
}

func init() {
	reviewCmd.Flags().StringVarP(&flagQuestion, "question", "q", "", "Question to ask about the code")
	reviewCmd.Flags().StringVar(&flagMode, "mode", "", "Presentation mode (modal, inline); inline requires a question")
	reviewCmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, raw, json)")
	addPromptFlags(reviewCmd)
}
