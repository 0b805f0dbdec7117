package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"quizsheet/internal/answersheet"
	"quizsheet/internal/config"
	"quizsheet/internal/session"
	"quizsheet/internal/ui/quiz"
	"quizsheet/pkg/mcq"
	"quizsheet/pkg/mcq/httpclient"
)

// runLiveQuiz starts the interactive UI. Tests replace it.
var runLiveQuiz = quiz.Run

// takeParams carries the resolved inputs of one take invocation.
type takeParams struct {
	cfg       config.Config
	file      string
	answers   answerFlags
	exportDir string
	verbose   bool
}

// runTake builds the handler for the take command.
func runTake(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		flags := newFlagSet(cmd, stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for .quizsheet/config.yml)")
		filePath := flags.String("file", "", "PDF file to upload")
		uiMode := flags.String("ui", "", "UI mode: auto|live|plain (default: config ui.mode)")
		outDir := flags.String("out", "", "Directory for the answer sheet (default: config export.dir)")
		noColor := flags.Bool("no-color", false, "Disable colors in the live UI")
		verbose := flags.Bool("verbose", false, "Print upload diagnostics (forces plain output)")
		var answers answerFlags
		flags.Var(&answers, "answer", "Answer as N=L, e.g. 3=B (repeatable, plain mode)")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		if err := loadDotEnv(); err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		cfg, _, err := config.Resolve(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config:\n%v\n", err)
			return ExitError
		}

		mode := cfg.UI.Mode
		if strings.TrimSpace(*uiMode) != "" {
			mode = *uiMode
		}
		decision, err := resolveUIMode(mode, *verbose, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		params := takeParams{
			cfg:       cfg,
			file:      strings.TrimSpace(*filePath),
			answers:   answers,
			exportDir: cfg.Export.Dir,
			verbose:   *verbose,
		}
		if strings.TrimSpace(*outDir) != "" {
			params.exportDir = *outDir
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if decision.useLive {
			if len(answers) > 0 {
				fmt.Fprintln(stderr, "--answer is ignored in the live UI; choose answers interactively.")
			}
			return takeLive(ctx, params, cfg.UI.NoColor || *noColor || decision.noColor, stdout, stderr)
		}
		return takePlain(ctx, params, stdout, stderr)
	}
}

// newGenerator builds the HTTP generator for the configured endpoint.
func newGenerator(cfg config.Config) *httpclient.Client {
	return httpclient.NewWithTimeout(cfg.Endpoint.BaseURL, cfg.RequestTimeout()).WithUploadPath(cfg.Endpoint.UploadPath)
}

// takeLive runs the interactive quiz.
func takeLive(ctx context.Context, params takeParams, noColor bool, stdout, stderr io.Writer) int {
	ctrl := session.New(newGenerator(params.cfg), session.Options{})
	if params.file != "" {
		ctrl.SelectFile(mcq.FileFromPath(params.file))
	}
	err := runLiveQuiz(ctx, ctrl, stdout, quiz.Options{
		NoColor:        noColor,
		ExportDir:      params.exportDir,
		ExportFilename: params.cfg.Export.Filename,
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(stderr, "Quiz failed: %v\n", err)
		return ExitError
	}
	return ExitOK
}

// takePlain uploads the file, prints the questions, applies --answer flags and exports.
func takePlain(ctx context.Context, params takeParams, stdout, stderr io.Writer) int {
	var diagnostics io.Writer
	if params.verbose {
		diagnostics = stderr
	}
	ctrl := session.New(newGenerator(params.cfg), session.Options{
		Diagnostics: diagnostics,
		Observer:    progressPrinter(stdout),
	})
	if params.file != "" {
		ctrl.SelectFile(mcq.FileFromPath(params.file))
	}

	if err := ctrl.SubmitUpload(ctx); err != nil {
		message := session.UserMessage(err)
		if message == "" {
			message = err.Error()
		}
		fmt.Fprintf(stderr, "Error: %s\n", message)
		return ExitError
	}

	state := ctrl.Snapshot()
	printQuestions(stdout, state.Questions)

	for _, choice := range params.answers {
		if err := ctrl.SelectAnswer(choice.Number-1, choice.Label); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return ExitError
		}
	}

	sheet := ctrl.ExportAnswers()
	path, err := answersheet.Write(params.exportDir, params.cfg.Export.Filename, sheet)
	if err != nil {
		fmt.Fprintf(stderr, "Export failed: %v\n", err)
		return ExitError
	}
	fmt.Fprintln(stdout)
	fmt.Fprint(stdout, sheet.String())
	fmt.Fprintf(stdout, "Saved %d/%d answers to %s\n", sheet.Answered(), sheet.Len(), path)
	return ExitOK
}

// progressPrinter reports upload progress in plain mode.
func progressPrinter(out io.Writer) session.Observer {
	return session.ObserverFunc(func(state session.State) {
		if state.Status == session.StatusUploading && state.Loading {
			fmt.Fprintf(out, "Uploading %s\n", state.FileName)
			fmt.Fprintln(out, "Processing PDF... please wait.")
		}
	})
}

// printQuestions writes the question form in plain text.
func printQuestions(out io.Writer, questions []mcq.Question) {
	for i, question := range questions {
		fmt.Fprintf(out, "\nQ%d: %s\n", i+1, strings.Join(strings.Fields(question.Prompt), " "))
		for j, option := range question.Options {
			label, ok := mcq.LabelFor(j)
			if !ok {
				break
			}
			fmt.Fprintf(out, "  %s. %s\n", label, option)
		}
	}
}

// loadDotEnv reads .env from the working directory.
func loadDotEnv() error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}
	return config.LoadDotEnv(wd)
}
