package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

const defaultTemplate = "README.tpl"

const (
	envInput    = "CARGO_README_INPUT"
	envOutput   = "CARGO_README_OUTPUT"
	envTemplate = "CARGO_README_TEMPLATE"
)

const (
	logKeyRoot     = "project_root"
	logKeyInput    = "input"
	logKeyOutput   = "output"
	logKeyTemplate = "template"
	logKeyHeadings = "headings"
)

type options struct {
	input            string
	output           string
	template         string
	templateSet      bool
	projectRoot      string
	noTitle          bool
	noLicense        bool
	noTemplate       bool
	noIndentHeadings bool
	check            bool
	html             bool
	verbose          bool
}

// settings is the effective configuration after flags, environment and
// Cargo.toml metadata have been merged.
type settings struct {
	input            string
	output           string
	template         string
	templateExplicit bool
	generateOptions
}

type cliApp struct {
	stdout io.Writer
	stderr io.Writer
	opts   options
}

func run(argv []string, stdout io.Writer) error {
	cmd := newRootCmd(stdout, os.Stderr)
	cmd.SetArgs(normalizeArgs(argv))
	return cmd.Execute()
}

func (app *cliApp) execute(ctx context.Context) error {
	opts := app.opts
	logger := newLogger(app.stderr, opts.verbose)

	root := opts.projectRoot
	if root == "" {
		found, err := findProjectRoot(".")
		if err != nil {
			return err
		}
		root = found
	}
	project, err := loadCargoProject(root)
	if err != nil {
		return err
	}
	logger.Debug("Resolved project", logKeyRoot, root)
	if project.licenseFile() != "" {
		logger.Debug("license-file is not used for the license footer", "license_file", project.licenseFile())
	}

	st := resolveSettings(opts, project.readmeDefaults(), os.Getenv)

	source, inputPath, err := openInput(root, st.input)
	if err != nil {
		return err
	}
	defer source.Close()
	logger.Debug("Reading documentation", logKeyInput, inputPath)

	template, err := openTemplate(root, st, logger)
	if err != nil {
		return err
	}
	var tplReader io.Reader
	if template != nil {
		defer template.Close()
		tplReader = template
	}

	readme, err := generateReadme(source, tplReader, project, st.generateOptions)
	if err != nil {
		return err
	}

	renderer := newMarkdownRenderer()
	if st.addTitle {
		headings, err := renderer.topLevelHeadings(readme)
		if err != nil {
			return err
		}
		if len(headings) > 1 {
			logger.Warn("Readme has more than one top level heading", logKeyHeadings, strings.Join(headings, ", "))
		}
	}
	if opts.html {
		readme, err = renderer.renderHTML(readme)
		if err != nil {
			return err
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	outputPath := resolvePath(root, st.output)
	if opts.check {
		return checkOutput(outputPath, readme)
	}
	logger.Debug("Writing readme", logKeyOutput, displayOutput(outputPath))
	return writeOutput(outputPath, app.stdout, readme)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// resolveSettings merges flags, environment and [package.metadata.readme]
// in that order of precedence.
func resolveSettings(opts options, meta readmeMetadata, getenv func(string) string) settings {
	st := settings{
		input:  firstNonEmpty(opts.input, getenv(envInput), meta.Input),
		output: firstNonEmpty(opts.output, getenv(envOutput), meta.Output),
		generateOptions: generateOptions{
			addTitle:       !opts.noTitle && boolOr(meta.Title, true),
			addLicense:     !opts.noLicense && boolOr(meta.License, true),
			indentHeadings: !opts.noIndentHeadings && boolOr(meta.IndentHeadings, true),
		},
	}
	if opts.noTemplate {
		return st
	}
	switch {
	case opts.templateSet:
		st.template, st.templateExplicit = opts.template, true
	case getenv(envTemplate) != "":
		st.template, st.templateExplicit = getenv(envTemplate), true
	case meta.Template != "":
		st.template, st.templateExplicit = meta.Template, true
	default:
		st.template = defaultTemplate
	}
	return st
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

func resolvePath(root, path string) string {
	if path == "" || path == "-" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

func openInput(root, input string) (*os.File, string, error) {
	if input != "" {
		path := resolvePath(root, input)
		f, err := os.Open(path)
		if err != nil {
			return nil, "", fmt.Errorf("could not open file '%s': %w", path, err)
		}
		return f, path, nil
	}
	for _, candidate := range []string{"src/lib.rs", "src/main.rs"} {
		path := filepath.Join(root, filepath.FromSlash(candidate))
		if f, err := os.Open(path); err == nil {
			return f, path, nil
		}
	}
	return nil, "", errors.New("no 'lib.rs' nor 'main.rs' were found")
}

// openTemplate returns nil when templating is disabled or when the default
// template is absent.
func openTemplate(root string, st settings, logger *slog.Logger) (*os.File, error) {
	if st.template == "" {
		logger.Debug("Template disabled")
		return nil, nil
	}
	path := resolvePath(root, st.template)
	f, err := os.Open(path)
	if err == nil {
		logger.Debug("Using template", logKeyTemplate, path)
		return f, nil
	}
	if !st.templateExplicit && errors.Is(err, os.ErrNotExist) {
		logger.Debug("Default template not found, rendering without template", logKeyTemplate, path)
		return nil, nil
	}
	return nil, fmt.Errorf("could not open template file '%s': %w", path, err)
}

func displayOutput(path string) string {
	if path == "" || path == "-" {
		return "stdout"
	}
	return path
}

func writeOutput(path string, stdout io.Writer, readme string) error {
	if path == "" || path == "-" {
		_, err := io.WriteString(stdout, readme+"\n")
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(readme), 0o644)
}

// checkOutput fails with a unified diff when the file at path does not
// hold exactly readme.
func checkOutput(path, readme string) error {
	if path == "" || path == "-" {
		return errors.New("--check requires an output file")
	}
	current, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if string(current) == readme {
		return nil
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(current)),
		B:        difflib.SplitLines(readme),
		FromFile: path,
		ToFile:   "generated",
		Context:  3,
	})
	if err != nil {
		return err
	}
	return fmt.Errorf("%w: %s\n%s", errReadmeOutdated, path, diff)
}

// normalizeArgs drops the "readme" argument cargo passes to third party
// subcommands and accepts single-dash spellings of long flags.
func normalizeArgs(args []string) []string {
	if len(args) > 0 && args[0] == "readme" {
		args = args[1:]
	}
	if len(args) == 0 {
		return args
	}
	converted := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			converted = append(converted, args[i:]...)
			break
		}
		if !strings.HasPrefix(arg, "-") || strings.HasPrefix(arg, "--") || len(arg) <= 2 {
			converted = append(converted, arg)
			continue
		}
		name := arg[1:]
		if idx := strings.Index(name, "="); idx > 0 {
			name = name[:idx]
		}
		if _, ok := legacyLongFlagSet[name]; ok {
			converted = append(converted, "-"+arg)
			continue
		}
		converted = append(converted, arg)
	}
	return converted
}

var legacyLongFlagSet = map[string]struct{}{
	"input":              {},
	"output":             {},
	"template":           {},
	"project-root":       {},
	"no-title":           {},
	"no-license":         {},
	"no-template":        {},
	"no-indent-headings": {},
	"check":              {},
	"html":               {},
	"verbose":            {},
}
