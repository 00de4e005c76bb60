package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	cobradoc "github.com/spf13/cobra/doc"
)

// Version is reported by --version.
var Version = "v0.1.0"

const rootLongDesc = `
cargo-readme generates README.md from the crate level doc comments (//!) of a Rust
crate, so the examples in your README are the same ones rustdoc compiles and tests.

Doc tests become ` + "```rust" + ` blocks, lines hidden from rustdoc with "# " are dropped, and
headings are indented one level so the crate name can be the top level title.

When a README.tpl template exists in the project root, the rendered docs replace
{{readme}}, and {{crate}} and {{license}} are filled from Cargo.toml.

Input and output paths are relative to the project root.
`

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	app := &cliApp{stdout: stdout, stderr: stderr}
	cmd := &cobra.Command{
		Use:           "cargo-readme [flags]",
		Short:         "Generate README.md from doc comments",
		Long:          strings.TrimSpace(rootLongDesc),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.DisableAutoGenTag = true
	cmd.Version = Version
	cmd.SetOut(stdout)
	cmd.SetErr(io.Discard)
	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.Flags()
	flags.StringVarP(&app.opts.input, "input", "i", "", "file to read from (default src/lib.rs, then src/main.rs)")
	flags.StringVarP(&app.opts.output, "output", "o", "", "file to write to instead of stdout")
	flags.StringVarP(&app.opts.template, "template", "t", defaultTemplate, "template used to render the output; skipped if the default is missing")
	flags.StringVarP(&app.opts.projectRoot, "project-root", "r", "", "directory containing Cargo.toml (default: search upwards from the current dir)")
	flags.BoolVar(&app.opts.noTitle, "no-title", false, "do not prepend the crate name as title")
	flags.BoolVar(&app.opts.noLicense, "no-license", false, "do not append the license")
	flags.BoolVar(&app.opts.noTemplate, "no-template", false, "ignore the template even if it exists")
	flags.BoolVar(&app.opts.noIndentHeadings, "no-indent-headings", false, "do not add an extra level to headings")
	flags.BoolVar(&app.opts.check, "check", false, "fail if the output file differs from the generated readme")
	flags.BoolVar(&app.opts.html, "html", false, "render the readme as HTML")
	flags.BoolVarP(&app.opts.verbose, "verbose", "v", false, "log resolution details to stderr")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		app.opts.templateSet = cmd.Flags().Changed("template")
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return app.execute(ctx)
	}

	cmd.AddCommand(newCompletionCmd(cmd))
	cmd.AddCommand(newDocsCmd(cmd))
	return cmd
}

func newCompletionCmd(root *cobra.Command) *cobra.Command {
	const (
		longDesc = `Generate shell completion scripts for cargo-readme.

The output should be evaluated by your shell. For example:

  # bash
  cargo-readme completion bash > /usr/local/etc/bash_completion.d/cargo-readme

  # zsh
  cargo-readme completion zsh > "${fpath[1]}/_cargo-readme"

  # fish
  cargo-readme completion fish | source

  # PowerShell
  cargo-readme completion powershell | Out-String | Invoke-Expression
`
	)
	cmd := &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion scripts",
		Long:                  longDesc,
		Args:                  cobra.ExactValidArgs(1),
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return root.GenBashCompletion(cmd.OutOrStdout())
		case "zsh":
			return root.GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			return root.GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			return root.GenPowerShellCompletion(cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported shell %q", args[0])
		}
	}
	return cmd
}

func newDocsCmd(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen-docs [directory]",
		Short: "Generate Markdown reference docs for the CLI",
		Long: strings.TrimSpace(`
Write a Markdown file per command, documenting the readme flags
(--no-title, --no-license, --no-template, --no-indent-headings, --check, --html)
and the README.tpl workflow with its {{readme}}, {{crate}} and {{license}}
placeholders.

Example:

  cargo-readme gen-docs ./docs/cli
`),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		target := args[0]
		if target == "" {
			return fmt.Errorf("target directory is required")
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return err
		}
		return cobradoc.GenMarkdownTree(root, target)
	}
	return cmd
}
