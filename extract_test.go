package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const mixedDoc = `
//! first line
//! ` + "```" + `
//! let rust_code = "will show";
//! # let binding = "won't show";
//! ` + "```" + `
//! # heading
//! ` + "```no_run" + `
//! let no_run = true;
//! ` + "```" + `
//! ` + "```ignore" + `
//! let ignore = true;
//! ` + "```" + `
//! ` + "```should_panic" + `
//! let should_panic = true;
//! ` + "```" + `
//! # heading
//! ` + "```C" + `
//! int i = 0; // no rust code
//! ` + "```" + `
use std::any::Any;

fn main() {}`

func extractString(t *testing.T, src string, indentHeadings bool) []string {
	t.Helper()
	lines, err := extractDoc(strings.NewReader(src), indentHeadings)
	require.NoError(t, err)
	return lines
}

func TestExtractIndentHeadings(t *testing.T) {
	expected := []string{
		"first line",
		"```rust",
		`let rust_code = "will show";`,
		"```",
		"## heading",
		"```rust",
		"let no_run = true;",
		"```",
		"```rust",
		"let ignore = true;",
		"```",
		"```rust",
		"let should_panic = true;",
		"```",
		"## heading",
		"```C",
		"int i = 0; // no rust code",
		"```",
	}
	require.Equal(t, expected, extractString(t, mixedDoc, true))
}

func TestExtractWithoutIndentHeadings(t *testing.T) {
	indented := extractString(t, mixedDoc, true)
	plain := extractString(t, mixedDoc, false)
	require.Len(t, plain, len(indented))
	for i := range plain {
		if strings.HasPrefix(plain[i], "# ") {
			require.Equal(t, "#"+plain[i], indented[i])
			continue
		}
		require.Equal(t, plain[i], indented[i])
	}
}

func TestExtractSimpleBlock(t *testing.T) {
	src := "//! hello\n//! ```\n//! let x = 1;\n//! ```\n"
	require.Equal(t, []string{"hello", "```rust", "let x = 1;", "```"}, extractString(t, src, false))
}

func TestExtractNoDocLines(t *testing.T) {
	src := "fn main() {}\n/// item doc\n// plain comment\n"
	lines := extractString(t, src, true)
	require.Empty(t, lines)
	require.Equal(t, "", foldLines(lines))
}

func TestExtractKeepsBlankLines(t *testing.T) {
	src := "//! a\n//!\n//!   \n//! b\n"
	require.Equal(t, []string{"a", "", "", "b"}, extractString(t, src, false))
}

func TestExtractHiddenLines(t *testing.T) {
	t.Run("hidden in rust code", func(t *testing.T) {
		src := "//! ```\n//! # use std::io;\n//! #\n//! let x = 1;\n//! ```\n"
		require.Equal(t, []string{"```rust", "let x = 1;", "```"}, extractString(t, src, true))
	})

	t.Run("kept in other code", func(t *testing.T) {
		src := "//! ```sh\n//! # install\n//! cargo install cargo-readme\n//! ```\n"
		require.Equal(t, []string{"```sh", "# install", "cargo install cargo-readme", "```"}, extractString(t, src, true))
	})

	t.Run("hash without space is shown", func(t *testing.T) {
		src := "//! ```\n//! #[derive(Debug)]\n//! struct S;\n//! ```\n"
		require.Equal(t, []string{"```rust", "#[derive(Debug)]", "struct S;", "```"}, extractString(t, src, true))
	})
}

func TestExtractFenceModifiers(t *testing.T) {
	for _, fence := range []string{"```", "```no_run", "```ignore", "```should_panic"} {
		t.Run(fence, func(t *testing.T) {
			src := "//! " + fence + "\n//! body();\n//! ```\n"
			require.Equal(t, []string{"```rust", "body();", "```"}, extractString(t, src, true))
		})
	}
}

func TestExtractFenceRequiresExactAnnotation(t *testing.T) {
	// A modifier followed by more text names another language.
	src := "//! ```no_run,edition2018\n//! body();\n//! ```\n"
	require.Equal(t, []string{"```no_run,edition2018", "body();", "```"}, extractString(t, src, true))
}

func TestExtractFenceWithSpaceIsProse(t *testing.T) {
	src := "//! ``` text\n//! # Title\n"
	require.Equal(t, []string{"``` text", "## Title"}, extractString(t, src, true))
}

func TestExtractLongLines(t *testing.T) {
	long := "static TABLE: [u8; 3] = [" + strings.Repeat("0, ", 1<<20) + "];"
	t.Run("long code line is dropped", func(t *testing.T) {
		src := "//! hello\n" + long + "\n//! world\n"
		require.Equal(t, []string{"hello", "world"}, extractString(t, src, true))
	})

	t.Run("long doc line is kept", func(t *testing.T) {
		src := "//! hello\n//! " + long + "\n//! world"
		require.Equal(t, []string{"hello", long, "world"}, extractString(t, src, true))
	})
}

func TestExtractFenceNeedsLanguageName(t *testing.T) {
	src := "//! ````\n//! # Heading\n//! ````\n//! # After\n"
	require.Equal(t, []string{"````", "## Heading", "````", "## After"}, extractString(t, src, true))
}

func TestExtractUnterminatedFence(t *testing.T) {
	src := "//! ```\n//! let x = 1;\n//! # hidden\n"
	require.Equal(t, []string{"```rust", "let x = 1;"}, extractString(t, src, true))
}

func TestExtractHeadingsInsideCodeAreUntouched(t *testing.T) {
	src := "//! ```markdown\n//! # Title\n//! ```\n//! # Title\n"
	require.Equal(t, []string{"```markdown", "# Title", "```", "## Title"}, extractString(t, src, true))
}

func TestExtractCRLF(t *testing.T) {
	src := "//! hello\r\n//! ```\r\n//! let x = 1;\r\n//! ```\r\n"
	require.Equal(t, []string{"hello", "```rust", "let x = 1;", "```"}, extractString(t, src, false))
}

func TestExtractLineStates(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		state fenceState
		out   string
		next  fenceState
		keep  bool
	}{
		{"not a doc line", "let x = 1;", stateRustCode, "", stateRustCode, false},
		{"open rust", "//! ```", stateProse, "```rust", stateRustCode, true},
		{"open other", "//! ```json", stateProse, "```json", stateOtherCode, true},
		{"close rust", "//! ```", stateRustCode, "```", stateProse, true},
		{"close other", "//! ```", stateOtherCode, "```", stateProse, true},
		{"annotated fence inside code", "//! ```json", stateRustCode, "```json", stateRustCode, true},
		{"no space after prefix", "//!x", stateProse, "", stateProse, true},
		{"multibyte after prefix", "//!é text", stateProse, " text", stateProse, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, next, keep := extractLine(tt.line, tt.state, true)
			require.Equal(t, tt.out, out)
			require.Equal(t, tt.next, next)
			require.Equal(t, tt.keep, keep)
		})
	}
}

func TestFoldLines(t *testing.T) {
	require.Equal(t, "", foldLines(nil))
	require.Equal(t, "one", foldLines([]string{"one"}))
	require.Equal(t, "one\n\ntwo", foldLines([]string{"one", "", "two"}))
	require.Equal(t, "one\n", foldLines([]string{"one", ""}))
}
