package main

import (
	"bufio"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	docPrefix     = "//!"
	fenceMarker   = "```"
	rustFence     = "```rust"
	closeFenceDoc = docPrefix + " " + fenceMarker
)

// fenceState tracks which kind of block the extractor is inside.
type fenceState int

const (
	stateProse fenceState = iota
	stateRustCode
	stateOtherCode
)

var (
	// A bare fence, or one carrying a doctest modifier, is Rust code.
	reRustFence = regexp.MustCompile("^//! ```(no_run|ignore|should_panic)?$")
	// A fence immediately followed by a language name is some other language.
	reOtherFence = regexp.MustCompile("^//! ```\\w\\S*")
)

// extractDoc scans source for crate-level doc comments and returns the
// rendered lines in order. Doctest fences become ```rust and lines hidden
// from rustdoc are hidden here too.
func extractDoc(source io.Reader, indentHeadings bool) ([]string, error) {
	reader := bufio.NewReader(source)

	lines := []string{}
	state := stateProse
	for {
		raw, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if raw != "" {
			line := strings.TrimSuffix(strings.TrimSuffix(raw, "\n"), "\r")
			out, next, keep := extractLine(line, state, indentHeadings)
			state = next
			if keep {
				lines = append(lines, out)
			}
		}
		if err == io.EOF {
			return lines, nil
		}
	}
}

// extractLine classifies one source line given the current state and
// reports the rendered text, the next state and whether to emit anything.
func extractLine(line string, state fenceState, indentHeadings bool) (string, fenceState, bool) {
	if !strings.HasPrefix(line, docPrefix) {
		return "", state, false
	}

	switch state {
	case stateProse:
		if reRustFence.MatchString(line) {
			return rustFence, stateRustCode, true
		}
		if reOtherFence.MatchString(line) {
			state = stateOtherCode
		}
	case stateRustCode, stateOtherCode:
		if line == closeFenceDoc {
			return fenceMarker, stateProse, true
		}
	}

	if state == stateRustCode && isHiddenLine(line) {
		return "", state, false
	}

	if strings.TrimSpace(line) == docPrefix {
		return "", state, true
	}
	text := stripDocPrefix(line)
	if indentHeadings && state == stateProse && strings.HasPrefix(text, "#") {
		text = "#" + text
	}
	return text, state, true
}

// isHiddenLine matches lines rustdoc compiles but does not display.
func isHiddenLine(line string) bool {
	return strings.HasPrefix(line, docPrefix+" # ") || line == docPrefix+" #"
}

// stripDocPrefix drops "//!" and the single character following it.
func stripDocPrefix(line string) string {
	rest := line[len(docPrefix):]
	_, size := utf8.DecodeRuneInString(rest)
	return rest[size:]
}

// foldLines joins lines with a newline separator and no trailing newline.
func foldLines(lines []string) string {
	return strings.Join(lines, "\n")
}
