package main

import (
	"io"
)

// generateOptions selects which decorations the generated readme receives.
type generateOptions struct {
	addTitle       bool
	addLicense     bool
	indentHeadings bool
}

// generateReadme renders the crate documentation found in source. When
// template is nil the title and license are added directly around the
// rendered body; otherwise the body is merged into the template.
func generateReadme(source io.Reader, template io.Reader, resolver metadataResolver, opts generateOptions) (string, error) {
	lines, err := extractDoc(source, opts.indentHeadings)
	if err != nil {
		return "", err
	}
	readme := foldLines(lines)

	info, err := resolver.Resolve()
	if err != nil {
		return "", err
	}
	if opts.addLicense && info.License == nil {
		return "", errNoLicense
	}

	if template != nil {
		tpl, err := io.ReadAll(template)
		if err != nil {
			return "", err
		}
		return processTemplate(string(tpl), readme, info, opts.addTitle, opts.addLicense)
	}

	if opts.addTitle {
		readme = prependTitle(readme, info.Name)
	}
	if opts.addLicense {
		readme = appendLicense(readme, *info.License)
	}
	return readme, nil
}
