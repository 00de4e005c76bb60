package main

import (
	"fmt"
	"strings"
)

const (
	crateToken   = "{{crate}}"
	licenseToken = "{{license}}"
	readmeToken  = "{{readme}}"
)

// processTemplate substitutes the crate name, license and rendered readme
// into tpl. It is not a template engine: only the three fixed tokens are
// recognized and nothing can be escaped.
func processTemplate(tpl, readme string, info crateInfo, addTitle, addLicense bool) (string, error) {
	tpl = trimTrailingNewline(tpl)

	if addTitle && !strings.Contains(tpl, crateToken) {
		readme = prependTitle(readme, info.Name)
	} else {
		tpl = strings.ReplaceAll(tpl, crateToken, info.Name)
	}

	// {{license}} is always substituted when present, even if the license
	// footer was not requested.
	if addLicense && !strings.Contains(tpl, licenseToken) {
		if info.License == nil {
			return "", errNoLicense
		}
		readme = appendLicense(readme, *info.License)
	} else if strings.Contains(tpl, licenseToken) {
		if info.License == nil {
			return "", fmt.Errorf("%w: %s found in template", errTemplateLicense, licenseToken)
		}
		tpl = strings.ReplaceAll(tpl, licenseToken, *info.License)
	}

	if !strings.Contains(tpl, readmeToken) {
		return "", fmt.Errorf("%w: %s", errMissingReadme, readmeToken)
	}
	return strings.ReplaceAll(tpl, readmeToken, readme), nil
}

func trimTrailingNewline(s string) string {
	if strings.HasSuffix(s, "\r\n") {
		return s[:len(s)-2]
	}
	return strings.TrimSuffix(s, "\n")
}

func prependTitle(readme, name string) string {
	return fmt.Sprintf("# %s\n\n%s", name, readme)
}

func appendLicense(readme, license string) string {
	return fmt.Sprintf("%s\n\nLicense: %s", readme, license)
}
