package main

import "errors"

var (
	errNoProject       = errors.New("not in a rust project")
	errManifest        = errors.New("invalid Cargo.toml")
	errNoLicense       = errors.New("there is no license in Cargo.toml")
	errTemplateLicense = errors.New("license placeholder used but there is no license in Cargo.toml")
	errMissingReadme   = errors.New("missing readme placeholder in template")
	errReadmeOutdated  = errors.New("readme is out of date")
)
