// # cargo-readme
//
// `cargo-readme` generates a `README.md` from the crate level documentation
// (`//!` comments) of a Rust crate. Document the crate once, let rustdoc test
// the examples, and publish the same text as the project README.
//
// ## Usage
//
//	cargo readme [flags]
//	cargo-readme [flags]
//
// When invoked through cargo, the leading `readme` argument cargo passes to
// third party subcommands is ignored.
//
// ## Extraction
//
// Only lines starting with `//!` are read. Inside them:
//
//   - a bare fence, or one annotated with `no_run`, `ignore` or
//     `should_panic`, becomes a `rust` fence;
//   - a fence naming another language is copied as is;
//   - lines starting with `# ` inside Rust code are hidden, just like
//     rustdoc hides them;
//   - headings outside code are indented one level, so the crate name can be
//     the only top level heading. `--no-indent-headings` turns this off.
//
// ## Templates
//
// If `README.tpl` exists in the project root it is used as a template. Three
// placeholders are recognized:
//
//   - `{{readme}}`: the rendered documentation (required);
//   - `{{crate}}`: the package name from Cargo.toml;
//   - `{{license}}`: the package license from Cargo.toml.
//
// When the template has no `{{crate}}`, the crate name is added as a title
// to the documentation instead. When it has no `{{license}}`, a
// `License: ...` line is appended. `--no-title` and `--no-license` disable
// these, and `--no-template` ignores the template altogether.
//
// ## Configuration
//
// Paths and switches can also be set with `CARGO_README_INPUT`,
// `CARGO_README_OUTPUT` and `CARGO_README_TEMPLATE`, or in Cargo.toml:
//
//	[package.metadata.readme]
//	input = "src/lib.rs"
//	output = "README.md"
//	template = "README.tpl"
//	title = true
//	license = true
//	indent-headings = true
//
// Flags win over the environment, which wins over Cargo.toml.
//
// ## CI
//
// `--check` compares the generated README with the output file and fails
// with a diff when they differ:
//
//	cargo readme -o README.md --check
package main
