// Package cli defines the Cobra command tree for the i18n-scaffold CLI. The
// root command performs the scaffolding run itself; each other file registers
// one subcommand. Commands delegate to internal packages for the work and
// only handle flags and output.
package cli
