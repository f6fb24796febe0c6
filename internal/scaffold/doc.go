// Package scaffold writes react-i18next support into a React project. It owns
// the fixed set of generated files (bootstrap module, locale bundles,
// language switcher, demo page), writes them under a project root, and
// prepends the bootstrap import to the application entry point when it is
// not already there. Both steps are idempotent.
package scaffold
