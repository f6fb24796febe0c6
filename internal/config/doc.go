// Package config resolves the settings a scaffolding run needs: the project
// root and the entry file to patch. Values come from command-line flags, then
// I18N_SCAFFOLD_* environment variables, then ~/.i18n-scaffold/config.yaml,
// then built-in defaults.
package config
