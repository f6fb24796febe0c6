package scaffold

import (
	"fmt"
	"path"
	"strings"

	"github.com/agentx-labs/i18n-scaffold/internal/locale"
	"github.com/agentx-labs/i18n-scaffold/internal/sourcecheck"
)

// verify syntax-checks the generated sources and checks the locale bundles
// against the schema and against each other. It returns human-readable
// findings; an empty result means everything checked out.
func verify(specs []FileSpec) []string {
	var warnings []string
	var bundles []*locale.Bundle

	for _, spec := range specs {
		content := []byte(spec.Content)

		if sourcecheck.Supported(spec.Path) {
			if err := sourcecheck.Validate(content, spec.Path); err != nil {
				warnings = append(warnings, err.Error())
			}
			continue
		}

		if path.Dir(spec.Path) != LocalesDir || path.Ext(spec.Path) != ".json" {
			continue
		}

		result, err := locale.Validate(content)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %v", spec.Path, err))
			continue
		}
		for _, issue := range result.Issues {
			warnings = append(warnings, fmt.Sprintf("%s: %s", spec.Path, issue))
		}

		b, err := locale.Parse(spec.Path, content)
		if err != nil {
			warnings = append(warnings, err.Error())
			continue
		}
		bundles = append(bundles, b)
	}

	for i := 1; i < len(bundles); i++ {
		if diff := locale.CompareKeys(bundles[0], bundles[i]); len(diff) > 0 {
			warnings = append(warnings, fmt.Sprintf("%s and %s differ on keys: %s",
				bundles[0].Path, bundles[i].Path, strings.Join(diff, ", ")))
		}
	}

	return warnings
}
