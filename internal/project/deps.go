package project

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Requirement is a runtime package the generated code imports.
type Requirement struct {
	Name       string
	Constraint string
}

// Requirements lists the packages src/i18n/index.ts and the components need.
// initReactI18next and the useTranslation hook arrived in react-i18next 11.8.
var Requirements = []Requirement{
	{Name: "i18next", Constraint: ">= 21.0.0"},
	{Name: "react-i18next", Constraint: ">= 11.8.0"},
	{Name: "i18next-browser-languagedetector", Constraint: ">= 6.0.0"},
}

// State classifies a dependency check.
type State string

const (
	StateOK       State = "ok"
	StateMissing  State = "missing"
	StateOutdated State = "outdated"
	StateUnparsed State = "unparsed"
)

// DependencyStatus is the result of checking one Requirement.
type DependencyStatus struct {
	Requirement
	Declared string // as written in package.json; empty when missing
	State    State
}

// versionPattern finds the first version-looking token in a range such as
// "^23.7.6", "~11.8" or ">=6 <8".
var versionPattern = regexp.MustCompile(`v?(\d+)(\.\d+)?(\.\d+)?(-[0-9A-Za-z.-]+)?`)

// CheckDependencies compares the declared range floor of each requirement
// against its constraint.
func CheckDependencies(pkg *Package) []DependencyStatus {
	statuses := make([]DependencyStatus, 0, len(Requirements))
	for _, req := range Requirements {
		st := DependencyStatus{Requirement: req}
		declared, ok := pkg.Declared(req.Name)
		if !ok {
			st.State = StateMissing
			statuses = append(statuses, st)
			continue
		}
		st.Declared = declared

		satisfied, err := satisfies(declared, req.Constraint)
		switch {
		case err != nil:
			st.State = StateUnparsed
		case satisfied:
			st.State = StateOK
		default:
			st.State = StateOutdated
		}
		statuses = append(statuses, st)
	}
	return statuses
}

// satisfies reports whether the lowest version allowed by declared meets
// constraint. Tags like "latest" or "*" have no floor and report an error.
// A prerelease floor is compared by its release version, so "^24.0.0-beta.1"
// meets ">= 21.0.0".
func satisfies(declared, constraint string) (bool, error) {
	floor, err := rangeFloor(declared)
	if err != nil {
		return false, err
	}
	if floor.Prerelease() != "" {
		release, err := floor.SetPrerelease("")
		if err != nil {
			return false, fmt.Errorf("parsing version %q: %w", floor, err)
		}
		floor = &release
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parsing constraint %q: %w", constraint, err)
	}
	return c.Check(floor), nil
}

func rangeFloor(declared string) (*semver.Version, error) {
	// Take the lower bound of "a - b" and the first alternative of "a || b".
	r, _, _ := strings.Cut(declared, "||")
	r, _, _ = strings.Cut(r, " - ")
	// npm aliases: "npm:react-i18next@13.0.0".
	if strings.HasPrefix(r, "npm:") {
		if i := strings.LastIndex(r, "@"); i > len("npm:") {
			r = r[i+1:]
		}
	}

	token := versionPattern.FindString(r)
	if token == "" {
		return nil, fmt.Errorf("no version in range %q", declared)
	}
	v, err := semver.NewVersion(token)
	if err != nil {
		return nil, fmt.Errorf("parsing version %q: %w", token, err)
	}
	return v, nil
}

// InstallHint returns the npm command that adds every missing or outdated
// requirement, or "" when nothing is needed.
func InstallHint(statuses []DependencyStatus) string {
	var names []string
	for _, st := range statuses {
		if st.State == StateMissing || st.State == StateOutdated {
			names = append(names, st.Name+"@latest")
		}
	}
	if len(names) == 0 {
		return ""
	}
	return "npm install " + strings.Join(names, " ")
}
