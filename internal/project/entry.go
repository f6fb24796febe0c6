package project

import "github.com/go-git/go-billy/v5"

// EntryCandidates are the entry files common React toolchains generate,
// Vite's src/main.tsx first.
var EntryCandidates = []string{
	"src/main.tsx",
	"src/main.jsx",
	"src/index.tsx",
	"src/index.jsx",
}

// DetectEntry returns the first candidate that exists as a regular file.
func DetectEntry(fsys billy.Basic) (string, bool) {
	for _, c := range EntryCandidates {
		info, err := fsys.Stat(c)
		if err == nil && info.Mode().IsRegular() {
			return c, true
		}
	}
	return "", false
}
