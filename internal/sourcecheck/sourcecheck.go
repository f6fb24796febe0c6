// Package sourcecheck parses generated TypeScript sources with tree-sitter and
// reports the first syntax error it finds.
package sourcecheck

import (
	"context"
	"fmt"
	"path"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// SyntaxError locates a parse failure. Line and Column are 0-indexed.
type SyntaxError struct {
	Path   string
	Line   uint32
	Column uint32
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d:%d: syntax error", e.Path, e.Line+1, e.Column+1)
}

// Supported reports whether Validate has a grammar for the file.
func Supported(filePath string) bool {
	return languageFor(filePath) != nil
}

// Validate parses content and returns a *SyntaxError if the tree contains
// ERROR or MISSING nodes. Files without a known grammar pass through.
func Validate(content []byte, filePath string) error {
	lang := languageFor(filePath)
	if lang == nil {
		return nil
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(lang)

	tree, err := parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", filePath, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return fmt.Errorf("parsing %s: empty syntax tree", filePath)
	}
	if !root.HasError() {
		return nil
	}

	se := &SyntaxError{Path: filePath}
	if n := firstError(root); n != nil {
		se.Line = n.StartPoint().Row
		se.Column = n.StartPoint().Column
	}
	return se
}

// firstError does a depth-first search for the first ERROR or MISSING node.
func firstError(node *sitter.Node) *sitter.Node {
	if node.IsError() || node.IsMissing() {
		return node
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.HasError() || child.IsError() || child.IsMissing() {
			if found := firstError(child); found != nil {
				return found
			}
		}
	}
	return nil
}

// languageFor picks a grammar by extension. JSX needs the TSX grammar.
func languageFor(filePath string) *sitter.Language {
	switch strings.ToLower(path.Ext(filePath)) {
	case ".ts":
		return typescript.GetLanguage()
	case ".tsx":
		return tsx.GetLanguage()
	default:
		return nil
	}
}
