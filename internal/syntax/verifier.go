// Package syntax verifies that rewritten source still parses. The rewrite
// engine itself stays heuristic; the real parser is only a verification
// collaborator behind the driver's validation hook.
package syntax

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// Verifier parse-checks file content with the grammar matching the file's
// extension. Unknown extensions are accepted without a check.
type Verifier struct{}

// NewVerifier creates a verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// Check parses content and returns an error when the tree contains syntax
// errors. A fresh parser per call keeps the verifier safe for parallel use.
func (v *Verifier) Check(path, content string) error {
	lang := languageFor(path)
	if lang == nil {
		return nil
	}

	parser := sitter.NewParser()
	parser.SetLanguage(lang)
	tree, err := parser.ParseCtx(context.Background(), nil, []byte(content))
	if err != nil {
		return fmt.Errorf("parse failed for %s: %w", path, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return fmt.Errorf("parser returned no tree for %s", path)
	}
	if root.HasError() {
		if node := firstErrorNode(root); node != nil {
			point := node.StartPoint()
			return fmt.Errorf("syntax error in %s at line %d, column %d", path, point.Row+1, point.Column+1)
		}
		return fmt.Errorf("syntax error in %s", path)
	}
	return nil
}

// languageFor maps a file extension to its grammar, or nil when the file is
// outside the verifier's reach.
func languageFor(path string) *sitter.Language {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsx":
		return tsx.GetLanguage()
	case ".ts", ".mts", ".cts":
		return typescript.GetLanguage()
	case ".js", ".jsx", ".mjs", ".cjs":
		return javascript.GetLanguage()
	}
	return nil
}

// firstErrorNode walks the tree depth-first for the first ERROR or missing
// node, used to point the error message at a position.
func firstErrorNode(node *sitter.Node) *sitter.Node {
	if node.Type() == "ERROR" || node.IsMissing() {
		return node
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		if found := firstErrorNode(node.Child(i)); found != nil {
			return found
		}
	}
	return nil
}
