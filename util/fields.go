// Package util holds AST helpers shared by the discovery pass.
package util

import (
	"go/ast"
	"strings"
)

// ExtractFieldComment extracts and formats the comment from a field.
// It prefers doc comments (before the field) over inline comments (after the field).
func ExtractFieldComment(field *ast.Field) string {
	if field.Doc != nil && len(field.Doc.List) > 0 {
		var lines []string
		for _, comment := range field.Doc.List {
			text := CleanCommentText(comment.Text)
			if text != "" {
				lines = append(lines, text)
			}
		}
		return strings.Join(lines, " ")
	}

	if field.Comment != nil && len(field.Comment.List) > 0 {
		return CleanCommentText(field.Comment.List[0].Text)
	}

	return ""
}

// ExtractDocComment flattens a declaration doc comment group into one line,
// dropping directive lines (//tsexport:...).
func ExtractDocComment(doc *ast.CommentGroup) string {
	if doc == nil {
		return ""
	}
	var lines []string
	for _, comment := range doc.List {
		if strings.HasPrefix(comment.Text, "//tsexport:") {
			continue
		}
		text := CleanCommentText(comment.Text)
		if text != "" {
			lines = append(lines, text)
		}
	}
	return strings.Join(lines, " ")
}

// CleanCommentText removes comment markers and trims whitespace.
func CleanCommentText(text string) string {
	text = strings.TrimPrefix(text, "//")
	// Handle both /** and /* block comments
	text = strings.TrimPrefix(text, "/**")
	text = strings.TrimPrefix(text, "/*")
	text = strings.TrimSuffix(text, "*/")
	return strings.TrimSpace(text)
}
