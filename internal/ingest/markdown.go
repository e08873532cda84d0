package ingest

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// markdownParser is shared across calls; goldmark parsers are stateless.
var markdownParser = goldmark.New(
	goldmark.WithExtensions(extension.Table),
)

// MarkdownToPlainText parses markdown content and extracts its text,
// dropping formatting so the chunker sees prose instead of syntax.
// Block boundaries become newlines.
func MarkdownToPlainText(content []byte) string {
	reader := text.NewReader(content)
	doc := markdownParser.Parser().Parse(reader)

	var builder strings.Builder

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Text:
			segment := node.Segment
			builder.Write(segment.Value(content))
		case *ast.String:
			builder.Write(node.Value)
		case *ast.CodeBlock, *ast.FencedCodeBlock:
			if builder.Len() > 0 && !strings.HasSuffix(builder.String(), "\n") {
				builder.WriteString("\n")
			}
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				line := lines.At(i)
				builder.Write(line.Value(content))
			}
			return ast.WalkSkipChildren, nil
		case *ast.Heading, *ast.Paragraph, *ast.ListItem:
			if builder.Len() > 0 && !strings.HasSuffix(builder.String(), "\n") {
				builder.WriteString("\n")
			}
		}

		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(builder.String())
}
