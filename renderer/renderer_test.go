package renderer

import (
	"strings"
	"testing"

	"github.com/dmelo/carteira"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// headings parses the markdown and returns the text of every heading.
func headings(t *testing.T, content string) []string {
	t.Helper()

	mdParser := goldmark.DefaultParser()
	root := mdParser.Parse(text.NewReader([]byte(content)))

	var found []string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			var b strings.Builder
			for i := 0; i < h.Lines().Len(); i++ {
				line := h.Lines().At(i)
				b.Write(line.Value([]byte(content)))
			}
			found = append(found, b.String())
		}
		return ast.WalkContinue, nil
	})
	return found
}

func TestYieldMarkdown(t *testing.T) {
	p := carteira.NewPosition("cdb nubank", carteira.CDB, 10000, 100, carteira.NewDate(2025, 8, 28))
	on := carteira.NewDate(2026, 8, 28)
	y := carteira.Evaluate(p, on, 14.90)

	got := YieldMarkdown(p, on, y)

	hs := headings(t, got)
	if len(hs) != 1 || !strings.Contains(hs[0], "cdb nubank") {
		t.Errorf("headings = %v, want the position name", hs)
	}
	for _, want := range []string{"Principal", "Gross Value", "Income Tax", "Net Value", "Effective Annual Rate", "365 calendar days", "252 business days"} {
		if !strings.Contains(got, want) {
			t.Errorf("yield markdown missing %q:\n%s", want, got)
		}
	}
}

func TestYieldMarkdownExempt(t *testing.T) {
	p := carteira.NewPosition("lci", carteira.LCI, 5000, 95, carteira.NewDate(2026, 1, 2))
	on := carteira.NewDate(2026, 8, 28)
	got := YieldMarkdown(p, on, carteira.Evaluate(p, on, 14.90))

	if !strings.Contains(got, "exempt") {
		t.Errorf("exempt position should render as exempt:\n%s", got)
	}
	if strings.Contains(got, "Income Tax") {
		t.Errorf("exempt position should not list income tax:\n%s", got)
	}
}

func TestProjectionMarkdown(t *testing.T) {
	from := carteira.NewDate(2026, 8, 28)
	positions := []carteira.Position{
		carteira.NewPosition("cdb", carteira.CDB, 10000, 100, carteira.NewDate(2025, 8, 28)),
	}
	points := carteira.Project(from, positions, nil, 6, 14.90, 500)

	got := ProjectionMarkdown(points, 14.90)

	hs := headings(t, got)
	if len(hs) != 1 || hs[0] != "Wealth Projection" {
		t.Errorf("headings = %v, want [Wealth Projection]", hs)
	}
	// one row per point
	for _, pt := range points {
		if !strings.Contains(got, pt.Label) {
			t.Errorf("projection markdown missing month %q", pt.Label)
		}
	}
}

func TestProjectionMarkdownEmpty(t *testing.T) {
	got := ProjectionMarkdown(nil, 14.90)
	if !strings.Contains(got, "Nothing to project") {
		t.Errorf("empty projection = %q", got)
	}
}
