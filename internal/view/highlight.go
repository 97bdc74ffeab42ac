package view

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	g "maragu.dev/gomponents"
)

const codeStyle = "dracula"

var (
	goLexer = chroma.Coalesce(lexerFor("go"))

	codeFormatter = html.New(
		html.WithClasses(true),
		html.WithLineNumbers(true),
		html.PreventSurroundingPre(true),
		html.TabWidth(4),
	)

	// codeCSS styles the classes emitted by Highlight; rules are scoped to .chroma
	codeCSS = highlightCSS()
)

func lexerFor(name string) chroma.Lexer {
	if l := lexers.Get(name); l != nil {
		return l
	}
	return lexers.Fallback
}

// Highlight renders Go source as numbered, class-annotated HTML
func Highlight(source string) g.Node {
	it, err := goLexer.Tokenise(nil, source)
	if err != nil {
		return g.Text(source)
	}

	var b strings.Builder
	if err := codeFormatter.Format(&b, styles.Get(codeStyle), it); err != nil {
		return g.Text(source)
	}
	return g.Raw(b.String())
}

func highlightCSS() string {
	var b strings.Builder
	if err := codeFormatter.WriteCSS(&b, styles.Get(codeStyle)); err != nil {
		return ""
	}
	return b.String()
}
