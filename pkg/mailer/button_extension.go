package mailer

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// buttonPrefix opens the call-to-action syntax: [!button|Label](URL).
var buttonPrefix = []byte("[!button|")

// KindButton is the node kind for ButtonNode.
var KindButton = ast.NewNodeKind("Button")

// ButtonNode is an inline call-to-action link.
type ButtonNode struct {
	ast.BaseInline
	URL   []byte
	Label []byte
}

func (n *ButtonNode) Kind() ast.NodeKind {
	return KindButton
}

func (n *ButtonNode) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"URL":   string(n.URL),
		"Label": string(n.Label),
	}, nil)
}

type buttonParser struct{}

// NewButtonParser creates the inline parser for [!button|Label](URL).
func NewButtonParser() parser.InlineParser {
	return &buttonParser{}
}

func (p *buttonParser) Trigger() []byte {
	return []byte{'['}
}

func (p *buttonParser) Parse(_ ast.Node, block text.Reader, _ parser.Context) ast.Node {
	line, _ := block.PeekLine()
	if !bytes.HasPrefix(line, buttonPrefix) {
		return nil
	}

	rest := line[len(buttonPrefix):]
	label, afterLabel, ok := bytes.Cut(rest, []byte("]("))
	if !ok || len(label) == 0 {
		return nil
	}
	url, _, ok := bytes.Cut(afterLabel, []byte(")"))
	if !ok || len(url) == 0 {
		return nil
	}

	consumed := len(buttonPrefix) + len(label) + 2 + len(url) + 1
	block.Advance(consumed)

	return &ButtonNode{URL: url, Label: label}
}

type buttonRenderer struct {
	html.Config
}

// NewButtonRenderer creates the HTML renderer for ButtonNode.
// Buttons are rendered as a single-cell table, which is what most email
// clients display consistently.
func NewButtonRenderer(opts ...html.Option) renderer.NodeRenderer {
	r := &buttonRenderer{Config: html.NewConfig()}
	for _, opt := range opts {
		opt.SetHTMLOption(&r.Config)
	}
	return r
}

func (r *buttonRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindButton, r.render)
}

func (r *buttonRenderer) render(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	n := node.(*ButtonNode)
	_, _ = w.WriteString(`<table role="presentation" class="btn"><tr><td><a href="`)
	_, _ = w.Write(util.EscapeHTML(util.URLEscape(n.URL, true)))
	_, _ = w.WriteString(`" target="_blank">`)
	_, _ = w.Write(util.EscapeHTML(n.Label))
	_, _ = w.WriteString(`</a></td></tr></table>`)

	return ast.WalkContinue, nil
}

type buttonExtension struct{}

// NewButtonExtension registers the call-to-action syntax with goldmark.
func NewButtonExtension() goldmark.Extender {
	return &buttonExtension{}
}

func (e *buttonExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(NewButtonParser(), 50),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(NewButtonRenderer(), 50),
	))
}
