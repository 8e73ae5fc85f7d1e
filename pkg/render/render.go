// Package render turns the markdown emitted by the help package into
// something fit for a terminal.
//
// Mode_Markdown passes the markdown through a normalizing render (useful as
// a fmt'er, and what the doc fixtures compare against).  The ANSI modes
// colorize headings and indent body text under them, with wrapping driven by
// the detected terminal width.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
	"golang.org/x/term"
)

type Mode uint8

const (
	Mode_Markdown Mode = iota // Plain markdown, normalized.
	Mode_ANSI                 // Colored headings, indented prose, width-aware wrapping.
	Mode_ANSIdown             // Like Mode_ANSI but keeps the markdown annotations too.
)

// Render writes markdown to wr in the given mode.
//
// If wr is a terminal, its width is detected and used for wrapping in the
// ANSI modes; widths under 60 columns are clamped to 60.
func Render(markdown []byte, wr io.Writer, m Mode) {
	physicalWidth := -1
	if fd, ok := wr.(interface{ Fd() uintptr }); ok {
		physicalWidth, _, _ = term.GetSize(int(fd.Fd()))
		if physicalWidth > 0 && physicalWidth < 60 {
			physicalWidth = 60
		}
	}
	md := goldmark.New(
		goldmark.WithRenderer(renderer.NewRenderer(
			renderer.WithNodeRenderers(
				util.PrioritizedValue{Value: &docRenderer{m, physicalWidth}, Priority: 1},
			),
		)),
	)
	if err := md.Convert(markdown, wr); err != nil {
		panic(err)
	}
}

type docRenderer struct {
	mode  Mode
	width int
}

// RegisterFuncs is to meet `goldmark/renderer.NodeRenderer`.
// Only the node kinds our help templates actually produce get handlers.
func (r *docRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindDocument, r.renderDocument)
	reg.Register(ast.KindHeading, r.renderHeading)
	reg.Register(ast.KindParagraph, r.renderParagraph)
	reg.Register(ast.KindText, r.renderText)
	reg.Register(ast.KindRawHTML, r.renderRawText)
}

// The document node itself contributes nothing; its children do all the work.
func (r *docRenderer) renderDocument(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	return ast.WalkContinue, nil
}

func (r *docRenderer) renderHeading(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Heading)
	if entering {
		mdPrefix := strings.Repeat("#", n.Level) + " "
		switch r.mode {
		case Mode_Markdown:
			w.WriteString(mdPrefix)
		case Mode_ANSI:
			mdPrefix = ""
			fallthrough
		case Mode_ANSIdown:
			switch n.Level {
			case 2:
				writeSGR(w, sgrBold, sgrFgHiMagenta)
			case 3:
				w.WriteString(strings.Repeat(" ", 2))
				writeSGR(w, sgrBold, sgrFgHiCyan)
			case 4:
				w.WriteString(strings.Repeat(" ", 4))
				writeSGR(w, sgrBold, sgrFgHiBlue)
			}
			w.WriteString(mdPrefix)
		default:
			panic(fmt.Errorf("unsupported render mode %d", r.mode))
		}
	} else {
		if r.mode != Mode_Markdown {
			writeSGR(w, sgrReset)
		}
		w.WriteByte('\n')
	}
	return ast.WalkContinue, nil
}

func (r *docRenderer) renderParagraph(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Paragraph)
	switch r.mode {
	case Mode_Markdown:
		// Let the inline children render themselves, so bracket and
		// placeholder tokens survive the round trip verbatim.
		if !entering {
			w.WriteString("\n\n")
		}
		return ast.WalkContinue, nil
	case Mode_ANSI, Mode_ANSIdown:
		// Wrapping needs the whole paragraph in hand, so this path takes
		// the flattened text and skips the children.
		if entering {
			left := 2 * nearestHeadingLevel(node)
			body := n.Text(source)
			if r.width > 0 {
				body = wordwrap.Bytes(body, r.width-2-left)
			}
			body = indent.Bytes(body, uint(left))
			w.Write(body)
			w.WriteByte('\n')
		} else {
			w.WriteByte('\n')
		}
		return ast.WalkSkipChildren, nil
	default:
		panic(fmt.Errorf("unsupported render mode %d", r.mode))
	}
}

func (r *docRenderer) renderText(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		n := node.(*ast.Text)
		w.Write(n.Text(source))
		if n.SoftLineBreak() {
			w.WriteByte('\n')
		}
	}
	return ast.WalkContinue, nil
}

// Bracket characters in usage synopses get parsed as "raw HTML" by goldmark.
// They're just text to us; pass them through.
func (r *docRenderer) renderRawText(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		n := node.(*ast.RawHTML)
		for i := 0; i < n.Segments.Len(); i++ {
			segment := n.Segments.At(i)
			w.Write(segment.Value(source))
		}
	}
	return ast.WalkContinue, nil
}

// nearestHeadingLevel reports the level of the heading governing this node,
// or 0 if there is none.
func nearestHeadingLevel(node ast.Node) int {
	for sib := node.PreviousSibling(); sib != nil; sib = sib.PreviousSibling() {
		if sib.Kind() == ast.KindHeading {
			return sib.(*ast.Heading).Level
		}
	}
	return 0
}
