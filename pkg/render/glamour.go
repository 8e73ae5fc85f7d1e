package render

import (
	"io"

	"github.com/charmbracelet/glamour"
)

// RenderStyled is the fancy alternative to Render's ANSI modes: full
// markdown styling via glamour, tuned so our help pages read well.
//
// width <= 0 defaults to 80 columns.
func RenderStyled(markdown []byte, wr io.Writer, width int) error {
	if width <= 0 {
		width = 80
	}
	style := glamour.DarkStyleConfig
	stringPtr := func(s string) *string { return &s }
	uintPtr := func(u uint) *uint { return &u }
	style.Document.Margin = uintPtr(0)
	style.Paragraph.Margin = uintPtr(6)
	style.Code.Prefix = "`"
	style.Code.Suffix = "`"
	style.H2.Margin = uintPtr(0)
	style.H3.BlockSuffix = " "
	style.H3.Margin = uintPtr(2)
	style.H3.Color = stringPtr("135")
	style.H4.BlockSuffix = " "
	style.H4.Margin = uintPtr(2)
	style.H4.Color = stringPtr("67")

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return err
	}
	out, err := r.Render(string(markdown))
	if err != nil {
		return err
	}
	_, err = io.WriteString(wr, out)
	return err
}
