package help

import (
	"io"
	"strings"
	"text/tabwriter"
	"text/template"

	"github.com/MakeNowJust/heredoc"
)

/*
	The help pages are assembled from small per-section templates which emit
	markdown.  Markdown keeps the generator dumb and testable; making it look
	good on a terminal is the render package's job (and plain markdown mode is
	what the doc fixtures pin down).

	Section templates deliberately contain no tab characters and produce no
	trailing linebreak; Generate joins the sections it wants with blank lines.
*/

// docnl is a helper for heredoc dedenting minus the trailing linebreak.
func docnl(s string) string {
	s = heredoc.Doc(s)
	return s[:len(s)-1]
}

// Appears at the top of every help page.
var nameTemplate = docnl(`
	## NAME
	{{.HelpName}}{{if .Usage}} - {{.Usage}}{{end}}
`)

// Appears second on every help page.  Contains the synopsis.
var usageTemplate = docnl(`
	## USAGE
	{{.Synopsis}}
`)

// Long-form pages only, and only for a root command carrying a version.
var versionTemplate = docnl(`
	## VERSION
	{{.Version}}
`)

// Long-form pages only.
var descriptionTemplate = docnl(`
	## DESCRIPTION
	{{trim .Description}}
`)

var commandsTemplate = docnl(`
	## COMMANDS
	{{- range .Commands}}

	### {{.Names}}
	{{.Usage}}
	{{- end}}
`)

var optionsTemplate = docnl(`
	## OPTIONS
	{{- range .Flags}}

	{{.}}
	{{- end}}
`)

var funcMap = template.FuncMap{
	"join": strings.Join,
	"trim": strings.TrimSpace,
}

// renderSection executes one section template against data.
//
// Output passes through a tabwriter; the current templates contain no tab
// characters, so cell alignment only kicks in if a template grows one.
func renderSection(out io.Writer, tmpl string, data interface{}) {
	w := tabwriter.NewWriter(out, 1, 8, 4, ' ', 0)
	t := template.Must(template.New("section").Funcs(funcMap).Parse(tmpl))
	if err := t.Execute(w, data); err != nil {
		panic(err)
	}
	_ = w.Flush()
}
