package console

import (
	"bytes"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Domenick1991/airbooking-console/internal/domain"
	"github.com/fatih/color"
)

var (
	headerColor = color.New(color.Bold)
	errorColor  = color.New(color.FgRed)
	okColor     = color.New(color.FgGreen)
	noneColor   = color.New(color.FgYellow)
)

// printTable writes the header once followed by every row, columns aligned on tabs.
// Alignment happens on plain text; the header is coloured afterwards.
func printTable(out io.Writer, t *domain.Table) error {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	if _, err := io.WriteString(w, strings.Join(t.Columns, "\t")+"\n"); err != nil {
		return err
	}
	for _, row := range t.Rows {
		trimmed := make([]string, len(row))
		for i, v := range row {
			trimmed[i] = strings.TrimSpace(v)
		}
		if _, err := io.WriteString(w, strings.Join(trimmed, "\t")+"\n"); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	header, rows, _ := strings.Cut(buf.String(), "\n")
	if _, err := headerColor.Fprintln(out, header); err != nil {
		return err
	}
	_, err := io.WriteString(out, rows)
	return err
}
