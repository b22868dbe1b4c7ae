package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/couchcryptid/obs-shots2cnv/internal/pipeline"
)

// shouldRenderSummary decides whether the post-run table is printed. In auto
// mode it is shown only on an interactive terminal so piped output stays clean.
func shouldRenderSummary(mode string, writer io.Writer) bool {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "always":
		return true
	case "never":
		return false
	}
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func renderSummary(s pipeline.Summary) string {
	rows := make([][]string, 0, len(s.Stations)+len(s.Skipped))
	lines := 0
	for _, st := range s.Stations {
		rows = append(rows, []string{st.Code, st.File, strconv.Itoa(st.Arrivals), strconv.Itoa(st.Lines)})
		lines += st.Lines
	}
	for _, name := range s.Skipped {
		rows = append(rows, []string{"-", name, "0", "skipped"})
	}

	return tableLayout{
		headers: []string{"Station", "File", "Arrivals", "Lines"},
		rows:    rows,
		numeric: []bool{false, false, true, true},
		footer: []string{
			"Total",
			fmt.Sprintf("%d converted, %d skipped", len(s.Stations), len(s.Skipped)),
			strconv.Itoa(s.Arrivals),
			strconv.Itoa(lines),
		},
		caption: "converted in " + s.Duration.Round(time.Millisecond).String(),
	}.render()
}
