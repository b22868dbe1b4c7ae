package integration_test

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	testStationTable = "STA1 10.5 -120.25 1500\n" +
		"OBS02 -41.2345 174.5678 2150\n" +
		"OBS03 0 0 0\n"

	testHeaderSTA1 = "STA1121212 1212 12.12 10.5000N 120.2500W   1.50   9.99      0      0.00\n"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fixture lays out a station table and a shot directory under a temp dir.
type fixture struct {
	root     string
	shotDir  string
	stations string
	out      string
}

func newFixture(t *testing.T, table string, shots map[string]string) fixture {
	t.Helper()
	root := t.TempDir()
	f := fixture{
		root:     root,
		shotDir:  filepath.Join(root, "shots"),
		stations: filepath.Join(root, "stations.txt"),
		out:      filepath.Join(root, "out.cnv"),
	}
	require.NoError(t, os.Mkdir(f.shotDir, 0o755))
	require.NoError(t, os.WriteFile(f.stations, []byte(table), 0o644))
	for name, content := range shots {
		require.NoError(t, os.WriteFile(filepath.Join(f.shotDir, name), []byte(content), 0o644))
	}
	return f
}

// shotLines builds n shot lines with ids starting at first and travel times of 1 s, 2 s, ...
func shotLines(first, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		id := first + i
		fmt.Fprintf(&b, "%d %d 174.1 -41.0 %d.5 0 %d 1.2\n", id, id, i, 1000*(i+1))
	}
	return b.String()
}
