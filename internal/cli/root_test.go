package cli

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/sessilelab/dropletgen/pkg/batch"
	"github.com/sessilelab/dropletgen/pkg/errors"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := map[string]bool{
		"generate":   false,
		"batch":      false,
		"serve":      false,
		"cache":      false,
		"completion": false,
	}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestGenerateFlagDefaults(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	gen, _, err := root.Find([]string{"generate"})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}

	for _, name := range []string{"angle", "seed", "output", "annotate", "clean", "refresh", "no-cache"} {
		if gen.Flags().Lookup(name) == nil {
			t.Errorf("generate is missing --%s", name)
		}
	}
}

func TestBatchSummaryAllRowsFailed(t *testing.T) {
	report := batch.Report{Skipped: []batch.RowError{
		{Line: 2, ID: 1, Err: errors.New(errors.ErrCodeInvalidParameter, "angle out of range")},
	}}

	out := captureStdout(t, func() { printBatchSummary("out", report) })
	if !strings.Contains(out, "No images generated") {
		t.Errorf("missing failure line in summary:\n%s", out)
	}
	if strings.Contains(out, "Generated") {
		t.Errorf("success line printed for a failed batch:\n%s", out)
	}
	if !strings.Contains(out, "angle out of range") {
		t.Errorf("skip table missing the row reason:\n%s", out)
	}
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	old := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()
	w.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestBatchRequiresInput(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"batch"})

	if err := root.Execute(); err == nil {
		t.Error("batch without --input should fail")
	}
}
