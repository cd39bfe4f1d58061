package cli

import (
	"strings"
	"testing"
)

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"SLOT", "COVER", "CLASS"})
	table.AddRow([]string{"0,0", "red.png", "colorful"})
	table.AddRow([]string{"0,1", "grey.png", "monochrome"})

	out := table.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("rendered %d lines, want 3:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "SLOT") {
		t.Errorf("header line = %q", lines[0])
	}
	if !strings.Contains(lines[2], "monochrome") {
		t.Errorf("row line = %q", lines[2])
	}

	// Columns align: CLASS starts at the same offset in every line.
	offset := strings.Index(lines[0], "CLASS")
	if strings.Index(lines[1], "colorful") != offset {
		t.Errorf("column misaligned:\n%s", out)
	}
}

func TestTableShortRow(t *testing.T) {
	table := NewTable([]string{"A", "B", "C"})
	table.AddRow([]string{"only"})

	out := table.Render()
	if !strings.Contains(out, "only") {
		t.Errorf("short row missing from output:\n%s", out)
	}
}

func TestTableEmpty(t *testing.T) {
	if out := NewTable(nil).Render(); out != "" {
		t.Errorf("empty table rendered %q", out)
	}
}
