package log

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"error", ErrorLevel, false},
		{"info", InfoLevel, false},
		{"debug", DebugLevel, false},
		{"trace", InfoLevel, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	l := NewWriter(InfoLevel, &buf)

	l.Debug("hidden %d", 1)
	l.Info("loaded %d rows", 23)
	l.Error("boom")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message printed at info level:\n%s", out)
	}
	if !strings.Contains(out, "loaded 23 rows") {
		t.Errorf("info message missing:\n%s", out)
	}
	if !strings.Contains(out, "Error: boom") {
		t.Errorf("error message missing:\n%s", out)
	}

	buf.Reset()
	l.SetLevel(DebugLevel)
	l.Debug("visible")
	if !strings.Contains(buf.String(), "debug: visible") {
		t.Errorf("debug message missing at debug level: %q", buf.String())
	}
}

func TestLogger_FileReceivesAllLevels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tabview.log")

	l, err := New(ErrorLevel, path)
	if err != nil {
		t.Fatal(err)
	}
	l.out = &bytes.Buffer{}
	l.Debug("query took %s", "12ms")
	l.Warning("column missing")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"DEBUG: query took 12ms", "WARNING: column missing"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("log file missing %q:\n%s", want, data)
		}
	}
}

func TestInfof_UsesDefaultLogger(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	prev := Default()
	SetDefault(NewWriter(InfoLevel, &buf))
	t.Cleanup(func() { SetDefault(prev) })

	Infof("page %d clamped to %d of %d", 9, 3, 3)
	Debugf("hidden")

	if got := buf.String(); !strings.Contains(got, "page 9 clamped to 3 of 3") || strings.Contains(got, "hidden") {
		t.Errorf("default logger output = %q", got)
	}
}
