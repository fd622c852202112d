package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/taxatools/taxadist/internal/matrix"
)

const sampleCSV = "name, A, B\nt1, 1, 10\nt2, 3, 10\n"

// runCmd executes the root command with args and returns captured stdout.
func runCmd(t *testing.T, args ...string) string {
	t.Helper()
	resetConvertFlags()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
	return out.String()
}

// runCmdErr executes the root command expecting a failure.
func runCmdErr(t *testing.T, args ...string) error {
	t.Helper()
	resetConvertFlags()
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	if err == nil {
		t.Fatalf("command %v unexpectedly succeeded", args)
	}
	return err
}

// resetConvertFlags clears sticky flag state that persists across invocations.
func resetConvertFlags() {
	if f := convertCmd.Flags(); f != nil {
		for _, name := range []string{"fragment", "element-name", "feature", "raw", "indent", "output"} {
			if fl := f.Lookup(name); fl != nil {
				_ = fl.Value.Set(fl.DefValue)
				fl.Changed = false
			}
		}
	}
	convFragment = false
	convElementName = ""
	convFeature = ""
	convRaw = false
	convIndent = 0
	convOutputPath = ""
}

func writeSample(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "measurements.csv")
	if err := os.WriteFile(p, []byte(sampleCSV), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestCLI_ConvertFragmentToFile(t *testing.T) {
	csvPath := writeSample(t)
	outPath := filepath.Join(t.TempDir(), "out.xml")
	runCmd(t, "convert", csvPath, "--raw", "--fragment", "--indent", "0", "--output", outPath)

	b, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	want := "<xxx><!--A--><feature><value>-2</value></feature><!--B--><feature><value>0</value></feature></xxx>"
	if got := string(b); got != want {
		t.Fatalf("output = %q; want %q", got, want)
	}
}

func TestCLI_ConvertDocumentHasDeclaration(t *testing.T) {
	csvPath := writeSample(t)
	out := runCmd(t, "convert", csvPath, "--raw", "--indent", "0")
	if !strings.HasPrefix(out, "<?xml") {
		t.Fatalf("expected XML declaration, got: %q", out)
	}
	if !strings.Contains(out, "<value>-2</value>") {
		t.Fatalf("expected distance value in output, got: %q", out)
	}
}

func TestCLI_ConvertSingleFeature(t *testing.T) {
	csvPath := writeSample(t)
	out := runCmd(t, "convert", csvPath, "--raw", "--fragment", "--indent", "0",
		"--feature", "A", "--element-name", "distances")
	want := "<distances><value>-2</value></distances>\n"
	if out != want {
		t.Fatalf("output = %q; want %q", out, want)
	}
}

func TestCLI_ConvertUnknownFeature(t *testing.T) {
	csvPath := writeSample(t)
	err := runCmdErr(t, "convert", csvPath, "--feature", "nope")
	var nerr *matrix.NotFoundError
	if !errors.As(err, &nerr) {
		t.Fatalf("expected NotFoundError, got: %v", err)
	}
}

func TestCLI_ConvertInvalidCSV(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.csv")
	if err := os.WriteFile(p, []byte("name, A\nt1, 1\nt1, 2\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	err := runCmdErr(t, "convert", p)
	var verr *matrix.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got: %v", err)
	}
}

func TestCLI_Describe(t *testing.T) {
	csvPath := writeSample(t)
	out := runCmd(t, "describe", csvPath)
	for _, want := range []string{"Features: 2", "Taxa: 2 (t1, t2)", "- A: min 1, max 3, mean 2"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in describe output, got: %q", want, out)
		}
	}
}
