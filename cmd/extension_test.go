package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// buildRroi compiles the rroi command and an rroi-hello extension in dir.
func buildRroi(t *testing.T, dir string) string {
	t.Helper()

	helloSource := fmt.Sprintf(`
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("args=%%v\n", os.Args[1:])
	if len(os.Args) > 1 && os.Args[1] == "fail" {
		os.Exit(3)
	}
}
`, EnvConfigFile, EnvConfigFile, EnvCurrency, EnvCurrency, EnvVerbose, EnvVerbose)

	srcFile := filepath.Join(dir, "rroi-hello.go")
	if err := os.WriteFile(srcFile, []byte(helloSource), 0644); err != nil {
		t.Fatalf("Failed to write rroi-hello source: %v", err)
	}
	build := exec.Command("go", "build", "-o", filepath.Join(dir, "rroi-hello"), srcFile)
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to compile rroi-hello: %v", err)
	}

	rroi := filepath.Join(dir, "rroi")
	build = exec.Command("go", "build", "-o", rroi, "../rroi")
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to compile rroi: %v", err)
	}
	return rroi
}

func TestExtensionMechanism(t *testing.T) {
	tempDir := t.TempDir()
	rroi := buildRroi(t, tempDir)

	expectedConfig := filepath.Join(tempDir, "config.toml")
	args := []string{
		"--config", expectedConfig,
		"--currency", "EUR",
		"-v",
		"hello", "one", "two",
	}
	c := exec.Command(rroi, args...)
	c.Env = []string{"PATH=" + tempDir + string(os.PathListSeparator) + os.Getenv("PATH")}
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	if err := c.Run(); err != nil {
		t.Fatalf("rroi command failed: %v\nStdout: %s\nStderr: %s", err, stdout.String(), stderr.String())
	}

	output := stdout.String()
	for _, expectedLine := range []string{
		EnvConfigFile + "=" + expectedConfig,
		EnvCurrency + "=EUR",
		EnvVerbose + "=true",
		"args=[one two]",
	} {
		if !strings.Contains(output, expectedLine) {
			t.Errorf("Expected output to contain %q, but got:\n%s", expectedLine, output)
		}
	}
}

func TestExtensionExitCode(t *testing.T) {
	tempDir := t.TempDir()
	rroi := buildRroi(t, tempDir)

	c := exec.Command(rroi, "hello", "fail")
	c.Env = []string{"PATH=" + tempDir + string(os.PathListSeparator) + os.Getenv("PATH")}
	err := c.Run()
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != 3 {
		t.Errorf("rroi hello fail: %v, want exit status 3", err)
	}
}

func TestRunExtension_NotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	if found, code := RunExtension("missing", nil); found || code != 0 {
		t.Errorf("RunExtension() = %v, %d, want false, 0", found, code)
	}
}
