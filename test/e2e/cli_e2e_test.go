package e2e

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"strconv"
	"strings"
	"testing"
)

// buildBinary compiles the command at pkg into dir and returns its path.
func buildBinary(t *testing.T, dir, name, pkg string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	binPath := filepath.Join(dir, name)

	// go test runs with the package directory as CWD.
	cmd := exec.Command("go", "build", "-o", binPath, pkg)
	cmd.Dir = "../.."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build %s: %v", name, err)
	}
	return binPath
}

type runOutput struct {
	stdout string
	stderr string
	code   int
}

func run(t *testing.T, bin string, args ...string) runOutput {
	t.Helper()
	cmd := exec.Command(bin, args...)
	cmd.Env = append(os.Environ(), "NO_COLOR=1")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()

	code := 0
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("running %s: %v", bin, err)
		}
		code = exitErr.ExitCode()
	}
	return runOutput{stdout: stdout.String(), stderr: stderr.String(), code: code}
}

// TestCLI_E2E verifies the built binaries.
func TestCLI_E2E(t *testing.T) {
	tmpDir := t.TempDir()
	sequential := buildBinary(t, tmpDir, "numint", "./cmd/numint")
	threaded := buildBinary(t, tmpDir, "numint-threaded", "./cmd/numint-threaded")

	configFailures := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"Missing Threads", nil, "Number of threads must be passed as an argument"},
		{"Non-numeric Threads", []string{"abc"}, "Number of threads must be passed as an argument"},
		{"Zero Threads", []string{"0"}, "threads"},
		{"Negative Threads", []string{"--", "-3"}, "threads"},
		{"Unknown Flag", []string{"--nope", "2"}, "nope"},
	}
	for _, tt := range configFailures {
		t.Run(tt.name, func(t *testing.T) {
			got := run(t, threaded, tt.args...)
			if got.code == 0 {
				t.Fatalf("expected non-zero exit code\nstderr: %s", got.stderr)
			}
			if got.code != 4 {
				t.Errorf("exit code = %d, want 4", got.code)
			}
			if strings.Contains(got.stdout, "The result") {
				t.Errorf("no result should be printed on a configuration error:\n%s", got.stdout)
			}
			if !strings.Contains(got.stderr, tt.wantErr) {
				t.Errorf("stderr should contain %q, got:\n%s", tt.wantErr, got.stderr)
			}
		})
	}

	for _, bin := range []string{sequential, threaded} {
		name := filepath.Base(bin)

		t.Run(name+" Version Flag", func(t *testing.T) {
			got := run(t, bin, "--version")
			if got.code != 0 || !strings.HasPrefix(got.stdout, "numint ") {
				t.Errorf("code=%d stdout=%q", got.code, got.stdout)
			}
		})

		t.Run(name+" Help", func(t *testing.T) {
			got := run(t, bin, "--help")
			if got.code != 0 {
				t.Errorf("exit code = %d, want 0", got.code)
			}
			if !strings.Contains(strings.ToLower(got.stderr), "usage") {
				t.Errorf("help should print usage, got:\n%s", got.stderr)
			}
		})
	}

	if testing.Short() {
		t.Skip("skipping full one-billion-interval runs in short mode")
	}

	resultLine := regexp.MustCompile(`(?m)^The result = (\d+\.\d{10})$`)

	t.Run("Sequential Full Problem", func(t *testing.T) {
		got := run(t, sequential)
		if got.code != 0 {
			t.Fatalf("exit code = %d\nstderr: %s", got.code, got.stderr)
		}
		assertNearOne(t, resultLine, got.stdout)
		if !strings.Contains(got.stdout, "Number of intervals = 1000000000\n") {
			t.Errorf("missing interval count:\n%s", got.stdout)
		}
		if strings.Contains(got.stdout, "Number of threads") {
			t.Errorf("sequential output should not mention threads:\n%s", got.stdout)
		}
	})

	t.Run("Threaded Full Problem", func(t *testing.T) {
		threads := runtime.NumCPU()
		got := run(t, threaded, strconv.Itoa(threads))
		if got.code != 0 {
			t.Fatalf("exit code = %d\nstderr: %s", got.code, got.stderr)
		}
		assertNearOne(t, resultLine, got.stdout)
		if n := strings.Count(got.stdout, "partial result = "); n != threads {
			t.Errorf("got %d partial lines, want %d", n, threads)
		}
		if !strings.Contains(got.stdout, "Number of threads = "+strconv.Itoa(threads)+"\n") {
			t.Errorf("missing thread count:\n%s", got.stdout)
		}
		if !strings.HasSuffix(got.stdout, "----------\n") {
			t.Errorf("output should end with the separator:\n%s", got.stdout)
		}
	})
}

func assertNearOne(t *testing.T, re *regexp.Regexp, stdout string) {
	t.Helper()
	m := re.FindStringSubmatch(stdout)
	if m == nil {
		t.Fatalf("no result line in:\n%s", stdout)
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		t.Fatalf("parsing %q: %v", m[1], err)
	}
	if d := v - 1.0; d > 1e-9 || d < -1e-9 {
		t.Errorf("result = %s, want within 1e-9 of 1", m[1])
	}
}
