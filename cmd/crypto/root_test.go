package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hasbyte1/go-classic-ciphers/cipher"
	"github.com/hasbyte1/go-classic-ciphers/pipeline"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

// result extracts the transformed text from the success message.
func result(t *testing.T, stdout string) string {
	t.Helper()
	_, text, ok := strings.Cut(stdout, "\n\n")
	if !ok {
		t.Fatalf("unexpected output %q", stdout)
	}
	return strings.TrimSuffix(text, "\n")
}

// ────────────────────────────────────────────────────────────────────────────
// Encrypt / decrypt
// ────────────────────────────────────────────────────────────────────────────

func TestRoot_Encrypt(t *testing.T) {
	stdout, _, err := run(t, "-e", "HELLO", "-c", "3")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.HasPrefix(stdout, "Contents encrypted successfully!") {
		t.Errorf("missing success message in %q", stdout)
	}
	if got := result(t, stdout); got != "KHOOR" {
		t.Errorf("got %q, want KHOOR", got)
	}
}

func TestRoot_FlagOrderIrrelevant(t *testing.T) {
	a, _, err := run(t, "-e", "HELLO", "-c", "3", "-r")
	if err != nil {
		t.Fatal(err)
	}
	b, _, err := run(t, "-r", "-c", "3", "-e", "HELLO")
	if err != nil {
		t.Fatal(err)
	}
	if result(t, a) != "ROOHK" || result(t, b) != "ROOHK" {
		t.Errorf("got %q and %q, want ROOHK twice", result(t, a), result(t, b))
	}
}

func TestRoot_HugeTranspositionKey(t *testing.T) {
	for _, args := range [][]string{
		{"-e", "HELLO", "-t", "1099511627776"},
		{"-d", "HELLO", "-t", "9223372036854775807"},
	} {
		stdout, _, err := run(t, args...)
		if err != nil {
			t.Fatalf("%v: %v", args, err)
		}
		if got := result(t, stdout); got != "HELLO" {
			t.Errorf("%v: got %q, want HELLO", args, got)
		}
	}
}

func TestRoot_RoundTrip(t *testing.T) {
	const plain = "Attack at dawn!"
	keys := []string{"--vig", "LEMON", "--tra", "8", "--rev", "--sub", "QWERTYUIOPASDFGHJKLZXCVBNM"}

	stdout, _, err := run(t, append([]string{"-e", plain}, keys...)...)
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	encrypted := result(t, stdout)

	stdout, _, err = run(t, append([]string{"-d", encrypted}, keys...)...)
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if !strings.HasPrefix(stdout, "Contents decrypted successfully!") {
		t.Errorf("missing success message in %q", stdout)
	}
	if got, want := result(t, stdout), strings.ToUpper(plain); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// ────────────────────────────────────────────────────────────────────────────
// Configuration file
// ────────────────────────────────────────────────────────────────────────────

func writeSpec(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRoot_ConfigFile(t *testing.T) {
	path := writeSpec(t, "stages:\n  - name: caesar\n    key: \"3\"\n  - name: reverse\n")

	stdout, _, err := run(t, "-e", "HELLO", "--config", path)
	if err != nil {
		t.Fatal(err)
	}
	if got := result(t, stdout); got != "ROOHK" {
		t.Errorf("got %q, want ROOHK", got)
	}
}

func TestRoot_FlagsOverrideConfig(t *testing.T) {
	path := writeSpec(t, "stages:\n  - name: caesar\n    key: \"3\"\n  - name: reverse\n    enabled: false\n")

	stdout, _, err := run(t, "-e", "HELLO", "--config", path, "-c", "1", "-r")
	if err != nil {
		t.Fatal(err)
	}
	if got := result(t, stdout); got != "PMMFI" {
		t.Errorf("got %q, want PMMFI", got)
	}
}

func TestRoot_ConfigErrors(t *testing.T) {
	_, _, err := run(t, "-e", "HELLO", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: got %v, want os.ErrNotExist", err)
	}

	path := writeSpec(t, "stages:\n  - name: rot13\n")
	_, _, err = run(t, "-e", "HELLO", "--config", path)
	if !errors.Is(err, pipeline.ErrUnknownTransform) {
		t.Errorf("unknown stage: got %v, want ErrUnknownTransform", err)
	}
}

func TestRoot_ConfigWithNothingEnabled(t *testing.T) {
	path := writeSpec(t, "stages:\n  - name: reverse\n    enabled: false\n")
	if _, _, err := run(t, "-e", "HELLO", "--config", path); !errors.Is(err, errNoTransforms) {
		t.Errorf("got %v, want errNoTransforms", err)
	}
	stdout, _, err := run(t, "-e", "HELLO", "--config", path, "-r")
	if err != nil {
		t.Fatal(err)
	}
	if got := result(t, stdout); got != "OLLEH" {
		t.Errorf("got %q, want OLLEH", got)
	}
}

// ────────────────────────────────────────────────────────────────────────────
// Errors
// ────────────────────────────────────────────────────────────────────────────

func TestRoot_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"no text", []string{"-c", "3"}, errNoText},
		{"both modes", []string{"-e", "a", "-d", "b", "-c", "3"}, errBothModes},
		{"no transforms", []string{"-e", "HELLO"}, errNoTransforms},
		{"bad caesar key", []string{"-e", "HELLO", "-c", "three"}, cipher.ErrInvalidKey},
		{"non-invertible multiplier", []string{"-e", "HELLO", "-m", "13"}, cipher.ErrNotInvertible},
		{"short substitution key", []string{"-e", "HELLO", "-s", "ABC"}, cipher.ErrKeyLength},
		{"empty vigenere key", []string{"-e", "HELLO", "-v", ""}, cipher.ErrEmptyKey},
		{"lossy with verify", []string{"-e", "Hello", "-c", "3", "--verify"}, pipeline.ErrNotReversible},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := run(t, tt.args...)
			if !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
			if stdout != "" {
				t.Errorf("unexpected output %q", stdout)
			}
		})
	}
}

func TestRoot_ConfigurationErrorsShareSentinel(t *testing.T) {
	_, _, err := run(t, "-e", "HELLO", "-a", "-1")
	if !errors.Is(err, cipher.ErrConfiguration) {
		t.Errorf("got %v, want ErrConfiguration", err)
	}
}

func TestRoot_VerifyAcceptsReversible(t *testing.T) {
	if _, _, err := run(t, "-e", "HELLO", "-c", "3", "--verify"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRoot_LogLevel(t *testing.T) {
	_, stderr, err := run(t, "-e", "HELLO", "-c", "3", "--log-level", "debug")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr, "stage applied") {
		t.Errorf("debug log missing from stderr: %q", stderr)
	}

	_, _, err = run(t, "-e", "HELLO", "-c", "3", "--log-level", "chatty")
	if err == nil {
		t.Error("expected an error for an unknown log level")
	}
}

// ────────────────────────────────────────────────────────────────────────────
// Subcommands
// ────────────────────────────────────────────────────────────────────────────

func TestInspect(t *testing.T) {
	stdout, _, err := run(t, "inspect", "-r", "--vig", "LEMON", "--tra", "8")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"encrypt:     vigenere -> transposition -> reverse\n",
		"decrypt:     reverse -> transposition -> vigenere\n",
		"fingerprint: c15811f7",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output %q does not contain %q", stdout, want)
		}
	}
}

func TestInspect_NoTransforms(t *testing.T) {
	if _, _, err := run(t, "inspect"); !errors.Is(err, errNoTransforms) {
		t.Errorf("got %v, want errNoTransforms", err)
	}
}

func TestVersion(t *testing.T) {
	stdout, _, err := run(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(stdout, "crypto "+Version+"\n") {
		t.Errorf("unexpected output %q", stdout)
	}
}
