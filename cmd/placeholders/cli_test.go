package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/aellingwood/placeholders/internal/icon"
)

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "placeholders" {
		t.Errorf("expected root command Use to be 'placeholders', got %q", rootCmd.Use)
	}

	nameSet := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		nameSet[cmd.Name()] = true
	}
	if !nameSet["version"] {
		t.Error("expected root command to have subcommand \"version\"")
	}
}

func TestRootHasNoFlags(t *testing.T) {
	// cobra adds "help" on its own.
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Name != "help" {
			t.Errorf("unexpected flag %q", f.Name)
		}
	})
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		t.Errorf("unexpected persistent flag %q", f.Name)
	})
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	defer versionCmd.SetOut(nil)

	if err := versionCmd.RunE(versionCmd, nil); err != nil {
		t.Fatalf("version: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "placeholders dev") {
		t.Errorf("expected version line, got %q", out)
	}
	if !strings.Contains(out, "commit: unknown") {
		t.Errorf("expected commit line, got %q", out)
	}
}

func TestRootGeneratesIcons(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, outputDir), 0o755); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{})
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	}()

	if err := Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	for _, s := range icon.Companies {
		if _, err := os.Stat(filepath.Join(dir, outputDir, s.Filename)); err != nil {
			t.Errorf("expected %s to exist: %v", s.Filename, err)
		}
		if !strings.Contains(buf.String(), "public/"+s.Filename) {
			t.Errorf("expected output to mention %s", s.Filename)
		}
	}
}

func TestRootMissingOutputDir(t *testing.T) {
	chdir(t, t.TempDir())

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{})
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	}()

	err := Execute()
	if !errors.Is(err, icon.ErrIO) {
		t.Fatalf("expected ErrIO, got %v", err)
	}
	if strings.Contains(buf.String(), "successfully") {
		t.Error("summary line printed despite failure")
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
