package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
	return dir
}

func TestRunMenuSession(t *testing.T) {
	dir := chdirTemp(t)
	input := strings.Join([]string{"1", "Buy milk", "", "errand", "4", "3", "6"}, "\n") + "\n"
	var stdout, stderr bytes.Buffer
	if code := run([]string{"menu"}, strings.NewReader(input), &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d, stderr=%s", code, stderr.String())
	}
	out := stdout.String()
	for _, want := range []string{"Task added successfully.", "Nothing to undo.", "0: Task('Buy milk', due_date=None, tags=['errand'])", "Exiting the program."} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	for _, name := range []string{"config.yaml", filepath.Join("logs", "todo.log"), filepath.Join("logs", "journey.log")} {
		if _, err := os.Stat(filepath.Join(dir, ".todo", name)); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}
	journey, _ := os.ReadFile(filepath.Join(dir, ".todo", "logs", "journey.log"))
	if !strings.Contains(string(journey), "history unlimited") || !strings.Contains(string(journey), `Added "Buy milk"`) || !strings.Contains(string(journey), "Session closed") {
		t.Fatalf("journey log incomplete:\n%s", journey)
	}
}

func TestRunUsesConfiguredPathsAndLimit(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv("TODO_HISTORY_LIMIT", "3")
	var stdout, stderr bytes.Buffer
	if code := run([]string{"menu"}, strings.NewReader("6\n"), &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d, stderr=%s", code, stderr.String())
	}
	logs := filepath.Join(dir, ".todo", "logs")
	diag, err := os.ReadFile(filepath.Join(logs, "todo.log"))
	if err != nil || !strings.Contains(string(diag), "started in menu mode") {
		t.Fatalf("todo.log = %q, err = %v", diag, err)
	}
	journey, _ := os.ReadFile(filepath.Join(logs, "journey.log"))
	if !strings.Contains(string(journey), "history limit 3") {
		t.Fatalf("journey log missing limit:\n%s", journey)
	}
}

func TestRunRejectsUnknownCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"frobnicate"}, strings.NewReader(""), &stdout, &stderr); code != 2 {
		t.Fatalf("exit code = %d, want 2", code)
	}
	if !strings.Contains(stderr.String(), "Usage:") {
		t.Fatalf("stderr missing usage: %s", stderr.String())
	}
}

func TestRunReportsBadConfig(t *testing.T) {
	dir := chdirTemp(t)
	if err := os.MkdirAll(filepath.Join(dir, ".todo"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".todo", "config.yaml"), []byte("ui:\n  mode: gui\n"), 0644); err != nil {
		t.Fatal(err)
	}
	var stdout, stderr bytes.Buffer
	if code := run(nil, strings.NewReader(""), &stdout, &stderr); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "ui.mode") {
		t.Fatalf("stderr = %s", stderr.String())
	}
}

func TestCheckConfig(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	if err := os.WriteFile(good, []byte("version: 1\nowner: Ada\nhistory:\n  limit: 5\n"), 0644); err != nil {
		t.Fatal(err)
	}
	var stdout, stderr bytes.Buffer
	if code := runCheckConfig([]string{good}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d, stderr=%s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "OK: "+good+" (owner Ada, ui menu, history limit 5)") {
		t.Fatalf("stdout = %s", stdout.String())
	}

	stdout.Reset()
	stderr.Reset()
	if code := runCheckConfig(nil, &stdout, &stderr); code != 2 {
		t.Fatalf("missing arg exit code = %d, want 2", code)
	}
	if code := runCheckConfig([]string{filepath.Join(dir, "nope.yaml")}, &stdout, &stderr); code != 1 {
		t.Fatalf("missing file exit code = %d, want 1", code)
	}
}
