package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestGenerateToStdout(t *testing.T) {
	out, err := runCommand(t, "generate", "--no-check-urls")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	for _, want := range []string{
		"# Install MCR and SPM12",
		"libxext6 libxt6",
		"WORKDIR /opt",
		"FORCE_SPMMCR=1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestGenerateYum(t *testing.T) {
	out, err := runCommand(t, "generate", "--no-check-urls", "--pkg-manager", "yum")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if !strings.Contains(out, "libXext.x86_64 libXt.x86_64") {
		t.Errorf("output missing yum package list:\n%s", out)
	}
}

func TestGenerateUnsupportedVersion(t *testing.T) {
	if _, err := runCommand(t, "generate", "--no-check-urls", "--version", "8"); err == nil {
		t.Errorf("expected error for unsupported SPM version")
	}
}

func TestGenerateRejectsUnknownManagerFlag(t *testing.T) {
	if _, err := runCommand(t, "generate", "--no-check-urls", "--pkg-manager", "brew"); err == nil {
		t.Errorf("expected flag parse error for unknown package manager")
	}
}

func TestGenerateFromSpecFile(t *testing.T) {
	dir := t.TempDir()
	specPath := filepath.Join(dir, "spec.yaml")
	spec := "pkg_manager: apt\ncheck_urls: false\nspm:\n  version: \"12\"\n  matlab_version: R2012a\n"
	if err := os.WriteFile(specPath, []byte(spec), 0644); err != nil {
		t.Fatalf("writing spec: %v", err)
	}

	outPath := filepath.Join(dir, "Dockerfile.part")
	if _, err := runCommand(t, "generate", "-f", specPath, "-o", outPath); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(data), "MCR_Runtime/R2012a/MCR_R2012a_glnxa64_installer.zip") {
		t.Errorf("R2012a must use the legacy MCR URL layout:\n%s", data)
	}
}

func TestGenerateSaveSpec(t *testing.T) {
	dir := t.TempDir()
	savePath := filepath.Join(dir, "resolved.yaml")
	if _, err := runCommand(t, "generate", "--no-check-urls", "--save-spec", savePath); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	data, err := os.ReadFile(savePath)
	if err != nil {
		t.Fatalf("reading saved spec: %v", err)
	}
	if !strings.Contains(string(data), "pkg_manager: apt") ||
		!strings.Contains(string(data), "matlab_version: R2017a") {
		t.Errorf("unexpected saved spec:\n%s", data)
	}
}
