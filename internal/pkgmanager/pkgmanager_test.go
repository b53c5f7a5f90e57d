package pkgmanager

import (
	"errors"
	"strings"
	"testing"
)

func TestManagerCommandsApt(t *testing.T) {
	cmds, err := ManagerCommands(Apt)
	if err != nil {
		t.Fatalf("ManagerCommands(Apt) failed: %v", err)
	}
	if !strings.Contains(cmds.Install, "apt-get install -yq --no-install-recommends {pkgs}") {
		t.Errorf("unexpected apt install template: %q", cmds.Install)
	}
	if !strings.Contains(cmds.Clean, "apt-get clean") ||
		!strings.Contains(cmds.Clean, "/var/lib/apt/lists/*") {
		t.Errorf("unexpected apt clean template: %q", cmds.Clean)
	}
}

func TestManagerCommandsYum(t *testing.T) {
	cmds, err := ManagerCommands(Yum)
	if err != nil {
		t.Fatalf("ManagerCommands(Yum) failed: %v", err)
	}
	if !strings.Contains(cmds.Install, "yum install -y -q {pkgs}") {
		t.Errorf("unexpected yum install template: %q", cmds.Install)
	}
	if !strings.Contains(cmds.Clean, "yum clean packages") {
		t.Errorf("unexpected yum clean template: %q", cmds.Clean)
	}
}

func TestManagerCommandsUnknown(t *testing.T) {
	_, err := ManagerCommands(Manager("pacman"))
	if !errors.Is(err, ErrUnknownManager) {
		t.Errorf("expected ErrUnknownManager, got %v", err)
	}
}

func TestRender(t *testing.T) {
	got := Render("apt-get install {pkgs}", "libxext6 libxt6")
	want := "apt-get install libxext6 libxt6"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestManagerFlagValue(t *testing.T) {
	var m Manager
	if err := m.Set("yum"); err != nil {
		t.Fatalf("Set(yum) failed: %v", err)
	}
	if m != Yum {
		t.Errorf("Set(yum) = %v, want %v", m, Yum)
	}
	if err := m.Set("APT"); err != nil {
		t.Fatalf("Set(APT) failed: %v", err)
	}
	if m != Apt {
		t.Errorf("Set(APT) = %v, want %v", m, Apt)
	}

	if err := m.Set("brew"); !errors.Is(err, ErrUnknownManager) {
		t.Errorf("Set(brew) expected ErrUnknownManager, got %v", err)
	}
	if m != Apt {
		t.Errorf("failed Set must not modify the value, got %v", m)
	}

	if m.String() != "apt" {
		t.Errorf("String() = %q, want %q", m.String(), "apt")
	}
	if m.Type() != "pkg-manager" {
		t.Errorf("Type() = %q, want %q", m.Type(), "pkg-manager")
	}
}
