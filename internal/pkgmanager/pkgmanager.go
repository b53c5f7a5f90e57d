// Package pkgmanager maps the supported Linux package managers to their
// install and cleanup shell commands.
package pkgmanager

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownManager is returned for package managers outside the supported set.
var ErrUnknownManager = errors.New("unrecognized package manager")

// Manager identifies a Linux package-manager family.
type Manager string

const (
	Apt Manager = "apt"
	Yum Manager = "yum"
)

// Commands holds the shell command templates for one manager. Install and
// Remove contain a {pkgs} placeholder filled in by Render.
type Commands struct {
	Install string
	Remove  string
	Clean   string
}

var commands = map[Manager]Commands{
	Apt: {
		Install: "apt-get update -qq && apt-get install -yq --no-install-recommends {pkgs}",
		Remove:  "apt-get purge -y --auto-remove {pkgs}",
		Clean:   "apt-get clean\n&& rm -rf /var/lib/apt/lists/*",
	},
	Yum: {
		Install: "yum install -y -q {pkgs}",
		Remove:  "yum remove -y -q {pkgs}",
		Clean:   "yum clean packages\n&& rm -rf /var/cache/yum/* /tmp/* /var/tmp/*",
	},
}

// ManagerCommands returns the command templates for mgr.
func ManagerCommands(mgr Manager) (Commands, error) {
	cmds, ok := commands[mgr]
	if !ok {
		return Commands{}, fmt.Errorf("%w: %q (supported: apt, yum)", ErrUnknownManager, string(mgr))
	}
	return cmds, nil
}

// Render substitutes the package list into a command template.
func Render(template, pkgs string) string {
	return strings.ReplaceAll(template, "{pkgs}", pkgs)
}

// Set implements pflag.Value so a Manager can be bound as a CLI flag.
func (m *Manager) Set(s string) error {
	v := Manager(strings.ToLower(s))
	if _, ok := commands[v]; !ok {
		return fmt.Errorf("%w: %q (supported: apt, yum)", ErrUnknownManager, s)
	}
	*m = v
	return nil
}

func (m *Manager) String() string { return string(*m) }

// Type implements pflag.Value.
func (m *Manager) Type() string { return "pkg-manager" }
