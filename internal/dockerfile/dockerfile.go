// Package dockerfile holds small helpers for composing Dockerfile text.
package dockerfile

import "strings"

// Indent renders a multi-line shell command under a Dockerfile instruction.
// The keyword is uppercased, continuation lines are aligned under the first
// command character, and every line except the last gets a backslash
// continuation. The command itself is passed through untouched.
func Indent(instruction, cmd string) string {
	instruction = strings.ToUpper(instruction)
	pad := strings.Repeat(" ", len(instruction)+1)

	lines := strings.Split(strings.TrimRight(cmd, "\n"), "\n")
	var sb strings.Builder
	for i, line := range lines {
		line = strings.TrimRight(line, " \t")
		if i == 0 {
			sb.WriteString(instruction)
			sb.WriteString(" ")
		} else {
			sb.WriteString(pad)
		}
		sb.WriteString(line)
		if i != len(lines)-1 {
			sb.WriteString(" \\\n")
		}
	}
	return sb.String()
}
