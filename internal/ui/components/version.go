// Package components provides reusable UI components for the score tools.
//
// This file provides version information and header rendering.
package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Build information - these are set via ldflags during build
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// VersionInfo returns "vX" with a short commit suffix when one is known.
func VersionInfo() string {
	info := fmt.Sprintf("v%s", Version)
	if GitCommit != "unknown" && len(GitCommit) > 7 {
		info += fmt.Sprintf(" (%s)", GitCommit[:7])
	}
	return info
}

// RenderHeader renders the title line and a subtitle with the version and the
// directory the tool works in.
func RenderHeader(title, dir string) string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7D56F4")).
		Bold(true).
		MarginTop(1).
		MarginBottom(0).
		MarginLeft(2)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		MarginLeft(2).
		MarginBottom(1)

	return fmt.Sprintf("%s\n%s\n",
		titleStyle.Render(title),
		subtitleStyle.Render(fmt.Sprintf("%s · %s", VersionInfo(), dir)))
}
