package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/restitch/cli/internal/batch"
	"github.com/restitch/cli/internal/stats"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// RenderBatchReport returns a formatted summary of a batch run.
func RenderBatchReport(report *batch.Report) string {
	if report == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("🔧 Rewrite Summary"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", 40))
	b.WriteString("\n")
	if report.Recipe != "" {
		fmt.Fprintf(&b, "Recipe:   %s\n", report.Recipe)
	}
	fmt.Fprintf(&b, "Total:    %d\n", report.Total)
	fmt.Fprintf(&b, "Modified: %s\n", successStyle.Render(fmt.Sprintf("%d", report.Modified)))
	fmt.Fprintf(&b, "Skipped:  %d\n", report.Skipped)
	if report.Missing > 0 {
		fmt.Fprintf(&b, "Missing:  %d\n", report.Missing)
	}
	if report.Failed > 0 {
		fmt.Fprintf(&b, "Failed:   %s\n", warnStyle.Render(fmt.Sprintf("%d", report.Failed)))
	}

	var modified, failed []batch.FileReport
	for _, fr := range report.Files {
		switch {
		case fr.Err != "":
			failed = append(failed, fr)
		case fr.Outcome == "modified":
			modified = append(modified, fr)
		}
	}
	if len(modified) > 0 {
		b.WriteString("\nModified files:\n")
		for _, fr := range modified {
			fmt.Fprintf(&b, "  ✓ %s\n", fr.Path)
		}
	}
	if len(failed) > 0 {
		b.WriteString("\nFailures:\n")
		for _, fr := range failed {
			fmt.Fprintf(&b, "  ✗ %s: %s\n", fr.Path, fr.Err)
		}
	}
	return b.String()
}

// RenderStats returns a formatted codebase statistics report.
func RenderStats(report *stats.Report) string {
	if report == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("📊 Codebase Statistics"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", 40))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Total Files: %d\n", report.Code.TotalFiles)
	fmt.Fprintf(&b, "Total Lines: %d\n", report.Code.TotalLines)
	fmt.Fprintf(&b, "Test Files:  %d\n", report.Code.TestFiles)
	fmt.Fprintf(&b, "Test Lines:  %d\n", report.Code.TestLines)

	b.WriteString("\n")
	b.WriteString(headerStyle.Render("📁 By File Type"))
	b.WriteString("\n")
	for _, ext := range stats.SortedKeys(report.Code.ByExtension) {
		c := report.Code.ByExtension[ext]
		if c.Files == 0 {
			continue
		}
		fmt.Fprintf(&b, "%-10s %5d files %8d lines\n", ext, c.Files, c.Lines)
	}

	if len(report.Code.ByModule) > 0 {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("🏗️ By Module"))
		b.WriteString("\n")
		for _, module := range stats.SortedKeys(report.Code.ByModule) {
			c := report.Code.ByModule[module]
			if c.Files == 0 {
				continue
			}
			fmt.Fprintf(&b, "%-15s %5d files %8d lines\n", module, c.Files, c.Lines)
		}
	}

	if len(report.Code.ByLanguage) > 0 {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("🗣️ By Language"))
		b.WriteString("\n")
		for _, lang := range stats.SortedKeys(report.Code.ByLanguage) {
			c := report.Code.ByLanguage[lang]
			fmt.Fprintf(&b, "%-15s %5d files %8d lines\n", lang, c.Files, c.Lines)
		}
	}

	b.WriteString("\n")
	b.WriteString(headerStyle.Render("🗄️ Database Schema"))
	b.WriteString("\n")
	if report.Database.Found {
		fmt.Fprintf(&b, "Models: %d\n", report.Database.Models)
		fmt.Fprintf(&b, "Enums:  %d\n", report.Database.Enums)
		fmt.Fprintf(&b, "Lines:  %d\n", report.Database.Lines)
	} else {
		b.WriteString(dimStyle.Render("No Prisma schema found"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(headerStyle.Render("📦 Dependencies"))
	b.WriteString("\n")
	if report.Dependencies.Found {
		fmt.Fprintf(&b, "Production: %d\n", report.Dependencies.Dependencies)
		fmt.Fprintf(&b, "Dev:        %d\n", report.Dependencies.DevDependencies)
		fmt.Fprintf(&b, "Total:      %d\n", report.Dependencies.Total)
	} else {
		b.WriteString(dimStyle.Render("No package.json found"))
		b.WriteString("\n")
	}
	return b.String()
}
