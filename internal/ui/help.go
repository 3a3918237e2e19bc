package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"pageview/internal/domain"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys KeyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keys KeyMap) *HelpRenderer {
	return &HelpRenderer{keys: keys}
}

// RenderHelpContent generates the long help shown in the pager
func (r *HelpRenderer) RenderHelpContent(mode domain.Mode) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("pageview Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Mouse"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %-12s %s\n", keyStyle.Render("drag"), descStyle.Render("Swipe the page left or right")))
	help.WriteString(fmt.Sprintf("  %-12s %s\n", keyStyle.Render("release"), descStyle.Render("Turn the page once past the threshold, otherwise snap back")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Keys"))
	help.WriteString("\n")
	for _, group := range r.keys.FullHelp() {
		for _, b := range group {
			h := b.Help()
			help.WriteString(fmt.Sprintf("  %-12s %s\n", keyStyle.Render(h.Key), descStyle.Render(h.Desc)))
		}
	}
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Modes"))
	help.WriteString("\n")
	for _, m := range domain.Modes {
		marker := " "
		if m == mode {
			marker = "*"
		}
		help.WriteString(fmt.Sprintf("  %s %s\n", marker, descStyle.Render(string(m))))
	}
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).
		Render("  Select with -mode or mode = \"...\" in .pageview.toml"))

	return help.String()
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Give ov time to exit before the screen is restored
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
