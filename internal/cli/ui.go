package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/stackdeck/pkg/pipeline"
)

// Terminal colors, ANSI 256.
var (
	colorAccent = lipgloss.Color("39")  // deck blue
	colorOK     = lipgloss.Color("41")  // green
	colorWarn   = lipgloss.Color("214") // amber
	colorLink   = lipgloss.Color("117") // commands
	colorText   = lipgloss.Color("255")
	colorLabel  = lipgloss.Color("246")
	colorFaint  = lipgloss.Color("240")
)

// Styles shared by the commands.
var (
	StyleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	StyleHighlight = lipgloss.NewStyle().Foreground(colorAccent)
	StyleNumber    = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	StyleValue     = lipgloss.NewStyle().Foreground(colorText)
	StyleDim       = lipgloss.NewStyle().Foreground(colorFaint)
	StyleWarning   = lipgloss.NewStyle().Foreground(colorWarn)
)

var (
	styleIconOK      = lipgloss.NewStyle().Foreground(colorOK)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorAccent)
	styleLabel       = lipgloss.NewStyle().Foreground(colorLabel).Width(12)
	styleCommand     = lipgloss.NewStyle().Foreground(colorLink)
)

// status prints one line led by a styled icon.
func status(icon lipgloss.Style, glyph, format string, args ...any) {
	fmt.Println(icon.Render(glyph) + " " + fmt.Sprintf(format, args...))
}

func printSuccess(format string, args ...any) { status(styleIconOK, "✓", format, args...) }

func printInfo(format string, args ...any) { status(StyleDim, "›", format, args...) }

func printWarning(format string, args ...any) {
	status(StyleWarning, "!", "%s", StyleWarning.Render(fmt.Sprintf(format, args...)))
}

// printDetail prints an indented secondary line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a path the command wrote.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render("→") + " " + StyleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Println(styleLabel.Render(key) + " " + StyleValue.Render(value))
}

// printStats prints "N slides · N shapes · N text boxes · cached|fresh".
func printStats(st pipeline.Stats, cached bool) {
	parts := []string{
		StyleDim.Render(fmt.Sprintf("%d slides", st.Slides)),
		StyleDim.Render(fmt.Sprintf("%d shapes", st.Shapes)),
		StyleDim.Render(fmt.Sprintf("%d text boxes", st.TextBoxes)),
	}
	if cached {
		parts = append(parts, styleIconOK.Render("cached"))
	} else {
		parts = append(parts, StyleDim.Render("fresh"))
	}
	fmt.Println("  " + strings.Join(parts, StyleDim.Render(" · ")))
}

// printNextStep suggests a follow-up command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}
