package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/ytget/wallgrid/internal/model"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#007BFF"))
	idStyle       = lipgloss.NewStyle().Faint(true)
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// renderRecord formats one catalog line: title, category and id
func renderRecord(rec model.ImageRecord, titleWidth int) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Width(titleWidth).Render(rec.Title),
		categoryStyle.Width(16).Render(rec.Category),
		idStyle.Render(rec.ID),
	)
}

func titleColumnWidth(records []model.ImageRecord) int {
	width := 8
	for _, rec := range records {
		if w := lipgloss.Width(rec.Title) + 2; w > width {
			width = w
		}
	}
	if width > 40 {
		width = 40
	}
	return width
}

// PrintError writes a styled error line to stderr
func PrintError(err error) {
	printError(os.Stderr, err)
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, errorStyle.Render("❌ Error:"), err)
}
