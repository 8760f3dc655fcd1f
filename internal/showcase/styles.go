package showcase

import "github.com/charmbracelet/lipgloss"

var (
	appStyle    = lipgloss.NewStyle().Padding(1, 2)
	helpStyle   = lipgloss.NewStyle().MarginTop(1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)
