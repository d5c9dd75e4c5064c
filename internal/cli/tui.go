package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/narravis/narravis/pkg/graph"
)

// =============================================================================
// SceneListModel - Interactive scene selection
// =============================================================================

// SceneListModel is the bubbletea model for picking a scene to preview.
type SceneListModel struct {
	Scenes   []graph.Scene
	Cursor   int
	Selected int // -1 until a scene is chosen
	Height   int
	Offset   int
}

// NewSceneListModel creates a new scene list model.
func NewSceneListModel(scenes []graph.Scene) SceneListModel {
	return SceneListModel{
		Scenes:   scenes,
		Selected: -1,
		Height:   15,
	}
}

func (m SceneListModel) Init() tea.Cmd {
	return nil
}

func (m SceneListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Scenes)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			m.Selected = m.Cursor
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m SceneListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Scene"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Scenes) {
		end = len(m.Scenes)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		s := m.Scenes[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		title := s.Title
		if title == "" {
			title = fmt.Sprintf("scene %d", i)
		}

		rows = append(rows, []string{
			cursor,
			title,
			s.Archetype,
			fmt.Sprintf("%d", len(s.Nodes)),
			fmt.Sprintf("%d", len(s.Edges)),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Scene", "Archetype", "Nodes", "Edges").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Scenes))))

	return b.String()
}

// pickScene runs the interactive picker and returns the chosen scene index,
// or -1 when the user quit without choosing.
func pickScene(scenes []graph.Scene) (int, error) {
	p := tea.NewProgram(NewSceneListModel(scenes))
	final, err := p.Run()
	if err != nil {
		return -1, fmt.Errorf("scene picker: %w", err)
	}
	m, ok := final.(SceneListModel)
	if !ok {
		return -1, nil
	}
	return m.Selected, nil
}
