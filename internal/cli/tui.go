package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/avnlabs/gsgraph/pkg/gsdoc"
)

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// NodeListModel - interactive node browser over a decoded Document
// =============================================================================

// NodeListModel is the bubbletea model for the "inspect" command: a
// scrollable list of a Document's nodes, with enter drilling into a
// detail view of the selected node's parameters and pins.
type NodeListModel struct {
	Doc    gsdoc.Document
	Cursor int
	Offset int
	Height int
	Detail bool
}

// NewNodeListModel creates a node browser over doc.
func NewNodeListModel(doc gsdoc.Document) NodeListModel {
	return NodeListModel{Doc: doc, Height: 15}
}

func (m NodeListModel) Init() tea.Cmd {
	return nil
}

func (m NodeListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.Detail {
				m.Detail = false
				return m, nil
			}
			return m, tea.Quit
		case "up", "k":
			if !m.Detail && m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if !m.Detail && m.Cursor < len(m.Doc.Nodes)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if !m.Detail && len(m.Doc.Nodes) > 0 {
				m.Detail = true
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m NodeListModel) View() string {
	if m.Detail {
		return m.viewDetail()
	}
	return m.viewList()
}

func (m NodeListModel) viewList() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Nodes (%d)", len(m.Doc.Nodes))))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ inspect  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Doc.Nodes) {
		end = len(m.Doc.Nodes)
	}

	rows := make([][]string, 0, end-m.Offset)
	for i := m.Offset; i < end; i++ {
		n := m.Doc.Nodes[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{
			cursor,
			fmt.Sprintf("%d", n.Index),
			n.ClassName,
			fmt.Sprintf("%d", len(n.Parameters)),
			fmt.Sprintf("%d/%d/%d", len(n.InputPins), len(n.OutputPins), len(n.VariablePins)),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Index", "Class", "Params", "In/Out/Var pins").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			return listNormalStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Doc.Nodes))))
	return b.String()
}

func (m NodeListModel) viewDetail() string {
	n := m.Doc.Nodes[m.Cursor]
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Node #%d — %s", n.Index, n.ClassName)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("position (%.0f, %.0f)", n.Position.X, n.Position.Y)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("esc back  q quit"))
	b.WriteString("\n\n")

	writeDataSection(&b, "Parameters", n.Parameters)
	writePinSection(&b, "Input pins", n.InputPins)
	writePinSection(&b, "Output pins", n.OutputPins)
	writePinSection(&b, "Variable pins", n.VariablePins)

	return b.String()
}

func writeDataSection(b *strings.Builder, title string, data []gsdoc.Data) {
	if len(data) == 0 {
		return
	}
	b.WriteString(StyleHighlight.Render(title))
	b.WriteString("\n")
	for _, d := range data {
		fmt.Fprintf(b, "  %s (%s) = %s\n", d.Name, d.Type, d.Display)
	}
	b.WriteString("\n")
}

func writePinSection(b *strings.Builder, title string, pins []gsdoc.Pin) {
	if len(pins) == 0 {
		return
	}
	b.WriteString(StyleHighlight.Render(title))
	b.WriteString("\n")
	for _, p := range pins {
		fmt.Fprintf(b, "  %s\n", p.Name)
		for _, d := range p.Data {
			fmt.Fprintf(b, "    %s (%s) = %s\n", d.Name, d.Type, d.Display)
		}
	}
	b.WriteString("\n")
}
