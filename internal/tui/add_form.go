package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leseparadies/ladenctl/internal/inventory"
)

// AddFormData holds the book data collected from the user.
type AddFormData struct {
	Title      string
	Author     string
	Category   string
	Price      float64
	Restricted bool
	Forbidden  bool
	ImagePath  string
}

type addFormModel struct {
	inputs     []textinput.Model
	focused    int
	shopName   string
	result     *AddFormData
	err        error
	canceled   bool
	width      int
	height     int
	confirming bool
	activeCmd  string
}

const (
	addFieldTitle = iota
	addFieldAuthor
	addFieldCategory
	addFieldPrice
	addFieldRestricted
	addFieldForbidden
	addFieldImage
)

func newAddForm(shopName string) addFormModel {
	m := addFormModel{
		inputs:   make([]textinput.Model, 7),
		shopName: shopName,
	}

	const fieldWidth = 42

	m.inputs[addFieldTitle] = textinput.New()
	m.inputs[addFieldTitle].Placeholder = "Buchtitel"
	m.inputs[addFieldTitle].Focus()
	m.inputs[addFieldTitle].CharLimit = 200
	m.inputs[addFieldTitle].Width = fieldWidth
	m.inputs[addFieldTitle].Prompt = "│ "

	m.inputs[addFieldAuthor] = textinput.New()
	m.inputs[addFieldAuthor].Placeholder = "Autorin oder Autor"
	m.inputs[addFieldAuthor].CharLimit = 100
	m.inputs[addFieldAuthor].Width = fieldWidth
	m.inputs[addFieldAuthor].Prompt = "│ "

	m.inputs[addFieldCategory] = textinput.New()
	m.inputs[addFieldCategory].Placeholder = "Roman"
	m.inputs[addFieldCategory].CharLimit = 60
	m.inputs[addFieldCategory].Width = fieldWidth
	m.inputs[addFieldCategory].Prompt = "│ "

	m.inputs[addFieldPrice] = textinput.New()
	m.inputs[addFieldPrice].Placeholder = "12,99"
	m.inputs[addFieldPrice].CharLimit = 12
	m.inputs[addFieldPrice].Width = 12
	m.inputs[addFieldPrice].Prompt = "│ "

	m.inputs[addFieldRestricted] = textinput.New()
	m.inputs[addFieldRestricted].Placeholder = "n"
	m.inputs[addFieldRestricted].CharLimit = 1
	m.inputs[addFieldRestricted].Width = 4
	m.inputs[addFieldRestricted].Prompt = "│ "

	m.inputs[addFieldForbidden] = textinput.New()
	m.inputs[addFieldForbidden].Placeholder = "n"
	m.inputs[addFieldForbidden].CharLimit = 1
	m.inputs[addFieldForbidden].Width = 4
	m.inputs[addFieldForbidden].Prompt = "│ "

	m.inputs[addFieldImage] = textinput.New()
	m.inputs[addFieldImage].Placeholder = "optional"
	m.inputs[addFieldImage].CharLimit = 200
	m.inputs[addFieldImage].Width = fieldWidth
	m.inputs[addFieldImage].Prompt = "│ "

	return m
}

func (m addFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// parseJN interprets a j/n style flag field. Empty means no.
func parseJN(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "n":
		return false, nil
	case "j", "y":
		return true, nil
	}
	return false, fmt.Errorf("bitte j oder n eingeben")
}

// parsePrice accepts both the German comma and a decimal point.
func parsePrice(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("ungültiger Preis")
	}
	return v, nil
}

func (m *addFormModel) submit() (tea.Model, tea.Cmd) {
	price, err := parsePrice(m.inputs[addFieldPrice].Value())
	if err != nil {
		m.err = err
		m.confirming = false
		return *m, nil
	}
	restricted, err := parseJN(m.inputs[addFieldRestricted].Value())
	if err != nil {
		m.err = fmt.Errorf("FSK18: %w", err)
		m.confirming = false
		return *m, nil
	}
	forbidden, err := parseJN(m.inputs[addFieldForbidden].Value())
	if err != nil {
		m.err = fmt.Errorf("Verboten: %w", err)
		m.confirming = false
		return *m, nil
	}

	m.result = &AddFormData{
		Title:      m.inputs[addFieldTitle].Value(),
		Author:     m.inputs[addFieldAuthor].Value(),
		Category:   m.inputs[addFieldCategory].Value(),
		Price:      price,
		Restricted: restricted,
		Forbidden:  forbidden,
		ImagePath:  m.inputs[addFieldImage].Value(),
	}
	return *m, tea.Quit
}

func (m addFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ClearActiveCmdMsg:
		m.activeCmd = ""
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.canceled = true
			return m, tea.Quit

		case "enter":
			if m.confirming {
				return m.submit()
			}
			m.confirming = true
			return m, nil

		case "y", "Y", "j", "J":
			if m.confirming {
				return m.submit()
			}

		case "n", "N":
			if m.confirming {
				m.canceled = true
				return m, tea.Quit
			}

		case "tab", "shift+tab", "up", "down":
			if m.confirming {
				return m, nil
			}

			if msg.String() == "up" || msg.String() == "shift+tab" {
				m.focused--
			} else {
				m.focused++
			}

			if m.focused < 0 {
				m.focused = len(m.inputs) - 1
			} else if m.focused >= len(m.inputs) {
				m.focused = 0
			}

			cmds := make([]tea.Cmd, len(m.inputs)+1)
			for i := 0; i < len(m.inputs); i++ {
				if i == m.focused {
					cmds[i] = m.inputs[i].Focus()
				} else {
					m.inputs[i].Blur()
				}
			}
			m.activeCmd = "tab"
			cmds[len(m.inputs)] = HighlightCmd()
			return m, tea.Batch(cmds...)
		}
	}

	cmd := m.updateInputs(msg)
	return m, cmd
}

func (m *addFormModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return tea.Batch(cmds...)
}

func (m addFormModel) View() string {
	outerStyle := lipgloss.NewStyle().Padding(2, 4)

	sepStyle := lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#D0D0D0", Dark: "#444444"})
	formLabel := lipgloss.NewStyle().
		Foreground(ColorGray).
		Width(12).
		Align(lipgloss.Right).
		PaddingRight(1)
	formLabelActive := lipgloss.NewStyle().
		Foreground(ColorYellow).
		Bold(true).
		Width(12).
		Align(lipgloss.Right).
		PaddingRight(1)

	const w = 58
	sep := sepStyle.Render(strings.Repeat("─", w))

	var b strings.Builder

	b.WriteString(StyleHeader.Render("Neues Buch aufnehmen"))
	b.WriteString("\n")
	b.WriteString(StyleHelp.Render(m.shopName))
	b.WriteString("\n\n")
	b.WriteString(sep)
	b.WriteString("\n\n")

	if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
		b.WriteString(errStyle.Render(fmt.Sprintf("Fehler: %v", m.err)))
		b.WriteString("\n\n")
	}

	fields := []string{"Titel", "Autor", "Kategorie", "Preis €", "FSK18 j/n", "Verboten j/n", "Bildpfad"}
	for i, label := range fields {
		if i == m.focused && !m.confirming {
			b.WriteString(formLabelActive.Render("› " + label))
		} else {
			b.WriteString(formLabel.Render(label))
		}
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n\n")
	}

	b.WriteString(sep)
	b.WriteString("\n")

	if m.confirming {
		b.WriteString(StyleHighlight.Render("  Buch speichern? "))
		b.WriteString(StyleHelp.Render("J/n"))
	} else {
		b.WriteString(RenderFooterBar([]ShortcutEntry{
			{Key: "tab", Label: "Tab/↑↓ wechseln"},
			{Key: "enter", Label: "enter speichern"},
			{Key: "", Label: "esc abbrechen"},
		}, m.activeCmd))
	}
	b.WriteString("\n")

	innerPadding := lipgloss.NewStyle().Padding(0, 2, 0, 1)
	return outerStyle.Render(StyleBorder.Render(innerPadding.Render(b.String())))
}

// Book converts the collected form data to an inventory book.
func (d *AddFormData) Book() (inventory.Book, error) {
	b, err := inventory.NewBook(d.Title, d.Author, d.Category, d.Price)
	if err != nil {
		return inventory.Book{}, err
	}
	b.Restricted = d.Restricted
	b.Forbidden = d.Forbidden
	b.ImagePath = d.ImagePath
	return b, nil
}

// RunAddForm launches an interactive form for entering a new book.
// Returns the filled form data, or error if canceled.
func RunAddForm(shopName string) (*AddFormData, error) {
	m := newAddForm(shopName)
	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running form: %w", err)
	}

	fm, ok := finalModel.(addFormModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}

	if fm.canceled {
		return nil, fmt.Errorf("abgebrochen")
	}

	if fm.result == nil {
		return nil, fmt.Errorf("no data collected")
	}

	return fm.result, nil
}
