package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leseparadies/ladenctl/internal/cart"
	"github.com/leseparadies/ladenctl/internal/inventory"
)

// storefront modes
type storeMode int

const (
	modeBrowse storeMode = iota
	modeCart
	modeConfirmAge
	modeReceipt
)

// shopKeyMap defines keyboard shortcuts for the storefront
type shopKeyMap struct {
	quit     key.Binding
	cycle    key.Binding
	add      key.Binding
	cartView key.Binding
	filter   key.Binding
}

var shopKeys = shopKeyMap{
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "beenden"),
	),
	cycle: key.NewBinding(
		key.WithKeys("tab", "s"),
		key.WithHelp("tab", "auswahl wechseln"),
	),
	add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "in den warenkorb"),
	),
	cartView: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "warenkorb"),
	),
	filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "suchen"),
	),
}

// storefrontModel holds the state for the interactive shop
type storefrontModel struct {
	inv      *inventory.Inventory
	crt      *cart.Cart
	shopName string

	list      list.Model
	selectors []string
	selIdx    int

	mode       storeMode
	pendingIdx int // inventory index awaiting age confirmation
	cartCursor int
	receipt    string
	status     string

	width     int
	height    int
	activeCmd string
	quitting  bool
}

func newStorefront(inv *inventory.Inventory, crt *cart.Cart, shopName string) storefrontModel {
	selectors := []string{inventory.SelectorAll}
	selectors = append(selectors, inv.Categories()...)
	selectors = append(selectors, inventory.SelectorRestricted, inventory.SelectorForbidden)

	l := list.New(nil, shopDelegate{}, 0, 0)
	l.Title = shopName
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	l.Styles.Title = StyleHeader
	l.Styles.PaginationStyle = StyleHelp
	l.Styles.HelpStyle = StyleHelp

	m := storefrontModel{
		inv:        inv,
		crt:        crt,
		shopName:   shopName,
		list:       l,
		selectors:  selectors,
		pendingIdx: -1,
	}
	m.rebuildItems()
	return m
}

// rebuildItems refreshes the visible list for the active selector.
// Filtered views are order-preserving subsequences of the stock, so the
// inventory index of each visible book can be recovered by a single
// forward scan even when the stock holds duplicates.
func (m *storefrontModel) rebuildItems() {
	selector := m.selectors[m.selIdx]
	view := m.inv.FilterBySelector(selector)
	idxs := matchIndices(m.inv.Books, view)

	items := make([]list.Item, len(view))
	for i, b := range view {
		items[i] = ShopItem{Book: b, InvIndex: idxs[i]}
	}
	m.list.SetItems(items)
	m.list.ResetSelected()
}

// matchIndices maps each book of the view back to its position in the
// stock slice. The view must be an order-preserving subsequence.
func matchIndices(stock, view []inventory.Book) []int {
	idxs := make([]int, len(view))
	j := 0
	for i, b := range view {
		for j < len(stock) && stock[j] != b {
			j++
		}
		if j < len(stock) {
			idxs[i] = j
			j++
		} else {
			idxs[i] = -1
		}
	}
	return idxs
}

func (m storefrontModel) Init() tea.Cmd {
	return nil
}

func (m storefrontModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ClearActiveCmdMsg:
		m.activeCmd = ""
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, v := StyleBorder.GetFrameSize()
		// Leave room for the selector line and footer.
		m.list.SetSize(msg.Width-h, msg.Height-v-4)
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeConfirmAge:
			return m.updateConfirmAge(msg)
		case modeCart:
			return m.updateCart(msg)
		case modeReceipt:
			// Any key returns to browsing.
			m.mode = modeBrowse
			m.receipt = ""
			return m, nil
		}
		return m.updateBrowse(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m storefrontModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Don't handle shortcuts while the list filter input is open
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, shopKeys.quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, shopKeys.cycle):
		m.selIdx = (m.selIdx + 1) % len(m.selectors)
		m.rebuildItems()
		m.status = ""
		m.activeCmd = "tab"
		return m, HighlightCmd()

	case key.Matches(msg, shopKeys.cartView):
		m.mode = modeCart
		m.cartCursor = 0
		m.status = ""
		return m, nil

	case key.Matches(msg, shopKeys.add):
		item, ok := m.list.SelectedItem().(ShopItem)
		if !ok {
			return m, nil
		}
		if item.Book.Restricted && !item.Book.Forbidden {
			// Age gate: the add waits for a yes/no answer.
			m.mode = modeConfirmAge
			m.pendingIdx = item.InvIndex
			return m, nil
		}
		err := m.crt.Add(item.InvIndex, nil)
		switch {
		case errors.Is(err, cart.ErrNotForSale):
			m.status = StyleForbidden.Render("Dieses Buch ist VERBOTEN und kann nicht verkauft werden.")
		case err != nil:
			m.status = StyleForbidden.Render(err.Error())
		default:
			m.status = StylePrice.Render(fmt.Sprintf("'%s' liegt im Warenkorb.", item.Book.Title))
			m.activeCmd = "a"
			return m, HighlightCmd()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m storefrontModel) updateConfirmAge(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "J", "y", "Y", "enter":
		err := m.crt.Add(m.pendingIdx, func(inventory.Book) bool { return true })
		if err != nil {
			m.status = StyleForbidden.Render(err.Error())
		} else {
			b := m.inv.Books[m.pendingIdx]
			m.status = StylePrice.Render(fmt.Sprintf("'%s' liegt im Warenkorb.", b.Title))
		}
		m.mode = modeBrowse
		m.pendingIdx = -1
		return m, nil

	case "n", "N", "esc":
		m.status = StyleHelp.Render("Altersbestätigung abgelehnt, Buch nicht hinzugefügt.")
		m.mode = modeBrowse
		m.pendingIdx = -1
		return m, nil
	}
	return m, nil
}

func (m storefrontModel) updateCart(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := m.crt.Len()
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "esc", "c":
		m.mode = modeBrowse
		return m, nil

	case "up", "k":
		if m.cartCursor > 0 {
			m.cartCursor--
		}
		return m, nil

	case "down", "j":
		if m.cartCursor < n-1 {
			m.cartCursor++
		}
		return m, nil

	case "x":
		if n == 0 {
			return m, nil
		}
		_ = m.crt.Remove(m.cartCursor)
		if m.cartCursor >= m.crt.Len() && m.cartCursor > 0 {
			m.cartCursor--
		}
		return m, nil

	case "enter":
		if n == 0 {
			return m, nil
		}
		total := m.crt.Total()
		m.receipt = fmt.Sprintf("Vielen Dank für Ihren Einkauf! Gesamtsumme: %s €", inventory.FormatPrice(total))
		m.crt.Clear()
		m.mode = modeReceipt
		return m, nil
	}
	return m, nil
}

func (m storefrontModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.mode {
	case modeCart:
		return m.viewCart()
	case modeConfirmAge:
		return m.viewConfirmAge()
	case modeReceipt:
		return m.viewReceipt()
	}
	return m.viewBrowse()
}

func (m storefrontModel) viewBrowse() string {
	var b strings.Builder

	selLine := StyleHelp.Render("Auswahl: ") + StyleCategory.Render(m.selectors[m.selIdx])
	cartLine := StyleHelp.Render(fmt.Sprintf("  ·  Warenkorb: %d Artikel", m.crt.Len()))
	b.WriteString(selLine + cartLine)
	b.WriteString("\n")
	b.WriteString(m.list.View())
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.status)
	}
	b.WriteString("\n")
	b.WriteString(RenderFooterBar([]ShortcutEntry{
		{Key: "a", Label: "a kaufen"},
		{Key: "tab", Label: "tab auswahl"},
		{Key: "", Label: "c warenkorb"},
		{Key: "", Label: "/ suchen"},
		{Key: "", Label: "q beenden"},
	}, m.activeCmd))

	return StyleBorder.Render(b.String())
}

func (m storefrontModel) viewConfirmAge() string {
	b := m.inv.Books[m.pendingIdx]

	var s strings.Builder
	s.WriteString(StyleHeader.Render("Altersprüfung"))
	s.WriteString("\n\n")
	s.WriteString(StyleNormal.Render(b.Label()))
	s.WriteString("\n\n")
	s.WriteString(StyleRestricted.Render("Dieses Buch ist indiziert (FSK 18)."))
	s.WriteString("\n")
	s.WriteString(StyleHighlight.Render("Sind Sie mindestens 18 Jahre alt? "))
	s.WriteString(StyleHelp.Render("j/n"))

	outer := lipgloss.NewStyle().Padding(2, 4)
	return outer.Render(StyleBorder.Render(lipgloss.NewStyle().Padding(1, 2).Render(s.String())))
}

func (m storefrontModel) viewCart() string {
	books := m.crt.Books()

	var s strings.Builder
	s.WriteString(StyleHeader.Render("Warenkorb"))
	s.WriteString("\n\n")

	if len(books) == 0 {
		s.WriteString(StyleHelp.Render("Der Warenkorb ist leer."))
		s.WriteString("\n")
	} else {
		for i, b := range books {
			line := b.Label()
			if i == m.cartCursor {
				s.WriteString(StyleHighlight.Render("› " + line))
			} else {
				s.WriteString("  " + StyleNormal.Render(line))
			}
			s.WriteString("\n")
		}
		s.WriteString("\n")
		s.WriteString(StylePrice.Render(fmt.Sprintf("Gesamtsumme: %s €", inventory.FormatPrice(m.crt.Total()))))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(RenderFooterBar([]ShortcutEntry{
		{Key: "", Label: "enter bezahlen"},
		{Key: "", Label: "x entfernen"},
		{Key: "", Label: "esc zurück"},
		{Key: "", Label: "q beenden"},
	}, ""))

	outer := lipgloss.NewStyle().Padding(1, 2)
	return outer.Render(StyleBorder.Render(lipgloss.NewStyle().Padding(1, 2).Render(s.String())))
}

func (m storefrontModel) viewReceipt() string {
	var s strings.Builder
	s.WriteString(StyleHeader.Render(m.shopName))
	s.WriteString("\n\n")
	s.WriteString(StylePrice.Render(m.receipt))
	s.WriteString("\n\n")
	s.WriteString(StyleHelp.Render("Beliebige Taste drücken, um weiter zu stöbern."))

	outer := lipgloss.NewStyle().Padding(2, 4)
	return outer.Render(StyleBorder.Render(lipgloss.NewStyle().Padding(1, 2).Render(s.String())))
}

// RunStorefront launches the interactive shop over the given inventory
// and cart. It blocks until the user quits.
func RunStorefront(inv *inventory.Inventory, crt *cart.Cart, shopName string) error {
	m := newStorefront(inv, crt, shopName)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
