package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/leseparadies/ladenctl/internal/inventory"
)

// ShopItem represents a book in the storefront list. InvIndex is the
// position of the book in the backing inventory, so cart operations keep
// working while the visible list is filtered.
type ShopItem struct {
	Book     inventory.Book
	InvIndex int
}

// FilterValue returns a string used for filtering in the list
func (s ShopItem) FilterValue() string {
	return fmt.Sprintf("%s %s %s", s.Book.Title, s.Book.Author, s.Book.Category)
}

// Custom list item delegate for rendering shop books
type shopDelegate struct{}

func (d shopDelegate) Height() int  { return 1 }
func (d shopDelegate) Spacing() int { return 0 }
func (d shopDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

func (d shopDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	shopItem, ok := item.(ShopItem)
	if !ok {
		return
	}

	book := shopItem.Book

	var s strings.Builder

	title := fmt.Sprintf("%-32s", truncate(book.Title, 32))
	author := fmt.Sprintf("%-22s", truncate(book.Author, 22))
	price := fmt.Sprintf("%9s €", inventory.FormatPrice(book.Price))

	marker := ""
	switch {
	case book.Forbidden:
		marker = " " + StyleForbidden.Render("[VERBOTEN]")
	case book.Restricted:
		marker = " " + StyleRestricted.Render("[INDIZIERT FSK18]")
	}

	category := " " + StyleCategory.Render(book.Category)

	isSelected := index == m.Index()

	if isSelected {
		s.WriteString(StyleHighlight.Render("› " + title + " " + author + " " + price))
		s.WriteString(marker + category)
	} else {
		s.WriteString("  " + StyleNormal.Render(title) + " " + StyleHelp.Render(author) + " " + StylePrice.Render(price))
		s.WriteString(marker + category)
	}

	_, _ = fmt.Fprint(w, s.String())
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
