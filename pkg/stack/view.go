package stack

import (
	"github.com/matzehuels/cardstack/pkg/cards"
	"github.com/matzehuels/cardstack/pkg/layout"
)

// Content is what a card displays inside its shell.
type Content int

const (
	// ContentEmpty is a bare shell: background only.
	ContentEmpty Content = iota
	// ContentRow is the icon, the title and a trailing chevron.
	ContentRow
)

func (c Content) String() string {
	if c == ContentRow {
		return "row"
	}
	return "empty"
}

// ItemView is the resolved presentation of one card.
type ItemView struct {
	Index      int
	Role       layout.Role
	Content    Content
	Background string // #rrggbb
	Glyph      string
	Title      string
}

// Present decides what a card shows:
//
//	expanded  role     content  background
//	true      any      row      uniform expanded color
//	false     top      row      card color
//	false     stacked  empty    card color
func Present(expanded bool, role layout.Role, spec cards.Spec) (Content, string) {
	switch {
	case expanded:
		return ContentRow, cards.ExpandedBackground
	case role == layout.Top:
		return ContentRow, spec.BgColor
	default:
		return ContentEmpty, spec.BgColor
	}
}

// View returns the presentation of the card at index for the current state.
func (s *Controller) View(index int) ItemView {
	spec := s.deck[index]
	role := s.roles[index]
	content, bg := Present(s.state.Expanded, role, spec)
	v := ItemView{
		Index:      index,
		Role:       role,
		Content:    content,
		Background: bg,
	}
	if content == ContentRow {
		v.Glyph = spec.Glyph()
		v.Title = spec.Title
	}
	return v
}

// Views returns the presentation of every card in index order.
func (s *Controller) Views() []ItemView {
	out := make([]ItemView, len(s.deck))
	for i := range s.deck {
		out[i] = s.View(i)
	}
	return out
}
