// Package export renders menus and shopping lists as RTF documents so they
// can be opened by any word processor.
package export

import (
	"bytes"
	"fmt"
	"strings"
)

const (
	rtfHeader  = `{\rtf1\ansi\deff0 {\fonttbl {\f0 Times New Roman;}}\fs28` + "\n"
	rtfFooter  = "}\n"
	rtfNewline = `\line` + "\n"
)

type (
	// Document is a rendered file ready to be sent as a download.
	Document struct {
		Filename    string
		ContentType string
		Content     []byte
	}

	// MenuDay is one line of the menu: a weekday and the recipe scheduled
	// on it, empty when nothing is planned.
	MenuDay struct {
		Weekday string
		Recipe  string
	}

	Item struct {
		Text    string
		Flagged bool
	}

	// Category groups shopping list items. An empty Name means
	// uncategorized.
	Category struct {
		Name  string
		Items []Item
	}
)

// ItemText formats one shopping list line, e.g. "2.5 cups of milk".
func ItemText(quantity float64, units, name string) string {
	return fmt.Sprintf("%g %s of %s", quantity, units, name)
}

// Menu renders the week's menu, one weekday per line.
func Menu(weekStart string, days []MenuDay) Document {
	var buf bytes.Buffer
	buf.WriteString(rtfHeader)
	buf.WriteString(escape("Menu for the week of "+weekStart) + rtfNewline + rtfNewline)

	for _, day := range days {
		// Wednesday is long enough to reach the second tab stop on
		// its own, every other weekday needs two tabs to line up.
		tabs := `\tab \tab `
		if day.Weekday == "Wednesday" {
			tabs = `\tab `
		}
		buf.WriteString(escape(day.Weekday+":") + tabs + escape(day.Recipe) + rtfNewline)
	}

	buf.WriteString(rtfFooter)
	return Document{
		Filename:    "menu-" + weekStart + ".rtf",
		ContentType: "application/rtf",
		Content:     buf.Bytes(),
	}
}

// ShoppingList renders the aggregated shopping list grouped by ingredient
// category. Items whose quantities could not be fully combined are marked
// with an asterisk and explained in a footnote.
func ShoppingList(start, end string, categories []Category) Document {
	var buf bytes.Buffer
	buf.WriteString(rtfHeader)
	buf.WriteString(escape(fmt.Sprintf("Shopping list for %s to %s", start, end)) + rtfNewline + rtfNewline)

	flagged := false
	for _, category := range categories {
		header := "********"
		if category.Name != "" {
			header = "****" + category.Name + "****"
		}
		buf.WriteString(escape(header) + rtfNewline)

		for _, item := range category.Items {
			text := item.Text
			if item.Flagged {
				text += " *"
				flagged = true
			}
			buf.WriteString(escape(text) + rtfNewline)
		}
		buf.WriteString(rtfNewline)
	}

	if flagged {
		buf.WriteString(escape("* some quantities could not be combined") + rtfNewline)
	}

	buf.WriteString(rtfFooter)
	return Document{
		Filename:    "shopping-list-" + start + ".rtf",
		ContentType: "application/rtf",
		Content:     buf.Bytes(),
	}
}

// escape protects RTF control characters in user-entered text.
func escape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '\\' || r == '{' || r == '}':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r > 127:
			fmt.Fprintf(&b, `\u%d?`, r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
