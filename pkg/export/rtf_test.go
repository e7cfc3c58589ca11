package export

import (
	"strings"
	"testing"
)

func TestMenuListsEveryDay(t *testing.T) {
	doc := Menu("2026-08-30", []MenuDay{
		{Weekday: "Sunday", Recipe: "Pancakes"},
		{Weekday: "Monday", Recipe: ""},
		{Weekday: "Wednesday", Recipe: "Chili"},
	})

	if doc.ContentType != "application/rtf" {
		t.Fatalf("content type = %q", doc.ContentType)
	}
	if doc.Filename != "menu-2026-08-30.rtf" {
		t.Fatalf("filename = %q", doc.Filename)
	}

	content := string(doc.Content)
	if !strings.HasPrefix(content, `{\rtf1`) {
		t.Fatalf("document does not start with an RTF header: %q", content[:20])
	}
	if !strings.Contains(content, `Sunday:\tab \tab Pancakes`) {
		t.Errorf("Sunday line missing or misaligned:\n%s", content)
	}
	if !strings.Contains(content, `Wednesday:\tab Chili`) {
		t.Errorf("Wednesday should use a single tab:\n%s", content)
	}
}

func TestShoppingListGroupsAndFlags(t *testing.T) {
	doc := ShoppingList("2026-08-30", "2026-09-05", []Category{
		{Name: "Dairy", Items: []Item{
			{Text: ItemText(4, "cups", "milk")},
		}},
		{Name: "", Items: []Item{
			{Text: ItemText(2, "cups", "mystery mix"), Flagged: true},
		}},
	})

	content := string(doc.Content)
	if !strings.Contains(content, "****Dairy****") {
		t.Errorf("category header missing:\n%s", content)
	}
	if !strings.Contains(content, "4 cups of milk") {
		t.Errorf("dairy item missing:\n%s", content)
	}

	uncategorized := strings.Index(content, "********")
	dairy := strings.Index(content, "****Dairy****")
	if uncategorized < dairy {
		t.Errorf("uncategorized header should come after named categories")
	}
	if !strings.Contains(content, "2 cups of mystery mix *") {
		t.Errorf("flagged item should carry an asterisk:\n%s", content)
	}
	if !strings.Contains(content, "* some quantities could not be combined") {
		t.Errorf("footnote missing when an item is flagged:\n%s", content)
	}
}

func TestShoppingListOmitsFootnoteWithoutFlags(t *testing.T) {
	doc := ShoppingList("2026-08-30", "2026-09-05", []Category{
		{Name: "Produce", Items: []Item{{Text: ItemText(3, "lbs.", "apples")}}},
	})

	if strings.Contains(string(doc.Content), "could not be combined") {
		t.Errorf("footnote should only appear when an item is flagged")
	}
}

func TestEscapeProtectsControlCharacters(t *testing.T) {
	got := escape(`a{b}c\d`)
	want := `a\{b\}c\\d`
	if got != want {
		t.Fatalf("escape = %q, want %q", got, want)
	}
}
