package catalog

import (
	"strings"
	"testing"
)

func TestDefaultCatalogLoads(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("load embedded catalog: %v", err)
	}
	if c.Len() == 0 {
		t.Fatal("embedded catalog is empty")
	}
	for _, l := range c.Lessons() {
		for i, q := range l.Quiz {
			if q.Answer < 0 || q.Answer >= len(q.Options) {
				t.Errorf("lesson %d quiz %d: answer index %d out of range", l.ID, i, q.Answer)
			}
		}
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "not json"},
		{"not an array", `{"id": 1}`},
		{"missing title", `[{"id": 1, "category": "Basics", "content": "x"}]`},
		{"quiz without options", `[{"id":1,"title":"t","category":"c","content":"x","quiz":[{"text":"q","answer":0}]}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.raw)); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestParseRejectsDuplicateIDs(t *testing.T) {
	raw := `[
		{"id": 1, "title": "a", "category": "c", "content": "x"},
		{"id": 1, "title": "b", "category": "c", "content": "y"}
	]`
	_, err := Parse([]byte(raw))
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("err = %v, want duplicate id error", err)
	}
}

func TestCategoriesPreserveOrder(t *testing.T) {
	raw := `[
		{"id": 1, "title": "a", "category": "Basics", "content": "x"},
		{"id": 2, "title": "b", "category": "Loops", "content": "x"},
		{"id": 3, "title": "c", "category": "Basics", "content": "x"}
	]`
	c, err := Parse([]byte(raw))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	cats := c.Categories()
	if len(cats) != 2 {
		t.Fatalf("got %d categories, want 2", len(cats))
	}
	if cats[0].Name != "Basics" || cats[1].Name != "Loops" {
		t.Errorf("order = %q, %q; want first-seen order", cats[0].Name, cats[1].Name)
	}
	if len(cats[0].Lessons) != 2 {
		t.Errorf("Basics has %d lessons, want 2", len(cats[0].Lessons))
	}
}

func TestLessonLookup(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	l, ok := c.Lesson(1)
	if !ok {
		t.Fatal("lesson 1 missing from starter catalog")
	}
	if l.Title == "" {
		t.Error("lesson 1 has no title")
	}

	if _, ok := c.Lesson(9999); ok {
		t.Error("expected miss for unknown id")
	}
}

func TestKey(t *testing.T) {
	if Key(3) != "3" {
		t.Errorf("Key(3) = %q", Key(3))
	}
	id, err := ParseKey("3")
	if err != nil || id != 3 {
		t.Errorf("ParseKey(\"3\") = %d, %v", id, err)
	}
	if _, err := ParseKey("nope"); err == nil {
		t.Error("expected error for non-numeric key")
	}
}
