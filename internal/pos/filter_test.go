package pos_test

import (
	"testing"

	"bizhub/internal/pos"
)

func TestMatchFuzzy(t *testing.T) {
	cases := []struct {
		term, s string
		want    bool
	}{
		{"abc", "aXbXc", true},
		{"ac", "Product A", false},
		{"pda", "Product A", true},
		{"PRODUCT", "product b", true},
		{"ba", "ab", false},
		{"", "anything", true},
		{"a.c", "abc", false},
		{"a.c", "a.c", true},
	}
	for _, c := range cases {
		if got := pos.MatchFuzzy(c.term, c.s); got != c.want {
			t.Fatalf("MatchFuzzy(%q,%q) = %v, want %v", c.term, c.s, got, c.want)
		}
	}
}

func TestMatchSubstring(t *testing.T) {
	if !pos.MatchSubstring("wid", "Blue Widget", "SKU-1") {
		t.Fatal("expected name match")
	}
	if !pos.MatchSubstring("sku-1", "Blue Widget", "SKU-1") {
		t.Fatal("expected sku match")
	}
	if pos.MatchSubstring("aXc", "abc") {
		t.Fatal("substring must not behave like a subsequence")
	}
}

func TestFilterHelpers(t *testing.T) {
	names := []string{"Product A", "Product B", "Gadget"}
	fuzzy := pos.FilterFuzzy(names, "pdb", func(s string) string { return s })
	if len(fuzzy) != 1 || fuzzy[0] != "Product B" {
		t.Fatalf("fuzzy filter got %v", fuzzy)
	}
	sub := pos.FilterSubstring(names, "duct", func(s string) []string { return []string{s} })
	if len(sub) != 2 {
		t.Fatalf("substring filter got %v", sub)
	}
	if all := pos.FilterFuzzy(names, "", func(s string) string { return s }); len(all) != 3 {
		t.Fatalf("empty term should keep everything, got %v", all)
	}
}
