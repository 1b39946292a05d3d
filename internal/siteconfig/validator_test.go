package siteconfig

import (
	"testing"
)

func TestValidateSiteConfigEmptyDocumentListsEveryError(t *testing.T) {
	result := ValidateSiteConfig(map[string]any{})

	if result.Valid {
		t.Fatal("expected empty document to be invalid")
	}

	wantFields := []string{
		"site.name",
		"site.description",
		"theme.primary",
		"theme.secondary",
		"theme.accent",
		"sections",
	}
	if len(result.Errors) != len(wantFields) {
		t.Fatalf("got %d errors, want %d: %+v", len(result.Errors), len(wantFields), result.Errors)
	}
	for i, field := range wantFields {
		if result.Errors[i].Field != field {
			t.Errorf("error %d: got field %q, want %q", i, result.Errors[i].Field, field)
		}
	}

	if len(result.Warnings) != 2 {
		t.Fatalf("got %d warnings, want 2: %+v", len(result.Warnings), result.Warnings)
	}
	if result.Warnings[0].Field != "navigation" || result.Warnings[1].Field != "footer" {
		t.Errorf("unexpected warning fields: %+v", result.Warnings)
	}
}

func TestValidateSiteConfigPageChecks(t *testing.T) {
	doc := map[string]any{
		"site":  map[string]any{"name": "Acme", "description": "d"},
		"theme": map[string]any{"primary": "#000", "secondary": "#111", "accent": "#222"},
		"pages": []any{
			map[string]any{"title": "Orphan"},
			map[string]any{"path": "/", "sections": []any{}},
		},
		"navigation": map[string]any{},
		"footer":     map[string]any{},
	}

	result := ValidateSiteConfig(doc)
	if result.Valid {
		t.Fatal("expected invalid result")
	}
	if len(result.Errors) != 2 {
		t.Fatalf("got %d errors, want 2: %+v", len(result.Errors), result.Errors)
	}
	if result.Errors[0].Field != "pages[0].path" {
		t.Errorf("got field %q, want pages[0].path", result.Errors[0].Field)
	}
	if result.Errors[1].Field != "pages[0].sections" {
		t.Errorf("got field %q, want pages[0].sections", result.Errors[1].Field)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("unexpected warnings: %+v", result.Warnings)
	}
}

func TestValidateSiteConfigValid(t *testing.T) {
	doc := map[string]any{
		"site":       map[string]any{"name": "Acme", "description": "d"},
		"theme":      map[string]any{"primary": "#000", "secondary": "#111", "accent": "#222"},
		"sections":   []any{},
		"navigation": map[string]any{},
		"footer":     map[string]any{},
	}

	result := ValidateSiteConfig(doc)
	if !result.Valid {
		t.Fatalf("expected valid result, got errors %+v", result.Errors)
	}
}

func TestValidateSiteConfigNavbarSuppressesNavigationWarning(t *testing.T) {
	doc := map[string]any{
		"site":     map[string]any{"name": "Acme", "description": "d"},
		"theme":    map[string]any{"primary": "#000", "secondary": "#111", "accent": "#222"},
		"sections": []any{},
		"navbar":   map[string]any{},
		"footer":   map[string]any{},
	}

	result := ValidateSiteConfig(doc)
	if len(result.Warnings) != 0 {
		t.Errorf("unexpected warnings: %+v", result.Warnings)
	}
}

func TestValidateSiteConfigMistypedFieldsDoNotPanic(t *testing.T) {
	doc := map[string]any{
		"site":     "not an object",
		"theme":    42,
		"sections": "also wrong",
		"pages":    map[string]any{"nope": true},
	}

	result := ValidateSiteConfig(doc)
	if result.Valid {
		t.Fatal("expected invalid result")
	}
}
