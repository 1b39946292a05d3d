package siteconfig

import (
	"slices"
	"testing"
)

func TestAllSchemasContainsEveryComponentType(t *testing.T) {
	want := []string{
		"hero", "logo-cloud", "features", "stats", "testimonials",
		"pricing", "team", "gallery", "content", "grid", "faq", "cta",
		"contact", "blog", "process", "video", "partners",
	}

	schemas := AllSchemas()
	if len(schemas) != len(want) {
		t.Fatalf("got %d schemas, want %d", len(schemas), len(want))
	}
	for _, name := range want {
		if schemas[name] == nil {
			t.Errorf("missing schema for %q", name)
		}
	}
}

func TestSchemaUnknownTypeReturnsNil(t *testing.T) {
	if got := Schema("spaceship"); got != nil {
		t.Fatalf("expected nil for unknown type, got %v", got)
	}
}

func TestHeroSchemaShape(t *testing.T) {
	hero := Schema("hero")
	if hero == nil {
		t.Fatal("hero schema missing")
	}
	required, ok := hero["required"].([]string)
	if !ok || !slices.Contains(required, "title") {
		t.Errorf("hero required should contain title, got %v", hero["required"])
	}
	props, ok := hero["properties"].(map[string]any)
	if !ok {
		t.Fatal("hero properties missing")
	}
	for _, key := range []string{"title", "subtitle", "cta", "image", "alignment"} {
		if _, ok := props[key]; !ok {
			t.Errorf("hero properties missing %q", key)
		}
	}
	if hero["example"] == nil {
		t.Error("hero schema should carry an example")
	}
}

func TestLegacySchemasHaveRequiredLists(t *testing.T) {
	for _, name := range []string{"contact", "blog", "process", "video", "partners"} {
		schema := Schema(name)
		if schema == nil {
			t.Errorf("schema %q missing", name)
			continue
		}
		if _, ok := schema["required"].([]string); !ok {
			t.Errorf("schema %q missing required list", name)
		}
	}
}
