package siteconfig

import (
	"strings"
	"testing"

	"github.com/vela-platform/vela/internal/models"
)

func TestGenerateSiteConfigFillsFromTemplate(t *testing.T) {
	out := GenerateSiteConfig(models.SiteConfig{
		Site: &models.SiteMeta{Name: "Acme"},
	})

	if out.Site.Name != "Acme" {
		t.Errorf("got site name %q, want Acme", out.Site.Name)
	}
	if out.Site.Description != "Your site description" {
		t.Errorf("description should come from template, got %q", out.Site.Description)
	}
	if out.Theme == nil || out.Theme.Primary != "#3b82f6" {
		t.Errorf("theme should come from template, got %+v", out.Theme)
	}
	if out.Navigation == nil || len(out.Navigation.Links) != 2 {
		t.Errorf("navigation should come from template, got %+v", out.Navigation)
	}
	if len(out.Pages) != 1 || out.Pages[0].Path != "/" {
		t.Errorf("pages should come from template, got %+v", out.Pages)
	}
}

func TestGenerateSiteConfigKeepsProvidedBlocks(t *testing.T) {
	nav := &models.Navigation{Logo: &models.Logo{Text: "Mine"}}
	sections := []models.Section{{"type": "hero", "title": "Hi"}}

	out := GenerateSiteConfig(models.SiteConfig{
		Navigation: nav,
		Sections:   sections,
	})

	if out.Navigation != nav {
		t.Error("provided navigation should be kept wholesale")
	}
	if len(out.Sections) != 1 || out.Sections[0]["title"] != "Hi" {
		t.Errorf("provided sections should be kept, got %+v", out.Sections)
	}
}

func TestExampleLookup(t *testing.T) {
	minimal := Example("minimal")
	if minimal == nil {
		t.Fatal("minimal example missing")
	}
	site, _ := minimal["site"].(map[string]any)
	if site["name"] != "TechStart Solutions" {
		t.Errorf("unexpected minimal site name: %v", site["name"])
	}

	if Example("nope") != nil {
		t.Error("unknown example should return nil")
	}
}

func TestDownloadableFormat(t *testing.T) {
	out, err := DownloadableFormat(map[string]any{"site": map[string]any{"name": "Acme"}}, "site-config")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Downloads.JSON.Filename != "site-config.json" {
		t.Errorf("got json filename %q", out.Downloads.JSON.Filename)
	}
	if out.Downloads.YAML.MimeType != "text/yaml" {
		t.Errorf("got yaml mime %q", out.Downloads.YAML.MimeType)
	}
	if !strings.Contains(out.JSONString, `"name": "Acme"`) {
		t.Errorf("json string missing payload: %s", out.JSONString)
	}
	if !strings.Contains(out.YAML, "name: Acme") {
		t.Errorf("yaml missing payload: %s", out.YAML)
	}
}
