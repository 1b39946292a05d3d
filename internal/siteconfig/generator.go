package siteconfig

import (
	"github.com/vela-platform/vela/internal/models"
)

// FullTemplate returns the baseline site configuration used as the merge
// base for generation.
func FullTemplate() models.SiteConfig {
	return models.SiteConfig{
		Site: &models.SiteMeta{
			Name:        "Your Site Title",
			Description: "Your site description",
			Logo:        "https://example.com/logo.png",
			Language:    "en",
		},
		Theme: &models.Theme{
			Primary:    "#3b82f6",
			Secondary:  "#8b5cf6",
			Accent:     "#0f172a",
			Background: "#ffffff",
			Text:       "#1f2937",
			Mode:       "light",
		},
		Navigation: &models.Navigation{
			Logo: &models.Logo{Text: "Your Site"},
			Links: []models.Link{
				{Text: "Home", Href: "/"},
				{Text: "About", Href: "/about"},
			},
			CTA: &models.CTA{Text: "Get Started", Href: "/start", Variant: "primary"},
		},
		Footer: &models.Footer{
			Logo:      &models.Logo{Text: "Your Site"},
			Tagline:   "Building something amazing",
			Copyright: "© 2024 Your Company",
			Sections: []models.FooterSection{
				{
					Title: "Company",
					Links: []models.Link{{Text: "About", Href: "/about"}},
				},
			},
		},
		Sections: []models.Section{},
		Pages: []models.PageConfig{
			{Path: "/", Title: "Home", Sections: []models.Section{}},
		},
	}
}

// GenerateSiteConfig fills gaps in input from the template. Provided
// site/theme fields merge field-wise; the larger blocks replace wholesale.
func GenerateSiteConfig(input models.SiteConfig) models.SiteConfig {
	template := FullTemplate()

	out := models.SiteConfig{
		Site:       mergeSite(template.Site, input.Site),
		Theme:      mergeTheme(template.Theme, input.Theme),
		Navigation: template.Navigation,
		Footer:     template.Footer,
		Sections:   template.Sections,
		Pages:      template.Pages,
	}
	if input.Navigation != nil {
		out.Navigation = input.Navigation
	}
	if input.Footer != nil {
		out.Footer = input.Footer
	}
	if input.Sections != nil {
		out.Sections = input.Sections
	}
	if input.Pages != nil {
		out.Pages = input.Pages
	}
	return out
}

// GeneratePage echoes a page config in canonical shape.
func GeneratePage(page models.PageConfig) models.PageConfig {
	return models.PageConfig{
		Path:        page.Path,
		Title:       page.Title,
		Description: page.Description,
		Sections:    page.Sections,
	}
}

// GenerateComponent echoes a component config in canonical shape.
func GenerateComponent(componentType string, content map[string]any) models.ComponentConfig {
	return models.ComponentConfig{
		Type:    componentType,
		Content: content,
	}
}

func mergeSite(base, override *models.SiteMeta) *models.SiteMeta {
	merged := *base
	if override == nil {
		return &merged
	}
	if override.Name != "" {
		merged.Name = override.Name
	}
	if override.Description != "" {
		merged.Description = override.Description
	}
	if override.Logo != "" {
		merged.Logo = override.Logo
	}
	if override.Language != "" {
		merged.Language = override.Language
	}
	return &merged
}

func mergeTheme(base, override *models.Theme) *models.Theme {
	merged := *base
	if override == nil {
		return &merged
	}
	if override.Primary != "" {
		merged.Primary = override.Primary
	}
	if override.Secondary != "" {
		merged.Secondary = override.Secondary
	}
	if override.Accent != "" {
		merged.Accent = override.Accent
	}
	if override.Background != "" {
		merged.Background = override.Background
	}
	if override.Text != "" {
		merged.Text = override.Text
	}
	if override.Mode != "" {
		merged.Mode = override.Mode
	}
	return &merged
}
