package siteconfig

import (
	"fmt"

	"github.com/vela-platform/vela/internal/models"
)

// ValidateSiteConfig inspects an arbitrary decoded JSON document and
// reports all structural problems at once. It never fails on malformed
// input; missing or mistyped fields simply add errors.
func ValidateSiteConfig(doc map[string]any) models.ValidationResult {
	var errors []models.ValidationIssue
	var warnings []models.ValidationIssue

	site, _ := doc["site"].(map[string]any)
	if stringField(site, "name") == "" {
		errors = append(errors, models.ValidationIssue{Field: "site.name", Message: "Site name is required"})
	}
	if stringField(site, "description") == "" {
		errors = append(errors, models.ValidationIssue{Field: "site.description", Message: "Site description is required"})
	}

	theme, _ := doc["theme"].(map[string]any)
	if stringField(theme, "primary") == "" {
		errors = append(errors, models.ValidationIssue{Field: "theme.primary", Message: "Primary color is required"})
	}
	if stringField(theme, "secondary") == "" {
		errors = append(errors, models.ValidationIssue{Field: "theme.secondary", Message: "Secondary color is required"})
	}
	if stringField(theme, "accent") == "" {
		errors = append(errors, models.ValidationIssue{Field: "theme.accent", Message: "Accent color is required"})
	}

	_, hasSections := doc["sections"]
	_, hasPages := doc["pages"]
	if !hasSections && !hasPages {
		errors = append(errors, models.ValidationIssue{Field: "sections", Message: "Either sections or pages array is required"})
	}

	if pages, ok := doc["pages"].([]any); ok {
		for i, raw := range pages {
			page, _ := raw.(map[string]any)
			if stringField(page, "path") == "" {
				errors = append(errors, models.ValidationIssue{
					Field:   fmt.Sprintf("pages[%d].path", i),
					Message: "Page path is required",
				})
			}
			if _, ok := page["sections"].([]any); !ok {
				errors = append(errors, models.ValidationIssue{
					Field:   fmt.Sprintf("pages[%d].sections", i),
					Message: "Page sections array is required",
				})
			}
		}
	}

	_, hasNavigation := doc["navigation"]
	_, hasNavbar := doc["navbar"]
	if !hasNavigation && !hasNavbar {
		warnings = append(warnings, models.ValidationIssue{Field: "navigation", Message: "Navigation configuration is recommended"})
	}
	if _, ok := doc["footer"]; !ok {
		warnings = append(warnings, models.ValidationIssue{Field: "footer", Message: "Footer configuration is recommended"})
	}

	return models.ValidationResult{
		Valid:    len(errors) == 0,
		Errors:   errors,
		Warnings: warnings,
	}
}

func stringField(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}
