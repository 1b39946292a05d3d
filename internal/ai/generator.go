package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vela-platform/vela/internal/clients"
	"github.com/vela-platform/vela/internal/config"
	"github.com/vela-platform/vela/internal/radar"
)

const (
	generationTemperature = 0.7
	generationMaxTokens   = 4000
)

// componentDescriptions steers generation toward the right content shape
// per component type.
var componentDescriptions = map[string]string{
	"hero":         "Hero section with title, subtitle, description, CTA buttons, and optional image",
	"features":     "Features grid with icon, title, and description for each feature",
	"grid":         "Generic content grid with cards (image, title, description, link)",
	"stats":        "Statistics display with number, label, and optional description",
	"team":         "Team members with photo, name, role, bio, and social links",
	"testimonials": "Customer testimonials with quote, author, role, avatar",
	"cta":          "Call-to-action section with title, description, and buttons",
	"contact":      "Contact form with fields and contact information",
	"pricing":      "Pricing plans with features, price, and CTA",
	"faq":          "Frequently asked questions with question and answer pairs",
	"blog":         "Blog post list with title, excerpt, author, date, image",
	"gallery":      "Image gallery with title, description, and images",
	"process":      "Step-by-step process with icon, title, description",
	"video":        "Video embed section with title, description, video URL",
	"partners":     "Partner logos with name, logo, and optional link",
}

// SiteConfigParams describe the site to generate.
type SiteConfigParams struct {
	SiteName        string `json:"siteName"`
	SiteDescription string `json:"siteDescription"`
	Industry        string `json:"industry,omitempty"`
	TargetAudience  string `json:"targetAudience,omitempty"`
	Style           string `json:"style,omitempty"`
}

// PageParams describe the page to generate.
type PageParams struct {
	Path        string `json:"path"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Purpose     string `json:"purpose,omitempty"`
}

// ComponentParams describe the component to generate.
type ComponentParams struct {
	Type    string `json:"type"`
	Context string `json:"context,omitempty"`
	Content string `json:"content,omitempty"`
}

// Generator produces site configuration documents with a model ensemble.
type Generator struct {
	llm    radar.Completer
	models []string
}

func NewGenerator(llm radar.Completer) *Generator {
	return &Generator{
		llm:    llm,
		models: config.FallbackModels,
	}
}

// GenerateSiteConfig builds a full site configuration document.
func (g *Generator) GenerateSiteConfig(ctx context.Context, params SiteConfigParams) (map[string]any, error) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`Generate a complete website configuration JSON for a Dynamic Site Generator with Server-Driven UI architecture.

Requirements:
- Site Name: %q
- Description: %q
`, params.SiteName, params.SiteDescription))
	if params.Industry != "" {
		sb.WriteString(fmt.Sprintf("- Industry: %q\n", params.Industry))
	}
	if params.TargetAudience != "" {
		sb.WriteString(fmt.Sprintf("- Target Audience: %q\n", params.TargetAudience))
	}
	if params.Style != "" {
		sb.WriteString(fmt.Sprintf("- Style: %q\n", params.Style))
	}
	sb.WriteString(`
Create a complete site config with:
1. Site metadata (name, description, logo, favicon)
2. Theme configuration (colors, fonts, spacing)
3. Navigation bar with 4-5 menu items
4. Footer with links and social media
5. 3-5 pages with appropriate sections

Use these component types: hero, features, grid, stats, team, testimonials, cta, contact, pricing, faq, blog, gallery, process, video, partners

Return ONLY valid JSON without any markdown formatting. Follow this structure:
{
  "site": { "name": "", "description": "", "url": "", "logo": "", "favicon": "" },
  "theme": { "primaryColor": "", "secondaryColor": "", "accentColor": "", "fontFamily": "", "spacing": "" },
  "navbar": { "logo": "", "links": [{ "label": "", "path": "" }], "cta": { "label": "", "path": "" } },
  "footer": { "copyright": "", "links": [], "social": [] },
  "pages": []
}`)

	return g.generateObject(ctx, sb.String(), "site config")
}

// GeneratePage builds a single page configuration document.
func (g *Generator) GeneratePage(ctx context.Context, params PageParams) (map[string]any, error) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`Generate a page configuration JSON for a website page.

Page Details:
- Path: %q
- Title: %q
`, params.Path, params.Title))
	if params.Description != "" {
		sb.WriteString(fmt.Sprintf("- Description: %q\n", params.Description))
	}
	if params.Purpose != "" {
		sb.WriteString(fmt.Sprintf("- Purpose: %q\n", params.Purpose))
	}
	sb.WriteString(`
Create a page config with:
1. Page metadata (path, title, description, meta tags)
2. 3-5 appropriate sections using these components: hero, features, grid, stats, team, testimonials, cta, contact, pricing, faq, blog, gallery, process, video, partners

Return ONLY valid JSON without markdown. Structure:
{
  "path": "",
  "title": "",
  "description": "",
  "meta": { "title": "", "description": "", "keywords": [] },
  "sections": []
}`)

	return g.generateObject(ctx, sb.String(), "page config")
}

// GenerateComponent builds a single component configuration document.
func (g *Generator) GenerateComponent(ctx context.Context, params ComponentParams) (map[string]any, error) {
	description, ok := componentDescriptions[params.Type]
	if !ok {
		description = "Generic component"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`Generate a %s component configuration JSON.

Component Type: %s
Description: %s
`, params.Type, params.Type, description))
	if params.Context != "" {
		sb.WriteString(fmt.Sprintf("Context: %q\n", params.Context))
	}
	if params.Content != "" {
		sb.WriteString(fmt.Sprintf("Content Requirements: %q\n", params.Content))
	}
	sb.WriteString(fmt.Sprintf(`
Create a realistic %s component with appropriate content based on the type.

Return ONLY valid JSON without markdown. Include:
- id (unique identifier)
- type (component type)
- All required fields for this component type
- Realistic content that matches the component purpose

Example structure for %s:
{
  "id": "unique-id",
  "type": %q,
  ...other fields based on component type
}`, params.Type, params.Type, params.Type))

	return g.generateObject(ctx, sb.String(), fmt.Sprintf("%s component", params.Type))
}

// EnhanceComponent rewrites an existing component per free-form instructions.
func (g *Generator) EnhanceComponent(ctx context.Context, component map[string]any, instructions string) (map[string]any, error) {
	current, err := json.MarshalIndent(component, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode component: %w", err)
	}

	prompt := fmt.Sprintf(`Enhance the following component configuration based on these instructions:

Instructions: %q

Current Component:
%s

Return the enhanced component as valid JSON without markdown. Keep the same structure but improve content, add details, or modify as per instructions.`, instructions, current)

	return g.generateObject(ctx, prompt, "enhanced component")
}

// GenerateFromPrompt builds a full site configuration from a free-form prompt.
func (g *Generator) GenerateFromPrompt(ctx context.Context, prompt string) (map[string]any, error) {
	fullPrompt := fmt.Sprintf(`You are a website configuration generator. Generate a complete website configuration based on this prompt:

%q

Analyze the prompt and create appropriate:
- Site configuration
- Theme
- Pages with sections
- Components

Use these component types: hero, features, grid, stats, team, testimonials, cta, contact, pricing, faq, blog, gallery, process, video, partners

Return ONLY valid JSON without markdown formatting following the site config structure.`, prompt)

	return g.generateObject(ctx, fullPrompt, "config from prompt")
}

func (g *Generator) generateObject(ctx context.Context, prompt, op string) (map[string]any, error) {
	opts := clients.CompletionOptions{
		Temperature: generationTemperature,
		MaxTokens:   generationMaxTokens,
	}

	result, outcomes, err := radar.CallModels(ctx, g.llm, prompt, g.models, opts)
	if err != nil {
		return nil, err
	}
	for _, outcome := range outcomes {
		if !outcome.Success {
			slog.Warn("[AIGenerator] model call failed",
				slog.String("model", outcome.Model),
				slog.String("error", outcome.Error))
		}
	}

	raw, err := radar.ExtractJSONObject(result.Content, op)
	if err != nil {
		return nil, err
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, &radar.ParseError{Op: op, Err: err}
	}
	return doc, nil
}
