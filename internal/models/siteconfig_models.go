package models

type SiteMeta struct {
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Logo        string `json:"logo,omitempty" yaml:"logo,omitempty"`
	Language    string `json:"language,omitempty" yaml:"language,omitempty"`
}

type Theme struct {
	Primary    string `json:"primary,omitempty" yaml:"primary,omitempty"`
	Secondary  string `json:"secondary,omitempty" yaml:"secondary,omitempty"`
	Accent     string `json:"accent,omitempty" yaml:"accent,omitempty"`
	Background string `json:"background,omitempty" yaml:"background,omitempty"`
	Text       string `json:"text,omitempty" yaml:"text,omitempty"`
	Mode       string `json:"mode,omitempty" yaml:"mode,omitempty"`
}

type Link struct {
	Text string `json:"text" yaml:"text"`
	Href string `json:"href" yaml:"href"`
}

type CTA struct {
	Text    string `json:"text" yaml:"text"`
	Href    string `json:"href" yaml:"href"`
	Variant string `json:"variant,omitempty" yaml:"variant,omitempty"`
}

type Logo struct {
	Text string `json:"text,omitempty" yaml:"text,omitempty"`
}

type Navigation struct {
	Logo  *Logo  `json:"logo,omitempty" yaml:"logo,omitempty"`
	Links []Link `json:"links,omitempty" yaml:"links,omitempty"`
	CTA   *CTA   `json:"cta,omitempty" yaml:"cta,omitempty"`
}

type FooterSection struct {
	Title string `json:"title" yaml:"title"`
	Links []Link `json:"links,omitempty" yaml:"links,omitempty"`
}

type Footer struct {
	Logo      *Logo           `json:"logo,omitempty" yaml:"logo,omitempty"`
	Tagline   string          `json:"tagline,omitempty" yaml:"tagline,omitempty"`
	Copyright string          `json:"copyright,omitempty" yaml:"copyright,omitempty"`
	Sections  []FooterSection `json:"sections,omitempty" yaml:"sections,omitempty"`
}

// Section is a loosely shaped page section; component payloads vary per
// type so the content stays a map validated against the schema registry.
type Section map[string]any

type PageConfig struct {
	Path        string    `json:"path" yaml:"path"`
	Title       string    `json:"title,omitempty" yaml:"title,omitempty"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Sections    []Section `json:"sections" yaml:"sections"`
}

type SiteConfig struct {
	Site       *SiteMeta   `json:"site,omitempty" yaml:"site,omitempty"`
	Theme      *Theme      `json:"theme,omitempty" yaml:"theme,omitempty"`
	Navigation *Navigation `json:"navigation,omitempty" yaml:"navigation,omitempty"`
	Footer     *Footer     `json:"footer,omitempty" yaml:"footer,omitempty"`
	Sections   []Section   `json:"sections,omitempty" yaml:"sections,omitempty"`
	Pages      []PageConfig `json:"pages,omitempty" yaml:"pages,omitempty"`
}

type ComponentConfig struct {
	Type    string         `json:"type"`
	Content map[string]any `json:"content"`
}

type ValidationIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationResult struct {
	Valid    bool              `json:"valid"`
	Errors   []ValidationIssue `json:"errors,omitempty"`
	Warnings []ValidationIssue `json:"warnings,omitempty"`
}
