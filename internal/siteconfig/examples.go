package siteconfig

// Example returns a ready-to-submit payload by name, nil when unknown.
func Example(name string) map[string]any {
	switch name {
	case "minimal":
		return minimalExample()
	case "portfolio":
		return portfolioExample()
	default:
		return nil
	}
}

func minimalExample() map[string]any {
	return map[string]any{
		"site": map[string]any{
			"name":        "TechStart Solutions",
			"description": "Enterprise software solutions",
		},
		"theme": map[string]any{
			"primary":   "#2563eb",
			"secondary": "#7c3aed",
			"accent":    "#0f172a",
		},
		"navigation": map[string]any{
			"logo": map[string]any{"text": "TechStart"},
			"links": []any{
				map[string]any{"text": "Home", "href": "/"},
				map[string]any{"text": "Services", "href": "/services"},
			},
			"cta": map[string]any{"text": "Get Started", "href": "/start"},
		},
		"footer": map[string]any{
			"copyright": "© 2024 TechStart Solutions",
		},
		"sections": []any{
			map[string]any{
				"type":  "hero",
				"title": "Transform Your Business",
				"cta": map[string]any{
					"primary": map[string]any{"text": "Get Started", "href": "/start"},
				},
			},
		},
	}
}

func portfolioExample() map[string]any {
	return map[string]any{
		"site": map[string]any{
			"name":        "Pixel Perfect Studio",
			"description": "Award-winning digital agency",
			"logo":        "https://example.com/logo.svg",
		},
		"theme": map[string]any{
			"primary":    "#f59e0b",
			"secondary":  "#ec4899",
			"accent":     "#0f172a",
			"background": "#0f172a",
			"text":       "#f1f5f9",
			"mode":       "dark",
		},
		"navigation": map[string]any{
			"logo":        map[string]any{"text": "Pixel Perfect"},
			"type":        "sticky",
			"transparent": true,
			"links": []any{
				map[string]any{"text": "Work", "href": "/work"},
				map[string]any{"text": "Services", "href": "/services"},
			},
			"cta": map[string]any{"text": "Start Project", "href": "/contact"},
		},
		"footer": map[string]any{
			"logo":      map[string]any{"text": "Pixel Perfect"},
			"tagline":   "Crafting digital experiences",
			"copyright": "© 2024 Pixel Perfect Studio",
			"sections": []any{
				map[string]any{
					"title": "Services",
					"links": []any{
						map[string]any{"text": "Web Design", "href": "/services/web-design"},
					},
				},
			},
		},
		"sections": []any{
			map[string]any{
				"type":      "hero",
				"title":     "We Create Digital Experiences",
				"subtitle":  "Award-winning creative agency",
				"alignment": "center",
				"cta": map[string]any{
					"primary": map[string]any{"text": "View Our Work", "href": "/work"},
				},
			},
		},
	}
}
