package siteconfig

// Schema describes the content shape of a single component type in
// JSON-Schema style. Unknown types return nil.
func Schema(componentType string) map[string]any {
	return AllSchemas()[componentType]
}

// AllSchemas returns the full component schema registry keyed by type.
func AllSchemas() map[string]map[string]any {
	return map[string]map[string]any{
		"hero":         heroSchema(),
		"logo-cloud":   logoCloudSchema(),
		"features":     featuresSchema(),
		"stats":        statsSchema(),
		"testimonials": testimonialsSchema(),
		"pricing":      pricingSchema(),
		"team":         teamSchema(),
		"gallery":      gallerySchema(),
		"content":      contentSchema(),
		"grid":         gridSchema(),
		"faq":          faqSchema(),
		"cta":          ctaSchema(),
		// Legacy schemas
		"contact":  contactSchema(),
		"blog":     blogSchema(),
		"process":  processSchema(),
		"video":    videoSchema(),
		"partners": partnersSchema(),
	}
}

func heroSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"title"},
		"properties": map[string]any{
			"alignment": map[string]any{
				"type":        "string",
				"enum":        []string{"left", "center", "right"},
				"default":     "center",
				"description": "Content alignment",
			},
			"title":    map[string]any{"type": "string", "description": "Main headline"},
			"subtitle": map[string]any{"type": "string", "description": "Supporting text"},
			"cta": map[string]any{
				"type":        "object",
				"description": "Call-to-action buttons",
				"properties": map[string]any{
					"primary": map[string]any{
						"type":     "object",
						"required": []string{"text", "href"},
						"properties": map[string]any{
							"text": map[string]any{"type": "string", "description": "Button text"},
							"href": map[string]any{"type": "string", "description": "Button URL"},
						},
					},
					"secondary": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"text": map[string]any{"type": "string", "description": "Button text"},
							"href": map[string]any{"type": "string", "description": "Button URL"},
						},
					},
				},
			},
			"image": map[string]any{
				"type":        "object",
				"description": "Hero image",
				"properties": map[string]any{
					"src": map[string]any{"type": "string", "format": "uri", "description": "Image URL"},
					"alt": map[string]any{"type": "string", "description": "Alt text for accessibility"},
				},
			},
		},
		"example": map[string]any{
			"type":      "hero",
			"alignment": "center",
			"title":     "Collaborate Smarter, Work Faster",
			"subtitle":  "CloudFlow brings your team together with powerful tools.",
			"cta": map[string]any{
				"primary":   map[string]any{"text": "Start Free Trial", "href": "/signup"},
				"secondary": map[string]any{"text": "Watch Demo", "href": "#demo"},
			},
			"image": map[string]any{
				"src": "https://images.unsplash.com/photo-1551434678-e076c223a692?w=1200",
				"alt": "Team collaboration",
			},
		},
	}
}

func featuresSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"items"},
		"properties": map[string]any{
			"layout": map[string]any{
				"type":        "string",
				"enum":        []string{"grid", "alternate"},
				"default":     "grid",
				"description": "Display layout - grid or alternating left/right",
			},
			"title":    map[string]any{"type": "string", "description": "Section title"},
			"subtitle": map[string]any{"type": "string", "description": "Section subtitle"},
			"items": map[string]any{
				"type":        "array",
				"description": "Feature list",
				"items": map[string]any{
					"type":     "object",
					"required": []string{"title", "description"},
					"properties": map[string]any{
						"icon":        map[string]any{"type": "string", "description": "Emoji or icon"},
						"title":       map[string]any{"type": "string", "description": "Feature name"},
						"description": map[string]any{"type": "string", "description": "Feature description"},
					},
				},
			},
		},
		"example": map[string]any{
			"type":     "features",
			"layout":   "grid",
			"title":    "Everything you need to succeed",
			"subtitle": "Powerful features designed for modern teams",
			"items": []any{
				map[string]any{
					"icon":        "🚀",
					"title":       "Lightning Fast",
					"description": "Built for speed with cutting-edge technology.",
				},
				map[string]any{
					"icon":        "🔒",
					"title":       "Enterprise Security",
					"description": "Bank-level encryption and compliance.",
				},
			},
		},
	}
}

func gridSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"items"},
		"properties": map[string]any{
			"title":    map[string]any{"type": "string", "description": "Section title"},
			"subtitle": map[string]any{"type": "string", "description": "Section subtitle"},
			"items": map[string]any{
				"type":        "array",
				"description": "Grid items",
				"items": map[string]any{
					"type":     "object",
					"required": []string{"title", "description"},
					"properties": map[string]any{
						"title":       map[string]any{"type": "string", "description": "Item title"},
						"description": map[string]any{"type": "string", "description": "Item description"},
						"image":       map[string]any{"type": "string", "format": "uri", "description": "Item image URL"},
						"link":        map[string]any{"type": "string", "format": "uri", "description": "Item link URL"},
					},
				},
			},
		},
		"example": map[string]any{
			"type":     "grid",
			"title":    "Shop by Category",
			"subtitle": "Find exactly what you're looking for",
			"items": []any{
				map[string]any{
					"title":       "Women's Collection",
					"description": "Elegant dresses, tops, and more",
					"image":       "https://images.unsplash.com/photo-1487412720507-e7ab37603c6f?w=400",
					"link":        "/shop/women",
				},
			},
		},
	}
}

func statsSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"items"},
		"properties": map[string]any{
			"title": map[string]any{"type": "string", "description": "Section title"},
			"items": map[string]any{
				"type":        "array",
				"description": "Statistics list",
				"items": map[string]any{
					"type":     "object",
					"required": []string{"value", "label"},
					"properties": map[string]any{
						"value": map[string]any{"type": "string", "description": `The metric value (e.g., "50K+", "99.9%")`},
						"label": map[string]any{"type": "string", "description": "Metric description"},
					},
				},
			},
		},
		"example": map[string]any{
			"type":  "stats",
			"title": "Proven results that speak for themselves",
			"items": []any{
				map[string]any{"value": "50K+", "label": "Active Teams"},
				map[string]any{"value": "99.9%", "label": "Uptime SLA"},
				map[string]any{"value": "2M+", "label": "Tasks Completed"},
			},
		},
	}
}

func teamSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"members"},
		"properties": map[string]any{
			"title":    map[string]any{"type": "string", "description": "Section title"},
			"subtitle": map[string]any{"type": "string", "description": "Section subtitle"},
			"members": map[string]any{
				"type":        "array",
				"description": "Team member list",
				"items": map[string]any{
					"type":     "object",
					"required": []string{"name", "role", "image"},
					"properties": map[string]any{
						"name":  map[string]any{"type": "string", "description": "Member name"},
						"role":  map[string]any{"type": "string", "description": "Job title/position"},
						"bio":   map[string]any{"type": "string", "description": "Short biography"},
						"image": map[string]any{"type": "string", "format": "uri", "description": "Profile photo URL"},
					},
				},
			},
		},
		"example": map[string]any{
			"type":     "team",
			"title":    "Meet Our Team",
			"subtitle": "Passionate people behind your dining experience",
			"members": []any{
				map[string]any{
					"name":  "Marco Rossi",
					"role":  "Executive Chef",
					"bio":   "Trained in Rome, Marco brings 20 years of expertise.",
					"image": "https://i.pravatar.cc/300?img=12",
				},
			},
		},
	}
}

func testimonialsSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"items"},
		"properties": map[string]any{
			"title":    map[string]any{"type": "string", "description": "Section title"},
			"subtitle": map[string]any{"type": "string", "description": "Section subtitle"},
			"items": map[string]any{
				"type":        "array",
				"description": "Testimonial list",
				"items": map[string]any{
					"type":     "object",
					"required": []string{"quote", "author", "role"},
					"properties": map[string]any{
						"quote":   map[string]any{"type": "string", "description": "Testimonial text"},
						"author":  map[string]any{"type": "string", "description": "Person's name"},
						"role":    map[string]any{"type": "string", "description": "Person's job title"},
						"company": map[string]any{"type": "string", "description": "Company name (optional)"},
						"avatar":  map[string]any{"type": "string", "format": "uri", "description": "Avatar image URL"},
					},
				},
			},
		},
		"example": map[string]any{
			"type":     "testimonials",
			"title":    "Loved by teams around the world",
			"subtitle": "See what our customers have to say",
			"items": []any{
				map[string]any{
					"quote":   "CloudFlow transformed how our team works.",
					"author":  "Sarah Chen",
					"role":    "VP of Engineering",
					"company": "TechCorp",
					"avatar":  "https://i.pravatar.cc/150?img=1",
				},
			},
		},
	}
}

func ctaSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"title"},
		"properties": map[string]any{
			"title":    map[string]any{"type": "string", "description": "CTA headline"},
			"subtitle": map[string]any{"type": "string", "description": "Supporting text"},
			"cta": map[string]any{
				"type":        "object",
				"description": "Action buttons",
				"properties": map[string]any{
					"primary": map[string]any{
						"type":     "object",
						"required": []string{"text", "href"},
						"properties": map[string]any{
							"text": map[string]any{"type": "string", "description": "Button text"},
							"href": map[string]any{"type": "string", "description": "Button URL"},
						},
					},
					"secondary": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"text": map[string]any{"type": "string", "description": "Button text"},
							"href": map[string]any{"type": "string", "description": "Button URL"},
						},
					},
				},
			},
		},
		"example": map[string]any{
			"type":     "cta",
			"title":    "Ready to transform your workflow?",
			"subtitle": "Join 50,000+ teams already using CloudFlow",
			"cta": map[string]any{
				"primary":   map[string]any{"text": "Start Free Trial", "href": "/signup"},
				"secondary": map[string]any{"text": "Schedule Demo", "href": "/demo"},
			},
		},
	}
}

func contactSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"title", "form"},
		"properties": map[string]any{
			"title": map[string]any{"type": "string"},
			"layout": map[string]any{
				"type": "string",
				"enum": []string{"form-only", "split", "side-by-side"},
			},
			"form": map[string]any{
				"type":     "object",
				"required": []string{"action", "fields"},
				"properties": map[string]any{
					"action": map[string]any{"type": "string", "format": "uri"},
					"method": map[string]any{"type": "string", "enum": []string{"POST", "GET"}, "default": "POST"},
					"fields": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type":     "object",
							"required": []string{"name", "label", "type"},
							"properties": map[string]any{
								"name":  map[string]any{"type": "string"},
								"label": map[string]any{"type": "string"},
								"type": map[string]any{
									"type": "string",
									"enum": []string{"text", "email", "tel", "textarea", "select"},
								},
								"required": map[string]any{"type": "boolean"},
							},
						},
					},
				},
			},
		},
	}
}

func pricingSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"items"},
		"properties": map[string]any{
			"title":    map[string]any{"type": "string", "description": "Section title"},
			"subtitle": map[string]any{"type": "string", "description": "Section subtitle"},
			"items": map[string]any{
				"type":        "array",
				"description": "Pricing plan list",
				"items": map[string]any{
					"type":     "object",
					"required": []string{"name", "price", "features", "cta"},
					"properties": map[string]any{
						"name":        map[string]any{"type": "string", "description": "Plan name"},
						"price":       map[string]any{"type": "string", "description": `Price amount (e.g., "$9", "Custom")`},
						"period":      map[string]any{"type": "string", "description": `Billing period (e.g., "/month", "/year", "")`},
						"description": map[string]any{"type": "string", "description": "Plan description"},
						"features": map[string]any{
							"type":        "array",
							"description": "List of features included",
							"items":       map[string]any{"type": "string"},
						},
						"cta": map[string]any{
							"type":        "object",
							"description": "Call-to-action button",
							"required":    []string{"text", "href"},
							"properties": map[string]any{
								"text": map[string]any{"type": "string", "description": "Button text"},
								"href": map[string]any{"type": "string", "description": "Button URL"},
							},
						},
						"highlighted": map[string]any{"type": "boolean", "description": "Whether to highlight this plan"},
					},
				},
			},
		},
		"example": map[string]any{
			"type":     "pricing",
			"title":    "Simple, transparent pricing",
			"subtitle": "Choose the perfect plan for your team",
			"items": []any{
				map[string]any{
					"name":        "Professional",
					"price":       "$29",
					"period":      "/user/month",
					"description": "For growing teams that need more power",
					"features": []any{
						"Unlimited users",
						"100 GB storage",
						"Advanced integrations",
						"Priority support",
					},
					"cta":         map[string]any{"text": "Start Free Trial", "href": "/signup?plan=pro"},
					"highlighted": true,
				},
			},
		},
	}
}

func faqSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"items"},
		"properties": map[string]any{
			"title": map[string]any{"type": "string", "description": "Section title"},
			"items": map[string]any{
				"type":        "array",
				"description": "FAQ list",
				"items": map[string]any{
					"type":     "object",
					"required": []string{"question", "answer"},
					"properties": map[string]any{
						"question": map[string]any{"type": "string", "description": "The question"},
						"answer":   map[string]any{"type": "string", "description": "The answer"},
					},
				},
			},
		},
		"example": map[string]any{
			"type":  "faq",
			"title": "Frequently Asked Questions",
			"items": []any{
				map[string]any{
					"question": "Do I need experience to join?",
					"answer":   "Not at all! We welcome members of all fitness levels.",
				},
				map[string]any{
					"question": "What should I bring to my first class?",
					"answer":   "Just bring comfortable workout clothes and a water bottle.",
				},
			},
		},
	}
}

func blogSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"title", "posts"},
		"properties": map[string]any{
			"title": map[string]any{"type": "string"},
			"layout": map[string]any{
				"type":    "string",
				"enum":    []string{"grid", "list", "masonry"},
				"default": "grid",
			},
			"posts": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []string{"title", "date", "link"},
					"properties": map[string]any{
						"title":   map[string]any{"type": "string"},
						"excerpt": map[string]any{"type": "string"},
						"image":   map[string]any{"type": "string", "format": "uri"},
						"author": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"name":   map[string]any{"type": "string"},
								"avatar": map[string]any{"type": "string", "format": "uri"},
							},
						},
						"date": map[string]any{"type": "string"},
						"link": map[string]any{"type": "string", "format": "uri"},
					},
				},
			},
		},
	}
}

func gallerySchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"images"},
		"properties": map[string]any{
			"title":    map[string]any{"type": "string", "description": "Section title"},
			"subtitle": map[string]any{"type": "string", "description": "Section subtitle"},
			"images": map[string]any{
				"type":        "array",
				"description": "Image list",
				"items": map[string]any{
					"type":     "object",
					"required": []string{"src", "alt"},
					"properties": map[string]any{
						"src": map[string]any{"type": "string", "format": "uri", "description": "Image URL"},
						"alt": map[string]any{"type": "string", "description": "Alt text for accessibility"},
					},
				},
			},
		},
		"example": map[string]any{
			"type":     "gallery",
			"title":    "Taste of Italy",
			"subtitle": "A visual journey through our culinary creations",
			"images": []any{
				map[string]any{
					"src": "https://images.unsplash.com/photo-1621996346565-e3dbc646d9a9?w=600",
					"alt": "Pasta dish",
				},
				map[string]any{
					"src": "https://images.unsplash.com/photo-1565299624946-b28f40a0ae38?w=600",
					"alt": "Pizza margherita",
				},
			},
		},
	}
}

func processSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"title", "steps"},
		"properties": map[string]any{
			"title": map[string]any{"type": "string"},
			"layout": map[string]any{
				"type":    "string",
				"enum":    []string{"vertical", "horizontal", "grid"},
				"default": "vertical",
			},
			"steps": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []string{"title"},
					"properties": map[string]any{
						"number":      map[string]any{"type": "number"},
						"title":       map[string]any{"type": "string"},
						"description": map[string]any{"type": "string"},
						"icon":        map[string]any{"type": "string"},
					},
				},
			},
		},
	}
}

func videoSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"video"},
		"properties": map[string]any{
			"title": map[string]any{"type": "string"},
			"video": map[string]any{
				"type":     "object",
				"required": []string{"url"},
				"properties": map[string]any{
					"url":       map[string]any{"type": "string", "format": "uri"},
					"provider":  map[string]any{"type": "string", "enum": []string{"youtube", "vimeo", "custom"}},
					"thumbnail": map[string]any{"type": "string", "format": "uri"},
				},
			},
		},
	}
}

func partnersSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"partners"},
		"properties": map[string]any{
			"title": map[string]any{"type": "string"},
			"layout": map[string]any{
				"type":    "string",
				"enum":    []string{"grid", "carousel", "marquee"},
				"default": "grid",
			},
			"partners": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []string{"name", "logo"},
					"properties": map[string]any{
						"name": map[string]any{"type": "string"},
						"logo": map[string]any{"type": "string", "format": "uri"},
						"link": map[string]any{"type": "string", "format": "uri"},
					},
				},
			},
		},
	}
}

func logoCloudSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"logos"},
		"properties": map[string]any{
			"title": map[string]any{"type": "string", "description": "Section title"},
			"logos": map[string]any{
				"type":        "array",
				"description": "Logo list",
				"items": map[string]any{
					"type":     "object",
					"required": []string{"name", "src"},
					"properties": map[string]any{
						"name": map[string]any{"type": "string", "description": "Company name"},
						"src":  map[string]any{"type": "string", "format": "uri", "description": "Logo image URL"},
					},
				},
			},
		},
		"example": map[string]any{
			"type":  "logo-cloud",
			"title": "Trusted by innovative teams worldwide",
			"logos": []any{
				map[string]any{
					"name": "TechCorp",
					"src":  "https://via.placeholder.com/150x50/3b82f6/ffffff?text=TechCorp",
				},
				map[string]any{
					"name": "DataFlow",
					"src":  "https://via.placeholder.com/150x50/3b82f6/ffffff?text=DataFlow",
				},
			},
		},
	}
}

func contentSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"content"},
		"properties": map[string]any{
			"title":    map[string]any{"type": "string", "description": "Section title"},
			"subtitle": map[string]any{"type": "string", "description": "Section subtitle"},
			"content":  map[string]any{"type": "string", "description": "Main text content (supports markdown)"},
			"image": map[string]any{
				"type":        "object",
				"description": "Side image",
				"properties": map[string]any{
					"src":      map[string]any{"type": "string", "format": "uri", "description": "Image URL"},
					"alt":      map[string]any{"type": "string", "description": "Alt text"},
					"position": map[string]any{"type": "string", "enum": []string{"left", "right"}, "description": "Image position"},
				},
			},
		},
		"example": map[string]any{
			"type":     "content",
			"title":    "Programs Designed for You",
			"subtitle": "Whatever your fitness goal, we have a program",
			"content": "At FitFusion, we believe fitness is personal.\n\n" +
				"**Strength Training** - Build muscle and increase power.\n" +
				"**Cardio & HIIT** - Burn calories and boost endurance.",
			"image": map[string]any{
				"src":      "https://images.unsplash.com/photo-1571019614242-c5c5dee9f50b?w=800",
				"alt":      "Fitness training session",
				"position": "right",
			},
		},
	}
}
