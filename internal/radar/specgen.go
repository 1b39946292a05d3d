package radar

import (
	"context"
	"fmt"

	"github.com/vela-platform/vela/internal/clients"
	"github.com/vela-platform/vela/internal/models"
)

const (
	specTemperature = 0.7

	requirementsMaxTokens = 4000
	designMaxTokens       = 5000
	tasksMaxTokens        = 4000

	requirementsInputLimit = 8000
	designInputLimit       = 6000
	tasksInputLimit        = 4000
	contextDocLimit        = 4000
	tasksContextLimit      = 3000
)

// GenerateSpec produces a requirements, design, or tasks document from
// scraped content, threading earlier documents through as context.
func (a *Analyzer) GenerateSpec(ctx context.Context, req models.GenerationRequest) (*models.GenerationResponse, error) {
	var prompt string
	maxTokens := requirementsMaxTokens

	reqCtx := req.Context
	if reqCtx == nil {
		reqCtx = &models.GenerationContext{}
	}

	switch req.Type {
	case "requirements":
		prompt = requirementsPrompt(req.Content)
	case "design":
		prompt = designPrompt(req.Content, reqCtx.Requirements)
		maxTokens = designMaxTokens
	case "tasks":
		prompt = tasksPrompt(req.Content, reqCtx.Requirements, reqCtx.Design)
		maxTokens = tasksMaxTokens
	default:
		return nil, fmt.Errorf("unknown generation type: %s", req.Type)
	}

	result, err := a.llm.Complete(ctx, req.Model, prompt, clients.CompletionOptions{
		Temperature: specTemperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return nil, err
	}

	return &models.GenerationResponse{
		Document:   result.Content,
		Model:      req.Model,
		TokensUsed: result.TokensUsed,
	}, nil
}

func requirementsPrompt(content string) string {
	return fmt.Sprintf(`You are a technical requirements analyst. Based on the following content extracted from a website or documentation, generate a comprehensive Requirements Document.

The requirements document should follow this structure:

# Requirements Document

## Introduction
[Brief overview of what the system/feature does]

## Glossary
- **Term**: Definition
[Define all technical terms and system names]

## Requirements

### Requirement 1
**User Story:** As a [role], I want [feature], so that [benefit]

#### Acceptance Criteria
1. WHEN [event] THEN the system SHALL [response]
2. WHILE [state] THE system SHALL [response]
3. IF [condition] THEN the system SHALL [response]
[Continue with more criteria]

[Continue with more requirements...]

---

Content to analyze:
%s

Generate a well-structured requirements document with clear user stories and EARS-compliant acceptance criteria.`, truncate(content, requirementsInputLimit))
}

func designPrompt(content, requirements string) string {
	contextSection := ""
	withReqs := ""
	if requirements != "" {
		contextSection = fmt.Sprintf("\n\nExisting Requirements Document:\n%s\n", truncate(requirements, contextDocLimit))
		withReqs = " and requirements document"
	}

	return fmt.Sprintf(`You are a software architect. Based on the following content%s, generate a comprehensive Design Document.

The design document should follow this structure:

# Design Document

## Overview
[High-level description of the system architecture]

## Architecture
[Describe the overall architecture with diagrams if applicable]

## Components and Interfaces
[Detail each major component and their interfaces]

## Data Models
[Define data structures and relationships]

## Error Handling
[Describe error handling strategy]

## Testing Strategy
[Outline testing approach]

---

Content to analyze:
%s%s

Generate a detailed design document with clear architecture and component descriptions.`, withReqs, truncate(content, designInputLimit), contextSection)
}

func tasksPrompt(content, requirements, design string) string {
	contextSection := ""
	if requirements != "" {
		contextSection += fmt.Sprintf("\nRequirements Document:\n%s\n", truncate(requirements, tasksContextLimit))
	}
	if design != "" {
		contextSection += fmt.Sprintf("\nDesign Document:\n%s\n", truncate(design, tasksContextLimit))
	}

	return fmt.Sprintf(`You are a technical project manager. Based on the following content, requirements, and design, generate an Implementation Plan with actionable tasks.

The implementation plan should follow this structure:

# Implementation Plan

- [ ] 1. Task name
  - Detailed description
  - Specific files or components to create/modify
  - _Requirements: X.X, Y.Y_

- [ ] 2. Another task
  - [ ] 2.1 Sub-task
    - Details
    - _Requirements: X.X_
  - [ ] 2.2 Another sub-task
    - Details
    - _Requirements: Y.Y_

[Continue with more tasks...]

---

Content to analyze:
%s%s

Generate a comprehensive task list with clear, actionable items that can be executed by a development team. Focus on implementation tasks (writing code, creating components, etc.).`, truncate(content, tasksInputLimit), contextSection)
}
