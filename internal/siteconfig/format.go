package siteconfig

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// FormattedResponse carries the same payload in JSON and YAML renditions.
type FormattedResponse struct {
	JSON       any    `json:"json"`
	YAML       string `json:"yaml"`
	JSONString string `json:"jsonString"`
}

// Download is one downloadable rendition of a payload.
type Download struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
	MimeType string `json:"mimeType"`
}

// DownloadableResponse is a FormattedResponse plus ready-to-save files.
type DownloadableResponse struct {
	FormattedResponse
	Downloads struct {
		JSON Download `json:"json"`
		YAML Download `json:"yaml"`
	} `json:"downloads"`
}

// FormatResponse renders data as indented JSON and YAML.
func FormatResponse(data any) (FormattedResponse, error) {
	jsonBytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return FormattedResponse{}, fmt.Errorf("encode json: %w", err)
	}
	yamlBytes, err := yaml.Marshal(data)
	if err != nil {
		return FormattedResponse{}, fmt.Errorf("encode yaml: %w", err)
	}
	return FormattedResponse{
		JSON:       data,
		YAML:       strings.TrimRight(string(yamlBytes), "\n"),
		JSONString: string(jsonBytes),
	}, nil
}

// DownloadableFormat wraps FormatResponse with filenames for saving.
func DownloadableFormat(data any, filename string) (DownloadableResponse, error) {
	if filename == "" {
		filename = "output"
	}
	formatted, err := FormatResponse(data)
	if err != nil {
		return DownloadableResponse{}, err
	}
	out := DownloadableResponse{FormattedResponse: formatted}
	out.Downloads.JSON = Download{
		Filename: filename + ".json",
		Content:  formatted.JSONString,
		MimeType: "application/json",
	}
	out.Downloads.YAML = Download{
		Filename: filename + ".yaml",
		Content:  formatted.YAML,
		MimeType: "text/yaml",
	}
	return out, nil
}
