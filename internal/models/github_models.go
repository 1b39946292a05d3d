package models

type GitHubFileResponse struct {
	Content string `json:"content"`
	SHA     string `json:"sha"`
	Path    string `json:"path"`
	URL     string `json:"url"`
}

type GitHubFileEntry struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Type string `json:"type"`
	SHA  string `json:"sha"`
}

type GitHubRepoInfo struct {
	Name   string `json:"name"`
	Owner  string `json:"owner"`
	Branch string `json:"branch"`
	URL    string `json:"url"`
}
