package models

type ScrapedContent struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Usage       *Usage `json:"usage,omitempty"`
}

type Usage struct {
	Tokens int `json:"tokens"`
}

// JinaResponse mirrors the reader API envelope:
// { code, status, data: { title, description, url, content, usage } }
type JinaResponse struct {
	Code   int    `json:"code"`
	Status int    `json:"status"`
	Data   *struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		Content     string `json:"content"`
		Usage       *Usage `json:"usage"`
	} `json:"data"`
}
