package models

// QueryType is the intent detected in an orchestrator message.
type QueryType string

const (
	QueryWhale    QueryType = "whale"
	QueryNews     QueryType = "news"
	QueryCombined QueryType = "combined"
	QueryGeneral  QueryType = "general"
)

const (
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// OrchestratorResponse is the rendered reply to a chat message.
type OrchestratorResponse struct {
	Role      string        `json:"role"`
	QueryType QueryType     `json:"queryType"`
	Response  string        `json:"response"`
	Data      *ResponseData `json:"data,omitempty"`
}

// ResponseData carries the analyzer payloads the response was rendered from.
// A nil field means the analyzer was not called or failed.
type ResponseData struct {
	WhaleData *AnalysisResponse `json:"whaleData,omitempty"`
	NewsData  *NewsResponse     `json:"newsData,omitempty"`
}
