package models

import "time"

// QueryEvent is emitted once per orchestrator response when the event stream is enabled.
type QueryEvent struct {
	RequestID     string    `json:"requestId"`
	Role          string    `json:"role"`
	QueryType     QueryType `json:"queryType"`
	Wallet        string    `json:"wallet,omitempty"`
	WhaleFallback bool      `json:"whaleFallback"`
	NewsFallback  bool      `json:"newsFallback"`
	Timestamp     time.Time `json:"timestamp"`
}
