package model

import "time"

const (
	LineCommand = "command"
	LineOutput  = "output"
	LineError   = "error"
)

type TerminalLine struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type ExecRequest struct {
	Command string `json:"command"`
}

type ExecResponse struct {
	Accepted bool           `json:"accepted"`
	Cleared  bool           `json:"cleared"`
	Line     *TerminalLine  `json:"line,omitempty"`
	Lines    []TerminalLine `json:"lines,omitempty"`
}

type HistoryState struct {
	Input   string   `json:"input"`
	Index   int      `json:"index"`
	Entries []string `json:"entries"`
}

type TerminalSessionInfo struct {
	ID        string    `json:"id"`
	Lines     int       `json:"lines"`
	History   int       `json:"history"`
	Pending   int       `json:"pending"`
	CreatedAt time.Time `json:"createdAt"`
}
