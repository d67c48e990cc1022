package response_models

type ChatReply struct {
	Reply        string  `json:"reply"`
	ResponseTime float64 `json:"response_time"`
}

type ChatRejection struct {
	Reply  string `json:"reply"`
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

type HistoryItem struct {
	// SessionID is set on account history, which spans sessions.
	SessionID    string   `json:"session_id,omitempty"`
	UserMessage  string   `json:"user_message"`
	BotResponse  string   `json:"bot_response"`
	Timestamp    string   `json:"timestamp"`
	ResponseTime *float64 `json:"response_time"`
	IsError      bool     `json:"is_error"`
}

type HistoryPage struct {
	History     []HistoryItem `json:"history"`
	Total       int64         `json:"total"`
	Page        int           `json:"page"`
	NumPages    int           `json:"num_pages"`
	HasNext     bool          `json:"has_next"`
	HasPrevious bool          `json:"has_previous"`
}

type ClearHistoryResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Deleted int64  `json:"deleted"`
}
