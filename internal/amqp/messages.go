package amqp

import (
	"encoding/json"
	"time"

	"jizhang/internal/core"
)

// ParseRequestMessage carries one raw natural-language input to be parsed.
// Producers are chat frontends or anything else collecting user text.
type ParseRequestMessage struct {
	Text      string    `json:"text"`
	Source    string    `json:"source"`
	Timestamp time.Time `json:"timestamp"`
}

// NewParseRequestMessage creates a parse request for the given text.
func NewParseRequestMessage(text, source string) *ParseRequestMessage {
	return &ParseRequestMessage{
		Text:      text,
		Source:    source,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *ParseRequestMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ParseRequestMessageFromJSON creates a message from JSON bytes.
func ParseRequestMessageFromJSON(data []byte) (*ParseRequestMessage, error) {
	var msg ParseRequestMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// RecordBatchMessage carries the structured records produced from one input.
type RecordBatchMessage struct {
	Source   string               `json:"source"`
	Records  []core.ExpenseRecord `json:"records"`
	ParsedAt time.Time            `json:"parsed_at"`
}

// NewRecordBatchMessage creates a record batch for downstream consumers.
func NewRecordBatchMessage(source string, records []core.ExpenseRecord) *RecordBatchMessage {
	return &RecordBatchMessage{
		Source:   source,
		Records:  records,
		ParsedAt: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *RecordBatchMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// RecordBatchMessageFromJSON creates a message from JSON bytes.
func RecordBatchMessageFromJSON(data []byte) (*RecordBatchMessage, error) {
	var msg RecordBatchMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
