package observability

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// EventType categorizes a structured log event.
type EventType string

const (
	EventTypeToolCall   EventType = "tool_call"
	EventTypeToolResult EventType = "tool_result"
	EventTypeLLM        EventType = "llm"
	EventTypePlugin     EventType = "plugin"
	EventTypeGateway    EventType = "gateway"
	EventTypeError      EventType = "error"
)

// Event is one structured log entry.
type Event struct {
	Type      EventType `json:"type"`
	ChatID    string    `json:"chat_id,omitempty"`
	Tool      string    `json:"tool,omitempty"`
	Plugin    string    `json:"plugin,omitempty"`
	Data      any       `json:"data,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Logger emits JSON events to stdout and mirrors LLM traffic to a
// rotating jsonl file for later inspection.
type Logger struct {
	llmLogPath string
	maxSize    int64
}

func NewLogger() *Logger {
	return &Logger{
		llmLogPath: filepath.Join("logs", "llm.jsonl"),
		maxSize:    10 * 1024 * 1024,
	}
}

func (l *Logger) Log(evt Event) {
	if evt.Timestamp.IsZero() {
		evt.Timestamp = time.Now()
	}
	data, err := json.Marshal(evt)
	if err != nil {
		fmt.Printf("{\"error\": \"failed to marshal event: %v\"}\n", err)
		return
	}
	fmt.Println(string(data))

	if evt.Type == EventTypeLLM {
		l.appendToFile(data)
	}
}

func (l *Logger) appendToFile(data []byte) {
	if err := os.MkdirAll(filepath.Dir(l.llmLogPath), 0755); err != nil {
		log.Printf("failed to create log directory: %v", err)
		return
	}

	if info, err := os.Stat(l.llmLogPath); err == nil && info.Size() > l.maxSize {
		l.rotate()
	}

	f, err := os.OpenFile(l.llmLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Printf("failed to open log file: %v", err)
		return
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		log.Printf("failed to write to log file: %v", err)
	}
}

// rotate keeps a single .old generation.
func (l *Logger) rotate() {
	oldPath := l.llmLogPath + ".old"
	_ = os.Remove(oldPath)
	_ = os.Rename(l.llmLogPath, oldPath)
}

func (l *Logger) LogToolCall(chatID, tool, args string) {
	l.Log(Event{
		Type:   EventTypeToolCall,
		ChatID: chatID,
		Tool:   tool,
		Data:   map[string]string{"args": args},
	})
}

func (l *Logger) LogToolResult(chatID, tool, result string) {
	l.Log(Event{
		Type:   EventTypeToolResult,
		ChatID: chatID,
		Tool:   tool,
		Data:   map[string]string{"result": result},
	})
}

func (l *Logger) LogLLM(chatID, response string, toolCalls int) {
	l.Log(Event{
		Type:   EventTypeLLM,
		ChatID: chatID,
		Data: map[string]any{
			"response":   response,
			"tool_calls": toolCalls,
		},
	})
}

func (l *Logger) LogPlugin(plugin, status string) {
	l.Log(Event{
		Type:   EventTypePlugin,
		Plugin: plugin,
		Data:   map[string]string{"status": status},
	})
}

func (l *Logger) LogError(chatID string, err error) {
	l.Log(Event{
		Type:   EventTypeError,
		ChatID: chatID,
		Data:   map[string]string{"error": err.Error()},
	})
}
