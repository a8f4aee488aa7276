package logger

import (
	"fmt"
	"strings"
	"sync"
)

// LogEntry is one buffered message
type LogEntry struct {
	Level   string
	Message string
}

// NoopLogger prints nothing and keeps every message for test assertions.
// It is safe for concurrent use.
type NoopLogger struct {
	mu      sync.RWMutex
	entries []LogEntry
}

func NewNoopLogger() *NoopLogger {
	return &NoopLogger{entries: make([]LogEntry, 0)}
}

func (l *NoopLogger) Title(msg string, args ...any) {
	l.add("TITLE", fmt.Sprintf("\n"+msg+"\n", args...))
}

func (l *NoopLogger) Info(msg string, args ...any)  { l.addTrimmed("INFO", msg, args...) }
func (l *NoopLogger) Warn(msg string, args ...any)  { l.addTrimmed("WARN", msg, args...) }
func (l *NoopLogger) Error(msg string, args ...any) { l.addTrimmed("ERROR", msg, args...) }
func (l *NoopLogger) Debug(msg string, args ...any) { l.addTrimmed("DEBUG", msg, args...) }

func (l *NoopLogger) addTrimmed(level, msg string, args ...any) {
	msg = strings.Trim(msg, "\n")
	if msg == "" {
		return
	}
	l.add(level, fmt.Sprintf(msg, args...))
}

func (l *NoopLogger) add(level, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, LogEntry{Level: level, Message: message})
}

// GetEntries returns a copy of the buffer
func (l *NoopLogger) GetEntries() []LogEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	entries := make([]LogEntry, len(l.entries))
	copy(entries, l.entries)
	return entries
}

// GetMessagesByLevel returns the messages logged at level, in order
func (l *NoopLogger) GetMessagesByLevel(level string) []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var messages []string
	for _, entry := range l.entries {
		if entry.Level == level {
			messages = append(messages, entry.Message)
		}
	}
	return messages
}

func (l *NoopLogger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = l.entries[:0]
}

func (l *NoopLogger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Contains reports whether any message contains text
func (l *NoopLogger) Contains(text string) bool {
	return l.ContainsLevel("", text)
}

// ContainsLevel is Contains restricted to one level; an empty level matches all
func (l *NoopLogger) ContainsLevel(level, text string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, entry := range l.entries {
		if (level == "" || entry.Level == level) && strings.Contains(entry.Message, text) {
			return true
		}
	}
	return false
}
