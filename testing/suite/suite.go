package suite

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Engine  *tictactoe.Engine
	Session *usecase.Session

	logs *syncBuffer
}

// New builds a session over a fresh engine with a logger that records JSON lines for inspection.
func New(t *testing.T, opts ...tictactoe.Option) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logs := &syncBuffer{}
	logger := slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	engine := tictactoe.NewEngine(opts...)

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Engine:  engine,
		Session: usecase.NewSession(logger, engine),
		logs:    logs,
	}
}

// LogEntries returns every JSON log line written so far, decoded.
func (that *Suite) LogEntries() []map[string]any {
	that.Helper()

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(that.logs.String()), "\n") {
		if line == "" {
			continue
		}

		entry := map[string]any{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			that.Fatalf("could not decode log line %q: %v", line, err)
		}
		entries = append(entries, entry)
	}

	return entries
}

// LogMessages returns the msg field of every log line.
func (that *Suite) LogMessages() []string {
	that.Helper()

	var messages []string
	for _, entry := range that.LogEntries() {
		if msg, ok := entry[slog.MessageKey].(string); ok {
			messages = append(messages, msg)
		}
	}

	return messages
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (that *syncBuffer) Write(p []byte) (int, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.buf.Write(p)
}

func (that *syncBuffer) String() string {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.buf.String()
}
