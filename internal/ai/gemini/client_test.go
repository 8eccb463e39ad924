package gemini

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// scriptedChats hands out one scripted reply per created chat, in order.
type scriptedChats struct {
	mu      sync.Mutex
	replies []scriptedReply
	created []*scriptedChat
}

type scriptedReply struct {
	text string
	err  error
}

type scriptedChat struct {
	model    string
	config   *genai.GenerateContentConfig
	reply    scriptedReply
	messages []string
}

func (c *scriptedChat) SendMessage(_ context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	for _, part := range parts {
		c.messages = append(c.messages, part.Text)
	}
	if c.reply.err != nil {
		return nil, c.reply.err
	}
	return textResponse(c.reply.text), nil
}

func (s *scriptedChats) Create(_ context.Context, model string, config *genai.GenerateContentConfig, _ []*genai.Content) (chatSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.replies) == 0 {
		return nil, errors.New("no scripted reply left")
	}

	chat := &scriptedChat{model: model, config: config, reply: s.replies[0]}
	s.replies = s.replies[1:]
	s.created = append(s.created, chat)

	return chat, nil
}

func textResponse(text string) *genai.GenerateContentResponse {
	if text == "" {
		return &genai.GenerateContentResponse{}
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: text}}},
		}},
	}
}

// instantTimers makes every backoff fire immediately and records the requested delays.
func instantTimers(t *testing.T) *[]time.Duration {
	t.Helper()

	var delays []time.Duration
	original := newTimer
	newTimer = func(d time.Duration) *time.Timer {
		delays = append(delays, d)
		return time.NewTimer(0)
	}
	t.Cleanup(func() { newTimer = original })

	return &delays
}

var (
	internalErr = genai.APIError{Code: http.StatusInternalServerError, Status: "INTERNAL"}
	quotaErr    = genai.APIError{
		Code:    http.StatusTooManyRequests,
		Status:  "RESOURCE_EXHAUSTED",
		Message: "quota exhausted, retry after 60 seconds",
	}
)

func TestGenerateContentRetries(t *testing.T) {
	tests := []struct {
		name       string
		maxRetries int
		replies    []scriptedReply
		wantText   string
		wantErr    bool
		wantChats  int
		wantDelays []time.Duration
	}{
		{
			name:       "temporary error then success",
			maxRetries: 2,
			replies:    []scriptedReply{{err: internalErr}, {text: `{"overall_score": 7}`}},
			wantText:   `{"overall_score": 7}`,
			wantChats:  2,
			wantDelays: []time.Duration{retryBaseDelay},
		},
		{
			name:       "retries exhausted",
			maxRetries: 3,
			replies:    []scriptedReply{{err: internalErr}, {err: internalErr}, {err: internalErr}},
			wantErr:    true,
			wantChats:  3,
			wantDelays: []time.Duration{retryBaseDelay, 2 * retryBaseDelay},
		},
		{
			name:       "quota delay too long",
			maxRetries: 3,
			replies:    []scriptedReply{{err: quotaErr}},
			wantErr:    true,
			wantChats:  1,
		},
		{
			name:       "bad request is permanent",
			maxRetries: 3,
			replies:    []scriptedReply{{err: genai.APIError{Code: http.StatusBadRequest, Status: "INVALID_ARGUMENT"}}},
			wantErr:    true,
			wantChats:  1,
		},
		{
			name:       "empty response",
			maxRetries: 1,
			replies:    []scriptedReply{{}},
			wantErr:    true,
			wantChats:  1,
		},
		{
			name:       "zero retries still makes one attempt",
			maxRetries: 0,
			replies:    []scriptedReply{{text: "ok"}},
			wantText:   "ok",
			wantChats:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			delays := instantTimers(t)
			chats := &scriptedChats{replies: tt.replies}
			g := &Generator{chats: chats, model: DefaultModel, maxRetries: tt.maxRetries, logger: zap.NewNop()}

			text, err := g.GenerateContent(context.Background(), "You review resumes.", "Resume: Jane Doe")
			if (err != nil) != tt.wantErr {
				t.Fatalf("unexpected error state: %v", err)
			}
			if text != tt.wantText {
				t.Fatalf("expected %q, got %q", tt.wantText, text)
			}
			if len(chats.created) != tt.wantChats {
				t.Fatalf("expected %d chats, got %d", tt.wantChats, len(chats.created))
			}
			if len(*delays) != len(tt.wantDelays) {
				t.Fatalf("expected delays %v, got %v", tt.wantDelays, *delays)
			}
			for i := range tt.wantDelays {
				if (*delays)[i] != tt.wantDelays[i] {
					t.Fatalf("expected delays %v, got %v", tt.wantDelays, *delays)
				}
			}

			for _, chat := range chats.created {
				if chat.model != DefaultModel {
					t.Fatalf("unexpected model %q", chat.model)
				}
				if got := chat.config.SystemInstruction.Parts[0].Text; got != "You review resumes." {
					t.Fatalf("unexpected system instruction: %q", got)
				}
				if chat.config.ResponseMIMEType != "application/json" {
					t.Fatalf("unexpected response mime type: %q", chat.config.ResponseMIMEType)
				}
				if len(chat.messages) != 1 || chat.messages[0] != "Resume: Jane Doe" {
					t.Fatalf("unexpected chat messages: %+v", chat.messages)
				}
			}
		})
	}
}

func TestGenerateContentOmitsEmptySystemInstruction(t *testing.T) {
	chats := &scriptedChats{replies: []scriptedReply{{text: "ok"}}}
	g := &Generator{chats: chats, model: DefaultModel, maxRetries: 1, logger: zap.NewNop()}

	if _, err := g.GenerateContent(context.Background(), "  ", "msg"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if chats.created[0].config.SystemInstruction != nil {
		t.Fatalf("empty system instruction must not be sent")
	}
}

func TestGenerateContentRejectsEmptyMessage(t *testing.T) {
	chats := &scriptedChats{}
	g := &Generator{chats: chats, model: DefaultModel, maxRetries: 1, logger: zap.NewNop()}

	if _, err := g.GenerateContent(context.Background(), "sys", " \n "); err == nil {
		t.Fatal("expected error for empty message")
	}
	if len(chats.created) != 0 {
		t.Fatalf("no chat must be created for an empty message")
	}

	var nilGenerator *Generator
	if _, err := nilGenerator.GenerateContent(context.Background(), "sys", "msg"); err == nil {
		t.Fatal("expected error for nil generator")
	}
}

func TestGenerateContentStopsWhenCancelledDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	original := newTimer
	newTimer = func(time.Duration) *time.Timer {
		cancel()
		return time.NewTimer(time.Hour)
	}
	t.Cleanup(func() { newTimer = original })

	chats := &scriptedChats{replies: []scriptedReply{{err: internalErr}, {text: "never sent"}}}
	g := &Generator{chats: chats, model: DefaultModel, maxRetries: 2, logger: zap.NewNop()}

	_, err := g.GenerateContent(ctx, "sys", "msg")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(chats.created) != 1 {
		t.Fatalf("expected no attempt after cancellation, got %d chats", len(chats.created))
	}
}

func TestWait(t *testing.T) {
	t.Run("returns when the timer fires", func(t *testing.T) {
		if err := wait(context.Background(), time.Millisecond); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("returns promptly on cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		start := time.Now()
		err := wait(ctx, time.Hour)
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		if elapsed := time.Since(start); elapsed > time.Second {
			t.Fatalf("wait blocked for %v after cancellation", elapsed)
		}
	})

	t.Run("non-positive delay reports context state", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if err := wait(ctx, 0); !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		if err := wait(context.Background(), -time.Second); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestRetryDelay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		err   error
		delay time.Duration
		retry bool
	}{
		{name: "plain error", err: errors.New("boom"), retry: false},
		{name: "unavailable backs off linearly", err: genai.APIError{Code: http.StatusServiceUnavailable}, delay: 2 * retryBaseDelay, retry: true},
		{
			name:  "retry info detail",
			err:   genai.APIError{Code: http.StatusTooManyRequests, Details: []map[string]any{{"retryDelay": "12s"}}},
			delay: 12 * time.Second,
			retry: true,
		},
		{
			name:  "short delay in message",
			err:   genai.APIError{Code: http.StatusTooManyRequests, Message: "Please retry in 1.5s."},
			delay: 1500 * time.Millisecond,
			retry: true,
		},
		{
			name:  "milliseconds in message",
			err:   genai.APIError{Code: http.StatusBadGateway, Message: "retry after 250ms"},
			delay: 250 * time.Millisecond,
			retry: true,
		},
		{
			name:  "long delay in detail",
			err:   genai.APIError{Code: http.StatusTooManyRequests, Details: []map[string]any{{"retryDelay": "45s"}}},
			retry: false,
		},
		{name: "forbidden", err: genai.APIError{Code: http.StatusForbidden}, retry: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			delay, retry := retryDelay(tt.err, 2)
			if retry != tt.retry {
				t.Fatalf("expected retry=%v, got %v", tt.retry, retry)
			}
			if retry && delay != tt.delay {
				t.Fatalf("expected delay %v, got %v", tt.delay, delay)
			}
		})
	}
}

func TestModel(t *testing.T) {
	var g *Generator
	if g.Model() != "" {
		t.Fatalf("nil generator must report an empty model")
	}
	if got := (&Generator{model: DefaultModel}).Model(); got != DefaultModel {
		t.Fatalf("expected %q, got %q", DefaultModel, got)
	}
}
