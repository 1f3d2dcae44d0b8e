package entity

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestNewChatMessage(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name      string
		sessionID string
		role      string
		message   string
		wantErr   bool
	}{
		{name: "valid user message", sessionID: "s1", role: RoleUser, message: "hola", wantErr: false},
		{name: "valid assistant message", sessionID: "s1", role: RoleAssistant, message: "buenas", wantErr: false},
		{name: "invalid role", sessionID: "s1", role: "system", message: "hola", wantErr: true},
		{name: "empty role", sessionID: "s1", role: "", message: "hola", wantErr: true},
		{name: "blank session id", sessionID: "  ", role: RoleUser, message: "hola", wantErr: true},
		{name: "blank message", sessionID: "s1", role: RoleUser, message: "  ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewChatMessage(0, tt.sessionID, tt.role, tt.message, now)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected validation error, got message %+v", m)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if m.Role != tt.role || m.SessionID != tt.sessionID {
				t.Errorf("message fields not preserved: %+v", m)
			}
		})
	}
}

func buildHistory(t *testing.T, n int) []*ChatMessage {
	t.Helper()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	msgs := make([]*ChatMessage, 0, n)
	for i := 0; i < n; i++ {
		role := RoleUser
		if i%2 == 1 {
			role = RoleAssistant
		}
		m, err := NewChatMessage(int64(i+1), "s1", role, fmt.Sprintf("mensaje %d", i+1), base.Add(time.Duration(i)*time.Second))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		msgs = append(msgs, m)
	}
	return msgs
}

func TestChatContextRecentMessages(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		wantCount int
		wantFirst string
	}{
		{name: "empty history", total: 0, wantCount: 0},
		{name: "shorter than window", total: 4, wantCount: 4, wantFirst: "mensaje 1"},
		{name: "exactly the window", total: 6, wantCount: 6, wantFirst: "mensaje 1"},
		{name: "longer than window keeps the tail", total: 10, wantCount: 6, wantFirst: "mensaje 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := NewChatContext(buildHistory(t, tt.total))
			recent := ctx.RecentMessages()
			if len(recent) != tt.wantCount {
				t.Fatalf("expected %d messages, got %d", tt.wantCount, len(recent))
			}
			if tt.wantCount > 0 && recent[0].Message != tt.wantFirst {
				t.Errorf("expected first message %q, got %q", tt.wantFirst, recent[0].Message)
			}
		})
	}
}

func TestChatContextFormatForPrompt(t *testing.T) {
	ctx := NewChatContext(buildHistory(t, 2))
	got := ctx.FormatForPrompt()
	want := "Usuario: mensaje 1\nAsistente: mensaje 2"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestChatContextFormatForPromptEmpty(t *testing.T) {
	ctx := NewChatContext(nil)
	if got := ctx.FormatForPrompt(); got != "" {
		t.Errorf("expected empty render, got %q", got)
	}
}

func TestChatContextFormatKeepsWindow(t *testing.T) {
	ctx := NewChatContext(buildHistory(t, 10))
	got := ctx.FormatForPrompt()
	if strings.Contains(got, "mensaje 4") {
		t.Errorf("message outside the window rendered: %q", got)
	}
	if !strings.Contains(got, "mensaje 5") || !strings.Contains(got, "mensaje 10") {
		t.Errorf("trailing window not rendered: %q", got)
	}
}
