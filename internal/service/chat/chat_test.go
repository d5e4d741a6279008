package chat

import (
	"strings"
	"testing"
	"time"

	"github.com/SatyaSire/corporatepm/config"
)

func newTestGenerator() *generator {
	g := New(config.ChatConfig{}).(*generator)
	// Deterministic fallback choice for assertions that need it.
	g.randIntN = func(n int) int { return 0 }
	return g
}

func userTurn(content string) Turn {
	return Turn{Content: content, Sender: SenderUser}
}

func assistantTurn(content string) Turn {
	return Turn{Content: content, Sender: SenderAssistant}
}

func TestReply_TopicMatching(t *testing.T) {
	g := newTestGenerator()

	tests := []struct {
		name  string
		input string
		want  string // substring of the expected reply
	}{
		{"experience keyword", "Tell me about your experience", "6 years in product management"},
		{"years keyword maps to same topic", "How many years have you worked?", "6 years in product management"},
		{"skills", "What are your skills?", "product strategy"},
		{"projects", "Which projects have you shipped?", "12+ products"},
		{"leadership", "What's your leadership style?", "Leading teams is my favorite part"},
		{"hiring", "Are you open to a new job?", "contact form on this site"},
		{"salary", "What are your salary expectations?", "reach out directly"},
		{"case-insensitive", "YOUR EXPERIENCE?", "6 years in product management"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Reply(tt.input, nil)
			if !strings.Contains(got, tt.want) {
				t.Errorf("Reply(%q) = %q, want substring %q", tt.input, got, tt.want)
			}
		})
	}
}

// Rule order is the tie-break: "experience leading a team" matches both
// the experience and leadership keyword sets, and experience wins.
func TestReply_FirstRuleWins(t *testing.T) {
	g := newTestGenerator()

	got := g.Reply("Tell me about your experience leading a team", nil)
	if !strings.Contains(got, "6 years in product management") {
		t.Errorf("got %q, want the experience reply", got)
	}
}

func TestReply_FollowUpOnRepeatTopic(t *testing.T) {
	g := newTestGenerator()

	first := g.Reply("Tell me about your experience", nil)
	if !strings.Contains(first, "6 years in product management") {
		t.Fatalf("first ask: got %q", first)
	}

	history := []Turn{
		userTurn("Tell me about your experience"),
		assistantTurn(first),
	}
	second := g.Reply("More about your experience please", history)
	if !strings.Contains(second, "Since we were just talking about my experience") {
		t.Errorf("repeat ask: got %q, want the follow-up variant", second)
	}
}

// Assistant turns mention topic words constantly; only what the visitor
// asked may arm the follow-up variant.
func TestReply_AssistantTurnsDoNotArmFollowUp(t *testing.T) {
	g := newTestGenerator()

	history := []Turn{
		assistantTurn("I have lots of experience with teams and projects."),
	}
	got := g.Reply("Tell me about your experience", history)
	if !strings.Contains(got, "6 years in product management") {
		t.Errorf("got %q, want the first-time reply", got)
	}
}

// Topics without a follow-up variant repeat their single reply.
func TestReply_NoFollowUpVariantRepeats(t *testing.T) {
	g := newTestGenerator()

	history := []Turn{userTurn("What about your salary?")}
	got := g.Reply("Seriously, what salary do you want?", history)
	if !strings.Contains(got, "reach out directly") {
		t.Errorf("got %q, want the same salary reply", got)
	}
}

func TestReply_FallbackForUnmatchedInput(t *testing.T) {
	g := New(config.ChatConfig{}).(*generator)

	seen := map[string]bool{}
	for i := range g.fallbacks {
		g.randIntN = func(n int) int {
			if n != len(g.fallbacks) {
				t.Fatalf("randIntN(%d), want %d", n, len(g.fallbacks))
			}
			return i
		}
		got := g.Reply("zzz nothing matches this zzz", nil)
		if got == "" {
			t.Fatal("empty fallback reply")
		}
		seen[got] = true
	}
	if len(seen) != len(g.fallbacks) {
		t.Errorf("saw %d distinct fallbacks, want %d", len(seen), len(g.fallbacks))
	}
}

func TestGreeting(t *testing.T) {
	g := New(config.ChatConfig{})
	if !strings.Contains(g.Greeting(), "product management journey") {
		t.Errorf("greeting = %q", g.Greeting())
	}
}

func TestTypingDelay(t *testing.T) {
	if d := New(config.ChatConfig{}).TypingDelay(); d != 1500*time.Millisecond {
		t.Errorf("default delay = %v, want 1.5s", d)
	}
	if d := New(config.ChatConfig{TypingDelayMs: 10}).TypingDelay(); d != 10*time.Millisecond {
		t.Errorf("configured delay = %v, want 10ms", d)
	}
}
