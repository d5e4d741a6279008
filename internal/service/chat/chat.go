// Package chat implements the scripted portfolio assistant: an ordered
// keyword-rule table over the visitor's message, with one bit of
// per-topic memory (seen before or not) taken from the conversation
// history. It is deliberately not a language model.
package chat

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/SatyaSire/corporatepm/config"
)

// Sender identifies who produced a turn.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Turn is one message in a conversation. Turns live only in the
// visitor's session and are never persisted.
type Turn struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

type Service interface {
	// Greeting returns the fixed message a conversation opens with.
	Greeting() string

	// Reply picks the canned response for input given the prior turns.
	// Pure given its inputs, except for the random fallback choice.
	Reply(input string, history []Turn) string

	// TypingDelay is the cosmetic pause applied before delivering a
	// reply. No correctness depends on it.
	TypingDelay() time.Duration
}

type generator struct {
	rules     []rule
	fallbacks []string
	delay     time.Duration
	randIntN  func(n int) int
}

// rule maps a keyword set to its templates. followUp is empty for
// topics without a repeat variant. Rules are evaluated in slice order
// and the first match wins; two rules can match the same input, so
// the order is part of the behavior.
type rule struct {
	keywords  []string
	firstTime string
	followUp  string
}

func New(cfg config.ChatConfig) Service {
	delay := 1500 * time.Millisecond
	if cfg.TypingDelayMs > 0 {
		delay = time.Duration(cfg.TypingDelayMs) * time.Millisecond
	}
	return &generator{
		rules:     replyRules,
		fallbacks: fallbackReplies,
		delay:     delay,
		randIntN:  rand.IntN,
	}
}

func (g *generator) Greeting() string { return greeting }

func (g *generator) TypingDelay() time.Duration { return g.delay }

func (g *generator) Reply(input string, history []Turn) string {
	in := strings.ToLower(input)

	for _, r := range g.rules {
		if !containsAny(in, r.keywords) {
			continue
		}
		if r.followUp != "" && askedBefore(history, r.keywords) {
			return r.followUp
		}
		return r.firstTime
	}

	return g.fallbacks[g.randIntN(len(g.fallbacks))]
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// askedBefore reports whether any prior user turn already touched the
// topic. Assistant turns don't count: only what the visitor asked.
func askedBefore(history []Turn, keywords []string) bool {
	for _, t := range history {
		if t.Sender != SenderUser {
			continue
		}
		if containsAny(strings.ToLower(t.Content), keywords) {
			return true
		}
	}
	return false
}
