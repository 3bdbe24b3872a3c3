package discord

import (
	"context"
	"testing"
	"time"

	"github.com/oklahomer/go-sarah/v4"
)

// plainInput is a sarah.Input that does not come from a slash command.
type plainInput struct{}

func (plainInput) SenderKey() string { return "key" }
func (plainInput) Message() string { return ".say hello" }
func (plainInput) SentAt() time.Time { return time.Now() }
func (plainInput) ReplyTo() sarah.OutputDestination { return nil }

func TestNewCommandProps(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("Unexpected panic: %+v", r)
		}
	}()

	props := NewCommandProps(NewDispatcher(BuildCatalog()))
	if props == nil {
		t.Fatal("Expected non-nil props")
	}
}

func TestMatchInvocation(t *testing.T) {
	if !matchInvocation(NewInvocation(SayCommand, nil)) {
		t.Error("Expected *Invocation to match")
	}

	if matchInvocation(plainInput{}) {
		t.Error("Expected other input not to match")
	}
}

func TestCommandFunc(t *testing.T) {
	fnc := commandFunc(NewDispatcher(BuildCatalog()))

	t.Run("invocation", func(t *testing.T) {
		res, err := fnc(context.Background(), NewInvocation(SayCommand, map[string]interface{}{"message": "hello"}))
		if err != nil {
			t.Fatalf("Unexpected error: %+v", err)
		}

		text, ok := res.Content.(*TextResponse)
		if !ok {
			t.Fatalf("Expected *TextResponse, got %T", res.Content)
		}

		if text.Body != "hello" {
			t.Errorf("Expected %q, got %q", "hello", text.Body)
		}

		if res.UserContext != nil {
			t.Error("Expected no UserContext")
		}
	})

	t.Run("other input", func(t *testing.T) {
		_, err := fnc(context.Background(), plainInput{})
		if err == nil {
			t.Error("Expected an error for non-invocation input")
		}
	})
}

func TestDispatcher_instruction(t *testing.T) {
	instruction := NewDispatcher(BuildCatalog()).instruction()

	if instruction != "Slash commands: /embed, /say" {
		t.Errorf("Unexpected instruction %q", instruction)
	}
}
