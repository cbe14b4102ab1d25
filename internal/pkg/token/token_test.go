package token

import (
	"context"
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	code, err := Generate(CodeLength)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(code) != CodeLength {
		t.Errorf("Generate() length = %d, want %d", len(code), CodeLength)
	}
	for _, ch := range code {
		if !strings.ContainsRune(Alphabet, ch) {
			t.Errorf("Generate() produced %q outside the alphabet", ch)
		}
	}
}

func TestGenerateUnique(t *testing.T) {
	ctx := context.Background()

	t.Run("first candidate free", func(t *testing.T) {
		code, err := GenerateUnique(ctx, func(ctx context.Context, code string) (bool, error) {
			return false, nil
		})
		if err != nil {
			t.Fatalf("GenerateUnique() error = %v", err)
		}
		if len(code) != CodeLength {
			t.Errorf("GenerateUnique() length = %d, want %d", len(code), CodeLength)
		}
	})

	t.Run("widens after repeated collisions", func(t *testing.T) {
		calls := 0
		code, err := GenerateUnique(ctx, func(ctx context.Context, code string) (bool, error) {
			calls++
			// Every standard-length candidate collides
			return len(code) == CodeLength, nil
		})
		if err != nil {
			t.Fatalf("GenerateUnique() error = %v", err)
		}
		if len(code) != FallbackLength {
			t.Errorf("GenerateUnique() length = %d, want fallback %d", len(code), FallbackLength)
		}
		if calls != maxAttempts+1 {
			t.Errorf("exists called %d times, want %d", calls, maxAttempts+1)
		}
	})

	t.Run("gives up when fallback also collides", func(t *testing.T) {
		_, err := GenerateUnique(ctx, func(ctx context.Context, code string) (bool, error) {
			return true, nil
		})
		if err == nil {
			t.Fatal("GenerateUnique() error = nil, want error")
		}
	})
}
