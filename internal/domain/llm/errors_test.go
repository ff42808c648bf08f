package llm_test

import (
	"errors"
	"fmt"
	"testing"

	"capper-server/internal/domain/llm"
)

func TestKindOf(t *testing.T) {
	base := errors.New("boom")

	tests := []struct {
		name string
		err  error
		want llm.ErrorKind
	}{
		{"overflow", llm.NewCallError(llm.KindOverflow, base), llm.KindOverflow},
		{"generic", llm.NewCallError(llm.KindGeneric, base), llm.KindGeneric},
		{"wrapped overflow", fmt.Errorf("send: %w", llm.NewCallError(llm.KindOverflow, base)), llm.KindOverflow},
		{"untagged defaults to generic", base, llm.KindGeneric},
		{"nil defaults to generic", nil, llm.KindGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := llm.KindOf(tt.err); got != tt.want {
				t.Fatalf("KindOf = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCallError_Unwrap(t *testing.T) {
	base := errors.New("boom")
	tagged := llm.NewCallError(llm.KindOverflow, base)

	if !errors.Is(tagged, base) {
		t.Fatal("tagged error must unwrap to the provider error")
	}
}
