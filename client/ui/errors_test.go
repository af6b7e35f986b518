package ui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "actionable", err: &ActionableError{Message: "Локация закрыта"}, want: "Локация закрыта"},
		{name: "wrapped", err: fmt.Errorf("failed to select: %w", &ActionableError{Message: "Локация закрыта"}), want: "Локация закрыта"},
		{name: "plain", err: errors.New("boom"), want: "Ошибка"},
		{name: "nil", err: nil, want: "Ошибка"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MessageFor(tt.err, "Ошибка"))
		})
	}
}
