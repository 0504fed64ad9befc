package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKeyword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Almoço", "almoco"},
		{"CAFÉ", "cafe"},
		{"Reunião de Equipe", "reuniao de equipe"},
		{"lunch", "lunch"},
		{"Férias", "ferias"},
		{"déjà-vu", "deja-vu"},
		{"", ""},
		{"日本語 meeting", " meeting"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, NormalizeKeyword(tc.in))
		})
	}
}
