package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line   string
		move   MoveName
		params string
	}{
		{"JOIN", Join, ""},
		{"fold", Fold, ""},
		{" call ", Call, ""},
		{"STATUS", Status, ""},
		{"exit", Exit, ""},
		{"EXCHANGE", Exchange, ""},
		{"exchange 2-h, 10-s", Exchange, "2-H, 10-S"},
		{"RAISE 50", Raise, "50"},
		{"NEW_GAME 2, 10", NewGame, "2, 10"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			req, err := ParseCommand(tt.line, 4, 2)
			assert.NoError(t, err)
			assert.Equal(t, &Request{GameID: "4", PlayerID: "2", Move: tt.move, Params: tt.params}, req)
		})
	}
}

func TestParseCommand_Invalid(t *testing.T) {
	for _, line := range []string{"", "CHECK", "RAISE", "NEW_GAME", "FOLD now", "JOIN 1"} {
		t.Run(line, func(t *testing.T) {
			req, err := ParseCommand(line, 0, 0)
			assert.Nil(t, req)
			assert.ErrorIs(t, err, ErrInvalidCommand)
		})
	}
}
