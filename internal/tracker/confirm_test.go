package tracker

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptConfirmer(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"  yes  \n", true},
		{"n\n", false},
		{"\n", false},
		{"maybe\n", false},
		{"y", true}, // no trailing newline
		{"", false}, // EOF
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			p := NewPromptConfirmer(strings.NewReader(tt.input), &out)

			got, err := p.Confirm(context.Background(), "Delete habit \"Read\"?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "Delete habit \"Read\"? [y/N]: ", out.String())
		})
	}
}

func TestPromptConfirmerSequentialAnswers(t *testing.T) {
	p := NewPromptConfirmer(strings.NewReader("y\nn\n"), io.Discard)

	first, err := p.Confirm(context.Background(), "first?")
	require.NoError(t, err)
	second, err := p.Confirm(context.Background(), "second?")
	require.NoError(t, err)

	assert.True(t, first)
	assert.False(t, second)
}

func TestPromptConfirmerCancelled(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	p := NewPromptConfirmer(r, io.Discard)
	ok, err := p.Confirm(ctx, "waiting?")
	assert.False(t, ok)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPromptConfirmerReusableAfterCancel(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	p := NewPromptConfirmer(r, io.Discard)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := p.Confirm(ctx, "first?")
	require.ErrorIs(t, err, context.DeadlineExceeded)

	go func() { _, _ = w.Write([]byte("yes\n")) }()
	ok, err := p.Confirm(context.Background(), "second?")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPromptConfirmerAfterEOF(t *testing.T) {
	p := NewPromptConfirmer(strings.NewReader("y"), io.Discard)

	first, err := p.Confirm(context.Background(), "first?")
	require.NoError(t, err)
	assert.True(t, first)

	// The reader is exhausted; later prompts see end of input.
	second, err := p.Confirm(context.Background(), "second?")
	require.NoError(t, err)
	assert.False(t, second)
}

func TestConfirmNilApproves(t *testing.T) {
	assert.NoError(t, confirm(context.Background(), nil, "anything"))
}

func TestConfirmDoneContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	c := ConfirmFunc(func(context.Context, string) (bool, error) {
		called = true
		return true, nil
	})
	assert.ErrorIs(t, confirm(ctx, c, "x"), context.Canceled)
	assert.False(t, called)
}
