package mcp

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-assist/internal/core/domain"
)

func TestServer_handleAsk(t *testing.T) {
	ctx := context.Background()

	t.Run("returns answer", func(t *testing.T) {
		answer := &mockAnswerService{answer: "Use the VPN.\n\nSources: <https://notion.so/a|Access>"}
		server, err := NewServer(&Ports{Answer: answer})
		require.NoError(t, err)

		_, output, err := server.handleAsk(ctx, nil, AskInput{Question: "how do I connect?"})

		require.NoError(t, err)
		assert.Equal(t, "how do I connect?", answer.question)
		assert.Equal(t, answer.answer, output.Answer)
	})

	t.Run("sentinel answers are returned as is", func(t *testing.T) {
		answer := &mockAnswerService{answer: domain.NoInformationMessage}
		server, err := NewServer(&Ports{Answer: answer})
		require.NoError(t, err)

		_, output, err := server.handleAsk(ctx, nil, AskInput{Question: "unknown"})

		require.NoError(t, err)
		assert.Equal(t, domain.NoInformationMessage, output.Answer)
	})

	t.Run("invalid input is reported", func(t *testing.T) {
		answer := &mockAnswerService{err: fmt.Errorf("%w: empty question", domain.ErrInvalidInput)}
		server, err := NewServer(&Ports{Answer: answer})
		require.NoError(t, err)

		_, _, err = server.handleAsk(ctx, nil, AskInput{})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("pipeline faults are generic", func(t *testing.T) {
		answer := &mockAnswerService{err: errors.New("notion exploded")}
		server, err := NewServer(&Ports{Answer: answer})
		require.NoError(t, err)

		_, _, err = server.handleAsk(ctx, nil, AskInput{Question: "q"})

		require.Error(t, err)
		assert.Equal(t, domain.GenericFailureMessage, err.Error())
	})
}
