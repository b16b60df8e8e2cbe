package ai

import (
	"context"
	"errors"
	"testing"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChatModel struct {
	reply   *schema.Message
	err     error
	input   []*schema.Message
	options *einomodel.Options
}

func (f *fakeChatModel) Generate(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.Message, error) {
	f.input = input
	f.options = einomodel.GetCommonOptions(&einomodel.Options{}, opts...)
	return f.reply, f.err
}

func (f *fakeChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("streaming is not supported")
}

func TestChatChain_Complete(t *testing.T) {
	fake := &fakeChatModel{reply: schema.AssistantMessage("Python, Java, ML", nil)}
	chain := newChatChain(fake, 0)

	content, err := chain.Complete(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, "Python, Java, ML", content)

	require.Len(t, fake.input, 2)
	assert.Equal(t, schema.System, fake.input[0].Role)
	assert.Equal(t, "persona", fake.input[0].Content)
	assert.Equal(t, schema.User, fake.input[1].Role)
	assert.Equal(t, "What are your skills?", fake.input[1].Content)

	require.NotNil(t, fake.options.Temperature)
	assert.InDelta(t, 0.7, *fake.options.Temperature, 1e-6)
	require.NotNil(t, fake.options.MaxTokens)
	assert.Equal(t, 500, *fake.options.MaxTokens)
}

func TestChatChain_Errors(t *testing.T) {
	chain := newChatChain(&fakeChatModel{err: errors.New("dial tcp: connection refused")}, 0)
	_, err := chain.Complete(context.Background(), testRequest())
	var transportErr *TransportError
	assert.True(t, errors.As(err, &transportErr))

	chain = newChatChain(&fakeChatModel{reply: schema.AssistantMessage("", nil)}, 0)
	_, err = chain.Complete(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrMalformedResponse)

	chain = newChatChain(&fakeChatModel{}, 0)
	_, err = chain.Complete(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrMalformedResponse)
}
