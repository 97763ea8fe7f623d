package generation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskaamelia-wd/sumq/pkg/logger"
)

type fakeChatClient struct {
	system string
	user   string
	reply  string
	err    error
}

func (f *fakeChatClient) ChatCompletion(_ context.Context, system, user string) (string, error) {
	f.system = system
	f.user = user
	return f.reply, f.err
}

func TestGenerateQuestions(t *testing.T) {
	client := &fakeChatClient{reply: "1. What joins two clauses?"}
	svc := NewGenerationService(logger.New("prod"), client)

	out, err := svc.GenerateQuestions(context.Background(), "coordinate connectors")
	require.NoError(t, err)
	assert.Equal(t, "1. What joins two clauses?", out)
	assert.Contains(t, client.user, "coordinate connectors")
	assert.NotEmpty(t, client.system)
}

func TestGenerateQuestions_EmptyTopic(t *testing.T) {
	svc := NewGenerationService(logger.New("prod"), &fakeChatClient{})

	_, err := svc.GenerateQuestions(context.Background(), "   ")
	assert.Error(t, err)
}
