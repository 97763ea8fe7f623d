package generation

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskaamelia-wd/sumq/pkg/logger"
)

const systemPrompt = "You are a test generator AI that creates quiz questions for students."

type chatClient interface {
	ChatCompletion(ctx context.Context, system, user string) (string, error)
}

// GenerationService forwards topic prompts to the LLM provider and hands
// the generated question text back untouched.
type GenerationService struct {
	log    logger.Log
	client chatClient
}

func NewGenerationService(log logger.Log, client chatClient) *GenerationService {
	return &GenerationService{log: log, client: client}
}

func (s *GenerationService) GenerateQuestions(ctx context.Context, topic string) (string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", fmt.Errorf("topic is required")
	}
	user := fmt.Sprintf("Create 3 multiple-choice questions about the topic: %s.", topic)
	result, err := s.client.ChatCompletion(ctx, systemPrompt, user)
	if err != nil {
		return "", err
	}
	return result, nil
}
