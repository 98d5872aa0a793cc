package core

import (
	"fmt"

	"github.com/sashabaranov/go-openai"
)

const (
	DefaultBaseURL = "https://api.groq.com/openai/v1"
	DefaultModel   = "llama-3.3-70b-versatile"

	Temperature = 0.85
	MaxTokens   = 512
)

const SystemPrompt = `You are an AI Music Prompt Architect specializing in generating high-quality prompts for Lo-Fi background music generation.

Your task is to create a detailed prompt that can be used in an AI music generator based on:
• Weather condition
• Mood

----------------------------------------
PROMPT SHOULD INCLUDE:

• Tempo (BPM)
• Instruments (piano, vinyl crackle, pads, etc.)
• Background ambience (rain, wind, night sounds)
• Emotional tone
• Beat style (soft, chill, mellow)
• Study-friendly atmosphere

----------------------------------------
STYLE REQUIREMENTS:

• Use descriptive but simple language
• Focus on relaxing Lo-Fi soundscape
• Include weather-based ambience
• Include mood-based musical tone
• Avoid complex music theory terms

----------------------------------------
OUTPUT FORMAT:

Return only a detailed music generation prompt
that can be directly used in an AI music generator.

Do not explain anything.`

// PromptRequest is built fresh for every generation.
type PromptRequest struct {
	Weather string
	Mood    string
	Model   string
}

// UserMessage is the user turn sent alongside SystemPrompt.
func UserMessage(weather, mood string) string {
	return fmt.Sprintf("Weather condition: %s\nMood: %s", weather, mood)
}

// BuildChatRequest turns a PromptRequest into the chat completion payload.
// An empty model falls back to DefaultModel.
func BuildChatRequest(req PromptRequest) openai.ChatCompletionRequest {
	model := req.Model
	if model == "" {
		model = DefaultModel
	}
	return openai.ChatCompletionRequest{
		Model:       model,
		Temperature: Temperature,
		MaxTokens:   MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: UserMessage(req.Weather, req.Mood)},
		},
	}
}
