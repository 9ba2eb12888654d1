package generator

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/sync/errgroup"

	"resume-tailor-service/internal/entity"
)

const DefaultModel = openai.GPT4oMini

const (
	summaryMaxTokens     = 300
	coverLetterMaxTokens = 600
	temperature          = 0.7
)

// Content is the result of one combined generation: both texts or neither.
type Content struct {
	TailoredSummary string `json:"tailoredSummary"`
	CoverLetter     string `json:"coverLetter"`
}

type Client struct {
	client *openai.Client
	model  string
}

// NewClient builds an OpenAI-backed generator. baseURL is optional and
// overrides the API endpoint (tests, proxies).
func NewClient(apiKey, model, baseURL string) *Client {
	if model == "" {
		model = DefaultModel
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (c *Client) complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in completion response")
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("empty completion")
	}
	return text, nil
}

func (c *Client) TailorSummary(ctx context.Context, resumeContent, jobDescription string) (string, error) {
	text, err := c.complete(ctx, summarySystemPrompt, buildSummaryPrompt(resumeContent, jobDescription), summaryMaxTokens)
	if err != nil {
		return "", fmt.Errorf("generate tailored summary: %w", err)
	}
	// The record store bounds apply to generated text too; oversized output
	// is a generation failure, never truncated.
	if len(text) > entity.MaxTailoredSummaryLen {
		return "", fmt.Errorf("generate tailored summary: output exceeds %d characters", entity.MaxTailoredSummaryLen)
	}
	return text, nil
}

func (c *Client) CoverLetter(ctx context.Context, resumeContent, jobDescription string) (string, error) {
	text, err := c.complete(ctx, coverLetterSystemPrompt, buildCoverLetterPrompt(resumeContent, jobDescription), coverLetterMaxTokens)
	if err != nil {
		return "", fmt.Errorf("generate cover letter: %w", err)
	}
	if len(text) > entity.MaxCoverLetterLen {
		return "", fmt.Errorf("generate cover letter: output exceeds %d characters", entity.MaxCoverLetterLen)
	}
	return text, nil
}

// GenerateBoth runs the two generation calls concurrently and fails if
// either fails. No partial result is returned.
func (c *Client) GenerateBoth(ctx context.Context, resumeContent, jobDescription string) (*Content, error) {
	var content Content

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		summary, err := c.TailorSummary(ctx, resumeContent, jobDescription)
		if err != nil {
			return err
		}
		content.TailoredSummary = summary
		return nil
	})
	g.Go(func() error {
		letter, err := c.CoverLetter(ctx, resumeContent, jobDescription)
		if err != nil {
			return err
		}
		content.CoverLetter = letter
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &content, nil
}
