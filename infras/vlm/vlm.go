package vlm

//go:generate go run go.uber.org/mock/mockgen -source=./vlm.go -destination=./mocks/vlm_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"syncguard/config"
	"syncguard/infras/otel"
	"syncguard/shared/constant"
	"syncguard/shared/failure"

	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"
)

// Client talks to an OpenAI-compatible vision model endpoint. Requests walk
// the configured model list in order until one succeeds.
type Client interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, imageDataURLs []string) (string, error)
	Enabled() bool
}

type clientImpl struct {
	api  *openai.Client
	cfg  *config.Config
	otel otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Client {
	impl := &clientImpl{
		cfg:  cfg,
		otel: otel,
	}

	if impl.Enabled() {
		apiConfig := openai.DefaultConfig(cfg.External.VLM.APIKey)
		if cfg.External.VLM.BaseURL != constant.Empty {
			apiConfig.BaseURL = cfg.External.VLM.BaseURL
		}

		impl.api = openai.NewClientWithConfig(apiConfig)
	}

	return impl
}

func (c *clientImpl) Enabled() bool {
	return c.cfg.External.VLM.APIKey != constant.Empty
}

func (c *clientImpl) Complete(ctx context.Context, systemPrompt, userPrompt string, imageDataURLs []string) (res string, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelVLMScopeName, constant.OtelVLMScopeName+".Complete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !c.Enabled() {
		return constant.Empty, failure.Configuration("vision model credentials are not configured") // nolint:wrapcheck
	}

	parts := []openai.ChatMessagePart{
		{Type: openai.ChatMessagePartTypeText, Text: userPrompt},
	}

	for _, url := range imageDataURLs {
		parts = append(parts, openai.ChatMessagePart{
			Type:     openai.ChatMessagePartTypeImageURL,
			ImageURL: &openai.ChatMessageImageURL{URL: url},
		})
	}

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
		{Role: openai.ChatMessageRoleUser, MultiContent: parts},
	}

	var lastErr error

	for _, model := range c.cfg.External.VLM.Models {
		resp, callErr := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:    model,
			Messages: messages,
		})
		if callErr != nil {
			log.Warn().Err(callErr).Str("model", model).Msg("vision model call failed, trying next")
			lastErr = callErr

			continue
		}

		if len(resp.Choices) == 0 {
			lastErr = errors.New("vision model returned no choices")

			continue
		}

		return resp.Choices[0].Message.Content, nil
	}

	return constant.Empty, failure.Upstream("vision model", lastErr) // nolint:wrapcheck
}

// ExtractJSON returns the first balanced JSON object embedded in a model
// reply, tolerating prose or markdown fences around it.
func ExtractJSON(raw string) (string, error) {
	depth := 0
	start := -1
	inString := false
	escaped := false

	for i, r := range raw {
		if escaped {
			escaped = false

			continue
		}

		switch r {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				if depth == 0 {
					start = i
				}

				depth++
			}
		case '}':
			if !inString && depth > 0 {
				depth--
				if depth == 0 {
					return raw[start : i+1], nil
				}
			}
		}
	}

	return constant.Empty, fmt.Errorf("no JSON object found in model reply")
}
