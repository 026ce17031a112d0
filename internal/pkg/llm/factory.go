package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// NewClient builds the client named by llm.provider. A provider that cannot
// be constructed (usually a missing api key) is replaced by an unavailable
// client so the service still starts and serves fallback content.
func NewClient(ctx context.Context, config *viper.Viper, log *logrus.Logger) Client {
	provider := strings.ToLower(strings.TrimSpace(config.GetString("llm.provider")))
	if provider == "" {
		provider = ProviderGemini
	}

	switch provider {
	case ProviderOpenAI:
		apiKey := config.GetString("llm.openai.api_key")
		if apiKey == "" {
			log.Warn("llm.openai.api_key not set, tutor will serve fallback content")
			return NewUnavailableClient(fmt.Errorf("openai api key is not configured"))
		}
		return NewOpenAIClient(apiKey, config.GetString("llm.openai.model"), config.GetString("llm.openai.base_url"))
	case ProviderGemini:
		client, err := NewGeminiClient(ctx, config.GetString("llm.gemini.api_key"), config.GetString("llm.gemini.model"))
		if err != nil {
			log.Warnf("gemini client unavailable, tutor will serve fallback content: %v", err)
			return NewUnavailableClient(err)
		}
		log.Infof("gemini client ready (model=%s)", client.ModelID())
		return client
	default:
		log.Warnf("unknown llm.provider %q, tutor will serve fallback content", provider)
		return NewUnavailableClient(fmt.Errorf("unknown llm provider %q", provider))
	}
}

type unavailableClient struct {
	cause error
}

// NewUnavailableClient returns a Client whose every call fails with
// *ErrProviderUnavailable wrapping cause.
func NewUnavailableClient(cause error) Client {
	return &unavailableClient{cause: cause}
}

func (c *unavailableClient) GenerateText(context.Context, string) (string, error) {
	return "", &ErrProviderUnavailable{Err: c.cause}
}

func (c *unavailableClient) GenerateChatResponse(context.Context, string) (string, error) {
	return "", &ErrProviderUnavailable{Err: c.cause}
}

func (c *unavailableClient) ModelID() string {
	return "unavailable"
}
