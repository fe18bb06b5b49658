package auto

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model asked when none is configured.
const DefaultModel = "gemini-2.5-flash"

// promptPrefix is the instruction sent ahead of the candidate list.
const promptPrefix = "using the following list of palindromic phrases, return only the single phrase " +
	"that has the highest semantic value and makes the most logical sense: "

// replyPrefixes are stripped from a reply that does not quote a candidate verbatim.
var replyPrefixes = []string{"The best palindrome is:", "I select:", "Selected:", "Answer:"}

// ErrNoAPIKey is returned by NewGenAISelector without an API key.
var ErrNoAPIKey = errors.New("auto: Gemini API key is required")

// ContentGenerator is the part of the genai client the selector uses.
// *genai.Models satisfies it.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content,
		config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GenAISelector asks a Gemini model to pick the most meaningful line.
type GenAISelector struct {
	models  ContentGenerator
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

var _ Selector = (*GenAISelector)(nil)

// NewGenAISelector connects to the Gemini API. An empty model selects
// DefaultModel; timeout bounds each call (0 for none).
func NewGenAISelector(ctx context.Context, apiKey, model string, timeout time.Duration, logger *zap.Logger) (*GenAISelector, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("auto: create GenAI client: %w", err)
	}

	return NewGenAISelectorWith(client.Models, model, timeout, logger), nil
}

// NewGenAISelectorWith builds a selector over an existing generator.
// A nil logger means no logging.
func NewGenAISelectorWith(models ContentGenerator, model string, timeout time.Duration, logger *zap.Logger) *GenAISelector {
	if model == "" {
		model = DefaultModel
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &GenAISelector{models: models, model: model, timeout: timeout, logger: logger}
}

// Select implements Selector.
func (g *GenAISelector) Select(ctx context.Context, candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", ErrNoCandidates
	}
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	prompt := promptPrefix + strings.Join(candidates, "\n")
	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("auto: generate content: %w", err)
	}

	reply := strings.TrimSpace(resp.Text())
	g.logger.Debug("model reply", zap.String("model", g.model), zap.String("reply", reply))
	if reply == "" {
		return "", fmt.Errorf("auto: empty reply from %s", g.model)
	}

	return matchReply(reply, candidates), nil
}

// matchReply maps a free-form reply back to a line:
//  1. the longest candidate quoted verbatim in the reply;
//  2. otherwise the first reply line holding a '|', known prefixes stripped;
//  3. otherwise the first candidate.
func matchReply(reply string, candidates []string) string {
	best := ""
	for _, c := range candidates {
		if len(c) > len(best) && strings.Contains(reply, c) {
			best = c
		}
	}
	if best != "" {
		return best
	}

	cleaned := reply
	for _, p := range replyPrefixes {
		cleaned = strings.TrimSpace(strings.TrimPrefix(cleaned, p))
	}
	for _, line := range strings.Split(cleaned, "\n") {
		if line = strings.TrimSpace(line); strings.Contains(line, "|") {
			return line
		}
	}

	return candidates[0]
}
