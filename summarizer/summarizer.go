package summarizer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"google.golang.org/genai"

	"daily-report/models"
)

// FallbackText is returned whenever the completion service fails in any
// way. Summarization failure must never abort report generation.
const FallbackText = "❌ Error in AI response."

// ErrQuotaExhausted marks a summary skipped because the daily LLM quota
// ran out. Carried in Result.Err, never returned as a call error.
var ErrQuotaExhausted = errors.New("summary quota exhausted")

const SYSTEM_INSTRUCTION = `
You are an assistant that writes short daily activity reports from a user's
logged messages and photo captions. The report MUST follow this structure:
- 📅 Date
- 🔹 Main activities (3-4 bullet points)
- 📷 Photos count
- 💡 Summary
Write plain text only, no markdown code blocks. Keep the whole report under
1000 characters and base it strictly on the provided messages.
`

// Result is the typed outcome of one summarization attempt. Fallback is
// set when the fixed substitute text is returned instead of a model
// completion; Err then carries the cause for logging and tests.
type Result struct {
	Text     string
	Fallback bool
	Err      error
}

type generateFunc func(ctx context.Context, model, prompt string) (string, error)

// Client issues at most one completion request per report. No retry, no
// backoff: a single attempt keeps reply latency bounded.
type Client struct {
	model    string
	timeout  time.Duration
	quota    *QuotaLimiter
	generate generateFunc
}

// NewClient builds a Gemini-backed client. quota may be nil for no limit.
func NewClient(model string, timeout time.Duration, quota *QuotaLimiter) *Client {
	return &Client{
		model:    model,
		timeout:  timeout,
		quota:    quota,
		generate: geminiGenerate,
	}
}

// Summarize builds the day prompt and asks the model for a report. All
// failures (quota, network, timeout, empty completion) degrade to the
// fixed fallback text.
func (c *Client) Summarize(ctx context.Context, dayLabel string, entries []models.Entry) Result {
	if c.quota != nil {
		ok, err := c.quota.WaitAndReserve(ctx)
		if err != nil {
			return Result{Text: FallbackText, Fallback: true, Err: err}
		}
		if !ok {
			return Result{Text: FallbackText, Fallback: true, Err: ErrQuotaExhausted}
		}
	}

	// The sole bounded network call of a report cycle.
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	text, err := c.generate(ctx, c.model, buildPrompt(dayLabel, entries))
	if err != nil {
		return Result{Text: FallbackText, Fallback: true, Err: err}
	}
	if strings.TrimSpace(text) == "" {
		return Result{Text: FallbackText, Fallback: true, Err: errors.New("empty completion")}
	}
	return Result{Text: text}
}

func buildPrompt(dayLabel string, entries []models.Entry) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.DisplayText)
	}

	return fmt.Sprintf(`Create a daily report from the activities of %s:

Messages/Photos:
%s

Report format:
- 📅 Date
- 🔹 Main activities (3-4 bullet points)
- 📷 Photos count
- 💡 Summary
`, dayLabel, strings.Join(lines, "\n"))
}

func geminiGenerate(ctx context.Context, model, prompt string) (string, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY environment variable is not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return "", err
	}

	result, err := client.Models.GenerateContent(
		ctx,
		model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: SYSTEM_INSTRUCTION}}},
		},
	)
	if err != nil {
		return "", err
	}

	return result.Text(), nil
}
