package review

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const (
	defaultModel       = "gemini-2.5-flash"
	defaultTemperature = 0.3

	audioMIMEType = "audio/wav"
)

const systemInstruction = `You are an experienced dialysis physician and clinical engineer.
A patient has recorded the sound of their vascular access (shunt) with a phone microphone.
Assess the recording under four headings:

1. Recording quality: is the clip clear, or dominated by handling and environmental noise?
2. Audible character: describe what you hear (continuous low rumble, high-pitched whistle, intermittent, pulsatile).
3. Estimated reading: within normal range / suspected narrowing / suspected occlusion / not assessable.
4. Advice: what the patient should do next, in concrete terms.

Important: this is reference information, not a medical diagnosis. Always tell the patient to consult their dialysis staff or physician.`

const userPrompt = "This clip was recorded from a dialysis vascular access. Please assess it under the headings above."

// Gemini is a [Reviewer] backed by the Gemini API.
type Gemini struct {
	client      *genai.Client
	model       string
	temperature float32
}

// Option configures a Gemini reviewer.
type Option func(*Gemini)

// WithModel overrides the default model.
func WithModel(model string) Option {
	return func(g *Gemini) {
		if model != "" {
			g.model = model
		}
	}
}

// WithTemperature overrides the default sampling temperature.
func WithTemperature(temperature float32) Option {
	return func(g *Gemini) {
		if temperature >= 0 {
			g.temperature = temperature
		}
	}
}

// NewGemini creates a Gemini-backed reviewer. Resolving the API key is the
// caller's concern; an empty key is rejected here.
func NewGemini(ctx context.Context, apiKey string, opts ...Option) (*Gemini, error) {
	if apiKey == "" {
		return nil, errors.New("review: missing api key")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("review: create client: %w", err)
	}

	g := &Gemini{
		client:      client,
		model:       defaultModel,
		temperature: defaultTemperature,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g, nil
}

// Review uploads the clip and returns the model's assessment text.
func (g *Gemini) Review(ctx context.Context, audioWAV []byte) (string, error) {
	if len(audioWAV) == 0 {
		return "", errors.New("review: empty audio clip")
	}

	temperature := g.temperature
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{genai.NewPartFromText(systemInstruction)},
		},
		Temperature: &temperature,
	}

	contents := []*genai.Content{{
		Role: "user",
		Parts: []*genai.Part{
			genai.NewPartFromBytes(audioWAV, audioMIMEType),
			genai.NewPartFromText(userPrompt),
		},
	}}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("review: generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("review: response carries no content")
	}

	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if p.Text != "" {
			sb.WriteString(p.Text)
		}
	}

	if sb.Len() == 0 {
		return "", errors.New("review: response carries no text")
	}

	return sb.String(), nil
}
