// Package copygen produces ad copy from a generative model under hard
// validation constraints: every request carries a response schema so the
// model returns a typed object, and every candidate passes through local
// acceptance checks before it is used.
package copygen

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"
)

const (
	defaultModel = "gemini-2.5-flash"

	systemPrompt = "You are an expert marketing consultant tasked with creating Google ads for a client's website."
)

// Client wraps the generative service. Safe to share; it holds no per-call
// state.
type Client struct {
	genai *genai.Client
	model string
}

// NewClient creates a copy generation client.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("copygen: API key is required")
	}
	if model == "" {
		model = defaultModel
	}
	g, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &Client{genai: g, model: model}, nil
}

// generate sends one schema-constrained request and unmarshals the typed
// JSON response into out.
func (c *Client) generate(ctx context.Context, prompt string, schema *genai.Schema, out any) error {
	resp, err := c.genai.Models.GenerateContent(ctx, c.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
			ResponseMIMEType:  "application/json",
			ResponseSchema:    schema,
		},
	)
	if err != nil {
		return fmt.Errorf("generate content: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return fmt.Errorf("empty generation response")
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("failed to parse generation response: %w", err)
	}
	return nil
}

func stringListSchema(field string) *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			field: {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		},
		Required: []string{field},
	}
}

func stringFieldSchema(field string) *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			field: {Type: genai.TypeString},
		},
		Required: []string{field},
	}
}

// KeywordHeadlines asks for a batch of candidate headlines for one keyword.
// Candidates are returned unfiltered; acceptance is the loop's job.
func (c *Client) KeywordHeadlines(ctx context.Context, content, keyword string) ([]string, error) {
	var out struct {
		Keyword   string   `json:"keyword"`
		Headlines []string `json:"headlines"`
	}
	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"keyword":   {Type: genai.TypeString},
			"headlines": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		},
		Required: []string{"keyword", "headlines"},
	}
	if err := c.generate(ctx, headlinePrompt(content, keyword), schema, &out); err != nil {
		return nil, err
	}
	return out.Headlines, nil
}

// Descriptions asks for four ad descriptions built around the keywords.
func (c *Client) Descriptions(ctx context.Context, content string, keywords []string) ([]string, error) {
	var out struct {
		Descriptions []string `json:"descriptions"`
	}
	if err := c.generate(ctx, descriptionsPrompt(content, keywords), stringListSchema("descriptions"), &out); err != nil {
		return nil, err
	}
	return out.Descriptions, nil
}

// BusinessDescription summarizes the site content as a business description.
func (c *Client) BusinessDescription(ctx context.Context, content string) (string, error) {
	var out struct {
		BusinessDesc string `json:"business_desc"`
	}
	if err := c.generate(ctx, businessDescriptionPrompt(content), stringFieldSchema("business_desc"), &out); err != nil {
		return "", err
	}
	return out.BusinessDesc, nil
}

// CampaignName produces a pipe-delimited campaign name from content,
// location and campaign type.
func (c *Client) CampaignName(ctx context.Context, content, location, campaignType string) (string, error) {
	var out struct {
		Name string `json:"name"`
	}
	if err := c.generate(ctx, campaignNamePrompt(content, location, campaignType), stringFieldSchema("name"), &out); err != nil {
		return "", err
	}
	return out.Name, nil
}

// SiteLinkCopy is the generated text bundle for one sitelink.
type SiteLinkCopy struct {
	URL          string `json:"url"`
	Name         string `json:"name"`
	Description1 string `json:"description1"`
	Description2 string `json:"description2"`
	Callout      string `json:"callout"`
}

// SiteLinkContent generates name, descriptions and a callout for a sitelink
// URL. Each field is scrubbed to its platform length and charset limit;
// over-length output is an error, stray punctuation is stripped.
func (c *Client) SiteLinkContent(ctx context.Context, url, content string) (*SiteLinkCopy, error) {
	var out SiteLinkCopy
	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"url":          {Type: genai.TypeString},
			"name":         {Type: genai.TypeString},
			"description1": {Type: genai.TypeString},
			"description2": {Type: genai.TypeString},
			"callout":      {Type: genai.TypeString},
		},
		Required: []string{"url", "name", "description1", "description2", "callout"},
	}
	if err := c.generate(ctx, sitelinkPrompt(url, content), schema, &out); err != nil {
		return nil, err
	}

	var err error
	if out.Name, err = ConstrainText(out.Name, 25); err != nil {
		return nil, fmt.Errorf("sitelink name: %w", err)
	}
	if out.Description1, err = ConstrainText(out.Description1, 35); err != nil {
		return nil, fmt.Errorf("sitelink description1: %w", err)
	}
	if out.Description2, err = ConstrainText(out.Description2, 35); err != nil {
		return nil, fmt.Errorf("sitelink description2: %w", err)
	}
	if out.Callout, err = ConstrainText(out.Callout, 25); err != nil {
		return nil, fmt.Errorf("sitelink callout: %w", err)
	}
	return &out, nil
}

// SpecificKeywords narrows the keyword set based on the content.
func (c *Client) SpecificKeywords(ctx context.Context, content string, keywords []string) ([]string, error) {
	var out struct {
		Keywords []string `json:"keywords"`
	}
	if err := c.generate(ctx, keywordExpansionPrompt(content, keywords, "specific"), stringListSchema("keywords"), &out); err != nil {
		return nil, err
	}
	return out.Keywords, nil
}

// GenericKeywords broadens the keyword set based on the content.
func (c *Client) GenericKeywords(ctx context.Context, content string, keywords []string) ([]string, error) {
	var out struct {
		Keywords []string `json:"keywords"`
	}
	if err := c.generate(ctx, keywordExpansionPrompt(content, keywords, "generic"), stringListSchema("keywords"), &out); err != nil {
		return nil, err
	}
	return out.Keywords, nil
}

// ThemeRepresentation derives a single theme from a keyword set.
func (c *Client) ThemeRepresentation(ctx context.Context, contextualInfo string, keywords []string) (string, error) {
	var out struct {
		Theme string `json:"theme"`
	}
	if err := c.generate(ctx, themePrompt(contextualInfo, keywords), stringFieldSchema("theme"), &out); err != nil {
		return "", err
	}
	return out.Theme, nil
}

// KeywordFitness scores how well a candidate keyword fits a theme, 0..1.
func (c *Client) KeywordFitness(ctx context.Context, candidate string, training []string, theme string) (float64, error) {
	var out struct {
		FitnessScore float64 `json:"fitness_score"`
	}
	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"fitness_score": {Type: genai.TypeNumber},
		},
		Required: []string{"fitness_score"},
	}
	if err := c.generate(ctx, fitnessPrompt(candidate, training, theme), schema, &out); err != nil {
		return 0, err
	}
	return out.FitnessScore, nil
}
