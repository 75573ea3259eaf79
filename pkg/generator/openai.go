package generator

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	imagedom "github.com/shouni/gemini-image-kit/pkg/domain"
	"github.com/shouni/go-video-comic-kit/pkg/domain"
)

const (
	defaultOpenAIBaseURL = "https://api.openai.com"
	defaultOpenAIModel   = "gpt-image-1"
	defaultOpenAISize    = "1024x1024"
	defaultOpenAITimeout = 120 * time.Second

	// maxErrorBodyBytes はエラー応答本文の取り込み上限です。
	maxErrorBodyBytes = 4 << 10
)

// Doer は HTTP リクエストの発行を抽象化します。
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// OpenAIConfig は OpenAIProvider の構築パラメータです。
// APIKey が空でも構築自体は成功し、Generate の呼び出し時点で失敗します。
type OpenAIConfig struct {
	APIKey     string
	BaseURL    string
	Model      string
	Size       string
	Timeout    time.Duration
	HTTPClient Doer
}

// OpenAIProvider は OpenAI Images API (gpt-image-1) のアダプタです。
type OpenAIProvider struct {
	apiKey  string
	baseURL string
	model   string
	size    string
	client  Doer
}

// NewOpenAIProvider は欠けている設定をデフォルト値で補完してアダプタを返します。
func NewOpenAIProvider(cfg OpenAIConfig) *OpenAIProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultOpenAIBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultOpenAIModel
	}
	if cfg.Size == "" {
		cfg.Size = defaultOpenAISize
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultOpenAITimeout
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &OpenAIProvider{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		size:    cfg.Size,
		client:  cfg.HTTPClient,
	}
}

// Service は識別子 openai を返します。
func (p *OpenAIProvider) Service() domain.Service { return domain.ServiceOpenAI }

// --- Wire types ---

type openaiImageRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	N      int    `json:"n"`
	Size   string `json:"size"`
}

type openaiImageResponse struct {
	Data []struct {
		B64JSON string `json:"b64_json"`
	} `json:"data"`
}

// Generate はプロンプトから 1 枚の画像を生成し、PNG バイト列として返します。
func (p *OpenAIProvider) Generate(ctx context.Context, prompt string) (*imagedom.ImageResponse, error) {
	if p.apiKey == "" {
		return nil, errors.New("OpenAI API key not configured")
	}

	payload, err := json.Marshal(openaiImageRequest{
		Model:  p.model,
		Prompt: prompt,
		N:      1,
		Size:   p.size,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v1/images/generations", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, fmt.Errorf("openai api error: status=%d body=%s", resp.StatusCode, string(body))
	}

	var decoded openaiImageResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(decoded.Data) == 0 || decoded.Data[0].B64JSON == "" {
		return nil, errors.New("openai response contained no image data")
	}

	raw, err := base64.StdEncoding.DecodeString(decoded.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image payload: %w", err)
	}

	return &imagedom.ImageResponse{Data: raw, MimeType: "image/png"}, nil
}
