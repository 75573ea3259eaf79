package synthesis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shouni/go-video-comic-kit/pkg/prompts"
)

const (
	defaultModel       = "gemini-2.0-flash"
	defaultBaseURL     = "https://generativelanguage.googleapis.com"
	defaultTimeout     = 120 * time.Second
	defaultTemperature = float32(0.2)

	// maxErrorBodyBytes はエラー応答本文の取り込み上限です。
	maxErrorBodyBytes = 4 << 10
)

// Doer は HTTP リクエストの発行を抽象化します。
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config は GeminiSynthesizer の構築パラメータです。
// APIKey 以外は未指定ならデフォルト値で補完されます。
type Config struct {
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float32
	Timeout     time.Duration
	HTTPClient  Doer
}

// GeminiSynthesizer は Gemini generateContent による動画解析つきプロンプト合成器です。
type GeminiSynthesizer struct {
	apiKey      string
	model       string
	baseURL     string
	temperature float32
	client      Doer
}

// NewGeminiSynthesizer は設定を検証し、欠けている項目を補完して合成器を返します。
func NewGeminiSynthesizer(cfg Config) (*GeminiSynthesizer, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("GEMINI_API_KEY not found in environment variables")
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = defaultTemperature
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &GeminiSynthesizer{
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		temperature: cfg.Temperature,
		client:      cfg.HTTPClient,
	}, nil
}

// --- Wire types ---

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text     string          `json:"text,omitempty"`
	FileData *geminiFileData `json:"file_data,omitempty"`
}

type geminiFileData struct {
	FileURI string `json:"file_uri"`
}

type geminiGenerationConfig struct {
	Temperature float32 `json:"temperature,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Synthesize は指示文と動画 URL を 1 回の generateContent に載せ、
// 最初の候補のテキストを無加工で返します。失敗時はすべて
// "Video analysis failed:" として包んで返します。
func (s *GeminiSynthesizer) Synthesize(ctx context.Context, videoURL, description string) (string, error) {
	instruction := prompts.BuildSynthesisInstruction(videoURL, description)

	text, err := s.generateContent(ctx, instruction, videoURL)
	if err != nil {
		return "", fmt.Errorf("Video analysis failed: %w", err)
	}
	return text, nil
}

func (s *GeminiSynthesizer) generateContent(ctx context.Context, instruction, videoURL string) (string, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{
				{Text: instruction},
				{FileData: &geminiFileData{FileURI: videoURL}},
			},
		}},
		GenerationConfig: &geminiGenerationConfig{Temperature: s.temperature},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", s.baseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return "", fmt.Errorf("gemini api error: status=%d body=%s", resp.StatusCode, string(body))
	}

	var decoded geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty response from model")
	}

	return decoded.Candidates[0].Content.Parts[0].Text, nil
}
