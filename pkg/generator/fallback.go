package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	imagedom "github.com/shouni/gemini-image-kit/pkg/domain"
	"github.com/shouni/go-video-comic-kit/pkg/domain"
)

// Result はフォールバック試行の成功結果です。
type Result struct {
	Response *imagedom.ImageResponse
	// Service は実際に画像を返したサービスです。
	Service domain.Service
	// Warning はプライマリ失敗をフォールバックが救済した場合のみ非空です。
	Warning string
}

// FallbackGenerator はプライマリ、フォールバックの順で画像生成を試みる調停役です。
// 試行は常に逐次で、並行試行や投機的実行は行いません。
type FallbackGenerator struct {
	registry *Registry
}

// NewFallbackGenerator は Registry を参照する調停役を返します。
func NewFallbackGenerator(registry *Registry) *FallbackGenerator {
	return &FallbackGenerator{registry: registry}
}

// Generate は次の順序で試行します。
//  1. プライマリを呼び、成功すればそのまま返す。
//  2. 失敗を分類し、別の登録済みフォールバックがあれば 1 回だけ試す。
//  3. フォールバック成功時は警告を添えて返し、両方失敗なら連結したエラーを返す。
//
// 同一サービスの再試行は行いません。
func (g *FallbackGenerator) Generate(ctx context.Context, prompt string, primary, fallback domain.Service) (*Result, error) {
	logger := slog.With(slog.String("primary", string(primary)), slog.String("fallback", string(fallback)))

	primaryProvider, ok := g.registry.Lookup(primary)
	if !ok {
		return nil, errors.New("No services configured")
	}

	start := time.Now()
	resp, primaryErr := primaryProvider.Generate(ctx, prompt)
	if primaryErr == nil {
		logger.Info("Image generation completed",
			slog.String("service", string(primary)),
			slog.Duration("duration", time.Since(start).Round(time.Millisecond)))
		return &Result{Response: resp, Service: primary}, nil
	}

	classifiedPrimary := ClassifyError(primary, primaryErr)
	logger.Warn("Primary service failed", slog.String("error", classifiedPrimary.Message))

	fallbackProvider, ok := g.registry.Lookup(fallback)
	if !ok || fallback == primary {
		return nil, classifiedPrimary
	}

	start = time.Now()
	resp, fallbackErr := fallbackProvider.Generate(ctx, prompt)
	if fallbackErr == nil {
		logger.Info("Fallback service rescued the request",
			slog.String("service", string(fallback)),
			slog.Duration("duration", time.Since(start).Round(time.Millisecond)))
		return &Result{
			Response: resp,
			Service:  fallback,
			Warning:  fmt.Sprintf("Primary service failed: %s", classifiedPrimary.Message),
		}, nil
	}

	classifiedFallback := ClassifyError(fallback, fallbackErr)
	return nil, fmt.Errorf("Primary: %s\nFallback: %s", classifiedPrimary.Message, classifiedFallback.Message)
}
