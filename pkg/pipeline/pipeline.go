package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/go-video-comic-kit/pkg/domain"
	"github.com/shouni/go-video-comic-kit/pkg/generator"
	"github.com/shouni/go-video-comic-kit/pkg/synthesis"
)

// ImageGenerator はフォールバック調停つき画像生成へのインターフェースです。
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string, primary, fallback domain.Service) (*generator.Result, error)
}

// ComicPipeline は動画からコミック画像までの全工程をオーケストレートする司令塔です。
// 1 回の Execute は常に逐次で、検証 → 合成 → 生成 → 正規化の順に進みます。
type ComicPipeline struct {
	synthesizer synthesis.Synthesizer
	generator   ImageGenerator
}

// NewComicPipeline は各コンポーネントのインターフェースを受け取り、ComicPipeline を生成します。
func NewComicPipeline(s synthesis.Synthesizer, g ImageGenerator) *ComicPipeline {
	return &ComicPipeline{
		synthesizer: s,
		generator:   g,
	}
}

// Execute は入力検証から PNG 正規化までを一気通貫で実行します。
// 各段の失敗は分類済みの説明文をそのまま呼び出し元へ返します。
// 合成済みプロンプトは成果物に無加工で添付します。
func (p *ComicPipeline) Execute(ctx context.Context, req domain.ComicRequest) (*domain.ComicResult, error) {
	// 1. 入力検証（ネットワークに触れる前に弾く）
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// 2. 動画解析つきプロンプト合成
	slog.InfoContext(ctx, "Analyzing video content", slog.String("video_url", req.VideoURL))
	prompt, err := p.synthesizer.Synthesize(ctx, req.VideoURL, req.Description)
	if err != nil {
		return nil, err
	}

	// 3. フォールバック調停つき画像生成
	slog.InfoContext(ctx, "Generating comic image",
		slog.String("primary", string(req.Primary)),
		slog.String("fallback", string(req.Fallback)))
	genResult, err := p.generator.Generate(ctx, prompt, req.Primary, req.Fallback)
	if err != nil {
		return nil, err
	}

	// 4. 可逆な PNG 表現への正規化
	data, err := NormalizePNG(genResult.Response.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode generated image: %w", err)
	}

	return &domain.ComicResult{
		Data:     data,
		MimeType: "image/png",
		Service:  genResult.Service,
		Prompt:   prompt,
		Warning:  genResult.Warning,
	}, nil
}
