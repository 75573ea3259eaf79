package builder

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	imgkit "github.com/shouni/gemini-image-kit/pkg/generator"
	"github.com/shouni/go-gemini-client/pkg/gemini"
	"github.com/shouni/go-http-kit/pkg/httpkit"
	"google.golang.org/genai"

	"github.com/shouni/go-video-comic-kit/internal/config"
	"github.com/shouni/go-video-comic-kit/internal/runner"
	"github.com/shouni/go-video-comic-kit/pkg/generator"
	"github.com/shouni/go-video-comic-kit/pkg/synthesis"
)

// BuildComicRunner はコミック画像生成を担当する Runner を構築します。
func BuildComicRunner(ctx context.Context, appCtx *AppContext) (runner.ComicRunner, error) {
	return runner.NewVideoComicRunner(appCtx.ComicPipeline, appCtx.Options), nil
}

// BuildPromptRunner はプロンプト合成のみを行う Runner を構築します。
func BuildPromptRunner(ctx context.Context, appCtx *AppContext) (*runner.PromptRunner, error) {
	return runner.NewPromptRunner(appCtx.Synthesizer, appCtx.Options), nil
}

// BuildSynthesizer は動画解析つきプロンプト合成器を構築します。
// 同一の動画と説明文を再解析しないよう、メモ化付きで返すのだ。
func BuildSynthesizer(cfg *config.Config, timeout time.Duration) (synthesis.Synthesizer, error) {
	inner, err := synthesis.NewGeminiSynthesizer(synthesis.Config{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
		Timeout: timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("プロンプト合成器の初期化に失敗したのだ: %w", err)
	}

	promptCache := cache.New(cfg.SynthesisCacheTTL, 1*time.Hour)
	return synthesis.NewCachedSynthesizer(inner, promptCache, cfg.SynthesisCacheTTL), nil
}

// BuildProviderRegistry は画像生成サービスのレジストリを構築します。
// 資格情報が未設定のサービスも登録し、実行時のエラー分類とフォールバックに委ねるのだ。
func BuildProviderRegistry(cfg *config.Config, imgGen imgkit.ImageGenerator, timeout time.Duration) *generator.Registry {
	openaiProvider := generator.NewOpenAIProvider(generator.OpenAIConfig{
		APIKey:  cfg.OpenAIAPIKey,
		Model:   cfg.OpenAIModel,
		Timeout: timeout,
	})
	imagenProvider := generator.NewImagenProvider(imgGen)

	return generator.NewRegistry(openaiProvider, imagenProvider)
}

// InitializeAIClient は gemini クライアントを初期化します。
func InitializeAIClient(ctx context.Context, apiKey string) (gemini.GenerativeModel, error) {
	const defaultGeminiTemperature = float32(0.2)
	clientConfig := gemini.Config{
		APIKey:      apiKey,
		Temperature: genai.Ptr(defaultGeminiTemperature),
	}
	aiClient, err := gemini.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("AIクライアントの初期化に失敗しました: %w", err)
	}
	return aiClient, nil
}

// InitializeImageGenerator は Imagen 系の画像生成に使う ImageGenerator を初期化します。
func InitializeImageGenerator(httpClient httpkit.ClientInterface, aiClient gemini.GenerativeModel, model string) (imgkit.ImageGenerator, error) {
	imgCache := cache.New(30*time.Minute, 1*time.Hour)
	cacheTTL := 1 * time.Hour

	core, err := imgkit.NewGeminiImageCore(httpClient, imgCache, cacheTTL)
	if err != nil {
		return nil, fmt.Errorf("GeminiImageCoreの初期化に失敗したのだ: %w", err)
	}

	imgGen, err := imgkit.NewGeminiGenerator(core, aiClient, model)
	if err != nil {
		return nil, fmt.Errorf("GeminiGeneratorの初期化に失敗したのだ: %w", err)
	}

	return imgGen, nil
}
