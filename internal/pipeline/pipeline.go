package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/go-http-kit/pkg/httpkit"

	"github.com/shouni/go-video-comic-kit/internal/builder"
	"github.com/shouni/go-video-comic-kit/internal/config"
	"github.com/shouni/go-video-comic-kit/pkg/generator"
	pkgpipeline "github.com/shouni/go-video-comic-kit/pkg/pipeline"
)

// ExecuteComic は、動画解析からコミック画像の保存までの全工程を実行するのだ。
func ExecuteComic(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	if err := runComicStep(ctx, appCtx); err != nil {
		return err
	}

	slog.Info("コミック生成の全工程が完了したのだ！")
	return nil
}

// ExecutePromptOnly は、動画解析とプロンプト合成だけを行い、画像生成は実行しないのだ。
// 合成結果を確認してから画像生成に進みたいときの前段ステージなのだ。
func ExecutePromptOnly(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	if err := runPromptStep(ctx, appCtx); err != nil {
		return err
	}

	slog.Info("プロンプト合成が完了したのだ！")
	return nil
}

// setupAppContext は、提供された設定と共有コンポーネントを使用して、アプリケーションコンテキストを初期化して返すのだ。
// ライフサイクル管理用の context と設定オブジェクトを受け取るのだ。
// 初期化中にエラーが発生した場合は、AppContext のポインタとエラーを返すのだ。
func setupAppContext(ctx context.Context, cfg *config.Config) (*builder.AppContext, error) {
	timeout := cfg.ResolveHTTPTimeout()

	httpClient := httpkit.New(timeout)
	aiClient, err := builder.InitializeAIClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create ai client: %w", err)
	}

	synthesizer, err := builder.BuildSynthesizer(cfg, timeout)
	if err != nil {
		return nil, err
	}

	// ImageGenerator と ComicPipeline は一度だけ初期化する
	imgGen, err := builder.InitializeImageGenerator(httpClient, aiClient, cfg.ImagenModel)
	if err != nil {
		return nil, err
	}

	registry := builder.BuildProviderRegistry(cfg, imgGen, timeout)
	comicPipeline := pkgpipeline.NewComicPipeline(synthesizer, generator.NewFallbackGenerator(registry))

	appCtx := builder.NewAppContext(cfg, httpClient, aiClient, synthesizer, comicPipeline)
	return &appCtx, nil
}

// runComicStep は VideoComicRunner を使ってコミック画像を生成して保存するのだ
func runComicStep(ctx context.Context, appCtx *builder.AppContext) error {
	slog.Info("コミック画像の生成を開始するのだ...", "primary", appCtx.Options.Primary, "fallback", appCtx.Options.Fallback)
	comicRunner, err := builder.BuildComicRunner(ctx, appCtx)
	if err != nil {
		return fmt.Errorf("ComicRunnerの構築に失敗したのだ: %w", err)
	}

	if err := comicRunner.Run(ctx); err != nil {
		return fmt.Errorf("コミック生成に失敗したのだ: %w", err)
	}
	return nil
}

// runPromptStep は PromptRunner を使って合成プロンプトだけを出力するのだ
func runPromptStep(ctx context.Context, appCtx *builder.AppContext) error {
	slog.Info("動画解析とプロンプト合成を開始するのだ...", "video_url", appCtx.Options.VideoURL)
	promptRunner, err := builder.BuildPromptRunner(ctx, appCtx)
	if err != nil {
		return fmt.Errorf("PromptRunnerの構築に失敗したのだ: %w", err)
	}

	if err := promptRunner.Run(ctx); err != nil {
		return fmt.Errorf("プロンプト合成に失敗したのだ: %w", err)
	}
	return nil
}
