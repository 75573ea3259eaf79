package runner

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/shouni/go-video-comic-kit/internal/config"
	"github.com/shouni/go-video-comic-kit/pkg/asset"
	"github.com/shouni/go-video-comic-kit/pkg/domain"
)

// ComicRunner は、動画からコミック画像を生成して保存するためのインターフェース。
type ComicRunner interface {
	// Run は設定済みオプションに従ってコミック生成を実行し、成果物を保存する。
	Run(ctx context.Context) error
}

// ComicExecutor は、プロンプト合成と画像生成を束ねたパイプラインの実行口。
type ComicExecutor interface {
	Execute(ctx context.Context, req domain.ComicRequest) (*domain.ComicResult, error)
}

// VideoComicRunner は、レート制限つきの並列実行でバリエーション生成を行う実体。
type VideoComicRunner struct {
	executor ComicExecutor          // コミック生成パイプライン
	opts     config.GenerateOptions // CLI フラグ由来の実行時オプション
}

// NewVideoComicRunner は、VideoComicRunnerの新しいインスタンスを生成して返す。
func NewVideoComicRunner(executor ComicExecutor, opts config.GenerateOptions) *VideoComicRunner {
	return &VideoComicRunner{
		executor: executor,
		opts:     opts,
	}
}

// Run は指定された数のコミックバリエーションを並列生成して保存するメインロジックなのだ。
func (cr *VideoComicRunner) Run(ctx context.Context) error {
	req, err := cr.buildRequest()
	if err != nil {
		return err
	}

	count := normalizeCount(cr.opts.Count)

	results := make([]*domain.ComicResult, count)
	paths := make([]string, count)
	eg, egCtx := errgroup.WithContext(ctx)

	// 設定ファイルから取得した間隔で、レートリミット（流量制限）をかけるのだ
	// Burst 2 により、開始直後に2枚までは同時にリクエストを開始できるのだ
	limiter := rate.NewLimiter(rate.Every(config.DefaultRateLimit), 2)
	slog.Info("並列コミック生成を開始するのだ", "count", count, "interval", config.DefaultRateLimit)

	for i := 0; i < count; i++ {
		i := i // ゴルーチンのクロージャ対策なのだ

		eg.Go(func() error {
			// 1. レートリミットに従って、自分の番が来るまで待機するのだ
			if err := limiter.Wait(egCtx); err != nil {
				return err
			}

			// 2. パイプラインに動画解析と画像生成を依頼するのだ
			res, err := cr.executor.Execute(egCtx, req)
			if err != nil {
				slog.Error("バリエーション生成に失敗したのだ", "variation", i+1, "error", err)
				return err
			}

			// 3. 生成されたデータをローカルファイルに保存するのだ
			path, err := cr.saveComic(res, i)
			if err != nil {
				return err
			}

			results[i] = res
			paths[i] = path
			slog.Info("バリエーション生成に成功したのだ", "variation", i+1)
			return nil
		})
	}

	// すべての並列処理が完了するのを待つのだ
	if err := eg.Wait(); err != nil {
		return err
	}

	cr.printResults(results, paths)
	return nil
}

// buildRequest は、オプションから生成リクエストを組み立てて試行順のサービスを解決するのだ。
func (cr *VideoComicRunner) buildRequest() (domain.ComicRequest, error) {
	primary, err := domain.ParseService(cr.opts.Primary)
	if err != nil {
		return domain.ComicRequest{}, err
	}

	fallback, err := domain.ParseService(cr.opts.Fallback)
	if err != nil {
		return domain.ComicRequest{}, err
	}

	return domain.ComicRequest{
		VideoURL:    cr.opts.VideoURL,
		Description: cr.opts.Description,
		Primary:     primary,
		Fallback:    fallback,
	}, nil
}

// normalizeCount は、生成数を 1 以上 DefaultVariationLimit 以下に収めるのだ。
func normalizeCount(count int) int {
	if count <= 0 {
		return 1
	}
	if count > config.DefaultVariationLimit {
		slog.Warn("バリエーション数に上限を適用したのだ", "requested", count, "limit", config.DefaultVariationLimit)
		return config.DefaultVariationLimit
	}
	return count
}

// saveComic は、生成結果をローカルファイルに保存して保存先パスを返すのだ。
func (cr *VideoComicRunner) saveComic(res *domain.ComicResult, index int) (string, error) {
	// MIMEタイプから拡張子を決定
	var extension string
	extensions, err := mime.ExtensionsByType(res.MimeType)
	if err != nil || len(extensions) == 0 {
		slog.Warn(
			"Could not determine file extension from MIME type, defaulting to .png",
			slog.String("mime_type", res.MimeType),
		)
		extension = ".png" // フォールバック
	} else {
		extension = extensions[0] // 最も一般的な拡張子を取得 (例: ".jpeg")
	}

	fileName := cr.opts.OutputFile
	if fileName == "" {
		base := strings.TrimSuffix(asset.DefaultComicFileName, filepath.Ext(asset.DefaultComicFileName))
		fileName = base + extension
	}

	outputDir := cr.opts.OutputDir
	if outputDir == "" {
		outputDir = asset.DefaultOutputDir
	}

	outputPath, err := asset.ResolveOutputPath(outputDir, fileName)
	if err != nil {
		return "", fmt.Errorf("出力パスの解決に失敗したのだ: %w", err)
	}

	// バリエーション 2 枚目以降は連番付きのファイル名にするのだ
	if index > 0 {
		outputPath, err = asset.GenerateIndexedPath(outputPath, index)
		if err != nil {
			return "", fmt.Errorf("連番パスの生成に失敗したのだ: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return "", fmt.Errorf("出力ディレクトリの作成に失敗したのだ: %w", err)
	}

	if err := os.WriteFile(outputPath, res.Data, 0644); err != nil {
		slog.Error("Failed to save image", "path", outputPath, "error", err)
		return "", fmt.Errorf("画像の保存に失敗したのだ: %w", err)
	}

	return outputPath, nil
}

// printResults は、保存結果と警告をまとめて表示するのだ。
func (cr *VideoComicRunner) printResults(results []*domain.ComicResult, paths []string) {
	fmt.Println("\n" + strings.Repeat("✨", 25))
	for i, res := range results {
		fmt.Printf("🎉 コミック画像を保存したのだ: %s (生成: %s)\n", paths[i], res.Service)
		if res.Warning != "" {
			fmt.Printf("⚠️  %s\n", res.Warning)
		}
	}
	fmt.Println(strings.Repeat("✨", 25))

	if cr.opts.ShowPrompt && len(results) > 0 {
		fmt.Println("📝 Enhanced Prompt:")
		fmt.Println(results[0].Prompt)
	}
}
