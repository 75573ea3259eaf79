package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shouni/go-video-comic-kit/internal/config"
	"github.com/shouni/go-video-comic-kit/pkg/asset"
	"github.com/shouni/go-video-comic-kit/pkg/domain"
	"github.com/shouni/go-video-comic-kit/pkg/synthesis"
)

// PromptRunner は、動画解析で合成したプロンプトを表示または保存する実体。
// 画像生成に進む前に、プロンプトの出来を確かめたいときに使う。
type PromptRunner struct {
	synthesizer synthesis.Synthesizer  // 動画解析つきプロンプト合成器
	opts        config.GenerateOptions // CLI フラグ由来の実行時オプション
}

// NewPromptRunner は、PromptRunnerの新しいインスタンスを生成して返す。
func NewPromptRunner(synthesizer synthesis.Synthesizer, opts config.GenerateOptions) *PromptRunner {
	return &PromptRunner{
		synthesizer: synthesizer,
		opts:        opts,
	}
}

// Run は動画解析を実行し、合成されたプロンプトを出力するのだ。
func (pr *PromptRunner) Run(ctx context.Context) error {
	req := domain.ComicRequest{
		VideoURL:    pr.opts.VideoURL,
		Description: pr.opts.Description,
	}
	if err := req.Validate(); err != nil {
		return err
	}

	prompt, err := pr.synthesizer.Synthesize(ctx, req.VideoURL, req.Description)
	if err != nil {
		return err
	}

	if pr.opts.OutputFile == "" {
		pr.printPrompt(prompt)
		return nil
	}

	return pr.savePrompt(prompt)
}

// savePrompt は合成プロンプトをテキストファイルとして保存するのだ。
func (pr *PromptRunner) savePrompt(prompt string) error {
	outputDir := pr.opts.OutputDir
	if outputDir == "" {
		outputDir = asset.DefaultOutputDir
	}

	outputPath, err := asset.ResolveOutputPath(outputDir, pr.opts.OutputFile)
	if err != nil {
		return fmt.Errorf("出力パスの解決に失敗したのだ: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("出力ディレクトリの作成に失敗したのだ: %w", err)
	}

	if err := os.WriteFile(outputPath, []byte(prompt), 0644); err != nil {
		return fmt.Errorf("プロンプトの保存に失敗したのだ: %w", err)
	}

	fmt.Printf("📝 合成プロンプトを保存したのだ: %s\n", outputPath)
	return nil
}

// printPrompt は合成プロンプトを標準出力へ表示するのだ。
func (pr *PromptRunner) printPrompt(prompt string) {
	fmt.Println("\n" + strings.Repeat("✨", 25))
	fmt.Println("📝 Enhanced Prompt:")
	fmt.Println(strings.Repeat("✨", 25))
	fmt.Println(prompt)
}
