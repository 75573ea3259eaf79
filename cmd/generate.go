package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/go-video-comic-kit/internal/config"
	"github.com/shouni/go-video-comic-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// generateCmd は、動画解析からコミック画像の生成までを一気に実行するのだ。
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "YouTube動画からコミック画像を生成しますなのだ。",
	Long: `YouTube 動画の内容を解析して画像生成プロンプトを合成し、コミック画像を生成するのだ。
優先サービスが失敗しても、フォールバックサービスが自動で引き継ぐのだよ。`,
	RunE: generateCommand,
}

func init() {
}

func generateCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// 1. 環境変数等から基本設定をロードするのだ
	cfg := config.LoadConfig()
	if cmd.Flags().Changed("model") {
		cfg.GeminiModel = opts.AIModel
	}
	if cmd.Flags().Changed("openai-model") {
		cfg.OpenAIModel = opts.OpenAIModel
	}
	if cmd.Flags().Changed("imagen-model") {
		cfg.ImagenModel = opts.ImagenModel
	}
	cfg.Options = opts

	slog.Info("コミック生成パイプラインを起動するのだ！",
		"video_url", opts.VideoURL,
		"primary", opts.Primary,
		"fallback", opts.Fallback,
		"count", opts.Count)

	// 2. 更新した config を考慮しつつパイプラインを実行するのだ
	err := pipeline.ExecuteComic(ctx, cfg)
	if err != nil {
		printFailureHint(err)
		return fmt.Errorf("パイプライン実行中にエラーが発生したのだ: %w", err)
	}

	slog.Info("すべての生成工程が完了したのだ！")
	return nil
}

// printFailureHint は、エラー内容に応じた復旧のヒントを表示するのだ。
func printFailureHint(err error) {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "limit") || strings.Contains(msg, "quota"):
		fmt.Println("💡 ヒント: 1日の利用上限に達した可能性があるのだ。上限は毎日リセットされるのだ。")
	case strings.Contains(msg, "billing") || strings.Contains(msg, "billed"):
		fmt.Println("💡 ヒント: Imagen API の利用には Google Cloud の課金設定が必要なのだ。")
	case strings.Contains(msg, "api key") || strings.Contains(msg, "401"):
		fmt.Println("💡 ヒント: APIキーが正しく設定されているか確認してほしいのだ。")
	case strings.Contains(msg, "permission") || strings.Contains(msg, "403"):
		fmt.Println("💡 ヒント: APIキーの権限設定を確認してほしいのだ。")
	case strings.Contains(msg, "url"):
		fmt.Println("💡 ヒント: 動画が公開されているか、URLが正しいか確認してほしいのだ。")
	}
}
