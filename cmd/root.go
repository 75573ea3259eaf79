package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/shouni/go-video-comic-kit/internal/config"
	"github.com/shouni/go-video-comic-kit/pkg/asset"

	clibase "github.com/shouni/go-cli-base"
	"github.com/spf13/cobra"
)

// opts は、全コマンドで共有するコマンドラインフラグの束なのだ。
var opts config.GenerateOptions

// addAppFlags は、アプリケーション全般に適用されるグローバルフラグを定義するのだ。
func addAppFlags(rootCmd *cobra.Command) {
	// --- ソース入力関連 ---
	rootCmd.PersistentFlags().StringVarP(&opts.VideoURL, "video-url", "u", "", "コミック化したい YouTube 動画のURLなのだ。")
	rootCmd.PersistentFlags().StringVarP(&opts.Description, "description", "d", "", "どんなコミックにしたいかの説明なのだ（10文字以上）。")

	// --- 画像生成サービスの試行順 ---
	rootCmd.PersistentFlags().StringVar(&opts.Primary, "primary", config.DefaultPrimaryService, "最初に試す画像生成サービス（openai / imagen）なのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.Fallback, "fallback", config.DefaultFallbackService, "失敗時に切り替える画像生成サービスなのだ。")

	// --- 生成結果の出力設定 ---
	rootCmd.PersistentFlags().StringVarP(&opts.OutputDir, "output-dir", "i", asset.DefaultOutputDir, "生成された画像を保存するディレクトリなのだ。")
	rootCmd.PersistentFlags().StringVarP(&opts.OutputFile, "output-file", "o", "", "保存ファイル名なのだ（空なら既定名を使うのだ）。")
	rootCmd.PersistentFlags().IntVarP(&opts.Count, "count", "n", 1, "生成するバリエーション数なのだ。")
	rootCmd.PersistentFlags().BoolVar(&opts.ShowPrompt, "show-prompt", false, "合成されたプロンプトも一緒に表示するのだ。")

	// --- AIモデル・挙動設定 ---
	rootCmd.PersistentFlags().StringVar(&opts.AIModel, "model", config.DefaultGeminiModel, "動画解析に使う Gemini モデル名なのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.OpenAIModel, "openai-model", config.DefaultOpenAIModel, "OpenAI の画像生成モデル名なのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.ImagenModel, "imagen-model", config.DefaultImagenModel, "Imagen の画像生成モデル名なのだ。")
	rootCmd.PersistentFlags().DurationVar(&opts.HTTPTimeout, "http-timeout", config.DefaultHTTPTimeout, "外部APIリクエストのタイムアウトなのだ。")
}

// preRunAppE は、コマンド実行前に環境変数などの必須チェックを行うのだ。
func preRunAppE(cmd *cobra.Command, args []string) error {
	// .env があれば読み込むのだ（無くてもエラーにはしない）
	_ = godotenv.Load()

	// Gemini APIを利用するため、APIキーの存在チェックは欠かせないのだ！
	if os.Getenv("GEMINI_API_KEY") == "" {
		return fmt.Errorf("エラー: 環境変数 GEMINI_API_KEY が設定されていません。Gemini APIの利用には必須なのだ")
	}

	return nil
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
// main.go から呼び出されて、cobra のコマンドライン解析を開始するのだよ。
func Execute() {
	clibase.Execute(
		"ap-video-comic-go",
		addAppFlags,
		preRunAppE,
		generateCmd,
		promptCmd,
		servicesCmd,
	)
}
