package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-video-comic-kit/internal/config"
	"github.com/shouni/go-video-comic-kit/internal/pipeline"
	"github.com/shouni/go-video-comic-kit/pkg/asset"

	"github.com/spf13/cobra"
)

// promptCmd は、動画解析とプロンプト合成のみを実行するのだ。
var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "合成プロンプトのみを生成して表示するのだ。",
	Long: `YouTube 動画を解析し、コミック画像の生成に使うプロンプトだけを合成するのだ。
画像生成は行わないので、プロンプトの出来を先に確かめられるのだよ。`,
	RunE: promptCommand,
}

func init() {
	promptCmd.Flags().Bool("save", false, "合成プロンプトを既定のファイル名で保存するのだ。")
}

func promptCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// --output-file がユーザーによって指定されなかった場合、
	// --save 指定時は prompt コマンド固有のデフォルト値を設定する
	save, err := cmd.Flags().GetBool("save")
	if err != nil {
		return fmt.Errorf("--save フラグの解析に失敗したのだ: %w", err)
	}
	if save && !cmd.Flags().Changed("output-file") {
		opts.OutputFile = asset.DefaultPromptFileName
	}

	// 設定のロード
	cfg := config.LoadConfig()
	if cmd.Flags().Changed("model") {
		cfg.GeminiModel = opts.AIModel
	}
	cfg.Options = opts

	slog.Info("プロンプト合成モードを起動するのだ！",
		"video_url", opts.VideoURL,
		"text_model", cfg.GeminiModel)

	// 実行
	if err := pipeline.ExecutePromptOnly(ctx, cfg); err != nil {
		printFailureHint(err)
		return fmt.Errorf("プロンプト合成中にエラーが発生したのだ: %w", err)
	}

	slog.Info("プロンプト合成が完了したのだ！")
	return nil
}
