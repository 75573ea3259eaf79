package cmd

import (
	"fmt"
	"strings"

	"github.com/shouni/go-video-comic-kit/internal/config"

	"github.com/spf13/cobra"
)

// servicesCmd は、画像生成サービスの利用可否を表示するのだ。
var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "画像生成サービスの利用可否を表示するのだ。",
	Long: `設定済みのAPIキーから、各画像生成サービスが利用できるかを表示するのだ。
どのキーが足りないのかも、ここで確認できるのだよ。`,
	RunE: servicesCommand,
}

func init() {
}

func servicesCommand(cmd *cobra.Command, args []string) error {
	cfg := config.LoadConfig()
	availability := cfg.Availability()

	fmt.Println("\n" + strings.Repeat("✨", 25))
	fmt.Printf("%s OpenAI (%s): %s\n", statusMark(availability.OpenAI), cfg.OpenAIModel, statusText(availability.OpenAI))
	fmt.Printf("%s Imagen (%s): %s\n", statusMark(availability.Gemini), cfg.ImagenModel, statusText(availability.Gemini))
	fmt.Println(strings.Repeat("✨", 25))

	if !availability.OpenAI {
		fmt.Println("💡 OPENAI_API_KEY を設定すると openai サービスも使えるようになるのだ。")
	}

	return nil
}

func statusMark(ok bool) string {
	if ok {
		return "✅"
	}
	return "❌"
}

func statusText(ok bool) string {
	if ok {
		return "利用可能なのだ"
	}
	return "APIキーが未設定なのだ"
}
