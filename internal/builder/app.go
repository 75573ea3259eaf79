package builder

import (
	"github.com/shouni/go-gemini-client/pkg/gemini"
	"github.com/shouni/go-http-kit/pkg/httpkit"

	"github.com/shouni/go-video-comic-kit/internal/config"
	"github.com/shouni/go-video-comic-kit/pkg/pipeline"
	"github.com/shouni/go-video-comic-kit/pkg/synthesis"
)

// AppContext は、アプリケーション実行に必要な共通コンテキストを保持する
// これを各Build関数に渡すことで、依存関係の注入を簡素化します。
type AppContext struct {
	Config        *config.Config          // Configは、環境変数から読み込まれたグローバルな設定です（APIキー、モデル名など）。
	Options       config.GenerateOptions  // Optionsは、コマンドラインから渡された実行時の設定です（URL、説明文、サービス指定など）。
	Synthesizer   synthesis.Synthesizer   // Synthesizerは、動画解析を経て画像生成プロンプトを合成するコンポーネントです。
	ComicPipeline *pipeline.ComicPipeline // ComicPipelineは、プロンプト合成と画像生成を束ねたコミック生成パイプラインです。
	aiClient      gemini.GenerativeModel  // aiClient はGeminiの通信に使う共通クライアント
	httpClient    httpkit.ClientInterface // httpClient は外部APIとの通信に使う共通クライアント
}

// NewAppContext は AppContext の新しいインスタンスを生成する
func NewAppContext(
	cfg *config.Config,
	httpClient httpkit.ClientInterface,
	aiClient gemini.GenerativeModel,
	synthesizer synthesis.Synthesizer,
	comicPipeline *pipeline.ComicPipeline,
) AppContext {
	return AppContext{
		Config:        cfg,
		Options:       cfg.Options,
		aiClient:      aiClient,
		httpClient:    httpClient,
		Synthesizer:   synthesizer,
		ComicPipeline: comicPipeline,
	}
}
