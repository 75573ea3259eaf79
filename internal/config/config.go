package config

import (
	"time"

	"github.com/shouni/go-utils/envutil"
	"github.com/shouni/go-video-comic-kit/pkg/domain"
)

const (
	// DefaultGeminiModel は動画解析つきプロンプト合成に使うモデルです。
	DefaultGeminiModel = "gemini-2.0-flash"
	// DefaultOpenAIModel は OpenAI 側の画像生成モデルです。
	DefaultOpenAIModel = "gpt-image-1"
	// DefaultImagenModel は Imagen 側の画像生成モデルです。
	DefaultImagenModel = "imagen-4.0-generate-001"

	// DefaultHTTPTimeout は外部 API 呼び出しのタイムアウトです。
	// 動画解析も画像生成も応答に時間がかかるため長めに取ります。
	DefaultHTTPTimeout = 120 * time.Second
	// DefaultSynthesisCacheTTL は合成済みプロンプトのメモ化期間です。
	DefaultSynthesisCacheTTL = 30 * time.Minute
	// DefaultRateLimit はバリエーション生成時の呼び出し間隔です。
	DefaultRateLimit = 30 * time.Second

	// DefaultPrimaryService と DefaultFallbackService は試行順の既定値です。
	DefaultPrimaryService  = "openai"
	DefaultFallbackService = "imagen"

	// DefaultVariationLimit は一度の実行で生成できるバリエーション数の上限です。
	DefaultVariationLimit = 4
)

// Config はアプリケーション全体の設定です。起動時に一度だけ読み取り、
// 以後は読み取り専用として各コンストラクタへ引き渡します。
type Config struct {
	GeminiAPIKey string
	OpenAIAPIKey string

	GeminiModel string
	OpenAIModel string
	ImagenModel string

	HTTPTimeout       time.Duration
	SynthesisCacheTTL time.Duration

	Options GenerateOptions
}

// LoadConfig は環境変数からアプリケーション設定を構築して返します。
func LoadConfig() *Config {
	return &Config{
		GeminiAPIKey:      envutil.GetEnv("GEMINI_API_KEY", ""),
		OpenAIAPIKey:      envutil.GetEnv("OPENAI_API_KEY", ""),
		GeminiModel:       envutil.GetEnv("COMIC_GEMINI_MODEL", DefaultGeminiModel),
		OpenAIModel:       envutil.GetEnv("COMIC_OPENAI_MODEL", DefaultOpenAIModel),
		ImagenModel:       envutil.GetEnv("COMIC_IMAGEN_MODEL", DefaultImagenModel),
		HTTPTimeout:       DefaultHTTPTimeout,
		SynthesisCacheTTL: DefaultSynthesisCacheTTL,
	}
}

// Availability は資格情報の有無から利用可能なサービスを導出します。
func (c *Config) Availability() domain.ServiceAvailability {
	return domain.ServiceAvailability{
		OpenAI: c.OpenAIAPIKey != "",
		Gemini: c.GeminiAPIKey != "",
	}
}

// ResolveHTTPTimeout はフラグ指定があればそれを、無ければ既定値を返します。
func (c *Config) ResolveHTTPTimeout() time.Duration {
	if c.Options.HTTPTimeout > 0 {
		return c.Options.HTTPTimeout
	}
	return c.HTTPTimeout
}

// GenerateOptions は CLI フラグから渡される実行時オプションです。
type GenerateOptions struct {
	VideoURL    string
	Description string
	Primary     string
	Fallback    string
	OutputDir   string
	OutputFile  string
	Count       int
	ShowPrompt  bool
	AIModel     string
	OpenAIModel string
	ImagenModel string
	HTTPTimeout time.Duration
}
