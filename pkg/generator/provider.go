package generator

import (
	"context"

	imagedom "github.com/shouni/gemini-image-kit/pkg/domain"
	"github.com/shouni/go-video-comic-kit/pkg/domain"
)

// ComicAspectRatio は 2x2 グリッドの完成画像に合わせた正方形の出力比率です。
const ComicAspectRatio = "1:1"

// ImageProvider は、合成済みプロンプトからコミック画像を 1 枚生成する契約です。
// プロンプトは不透明な文字列として受け取り、リトライは行いません。
type ImageProvider interface {
	// Service はこのプロバイダの識別子を返します。
	Service() domain.Service
	// Generate は画像を生成します。失敗時のエラーは分類前の生のメッセージです。
	Generate(ctx context.Context, prompt string) (*imagedom.ImageResponse, error)
}
