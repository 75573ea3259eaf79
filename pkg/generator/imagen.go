package generator

import (
	"context"

	imagedom "github.com/shouni/gemini-image-kit/pkg/domain"
	"github.com/shouni/go-video-comic-kit/pkg/domain"
)

// ImageAdapter は gemini-image-kit のパネル生成面だけを切り出した契約です。
type ImageAdapter interface {
	GenerateMangaPanel(ctx context.Context, req imagedom.ImageGenerationRequest) (*imagedom.ImageResponse, error)
}

// ImagenProvider は gemini-image-kit のジェネレータを通じて Imagen 画像を生成します。
// Gemini の資格情報で動作するため、OpenAI 側の鍵が無い環境でも利用できます。
type ImagenProvider struct {
	imgGen ImageAdapter
}

// NewImagenProvider は構築済みのジェネレータを包んだアダプタを返します。
func NewImagenProvider(imgGen ImageAdapter) *ImagenProvider {
	return &ImagenProvider{imgGen: imgGen}
}

// Service は識別子 imagen を返します。
func (p *ImagenProvider) Service() domain.Service { return domain.ServiceImagen }

// Generate は正方形 1 枚の画像生成をキットへ委譲します。
// エラーは分類せずそのまま返します。
func (p *ImagenProvider) Generate(ctx context.Context, prompt string) (*imagedom.ImageResponse, error) {
	return p.imgGen.GenerateMangaPanel(ctx, imagedom.ImageGenerationRequest{
		Prompt:      prompt,
		AspectRatio: ComicAspectRatio,
	})
}
