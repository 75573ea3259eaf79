// Package synthesis は動画解析を通じて画像生成プロンプトを合成します。
// Gemini の generateContent にテキスト指示と動画 URL (file_data) を
// 同時に渡し、モデルが返したテキストをそのまま次段へ引き渡します。
package synthesis

import "context"

// Synthesizer は動画と説明文から画像生成プロンプトを合成する契約です。
// 返却するテキストは不透明な文字列として扱い、解析や変形を行いません。
type Synthesizer interface {
	Synthesize(ctx context.Context, videoURL, description string) (string, error)
}
