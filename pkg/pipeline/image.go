package pipeline

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
)

// DecodeImage は画像バイト列をビットマップとしてデコードし、フォーマット名と共に返します。
func DecodeImage(data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("unsupported image data: %w", err)
	}
	return img, format, nil
}

// NormalizePNG は画像バイト列を可逆な PNG 表現へ正規化します。
// 既に PNG の場合は再エンコードせずそのまま返します。
func NormalizePNG(data []byte) ([]byte, error) {
	img, format, err := DecodeImage(data)
	if err != nil {
		return nil, err
	}
	if format == "png" {
		return data, nil
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}
