package pipeline

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func makeTestImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 40), G: uint8(y * 40), B: 128, A: 255})
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("PNGエンコードに失敗したのだ: %v", err)
	}
	return buf.Bytes()
}

func TestNormalizePNG(t *testing.T) {
	t.Run("PNGは再エンコードせず寸法も保たれるのだ", func(t *testing.T) {
		original := encodePNG(t, makeTestImage(3, 2))

		normalized, err := NormalizePNG(original)
		if err != nil {
			t.Fatalf("正規化に失敗したのだ: %v", err)
		}
		if !bytes.Equal(original, normalized) {
			t.Error("PNG入力なのにバイト列が書き換わったのだ")
		}

		img, format, err := DecodeImage(normalized)
		if err != nil {
			t.Fatalf("デコードに失敗したのだ: %v", err)
		}
		if format != "png" {
			t.Errorf("フォーマットが違うのだ: %s", format)
		}
		b := img.Bounds()
		if b.Dx() != 3 || b.Dy() != 2 {
			t.Errorf("寸法が変わってしまったのだ: %dx%d", b.Dx(), b.Dy())
		}
	})

	t.Run("JPEGはPNGへ変換されて寸法が保たれるのだ", func(t *testing.T) {
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, makeTestImage(4, 3), nil); err != nil {
			t.Fatalf("JPEGエンコードに失敗したのだ: %v", err)
		}

		normalized, err := NormalizePNG(buf.Bytes())
		if err != nil {
			t.Fatalf("正規化に失敗したのだ: %v", err)
		}

		img, format, err := DecodeImage(normalized)
		if err != nil {
			t.Fatalf("デコードに失敗したのだ: %v", err)
		}
		if format != "png" {
			t.Errorf("PNGへ変換されていないのだ: %s", format)
		}
		b := img.Bounds()
		if b.Dx() != 4 || b.Dy() != 3 {
			t.Errorf("寸法が変わってしまったのだ: %dx%d", b.Dx(), b.Dy())
		}
	})

	t.Run("画像でないバイト列はエラーなのだ", func(t *testing.T) {
		if _, err := NormalizePNG([]byte("0123456789")); err == nil {
			t.Fatal("エラーが返らなかったのだ")
		}
	})
}
