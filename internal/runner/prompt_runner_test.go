package runner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shouni/go-video-comic-kit/internal/config"
)

type stubSynthesizer struct {
	calls int
	text  string
	err   error
}

func (s *stubSynthesizer) Synthesize(ctx context.Context, videoURL, description string) (string, error) {
	s.calls++
	return s.text, s.err
}

func TestPromptRunner_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("検証エラーなら合成器には触れないのだ", func(t *testing.T) {
		synth := &stubSynthesizer{text: "unused"}
		opts := config.GenerateOptions{
			VideoURL:    "",
			Description: "make it a superhero story",
		}

		runner := NewPromptRunner(synth, opts)
		err := runner.Run(ctx)
		if err == nil {
			t.Fatal("エラーが返らなかった")
		}
		if err.Error() != "Please provide a video URL" {
			t.Errorf("エラー文言 = %q", err)
		}
		if synth.calls != 0 {
			t.Errorf("合成回数 = %d, want 0", synth.calls)
		}
	})

	t.Run("出力ファイル未指定なら標準出力だけで完了するのだ", func(t *testing.T) {
		synth := &stubSynthesizer{text: "A vivid 4-panel comic prompt."}
		dir := t.TempDir()
		opts := config.GenerateOptions{
			VideoURL:    "https://youtu.be/abc123",
			Description: "make it a superhero story",
			OutputDir:   dir,
		}

		runner := NewPromptRunner(synth, opts)
		if err := runner.Run(ctx); err != nil {
			t.Fatalf("予期しないエラー: %v", err)
		}
		if synth.calls != 1 {
			t.Errorf("合成回数 = %d, want 1", synth.calls)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("出力ディレクトリの読み取りに失敗: %v", err)
		}
		if len(entries) != 0 {
			t.Errorf("ファイルが作られている: %v", entries)
		}
	})

	t.Run("出力ファイル指定なら内容をそのまま保存するのだ", func(t *testing.T) {
		text := "  A vivid 4-panel comic prompt.  "
		synth := &stubSynthesizer{text: text}
		dir := t.TempDir()
		opts := config.GenerateOptions{
			VideoURL:    "https://youtu.be/abc123",
			Description: "make it a superhero story",
			OutputDir:   dir,
			OutputFile:  "enhanced_prompt.txt",
		}

		runner := NewPromptRunner(synth, opts)
		if err := runner.Run(ctx); err != nil {
			t.Fatalf("予期しないエラー: %v", err)
		}

		data, err := os.ReadFile(filepath.Join(dir, "enhanced_prompt.txt"))
		if err != nil {
			t.Fatalf("保存ファイルの読み取りに失敗: %v", err)
		}
		if string(data) != text {
			t.Errorf("保存内容 = %q, want %q", string(data), text)
		}
	})

	t.Run("解析エラーは文言を変えずに伝えるのだ", func(t *testing.T) {
		synthErr := errors.New("Video analysis failed: gemini api error: status=429 body=quota exceeded")
		synth := &stubSynthesizer{err: synthErr}
		opts := config.GenerateOptions{
			VideoURL:    "https://youtu.be/abc123",
			Description: "make it a superhero story",
		}

		runner := NewPromptRunner(synth, opts)
		err := runner.Run(ctx)
		if err == nil {
			t.Fatal("エラーが返らなかった")
		}
		if err.Error() != synthErr.Error() {
			t.Errorf("エラー文言が変わっている: %q", err)
		}
	})
}
