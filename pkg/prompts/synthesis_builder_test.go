package prompts

import (
	"strings"
	"testing"
)

func TestBuildSynthesisInstruction(t *testing.T) {
	const (
		videoURL    = "https://youtube.com/shorts/abc123"
		description = "make it a superhero story"
	)
	instruction := BuildSynthesisInstruction(videoURL, description)

	t.Run("ユーザー入力が無加工で埋め込まれるのだ", func(t *testing.T) {
		if !strings.Contains(instruction, description) {
			t.Error("説明文がそのまま含まれていないのだ")
		}
		if !strings.Contains(instruction, videoURL) {
			t.Error("動画URLがそのまま含まれていないのだ")
		}
	})

	t.Run("特殊文字入りの説明も変形されないのだ", func(t *testing.T) {
		raw := `"quoted" & <tagged> 100%の説明文`
		got := BuildSynthesisInstruction(videoURL, raw)
		if !strings.Contains(got, raw) {
			t.Error("特殊文字が加工されてしまったのだ")
		}
	})

	t.Run("必須の指示がすべて含まれるのだ", func(t *testing.T) {
		for _, marker := range []string{
			"2x2 grid",
			"4-panel",
			"no photorealism",
			"speech bubbles",
			"cropped or cut off",
			"humorous",
			"internet memes",
			"movie title",
			"generic equivalents",
			"Return only the final, complete prompt",
		} {
			if !strings.Contains(instruction, marker) {
				t.Errorf("指示 %q が見当たらないのだ", marker)
			}
		}
	})

	t.Run("セクション構成が保たれているのだ", func(t *testing.T) {
		for _, section := range []string{
			"### USER INPUTS ###",
			"### TASK ###",
			"### COMIC FORMAT RULES ###",
			"### TONE ###",
			"### CONTENT MODERATION ###",
			"### FINAL OUTPUT ###",
		} {
			if !strings.Contains(instruction, section) {
				t.Errorf("セクション %q が欠けているのだ", section)
			}
		}
	})
}
