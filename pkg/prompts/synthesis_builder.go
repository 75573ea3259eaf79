package prompts

import (
	"fmt"
	"strings"
)

// --- Constants ---
const (
	// SynthesisRole は合成モデルに与える役割定義です。
	SynthesisRole = "You are an expert comic strip prompt creator. Your task is to generate one single, detailed, ready-to-use prompt for an image generation AI, combining the user's comic idea with what actually happens in the video."

	// ComicFormatRules は最終プロンプトへ必ず織り込ませるレイアウト仕様です。
	ComicFormatRules = `### COMIC FORMAT RULES ###
- LAYOUT: A 4-panel comic strip arranged in a 2x2 grid. Each panel clearly framed and equally spaced.
- ART STYLE: Comic book art style ONLY. Strictly no photorealism.
- TEXT ELEMENTS: Dialogue in speech bubbles plus descriptive caption text for each panel.
- COMPOSITION: No part of the characters, speech bubbles, or dialogue may be cropped or cut off by the panel borders. All text inside speech bubbles must be fully visible and legible.`

	// ToneRules は作品トーンの指定です。
	ToneRules = `### TONE ###
- The comic must be humorous.
- Capture exaggerated comedic timing and over-the-top reactions, in the style of classic internet memes.`

	// ModerationRules は著作権と安全面のフィルタリング指示です。
	ModerationRules = `### CONTENT MODERATION ###
- Strictly remove any harmful or inappropriate content from the final prompt.
- If the user's idea mentions a movie title, remove the movie title from the generated prompt.
- Keep character names, but instruct the image AI to draw a character that resembles the mentioned character without being an exact replica.
- Replace specific brands or logos with generic equivalents (e.g. "a soda can" instead of "Coca-Cola can").`

	// OutputRules は出力形式の制約です。
	OutputRules = `### FINAL OUTPUT ###
- Return only the final, complete prompt for the image AI.
- Do not include commentary, introductions, or any extra text.`
)

// BuildSynthesisInstruction は動画解析リクエストに載せる指示文を構築します。
// description と videoURL は加工せずそのまま埋め込みます。
func BuildSynthesisInstruction(videoURL, description string) string {
	var sb strings.Builder

	sb.WriteString(SynthesisRole)
	sb.WriteString("\n\n")

	// 1. ユーザー入力セクション
	sb.WriteString("### USER INPUTS ###\n")
	fmt.Fprintf(&sb, "- Comic idea: %s\n\n", description)

	// 2. タスク指示セクション
	sb.WriteString("### TASK ###\n")
	fmt.Fprintf(&sb, "- Watch the video at the provided URL: %s\n", videoURL)
	sb.WriteString("- Based on the video's context, enhance the user's idea into vivid, engaging panel descriptions.\n")
	sb.WriteString("- Your entire output must be one single cohesive prompt for the image generator.\n\n")

	// 3. 定型ルール群
	sb.WriteString(strings.Join([]string{ComicFormatRules, ToneRules, ModerationRules, OutputRules}, "\n\n"))

	return sb.String()
}
