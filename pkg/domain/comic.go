package domain

// ComicRequest は 1 回のコミック生成要求の入力をまとめた構造です。
// Validate を通過した後は読み取り専用として扱います。
type ComicRequest struct {
	// VideoURL は解析対象の YouTube 動画 URL。
	VideoURL string `json:"video_url"`
	// Description はユーザーが望むコミックの方向性を表す短文。
	Description string `json:"description"`
	// Primary / Fallback は画像生成サービスの試行順です。
	Primary  Service `json:"primary"`
	Fallback Service `json:"fallback"`
}

// ComicResult はパイプライン成功時の最終成果物です。
type ComicResult struct {
	// Data は PNG に正規化済みの画像バイト列。
	Data     []byte `json:"-"`
	MimeType string `json:"mime_type"`
	// Service は実際に画像を生成したサービス。
	Service Service `json:"service"`
	// Prompt は動画解析から合成された画像生成プロンプト（そのまま保持）。
	Prompt string `json:"prompt"`
	// Warning はプライマリ失敗をフォールバックが救済した場合のみ非空。
	Warning string `json:"warning,omitempty"`
}
