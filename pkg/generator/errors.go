package generator

import (
	"fmt"
	"strings"

	"github.com/shouni/go-video-comic-kit/pkg/domain"
)

// ProviderError は利用者向けに分類済みの画像生成エラーです。
// Error() は分類後の説明文を返し、Unwrap() で元のエラーを辿れます。
type ProviderError struct {
	Service domain.Service
	Message string
	cause   error
}

func (e *ProviderError) Error() string { return e.Message }

func (e *ProviderError) Unwrap() error { return e.cause }

// ClassifyError は生のエラー文言から利用者向けの説明文を組み立てます。
// 判定は部分一致のベストエフォートで、上から順に最初に一致した分類を採用します。
// 文言は各 API の応答形式に依存するため、厳密な契約ではありません。
func ClassifyError(service domain.Service, err error) *ProviderError {
	msg := err.Error()
	lower := strings.ToLower(msg)
	label := service.Label()

	var classified string
	switch {
	case strings.Contains(msg, "429") || strings.Contains(lower, "quota"):
		classified = fmt.Sprintf("%s: Daily limit reached. Please try again later.", label)
	case strings.Contains(msg, "400") && strings.Contains(lower, "billed"):
		classified = fmt.Sprintf("%s: Billing required. Please enable billing in your account.", label)
	case strings.Contains(msg, "401") || strings.Contains(lower, "api key"):
		classified = fmt.Sprintf("%s: Invalid API key. Please check your credentials.", label)
	case strings.Contains(msg, "403") || strings.Contains(lower, "permission"):
		classified = fmt.Sprintf("%s: Permission denied. Check API key permissions.", label)
	case strings.Contains(lower, "invalid") && strings.Contains(lower, "url"):
		classified = "Invalid video URL. Ensure the YouTube video is publicly accessible."
	default:
		classified = fmt.Sprintf("%s: %s", label, msg)
	}

	return &ProviderError{Service: service, Message: classified, cause: err}
}
