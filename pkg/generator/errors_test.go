package generator

import (
	"errors"
	"testing"

	"github.com/shouni/go-video-comic-kit/pkg/domain"
)

func TestClassifyError(t *testing.T) {
	cases := []struct {
		name    string
		service domain.Service
		raw     string
		want    string
	}{
		{
			name:    "429はレート上限として分類されるのだ",
			service: domain.ServiceOpenAI,
			raw:     "429 quota exceeded",
			want:    "OPENAI: Daily limit reached. Please try again later.",
		},
		{
			name:    "quotaの文言だけでも上限扱いなのだ",
			service: domain.ServiceImagen,
			raw:     "Quota exceeded for quota metric 'GenerateRequests'",
			want:    "IMAGEN: Daily limit reached. Please try again later.",
		},
		{
			name:    "400とbilledの組み合わせは課金案内なのだ",
			service: domain.ServiceImagen,
			raw:     "400 Imagen API is only accessible to billed users",
			want:    "IMAGEN: Billing required. Please enable billing in your account.",
		},
		{
			name:    "401は認証エラーなのだ",
			service: domain.ServiceOpenAI,
			raw:     "Error code: 401 - Incorrect API key provided",
			want:    "OPENAI: Invalid API key. Please check your credentials.",
		},
		{
			name:    "キー未設定の文言も認証エラーに寄せるのだ",
			service: domain.ServiceOpenAI,
			raw:     "OpenAI API key not configured",
			want:    "OPENAI: Invalid API key. Please check your credentials.",
		},
		{
			name:    "403は権限エラーなのだ",
			service: domain.ServiceImagen,
			raw:     "403 Forbidden",
			want:    "IMAGEN: Permission denied. Check API key permissions.",
		},
		{
			name:    "permissionの文言も権限エラーなのだ",
			service: domain.ServiceImagen,
			raw:     "The caller does not have permission",
			want:    "IMAGEN: Permission denied. Check API key permissions.",
		},
		{
			name:    "不正URLはサービス名なしの専用文言なのだ",
			service: domain.ServiceImagen,
			raw:     "Invalid or inaccessible video URL",
			want:    "Invalid video URL. Ensure the YouTube video is publicly accessible.",
		},
		{
			name:    "どれにも当てはまらなければ原文を残すのだ",
			service: domain.ServiceOpenAI,
			raw:     "connection reset by peer",
			want:    "OPENAI: connection reset by peer",
		},
		{
			name:    "複数候補に一致する場合は先頭の規則が勝つのだ",
			service: domain.ServiceOpenAI,
			raw:     "429 permission denied",
			want:    "OPENAI: Daily limit reached. Please try again later.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyError(tc.service, errors.New(tc.raw))
			if got.Message != tc.want {
				t.Errorf("分類結果が違うのだ。\n期待: %s\n実際: %s", tc.want, got.Message)
			}
			if got.Service != tc.service {
				t.Errorf("サービス識別子が失われたのだ: %s", got.Service)
			}
		})
	}
}

func TestProviderError_Unwrap(t *testing.T) {
	t.Run("元のエラーを辿れるのだ", func(t *testing.T) {
		cause := errors.New("429 quota exceeded")
		classified := ClassifyError(domain.ServiceOpenAI, cause)

		if !errors.Is(classified, cause) {
			t.Error("errors.Isで元のエラーへ辿り着けないのだ")
		}

		var pe *ProviderError
		if !errors.As(error(classified), &pe) {
			t.Fatal("errors.Asで型を取り出せないのだ")
		}
		if pe.Service != domain.ServiceOpenAI {
			t.Errorf("サービス識別子が違うのだ: %s", pe.Service)
		}
	})
}
