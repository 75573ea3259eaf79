package generator

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type doerFunc func(*http.Request) (*http.Response, error)

func (f doerFunc) Do(r *http.Request) (*http.Response, error) { return f(r) }

func TestOpenAIProvider_Generate(t *testing.T) {
	const prompt = "A 4-panel superhero comic strip"
	imageBytes := []byte("fake-png-bytes")

	t.Run("生成リクエストの形が正しいのだ", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/v1/images/generations" {
				t.Errorf("パスが違うのだ: %s", r.URL.Path)
			}
			if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
				t.Errorf("認証ヘッダが違うのだ: %q", auth)
			}

			var body openaiImageRequest
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatalf("リクエストのパースに失敗したのだ: %v", err)
			}
			if body.Model != "gpt-image-1" || body.N != 1 || body.Size != "1024x1024" {
				t.Errorf("既定パラメータが違うのだ: %+v", body)
			}
			if body.Prompt != prompt {
				t.Errorf("プロンプトが加工されているのだ: %q", body.Prompt)
			}

			json.NewEncoder(w).Encode(map[string]any{
				"data": []map[string]any{{"b64_json": base64.StdEncoding.EncodeToString(imageBytes)}},
			})
		}))
		defer srv.Close()

		p := NewOpenAIProvider(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL, HTTPClient: srv.Client()})
		resp, err := p.Generate(context.Background(), prompt)
		if err != nil {
			t.Fatalf("生成に失敗したのだ: %v", err)
		}
		if string(resp.Data) != string(imageBytes) {
			t.Error("デコード済みバイト列が一致しないのだ")
		}
		if resp.MimeType != "image/png" {
			t.Errorf("MIMEタイプが違うのだ: %s", resp.MimeType)
		}
	})

	t.Run("APIエラーはステータスと本文を保持するのだ", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"message":"Rate limit exceeded","type":"requests"}}`))
		}))
		defer srv.Close()

		p := NewOpenAIProvider(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL, HTTPClient: srv.Client()})
		_, err := p.Generate(context.Background(), prompt)
		if err == nil {
			t.Fatal("エラーが返らなかったのだ")
		}
		if !strings.Contains(err.Error(), "429") || !strings.Contains(err.Error(), "Rate limit exceeded") {
			t.Errorf("エラー文言が不足しているのだ: %v", err)
		}
	})

	t.Run("キー未設定ならネットワークに触れず失敗するのだ", func(t *testing.T) {
		touched := false
		p := NewOpenAIProvider(OpenAIConfig{HTTPClient: doerFunc(func(r *http.Request) (*http.Response, error) {
			touched = true
			return nil, nil
		})})

		_, err := p.Generate(context.Background(), prompt)
		if err == nil || err.Error() != "OpenAI API key not configured" {
			t.Errorf("期待したエラーと違うのだ: %v", err)
		}
		if touched {
			t.Error("キーが無いのにHTTPクライアントが呼ばれたのだ")
		}
	})

	t.Run("画像データ無しの応答はエラーなのだ", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":[]}`))
		}))
		defer srv.Close()

		p := NewOpenAIProvider(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL, HTTPClient: srv.Client()})
		_, err := p.Generate(context.Background(), prompt)
		if err == nil || !strings.Contains(err.Error(), "no image data") {
			t.Errorf("期待したエラーと違うのだ: %v", err)
		}
	})
}
