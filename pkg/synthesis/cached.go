package synthesis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

// CachedSynthesizer は同一入力のプロンプト合成結果をメモ化するラッパーです。
// 動画解析は最も重い外部呼び出しのため、(videoURL, description) が同じ
// 要求には合成済みテキストを再利用します。派生テキストのみを保持し、
// リクエスト状態は一切キャッシュしません。
type CachedSynthesizer struct {
	inner Synthesizer
	cache *cache.Cache
	ttl   time.Duration
	group singleflight.Group
}

// NewCachedSynthesizer はキャッシュ付き合成器を生成します。
func NewCachedSynthesizer(inner Synthesizer, c *cache.Cache, ttl time.Duration) *CachedSynthesizer {
	return &CachedSynthesizer{
		inner: inner,
		cache: c,
		ttl:   ttl,
	}
}

// Synthesize はキャッシュを確認し、未登録の場合のみ内側の合成器を呼び出します。
// 同一キーへの同時要求は singleflight で 1 回の呼び出しに集約します。
func (s *CachedSynthesizer) Synthesize(ctx context.Context, videoURL, description string) (string, error) {
	key := synthesisKey(videoURL, description)

	if v, ok := s.cache.Get(key); ok {
		return v.(string), nil
	}

	val, err, _ := s.group.Do(key, func() (interface{}, error) {
		// singleflight 待機中に他のゴルーチンが登録済みの可能性があるため再確認
		if v, ok := s.cache.Get(key); ok {
			return v, nil
		}

		text, synthErr := s.inner.Synthesize(ctx, videoURL, description)
		if synthErr != nil {
			return nil, synthErr
		}

		s.cache.Set(key, text, s.ttl)
		return text, nil
	})
	if err != nil {
		return "", err
	}

	text, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("unexpected return type from singleflight: %T", val)
	}
	return text, nil
}

// synthesisKey は入力ペアから衝突しないキャッシュキーを導出します。
func synthesisKey(videoURL, description string) string {
	h := sha256.New()
	h.Write([]byte(videoURL))
	h.Write([]byte{0})
	h.Write([]byte(description))
	return hex.EncodeToString(h.Sum(nil))
}
