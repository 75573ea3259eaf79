package domain

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// MinDescriptionLength は Description に要求する最小文字数です。
const MinDescriptionLength = 10

// youtubeURLMarkers は受理する YouTube URL の形です。部分一致で判定します。
var youtubeURLMarkers = []string{
	"youtube.com/watch",
	"youtube.com/shorts",
	"youtu.be/",
	"m.youtube.com",
}

// Validate は入力を定義順に検査し、最初に失敗した規則のエラーを返します。
// ネットワークやファイルには一切触れません。
func (r ComicRequest) Validate() error {
	url := strings.TrimSpace(r.VideoURL)
	desc := strings.TrimSpace(r.Description)

	if url == "" {
		return errors.New("Please provide a video URL")
	}
	if desc == "" {
		return errors.New("Please provide a comic description")
	}
	if !IsYouTubeURL(url) {
		return errors.New("Please provide a valid YouTube URL (youtube.com or youtu.be)")
	}
	if utf8.RuneCountInString(desc) < MinDescriptionLength {
		return errors.New("Comic description is too short. Please provide more details (at least 10 characters)")
	}
	return nil
}

// IsYouTubeURL は URL が既知の YouTube 形式のいずれかを含むかを返します。
func IsYouTubeURL(url string) bool {
	for _, marker := range youtubeURLMarkers {
		if strings.Contains(url, marker) {
			return true
		}
	}
	return false
}
