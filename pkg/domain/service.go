package domain

import (
	"fmt"
	"strings"
)

// Service は画像生成サービスの識別子です。
// 未知の文字列をそのまま流通させないため、ParseService 経由で生成します。
type Service string

const (
	// ServiceOpenAI は OpenAI Images API (gpt-image-1) を指します。
	ServiceOpenAI Service = "openai"
	// ServiceImagen は Google Imagen を指します。Gemini の資格情報で動作します。
	ServiceImagen Service = "imagen"
)

// ParseService は文字列をサービス識別子へ変換します。大文字小文字は無視します。
func ParseService(s string) (Service, error) {
	switch Service(strings.ToLower(strings.TrimSpace(s))) {
	case ServiceOpenAI:
		return ServiceOpenAI, nil
	case ServiceImagen:
		return ServiceImagen, nil
	default:
		return "", fmt.Errorf("未対応の画像生成サービスです: %q (openai / imagen のいずれかを指定してください)", s)
	}
}

// Label はエラーメッセージ等で用いる大文字表記を返します。
func (s Service) Label() string {
	return strings.ToUpper(string(s))
}

// ServiceAvailability は起動時に読み取った資格情報の有無を表します。
type ServiceAvailability struct {
	OpenAI bool `json:"openai"`
	Gemini bool `json:"gemini"`
}

// For は指定サービスが利用可能かを返します。
// Imagen は Gemini の資格情報を利用するため Gemini 側の有無で判定します。
func (a ServiceAvailability) For(s Service) bool {
	switch s {
	case ServiceOpenAI:
		return a.OpenAI
	case ServiceImagen:
		return a.Gemini
	default:
		return false
	}
}
