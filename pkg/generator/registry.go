package generator

import (
	"github.com/shouni/go-video-comic-kit/pkg/domain"
)

// Registry は構成済みプロバイダをサービス識別子で引くための閉じた対応表です。
// 識別子は domain.Service の列挙に限られ、任意の文字列は受け付けません。
type Registry struct {
	providers map[domain.Service]ImageProvider
}

// NewRegistry はプロバイダ群を登録した Registry を返します。nil は読み飛ばします。
func NewRegistry(providers ...ImageProvider) *Registry {
	m := make(map[domain.Service]ImageProvider, len(providers))
	for _, p := range providers {
		if p == nil {
			continue
		}
		m[p.Service()] = p
	}
	return &Registry{providers: m}
}

// Lookup は識別子に対応するプロバイダを返します。
func (r *Registry) Lookup(s domain.Service) (ImageProvider, bool) {
	p, ok := r.providers[s]
	return p, ok
}

// Empty はプロバイダが1つも登録されていないかを返します。
func (r *Registry) Empty() bool { return len(r.providers) == 0 }
