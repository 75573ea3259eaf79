package asset

import "testing"

func TestComicFileRegex(t *testing.T) {
	t.Run("連番つきのコミック画像名だけに一致するのだ", func(t *testing.T) {
		matches := []string{"comic_strip_1.png", "comic_strip_12.png"}
		for _, name := range matches {
			if !ComicFileRegex.MatchString(name) {
				t.Errorf("%q が一致しないのだ", name)
			}
		}

		rejects := []string{"comic_strip.png", "comic_strip_.png", "comic_strip_1.jpg", "other_1.png"}
		for _, name := range rejects {
			if ComicFileRegex.MatchString(name) {
				t.Errorf("%q が一致してしまったのだ", name)
			}
		}
	})
}
