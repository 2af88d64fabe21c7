// Package slug は表示名からURL-safeな識別子を作る。
// URLの一部としても保存画像のファイル名としても使う。
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldは文字をNFD分解して結合記号を落とす。
// "Điện thoại" は小文字化の前に "Dien thoai" になる。
var fold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// ベトナム語のĐ/đは基底文字+記号に分解されない
var special = strings.NewReplacer("Đ", "D", "đ", "d")

// Make はnameのslug形を返す。小文字ASCII、英数字以外の連続は
// ハイフン1つに潰す。冪等。
func Make(name string) string {
	s, _, err := transform.String(fold, special.Replace(name))
	if err != nil {
		s = name
	}
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	lastHyphen := true // 先頭の区切り文字は読み飛ばす
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
