package utils

import (
	"crypto/rand"
	"math/big"
	"regexp"
	"strings"
)

// Slug kuralları: küçük harf, rakam, araya tire/alt çizgi; 3-100 karakter.
// Başta ve sonda ayraç olamaz.
const (
	SlugMinLength = 3
	SlugMaxLength = 100
)

var slugPattern = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9_-]*[a-z0-9])?$`)

// IsValidSlug verilen değerin URL-güvenli slug kurallarına uyup uymadığını kontrol eder.
func IsValidSlug(slug string) bool {
	if len(slug) < SlugMinLength || len(slug) > SlugMaxLength {
		return false
	}
	return slugPattern.MatchString(slug)
}

// NormalizeSlug kullanıcı girdisini karşılaştırma öncesi sadeleştirir:
// kırpar ve küçük harfe çevirir. Karakter dönüşümü yapmaz; geçersiz
// karakterler IsValidSlug ile reddedilir.
func NormalizeSlug(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}

const suffixCharset = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateSlugSuffix çakışma sonrası öneri üretmek için kısa rastgele ek döndürür.
func GenerateSlugSuffix(length int) (string, error) {
	if length <= 0 {
		length = 6
	}
	b := make([]byte, length)
	max := big.NewInt(int64(len(suffixCharset)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = suffixCharset[n.Int64()]
	}
	return string(b), nil
}
