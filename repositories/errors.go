package repositories

import "errors"

// Repository katmanının sabit hataları. Ham GORM/sürücü hataları bu
// katmanda çevrilir; servisler yalnızca bu sentinel'leri tanır.
var (
	// ErrNotFound kayıt bulunamadığında (veya tenant dışı erişimde) döner.
	ErrNotFound = errors.New("kayıt bulunamadı")
	// ErrDuplicateKey unique kısıtlama ihlalinde döner (örn. slug çakışması).
	ErrDuplicateKey = errors.New("benzersizlik kısıtlaması ihlali")
)
