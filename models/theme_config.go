package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ThemeConfig kartvizitin görsel ayarlarını tutan kapalı yapıdır.
// Serbest key->value map yerine bilinen üç alan kullanılır; bilinmeyen
// anahtarlar sınırda reddedilir ki sessiz yazım hataları veriye sızmasın.
type ThemeConfig struct {
	Color  string `json:"color"`
	Font   string `json:"font"`
	Design string `json:"design"`
}

// UnmarshalJSON katı modda çözer: bilinmeyen anahtar hata döndürür.
// API gövdesinde iç içe geldiğinde de bu kural uygulanır.
func (c *ThemeConfig) UnmarshalJSON(data []byte) error {
	type plain ThemeConfig
	var p plain
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return fmt.Errorf("geçersiz tema ayarı: %w", err)
	}
	*c = ThemeConfig(p)
	return nil
}

// ParseThemeConfig kolondaki ham JSON'u çözer.
func ParseThemeConfig(raw []byte) (ThemeConfig, error) {
	var cfg ThemeConfig
	if len(raw) == 0 {
		return cfg, nil
	}
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return ThemeConfig{}, err
	}
	return cfg, nil
}

// MarshalBytes kolona yazılacak JSON halini döndürür.
func (c ThemeConfig) MarshalBytes() []byte {
	b, _ := json.Marshal(c)
	return b
}

// IsZero üç alanın da boş olup olmadığını söyler.
func (c ThemeConfig) IsZero() bool {
	return c.Color == "" && c.Font == "" && c.Design == ""
}
