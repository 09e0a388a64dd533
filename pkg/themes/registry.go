// pkg/themes tema kayıt defteri: templateId -> layout/CSS tanımı.
package themes

import (
	"strings"

	"vkart.link/configs/configslog"
)

// Şablon kimlikleri. classic her zaman kayıtlıdır ve fallback girdisidir.
const (
	TemplateClassic = "classic"
	TemplateModern  = "modern"
	TemplateMinimal = "minimal"
)

// Accent rengi CSS şablonundaki sabit enjeksiyon noktalarına yazılır.
const accentPlaceholder = "__ACCENT__"

// DefaultAccent tema ayarında renk yoksa kullanılır.
const DefaultAccent = "#1f6f5c"

// Descriptor bir şablonun başlık biçimini ve CSS üretim şablonunu tanımlar.
type Descriptor struct {
	TemplateID  string
	HeaderShape string // wave, sharp, round
	CSSTemplate string
}

var registry = map[string]Descriptor{
	TemplateClassic: {
		TemplateID:  TemplateClassic,
		HeaderShape: "wave",
		CSSTemplate: classicCSS,
	},
	TemplateModern: {
		TemplateID:  TemplateModern,
		HeaderShape: "sharp",
		CSSTemplate: modernCSS,
	},
	TemplateMinimal: {
		TemplateID:  TemplateMinimal,
		HeaderShape: "round",
		CSSTemplate: minimalCSS,
	},
}

// Get templateId için tanımı döndürür. Tanınmayan bir kimlik hata değil,
// loglanan bir karar ile classic'e düşer: templateId yapısal bir anahtar
// değil sunum üst verisidir.
func Get(templateID string) Descriptor {
	if d, ok := registry[templateID]; ok {
		return d
	}
	if configslog.SLog != nil {
		configslog.SLog.Warnf("Bilinmeyen templateId '%s', classic şablona düşülüyor", templateID)
	}
	return registry[TemplateClassic]
}

// Known verilen kimliğin kayıtlı olup olmadığını söyler.
func Known(templateID string) bool {
	_, ok := registry[templateID]
	return ok
}

// BuildCSS accent rengini şablonun enjeksiyon noktalarına yerleştirir.
// Renk biçimi doğrulanmaz; bozuk değer yalnızca görseli bozar.
func BuildCSS(d Descriptor, accent string) string {
	if accent == "" {
		accent = DefaultAccent
	}
	return strings.ReplaceAll(d.CSSTemplate, accentPlaceholder, accent)
}
