// pkg/cardpage yayınlanmış bir kartvizitten kendi kendine yeten statik
// HTML sayfası üretir. Saf fonksiyondur: I/O yapmaz, durum tutmaz; aynı
// aggregate + tema için çıktı bayt bayt aynıdır.
package cardpage

import (
	"fmt"
	"html"
	"strings"

	"vkart.link/models"
	"vkart.link/pkg/themes"
)

// Render kartvizit ve tema tanımından tam HTML belgesini üretir.
// Kullanıcı eliyle girilen her alan basılmadan önce escape edilir.
func Render(card *models.VCard, theme themes.Descriptor) string {
	cfg := card.ThemeSettings()
	css := themes.BuildCSS(theme, cfg.Color)

	var b strings.Builder
	b.Grow(4096)

	b.WriteString("<!DOCTYPE html>\n<html lang=\"tr\">\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", esc(card.Title))
	if card.Font != nil && card.Font.URL != "" {
		fmt.Fprintf(&b, "<link rel=\"stylesheet\" href=\"%s\">\n", escAttr(card.Font.URL))
	}
	b.WriteString("<style>")
	b.WriteString(css)
	b.WriteString("</style>\n</head>\n")

	if card.Font != nil {
		fmt.Fprintf(&b, "<body style=\"--card-font:%s\">\n", escAttr(card.Font.Family))
	} else {
		b.WriteString("<body>\n")
	}

	fmt.Fprintf(&b, "<div class=\"card shape-%s\">\n", escAttr(theme.HeaderShape))

	writeHeader(&b, card)
	writeContactActions(&b, card)
	writeBio(&b, card)
	writeBusinessHours(&b, card.BusinessHours)
	writeServices(&b, card.Services)
	writeSocialLinks(&b, card.SocialLinks)
	writeTestimonials(&b, card.Testimonials)
	writeSummary(&b, card)

	b.WriteString("</div>\n</body>\n</html>\n")
	return b.String()
}

func writeHeader(b *strings.Builder, card *models.VCard) {
	if card.Banner != "" {
		fmt.Fprintf(b, "<div class=\"card-banner\"><img src=\"%s\" alt=\"\"></div>\n", escAttr(card.Banner))
	}
	b.WriteString("<header class=\"card-header\">\n")
	fmt.Fprintf(b, "<h1>%s</h1>\n", esc(card.Name))
	if card.JobTitle != "" {
		fmt.Fprintf(b, "<p class=\"job-title\">%s</p>\n", esc(card.JobTitle))
	}
	if card.Company != "" {
		fmt.Fprintf(b, "<p class=\"company\">%s</p>\n", esc(card.Company))
	}
	b.WriteString("</header>\n")
	if card.Avatar != "" {
		fmt.Fprintf(b, "<img class=\"card-avatar\" src=\"%s\" alt=\"%s\">\n", escAttr(card.Avatar), escAttr(card.Name))
	}
}

// writeContactActions Call butonunu yalnızca telefon, Email butonunu
// yalnızca e-posta doluysa basar.
func writeContactActions(b *strings.Builder, card *models.VCard) {
	if card.Phone == "" && card.Email == "" {
		return
	}
	b.WriteString("<div class=\"card-section card-actions\">\n")
	if card.Phone != "" {
		fmt.Fprintf(b, "<a class=\"btn-primary\" href=\"tel:%s\">Ara</a>\n", escAttr(card.Phone))
	}
	if card.Email != "" {
		fmt.Fprintf(b, "<a class=\"btn-primary\" href=\"mailto:%s\">E-posta</a>\n", escAttr(card.Email))
	}
	b.WriteString("</div>\n")
}

func writeBio(b *strings.Builder, card *models.VCard) {
	if card.Bio == "" {
		return
	}
	b.WriteString("<div class=\"card-section card-bio\">\n")
	fmt.Fprintf(b, "<p>%s</p>\n", esc(card.Bio))
	b.WriteString("</div>\n")
}

// writeBusinessHours gün satırlarını basar. Açılış veya kapanış saati
// olmayan (ya da kapalı işaretli) satır "Closed" olarak gösterilir.
func writeBusinessHours(b *strings.Builder, hours []models.BusinessHour) {
	if len(hours) == 0 {
		return
	}
	b.WriteString("<div class=\"card-section card-hours\">\n<h2>Çalışma Saatleri</h2>\n<table class=\"hours-table\">\n")
	for _, h := range hours {
		value := "Closed"
		if !h.IsClosed && h.OpenTime != "" && h.CloseTime != "" {
			value = esc(h.OpenTime) + " - " + esc(h.CloseTime)
		}
		fmt.Fprintf(b, "<tr><td>%s</td><td>%s</td></tr>\n", esc(h.Day), value)
	}
	b.WriteString("</table>\n</div>\n")
}

func writeServices(b *strings.Builder, services []models.ServiceItem) {
	if len(services) == 0 {
		return
	}
	b.WriteString("<div class=\"card-section card-services\">\n<h2>Hizmetler</h2>\n")
	for _, s := range services {
		b.WriteString("<div class=\"service\">\n")
		if s.Price != 0 || s.Currency != "" {
			fmt.Fprintf(b, "<span class=\"price\">%.2f %s</span>\n", s.Price, esc(s.Currency))
		}
		fmt.Fprintf(b, "<h3>%s</h3>\n", esc(s.Title))
		if s.Description != "" {
			fmt.Fprintf(b, "<p>%s</p>\n", esc(s.Description))
		}
		b.WriteString("</div>\n")
	}
	b.WriteString("</div>\n")
}

func writeSocialLinks(b *strings.Builder, links []models.SocialLink) {
	if len(links) == 0 {
		return
	}
	b.WriteString("<div class=\"card-section socials\">\n")
	for _, l := range links {
		if !hrefAllowed(l.URL) {
			fmt.Fprintf(b, "<span>%s</span>\n", esc(l.Platform))
			continue
		}
		fmt.Fprintf(b, "<a href=\"%s\" rel=\"noopener\">%s</a>\n", escAttr(l.URL), esc(l.Platform))
	}
	b.WriteString("</div>\n")
}

// writeTestimonials her yorum için tam 5 yıldız glifi basar:
// index < rating dolu, diğerleri boş. Rating burada sıkıştırılmaz.
func writeTestimonials(b *strings.Builder, items []models.Testimonial) {
	if len(items) == 0 {
		return
	}
	b.WriteString("<div class=\"card-section card-testimonials\">\n<h2>Yorumlar</h2>\n")
	for _, t := range items {
		b.WriteString("<div class=\"testimonial\">\n")
		if t.Avatar != "" {
			fmt.Fprintf(b, "<img src=\"%s\" alt=\"%s\">\n", escAttr(t.Avatar), escAttr(t.Name))
		}
		fmt.Fprintf(b, "<strong>%s</strong>\n", esc(t.Name))
		fmt.Fprintf(b, "<span class=\"stars\">%s</span>\n", stars(t.Rating))
		if t.Text != "" {
			fmt.Fprintf(b, "<p>%s</p>\n", esc(t.Text))
		}
		b.WriteString("</div>\n")
	}
	b.WriteString("</div>\n")
}

func writeSummary(b *strings.Builder, card *models.VCard) {
	if card.Address == "" && card.Website == "" {
		return
	}
	b.WriteString("<div class=\"card-section card-summary\">\n")
	if card.Address != "" {
		fmt.Fprintf(b, "<p class=\"address\">%s</p>\n", esc(card.Address))
	}
	if card.Website != "" {
		if hrefAllowed(card.Website) {
			fmt.Fprintf(b, "<p class=\"website\"><a href=\"%s\" rel=\"noopener\">%s</a></p>\n", escAttr(card.Website), esc(card.Website))
		} else {
			fmt.Fprintf(b, "<p class=\"website\">%s</p>\n", esc(card.Website))
		}
	}
	b.WriteString("</div>\n")
}

func stars(rating int) string {
	var s strings.Builder
	for i := 0; i < 5; i++ {
		if i < rating {
			s.WriteRune('★')
		} else {
			s.WriteRune('☆')
		}
	}
	return s.String()
}

// hrefAllowed kullanıcı verisinden gelen URL'lerde yalnızca http ve https
// şemalarına izin verir. İzin verilmeyen şemalar (javascript: gibi) linke
// dönüşmez, değer düz metin olarak basılır.
func hrefAllowed(raw string) bool {
	lower := strings.ToLower(strings.TrimSpace(raw))
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func esc(s string) string { return html.EscapeString(s) }

// escAttr attribute bağlamı için escape. html.EscapeString tırnakları da
// kodladığından attribute içinde de güvenlidir.
func escAttr(s string) string { return html.EscapeString(s) }
