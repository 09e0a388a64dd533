package cardpage

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"vkart.link/models"
)

const fieldSep = "\x1f"

// ContentHash aggregate içeriği + templateId üzerinden deterministik bir
// özet üretir. Public handler bunu ETag olarak kullanır; içerik değişmeden
// özet değişmez, bu yüzden çıktı statik varlık gibi cache'lenebilir.
func ContentHash(card *models.VCard) string {
	var b strings.Builder

	join(&b,
		card.TemplateID, card.Slug, card.Title, card.Name,
		card.JobTitle, card.Company, card.Bio, card.Avatar, card.Banner,
		card.Phone, card.Email, card.Website, card.Address,
		string(card.ThemeConfig),
	)
	if card.Font != nil {
		join(&b, card.Font.Name, card.Font.Family, card.Font.URL)
	}
	for _, h := range card.BusinessHours {
		join(&b, "bh", h.Day, h.OpenTime, h.CloseTime, fmt.Sprint(h.IsClosed))
	}
	for _, s := range card.Services {
		join(&b, "sv", s.Title, s.Description, fmt.Sprintf("%.2f", s.Price), s.Currency, fmt.Sprint(s.Order))
	}
	for _, l := range card.SocialLinks {
		join(&b, "sl", l.Platform, l.URL, fmt.Sprint(l.Order))
	}
	for _, t := range card.Testimonials {
		join(&b, "tm", t.Name, t.Avatar, fmt.Sprint(t.Rating), t.Text, fmt.Sprint(t.Order))
	}

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

func join(b *strings.Builder, parts ...string) {
	for _, p := range parts {
		b.WriteString(p)
		b.WriteString(fieldSep)
	}
}
