package services

import (
	"context"
	"strings"
	"testing"

	"vkart.link/models"
	"vkart.link/pkg/queryparams"
	"vkart.link/repositories"
	"vkart.link/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func uintPtr(u uint) *uint    { return &u }

func sampleCreateInput(slug string) CreateVCardInput {
	return CreateVCardInput{
		Slug:       slug,
		TemplateID: "classic",
		Title:      "Astra Danışmanlık",
		Name:       "Ayşe Yılmaz",
		JobTitle:   "Kurucu",
		Phone:      "+90 555 000 11 22",
		Email:      "ayse@astra.example",
		BusinessHours: []models.BusinessHour{
			{Day: models.DayMonday, OpenTime: "09:00", CloseTime: "17:00"},
			{Day: models.DaySaturday, IsClosed: true},
		},
		Services: []models.ServiceItem{
			{Title: "Strateji", Description: "Aylık plan", Price: 1500, Currency: "TRY", Order: 1},
			{Title: "Mentorluk", Price: 800, Currency: "TRY", Order: 2},
		},
		SocialLinks: []models.SocialLink{
			{Platform: "linkedin", URL: "https://linkedin.com/in/ayse", Order: 1},
		},
	}
}

func TestCreateVCardReturnsFullAggregate(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	card, err := service.CreateVCard(ctx, 1, sampleCreateInput("astra"))
	require.NoError(t, err)
	require.NotZero(t, card.ID)

	assert.Equal(t, "astra", card.Slug)
	assert.Equal(t, models.PublishStatusDraft, card.PublishStatus)

	require.Len(t, card.BusinessHours, 2)
	assert.Equal(t, models.DayMonday, card.BusinessHours[0].Day)
	assert.True(t, card.BusinessHours[1].IsClosed)

	require.Len(t, card.Services, 2)
	assert.Equal(t, "Strateji", card.Services[0].Title)
	assert.Equal(t, "Mentorluk", card.Services[1].Title)

	require.Len(t, card.SocialLinks, 1)

	// Verilmeyen koleksiyon nil değil boş dönmeli.
	require.NotNil(t, card.Testimonials)
	assert.Empty(t, card.Testimonials)
}

func TestCreateVCardNormalizesSlug(t *testing.T) {
	service, _ := newTestService(t)

	input := sampleCreateInput("  Astra-Card  ")
	card, err := service.CreateVCard(context.Background(), 1, input)
	require.NoError(t, err)
	assert.Equal(t, "astra-card", card.Slug)
}

func TestCreateVCardValidation(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*CreateVCardInput)
	}{
		{"eksik slug", func(in *CreateVCardInput) { in.Slug = "" }},
		{"eksik templateId", func(in *CreateVCardInput) { in.TemplateID = "" }},
		{"eksik title", func(in *CreateVCardInput) { in.Title = "" }},
		{"eksik name", func(in *CreateVCardInput) { in.Name = "" }},
		{"gecersiz slug karakteri", func(in *CreateVCardInput) { in.Slug = "kötü slug!" }},
		{"cok kisa slug", func(in *CreateVCardInput) { in.Slug = "ab" }},
		{"gecersiz gun", func(in *CreateVCardInput) {
			in.BusinessHours = []models.BusinessHour{{Day: "PAZARTESI"}}
		}},
		{"gecersiz yayin durumu", func(in *CreateVCardInput) { in.PublishStatus = "ARCHIVED" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := sampleCreateInput("gecerli-slug")
			tc.mutate(&input)
			_, err := service.CreateVCard(ctx, 1, input)
			assert.ErrorIs(t, err, ErrVCardInvalidInput)
		})
	}
}

func TestCreateVCardSlugConflictAcrossOrganizations(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	first, err := service.CreateVCard(ctx, 1, sampleCreateInput("astra"))
	require.NoError(t, err)

	// Slug benzersizliği globaldir, farklı organizasyon da çarpar.
	_, err = service.CreateVCard(ctx, 2, sampleCreateInput("astra"))
	assert.ErrorIs(t, err, ErrVCardSlugTaken)

	// İlk kayıt dokunulmamış kalmalı.
	got, err := service.GetVCardByID(ctx, first.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "astra", got.Slug)
	assert.Len(t, got.Services, 2)
}

func TestCreateVCardIgnoresSuppliedChildIDs(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	victim, err := service.CreateVCard(ctx, 1, sampleCreateInput("astra"))
	require.NoError(t, err)
	require.Len(t, victim.Services, 2)
	stolenID := victim.Services[0].ID
	require.NotZero(t, stolenID)

	// Başka bir organizasyon mevcut bir çocuk satırın ID'sini gövdede
	// gönderirse bu satır ona taşınmamalı, yeni satır açılmalıdır.
	attack := sampleCreateInput("orion")
	attack.Services = []models.ServiceItem{
		{BaseModel: models.BaseModel{ID: stolenID}, Title: "Çalıntı", VCardID: victim.ID},
	}
	attacker, err := service.CreateVCard(ctx, 2, attack)
	require.NoError(t, err)
	require.Len(t, attacker.Services, 1)
	assert.NotEqual(t, stolenID, attacker.Services[0].ID)
	assert.Equal(t, attacker.ID, attacker.Services[0].VCardID)

	// Kurbanın aggregate'i eksilmemiş olmalı.
	got, err := service.GetVCardByID(ctx, victim.ID, 1)
	require.NoError(t, err)
	assert.Len(t, got.Services, 2)
}

func TestGetVCardByIDTenantIsolation(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	card, err := service.CreateVCard(ctx, 1, sampleCreateInput("astra"))
	require.NoError(t, err)

	_, err = service.GetVCardByID(ctx, card.ID, 2)
	assert.ErrorIs(t, err, ErrVCardNotFound)

	_, err = service.GetVCardByID(ctx, 99999, 1)
	assert.ErrorIs(t, err, ErrVCardNotFound)
}

func TestUpdateVCardScalarPatch(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	card, err := service.CreateVCard(ctx, 1, sampleCreateInput("astra"))
	require.NoError(t, err)

	updated, err := service.UpdateVCard(ctx, card.ID, 1, UpdateVCardInput{
		Title: strPtr("Astra Stüdyo"),
		Bio:   strPtr("Yeni biyografi"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Astra Stüdyo", updated.Title)
	assert.Equal(t, "Yeni biyografi", updated.Bio)

	// Dokunulmayan alanlar ve koleksiyonlar aynı kalmalı.
	assert.Equal(t, "astra", updated.Slug)
	assert.Len(t, updated.BusinessHours, 2)
	assert.Len(t, updated.Services, 2)
}

func TestUpdateVCardRejectsEmptyRequiredScalars(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	card, err := service.CreateVCard(ctx, 1, sampleCreateInput("astra"))
	require.NoError(t, err)

	_, err = service.UpdateVCard(ctx, card.ID, 1, UpdateVCardInput{Title: strPtr("")})
	assert.ErrorIs(t, err, ErrVCardInvalidInput)

	_, err = service.UpdateVCard(ctx, card.ID, 1, UpdateVCardInput{Slug: strPtr("x!")})
	assert.ErrorIs(t, err, ErrVCardInvalidInput)

	// Başarısız patch hiçbir değişiklik bırakmamalı.
	got, err := service.GetVCardByID(ctx, card.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "Astra Danışmanlık", got.Title)
}

func TestUpdateVCardSlugConflict(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	_, err := service.CreateVCard(ctx, 1, sampleCreateInput("astra"))
	require.NoError(t, err)
	second, err := service.CreateVCard(ctx, 1, sampleCreateInput("orion"))
	require.NoError(t, err)

	_, err = service.UpdateVCard(ctx, second.ID, 1, UpdateVCardInput{Slug: strPtr("astra")})
	assert.ErrorIs(t, err, ErrVCardSlugTaken)

	// Transaction geri alındı, eski slug duruyor.
	got, err := service.GetVCardByID(ctx, second.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "orion", got.Slug)
}

func TestUpdateVCardCollectionReplaceSemantics(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	card, err := service.CreateVCard(ctx, 1, sampleCreateInput("astra"))
	require.NoError(t, err)

	// Dolu slice: koleksiyonun tamamı değişir.
	updated, err := service.UpdateVCard(ctx, card.ID, 1, UpdateVCardInput{
		Services: &[]models.ServiceItem{
			{Title: "Tek Hizmet", Price: 500, Currency: "TRY", Order: 1},
		},
	})
	require.NoError(t, err)
	require.Len(t, updated.Services, 1)
	assert.Equal(t, "Tek Hizmet", updated.Services[0].Title)

	// Diğer koleksiyonlara dokunulmadı.
	assert.Len(t, updated.BusinessHours, 2)
	assert.Len(t, updated.SocialLinks, 1)

	// Boş slice: tamamını sil.
	updated, err = service.UpdateVCard(ctx, card.ID, 1, UpdateVCardInput{
		Services: &[]models.ServiceItem{},
	})
	require.NoError(t, err)
	assert.Empty(t, updated.Services)

	// nil (verilmemiş) koleksiyon: dokunma.
	updated, err = service.UpdateVCard(ctx, card.ID, 1, UpdateVCardInput{Title: strPtr("Yeni")})
	require.NoError(t, err)
	assert.Empty(t, updated.Services)
	assert.Len(t, updated.BusinessHours, 2)
}

func TestUpdateVCardTenantIsolation(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	card, err := service.CreateVCard(ctx, 1, sampleCreateInput("astra"))
	require.NoError(t, err)

	_, err = service.UpdateVCard(ctx, card.ID, 2, UpdateVCardInput{Title: strPtr("Ele Geçirildi")})
	assert.ErrorIs(t, err, ErrVCardNotFound)
}

func TestUpdateVCardFontHandling(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	var font models.Font
	require.NoError(t, db.Where("name = ?", models.FontNameInter).First(&font).Error)

	card, err := service.CreateVCard(ctx, 1, sampleCreateInput("astra"))
	require.NoError(t, err)
	require.Nil(t, card.FontID)

	updated, err := service.UpdateVCard(ctx, card.ID, 1, UpdateVCardInput{FontID: uintPtr(font.ID)})
	require.NoError(t, err)
	require.NotNil(t, updated.FontID)
	assert.Equal(t, font.ID, *updated.FontID)
	require.NotNil(t, updated.Font)
	assert.Equal(t, models.FontNameInter, updated.Font.Name)

	// Bilinmeyen font reddedilir.
	_, err = service.UpdateVCard(ctx, card.ID, 1, UpdateVCardInput{FontID: uintPtr(99999)})
	assert.ErrorIs(t, err, ErrVCardFontNotFound)

	// 0 bağlantıyı kaldırır.
	updated, err = service.UpdateVCard(ctx, card.ID, 1, UpdateVCardInput{FontID: uintPtr(0)})
	require.NoError(t, err)
	assert.Nil(t, updated.FontID)
}

func TestDeleteVCardRemovesChildren(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	card, err := service.CreateVCard(ctx, 1, sampleCreateInput("astra"))
	require.NoError(t, err)

	removed, err := service.DeleteVCard(ctx, card.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, card.ID, removed.ID)
	assert.Len(t, removed.Services, 2)

	_, err = service.GetVCardByID(ctx, card.ID, 1)
	assert.ErrorIs(t, err, ErrVCardNotFound)

	var count int64
	require.NoError(t, db.Model(&models.ServiceItem{}).Where("v_card_id = ?", card.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&models.BusinessHour{}).Where("v_card_id = ?", card.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteVCardTenantIsolation(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	card, err := service.CreateVCard(ctx, 1, sampleCreateInput("astra"))
	require.NoError(t, err)

	_, err = service.DeleteVCard(ctx, card.ID, 2)
	assert.ErrorIs(t, err, ErrVCardNotFound)

	got, err := service.GetVCardByID(ctx, card.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, card.ID, got.ID)
}

func TestPublishResolveRoundtrip(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	card, err := service.CreateVCard(ctx, 1, sampleCreateInput("astra"))
	require.NoError(t, err)

	// DRAFT kart public çözümlemede bilinmeyen slug ile aynıdır.
	_, err = service.ResolvePublicVCard(ctx, "astra")
	assert.ErrorIs(t, err, ErrVCardNotFound)
	_, err = service.ResolvePublicVCard(ctx, "hic-yok")
	assert.ErrorIs(t, err, ErrVCardNotFound)

	published, err := service.PublishVCard(ctx, card.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, models.PublishStatusPublished, published.PublishStatus)

	resolved, err := service.ResolvePublicVCard(ctx, "astra")
	require.NoError(t, err)
	assert.Equal(t, card.ID, resolved.ID)
	assert.Len(t, resolved.BusinessHours, 2)

	// Tekrar publish idempotenttir.
	again, err := service.PublishVCard(ctx, card.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, models.PublishStatusPublished, again.PublishStatus)

	// Unpublish sonrası tekrar görünmez.
	_, err = service.UnpublishVCard(ctx, card.ID, 1)
	require.NoError(t, err)
	_, err = service.ResolvePublicVCard(ctx, "astra")
	assert.ErrorIs(t, err, ErrVCardNotFound)
}

func TestPublishTenantIsolation(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	card, err := service.CreateVCard(ctx, 1, sampleCreateInput("astra"))
	require.NoError(t, err)

	_, err = service.PublishVCard(ctx, card.ID, 2)
	assert.ErrorIs(t, err, ErrVCardNotFound)
}

func TestResolvePublicVCardNormalizesSlug(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	card, err := service.CreateVCard(ctx, 1, sampleCreateInput("astra"))
	require.NoError(t, err)
	_, err = service.PublishVCard(ctx, card.ID, 1)
	require.NoError(t, err)

	resolved, err := service.ResolvePublicVCard(ctx, "  ASTRA  ")
	require.NoError(t, err)
	assert.Equal(t, card.ID, resolved.ID)
}

func TestListVCardsForOrganization(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	first, err := service.CreateVCard(ctx, 1, sampleCreateInput("astra"))
	require.NoError(t, err)
	second := sampleCreateInput("orion")
	second.Title = "Orion Tasarım"
	second.Testimonials = []models.Testimonial{{Name: "Can", Rating: 5, Text: "Harika"}}
	_, err = service.CreateVCard(ctx, 1, second)
	require.NoError(t, err)

	// Başka organizasyonun kartı listeye sızmaz.
	_, err = service.CreateVCard(ctx, 2, sampleCreateInput("vega"))
	require.NoError(t, err)

	result, err := service.GetVCardsForOrganization(ctx, 1, queryparams.ListParams{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Meta.TotalItems)

	items, ok := result.Data.([]repositories.VCardListItem)
	require.True(t, ok)
	require.Len(t, items, 2)
	for _, item := range items {
		switch item.Slug {
		case "astra":
			assert.Equal(t, 2, item.BusinessHourCount)
			assert.Equal(t, 2, item.ServiceCount)
			assert.Equal(t, 1, item.SocialLinkCount)
			assert.Equal(t, 0, item.TestimonialCount)
		case "orion":
			assert.Equal(t, 1, item.TestimonialCount)
		default:
			t.Fatalf("beklenmeyen slug listede: %s", item.Slug)
		}
	}

	// İsim filtresi.
	result, err = service.GetVCardsForOrganization(ctx, 1, queryparams.ListParams{Name: "orion"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Meta.TotalItems)

	// Durum filtresi.
	_, err = service.PublishVCard(ctx, first.ID, 1)
	require.NoError(t, err)
	result, err = service.GetVCardsForOrganization(ctx, 1, queryparams.ListParams{Status: models.PublishStatusPublished})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Meta.TotalItems)
}

func TestListVCardsDetailedIncludesChildren(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	_, err := service.CreateVCard(ctx, 1, sampleCreateInput("astra"))
	require.NoError(t, err)

	result, err := service.GetVCardsForOrganizationDetailed(ctx, 1, queryparams.ListParams{})
	require.NoError(t, err)

	cards, ok := result.Data.([]models.VCard)
	require.True(t, ok)
	require.Len(t, cards, 1)
	assert.Len(t, cards[0].Services, 2)
	assert.NotNil(t, cards[0].Testimonials)
}

func TestIsSlugTakenInOrganization(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	_, err := service.CreateVCard(ctx, 1, sampleCreateInput("astra"))
	require.NoError(t, err)

	taken, err := service.IsSlugTakenInOrganization(ctx, "astra", 1)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = service.IsSlugTakenInOrganization(ctx, "bambaska", 1)
	require.NoError(t, err)
	assert.False(t, taken)

	// Kapsam organizasyondur: başka tenant'ın probu false döner,
	// slug'ın varlığı sızmaz.
	taken, err = service.IsSlugTakenInOrganization(ctx, "astra", 2)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestSuggestSlug(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	_, err := service.CreateVCard(ctx, 1, sampleCreateInput("astra"))
	require.NoError(t, err)

	suggestion, err := service.SuggestSlug(ctx, "astra")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(suggestion, "astra-"))
	assert.True(t, utils.IsValidSlug(suggestion))
	assert.NotEqual(t, "astra", suggestion)

	// Önerilen slug gerçekten müsait olmalı.
	taken, err := service.IsSlugTakenInOrganization(ctx, suggestion, 1)
	require.NoError(t, err)
	assert.False(t, taken)

	// Uzun tabanda öneri sınırı aşmaz.
	long := strings.Repeat("a", utils.SlugMaxLength)
	suggestion, err = service.SuggestSlug(ctx, long)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(suggestion), utils.SlugMaxLength)
	assert.True(t, utils.IsValidSlug(suggestion))

	_, err = service.SuggestSlug(ctx, "kötü slug!")
	assert.ErrorIs(t, err, ErrVCardInvalidInput)
}

func TestVCardCountForOrganization(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	_, err := service.CreateVCard(ctx, 1, sampleCreateInput("astra"))
	require.NoError(t, err)
	_, err = service.CreateVCard(ctx, 2, sampleCreateInput("orion"))
	require.NoError(t, err)

	count, err := service.GetVCardCountForOrganization(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestAccessPasswordLifecycle(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	card, err := service.CreateVCard(ctx, 1, sampleCreateInput("astra"))
	require.NoError(t, err)

	// Şifresiz kart her zaman erişilebilir.
	assert.True(t, service.VerifyAccessPassword(card, ""))
	assert.True(t, service.VerifyAccessPassword(card, "herhangi"))

	require.NoError(t, service.SetAccessPassword(ctx, card.ID, 1, "gizli123"))

	card, err = service.GetVCardByID(ctx, card.ID, 1)
	require.NoError(t, err)
	assert.True(t, card.HasAccessPassword())
	assert.True(t, service.VerifyAccessPassword(card, "gizli123"))
	assert.False(t, service.VerifyAccessPassword(card, "yanlis"))
	assert.False(t, service.VerifyAccessPassword(card, ""))

	// Boş şifre korumayı kaldırır.
	require.NoError(t, service.SetAccessPassword(ctx, card.ID, 1, ""))
	card, err = service.GetVCardByID(ctx, card.ID, 1)
	require.NoError(t, err)
	assert.False(t, card.HasAccessPassword())
	assert.True(t, service.VerifyAccessPassword(card, "herhangi"))
}

func TestCreateVCardWithThemeAndFont(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	var font models.Font
	require.NoError(t, db.Where("name = ?", models.FontNameRoboto).First(&font).Error)

	input := sampleCreateInput("astra")
	input.FontID = uintPtr(font.ID)
	input.ThemeConfig = &models.ThemeConfig{Color: "#ff8800", Font: "Roboto", Design: "modern"}

	card, err := service.CreateVCard(ctx, 1, input)
	require.NoError(t, err)
	require.NotNil(t, card.Font)
	assert.Equal(t, models.FontNameRoboto, card.Font.Name)

	theme := card.ThemeSettings()
	assert.Equal(t, "#ff8800", theme.Color)
	assert.Equal(t, "modern", theme.Design)

	// Bilinmeyen font create'te de reddedilir.
	bad := sampleCreateInput("orion")
	bad.FontID = uintPtr(99999)
	_, err = service.CreateVCard(ctx, 1, bad)
	assert.ErrorIs(t, err, ErrVCardFontNotFound)
}
