package repositories

import (
	"context"
	"testing"

	"vkart.link/models"
	"vkart.link/pkg/queryparams"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCard(t *testing.T, repo IVCardRepository, organizationID uint, slug string) *models.VCard {
	t.Helper()
	card := &models.VCard{
		OrganizationID: organizationID,
		Slug:           slug,
		TemplateID:     "classic",
		Title:          "Test Kartı",
		Name:           "Test Kişi",
		PublishStatus:  models.PublishStatusDraft,
		BusinessHours: []models.BusinessHour{
			{Day: models.DayMonday, OpenTime: "09:00", CloseTime: "17:00"},
		},
		Services: []models.ServiceItem{
			{Title: "Hizmet A", Order: 2},
			{Title: "Hizmet B", Order: 1},
		},
	}
	require.NoError(t, repo.CreateVCard(context.Background(), card))
	return card
}

func TestCreateVCardDuplicateSlug(t *testing.T) {
	repo := NewVCardRepositoryTx(newTestDB(t))
	ctx := context.Background()

	seedCard(t, repo, 1, "astra")

	dup := &models.VCard{
		OrganizationID: 2,
		Slug:           "astra",
		TemplateID:     "classic",
		Title:          "Kopya",
		Name:           "Kopya",
		PublishStatus:  models.PublishStatusDraft,
	}
	err := repo.CreateVCard(ctx, dup)
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestFindByIDForOrganizationPreloadsOrdered(t *testing.T) {
	repo := NewVCardRepositoryTx(newTestDB(t))
	ctx := context.Background()

	card := seedCard(t, repo, 1, "astra")

	got, err := repo.FindByIDForOrganization(ctx, card.ID, 1)
	require.NoError(t, err)
	require.Len(t, got.Services, 2)

	// display_order ASC: B (1) önce, A (2) sonra.
	assert.Equal(t, "Hizmet B", got.Services[0].Title)
	assert.Equal(t, "Hizmet A", got.Services[1].Title)

	_, err = repo.FindByIDForOrganization(ctx, card.ID, 2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReplaceCollection(t *testing.T) {
	db := newTestDB(t)
	repo := NewVCardRepositoryTx(db)
	ctx := context.Background()

	card := seedCard(t, repo, 1, "astra")

	rows := []models.ServiceItem{
		{Title: "Yeni Hizmet", Order: 1},
	}
	require.NoError(t, repo.ReplaceServices(ctx, card.ID, rows))

	got, err := repo.FindByIDForOrganization(ctx, card.ID, 1)
	require.NoError(t, err)
	require.Len(t, got.Services, 1)
	assert.Equal(t, "Yeni Hizmet", got.Services[0].Title)
	assert.Equal(t, card.ID, got.Services[0].VCardID)

	// Boş replace koleksiyonu tamamen temizler.
	require.NoError(t, repo.ReplaceServices(ctx, card.ID, nil))
	got, err = repo.FindByIDForOrganization(ctx, card.ID, 1)
	require.NoError(t, err)
	assert.Empty(t, got.Services)

	// Eski satırlar gerçekten silinmiş olmalı, sadece kopmuş değil.
	var count int64
	require.NoError(t, db.Model(&models.ServiceItem{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestFindAllForOrganizationProjection(t *testing.T) {
	repo := NewVCardRepositoryTx(newTestDB(t))
	ctx := context.Background()

	seedCard(t, repo, 1, "astra")
	seedCard(t, repo, 1, "orion")
	seedCard(t, repo, 2, "vega")

	items, total, err := repo.FindAllForOrganization(ctx, 1, queryparams.DefaultListParams("updated_at"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, items, 2)

	for _, item := range items {
		assert.Equal(t, 1, item.BusinessHourCount)
		assert.Equal(t, 2, item.ServiceCount)
		assert.Equal(t, 0, item.SocialLinkCount)
		assert.Equal(t, 0, item.TestimonialCount)
	}
}

func TestFindAllForOrganizationPagination(t *testing.T) {
	repo := NewVCardRepositoryTx(newTestDB(t))
	ctx := context.Background()

	seedCard(t, repo, 1, "astra")
	seedCard(t, repo, 1, "orion")
	seedCard(t, repo, 1, "vega")

	params := queryparams.DefaultListParams("updated_at")
	params.PerPage = 2

	items, total, err := repo.FindAllForOrganization(ctx, 1, params)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, items, 2)

	params.Page = 2
	items, _, err = repo.FindAllForOrganization(ctx, 1, params)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestSlugExists(t *testing.T) {
	repo := NewVCardRepositoryTx(newTestDB(t))
	ctx := context.Background()

	seedCard(t, repo, 1, "astra")

	exists, err := repo.SlugExists(ctx, "astra")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.SlugExists(ctx, "yok")
	require.NoError(t, err)
	assert.False(t, exists)

	// SlugExists globaldir, SlugExistsInOrganization tenant kapsamlıdır.
	exists, err = repo.SlugExistsInOrganization(ctx, "astra", 2)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFindPublishedBySlug(t *testing.T) {
	db := newTestDB(t)
	repo := NewVCardRepositoryTx(db)
	ctx := context.Background()

	card := seedCard(t, repo, 1, "astra")

	// DRAFT görünmez.
	_, err := repo.FindPublishedBySlug(ctx, "astra")
	assert.ErrorIs(t, err, ErrNotFound)

	card.PublishStatus = models.PublishStatusPublished
	require.NoError(t, repo.UpdateVCard(ctx, card))

	got, err := repo.FindPublishedBySlug(ctx, "astra")
	require.NoError(t, err)
	assert.Equal(t, card.ID, got.ID)
	assert.Len(t, got.Services, 2)
}

func TestDeleteVCardRemovesAllChildRows(t *testing.T) {
	db := newTestDB(t)
	repo := NewVCardRepositoryTx(db)
	ctx := context.Background()

	card := seedCard(t, repo, 1, "astra")
	require.NoError(t, repo.ReplaceSocialLinks(ctx, card.ID, []models.SocialLink{
		{Platform: "x", URL: "https://x.com/astra"},
	}))

	require.NoError(t, repo.DeleteVCard(ctx, card))

	_, err := repo.FindByIDForOrganization(ctx, card.ID, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	var count int64
	for _, model := range []interface{}{
		&models.BusinessHour{}, &models.ServiceItem{}, &models.SocialLink{}, &models.Testimonial{},
	} {
		require.NoError(t, db.Model(model).Where("v_card_id = ?", card.ID).Count(&count).Error)
		assert.Zero(t, count)
	}
}
