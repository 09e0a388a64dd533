package services

import (
	"context"
	"testing"

	"vkart.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllFontsReturnsSeeded(t *testing.T) {
	service := NewFontServiceWithDB(newTestDB(t))

	fonts, err := service.GetAllFonts(context.Background())
	require.NoError(t, err)
	require.Len(t, fonts, 3)

	names := map[string]bool{}
	for _, f := range fonts {
		names[f.Name] = true
	}
	assert.True(t, names[models.FontNameInter])
	assert.True(t, names[models.FontNameRoboto])
	assert.True(t, names[models.FontNamePlayfair])
}

func TestGetFontByID(t *testing.T) {
	db := newTestDB(t)
	service := NewFontServiceWithDB(db)
	ctx := context.Background()

	var seeded models.Font
	require.NoError(t, db.Where("name = ?", models.FontNameInter).First(&seeded).Error)

	font, err := service.GetFontByID(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, models.FontNameInter, font.Name)
	assert.NotEmpty(t, font.Family)

	_, err = service.GetFontByID(ctx, 99999)
	assert.ErrorIs(t, err, ErrFontNotFound)
}
