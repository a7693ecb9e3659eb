package seeders

import (
	"context"
	"testing"

	"rehber.link/configs"
	"rehber.link/models"
	"rehber.link/pkg/markup"
	"rehber.link/repositories"
	"rehber.link/repositories/repositoriestest"
	"rehber.link/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleContactsAreValid(t *testing.T) {
	repo := repositoriestest.NewContactRepository()
	svc := services.NewContactService(repo, configs.ContactConfig{Markup: markup.ModeMarkdown})
	ctx := context.Background()

	slugs := map[string]bool{}
	for _, in := range SampleContacts() {
		c, err := svc.CreateContact(ctx, in)
		require.NoError(t, err, in.Name)
		assert.False(t, slugs[c.Slug], c.Slug)
		slugs[c.Slug] = true
	}

	for _, ct := range models.ContactTypes() {
		n, err := repo.Count(ctx, repositories.TypeOnly(ct))
		require.NoError(t, err)
		assert.NotZero(t, n, ct.Key())
	}

	c, err := svc.GetContactBySlug(ctx, "ayse-nur-yilmaz")
	require.NoError(t, err)
	assert.Equal(t, "Nur", c.MiddleName)
	assert.Contains(t, c.DescriptionHTML, "<strong>örnek</strong>")
}
