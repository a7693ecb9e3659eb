package repositories

import (
	"context"
	"testing"

	"rehber.link/models"
	"rehber.link/pkg/queryparams"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// dryRunDB sorgu çalıştırmadan SQL üretmek için veritabanına bağlanmayan bir örnek döndürür.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=rehber dbname=rehber sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)
	return db
}

func contactSQL(db *gorm.DB, scopes ...Scope) string {
	return db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return tx.Model(&models.Contact{}).Scopes(scopes...).Find(&[]models.Contact{})
	})
}

func TestPeopleAndOrganizationsScopes(t *testing.T) {
	db := dryRunDB(t)

	people := contactSQL(db, People)
	assert.Contains(t, people, `FROM "contacts"`)
	assert.Contains(t, people, "contact_type = 1")
	assert.Contains(t, people, `"contacts"."deleted_at" IS NULL`)

	orgs := contactSQL(db, Organizations)
	assert.Contains(t, orgs, "contact_type <> 1")
}

func TestOfTypeScope(t *testing.T) {
	sql := contactSQL(dryRunDB(t), OfType(models.ContactTypeEducational))
	assert.Contains(t, sql, "contact_type = 3")
}

func TestDefaultOrderScope(t *testing.T) {
	sql := contactSQL(dryRunDB(t), DefaultOrder)
	assert.Contains(t, sql, "ORDER BY contact_type ASC,name ASC,id ASC")
}

func TestNameSearchEscapesWildcards(t *testing.T) {
	sql := contactSQL(dryRunDB(t), NameSearch("50%_off"))
	assert.Contains(t, sql, `name ILIKE '%50\%\_off%'`)
}

func TestOrderScopeHonoursWhitelist(t *testing.T) {
	db := dryRunDB(t)
	base := NewBaseRepository[models.Contact](db)
	base.SetAllowedSortColumns([]string{"name", "created_at", "contact_type"})
	base.SetDefaultOrder(DefaultOrder)

	params := queryparams.ListParams{SortBy: "created_at", OrderBy: "desc"}
	assert.Contains(t, contactSQL(db, base.orderScope(params)), "ORDER BY created_at DESC,id ASC")

	params = queryparams.ListParams{SortBy: "password; DROP TABLE contacts", OrderBy: "desc"}
	sql := contactSQL(db, base.orderScope(params))
	assert.Contains(t, sql, "ORDER BY contact_type ASC,name ASC")
	assert.NotContains(t, sql, "DROP")

	params = queryparams.ListParams{SortBy: "name", OrderBy: "sideways"}
	assert.Contains(t, contactSQL(db, base.orderScope(params)), "ORDER BY name ASC")
}

func TestSlugLookupScopes(t *testing.T) {
	db := dryRunDB(t)
	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var count int64
		return tx.Model(&models.Contact{}).Unscoped().Scopes(WithSlug("alice"), excludeID(7)).Count(&count)
	})
	assert.Contains(t, sql, "slug = 'alice'")
	assert.Contains(t, sql, "id <> 7")
	assert.NotContains(t, sql, "deleted_at")

	sql = contactSQL(db, excludeID(0))
	assert.NotContains(t, sql, "id <>")
}

func TestFindBySlugRejectsEmpty(t *testing.T) {
	repo := NewContactRepository(dryRunDB(t))
	_, err := repo.FindBySlug(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.FindByID(context.Background(), 0)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateRequiresID(t *testing.T) {
	repo := NewContactRepository(dryRunDB(t))
	assert.Error(t, repo.Update(context.Background(), &models.Contact{}))
}

func TestContactFilterScopesMatchSQL(t *testing.T) {
	db := dryRunDB(t)
	assert.NotContains(t, contactSQL(db, AllContacts().Scopes()...), "contact_type")
	assert.Contains(t, contactSQL(db, PeopleOnly().Scopes()...), "contact_type = 1")
	assert.Contains(t, contactSQL(db, OrganizationsOnly().Scopes()...), "contact_type <> 1")
	assert.Contains(t, contactSQL(db, TypeOnly(models.ContactTypeGovernmental).Scopes()...), "contact_type = 5")
}

func TestPeopleAndOrganizationsPartition(t *testing.T) {
	for _, ct := range append(models.ContactTypes(), 0, 42) {
		c := &models.ContactBase{ContactType: ct}
		inPeople := PeopleOnly().Match(c)
		inOrgs := OrganizationsOnly().Match(c)
		assert.True(t, inPeople != inOrgs, "tür %d tam olarak bir listede olmalı", ct)
		assert.True(t, AllContacts().Match(c))
		assert.Equal(t, ct == models.ContactTypeNonprofit, TypeOnly(models.ContactTypeNonprofit).Match(c))
	}
}

func TestMatchName(t *testing.T) {
	c := &models.ContactBase{Name: "Acme Holding"}
	assert.True(t, MatchName(c, ""))
	assert.True(t, MatchName(c, "hold"))
	assert.False(t, MatchName(c, "xyz"))
}
