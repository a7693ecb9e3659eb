package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"rehber.link/configs"
	"rehber.link/models"
	"rehber.link/pkg/markup"
	"rehber.link/repositories/repositoriestest"
	"rehber.link/services"
	"rehber.link/views"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, perPage int) (*fiber.App, *repositoriestest.ContactRepository) {
	t.Helper()
	repo := repositoriestest.NewContactRepository()
	svc := services.NewContactService(repo, configs.ContactConfig{Markup: markup.ModeMarkdown, PaginateBy: perPage})

	ctx := context.Background()
	inputs := []models.ContactInput{
		{ContactType: models.ContactTypePerson, Name: "Alice Smith", Description: "**Önemli** kişi", City: "İzmir"},
		{ContactType: models.ContactTypePerson, Name: "Bob B Jones"},
		{ContactType: models.ContactTypeCommercial, Name: "Acme"},
		{ContactType: models.ContactTypeEducational, Name: "Ege Üniversitesi"},
	}
	for _, in := range inputs {
		_, err := svc.CreateContact(ctx, in)
		require.NoError(t, err)
	}

	app := fiber.New(fiber.Config{Views: views.NewEngine()})
	h := NewContactHandler(svc)
	app.Get("/contacts", h.List)
	app.Get("/contacts/people", h.People)
	app.Get("/contacts/organizations", h.Organizations)
	app.Get("/contacts/types/:type", h.ByType)
	app.Get("/contacts/:slug", h.Detail)
	return app, repo
}

func get(t *testing.T, app *fiber.App, target string, accept string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, target, nil)
	if accept != "" {
		req.Header.Set(fiber.HeaderAccept, accept)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

type listResponse struct {
	Data []models.Contact `json:"data"`
	Meta struct {
		CurrentPage int   `json:"current_page"`
		TotalItems  int64 `json:"total_items"`
		TotalPages  int   `json:"total_pages"`
	} `json:"meta"`
}

func getList(t *testing.T, app *fiber.App, target string) listResponse {
	t.Helper()
	status, body := get(t, app, target, fiber.MIMEApplicationJSON)
	require.Equal(t, fiber.StatusOK, status, body)
	var res listResponse
	require.NoError(t, json.Unmarshal([]byte(body), &res))
	return res
}

func namesOf(res listResponse) []string {
	out := make([]string, len(res.Data))
	for i, c := range res.Data {
		out[i] = c.Name
	}
	return out
}

func TestDetailPage(t *testing.T) {
	app, _ := newTestApp(t, 20)

	status, body := get(t, app, "/contacts/alice-smith", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "<h1>Alice Smith</h1>")
	assert.Contains(t, body, "<strong>Önemli</strong>")
	assert.Contains(t, body, "İzmir")

	status, body = get(t, app, "/contacts/alice-smith", fiber.MIMEApplicationJSON)
	assert.Equal(t, fiber.StatusOK, status)
	var c models.Contact
	require.NoError(t, json.Unmarshal([]byte(body), &c))
	assert.Equal(t, "Alice", c.FirstName)
	assert.Equal(t, "Smith", c.LastName)
	assert.Equal(t, models.ContactTypePerson, c.ContactType)
}

func TestDetailPageStripsTagsInPlainMode(t *testing.T) {
	repo := repositoriestest.NewContactRepository()
	svc := services.NewContactService(repo, configs.ContactConfig{Markup: markup.ModePlain, PaginateBy: 20})
	_, err := svc.CreateContact(context.Background(), models.ContactInput{
		ContactType: models.ContactTypeCommercial,
		Name:        "Acme",
		Description: `Merhaba <textarea><img src=x onerror=alert(1)></textarea> <<script>script>alert(1)<</script>/script>`,
	})
	require.NoError(t, err)

	app := fiber.New(fiber.Config{Views: views.NewEngine()})
	app.Get("/contacts/:slug", NewContactHandler(svc).Detail)

	status, body := get(t, app, "/contacts/acme", "")
	require.Equal(t, fiber.StatusOK, status)

	start := strings.Index(body, `<div class="description">`)
	require.NotEqual(t, -1, start, body)
	description := body[start+len(`<div class="description">`):]
	description = description[:strings.Index(description, "</div>")]

	assert.Contains(t, description, "Merhaba")
	assert.NotContains(t, description, "<script")
	assert.NotContains(t, description, "<img")
	assert.NotContains(t, description, "<textarea")
}

func TestDetailNotFound(t *testing.T) {
	app, _ := newTestApp(t, 20)

	status, body := get(t, app, "/contacts/nobody", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Contains(t, body, "Kayıt bulunamadı.")

	status, body = get(t, app, "/contacts/nobody", fiber.MIMEApplicationJSON)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.JSONEq(t, `{"error":"Kayıt bulunamadı."}`, body)
}

func TestListPages(t *testing.T) {
	app, _ := newTestApp(t, 20)

	all := getList(t, app, "/contacts")
	assert.Equal(t, []string{"Alice Smith", "Bob B Jones", "Acme", "Ege Üniversitesi"}, namesOf(all))

	people := getList(t, app, "/contacts/people")
	assert.Equal(t, []string{"Alice Smith", "Bob B Jones"}, namesOf(people))

	orgs := getList(t, app, "/contacts/organizations")
	assert.Equal(t, []string{"Acme", "Ege Üniversitesi"}, namesOf(orgs))

	status, body := get(t, app, "/contacts/organizations", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, `<a href="/contacts/acme">Acme</a>`)
	assert.NotContains(t, body, "Alice Smith")
}

func TestListByType(t *testing.T) {
	app, _ := newTestApp(t, 20)

	res := getList(t, app, "/contacts/types/educational")
	assert.Equal(t, []string{"Ege Üniversitesi"}, namesOf(res))

	res = getList(t, app, "/contacts/types/2")
	assert.Equal(t, []string{"Acme"}, namesOf(res))

	res = getList(t, app, "/contacts/types/governmental")
	assert.Empty(t, res.Data)

	status, _ := get(t, app, "/contacts/types/aliens", "")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestListPagination(t *testing.T) {
	app, _ := newTestApp(t, 2)

	res := getList(t, app, "/contacts?page=2")
	assert.Equal(t, []string{"Acme", "Ege Üniversitesi"}, namesOf(res))
	assert.Equal(t, 2, res.Meta.TotalPages)

	status, _ := get(t, app, "/contacts?page=3", "")
	assert.Equal(t, fiber.StatusNotFound, status)

	res = getList(t, app, "/contacts?page=abc")
	assert.Equal(t, 1, res.Meta.CurrentPage)

	status, body := get(t, app, "/contacts", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, `href="/contacts?page=2"`)

	res = getList(t, app, "/contacts?name=ACME")
	assert.Equal(t, []string{"Acme"}, namesOf(res))
}

func TestListServerError(t *testing.T) {
	app, repo := newTestApp(t, 20)
	repo.Err = errors.New("bağlantı koptu")

	status, body := get(t, app, "/contacts", "")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Contains(t, body, "Kayıtlar listelenirken bir sorun oluştu.")

	status, _ = get(t, app, "/contacts/alice-smith", fiber.MIMEApplicationJSON)
	assert.Equal(t, fiber.StatusInternalServerError, status)
}
