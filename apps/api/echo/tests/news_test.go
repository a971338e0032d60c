package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Konou0luc/ucao-academy-sub000/core/news"
	"github.com/Konou0luc/ucao-academy-sub000/core/user"
)

func Test_newsApi(t *testing.T) {
	db.Reset()

	student := createUser(t, "Student", "student", "student@test.cd", []string{user.RoleStudent}, true)
	admin := createUser(t, "Admin", "admin", "admin@test.cd", []string{user.RoleAdmin}, true)
	studentToken := getToken(t, student)
	adminToken := getToken(t, admin)

	newArticle := news.NewArticle{
		Title: "Rentrée académique",
		Body:  "Programme:\n- Accueil\n1. Discours\n<script>alert(1)</script>",
	}

	t.Run("Auth required", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/news")
		app.ServeHTTP(rec, req)
		tt := httpTest{wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)}
		checkCodeAndData(t, tt, rec)
	})

	t.Run("Create requires admin", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/news", studentToken, marchallObj(t, newArticle))
		app.ServeHTTP(rec, req)
		tt := httpTest{wantCode: http.StatusForbidden, wantData: marchallObj(t, httpErr{Error: "permission denied"})}
		checkCodeAndData(t, tt, rec)
	})

	var created news.Article
	t.Run("Create", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/news", adminToken, marchallObj(t, newArticle))
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code)
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, admin.ID, created.AuthorID)
	})

	t.Run("Retrieve renders body", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/news/"+created.ID, studentToken)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var article news.Article
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &article))
		// bulleted and numbered lines merge into one list; raw markup is escaped
		assert.Contains(t, article.RenderedBody, "<ul>")
		assert.Contains(t, article.RenderedBody, "<li>Accueil</li>")
		assert.Contains(t, article.RenderedBody, "<li>Discours</li>")
		assert.NotContains(t, article.RenderedBody, "<script>")
		assert.Contains(t, article.RenderedBody, "&lt;script&gt;")
	})

	t.Run("Query newest first", func(t *testing.T) {
		second, err := newsSvc.Create(context.Background(), news.NewArticle{Title: "Examens", Body: "Bientôt."}, admin.ID)
		require.NoError(t, err)

		req, rec := newAuthRequest(http.MethodGet, "/v1/news", studentToken)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var articles []news.Article
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &articles))
		require.Len(t, articles, 2)
		assert.Equal(t, second.ID, articles[0].ID)
		assert.Equal(t, created.ID, articles[1].ID)
	})

	t.Run("Destroy", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodDelete, "/v1/news/"+created.ID, adminToken)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusNoContent, rec.Code)
	})
}
