package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Konou0luc/ucao-academy-sub000/core/catalog"
	"github.com/Konou0luc/ucao-academy-sub000/core/user"
)

func Test_courseApi_catalog(t *testing.T) {
	db.Reset()

	student := createUser(t, "Student", "student", "student@test.cd", []string{user.RoleStudent}, true)
	admin := createUser(t, "Admin", "admin", "admin@test.cd", []string{user.RoleAdmin}, true)
	studentToken := getToken(t, student)

	algebre := createCourse(t, "Algèbre", "Mathématiques", "licence1")
	analyse := createCourse(t, "Analyse", "Mathématiques", "licence2")
	reseaux := createCourse(t, "Réseaux", "Informatique", "licence1")
	divers := createCourse(t, "Divers", "", "")

	guards := []httpTest{
		{name: "Auth required", path: "/v1/courses/catalog", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{
			name: "Create requires admin", method: http.MethodPost, path: "/v1/courses", token: studentToken,
			body: marchallObj(t, catalog.NewCourse{Title: "Droit"}), wantCode: http.StatusForbidden,
			wantData: marchallObj(t, httpErr{Error: "permission denied"}),
		},
	}
	for _, tt := range guards {
		t.Run(tt.name, func(t *testing.T) {
			method := tt.method
			if method == "" {
				method = http.MethodGet
			}
			req, rec := newAuthRequest(method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	t.Run("Full tree", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/courses/catalog", studentToken)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var tree []catalog.Node
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tree))
		require.Len(t, tree, 3)

		// filieres in first-encounter order, record-less courses under the sentinel
		assert.Equal(t, "Mathématiques", tree[0].Name)
		assert.Equal(t, "Informatique", tree[1].Name)
		assert.Equal(t, catalog.DefaultFiliere, tree[2].Name)
		for _, node := range tree {
			assert.Equal(t, catalog.KindFolder, node.Kind)
		}

		maths := tree[0]
		require.Len(t, maths.Children, 2)
		assert.Equal(t, "Licence 1", maths.Children[0].Name)
		assert.Equal(t, "Licence 2", maths.Children[1].Name)
		require.Len(t, maths.Children[0].Children, 1)
		leaf := maths.Children[0].Children[0]
		assert.Equal(t, catalog.KindFile, leaf.Kind)
		assert.Equal(t, algebre.ID, leaf.ID)
		assert.Equal(t, analyse.ID, maths.Children[1].Children[0].ID)
		assert.Equal(t, reseaux.ID, tree[1].Children[0].Children[0].ID)

		autre := tree[2]
		require.Len(t, autre.Children, 1)
		assert.Equal(t, catalog.DefaultNiveau, autre.Children[0].Name)
		assert.Equal(t, divers.ID, autre.Children[0].Children[0].ID)
	})

	t.Run("Tree pruned by niveau", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/courses/catalog?niveau=licence1", studentToken)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var tree []catalog.Node
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tree))
		require.Len(t, tree, 2)
		assert.Equal(t, "Mathématiques", tree[0].Name)
		assert.Equal(t, "Informatique", tree[1].Name)
		for _, filiere := range tree {
			require.Len(t, filiere.Children, 1)
			assert.Equal(t, "Licence 1", filiere.Children[0].Name)
		}
	})

	t.Run("Admin creates course", func(t *testing.T) {
		body := marchallObj(t, catalog.NewCourse{Title: "Droit Civil", Filiere: "Droit", Niveau: "licence1"})
		req, rec := newAuthRequest(http.MethodPost, "/v1/courses", getToken(t, admin), body)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code)

		var course catalog.Course
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &course))
		assert.NotEmpty(t, course.ID)
		assert.Equal(t, "Droit Civil", course.Title)
		assert.False(t, course.CreatedAt.IsZero())
	})
}

func Test_courseApi_catalogCacheInvalidation(t *testing.T) {
	db.Reset()

	student := createUser(t, "Student", "student", "student@test.cd", []string{user.RoleStudent}, true)
	admin := createUser(t, "Admin", "admin", "admin@test.cd", []string{user.RoleAdmin}, true)
	studentToken := getToken(t, student)
	adminToken := getToken(t, admin)

	createCourse(t, "Algèbre", "Mathématiques", "licence1")

	fetchTree := func(t *testing.T) []catalog.Node {
		t.Helper()
		req, rec := newAuthRequest(http.MethodGet, "/v1/courses/catalog", studentToken)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var tree []catalog.Node
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tree))
		return tree
	}

	// prime the cached tree
	require.Len(t, fetchTree(t), 1)

	var reseaux catalog.Course
	t.Run("Create refreshes the tree", func(t *testing.T) {
		body := marchallObj(t, catalog.NewCourse{Title: "Réseaux", Filiere: "Informatique", Niveau: "licence1"})
		req, rec := newAuthRequest(http.MethodPost, "/v1/courses", adminToken, body)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code)
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reseaux))

		tree := fetchTree(t)
		require.Len(t, tree, 2)
		assert.Equal(t, "Informatique", tree[1].Name)
	})

	t.Run("Update refreshes the tree", func(t *testing.T) {
		body := marchallObj(t, catalog.UpdateCourse{Title: "Réseaux avancés"})
		req, rec := newAuthRequest(http.MethodPut, "/v1/courses/"+reseaux.ID, adminToken, body)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		tree := fetchTree(t)
		require.Len(t, tree, 2)
		assert.Equal(t, "Réseaux avancés", tree[1].Children[0].Children[0].Name)
	})

	t.Run("Delete refreshes the tree", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodDelete, "/v1/courses/"+reseaux.ID, adminToken)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusNoContent, rec.Code)

		tree := fetchTree(t)
		require.Len(t, tree, 1)
		assert.Equal(t, "Mathématiques", tree[0].Name)
	})
}

func Test_courseApi_query(t *testing.T) {
	db.Reset()

	student := createUser(t, "Student", "student", "student@test.cd", []string{user.RoleStudent}, true)
	token := getToken(t, student)

	createCourse(t, "Algèbre", "Mathématiques", "licence1")
	reseaux := createCourse(t, "Réseaux", "Informatique", "licence1")

	t.Run("Get all", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/courses", token)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var courses []catalog.Course
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &courses))
		assert.Len(t, courses, 2)
	})

	t.Run("Filter by filiere", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/courses?filiere=Informatique", token)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var courses []catalog.Course
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &courses))
		require.Len(t, courses, 1)
		assert.Equal(t, reseaux.ID, courses[0].ID)
	})

	t.Run("Search (unknown)", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/courses?search=lol", token)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})
}
