package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Konou0luc/ucao-academy-sub000/core/discussion"
	"github.com/Konou0luc/ucao-academy-sub000/core/user"
)

func Test_discussionApi(t *testing.T) {
	db.Reset()

	student := createUser(t, "Student", "student", "student@test.cd", []string{user.RoleStudent}, true)
	teacher := createUser(t, "Teacher", "teacher", "teacher@test.cd", []string{user.RoleTeacher}, true)
	admin := createUser(t, "Admin", "admin", "admin@test.cd", []string{user.RoleAdmin}, true)
	studentToken := getToken(t, student)

	t.Run("Auth required", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/discussions")
		app.ServeHTTP(rec, req)
		tt := httpTest{wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)}
		checkCodeAndData(t, tt, rec)
	})

	var thread discussion.Thread
	t.Run("Create thread", func(t *testing.T) {
		body := marchallObj(t, discussion.NewThread{Topic: "Examen de rattrapage", Filiere: "Mathématiques", Niveau: "licence1"})
		req, rec := newAuthRequest(http.MethodPost, "/v1/discussions", studentToken, body)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code)
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &thread))
		assert.NotEmpty(t, thread.ID)
		assert.Equal(t, student.ID, thread.AuthorID)
	})

	t.Run("Post messages", func(t *testing.T) {
		body := marchallObj(t, discussion.NewMessage{Body: "Quand aura-t-il lieu?"})
		req, rec := newAuthRequest(http.MethodPost, "/v1/discussions/"+thread.ID+"/messages", studentToken, body)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code)

		body = marchallObj(t, discussion.NewMessage{Body: "La semaine prochaine."})
		req, rec = newAuthRequest(http.MethodPost, "/v1/discussions/"+thread.ID+"/messages", getToken(t, teacher), body)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("Messages oldest first", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/discussions/"+thread.ID+"/messages", studentToken)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var msgs []discussion.Message
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msgs))
		require.Len(t, msgs, 2)
		assert.Equal(t, student.ID, msgs[0].AuthorID)
		assert.Equal(t, teacher.ID, msgs[1].AuthorID)
	})

	t.Run("Messages of unknown thread", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/discussions/nope/messages", studentToken)
		app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Query threads with message count", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/discussions", studentToken)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var threads []discussion.ThreadView
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &threads))
		require.Len(t, threads, 1)
		assert.Equal(t, thread.ID, threads[0].ID)
		assert.Equal(t, 2, threads[0].MessageCount)
	})

	t.Run("Destroy requires admin", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodDelete, "/v1/discussions/"+thread.ID, studentToken)
		app.ServeHTTP(rec, req)
		tt := httpTest{wantCode: http.StatusForbidden, wantData: marchallObj(t, httpErr{Error: "permission denied"})}
		checkCodeAndData(t, tt, rec)
	})

	t.Run("Destroy", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodDelete, "/v1/discussions/"+thread.ID, getToken(t, admin))
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusNoContent, rec.Code)

		req, rec = newAuthRequest(http.MethodGet, "/v1/discussions/"+thread.ID+"/messages", studentToken)
		app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
