package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	. "github.com/Konou0luc/ucao-academy-sub000/apps/api/echo"
	"github.com/Konou0luc/ucao-academy-sub000/core/catalog"
	"github.com/Konou0luc/ucao-academy-sub000/core/evaluation"
	"github.com/Konou0luc/ucao-academy-sub000/core/schedule"
	"github.com/Konou0luc/ucao-academy-sub000/core/user"
)

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
	extra    interface{}
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func getToken(t *testing.T, usr user.User) string {
	claims := GetUserClaims(usr)
	token, err := GenerateToken(claims)
	if err != nil {
		t.Fatalf("getToken(): %v", err)
	}
	return token
}

func createUser(t *testing.T, name, uname, email string, roles []string, isActive bool) user.User {
	usr := user.User{
		ID:       uuid.New().String(),
		Name:     name,
		Username: uname,
		Email:    email,
		IsActive: isActive,
		Roles:    roles,
	}
	if err := usr.SetPassword("t3stP@s5w0rd"); err != nil {
		t.Fatalf("createUser(): %v", err)
	}
	usr, err := usrRepo.CreateUser(context.Background(), usr)
	if err != nil {
		t.Fatalf("createUser(): %v", err)
	}
	return usr
}

func createCourse(t *testing.T, title, filiere, niveau string) catalog.Course {
	course, err := courseSvc.Create(context.Background(), catalog.NewCourse{
		Title:   title,
		Filiere: filiere,
		Niveau:  niveau,
	})
	if err != nil {
		t.Fatalf("createCourse(): %v", err)
	}
	return course
}

func createSlot(t *testing.T, title, filiere, niveau, day, start, end string) schedule.Slot {
	slot, err := scheduleSvc.Create(context.Background(), schedule.NewSlot{
		CourseTitle: title,
		Filiere:     filiere,
		Niveau:      niveau,
		Day:         day,
		StartTime:   start,
		EndTime:     end,
	})
	if err != nil {
		t.Fatalf("createSlot(): %v", err)
	}
	return slot
}

func createEvaluation(t *testing.T, title, typ string, date time.Time) evaluation.Event {
	ev, err := evalSvc.Create(context.Background(), evaluation.NewEvent{
		Title: title,
		Type:  typ,
		Date:  date,
	})
	if err != nil {
		t.Fatalf("createEvaluation(): %v", err)
	}
	return ev
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj(): %v", err)
	}
	return data
}

func marchallList(t *testing.T, objs ...interface{}) []byte {
	data, err := json.Marshal(objs)
	if err != nil {
		t.Fatalf("marchallList(): %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	return assert.ObjectsAreEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
