package handlers_test

import (
	"net/http"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/sealedsession/core/session"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Read(r *http.Request) (*session.Session, error) {
	args := m.Called(r)
	sess, _ := args.Get(0).(*session.Session)
	return sess, args.Error(1)
}

func (m *mockStore) Save(w http.ResponseWriter, r *http.Request, sess session.Session) (*session.Session, error) {
	args := m.Called(w, r, sess)
	saved, _ := args.Get(0).(*session.Session)
	return saved, args.Error(1)
}

func (m *mockStore) Rollover(w http.ResponseWriter, r *http.Request) error {
	args := m.Called(w, r)
	return args.Error(0)
}

func (m *mockStore) Clear(w http.ResponseWriter, r *http.Request) error {
	args := m.Called(w, r)
	return args.Error(0)
}
