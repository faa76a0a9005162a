package repofakes

import (
	"sync"

	"github.com/smartmail/go-assistant-client/tokenstore"
)

var _ tokenstore.Repo = (*FakeTokenRepo)(nil)

// FakeTokenRepo is an in-memory token store for tests. The error fields, when
// set, are returned by the corresponding operation.
type FakeTokenRepo struct {
	token   string
	present bool
	lock    sync.Mutex

	SaveErr  error
	LoadErr  error
	ClearErr error
}

func NewFakeTokenRepo() *FakeTokenRepo {
	return &FakeTokenRepo{}
}

// NewFakeTokenRepoWith returns a fake store pre-seeded with a token, as if a
// previous run of the client had persisted it.
func NewFakeTokenRepoWith(token string) *FakeTokenRepo {
	return &FakeTokenRepo{token: token, present: true}
}

func (r *FakeTokenRepo) Save(token string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.SaveErr != nil {
		return r.SaveErr
	}
	r.token = token
	r.present = true
	return nil
}

func (r *FakeTokenRepo) Load() (string, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.LoadErr != nil {
		return "", r.LoadErr
	}
	if !r.present {
		return "", tokenstore.NoTokenErr
	}
	return r.token, nil
}

func (r *FakeTokenRepo) Clear() error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.ClearErr != nil {
		return r.ClearErr
	}
	r.token = ""
	r.present = false
	return nil
}
