package kvstore

import (
	"github.com/farmconnect/marketplace/internal/identity/domain"
	"github.com/farmconnect/marketplace/pkg/kvstore"
)

const userKey = "fc_user"

type SessionStore struct {
	store *kvstore.Store
}

func NewSessionStore(store *kvstore.Store) *SessionStore {
	return &SessionStore{store: store}
}

func (r *SessionStore) LoadUser() (domain.User, bool) {
	var user domain.User
	if !r.store.Load(userKey, &user) {
		return domain.User{}, false
	}
	return user, true
}

func (r *SessionStore) SaveUser(user domain.User) error {
	return r.store.Save(userKey, user)
}

func (r *SessionStore) ClearUser() error {
	return r.store.Delete(userKey)
}
