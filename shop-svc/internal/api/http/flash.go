package httpapi

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	FlashError   = "error"
	FlashSuccess = "success"

	flashSession = "warung-flash"
)

var flashKinds = []string{FlashError, FlashSuccess}

type Flash struct {
	Kind    string
	Message string
}

// FlashStore keeps one-shot messages in a signed cookie until the next rendered page.
type FlashStore struct {
	store sessions.Store
}

func NewFlashStore(secret []byte) *FlashStore {
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &FlashStore{store: store}
}

func (f *FlashStore) Add(w http.ResponseWriter, r *http.Request, kind, message string) error {
	// A cookie signed with an old secret yields a fresh session plus an error; keep going with it.
	session, _ := f.store.Get(r, flashSession)
	session.AddFlash(message, kind)
	return session.Save(r, w)
}

// Pop returns pending messages and clears them.
func (f *FlashStore) Pop(w http.ResponseWriter, r *http.Request) []Flash {
	session, err := f.store.Get(r, flashSession)
	if err != nil {
		return nil
	}

	var flashes []Flash
	for _, kind := range flashKinds {
		for _, v := range session.Flashes(kind) {
			if message, ok := v.(string); ok {
				flashes = append(flashes, Flash{Kind: kind, Message: message})
			}
		}
	}
	if len(flashes) > 0 {
		session.Save(r, w)
	}
	return flashes
}
