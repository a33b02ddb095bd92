package repository

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"orcamento_bot/internal/domain/entities"
	"orcamento_bot/internal/usecase/interfaces"

	"github.com/cockroachdb/pebble"
	"github.com/fxamacker/cbor/v2"
)

const sessionKeyPrefix = "session/"

var (
	ErrSessionStoreDirRequired = errors.New("session store dir is required")
	ErrSessionStoreClosed      = errors.New("session store is closed")

	sessionEncMode cbor.EncMode
	sessionDecMode cbor.DecMode
)

func init() {
	encOpts := cbor.CoreDetEncOptions()
	encOpts.Time = cbor.TimeRFC3339Nano
	encOpts.TextMarshaler = cbor.TextMarshalerTextString
	var err error
	sessionEncMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("session codec: cbor encoder: %v", err))
	}
	sessionDecMode, err = cbor.DecOptions{
		DefaultMapType:  reflect.TypeOf(map[string]any(nil)),
		TextUnmarshaler: cbor.TextUnmarshalerTextString,
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("session codec: cbor decoder: %v", err))
	}
}

// SessionPebbleRepository keeps sessions in a local pebble database so a
// single instance survives restarts without a remote table.
type SessionPebbleRepository struct {
	db   *pebble.DB
	sync bool
}

var _ interfaces.ISessionRepository = (*SessionPebbleRepository)(nil)

// OpenSessionPebbleRepository opens (or creates) the store at dir. With
// syncWrites every Save is fsynced before returning.
func OpenSessionPebbleRepository(dir string, syncWrites bool) (*SessionPebbleRepository, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, ErrSessionStoreDirRequired
	}
	db, err := pebble.Open(filepath.Clean(dir), &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("open pebble session store: %w", err)
	}
	return &SessionPebbleRepository{db: db, sync: syncWrites}, nil
}

func (r *SessionPebbleRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	err := r.db.Close()
	r.db = nil
	return err
}

func (r *SessionPebbleRepository) Get(_ context.Context, chatID string) (entities.Session, bool, error) {
	if r == nil || r.db == nil {
		return entities.Session{}, false, ErrSessionStoreClosed
	}
	v, closer, err := r.db.Get(sessionKey(chatID))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return entities.Session{}, false, nil
		}
		return entities.Session{}, false, err
	}
	defer closer.Close()

	var s entities.Session
	if err := sessionDecMode.Unmarshal(v, &s); err != nil {
		return entities.Session{}, false, fmt.Errorf("decode session chat_id=%s: %w", chatID, err)
	}
	return s, true, nil
}

func (r *SessionPebbleRepository) Save(_ context.Context, s entities.Session) error {
	if r == nil || r.db == nil {
		return ErrSessionStoreClosed
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = time.Now().UTC()
	}
	b, err := sessionEncMode.Marshal(s)
	if err != nil {
		return err
	}
	return r.db.Set(sessionKey(s.ChatID), b, r.writeOpts())
}

func (r *SessionPebbleRepository) Delete(_ context.Context, chatID string) error {
	if r == nil || r.db == nil {
		return ErrSessionStoreClosed
	}
	return r.db.Delete(sessionKey(chatID), r.writeOpts())
}

func (r *SessionPebbleRepository) writeOpts() *pebble.WriteOptions {
	if r.sync {
		return pebble.Sync
	}
	return pebble.NoSync
}

func sessionKey(chatID string) []byte {
	return []byte(sessionKeyPrefix + chatID)
}
