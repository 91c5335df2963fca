package store

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// newRandomID returns prefix-<suffix> where suffix is 8 chars of base32
// (lowercase, no padding). 8 chars base32 ~= 40 bits of space, which is
// plenty for a single household's inventory while staying short enough
// to read off a printed label.
func newRandomID(prefix string) (string, error) {
	var b [5]byte // 40 bits -> 8 base32 chars
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	enc := base32.StdEncoding.WithPadding(base32.NoPadding)
	suffix := strings.ToLower(enc.EncodeToString(b[:]))
	return prefix + "-" + suffix, nil
}

// NextID issues an identifier unique within the store. Candidates are
// checked against existing ids; on repeated collision or a crypto/rand
// failure it falls back to a counting suffix so id issuance never fails.
func (db *DB) NextID(prefix string) string {
	for i := 0; i < 10; i++ {
		id, err := newRandomID(prefix)
		if err != nil {
			break
		}
		if !db.idExists(id) {
			return id
		}
	}
	for n := 1; ; n++ {
		id := fmt.Sprintf("%s-%d", prefix, n)
		if !db.idExists(id) {
			return id
		}
	}
}

// NewQRValue returns a scan payload for a freshly created item. Item ids
// stay short for label readability; QR payloads get a full UUID so a
// scanned code is unambiguous even across workspaces.
func NewQRValue() string {
	return uuid.NewString()
}

func (db *DB) idExists(id string) bool {
	for _, r := range db.Rooms {
		for _, it := range r.Items {
			if it.ID == id || it.QRValue == id {
				return true
			}
		}
	}
	for _, ev := range db.Events {
		if ev.ID == id {
			return true
		}
	}
	return false
}
