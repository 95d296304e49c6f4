// Package sharecode turns toilet IDs into the short opaque codes that
// QR stickers deep-link to, and back.
package sharecode

import (
	"errors"

	hashids "github.com/speps/go-hashids/v2"
)

var ErrInvalidCode = errors.New("invalid share code")

type Codec struct {
	h *hashids.HashID
}

// New builds a codec. The salt must stay stable for the lifetime of
// printed QR stickers; changing it invalidates every code in the wild.
func New(salt string) (*Codec, error) {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = 8

	h, err := hashids.NewWithData(hd)
	if err != nil {
		return nil, err
	}
	return &Codec{h: h}, nil
}

func (c *Codec) Encode(toiletID int64) (string, error) {
	return c.h.EncodeInt64([]int64{toiletID})
}

func (c *Codec) Decode(code string) (int64, error) {
	ids, err := c.h.DecodeInt64WithError(code)
	if err != nil {
		return 0, ErrInvalidCode
	}
	if len(ids) != 1 {
		return 0, ErrInvalidCode
	}
	return ids[0], nil
}
