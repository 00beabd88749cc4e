package wire

import (
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"github.com/etalasekita/etalase/internal/domain/auth"
)

// Credentials is a password login request.
type Credentials struct {
	Email    string
	Password string
}

func EncodeCredentials(e *jx.Encoder, c Credentials) {
	e.ObjStart()
	e.FieldStart("email")
	e.Str(c.Email)
	e.FieldStart("password")
	e.Str(c.Password)
	e.ObjEnd()
}

func DecodeSession(d *jx.Decoder) (auth.Session, error) {
	var s auth.Session
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "access_token":
			s.AccessToken, err = optStr(d)
		case "token_type":
			s.TokenType, err = optStr(d)
		case "expires_at":
			s.ExpiresAt, err = optTime(d)
		default:
			return d.Skip()
		}
		if err != nil {
			return errors.Wrap(err, key)
		}
		return nil
	})
	return s, err
}
