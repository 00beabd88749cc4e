// Package wire reads the JSON rows of the catalog API and of catalog dumps.
// Rows use the store's snake_case column names; decoding normalizes them into
// catalog types so no caller ever reads a field by string key.
//
// Decoders are lenient in the way rows from a hosted store require: null and
// absent optional fields take their zero value, unknown fields are skipped,
// and ids may arrive as numbers or numeric strings.
package wire

import (
	"strconv"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

const dateLayout = "2006-01-02"

// timeLayouts are tried in order when decoding timestamps.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05.999999-07",
	dateLayout,
}

// DecodeError reads the message of an error envelope. Other shapes yield an
// empty message.
func DecodeError(d *jx.Decoder) (string, error) {
	var msg string
	err := d.Obj(func(d *jx.Decoder, key string) error {
		if key != "error" {
			return d.Skip()
		}
		var err error
		msg, err = optStr(d)
		return err
	})
	return msg, err
}

func optStr(d *jx.Decoder) (string, error) {
	switch d.Next() {
	case jx.Null:
		return "", d.Null()
	case jx.Number:
		n, err := d.Num()
		return n.String(), err
	default:
		return d.Str()
	}
}

func optInt64(d *jx.Decoder) (int64, error) {
	switch d.Next() {
	case jx.Null:
		return 0, d.Null()
	case jx.String:
		s, err := d.Str()
		if err != nil || s == "" {
			return 0, err
		}
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, errors.Wrapf(err, "parse %q", s)
		}
		return v, nil
	default:
		return d.Int64()
	}
}

func optBool(d *jx.Decoder) (bool, error) {
	switch d.Next() {
	case jx.Null:
		return false, d.Null()
	case jx.String:
		s, err := d.Str()
		return s == "true", err
	default:
		return d.Bool()
	}
}

func optFloat(d *jx.Decoder) (*float64, error) {
	switch d.Next() {
	case jx.Null:
		return nil, d.Null()
	case jx.String:
		s, err := d.Str()
		if err != nil || s == "" {
			return nil, err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parse %q", s)
		}
		return &v, nil
	default:
		v, err := d.Float64()
		if err != nil {
			return nil, err
		}
		return &v, nil
	}
}

func optTime(d *jx.Decoder) (time.Time, error) {
	s, err := optStr(d)
	if err != nil || s == "" {
		return time.Time{}, err
	}
	return parseTime(s)
}

// parseTime parses the timestamp and date formats the store emits.
func parseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Errorf("unrecognized time %q", s)
}
