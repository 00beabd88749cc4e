package client

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"github.com/etalasekita/etalase/internal/domain/auth"
	"github.com/etalasekita/etalase/internal/domain/catalog"
	"github.com/etalasekita/etalase/internal/wire"
)

// Upload is a file attached to an admin form.
type Upload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// Login exchanges credentials for a session. Thread the token into later
// calls with WithToken.
func (c *Client) Login(ctx context.Context, email, password string) (*auth.Session, error) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	wire.EncodeCredentials(e, wire.Credentials{Email: email, Password: password})

	var s auth.Session
	err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, bytes.NewReader(e.Bytes()), "application/json",
		func(d *jx.Decoder) (err error) {
			s, err = wire.DecodeSession(d)
			return err
		})
	if err != nil {
		return nil, errors.Wrap(err, "login")
	}
	return &s, nil
}

// CreateProduct submits the admin product form. image may be nil.
func (c *Client) CreateProduct(ctx context.Context, p catalog.NewProduct, image *Upload) (*catalog.Product, error) {
	f := newForm()
	f.field("name", p.Name)
	f.field("price", strconv.FormatInt(p.Price, 10))
	f.field("description", p.Description)
	f.field("long_description", p.LongDescription)
	f.field("category_slug", p.CategorySlug)
	f.field("sme_id", strconv.FormatInt(p.VendorID, 10))
	f.field("featured", strconv.FormatBool(p.Featured))
	f.file("image", image)

	var created catalog.Product
	err := c.submit(ctx, "/api/products", f, func(d *jx.Decoder) (err error) {
		created, err = wire.DecodeProduct(d)
		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "create product")
	}
	return &created, nil
}

// CreateVendor submits the admin SME form. logo and cover may be nil.
func (c *Client) CreateVendor(ctx context.Context, v catalog.NewVendor, logo, cover *Upload) (*catalog.Vendor, error) {
	f := newForm()
	f.field("name", v.Name)
	f.field("short_description", v.ShortDescription)
	f.field("description", v.Description)
	f.field("story", v.Story)
	f.field("city", v.City)
	f.field("province", v.Province)
	f.field("address", v.Address)
	f.field("phone", v.Phone)
	f.field("email", v.Email)
	f.field("website", v.Website)
	f.field("instagram", v.Instagram)
	f.field("facebook", v.Facebook)
	f.field("category", v.Category)
	f.field("featured", strconv.FormatBool(v.Featured))
	if !v.EstablishedDate.IsZero() {
		f.field("established_date", v.EstablishedDate.Format("2006-01-02"))
	}
	if v.Location != nil {
		f.field("latitude", strconv.FormatFloat(v.Location.Lat, 'f', -1, 64))
		f.field("longitude", strconv.FormatFloat(v.Location.Lng, 'f', -1, 64))
	}
	f.file("logo", logo)
	f.file("cover_image", cover)

	var created catalog.Vendor
	err := c.submit(ctx, "/api/smes", f, func(d *jx.Decoder) (err error) {
		created, err = wire.DecodeVendor(d)
		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "create sme")
	}
	return &created, nil
}

func (c *Client) submit(ctx context.Context, path string, f *form, decode func(d *jx.Decoder) error) error {
	if f.err != nil {
		return errors.Wrap(f.err, "build form")
	}
	if err := f.w.Close(); err != nil {
		return errors.Wrap(err, "close form")
	}
	return c.do(ctx, http.MethodPost, path, nil, &f.buf, f.w.FormDataContentType(), decode)
}

// form accumulates a multipart body, keeping the first write error.
type form struct {
	buf bytes.Buffer
	w   *multipart.Writer
	err error
}

func newForm() *form {
	f := &form{}
	f.w = multipart.NewWriter(&f.buf)
	return f
}

func (f *form) field(name, value string) {
	if f.err != nil || value == "" {
		return
	}
	f.err = f.w.WriteField(name, value)
}

func (f *form) file(name string, u *Upload) {
	if f.err != nil || u == nil {
		return
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+name+`"; filename="`+escapeQuotes(u.Filename)+`"`)
	ct := u.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	h.Set("Content-Type", ct)

	part, err := f.w.CreatePart(h)
	if err != nil {
		f.err = err
		return
	}
	_, f.err = io.Copy(part, u.Body)
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
