// Code generated by ogen, DO NOT EDIT.

package oas

import (
	"fmt"
	"time"

	ht "github.com/ogen-go/ogen/http"
)

func (s *ErrorStatusCode) Error() string {
	return fmt.Sprintf("code %d: %+v", s.StatusCode, s.Response)
}

type BearerAuth struct {
	Token string
	Roles []string
}

// GetToken returns the value of Token.
func (s *BearerAuth) GetToken() string {
	return s.Token
}

// GetRoles returns the value of Roles.
func (s *BearerAuth) GetRoles() []string {
	return s.Roles
}

// SetToken sets the value of Token.
func (s *BearerAuth) SetToken(val string) {
	s.Token = val
}

// SetRoles sets the value of Roles.
func (s *BearerAuth) SetRoles(val []string) {
	s.Roles = val
}

// Ref: #/components/schemas/Category
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// GetID returns the value of ID.
func (s *Category) GetID() int64 {
	return s.ID
}

// GetName returns the value of Name.
func (s *Category) GetName() string {
	return s.Name
}

// GetSlug returns the value of Slug.
func (s *Category) GetSlug() string {
	return s.Slug
}

// SetID sets the value of ID.
func (s *Category) SetID(val int64) {
	s.ID = val
}

// SetName sets the value of Name.
func (s *Category) SetName(val string) {
	s.Name = val
}

// SetSlug sets the value of Slug.
func (s *Category) SetSlug(val string) {
	s.Slug = val
}

// Ref: #/components/schemas/Error
type Error struct {
	Error string `json:"error"`
}

// GetError returns the value of Error.
func (s *Error) GetError() string {
	return s.Error
}

// SetError sets the value of Error.
func (s *Error) SetError(val string) {
	s.Error = val
}

// ErrorStatusCode wraps Error with StatusCode.
type ErrorStatusCode struct {
	StatusCode int
	Response   Error
}

// GetStatusCode returns the value of StatusCode.
func (s *ErrorStatusCode) GetStatusCode() int {
	return s.StatusCode
}

// GetResponse returns the value of Response.
func (s *ErrorStatusCode) GetResponse() Error {
	return s.Response
}

// SetStatusCode sets the value of StatusCode.
func (s *ErrorStatusCode) SetStatusCode(val int) {
	s.StatusCode = val
}

// SetResponse sets the value of Response.
func (s *ErrorStatusCode) SetResponse(val Error) {
	s.Response = val
}

// Ref: #/components/schemas/LoginRequest
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GetEmail returns the value of Email.
func (s *LoginRequest) GetEmail() string {
	return s.Email
}

// GetPassword returns the value of Password.
func (s *LoginRequest) GetPassword() string {
	return s.Password
}

// SetEmail sets the value of Email.
func (s *LoginRequest) SetEmail(val string) {
	s.Email = val
}

// SetPassword sets the value of Password.
func (s *LoginRequest) SetPassword(val string) {
	s.Password = val
}

// Ref: #/components/schemas/Marker
type Marker struct {
	SmeID            int64   `json:"sme_id"`
	Name             string  `json:"name"`
	City             string  `json:"city"`
	Province         string  `json:"province"`
	ShortDescription string  `json:"short_description"`
	Logo             string  `json:"logo"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	// Set when the position was derived from the SME id rather than stored.
	Approximate bool `json:"approximate"`
}

// GetSmeID returns the value of SmeID.
func (s *Marker) GetSmeID() int64 {
	return s.SmeID
}

// GetName returns the value of Name.
func (s *Marker) GetName() string {
	return s.Name
}

// GetCity returns the value of City.
func (s *Marker) GetCity() string {
	return s.City
}

// GetProvince returns the value of Province.
func (s *Marker) GetProvince() string {
	return s.Province
}

// GetShortDescription returns the value of ShortDescription.
func (s *Marker) GetShortDescription() string {
	return s.ShortDescription
}

// GetLogo returns the value of Logo.
func (s *Marker) GetLogo() string {
	return s.Logo
}

// GetLatitude returns the value of Latitude.
func (s *Marker) GetLatitude() float64 {
	return s.Latitude
}

// GetLongitude returns the value of Longitude.
func (s *Marker) GetLongitude() float64 {
	return s.Longitude
}

// GetApproximate returns the value of Approximate.
func (s *Marker) GetApproximate() bool {
	return s.Approximate
}

// SetSmeID sets the value of SmeID.
func (s *Marker) SetSmeID(val int64) {
	s.SmeID = val
}

// SetName sets the value of Name.
func (s *Marker) SetName(val string) {
	s.Name = val
}

// SetCity sets the value of City.
func (s *Marker) SetCity(val string) {
	s.City = val
}

// SetProvince sets the value of Province.
func (s *Marker) SetProvince(val string) {
	s.Province = val
}

// SetShortDescription sets the value of ShortDescription.
func (s *Marker) SetShortDescription(val string) {
	s.ShortDescription = val
}

// SetLogo sets the value of Logo.
func (s *Marker) SetLogo(val string) {
	s.Logo = val
}

// SetLatitude sets the value of Latitude.
func (s *Marker) SetLatitude(val float64) {
	s.Latitude = val
}

// SetLongitude sets the value of Longitude.
func (s *Marker) SetLongitude(val float64) {
	s.Longitude = val
}

// SetApproximate sets the value of Approximate.
func (s *Marker) SetApproximate(val bool) {
	s.Approximate = val
}

// NewNilDate returns new NilDate with value set to v.
func NewNilDate(v time.Time) NilDate {
	return NilDate{
		Value: v,
	}
}

// NilDate is nullable time.Time.
type NilDate struct {
	Value time.Time
	Null  bool
}

// SetTo sets value to v.
func (o *NilDate) SetTo(v time.Time) {
	o.Null = false
	o.Value = v
}

// IsNull returns true if value is Null.
func (o NilDate) IsNull() bool { return o.Null }

// SetToNull sets value to null.
func (o *NilDate) SetToNull() {
	o.Null = true
	var v time.Time
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o NilDate) Get() (v time.Time, ok bool) {
	if o.Null {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o NilDate) Or(d time.Time) time.Time {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewNilDateTime returns new NilDateTime with value set to v.
func NewNilDateTime(v time.Time) NilDateTime {
	return NilDateTime{
		Value: v,
	}
}

// NilDateTime is nullable time.Time.
type NilDateTime struct {
	Value time.Time
	Null  bool
}

// SetTo sets value to v.
func (o *NilDateTime) SetTo(v time.Time) {
	o.Null = false
	o.Value = v
}

// IsNull returns true if value is Null.
func (o NilDateTime) IsNull() bool { return o.Null }

// SetToNull sets value to null.
func (o *NilDateTime) SetToNull() {
	o.Null = true
	var v time.Time
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o NilDateTime) Get() (v time.Time, ok bool) {
	if o.Null {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o NilDateTime) Or(d time.Time) time.Time {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewNilFloat64 returns new NilFloat64 with value set to v.
func NewNilFloat64(v float64) NilFloat64 {
	return NilFloat64{
		Value: v,
	}
}

// NilFloat64 is nullable float64.
type NilFloat64 struct {
	Value float64
	Null  bool
}

// SetTo sets value to v.
func (o *NilFloat64) SetTo(v float64) {
	o.Null = false
	o.Value = v
}

// IsNull returns true if value is Null.
func (o NilFloat64) IsNull() bool { return o.Null }

// SetToNull sets value to null.
func (o *NilFloat64) SetToNull() {
	o.Null = true
	var v float64
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o NilFloat64) Get() (v float64, ok bool) {
	if o.Null {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o NilFloat64) Or(d float64) float64 {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptBool returns new OptBool with value set to v.
func NewOptBool(v bool) OptBool {
	return OptBool{
		Value: v,
		Set:   true,
	}
}

// OptBool is optional bool.
type OptBool struct {
	Value bool
	Set   bool
}

// IsSet returns true if OptBool was set.
func (o OptBool) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptBool) Reset() {
	var v bool
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptBool) SetTo(v bool) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptBool) Get() (v bool, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptBool) Or(d bool) bool {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptDate returns new OptDate with value set to v.
func NewOptDate(v time.Time) OptDate {
	return OptDate{
		Value: v,
		Set:   true,
	}
}

// OptDate is optional time.Time.
type OptDate struct {
	Value time.Time
	Set   bool
}

// IsSet returns true if OptDate was set.
func (o OptDate) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptDate) Reset() {
	var v time.Time
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptDate) SetTo(v time.Time) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptDate) Get() (v time.Time, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptDate) Or(d time.Time) time.Time {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptFloat64 returns new OptFloat64 with value set to v.
func NewOptFloat64(v float64) OptFloat64 {
	return OptFloat64{
		Value: v,
		Set:   true,
	}
}

// OptFloat64 is optional float64.
type OptFloat64 struct {
	Value float64
	Set   bool
}

// IsSet returns true if OptFloat64 was set.
func (o OptFloat64) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptFloat64) Reset() {
	var v float64
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptFloat64) SetTo(v float64) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptFloat64) Get() (v float64, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptFloat64) Or(d float64) float64 {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptInt returns new OptInt with value set to v.
func NewOptInt(v int) OptInt {
	return OptInt{
		Value: v,
		Set:   true,
	}
}

// OptInt is optional int.
type OptInt struct {
	Value int
	Set   bool
}

// IsSet returns true if OptInt was set.
func (o OptInt) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptInt) Reset() {
	var v int
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptInt) SetTo(v int) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptInt) Get() (v int, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptInt) Or(d int) int {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptInt64 returns new OptInt64 with value set to v.
func NewOptInt64(v int64) OptInt64 {
	return OptInt64{
		Value: v,
		Set:   true,
	}
}

// OptInt64 is optional int64.
type OptInt64 struct {
	Value int64
	Set   bool
}

// IsSet returns true if OptInt64 was set.
func (o OptInt64) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptInt64) Reset() {
	var v int64
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptInt64) SetTo(v int64) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptInt64) Get() (v int64, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptInt64) Or(d int64) int64 {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptMultipartFile returns new OptMultipartFile with value set to v.
func NewOptMultipartFile(v ht.MultipartFile) OptMultipartFile {
	return OptMultipartFile{
		Value: v,
		Set:   true,
	}
}

// OptMultipartFile is optional ht.MultipartFile.
type OptMultipartFile struct {
	Value ht.MultipartFile
	Set   bool
}

// IsSet returns true if OptMultipartFile was set.
func (o OptMultipartFile) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptMultipartFile) Reset() {
	var v ht.MultipartFile
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptMultipartFile) SetTo(v ht.MultipartFile) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptMultipartFile) Get() (v ht.MultipartFile, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptMultipartFile) Or(d ht.MultipartFile) ht.MultipartFile {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptString returns new OptString with value set to v.
func NewOptString(v string) OptString {
	return OptString{
		Value: v,
		Set:   true,
	}
}

// OptString is optional string.
type OptString struct {
	Value string
	Set   bool
}

// IsSet returns true if OptString was set.
func (o OptString) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptString) Reset() {
	var v string
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptString) SetTo(v string) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptString) Get() (v string, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptString) Or(d string) string {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// Ref: #/components/schemas/Product
type Product struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	LongDescription string `json:"long_description"`
	// Price in whole rupiah.
	Price        int64       `json:"price"`
	Image        string      `json:"image"`
	CategorySlug string      `json:"category_slug"`
	SmeID        int64       `json:"sme_id"`
	Featured     bool        `json:"featured"`
	CreatedAt    NilDateTime `json:"created_at"`
}

// GetID returns the value of ID.
func (s *Product) GetID() int64 {
	return s.ID
}

// GetName returns the value of Name.
func (s *Product) GetName() string {
	return s.Name
}

// GetDescription returns the value of Description.
func (s *Product) GetDescription() string {
	return s.Description
}

// GetLongDescription returns the value of LongDescription.
func (s *Product) GetLongDescription() string {
	return s.LongDescription
}

// GetPrice returns the value of Price.
func (s *Product) GetPrice() int64 {
	return s.Price
}

// GetImage returns the value of Image.
func (s *Product) GetImage() string {
	return s.Image
}

// GetCategorySlug returns the value of CategorySlug.
func (s *Product) GetCategorySlug() string {
	return s.CategorySlug
}

// GetSmeID returns the value of SmeID.
func (s *Product) GetSmeID() int64 {
	return s.SmeID
}

// GetFeatured returns the value of Featured.
func (s *Product) GetFeatured() bool {
	return s.Featured
}

// GetCreatedAt returns the value of CreatedAt.
func (s *Product) GetCreatedAt() NilDateTime {
	return s.CreatedAt
}

// SetID sets the value of ID.
func (s *Product) SetID(val int64) {
	s.ID = val
}

// SetName sets the value of Name.
func (s *Product) SetName(val string) {
	s.Name = val
}

// SetDescription sets the value of Description.
func (s *Product) SetDescription(val string) {
	s.Description = val
}

// SetLongDescription sets the value of LongDescription.
func (s *Product) SetLongDescription(val string) {
	s.LongDescription = val
}

// SetPrice sets the value of Price.
func (s *Product) SetPrice(val int64) {
	s.Price = val
}

// SetImage sets the value of Image.
func (s *Product) SetImage(val string) {
	s.Image = val
}

// SetCategorySlug sets the value of CategorySlug.
func (s *Product) SetCategorySlug(val string) {
	s.CategorySlug = val
}

// SetSmeID sets the value of SmeID.
func (s *Product) SetSmeID(val int64) {
	s.SmeID = val
}

// SetFeatured sets the value of Featured.
func (s *Product) SetFeatured(val bool) {
	s.Featured = val
}

// SetCreatedAt sets the value of CreatedAt.
func (s *Product) SetCreatedAt(val NilDateTime) {
	s.CreatedAt = val
}

// Ref: #/components/schemas/ProductForm
type ProductFormMultipart struct {
	Name            string           `json:"name"`
	Description     OptString        `json:"description"`
	LongDescription OptString        `json:"long_description"`
	Price           int64            `json:"price"`
	CategorySlug    string           `json:"category_slug"`
	SmeID           int64            `json:"sme_id"`
	Featured        OptBool          `json:"featured"`
	Image           OptMultipartFile `json:"image"`
}

// GetName returns the value of Name.
func (s *ProductFormMultipart) GetName() string {
	return s.Name
}

// GetDescription returns the value of Description.
func (s *ProductFormMultipart) GetDescription() OptString {
	return s.Description
}

// GetLongDescription returns the value of LongDescription.
func (s *ProductFormMultipart) GetLongDescription() OptString {
	return s.LongDescription
}

// GetPrice returns the value of Price.
func (s *ProductFormMultipart) GetPrice() int64 {
	return s.Price
}

// GetCategorySlug returns the value of CategorySlug.
func (s *ProductFormMultipart) GetCategorySlug() string {
	return s.CategorySlug
}

// GetSmeID returns the value of SmeID.
func (s *ProductFormMultipart) GetSmeID() int64 {
	return s.SmeID
}

// GetFeatured returns the value of Featured.
func (s *ProductFormMultipart) GetFeatured() OptBool {
	return s.Featured
}

// GetImage returns the value of Image.
func (s *ProductFormMultipart) GetImage() OptMultipartFile {
	return s.Image
}

// SetName sets the value of Name.
func (s *ProductFormMultipart) SetName(val string) {
	s.Name = val
}

// SetDescription sets the value of Description.
func (s *ProductFormMultipart) SetDescription(val OptString) {
	s.Description = val
}

// SetLongDescription sets the value of LongDescription.
func (s *ProductFormMultipart) SetLongDescription(val OptString) {
	s.LongDescription = val
}

// SetPrice sets the value of Price.
func (s *ProductFormMultipart) SetPrice(val int64) {
	s.Price = val
}

// SetCategorySlug sets the value of CategorySlug.
func (s *ProductFormMultipart) SetCategorySlug(val string) {
	s.CategorySlug = val
}

// SetSmeID sets the value of SmeID.
func (s *ProductFormMultipart) SetSmeID(val int64) {
	s.SmeID = val
}

// SetFeatured sets the value of Featured.
func (s *ProductFormMultipart) SetFeatured(val OptBool) {
	s.Featured = val
}

// SetImage sets the value of Image.
func (s *ProductFormMultipart) SetImage(val OptMultipartFile) {
	s.Image = val
}

// Ref: #/components/schemas/Session
type Session struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// GetAccessToken returns the value of AccessToken.
func (s *Session) GetAccessToken() string {
	return s.AccessToken
}

// GetTokenType returns the value of TokenType.
func (s *Session) GetTokenType() string {
	return s.TokenType
}

// GetExpiresAt returns the value of ExpiresAt.
func (s *Session) GetExpiresAt() time.Time {
	return s.ExpiresAt
}

// SetAccessToken sets the value of AccessToken.
func (s *Session) SetAccessToken(val string) {
	s.AccessToken = val
}

// SetTokenType sets the value of TokenType.
func (s *Session) SetTokenType(val string) {
	s.TokenType = val
}

// SetExpiresAt sets the value of ExpiresAt.
func (s *Session) SetExpiresAt(val time.Time) {
	s.ExpiresAt = val
}

// Ref: #/components/schemas/Sme
type Sme struct {
	ID               int64       `json:"id"`
	Name             string      `json:"name"`
	ShortDescription string      `json:"short_description"`
	Description      string      `json:"description"`
	Story            string      `json:"story"`
	City             string      `json:"city"`
	Province         string      `json:"province"`
	Address          string      `json:"address"`
	Phone            string      `json:"phone"`
	Email            string      `json:"email"`
	Website          string      `json:"website"`
	Instagram        string      `json:"instagram"`
	Facebook         string      `json:"facebook"`
	EstablishedDate  NilDate     `json:"established_date"`
	Category         string      `json:"category"`
	Featured         bool        `json:"featured"`
	Logo             string      `json:"logo"`
	CoverImage       string      `json:"cover_image"`
	Latitude         NilFloat64  `json:"latitude"`
	Longitude        NilFloat64  `json:"longitude"`
	ProductCount     int         `json:"product_count"`
	CreatedAt        NilDateTime `json:"created_at"`
}

// GetID returns the value of ID.
func (s *Sme) GetID() int64 {
	return s.ID
}

// GetName returns the value of Name.
func (s *Sme) GetName() string {
	return s.Name
}

// GetShortDescription returns the value of ShortDescription.
func (s *Sme) GetShortDescription() string {
	return s.ShortDescription
}

// GetDescription returns the value of Description.
func (s *Sme) GetDescription() string {
	return s.Description
}

// GetStory returns the value of Story.
func (s *Sme) GetStory() string {
	return s.Story
}

// GetCity returns the value of City.
func (s *Sme) GetCity() string {
	return s.City
}

// GetProvince returns the value of Province.
func (s *Sme) GetProvince() string {
	return s.Province
}

// GetAddress returns the value of Address.
func (s *Sme) GetAddress() string {
	return s.Address
}

// GetPhone returns the value of Phone.
func (s *Sme) GetPhone() string {
	return s.Phone
}

// GetEmail returns the value of Email.
func (s *Sme) GetEmail() string {
	return s.Email
}

// GetWebsite returns the value of Website.
func (s *Sme) GetWebsite() string {
	return s.Website
}

// GetInstagram returns the value of Instagram.
func (s *Sme) GetInstagram() string {
	return s.Instagram
}

// GetFacebook returns the value of Facebook.
func (s *Sme) GetFacebook() string {
	return s.Facebook
}

// GetEstablishedDate returns the value of EstablishedDate.
func (s *Sme) GetEstablishedDate() NilDate {
	return s.EstablishedDate
}

// GetCategory returns the value of Category.
func (s *Sme) GetCategory() string {
	return s.Category
}

// GetFeatured returns the value of Featured.
func (s *Sme) GetFeatured() bool {
	return s.Featured
}

// GetLogo returns the value of Logo.
func (s *Sme) GetLogo() string {
	return s.Logo
}

// GetCoverImage returns the value of CoverImage.
func (s *Sme) GetCoverImage() string {
	return s.CoverImage
}

// GetLatitude returns the value of Latitude.
func (s *Sme) GetLatitude() NilFloat64 {
	return s.Latitude
}

// GetLongitude returns the value of Longitude.
func (s *Sme) GetLongitude() NilFloat64 {
	return s.Longitude
}

// GetProductCount returns the value of ProductCount.
func (s *Sme) GetProductCount() int {
	return s.ProductCount
}

// GetCreatedAt returns the value of CreatedAt.
func (s *Sme) GetCreatedAt() NilDateTime {
	return s.CreatedAt
}

// SetID sets the value of ID.
func (s *Sme) SetID(val int64) {
	s.ID = val
}

// SetName sets the value of Name.
func (s *Sme) SetName(val string) {
	s.Name = val
}

// SetShortDescription sets the value of ShortDescription.
func (s *Sme) SetShortDescription(val string) {
	s.ShortDescription = val
}

// SetDescription sets the value of Description.
func (s *Sme) SetDescription(val string) {
	s.Description = val
}

// SetStory sets the value of Story.
func (s *Sme) SetStory(val string) {
	s.Story = val
}

// SetCity sets the value of City.
func (s *Sme) SetCity(val string) {
	s.City = val
}

// SetProvince sets the value of Province.
func (s *Sme) SetProvince(val string) {
	s.Province = val
}

// SetAddress sets the value of Address.
func (s *Sme) SetAddress(val string) {
	s.Address = val
}

// SetPhone sets the value of Phone.
func (s *Sme) SetPhone(val string) {
	s.Phone = val
}

// SetEmail sets the value of Email.
func (s *Sme) SetEmail(val string) {
	s.Email = val
}

// SetWebsite sets the value of Website.
func (s *Sme) SetWebsite(val string) {
	s.Website = val
}

// SetInstagram sets the value of Instagram.
func (s *Sme) SetInstagram(val string) {
	s.Instagram = val
}

// SetFacebook sets the value of Facebook.
func (s *Sme) SetFacebook(val string) {
	s.Facebook = val
}

// SetEstablishedDate sets the value of EstablishedDate.
func (s *Sme) SetEstablishedDate(val NilDate) {
	s.EstablishedDate = val
}

// SetCategory sets the value of Category.
func (s *Sme) SetCategory(val string) {
	s.Category = val
}

// SetFeatured sets the value of Featured.
func (s *Sme) SetFeatured(val bool) {
	s.Featured = val
}

// SetLogo sets the value of Logo.
func (s *Sme) SetLogo(val string) {
	s.Logo = val
}

// SetCoverImage sets the value of CoverImage.
func (s *Sme) SetCoverImage(val string) {
	s.CoverImage = val
}

// SetLatitude sets the value of Latitude.
func (s *Sme) SetLatitude(val NilFloat64) {
	s.Latitude = val
}

// SetLongitude sets the value of Longitude.
func (s *Sme) SetLongitude(val NilFloat64) {
	s.Longitude = val
}

// SetProductCount sets the value of ProductCount.
func (s *Sme) SetProductCount(val int) {
	s.ProductCount = val
}

// SetCreatedAt sets the value of CreatedAt.
func (s *Sme) SetCreatedAt(val NilDateTime) {
	s.CreatedAt = val
}

// Ref: #/components/schemas/SmeForm
type SmeFormMultipart struct {
	Name             string           `json:"name"`
	ShortDescription OptString        `json:"short_description"`
	Description      OptString        `json:"description"`
	Story            OptString        `json:"story"`
	City             OptString        `json:"city"`
	Province         OptString        `json:"province"`
	Address          OptString        `json:"address"`
	Phone            OptString        `json:"phone"`
	Email            OptString        `json:"email"`
	Website          OptString        `json:"website"`
	Instagram        OptString        `json:"instagram"`
	Facebook         OptString        `json:"facebook"`
	Category         OptString        `json:"category"`
	EstablishedDate  OptDate          `json:"established_date"`
	Featured         OptBool          `json:"featured"`
	Latitude         OptFloat64       `json:"latitude"`
	Longitude        OptFloat64       `json:"longitude"`
	Logo             OptMultipartFile `json:"logo"`
	CoverImage       OptMultipartFile `json:"cover_image"`
}

// GetName returns the value of Name.
func (s *SmeFormMultipart) GetName() string {
	return s.Name
}

// GetShortDescription returns the value of ShortDescription.
func (s *SmeFormMultipart) GetShortDescription() OptString {
	return s.ShortDescription
}

// GetDescription returns the value of Description.
func (s *SmeFormMultipart) GetDescription() OptString {
	return s.Description
}

// GetStory returns the value of Story.
func (s *SmeFormMultipart) GetStory() OptString {
	return s.Story
}

// GetCity returns the value of City.
func (s *SmeFormMultipart) GetCity() OptString {
	return s.City
}

// GetProvince returns the value of Province.
func (s *SmeFormMultipart) GetProvince() OptString {
	return s.Province
}

// GetAddress returns the value of Address.
func (s *SmeFormMultipart) GetAddress() OptString {
	return s.Address
}

// GetPhone returns the value of Phone.
func (s *SmeFormMultipart) GetPhone() OptString {
	return s.Phone
}

// GetEmail returns the value of Email.
func (s *SmeFormMultipart) GetEmail() OptString {
	return s.Email
}

// GetWebsite returns the value of Website.
func (s *SmeFormMultipart) GetWebsite() OptString {
	return s.Website
}

// GetInstagram returns the value of Instagram.
func (s *SmeFormMultipart) GetInstagram() OptString {
	return s.Instagram
}

// GetFacebook returns the value of Facebook.
func (s *SmeFormMultipart) GetFacebook() OptString {
	return s.Facebook
}

// GetCategory returns the value of Category.
func (s *SmeFormMultipart) GetCategory() OptString {
	return s.Category
}

// GetEstablishedDate returns the value of EstablishedDate.
func (s *SmeFormMultipart) GetEstablishedDate() OptDate {
	return s.EstablishedDate
}

// GetFeatured returns the value of Featured.
func (s *SmeFormMultipart) GetFeatured() OptBool {
	return s.Featured
}

// GetLatitude returns the value of Latitude.
func (s *SmeFormMultipart) GetLatitude() OptFloat64 {
	return s.Latitude
}

// GetLongitude returns the value of Longitude.
func (s *SmeFormMultipart) GetLongitude() OptFloat64 {
	return s.Longitude
}

// GetLogo returns the value of Logo.
func (s *SmeFormMultipart) GetLogo() OptMultipartFile {
	return s.Logo
}

// GetCoverImage returns the value of CoverImage.
func (s *SmeFormMultipart) GetCoverImage() OptMultipartFile {
	return s.CoverImage
}

// SetName sets the value of Name.
func (s *SmeFormMultipart) SetName(val string) {
	s.Name = val
}

// SetShortDescription sets the value of ShortDescription.
func (s *SmeFormMultipart) SetShortDescription(val OptString) {
	s.ShortDescription = val
}

// SetDescription sets the value of Description.
func (s *SmeFormMultipart) SetDescription(val OptString) {
	s.Description = val
}

// SetStory sets the value of Story.
func (s *SmeFormMultipart) SetStory(val OptString) {
	s.Story = val
}

// SetCity sets the value of City.
func (s *SmeFormMultipart) SetCity(val OptString) {
	s.City = val
}

// SetProvince sets the value of Province.
func (s *SmeFormMultipart) SetProvince(val OptString) {
	s.Province = val
}

// SetAddress sets the value of Address.
func (s *SmeFormMultipart) SetAddress(val OptString) {
	s.Address = val
}

// SetPhone sets the value of Phone.
func (s *SmeFormMultipart) SetPhone(val OptString) {
	s.Phone = val
}

// SetEmail sets the value of Email.
func (s *SmeFormMultipart) SetEmail(val OptString) {
	s.Email = val
}

// SetWebsite sets the value of Website.
func (s *SmeFormMultipart) SetWebsite(val OptString) {
	s.Website = val
}

// SetInstagram sets the value of Instagram.
func (s *SmeFormMultipart) SetInstagram(val OptString) {
	s.Instagram = val
}

// SetFacebook sets the value of Facebook.
func (s *SmeFormMultipart) SetFacebook(val OptString) {
	s.Facebook = val
}

// SetCategory sets the value of Category.
func (s *SmeFormMultipart) SetCategory(val OptString) {
	s.Category = val
}

// SetEstablishedDate sets the value of EstablishedDate.
func (s *SmeFormMultipart) SetEstablishedDate(val OptDate) {
	s.EstablishedDate = val
}

// SetFeatured sets the value of Featured.
func (s *SmeFormMultipart) SetFeatured(val OptBool) {
	s.Featured = val
}

// SetLatitude sets the value of Latitude.
func (s *SmeFormMultipart) SetLatitude(val OptFloat64) {
	s.Latitude = val
}

// SetLongitude sets the value of Longitude.
func (s *SmeFormMultipart) SetLongitude(val OptFloat64) {
	s.Longitude = val
}

// SetLogo sets the value of Logo.
func (s *SmeFormMultipart) SetLogo(val OptMultipartFile) {
	s.Logo = val
}

// SetCoverImage sets the value of CoverImage.
func (s *SmeFormMultipart) SetCoverImage(val OptMultipartFile) {
	s.CoverImage = val
}
