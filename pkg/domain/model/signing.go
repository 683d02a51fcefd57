package model

// Keys recognized in key.properties
const (
	KeyAlias      = "keyAlias"
	KeyPassword   = "keyPassword"
	StoreFile     = "storeFile"
	StorePassword = "storePassword"
)

// SigningCredentials is the release signing material read from key.properties.
// Fields are copied verbatim; StoreFile is the path as written in the file.
type SigningCredentials struct {
	KeyAlias      string `json:"keyAlias" toml:"keyAlias"`
	KeyPassword   string `json:"keyPassword" toml:"keyPassword" masq:"secret"`
	StoreFile     string `json:"storeFile" toml:"storeFile"`
	StorePassword string `json:"storePassword" toml:"storePassword" masq:"secret"`
}

// CredentialField is a named signing field, used for ordered validation and reporting
type CredentialField struct {
	Name  string
	Value string
}

// Fields returns the signing fields in declaration order
func (c *SigningCredentials) Fields() []CredentialField {
	return []CredentialField{
		{Name: KeyAlias, Value: c.KeyAlias},
		{Name: KeyPassword, Value: c.KeyPassword},
		{Name: StoreFile, Value: c.StoreFile},
		{Name: StorePassword, Value: c.StorePassword},
	}
}

// IsEmpty reports whether no field is set
func (c *SigningCredentials) IsEmpty() bool {
	return *c == SigningCredentials{}
}
