package gateway

import "strings"

// Credentials is the canonical credential record produced by Normalize.
// Every field is either absent (empty string) or a non-empty value.
type Credentials struct {
	PublicKey    string
	SecretKey    string
	APIKey       string
	APISecret    string
	AccessToken  string
	ClientID     string
	ClientSecret string
}

// fieldAliases maps each logical field to the key spellings accepted in a raw
// credential bag, in priority order: camelCase, then SCREAMING_SNAKE_CASE,
// then snake_case. The first non-empty match wins.
var fieldAliases = map[Field][]string{
	FieldPublicKey:    {"publicKey", "PUBLIC_KEY", "public_key"},
	FieldSecretKey:    {"secretKey", "SECRET_KEY", "secret_key"},
	FieldAPIKey:       {"apiKey", "API_KEY", "api_key"},
	FieldAPISecret:    {"apiSecret", "API_SECRET", "api_secret"},
	FieldAccessToken:  {"accessToken", "ACCESS_TOKEN", "access_token"},
	FieldClientID:     {"clientId", "CLIENT_ID", "client_id"},
	FieldClientSecret: {"clientSecret", "CLIENT_SECRET", "client_secret"},
}

// Normalize collapses the heterogeneous key names of a raw credential bag
// into the canonical record. It is pure, never fails, and is idempotent: a
// bag already using camelCase keys normalizes to itself.
func Normalize(bag map[string]string) Credentials {
	var c Credentials
	for _, field := range Fields {
		for _, alias := range fieldAliases[field] {
			if v, ok := bag[alias]; ok && strings.TrimSpace(v) != "" {
				c.set(field, v)
				break
			}
		}
	}
	return c
}

func (c *Credentials) set(f Field, v string) {
	switch f {
	case FieldPublicKey:
		c.PublicKey = v
	case FieldSecretKey:
		c.SecretKey = v
	case FieldAPIKey:
		c.APIKey = v
	case FieldAPISecret:
		c.APISecret = v
	case FieldAccessToken:
		c.AccessToken = v
	case FieldClientID:
		c.ClientID = v
	case FieldClientSecret:
		c.ClientSecret = v
	}
}

// Get returns the value of a logical field, or "" when absent.
func (c Credentials) Get(f Field) string {
	switch f {
	case FieldPublicKey:
		return c.PublicKey
	case FieldSecretKey:
		return c.SecretKey
	case FieldAPIKey:
		return c.APIKey
	case FieldAPISecret:
		return c.APISecret
	case FieldAccessToken:
		return c.AccessToken
	case FieldClientID:
		return c.ClientID
	case FieldClientSecret:
		return c.ClientSecret
	}
	return ""
}

// Has reports whether a logical field is present.
func (c Credentials) Has(f Field) bool {
	return c.Get(f) != ""
}

// Bag converts the record back to a canonical camelCase credential bag,
// omitting absent fields. Used when persisting verified credentials.
func (c Credentials) Bag() map[string]string {
	bag := make(map[string]string)
	for _, field := range Fields {
		if v := c.Get(field); v != "" {
			bag[string(field)] = v
		}
	}
	return bag
}

// identifyingFields are the fields whose presence makes a bag worth probing.
var identifyingFields = []Field{
	FieldPublicKey,
	FieldSecretKey,
	FieldAPIKey,
	FieldAccessToken,
	FieldClientID,
}

// ValidateCredentials is a cheap pre-check used before any network probe: it
// reports whether the bag carries at least one usable credential field. The
// bag is normalized first so that snake_case and SCREAMING_SNAKE_CASE keys
// count the same as camelCase ones.
func ValidateCredentials(bag map[string]string) (bool, string) {
	creds := Normalize(bag)
	for _, field := range identifyingFields {
		if creds.Has(field) {
			return true, "Credenciais informadas"
		}
	}
	return false, "Nenhuma credencial informada. Forneça ao menos uma chave de API"
}
