package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_CaseVariants(t *testing.T) {
	tests := []struct {
		name string
		bag  map[string]string
		want Credentials
	}{
		{
			name: "camelCase keys",
			bag:  map[string]string{"publicKey": "pk", "secretKey": "sk"},
			want: Credentials{PublicKey: "pk", SecretKey: "sk"},
		},
		{
			name: "screaming snake keys",
			bag:  map[string]string{"PUBLIC_KEY": "pk", "ACCESS_TOKEN": "tok"},
			want: Credentials{PublicKey: "pk", AccessToken: "tok"},
		},
		{
			name: "snake_case keys",
			bag:  map[string]string{"api_key": "ak", "client_id": "cid", "client_secret": "cs"},
			want: Credentials{APIKey: "ak", ClientID: "cid", ClientSecret: "cs"},
		},
		{
			name: "mixed conventions",
			bag:  map[string]string{"apiKey": "ak", "SECRET_KEY": "sk", "api_secret": "as"},
			want: Credentials{APIKey: "ak", SecretKey: "sk", APISecret: "as"},
		},
		{
			name: "empty values are absent",
			bag:  map[string]string{"publicKey": "", "secretKey": "   ", "apiKey": "ak"},
			want: Credentials{APIKey: "ak"},
		},
		{
			name: "unknown keys are ignored",
			bag:  map[string]string{"merchantId": "m-1", "token": "t"},
			want: Credentials{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.bag))
		})
	}
}

func TestNormalize_FieldPriority(t *testing.T) {
	// camelCase beats SCREAMING_SNAKE beats snake_case, deterministically.
	bag := map[string]string{
		"publicKey":  "camel",
		"PUBLIC_KEY": "screaming",
		"public_key": "snake",
	}
	assert.Equal(t, "camel", Normalize(bag).PublicKey)

	bag = map[string]string{
		"PUBLIC_KEY": "screaming",
		"public_key": "snake",
	}
	assert.Equal(t, "screaming", Normalize(bag).PublicKey)
}

func TestNormalize_Idempotent(t *testing.T) {
	bag := map[string]string{
		"PUBLIC_KEY":   "pk",
		"secret_key":   "sk",
		"accessToken":  "tok",
		"CLIENT_ID":    "cid",
		"clientSecret": "cs",
	}

	once := Normalize(bag)
	twice := Normalize(once.Bag())
	assert.Equal(t, once, twice)
}

func TestCredentials_Bag_OmitsAbsentFields(t *testing.T) {
	c := Credentials{SecretKey: "sk", APIKey: "ak"}
	assert.Equal(t, map[string]string{"secretKey": "sk", "apiKey": "ak"}, c.Bag())
}

func TestCredentials_HasAndGet(t *testing.T) {
	c := Credentials{AccessToken: "tok"}
	assert.True(t, c.Has(FieldAccessToken))
	assert.Equal(t, "tok", c.Get(FieldAccessToken))
	assert.False(t, c.Has(FieldSecretKey))
	assert.Empty(t, c.Get(FieldSecretKey))
}

func TestValidateCredentials(t *testing.T) {
	tests := []struct {
		name  string
		bag   map[string]string
		valid bool
	}{
		{"empty bag", map[string]string{}, false},
		{"nil bag", nil, false},
		{"only unknown keys", map[string]string{"merchantId": "m-1"}, false},
		{"only apiSecret is not identifying", map[string]string{"apiSecret": "as"}, false},
		{"secret key present", map[string]string{"secretKey": "sk"}, true},
		{"snake_case access token", map[string]string{"access_token": "tok"}, true},
		{"screaming client id", map[string]string{"CLIENT_ID": "cid"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, message := ValidateCredentials(tt.bag)
			assert.Equal(t, tt.valid, valid)
			assert.NotEmpty(t, message)
		})
	}
}
