package gateway

// AuthType identifies the authentication scheme an adapter uses against its
// probe endpoint.
type AuthType string

const (
	AuthBasic  AuthType = "basic"
	AuthBearer AuthType = "bearer"
	AuthAPIKey AuthType = "apikey"
	AuthOAuth  AuthType = "oauth"
)

// TypePaymentProcessor is the gateway type of every built-in adapter.
const TypePaymentProcessor = "payment_processor"

// Field names one logical credential field of the normalized credential record.
type Field string

const (
	FieldPublicKey    Field = "publicKey"
	FieldSecretKey    Field = "secretKey"
	FieldAPIKey       Field = "apiKey"
	FieldAPISecret    Field = "apiSecret"
	FieldAccessToken  Field = "accessToken"
	FieldClientID     Field = "clientId"
	FieldClientSecret Field = "clientSecret"
)

// Fields lists every logical credential field in canonical order.
var Fields = []Field{
	FieldPublicKey,
	FieldSecretKey,
	FieldAPIKey,
	FieldAPISecret,
	FieldAccessToken,
	FieldClientID,
	FieldClientSecret,
}

// Capabilities describes which payment methods a gateway supports. The table
// is static per adapter, not derived from the probe response.
type Capabilities struct {
	Pix        bool `json:"pix"`
	CreditCard bool `json:"credit_card"`
	DebitCard  bool `json:"debit_card"`
	Boleto     bool `json:"boleto"`
}

// Info identifies a detected gateway.
type Info struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Descriptor is the static definition of one supported gateway: its identity,
// probe endpoint, authentication scheme and capability set. Descriptors are
// plain values; all probe state lives in the Detector.
type Descriptor struct {
	Slug         string
	Name         string
	Type         string
	TestEndpoint string
	AuthType     AuthType

	// RequiredFields must be non-empty; every probe checks their presence
	// before any network call is made.
	RequiredFields []Field

	Capabilities Capabilities

	// Priority orders descriptors inside a registry; lower probes first.
	Priority int

	// BuildAuth returns the header name and value that authenticate the
	// probe request for this gateway.
	BuildAuth func(Credentials) (string, string)

	// AcceptStatus overrides the default "2xx means valid credentials"
	// rule. PagSeguro needs this: its probe endpoint answers 400 to a
	// well-authenticated request that lacks charge parameters.
	AcceptStatus func(status int) bool
}

// Info returns the identity portion of the descriptor.
func (d Descriptor) Info() Info {
	return Info{Slug: d.Slug, Name: d.Name, Type: d.Type}
}

func (d Descriptor) accepts(status int) bool {
	if d.AcceptStatus != nil {
		return d.AcceptStatus(status)
	}
	return status >= 200 && status < 300
}

// Summary is the public projection of a descriptor used for listing which
// gateways can be configured. It carries no probe internals.
type Summary struct {
	Slug           string   `json:"slug"`
	Name           string   `json:"name"`
	Type           string   `json:"type"`
	AuthType       AuthType `json:"authType"`
	RequiredFields []Field  `json:"requiredFields"`
}

// DetectionResult is the outcome of a single probe attempt or of a full
// auto-detection run. It is constructed fresh per attempt and never mutated
// after being returned. Transport failures and auth rejections share the same
// shape; HTTPStatus is 0 when no status was received from the gateway.
type DetectionResult struct {
	Success      bool          `json:"success"`
	Gateway      *Info         `json:"gateway,omitempty"`
	Message      string        `json:"message"`
	HTTPStatus   int           `json:"httpStatus,omitempty"`
	Capabilities *Capabilities `json:"capabilities,omitempty"`
}
