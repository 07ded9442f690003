package paguex

import (
	"encoding/base64"

	"github.com/syncads/paydetect/gateway"
)

const testEndpoint = "https://api.inpagamentos.com/v1/transactions?limit=1"

// Descriptor returns the Pague-X gateway definition. Pague-X authenticates
// with HTTP Basic over the public/secret key pair; listing a single
// transaction is the cheapest read-only call that requires valid keys.
func Descriptor() gateway.Descriptor {
	return gateway.Descriptor{
		Slug:         "paguex",
		Name:         "Pague-X",
		Type:         gateway.TypePaymentProcessor,
		TestEndpoint: testEndpoint,
		AuthType:     gateway.AuthBasic,
		RequiredFields: []gateway.Field{
			gateway.FieldPublicKey,
			gateway.FieldSecretKey,
		},
		Capabilities: gateway.Capabilities{
			Pix:        true,
			CreditCard: true,
			DebitCard:  true,
			Boleto:     true,
		},
		Priority:  10,
		BuildAuth: buildAuth,
	}
}

func buildAuth(c gateway.Credentials) (string, string) {
	token := base64.StdEncoding.EncodeToString([]byte(c.PublicKey + ":" + c.SecretKey))
	return "Authorization", "Basic " + token
}
