package asaas

import "github.com/syncads/paydetect/gateway"

const testEndpoint = "https://api.asaas.com/v3/customers?limit=1"

// Descriptor returns the Asaas gateway definition. Asaas does not use the
// Authorization header; the API key travels in a custom access_token header.
func Descriptor() gateway.Descriptor {
	return gateway.Descriptor{
		Slug:         "asaas",
		Name:         "Asaas",
		Type:         gateway.TypePaymentProcessor,
		TestEndpoint: testEndpoint,
		AuthType:     gateway.AuthAPIKey,
		RequiredFields: []gateway.Field{
			gateway.FieldAPIKey,
		},
		Capabilities: gateway.Capabilities{
			Pix:        true,
			CreditCard: true,
			DebitCard:  false,
			Boleto:     true,
		},
		Priority:  50,
		BuildAuth: buildAuth,
	}
}

func buildAuth(c gateway.Credentials) (string, string) {
	return "access_token", c.APIKey
}
