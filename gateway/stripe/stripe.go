package stripe

import "github.com/syncads/paydetect/gateway"

const testEndpoint = "https://api.stripe.com/v1/balance"

// Descriptor returns the Stripe gateway definition. Reading the account
// balance is side-effect free and succeeds only with a valid secret key.
func Descriptor() gateway.Descriptor {
	return gateway.Descriptor{
		Slug:         "stripe",
		Name:         "Stripe",
		Type:         gateway.TypePaymentProcessor,
		TestEndpoint: testEndpoint,
		AuthType:     gateway.AuthBearer,
		RequiredFields: []gateway.Field{
			gateway.FieldSecretKey,
		},
		Capabilities: gateway.Capabilities{
			Pix:        false,
			CreditCard: true,
			DebitCard:  true,
			Boleto:     false,
		},
		Priority:  40,
		BuildAuth: buildAuth,
	}
}

func buildAuth(c gateway.Credentials) (string, string) {
	return "Authorization", "Bearer " + c.SecretKey
}
