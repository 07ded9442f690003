package mercadopago

import "github.com/syncads/paydetect/gateway"

const testEndpoint = "https://api.mercadopago.com/v1/account/settings"

// Descriptor returns the Mercado Pago gateway definition. The account
// settings endpoint answers any request carrying a valid access token.
func Descriptor() gateway.Descriptor {
	return gateway.Descriptor{
		Slug:         "mercadopago",
		Name:         "Mercado Pago",
		Type:         gateway.TypePaymentProcessor,
		TestEndpoint: testEndpoint,
		AuthType:     gateway.AuthBearer,
		RequiredFields: []gateway.Field{
			gateway.FieldAccessToken,
		},
		Capabilities: gateway.Capabilities{
			Pix:        true,
			CreditCard: true,
			DebitCard:  false,
			Boleto:     true,
		},
		Priority:  20,
		BuildAuth: buildAuth,
	}
}

func buildAuth(c gateway.Credentials) (string, string) {
	return "Authorization", "Bearer " + c.AccessToken
}
