package pagseguro

import (
	"net/http"

	"github.com/syncads/paydetect/gateway"
)

const testEndpoint = "https://api.pagseguro.com/charges"

// Descriptor returns the PagSeguro gateway definition.
func Descriptor() gateway.Descriptor {
	return gateway.Descriptor{
		Slug:         "pagseguro",
		Name:         "PagSeguro",
		Type:         gateway.TypePaymentProcessor,
		TestEndpoint: testEndpoint,
		AuthType:     gateway.AuthBearer,
		RequiredFields: []gateway.Field{
			gateway.FieldAPIKey,
		},
		Capabilities: gateway.Capabilities{
			Pix:        true,
			CreditCard: true,
			DebitCard:  true,
			Boleto:     true,
		},
		Priority:     30,
		BuildAuth:    buildAuth,
		AcceptStatus: acceptStatus,
	}
}

func buildAuth(c gateway.Credentials) (string, string) {
	return "Authorization", "Bearer " + c.APIKey
}

// acceptStatus treats 400 as proof of valid credentials: the charges endpoint
// requires charge parameters the probe does not send, so an authenticated
// request fails validation with 400 while a bad key gets 401/403.
func acceptStatus(status int) bool {
	if status >= 200 && status < 300 {
		return true
	}
	return status == http.StatusBadRequest
}
