package pagseguro

import "github.com/syncads/paydetect/gateway"

func init() {
	gateway.Register(Descriptor())
}
