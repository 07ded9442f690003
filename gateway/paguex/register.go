package paguex

import "github.com/syncads/paydetect/gateway"

func init() {
	gateway.Register(Descriptor())
}
