// Package paydetect identifies which payment gateway a bag of API credentials
// belongs to, by probing each supported gateway's API with a cheap
// authenticated request.
//
// # Overview
//
// Merchants paste credentials copied from a gateway dashboard without saying
// which gateway issued them, and different gateways hand out keys under
// different names (secretKey, SECRET_KEY, access_token, ...). PayDetect
// normalizes those bags into a canonical record and tests them against each
// supported gateway in a fixed order, returning the first gateway that
// accepts them together with its payment capabilities.
//
// # Architecture
//
//	┌─────────────────┐    ┌─────────────────┐    ┌─────────────────┐
//	│                 │    │                 │    │                 │
//	│   Checkout /    │◄──►│   PayDetect     │◄──►│   Payment       │
//	│   Onboarding    │    │   (Detector)    │    │   Gateways      │
//	│                 │    │                 │    │                 │
//	└─────────────────┘    └─────────────────┘    └─────────────────┘
//
// Probes run sequentially, never in parallel: speculative authenticated
// requests against gateways the credentials don't belong to can trip rate
// limits or fraud heuristics on unrelated merchant accounts.
//
// # Supported Gateways
//
//   - PagueX: Brazilian PSP, Basic auth with secret key
//   - Mercado Pago: Bearer access token
//   - PagSeguro: Bearer token (a 400 from its charge endpoint still proves
//     the token is valid)
//   - Stripe: Bearer secret key
//   - Asaas: custom access_token header
//
// # Quick Start
//
// Library usage:
//
//	registry := gateway.Default() // needs the adapter packages imported
//	detector := gateway.NewDetector(registry)
//
//	result := detector.AutoDetect(ctx, map[string]string{
//		"secretKey": "sk_live_...",
//	})
//	if result.Success {
//		fmt.Println("detected:", result.Gateway.Slug)
//	}
//
// The cmd package wraps the same detector in a small REST API with tenant
// credential storage.
package paydetect
