// Package chatkitsdk is a Go client for the chatkit session service.
//
// The SDKClient covers unauthenticated operations (health probes, session
// issuance, advisory verification). CreateSession returns a Session which
// carries the issued token and subject and exposes the authenticated
// surface: conversation storage and usage analytics.
//
//	client := chatkitsdk.NewSDKClient("http://localhost:8080")
//	session, err := client.CreateSession(ctx, providerJWT)
//	if err != nil { ... }
//	err = session.PutConversation(ctx, "conv-1", payload)
package chatkitsdk
