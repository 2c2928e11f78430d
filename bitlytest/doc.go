// Package bitlytest provides an in-memory fake of the Bitly v4 API for
// tests.
//
//	srv := bitlytest.NewServer()
//	defer srv.Close()
//
//	client, _ := srv.NewClient()
//	link, err := client.Bitlinks().Shorten(ctx, "https://example.com")
//
// The fake implements shorten, expand and bitlink CRUD, the user endpoint
// and webhooks. Other routes answer 404 with the API error envelope unless
// scripted with Handle.
package bitlytest
