// Package bitly is a client for the Bitly v4 API.
//
// A Client groups the endpoints into services: Bitlinks, CustomBitlinks,
// Groups, Organizations, Users, Campaigns, Channels, BSDs, Webhooks and
// Apps. Each call sends the bearer token and returns a typed result.
// Responses with no body, such as 204, yield a nil result and a nil error.
//
// # Basic Usage
//
//	client, err := bitly.New(os.Getenv("BITLY_ACCESS_TOKEN"))
//	if err != nil {
//	    return err
//	}
//	link, err := client.Bitlinks().Shorten(ctx, "https://example.com/long")
//
// # Configuration
//
//	cfg, err := bitly.LoadConfig()
//	client, err := bitly.NewFromConfig(*cfg)
//
// LoadConfig reads config.yml, .env and BITLY_* variables.
//
// # Errors
//
// Rejected responses are returned as *Error, carrying the status and the
// decoded error envelope. Transport failures are *httpclient.Error.
//
//	if bitly.IsNotFound(err) { ... }
//
// Use package bitlytest for an in-process fake of the API in tests.
package bitly
