/*
Package casaissdk holds the wire types of the casais API and a small client
for it.

The server decodes every request body into the types declared here and
encodes every response from them, so the SDK and the service cannot drift.

	client := casaissdk.NewClient("http://localhost:2000")

	if err := client.Register(ctx, casaissdk.Credentials{Username: "ana", Password: "x"}); err != nil {
		return err
	}
	login, err := client.Login(ctx, casaissdk.Credentials{Username: "ana", Password: "x"})
	if err != nil {
		return err
	}

	session := client.WithToken(login.Token)
	page, err := session.ListCasais(ctx, casaissdk.ListQuery{Search: "silva", Page: 2})

Failed calls return an *APIError carrying the HTTP status and the server's
errorMessage, so callers can use errors.As to branch on the status.
*/
package casaissdk
