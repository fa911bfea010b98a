/*
Package baas is a client for the BaaS IoT platform HTTP API.

Every request carries an authCode header proving that the caller knows the
access key of its access ID. The code binds the access ID, a nonce, a
millisecond timestamp, the HTTP method and the path and query parameters of
the request (see package authcode for the algorithm).

Create a client from a Config and call one of the generated operation methods.
Parameters are passed as a Params map keyed by the documented parameter name;
each operation knows which of them go to the path, the query string, the
headers, the JSON body or the url-encoded form.

	client, err := baas.NewClient(baas.Config{
		AccessID:  "EUqV2yIU",
		AccessKey: os.Getenv("BAAS_ACCESS_KEY"),
		BaseURL:   "https://baas.example.com/baasapi",
	})
	if err != nil {
		...
	}
	defer client.Close()

	res, err := client.LoginUsingPOST(ctx, baas.Params{
		"appToken":  appToken,
		"loginName": "root",
		"password":  password,
	})
	if err != nil {
		...
	}
	sessionToken := res.SessionToken()

	res, err = client.GetDevicesListUsingGET(ctx, baas.Params{
		"sessionToken": sessionToken,
		"pageNum":      1,
		"pageSize":     10,
	})

A missing required parameter is reported before anything is sent, as an
error wrapping ErrMissingParameter. Only the first missing parameter in
declaration order is reported.

A response with a status outside of 2xx is returned together with a
*ResponseError wrapping the same *Response, so the caller can inspect the
status and the body in both cases:

	res, err := client.GetDevicesByIdUsingGET(ctx, params)
	var resErr *baas.ResponseError
	if errors.As(err, &resErr) {
		log.Printf("status %d: %v", res.Status, res.Body)
	}

The response body is parsed as JSON when possible and kept as text
otherwise. Response.Decode unmarshals the raw bytes into a value of the
caller's choice.

Operations that are not in the generated set can be called through
Client.Do with a hand-made LogicalRequest, or through Client.Call with a
custom *Operation.

The generated methods are produced by cmd/baasgen from the platform's
swagger document:

	go run ./cmd/baasgen generate -o client_gen.go

The HTTP exchange is delegated to a Transport. The default one is backed by
net/http; TLS options (trust anchor and certificate verification) are only
passed to it when the base URL uses https. Use WithTransport to plug in a
different one, CustomClient to reuse an existing *http.Client. Closing the
client cancels the requests of the default transport that are still in
flight.

Debug tracing goes to a zap logger at debug level. Secrets never reach the
log: the signature part of an authCode is redacted, session tokens and the
password and appToken of the login form are masked, and the access key is
not logged at all.
*/
package baas

//go:generate go run ./cmd/baasgen generate -o client_gen.go -p baas
