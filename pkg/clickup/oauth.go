package clickup

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"golang.org/x/oauth2"
)

// AuthCodeURL builds the browser authorization URL. The redirect URI must
// match the one pre-registered with ClickUp for the client ID.
func AuthCodeURL(clientID, redirectURI, state string) string {
	params := url.Values{}
	params.Set("client_id", clientID)
	params.Set("redirect_uri", redirectURI)
	if state != "" {
		params.Set("state", state)
	}
	return fmt.Sprintf("%s?%s", AuthorizeURL, params.Encode())
}

// ExchangeCode trades an authorization code for an access token at the
// ClickUp token endpoint. A rejected exchange surfaces as
// TokenExchangeError with the provider's status and body.
func (c *Client) ExchangeCode(ctx context.Context, clientID, clientSecret, code, redirectURI string) (string, error) {
	conf := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURI,
		Endpoint: oauth2.Endpoint{
			AuthURL:   AuthorizeURL,
			TokenURL:  c.baseURL + "/oauth/token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	tok, err := conf.Exchange(ctx, code)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			return "", &TokenExchangeError{
				Status: retrieveErr.Response.StatusCode,
				Body:   string(retrieveErr.Body),
			}
		}
		return "", &RequestError{Body: fmt.Sprintf("failed to exchange OAuth code: %v", err)}
	}

	return tok.AccessToken, nil
}
