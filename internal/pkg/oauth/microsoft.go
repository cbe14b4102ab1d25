package oauth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/microsoft"
)

type MicrosoftService interface {
	// GenerateState generates a random state string for OAuth2 flows.
	GenerateState(userAgent string) string
	// RedirectURL generates the OAuth2 redirect URL with a state.
	RedirectURL(state string) string
	// VerifyToken exchanges the code for an OAuth2 token.
	VerifyToken(ctx context.Context, code string) (*oauth2.Token, error)
	// Config exposes the underlying oauth2 config for Graph clients.
	Config() *oauth2.Config
}

type MicrosoftServiceImpl struct {
	config *oauth2.Config
}

func NewMicrosoftService(clientID string, clientSecret string, tenantID string, redirectURL string, scopes []string) MicrosoftService {
	config := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes:       scopes,
		Endpoint:     microsoft.AzureADEndpoint(tenantID),
	}
	return &MicrosoftServiceImpl{config: config}
}

// GenerateState generates a random state string for OAuth2 flows.
func (m *MicrosoftServiceImpl) GenerateState(userAgent string) string {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return ""
	}
	state := fmt.Sprintf("%s.%s", base64.URLEncoding.EncodeToString(b), userAgent)
	return base64.URLEncoding.EncodeToString([]byte(state))
}

func (m *MicrosoftServiceImpl) RedirectURL(state string) string {
	return m.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

func (m *MicrosoftServiceImpl) VerifyToken(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := m.config.Exchange(ctx, code)
	if err != nil {
		return &oauth2.Token{}, err
	}
	return token, nil
}

func (m *MicrosoftServiceImpl) Config() *oauth2.Config {
	return m.config
}
