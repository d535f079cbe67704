package sfmcp

import (
	"fmt"

	"github.com/joeshaw/envdecode"
)

// DefaultLoginURL is used when Credentials.LoginURL is empty. Sandbox orgs
// use https://test.salesforce.com.
const DefaultLoginURL = "https://login.salesforce.com"

// Credentials is the Salesforce credential set the server expects as
// request headers. The values are opaque to this package and forwarded
// verbatim.
type Credentials struct {
	Username      string `env:"SF_USERNAME,required"`
	Password      string `env:"SF_PASSWORD,required"`
	SecurityToken string `env:"SF_SECURITY_TOKEN,required"`
	LoginURL      string `env:"SF_LOGIN_URL,default=https://login.salesforce.com"`

	// SecretKey sets the x-secret-key header for servers that require their
	// own shared-secret authentication on top of the Salesforce login.
	SecretKey string `env:"SFMCP_SECRET_KEY"`
}

// CredentialsFromEnv decodes Credentials from SF_* environment variables.
func CredentialsFromEnv() (Credentials, error) {
	var c Credentials
	if err := envdecode.Decode(&c); err != nil {
		return Credentials{}, fmt.Errorf("sfmcp: credentials from env: %w", err)
	}
	return c, nil
}

func (c Credentials) headers() map[string]string {
	loginURL := c.LoginURL
	if loginURL == "" {
		loginURL = DefaultLoginURL
	}
	h := map[string]string{
		"x-sf-username":       c.Username,
		"x-sf-password":       c.Password,
		"x-sf-security-token": c.SecurityToken,
		"x-sf-login-url":      loginURL,
	}
	if c.SecretKey != "" {
		h["x-secret-key"] = c.SecretKey
	}
	return h
}
