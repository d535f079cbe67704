package sfmcp

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCredentialHeaders(t *testing.T) {
	h := Credentials{
		Username:      "user@example.com",
		Password:      "pw",
		SecurityToken: "tok",
	}.headers()
	want := map[string]string{
		"x-sf-username":       "user@example.com",
		"x-sf-password":       "pw",
		"x-sf-security-token": "tok",
		"x-sf-login-url":      DefaultLoginURL,
	}
	if diff := cmp.Diff(want, h); diff != "" {
		t.Fatalf("headers mismatch (-want +got):\n%s", diff)
	}
}

func TestCredentialHeadersSandboxAndSecret(t *testing.T) {
	h := Credentials{
		Username:      "user@example.com",
		Password:      "pw",
		SecurityToken: "tok",
		LoginURL:      "https://test.salesforce.com",
		SecretKey:     "shh",
	}.headers()
	if h["x-sf-login-url"] != "https://test.salesforce.com" {
		t.Fatalf("login url=%q", h["x-sf-login-url"])
	}
	if h["x-secret-key"] != "shh" {
		t.Fatalf("secret key=%q", h["x-secret-key"])
	}
}

func TestCredentialsFromEnv(t *testing.T) {
	t.Setenv("SF_USERNAME", "user@example.com")
	t.Setenv("SF_PASSWORD", "pw")
	t.Setenv("SF_SECURITY_TOKEN", "tok")

	creds, err := CredentialsFromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if creds.Username != "user@example.com" || creds.Password != "pw" || creds.SecurityToken != "tok" {
		t.Fatalf("creds=%+v", creds)
	}
	if creds.LoginURL != DefaultLoginURL {
		t.Fatalf("login url=%q", creds.LoginURL)
	}
	if creds.SecretKey != "" {
		t.Fatalf("secret key=%q", creds.SecretKey)
	}
}

func TestCredentialsFromEnvMissingRequired(t *testing.T) {
	t.Setenv("SF_USERNAME", "")
	t.Setenv("SF_PASSWORD", "")
	t.Setenv("SF_SECURITY_TOKEN", "")

	if _, err := CredentialsFromEnv(); err == nil {
		t.Fatal("expected error for missing credentials")
	}
}
