package google

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/moneypal/moneypal/internal/config"
	"github.com/moneypal/moneypal/internal/kv"
	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
)

// ErrUnauthenticated means no Google account is connected yet.
var ErrUnauthenticated = errors.New("google: not authenticated")

const (
	tokenKey = "google_drive_token"
	nonceKey = "google_drive_nonce"
)

type authRedirect struct {
	RedirectUrl string `json:"redirectUrl"`
}

// Auth owns the OAuth flow for the Drive integration. The single user's
// token lives in the key-value layer.
type Auth struct {
	kv          kv.Store
	oauthConfig *oauth2.Config
}

func NewAuth(kvStore kv.Store, cfg config.Application) *Auth {
	oauthConfig := &oauth2.Config{
		ClientID:     cfg.Google.ClientId,
		ClientSecret: cfg.Google.ClientSecret,
		Endpoint:     google.Endpoint,
		RedirectURL:  cfg.Host + "/api/integrations/google/auth/callback",
		Scopes:       []string{drive.DriveFileScope},
	}
	return &Auth{kv: kvStore, oauthConfig: oauthConfig}
}

func (g *Auth) OAuthLogin(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	stateNonce := uuid.New().String()
	finalUrl := r.URL.Query().Get("finalUrl")

	if err := g.kv.Set(r.Context(), nonceKey, []byte(stateNonce)); err != nil {
		log.Errorf("failed to store Google auth nonce: %v", err)
		http.Error(w, "Failed to handle Google authentication", http.StatusInternalServerError)
		return
	}

	log.Tracef("Redirecting to Google auth URL with nonce: %s", stateNonce)
	u := g.oauthConfig.AuthCodeURL(finalUrl+"|"+stateNonce, oauth2.AccessTypeOffline, oauth2.ApprovalForce)

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(authRedirect{RedirectUrl: u}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (g *Auth) OAuthCallback(w http.ResponseWriter, r *http.Request) {
	code := r.FormValue("code")
	state := r.FormValue("state")

	parts := strings.SplitN(state, "|", 2)
	if len(parts) != 2 {
		http.Error(w, "invalid state", http.StatusBadRequest)
		return
	}
	finalUrl := parts[0]
	nonce := parts[1]

	stored, found, err := g.kv.Get(r.Context(), nonceKey)
	if err != nil || !found || string(stored) != nonce {
		log.Errorf("Google auth nonce mismatch")
		http.Redirect(w, r, finalUrl+"?success=false", http.StatusFound)
		return
	}

	token, err := g.oauthConfig.Exchange(r.Context(), code)
	if err != nil {
		err := fmt.Errorf("unable to exchange code for token: %v", err)
		log.Error(err)
		http.Redirect(w, r, finalUrl+"?success=false", http.StatusFound)
		return
	}

	value, err := json.Marshal(token)
	if err != nil {
		log.Errorf("unable to encode Google auth token: %v", err)
		http.Redirect(w, r, finalUrl+"?success=false", http.StatusFound)
		return
	}
	if err := g.kv.Set(r.Context(), tokenKey, value); err != nil {
		log.Errorf("unable to store Google auth token: %v", err)
		http.Redirect(w, r, finalUrl+"?success=false", http.StatusFound)
		return
	}

	log.Debug("Successfully stored Google auth token")
	http.Redirect(w, r, finalUrl+"?success=true", http.StatusFound)
}

func (g *Auth) OAuthLogout(w http.ResponseWriter, r *http.Request) {
	if err := g.kv.Delete(r.Context(), tokenKey); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (g *Auth) getClient(ctx context.Context) (*http.Client, error) {
	value, found, err := g.kv.Get(ctx, tokenKey)
	if err != nil {
		return nil, fmt.Errorf("unable to read Google auth token: %w", err)
	}
	if !found {
		return nil, ErrUnauthenticated
	}
	var token oauth2.Token
	if err := json.Unmarshal(value, &token); err != nil {
		return nil, fmt.Errorf("stored Google auth token is corrupt: %w", err)
	}
	return g.oauthConfig.Client(ctx, &token), nil
}
