package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"volunteerhub/core/config"
	"volunteerhub/core/errors"
	"volunteerhub/core/logger"
	"volunteerhub/core/utils"
	"volunteerhub/modules/auth/dto"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// oauthStateTTL bounds how long a consent-screen visit stays redeemable.
const oauthStateTTL = 10 * time.Minute

// googleUserInfo is the subset of the userinfo payload we consume
type googleUserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func googleOAuthConfig() (*oauth2.Config, *errors.AppError) {
	cfg, ok := config.GetSafe()
	if !ok || cfg.GoogleAPI.ClientID == "" || cfg.GoogleAPI.ClientSecret == "" {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Google sign-in is not configured", nil)
	}

	return &oauth2.Config{
		ClientID:     cfg.GoogleAPI.ClientID,
		ClientSecret: cfg.GoogleAPI.ClientSecret,
		RedirectURL:  cfg.GoogleAPI.RedirectURI,
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
	}, nil
}

// GoogleLoginURL builds the consent-screen URL for Google sign-in. The state
// token is stored for later callback validation.
func (s *AuthService) GoogleLoginURL(ctx context.Context) (string, *errors.AppError) {
	oauthCfg, appErr := googleOAuthConfig()
	if appErr != nil {
		return "", appErr
	}

	state := utils.GenerateRandomString(24)
	if err := s.cache.StoreOAuthState(ctx, state, oauthStateTTL); err != nil {
		logger.Error("AuthService:GoogleLoginURL:StoreOAuthState:Error:", err)
		return "", errors.NewAppError(errors.ErrInternalServer, "Failed to store state token", err)
	}

	return oauthCfg.AuthCodeURL(state, oauth2.AccessTypeOnline), nil
}

// GoogleCallback validates the CSRF state token, exchanges the authorization
// code, fetches the Google profile and signs the matching admin in. An admin
// whose email matches an existing account gets the Google identity linked;
// unknown emails are rejected because NGO registration collects more than a
// Google profile.
func (s *AuthService) GoogleCallback(ctx context.Context, code, state string) (*dto.AuthResponse, *errors.AppError) {
	oauthCfg, appErr := googleOAuthConfig()
	if appErr != nil {
		return nil, appErr
	}

	valid, err := s.cache.ConsumeOAuthState(ctx, state)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to validate state token", err)
	}
	if !valid {
		return nil, errors.NewAppError(errors.ErrUnauthorized,
			"Invalid or expired state token, restart the Google sign-in flow", nil)
	}

	token, err := oauthCfg.Exchange(ctx, code)
	if err != nil {
		logger.Error("AuthService:GoogleCallback:Exchange:Error:", err)
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Failed to exchange Google authorization code", err)
	}

	info, err := fetchGoogleUserInfo(ctx, oauthCfg, token)
	if err != nil {
		logger.Error("AuthService:GoogleCallback:FetchUserInfo:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to fetch Google profile", err)
	}

	admin, err := s.repo.GetAdminByGoogleID(ctx, info.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to look up account", err)
	}

	if admin == nil {
		admin, err = s.repo.GetAdminByEmail(ctx, info.Email)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to look up account", err)
		}
		if admin == nil {
			return nil, errors.NewAppError(errors.ErrNotFound,
				"No account exists for this Google identity, register the NGO first", nil)
		}
		if linkErr := s.repo.LinkGoogleID(ctx, admin.ID, info.ID); linkErr != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to link Google identity", linkErr)
		}
	}

	return s.issueToken(admin)
}

func fetchGoogleUserInfo(ctx context.Context, oauthCfg *oauth2.Config, token *oauth2.Token) (*googleUserInfo, error) {
	client := oauthCfg.Client(ctx, token)
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var info googleUserInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, err
	}
	if info.ID == "" || info.Email == "" {
		return nil, fmt.Errorf("incomplete userinfo payload")
	}

	return &info, nil
}
