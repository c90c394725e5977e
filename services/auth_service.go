package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"tournament-hub/models"
	"tournament-hub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

const (
	discordAuthURL  = "https://discord.com/api/oauth2/authorize"
	discordTokenURL = "https://discord.com/api/oauth2/token"
	discordUserURL  = "https://discord.com/api/users/@me"
)

// AuthService exchanges a Discord authorization code for a session token.
// The provider access token is used once to fetch the profile and is never
// persisted.
type AuthService struct {
	DB     *gorm.DB
	Tokens *utils.TokenService
	OAuth  *oauth2.Config
}

func NewAuthService(db *gorm.DB, tokens *utils.TokenService, clientID, clientSecret, redirectURI string) *AuthService {
	return &AuthService{
		DB:     db,
		Tokens: tokens,
		OAuth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURI,
			Scopes:       []string{"identify", "email"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  discordAuthURL,
				TokenURL: discordTokenURL,
			},
		},
	}
}

type discordProfile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	Email    string `json:"email"`
}

func (s *AuthService) ExchangeToken(c *fiber.Ctx) error {
	var req struct {
		Code        string `json:"code"`
		RedirectURI string `json:"redirect_uri"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, badRequest("Invalid request body"))
	}
	if req.Code == "" {
		return respondError(c, badRequest("Missing authorization code"))
	}

	cfg := s.OAuth
	if req.RedirectURI != "" {
		override := *cfg
		override.RedirectURL = req.RedirectURI
		cfg = &override
	}
	if cfg.RedirectURL == "" {
		log.Printf("❌ [AUTH] DISCORD_REDIRECT_URI is not configured and no redirect_uri was supplied")
		return respondError(c, errors.New("missing redirect URI"))
	}

	ctx := context.WithValue(c.Context(), oauth2.HTTPClient, utils.HTTPClient)
	oauthToken, err := cfg.Exchange(ctx, req.Code)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			msg := retrieveErr.ErrorDescription
			if msg == "" {
				msg = retrieveErr.ErrorCode
			}
			if msg == "" {
				msg = "authorization code exchange failed"
			}
			return respondError(c, badRequest(msg))
		}
		return respondError(c, fmt.Errorf("discord token exchange: %w", err))
	}

	profile, err := s.fetchProfile(ctx, cfg, oauthToken)
	if err != nil {
		return respondError(c, err)
	}

	user, err := s.upsertUser(profile)
	if err != nil {
		return respondError(c, err)
	}

	token, err := s.Tokens.Generate(user)
	if err != nil {
		return respondError(c, err)
	}

	userView := fiber.Map{
		"discordId": user.DiscordID,
		"username":  user.Username,
		"avatar":    user.Avatar,
	}
	if user.Email != nil {
		userView["email"] = *user.Email
	}
	return c.JSON(fiber.Map{
		"message": "Authentication successful",
		"user":    userView,
		"token":   token,
	})
}

// Logout exists for frontend symmetry. Sessions live entirely in the signed
// token, so the server has nothing to tear down; the client discards its copy.
func (s *AuthService) Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}

func (s *AuthService) fetchProfile(ctx context.Context, cfg *oauth2.Config, token *oauth2.Token) (*discordProfile, error) {
	client := cfg.Client(ctx, token)
	resp, err := client.Get(discordUserURL)
	if err != nil {
		return nil, fmt.Errorf("discord profile fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("discord profile fetch: unexpected status %d", resp.StatusCode)
	}

	var profile discordProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("discord profile decode: %w", err)
	}
	if profile.ID == "" {
		return nil, fmt.Errorf("discord profile is missing an id")
	}
	return &profile, nil
}

// upsertUser finds or creates the user keyed by Discord id. Username and
// avatar are refreshed on every login; email is written once and never
// overwritten afterwards.
func (s *AuthService) upsertUser(profile *discordProfile) (*models.User, error) {
	var user models.User
	err := s.DB.First(&user, "discord_id = ?", profile.ID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{
			ID:        uuid.NewString(),
			DiscordID: profile.ID,
			Username:  profile.Username,
			Avatar:    profile.Avatar,
		}
		if profile.Email != "" {
			user.Email = &profile.Email
		}
		if err := s.DB.Create(&user).Error; err != nil {
			return nil, err
		}
		log.Printf("✅ [AUTH] New user registered: %s (discord %s)", user.Username, user.DiscordID)
		return &user, nil
	}
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"username":   profile.Username,
		"avatar":     profile.Avatar,
		"updated_at": time.Now(),
	}
	if user.Email == nil && profile.Email != "" {
		updates["email"] = profile.Email
		user.Email = &profile.Email
	}
	if err := s.DB.Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}
	user.Username = profile.Username
	user.Avatar = profile.Avatar
	return &user, nil
}
