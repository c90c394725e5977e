package services

import (
	"errors"

	"tournament-hub/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// GetMe resolves the subject against the database rather than trusting the
// token's display data, so the server stays the source of truth for the
// profile.
func (s *UserService) GetMe(c *fiber.Ctx) error {
	userID, err := subjectID(c)
	if err != nil {
		return respondError(c, err)
	}

	var user models.User
	if err := s.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, notFound("User not found"))
		}
		return respondError(c, err)
	}

	res := fiber.Map{
		"discordId": user.DiscordID,
		"username":  user.Username,
		"avatar":    user.Avatar,
	}
	if user.Email != nil {
		res["email"] = *user.Email
	}
	return c.JSON(res)
}
