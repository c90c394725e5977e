package services

import (
	"errors"
	"log"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"tournament-hub/models"
	"tournament-hub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TournamentService struct {
	DB *gorm.DB
}

func NewTournamentService(db *gorm.DB) *TournamentService {
	return &TournamentService{DB: db}
}

func (s *TournamentService) CreateTournament(c *fiber.Ctx) error {
	userID, err := subjectID(c)
	if err != nil {
		return respondError(c, err)
	}

	var req struct {
		Name          string `json:"name"`
		Kind          string `json:"type"`
		MaxTeams      int    `json:"maxTeams"`
		StartDateTime string `json:"startDateTime"`
	}
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		req.Name = c.FormValue("name")
		req.Kind = c.FormValue("type")
		req.StartDateTime = c.FormValue("startDateTime")
		if v := c.FormValue("maxTeams"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				return respondError(c, badRequest("maxTeams must be a non-negative integer"))
			}
			req.MaxTeams = n
		}
	} else if err := c.BodyParser(&req); err != nil {
		return respondError(c, badRequest("Invalid request body"))
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return respondError(c, badRequest("name is required"))
	}
	kind, ok := models.NormalizeKind(req.Kind)
	if !ok {
		return respondError(c, badRequest("type must be one of solo, duo, trio"))
	}
	if req.MaxTeams < 0 {
		return respondError(c, badRequest("maxTeams must be a non-negative integer"))
	}
	startTime, err := time.Parse(time.RFC3339, req.StartDateTime)
	if err != nil {
		return respondError(c, badRequest("invalid startDateTime (use RFC3339)"))
	}

	// The subject comes from a verified token, but the row can still have
	// vanished since the token was issued.
	var owner models.User
	if err := s.DB.First(&owner, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, notFound("User not found"))
		}
		return respondError(c, err)
	}

	var bannerURL string
	if banner, err := c.FormFile("banner"); err == nil && banner.Size > 0 {
		if !utils.R2Enabled() {
			log.Printf("⚠️  banner upload skipped: R2 storage is not configured")
		} else {
			ext := filepath.Ext(banner.Filename)
			if ext == "" {
				ext = ".jpg"
			}
			key := "tournaments/banners/" + uuid.NewString() + ext
			url, err := utils.UploadFileToR2(banner, key)
			if err != nil {
				return respondError(c, err)
			}
			bannerURL = url
		}
	}

	tournament := models.Tournament{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Slug:        slug.Make(req.Name),
		Kind:        kind,
		MaxTeams:    req.MaxTeams,
		StartTime:   startTime,
		BannerURL:   bannerURL,
		CreatedByID: owner.ID,
	}
	if err := s.DB.Create(&tournament).Error; err != nil {
		return respondError(c, err)
	}

	if err := s.DB.Preload("CreatedBy").First(&tournament, "id = ?", tournament.ID).Error; err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(tournament)
}

func (s *TournamentService) GetAllTournaments(c *fiber.Ctx) error {
	var tournaments []models.Tournament
	if err := s.DB.Preload("CreatedBy").
		Order("created_at DESC").
		Find(&tournaments).Error; err != nil {
		return respondError(c, err)
	}
	return c.JSON(tournaments)
}

func (s *TournamentService) DeleteTournament(c *fiber.Ctx) error {
	tournamentID := c.Params("id")
	userID, err := subjectID(c)
	if err != nil {
		return respondError(c, err)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var tournament models.Tournament
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&tournament, "id = ?", tournamentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("Tournament not found")
			}
			return err
		}

		if err := requireOwner(tournament.CreatedByID, userID, "Not authorized to delete this tournament"); err != nil {
			return err
		}

		return CascadeDeleteTournament(tx, tournamentID)
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Tournament deleted successfully"})
}

// CascadeDeleteTournament removes a tournament together with its teams and
// their membership records. Shared by the delete endpoint and the retention
// sweeper so orphaned teams can never appear.
func CascadeDeleteTournament(tx *gorm.DB, tournamentID string) error {
	var teamIDs []string
	if err := tx.Model(&models.Team{}).
		Where("tournament_id = ?", tournamentID).
		Pluck("id", &teamIDs).Error; err != nil {
		return err
	}
	if len(teamIDs) > 0 {
		if err := tx.Where("team_id IN ?", teamIDs).Delete(&models.TeamMember{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id IN ?", teamIDs).Delete(&models.Team{}).Error; err != nil {
			return err
		}
	}
	return tx.Delete(&models.Tournament{}, "id = ?", tournamentID).Error
}
