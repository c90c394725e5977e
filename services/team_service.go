package services

import (
	"errors"
	"strings"
	"time"

	"tournament-hub/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TeamService owns every mutation of teams and the membership ledger.
// Capacity and one-team-per-tournament checks run inside a transaction that
// locks the parent row, so two concurrent joins cannot both observe a free
// slot; the composite key on team_members backstops duplicate joins.
type TeamService struct {
	DB *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{DB: db}
}

type teamMemberView struct {
	ID        string    `json:"id"`
	DiscordID string    `json:"discord_id"`
	Username  string    `json:"username"`
	Avatar    string    `json:"avatar,omitempty"`
	JoinedAt  time.Time `json:"joined_at"`
}

func (s *TeamService) CreateTeam(c *fiber.Ctx) error {
	tournamentID := c.Params("tournamentId")
	userID, err := subjectID(c)
	if err != nil {
		return respondError(c, err)
	}

	var body struct {
		TeamName string `json:"teamName"`
	}
	if err := c.BodyParser(&body); err != nil {
		return respondError(c, badRequest("Invalid request body"))
	}
	body.TeamName = strings.TrimSpace(body.TeamName)
	if body.TeamName == "" {
		return respondError(c, badRequest("teamName is required"))
	}

	team := models.Team{
		ID:           uuid.NewString(),
		Name:         body.TeamName,
		TournamentID: tournamentID,
		CreatedByID:  userID,
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

		var existing int64
		if err := tx.Model(&models.TeamMember{}).
			Joins("JOIN teams ON teams.id = team_members.team_id").
			Where("teams.tournament_id = ? AND team_members.user_id = ?", tournamentID, userID).
			Count(&existing).Error; err != nil {
			return err
		}

		var teamCount int64
		if err := tx.Model(&models.Team{}).
			Where("tournament_id = ?", tournamentID).
			Count(&teamCount).Error; err != nil {
			return err
		}

		if err := validateTeamCreation(&tournament, teamCount, existing > 0); err != nil {
			return err
		}

		if err := tx.Create(&team).Error; err != nil {
			return err
		}
		return tx.Create(&models.TeamMember{TeamID: team.ID, UserID: userID}).Error
	})
	if err != nil {
		return respondError(c, err)
	}

	populated, err := s.loadTeam(team.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(populated)
}

func (s *TeamService) JoinTeam(c *fiber.Ctx) error {
	teamID := c.Params("teamId")
	userID, err := subjectID(c)
	if err != nil {
		return respondError(c, err)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var team models.Team
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&team, "id = ?", teamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("Team not found")
			}
			return err
		}

		var tournament models.Tournament
		if err := tx.First(&tournament, "id = ?", team.TournamentID).Error; err != nil {
			return err
		}

		var memberCount int64
		if err := tx.Model(&models.TeamMember{}).
			Where("team_id = ?", teamID).
			Count(&memberCount).Error; err != nil {
			return err
		}

		var alreadyMember int64
		if err := tx.Model(&models.TeamMember{}).
			Where("team_id = ? AND user_id = ?", teamID, userID).
			Count(&alreadyMember).Error; err != nil {
			return err
		}

		var inOtherTeam int64
		if err := tx.Model(&models.TeamMember{}).
			Joins("JOIN teams ON teams.id = team_members.team_id").
			Where("teams.tournament_id = ? AND team_members.user_id = ? AND team_members.team_id <> ?",
				team.TournamentID, userID, teamID).
			Count(&inOtherTeam).Error; err != nil {
			return err
		}

		if err := validateJoin(&tournament, memberCount, alreadyMember > 0, inOtherTeam > 0); err != nil {
			return err
		}

		return tx.Create(&models.TeamMember{TeamID: teamID, UserID: userID}).Error
	})
	if err != nil {
		return respondError(c, err)
	}

	populated, err := s.loadTeam(teamID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(populated)
}

func (s *TeamService) LeaveTeam(c *fiber.Ctx) error {
	teamID := c.Params("teamId")
	userID, err := subjectID(c)
	if err != nil {
		return respondError(c, err)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var team models.Team
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&team, "id = ?", teamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("Team not found")
			}
			return err
		}

		if err := validateLeave(&team, userID); err != nil {
			return err
		}

		// Deleting an absent membership is a successful no-op.
		return tx.Where("team_id = ? AND user_id = ?", teamID, userID).
			Delete(&models.TeamMember{}).Error
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Successfully left team"})
}

func (s *TeamService) RemoveMember(c *fiber.Ctx) error {
	teamID := c.Params("teamId")
	memberID := c.Params("memberId")
	userID, err := subjectID(c)
	if err != nil {
		return respondError(c, err)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var team models.Team
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&team, "id = ?", teamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("Team not found")
			}
			return err
		}

		if err := validateRemoval(&team, userID, memberID); err != nil {
			return err
		}

		return tx.Where("team_id = ? AND user_id = ?", teamID, memberID).
			Delete(&models.TeamMember{}).Error
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Member removed successfully"})
}

func (s *TeamService) DeleteTeam(c *fiber.Ctx) error {
	teamID := c.Params("teamId")
	userID, err := subjectID(c)
	if err != nil {
		return respondError(c, err)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var team models.Team
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&team, "id = ?", teamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("Team not found")
			}
			return err
		}

		if err := requireOwner(team.CreatedByID, userID, "Only team creator can delete the team"); err != nil {
			return err
		}

		if err := tx.Where("team_id = ?", teamID).Delete(&models.TeamMember{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Team{}, "id = ?", teamID).Error
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Team deleted successfully"})
}

func (s *TeamService) GetTeamMembers(c *fiber.Ctx) error {
	teamID := c.Params("teamId")

	var team models.Team
	if err := s.DB.First(&team, "id = ?", teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, notFound("Team not found"))
		}
		return respondError(c, err)
	}

	var members []teamMemberView
	if err := s.DB.Model(&models.TeamMember{}).
		Select("users.id, users.discord_id, users.username, users.avatar, team_members.joined_at").
		Joins("JOIN users ON users.id = team_members.user_id").
		Where("team_members.team_id = ?", teamID).
		Order("team_members.joined_at ASC").
		Scan(&members).Error; err != nil {
		return respondError(c, err)
	}
	return c.JSON(members)
}

func (s *TeamService) GetAllTeams(c *fiber.Ctx) error {
	var teams []models.Team
	if err := s.DB.
		Preload("Members").
		Preload("CreatedBy").
		Preload("Tournament").
		Find(&teams).Error; err != nil {
		return respondError(c, err)
	}
	return c.JSON(teams)
}

func (s *TeamService) GetTournamentTeams(c *fiber.Ctx) error {
	tournamentID := c.Params("tournamentId")

	var teams []models.Team
	if err := s.DB.
		Preload("Members").
		Preload("CreatedBy").
		Preload("Tournament").
		Where("tournament_id = ?", tournamentID).
		Find(&teams).Error; err != nil {
		return respondError(c, err)
	}
	return c.JSON(teams)
}

func (s *TeamService) GetTournamentTeamCount(c *fiber.Ctx) error {
	tournamentID := c.Params("tournamentId")

	var count int64
	if err := s.DB.Model(&models.Team{}).
		Where("tournament_id = ?", tournamentID).
		Count(&count).Error; err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"count": count})
}

func (s *TeamService) loadTeam(teamID string) (*models.Team, error) {
	var team models.Team
	if err := s.DB.
		Preload("Members").
		Preload("CreatedBy").
		Preload("Tournament").
		First(&team, "id = ?", teamID).Error; err != nil {
		return nil, err
	}
	return &team, nil
}
