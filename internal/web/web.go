package web

import (
	"errors"
	"io/fs"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html"
	"github.com/google/uuid"

	embedded "github.com/kofikwar/gridiron"
	"github.com/kofikwar/gridiron/internal/config"
	"github.com/kofikwar/gridiron/internal/domain"
	"github.com/kofikwar/gridiron/internal/playcall"
	"github.com/kofikwar/gridiron/internal/season"
	"github.com/kofikwar/gridiron/internal/service"
	"github.com/kofikwar/gridiron/internal/storage"
	"github.com/kofikwar/gridiron/internal/web/webpath"
)

type Server struct {
	game *service.GameService
	app  *fiber.App
	cfg  config.Server
}

func New(game *service.GameService, cfg config.Server) (*Server, error) {
	server := Server{
		game: game,
		cfg:  cfg,
	}

	fsFS, err := fs.Sub(embedded.Views, "views")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(http.FS(fsFS), ".html")
	engine.Reload(cfg.Debug)
	engine.Debug(cfg.Debug)

	app := fiber.New(fiber.Config{
		Views: engine,
	})

	app.Get(webpath.Home, server.handleMain)

	app.Get(webpath.ApiState, server.handleState)
	app.Post(webpath.ApiNewCareer, server.handleNewCareer)
	app.Post(webpath.ApiAdvance, server.handleAdvance)
	app.Post(webpath.ApiSimOffseason, server.handleSimOffseason)
	app.Get(webpath.ApiRankings, server.handleRankings)
	app.Post(webpath.ApiTrain, server.handleTrain)
	app.Post(webpath.ApiSpendSkill, server.handleSpendSkill)
	app.Get(webpath.ApiScout, server.handleScout)
	app.Post(webpath.ApiSignRecruit, server.handleSignRecruit)
	app.Post(webpath.ApiFacility, server.handleUpgradeFacility)
	app.Post(webpath.ApiTransfer, server.handleAcceptTransfer)
	app.Post(webpath.ApiInboxRead, server.handleInboxRead)
	app.Post(webpath.ApiStartGame, server.handleStartGame)
	app.Post(webpath.ApiCallPlay, server.handleCallPlay)
	app.Post(webpath.ApiCheats, server.handleCheats)
	app.Post(webpath.ApiSave, server.handleSave)
	app.Post(webpath.ApiLoad, server.handleLoad)
	server.app = app
	return &server, nil
}

func (s *Server) Serve() error {
	return s.app.Listen(s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port))
}

func (s *Server) handleMain(c *fiber.Ctx) error {
	gs, err := s.game.Snapshot()
	if errors.Is(err, service.ErrNoGame) {
		return c.Render("index", fiber.Map{
			"Path": webpath.Path(),
		})
	}
	if err != nil {
		return apiError(c, err)
	}
	return c.Render("index", fiber.Map{
		"Path":      webpath.Path(),
		"Dashboard": toDashboard(gs),
	})
}

func (s *Server) handleState(c *fiber.Ctx) error {
	gs, err := s.game.Snapshot()
	if err != nil {
		return apiError(c, err)
	}
	return c.JSON(toState(gs))
}

func (s *Server) handleNewCareer(c *fiber.Ctx) error {
	var req newCareerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "malformed request body"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: err.Error()})
	}
	err := s.game.NewCareer(domain.Mode(req.Mode), req.School, req.PlayerName, domain.Position(req.Position))
	if err != nil {
		return apiError(c, err)
	}
	return s.handleState(c)
}

func (s *Server) handleAdvance(c *fiber.Ctx) error {
	note, err := s.game.AdvanceWeek(c.Context())
	if err != nil {
		return apiError(c, err)
	}
	return c.JSON(advanceResponse{Notification: note})
}

func (s *Server) handleSimOffseason(c *fiber.Ctx) error {
	note, err := s.game.SimToOffseason(c.Context())
	if err != nil {
		return apiError(c, err)
	}
	return c.JSON(advanceResponse{Notification: note})
}

func (s *Server) handleRankings(c *fiber.Ctx) error {
	entries, err := s.game.Rankings()
	if err != nil {
		return apiError(c, err)
	}
	return c.JSON(entries)
}

func (s *Server) handleTrain(c *fiber.Ctx) error {
	var req trainRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "malformed request body"})
	}
	playerID, err := uuid.Parse(req.PlayerID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid player id"})
	}
	ok, err := s.game.TrainPlayer(playerID, req.Attribute)
	if err != nil {
		return apiError(c, err)
	}
	return c.JSON(trainResponse{Trained: ok})
}

func (s *Server) handleSpendSkill(c *fiber.Ctx) error {
	var req spendSkillRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "malformed request body"})
	}
	ok, err := s.game.SpendSkillPoint(req.Attribute)
	if err != nil {
		return apiError(c, err)
	}
	return c.JSON(spendSkillResponse{Spent: ok})
}

func (s *Server) handleScout(c *fiber.Ctx) error {
	teamID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid team id"})
	}
	report, err := s.game.ScoutOpponent(c.Context(), teamID)
	if err != nil {
		return apiError(c, err)
	}
	return c.JSON(report)
}

func (s *Server) handleSignRecruit(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid recruit id"})
	}
	if err := s.game.SignRecruit(id); err != nil {
		return apiError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleUpgradeFacility(c *fiber.Ctx) error {
	if err := s.game.UpgradeFacility(c.Params("name")); err != nil {
		return apiError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleAcceptTransfer(c *fiber.Ctx) error {
	teamID, err := uuid.Parse(c.Params("teamId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid team id"})
	}
	if err := s.game.AcceptTransfer(teamID); err != nil {
		return apiError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleInboxRead(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid message id"})
	}
	if err := s.game.MarkInboxRead(id); err != nil {
		return apiError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleStartGame(c *fiber.Ctx) error {
	ag, err := s.game.StartGame()
	if err != nil {
		return apiError(c, err)
	}
	return c.JSON(ag)
}

func (s *Server) handleCallPlay(c *fiber.Ctx) error {
	var req playRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "malformed request body"})
	}
	ag, err := s.game.CallPlay(c.Context(), playcall.Call(req.Call))
	if err != nil {
		return apiError(c, err)
	}
	return c.JSON(ag)
}

func (s *Server) handleCheats(c *fiber.Ctx) error {
	var cheats domain.Cheats
	if err := c.BodyParser(&cheats); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "malformed request body"})
	}
	if err := s.game.SetCheats(cheats); err != nil {
		return apiError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleSave(c *fiber.Ctx) error {
	if err := s.game.Save(); err != nil {
		return apiError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleLoad(c *fiber.Ctx) error {
	if err := s.game.Load(); err != nil {
		return apiError(c, err)
	}
	return s.handleState(c)
}

func apiError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNoGame), errors.Is(err, storage.ErrNoSave):
		c.Status(fiber.StatusNotFound)
	case errors.Is(err, service.ErrNotFound):
		c.Status(fiber.StatusNotFound)
	case errors.Is(err, service.ErrBadRequest):
		c.Status(fiber.StatusBadRequest)
	case errors.Is(err, service.ErrNotEnoughFunds):
		c.Status(fiber.StatusPaymentRequired)
	case errors.Is(err, service.ErrLocked):
		c.Status(fiber.StatusForbidden)
	case errors.Is(err, service.ErrCareerOver),
		errors.Is(err, season.ErrGameInPlay),
		errors.Is(err, season.ErrGameNotOver):
		c.Status(fiber.StatusConflict)
	case errors.Is(err, season.ErrNoUserGame), errors.Is(err, season.ErrNoActiveGame):
		c.Status(fiber.StatusNotFound)
	default:
		c.Status(fiber.StatusInternalServerError)
	}
	return c.JSON(errorResponse{Error: err.Error()})
}
