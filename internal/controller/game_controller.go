package controller

import (
	"errors"
	"time"

	"github.com/boardsim/chessboard-backend/internal/model"
	"github.com/boardsim/chessboard-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

// matchWaitTimeout bounds the matchmaking long poll; clients re-poll
// after a 204.
const matchWaitTimeout = 25 * time.Second

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	gameID, err := gc.gameService.CreateGame()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "game created",
		"game_id": gameID,
	})
}

func (gc *GameController) JoinGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	color, err := gc.gameService.JoinGame(gameID, playerID)
	if err != nil {
		status := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, service.ErrGameNotFound):
			status = fiber.StatusNotFound
		case errors.Is(err, model.ErrGameFull):
			status = fiber.StatusConflict
		}
		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "game joined",
		"color":   color,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	gameState, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to fetch game state",
		})
	}

	return c.JSON(gameState)
}

func (gc *GameController) JoinMatchmaking(c *fiber.Ctx) error {
	playerID := c.Locals("playerID").(string)

	if err := gc.gameService.JoinMatchmaking(playerID); err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, model.ErrAlreadyQueued) {
			status = fiber.StatusConflict
		}
		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status": "queued",
	})
}

// WaitForMatch long-polls for a pairing event. Responds 200 with the
// event when a match is found within the window, 204 otherwise.
func (gc *GameController) WaitForMatch(c *fiber.Ctx) error {
	playerID := c.Locals("playerID").(string)

	ch := make(chan model.MatchFoundEvent, 1)
	gc.gameService.RegisterMatchmakingChannel(playerID, ch)
	defer gc.gameService.UnregisterMatchmakingChannel(playerID)

	timer := time.NewTimer(matchWaitTimeout)
	defer timer.Stop()

	select {
	case event, ok := <-ch:
		if !ok {
			// Replaced by a newer subscription for the same player.
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.JSON(event)
	case <-timer.C:
		return c.SendStatus(fiber.StatusNoContent)
	}
}
