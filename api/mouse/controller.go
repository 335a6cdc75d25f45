package mouseapi

import (
	"fmt"
	"net/http"

	"github.com/beka-birhanu/micromouse-api/game"
	"github.com/beka-birhanu/micromouse-api/service"
	"github.com/beka-birhanu/micromouse-api/service/i"
	"github.com/gin-gonic/gin"
)

// MouseController serves the simulator's turn requests.
type MouseController struct {
	turns  *service.TurnService
	logger i.Logger
}

// NewMouseController initializes a MouseController over the turn service.
func NewMouseController(turns *service.TurnService, logger i.Logger) (*MouseController, error) {
	if turns == nil {
		return nil, fmt.Errorf("mouse controller requires a turn service")
	}
	return &MouseController{turns: turns, logger: logger}, nil
}

// RegisterPublic registers public routes.
func (mc *MouseController) RegisterPublic(route *gin.RouterGroup) {
	route.POST("/micro-mouse", mc.turn)
	route.GET("/health", mc.health)
}

// RegisterProtected registers protected routes.
func (mc *MouseController) RegisterProtected(route *gin.RouterGroup) {}

// turn handles one request/response exchange. A turn must never fail
// outright: an unreadable body plays as an empty report and still gets a
// legal, non-empty instruction batch back.
func (mc *MouseController) turn(ctx *gin.Context) {
	var request TurnRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		mc.logger.Warning(fmt.Sprintf("unreadable turn request: %v", err))
	}

	result := mc.turns.Play(ctx.Request.Context(), request.GameID, game.TurnInput{
		SensorData:  request.SensorData,
		Momentum:    request.Momentum,
		Run:         request.Run,
		Crashed:     request.IsCrashed,
		GoalReached: request.GoalReached,
	})

	ctx.JSON(http.StatusOK, TurnResponse{
		Instructions: result.Instructions,
		End:          result.End,
	})
}

// health answers liveness probes from the judge harness.
func (mc *MouseController) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
