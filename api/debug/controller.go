// Package debugapi exposes protected inspection routes over live session
// state: pose, mode and the learned maze render.
package debugapi

import (
	"fmt"
	"net/http"

	"github.com/beka-birhanu/micromouse-api/service"
	"github.com/gin-gonic/gin"
)

// DebugController serves read-only session inspection.
type DebugController struct {
	turns *service.TurnService
}

// NewDebugController initializes a DebugController over the turn service.
func NewDebugController(turns *service.TurnService) (*DebugController, error) {
	if turns == nil {
		return nil, fmt.Errorf("debug controller requires a turn service")
	}
	return &DebugController{turns: turns}, nil
}

// RegisterPublic registers public routes.
func (dc *DebugController) RegisterPublic(route *gin.RouterGroup) {}

// RegisterProtected registers protected routes.
func (dc *DebugController) RegisterProtected(route *gin.RouterGroup) {
	sessions := route.Group("/debug/sessions")
	{
		sessions.GET("/:ID", dc.session)
		sessions.GET("/:ID/maze", dc.maze)
	}
}

// session reports a session's persisted planning state.
func (dc *DebugController) session(ctx *gin.Context) {
	snapshot, err := dc.turns.Inspect(ctx.Request.Context(), ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "no session"})
		return
	}

	ctx.JSON(http.StatusOK, SessionResponse{
		ID:       snapshot.ID,
		Mode:     snapshot.Mode,
		X:        snapshot.Pose.X,
		Y:        snapshot.Pose.Y,
		Heading:  snapshot.Pose.Heading.String(),
		Momentum: snapshot.Pose.Momentum,
		Run:      snapshot.Run,
		Backlog:  snapshot.Backlog,
		RouteLen: snapshot.RouteLen,
	})
}

// maze renders a session's learned wall knowledge as ASCII.
func (dc *DebugController) maze(ctx *gin.Context) {
	snapshot, err := dc.turns.Inspect(ctx.Request.Context(), ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "no session"})
		return
	}

	ctx.String(http.StatusOK, snapshot.Maze)
}

// SessionResponse is the inspection view of one session.
type SessionResponse struct {
	ID       string `json:"id"`
	Mode     string `json:"mode"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Heading  string `json:"heading"`
	Momentum int    `json:"momentum"`
	Run      int    `json:"run"`
	Backlog  int    `json:"backlog"`
	RouteLen int    `json:"route_len"`
}
