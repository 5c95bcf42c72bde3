// Package mazeapi handles maze generation and solving over HTTP.
package mazeapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/beka-birhanu/maze-api/service/i"
	"github.com/beka-birhanu/maze-api/solver"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestTimeout bounds each storage round trip.
const requestTimeout = 2 * time.Second

// MazeController manages maze generation and solving operations.
type MazeController struct {
	mazes i.MazeManager
}

// NewMazeController initializes a MazeController.
func NewMazeController(mazes i.MazeManager) (*MazeController, error) {
	if mazes == nil {
		return nil, errors.New("maze manager is required")
	}
	return &MazeController{mazes: mazes}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/", mc.create)
		mazes.GET("/:ID", mc.byID)
		mazes.GET("/:ID/solution", mc.solution)
	}
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {}

// create handles maze generation requests.
func (mc *MazeController) create(ctx *gin.Context) {
	var request CreateMazeRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	m, err := mc.mazes.Create(timeoutCtx, request.Rows, request.Cols, request.Seed)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while generating maze"})
		return
	}

	ctx.JSON(http.StatusCreated, newMazeResponse(m))
}

// byID retrieves a stored maze.
func (mc *MazeController) byID(ctx *gin.Context) {
	IDString := ctx.Params.ByName("ID")
	ID, err := uuid.Parse(IDString)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	m, err := mc.mazes.ByID(timeoutCtx, ID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "maze not found"})
		return
	}

	ctx.JSON(http.StatusOK, newMazeResponse(m))
}

// solution computes the solve trace for a stored maze.
func (mc *MazeController) solution(ctx *gin.Context) {
	IDString := ctx.Params.ByName("ID")
	ID, err := uuid.Parse(IDString)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return
	}

	algorithm := ctx.DefaultQuery("algorithm", solver.AlgorithmDFS)

	timeoutCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	steps, err := mc.mazes.Solve(timeoutCtx, ID, algorithm)
	if err != nil {
		if errors.Is(err, solver.ErrUnsupportedAlgorithm) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusNotFound, gin.H{"error": "maze not found"})
		return
	}

	ctx.JSON(http.StatusOK, &SolutionResponse{
		MazeID:    ID,
		Algorithm: algorithm,
		Steps:     steps,
	})
}
