package worldapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/wumpus-api/service/i"
	"github.com/beka-birhanu/wumpus-api/world"
	"github.com/gin-gonic/gin"
)

// WorldController serves generated worlds and generation statistics.
type WorldController struct {
	generator i.WorldGenerator
}

// NewWorldController initializes a WorldController.
func NewWorldController(g i.WorldGenerator) (*WorldController, error) {
	if g == nil {
		return nil, errors.New("world controller needs a generator")
	}
	return &WorldController{generator: g}, nil
}

// RegisterPublic registers public routes.
func (wc *WorldController) RegisterPublic(route *gin.RouterGroup) {
	worlds := route.Group("/world")
	{
		worlds.GET("", wc.generate)
		worlds.GET("/stats", wc.stats)
	}
}

// RegisterProtected registers protected routes.
func (wc *WorldController) RegisterProtected(route *gin.RouterGroup) {
	route.DELETE("/world/stats", wc.resetStats)
}

// RegisterRoot registers the route used by the original web client.
func (wc *WorldController) RegisterRoot(router *gin.Engine) {
	router.GET("/mundo-wumpus", wc.legacyGenerate)
}

// generate handles world generation requests.
func (wc *WorldController) generate(ctx *gin.Context) {
	side := wc.generator.DefaultSide()
	if raw, ok := ctx.GetQuery("side"); ok {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "side must be an integer"})
			return
		}
		side = parsed
	}

	grid, err := wc.generator.Generate(ctx.Request.Context(), side)
	if err != nil {
		writeGenerationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newWorldResponse(grid))
}

// legacyGenerate serves a reference-size world in the original wire format.
func (wc *WorldController) legacyGenerate(ctx *gin.Context) {
	grid, err := wc.generator.Generate(ctx.Request.Context(), world.DefaultSide)
	if err != nil {
		writeGenerationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newLegacyWorldResponse(grid))
}

// stats reports generation statistics.
func (wc *WorldController) stats(ctx *gin.Context) {
	s, err := wc.generator.Stats(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "stats unavailable"})
		return
	}

	ctx.JSON(http.StatusOK, &StatsResponse{
		Worlds:        s.Worlds,
		Pits:          s.Pits,
		EligibleCells: s.EligibleCells,
		MonsterOnPit:  s.MonsterOnPit,
		PitRate:       s.PitRate(),
	})
}

// resetStats clears generation statistics.
func (wc *WorldController) resetStats(ctx *gin.Context) {
	if err := wc.generator.ResetStats(ctx.Request.Context()); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "stats unavailable"})
		return
	}
	ctx.Status(http.StatusNoContent)
}

func writeGenerationError(ctx *gin.Context, err error) {
	if errors.Is(err, world.ErrInvalidConfig) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "world generation failed"})
}
