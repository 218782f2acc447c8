package http_genres

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/reelswipe/core/internal/delivery/http/common"
	"github.com/reelswipe/core/internal/model"
	"github.com/reelswipe/core/internal/service/breaker"
	usecase_genres "github.com/reelswipe/core/internal/usecase/genres"
)

type Controller struct {
	usecase *usecase_genres.Usecase
	logger  *slog.Logger
}

func New(usecase *usecase_genres.Usecase) *Controller {
	return &Controller{
		usecase: usecase,
		logger:  slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/genres/:media_type", c.list)
}

type GenreDTO struct {
	ID   int    `json:"id" example:"28"`
	Name string `json:"name" example:"Action"`
}

type GenresResponseDTO struct {
	Genres []GenreDTO `json:"genres"`
}

// List returns the catalog's genres for a media type
// @Summary List available genres
// @Description Returns the genre taxonomy used to build filter pickers
// @Tags Genres
// @Produce json
// @Param media_type path string true "MOVIE or TV"
// @Success 200 {object} GenresResponseDTO "Available genres"
// @Failure 400 {object} http_common.ErrorResponse "Unknown media type"
// @Failure 503 {object} http_common.ErrorResponse "Catalog unavailable"
// @Router /genres/{media_type} [get]
func (c *Controller) list(ctx *gin.Context) {
	mt, err := model.ParseMediaType(ctx.Param("media_type"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: err.Error(),
		})
		return
	}

	gg, err := c.usecase.Available(ctx, mt)
	if err != nil {
		c.logger.Error("failed to list genres", slog.String("error", err.Error()))
		if errors.Is(err, breaker.ErrCircuitOpen) {
			ctx.JSON(http.StatusServiceUnavailable, http_common.ErrorResponse{
				Message: "catalog temporarily unavailable",
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	genres := make([]GenreDTO, len(gg))
	for i, g := range gg {
		genres[i] = GenreDTO{ID: g.ID, Name: g.Name}
	}

	ctx.JSON(http.StatusOK, GenresResponseDTO{Genres: genres})
}
