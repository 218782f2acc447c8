package http_pool

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/reelswipe/core/internal/delivery/http/common"
	infra_tmdb "github.com/reelswipe/core/internal/infra/tmdb"
	"github.com/reelswipe/core/internal/model"
	"github.com/reelswipe/core/internal/service/breaker"
	usecase_pool "github.com/reelswipe/core/internal/usecase/pool"
)

type Controller struct {
	usecase *usecase_pool.Usecase
	logger  *slog.Logger
}

func New(usecase *usecase_pool.Usecase) *Controller {
	return &Controller{
		usecase: usecase,
		logger:  slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	rooms := router.Group("/rooms")
	{
		rooms.POST("/:room_id/pool", c.create)
		rooms.GET("/:room_id/pool/records", c.records)
	}
}

// CreatePoolRequestDTO is the room's filter criteria.
type CreatePoolRequestDTO struct {
	MediaType string `json:"media_type" binding:"required" example:"MOVIE"`
	GenreIDs  []int  `json:"genre_ids" example:"28,12"`
}

func (r *CreatePoolRequestDTO) ConvertToCriteria(roomID string) (model.FilterCriteria, error) {
	mt, err := model.ParseMediaType(r.MediaType)
	if err != nil {
		return model.FilterCriteria{}, err
	}
	return model.FilterCriteria{
		MediaType: mt,
		GenreIDs:  r.GenreIDs,
		RoomID:    model.RoomID(roomID),
	}, nil
}

// ContentEntryDTO is one validated catalog item of a pool.
type ContentEntryDTO struct {
	CatalogID    string  `json:"catalog_id" example:"27205"`
	MediaType    string  `json:"media_type" example:"MOVIE"`
	Title        string  `json:"title" example:"Inception"`
	PosterURL    string  `json:"poster_url" example:"https://image.tmdb.org/t/p/w500/poster.jpg"`
	Overview     string  `json:"overview" example:"A thief who steals corporate secrets..."`
	GenreIDs     []int   `json:"genre_ids" example:"28,878"`
	VoteAverage  float64 `json:"vote_average" example:"8.4"`
	VoteCount    int     `json:"vote_count" example:"34000"`
	Popularity   float64 `json:"popularity" example:"92.5"`
	ReleaseDate  string  `json:"release_date" example:"2010-07-15"`
	PriorityTier int     `json:"priority_tier" example:"1"`
}

// PoolResponseDTO carries the assembled pool.
type PoolResponseDTO struct {
	Content []ContentEntryDTO `json:"content"`
	Total   int               `json:"total"`
}

func ConvertFromContentEntry(entry model.ContentEntry) ContentEntryDTO {
	return ContentEntryDTO{
		CatalogID:    entry.CatalogID,
		MediaType:    string(entry.MediaType),
		Title:        entry.Title,
		PosterURL:    entry.PosterURL,
		Overview:     entry.Overview,
		GenreIDs:     entry.GenreIDs,
		VoteAverage:  entry.VoteAverage,
		VoteCount:    entry.VoteCount,
		Popularity:   entry.Popularity,
		ReleaseDate:  entry.ReleaseDate,
		PriorityTier: entry.PriorityTier,
	}
}

func ConvertFromContentEntryList(entries []model.ContentEntry) []ContentEntryDTO {
	content := make([]ContentEntryDTO, len(entries))
	for i, entry := range entries {
		content[i] = ConvertFromContentEntry(entry)
	}
	return content
}

// Create assembles a filtered content pool for a room
// @Summary Create content pool
// @Description Assembles a validated, deduplicated pool of catalog items for the room's criteria
// @Tags Pools
// @Accept json
// @Produce json
// @Param room_id path string true "Room identifier"
// @Param criteria body CreatePoolRequestDTO true "Filter criteria"
// @Success 201 {object} PoolResponseDTO "Pool assembled"
// @Failure 400 {object} http_common.ErrorResponse "Invalid criteria"
// @Failure 422 {object} http_common.ErrorResponse "Not enough valid items"
// @Failure 429 {object} http_common.ErrorResponse "Upstream rate limit"
// @Failure 502 {object} http_common.ErrorResponse "Contaminated upstream data"
// @Failure 503 {object} http_common.ErrorResponse "Catalog unavailable"
// @Router /rooms/{room_id}/pool [post]
func (c *Controller) create(ctx *gin.Context) {
	var req CreatePoolRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "malformed request body",
		})
		return
	}

	criteria, err := req.ConvertToCriteria(ctx.Param("room_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: err.Error(),
		})
		return
	}

	pool, err := c.usecase.CreateFilteredPool(ctx, criteria)
	if err != nil {
		c.logger.Error("failed to create pool",
			slog.String("room_id", string(criteria.RoomID)),
			slog.String("error", err.Error()),
		)
		switch {
		case errors.Is(err, model.ErrInvalidCriteria):
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: err.Error(),
			})
		case errors.Is(err, usecase_pool.ErrIncompleteResult):
			ctx.JSON(http.StatusUnprocessableEntity, http_common.ErrorResponse{
				Message: "not enough valid items for these criteria",
			})
		case errors.Is(err, breaker.ErrCircuitOpen):
			ctx.JSON(http.StatusServiceUnavailable, http_common.ErrorResponse{
				Message: "catalog temporarily unavailable",
			})
		case errors.Is(err, infra_tmdb.ErrRateLimited):
			ctx.JSON(http.StatusTooManyRequests, http_common.ErrorResponse{
				Message: "catalog rate limit exceeded",
			})
		case errors.Is(err, model.ErrCrossContamination):
			ctx.JSON(http.StatusBadGateway, http_common.ErrorResponse{
				Message: "catalog returned contaminated data",
			})
		default:
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "internal error",
			})
		}
		return
	}

	ctx.JSON(http.StatusCreated, PoolResponseDTO{
		Content: ConvertFromContentEntryList(pool),
		Total:   len(pool),
	})
}

// PoolRecordDTO is one provenance row of an assembled pool.
type PoolRecordDTO struct {
	ID        uuid.UUID `json:"id"`
	CacheKey  string    `json:"cache_key"`
	MediaType string    `json:"media_type"`
	GenreIDs  []int     `json:"genre_ids"`
	PoolSize  int       `json:"pool_size"`
	Tier1     int       `json:"tier1_count"`
	Tier2     int       `json:"tier2_count"`
	Tier3     int       `json:"tier3_count"`
	FromCache bool      `json:"from_cache"`
	CreatedAt string    `json:"created_at"`
}

// RecordsResponseDTO lists a room's pool provenance, newest first.
type RecordsResponseDTO struct {
	Records []PoolRecordDTO `json:"records"`
	Total   int             `json:"total"`
}

// Records returns the pool provenance of a room
// @Summary List pool records
// @Description Returns how each of the room's pools was assembled
// @Tags Pools
// @Produce json
// @Param room_id path string true "Room identifier"
// @Success 200 {object} RecordsResponseDTO "Pool records"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /rooms/{room_id}/pool/records [get]
func (c *Controller) records(ctx *gin.Context) {
	roomID := model.RoomID(ctx.Param("room_id"))

	recs, err := c.usecase.Records(ctx, roomID)
	if err != nil {
		c.logger.Error("failed to load pool records",
			slog.String("room_id", string(roomID)),
			slog.String("error", err.Error()),
		)
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	records := make([]PoolRecordDTO, len(recs))
	for i, rec := range recs {
		records[i] = PoolRecordDTO{
			ID:        rec.ID,
			CacheKey:  rec.CacheKey,
			MediaType: string(rec.MediaType),
			GenreIDs:  rec.GenreIDs,
			PoolSize:  rec.PoolSize,
			Tier1:     rec.TierCounts[0],
			Tier2:     rec.TierCounts[1],
			Tier3:     rec.TierCounts[2],
			FromCache: rec.FromCache,
			CreatedAt: rec.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	ctx.JSON(http.StatusOK, RecordsResponseDTO{
		Records: records,
		Total:   len(records),
	})
}
