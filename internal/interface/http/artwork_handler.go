package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/musemarket/musemarket-api/internal/application"
	"github.com/musemarket/musemarket-api/internal/domain/entity"
	"github.com/musemarket/musemarket-api/internal/interface/middleware"
	"github.com/musemarket/musemarket-api/pkg/response"
)

// multipartOverhead is room for the text fields next to the image.
const multipartOverhead = 1 << 20

type ArtworkHandler struct {
	Svc            ArtworkUseCase
	Logger         *logrus.Logger
	MaxUploadBytes int64
}

func NewArtworkHandler(svc ArtworkUseCase, logger *logrus.Logger, maxUploadBytes int64) *ArtworkHandler {
	return &ArtworkHandler{Svc: svc, Logger: logger, MaxUploadBytes: maxUploadBytes}
}

type createArtworkRequest struct {
	Title       string  `form:"title" binding:"required"`
	Description string  `form:"description"`
	Price       float64 `form:"price" binding:"required,gt=0"`
	Label       string  `form:"label"`
}

type updateArtworkRequest struct {
	Title       *string  `json:"title" form:"title" binding:"omitempty,min=1"`
	Description *string  `json:"description" form:"description"`
	Price       *float64 `json:"price" form:"price" binding:"omitempty,gt=0"`
	Label       *string  `json:"label" form:"label"`
	Status      *string  `json:"status" form:"status" binding:"omitempty,oneof=Available Sold"`
}

func (h *ArtworkHandler) Create(c *gin.Context) {
	if h.MaxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes+multipartOverhead)
	}
	var req createArtworkRequest
	if err := c.ShouldBind(&req); err != nil {
		if tooLarge(err) {
			writeError(c, h.Logger, application.ErrImageTooLarge)
			return
		}
		response.Invalid(c, err)
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		if tooLarge(err) {
			writeError(c, h.Logger, application.ErrImageTooLarge)
			return
		}
		writeError(c, h.Logger, application.ErrImageRequired)
		return
	}
	f, err := fh.Open()
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	defer func() { _ = f.Close() }()

	a, err := h.Svc.Create(c.Request.Context(), middleware.UserID(c), application.CreateArtworkInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Label,
		Image:       &application.ImageUpload{Filename: fh.Filename, Size: fh.Size, Body: f},
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, toArtworkResponse(a), "artwork created", nil)
}

func tooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}

func (h *ArtworkHandler) ListMine(c *gin.Context) {
	list, err := h.Svc.ListMine(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toArtworkList(list), "artworks", gin.H{"count": len(list)})
}

func (h *ArtworkHandler) Update(c *gin.Context) {
	var req updateArtworkRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Invalid(c, err)
		return
	}
	in := application.UpdateArtworkInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Label,
	}
	if req.Status != nil {
		st := entity.ArtworkStatus(*req.Status)
		in.Status = &st
	}
	a, err := h.Svc.Update(c.Request.Context(), middleware.UserID(c), c.Param("id"), in)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toArtworkResponse(a), "artwork updated", nil)
}

func (h *ArtworkHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"id": c.Param("id")}, "artwork deleted", nil)
}

// Explore is public: every artwork, or search hits for ?q=.
func (h *ArtworkHandler) Explore(c *gin.Context) {
	list, err := h.Svc.Explore(c.Request.Context(), c.Query("q"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toArtworkList(list), "artworks", gin.H{"count": len(list)})
}

func (h *ArtworkHandler) Get(c *gin.Context) {
	a, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toArtworkResponse(a), "artwork", nil)
}
