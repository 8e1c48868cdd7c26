package application

import (
	"bufio"
	"context"
	"errors"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/musemarket/musemarket-api/internal/domain/entity"
	repo "github.com/musemarket/musemarket-api/internal/domain/repository"
	"github.com/musemarket/musemarket-api/pkg/helpers"
)

var (
	ErrArtworkNotFound = errors.New("artwork not found or not authorized")
	ErrArtworkSold     = errors.New("sold artworks cannot be deleted")
	ErrImageRequired   = errors.New("image is required")
	ErrImageType       = errors.New("only JPEG and PNG images are allowed")
	ErrImageTooLarge   = errors.New("image exceeds the upload size limit")
	ErrInvalidPrice    = errors.New("price must be greater than zero")
	ErrInvalidStatus   = errors.New("status must be Available or Sold")
)

// DefaultSearchSize caps the number of hits asked from the search index.
const DefaultSearchSize = 50

var imageExt = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
}

type ArtworkService struct {
	Artworks     repo.ArtworkRepository
	Images       helpers.ImageStore
	Search       ArtworkSearcher
	MaxImageSize int64
	Logger       *logrus.Logger
}

func NewArtworkService(artworks repo.ArtworkRepository, images helpers.ImageStore, search ArtworkSearcher, maxImageSize int64, logger *logrus.Logger) *ArtworkService {
	return &ArtworkService{Artworks: artworks, Images: images, Search: search, MaxImageSize: maxImageSize, Logger: logger}
}

// ImageUpload is an uploaded file as received from the client.
type ImageUpload struct {
	Filename string
	Size     int64
	Body     io.Reader
}

type CreateArtworkInput struct {
	Title       string
	Description string
	Price       float64
	Category    string
	Image       *ImageUpload
}

// UpdateArtworkInput carries a partial update; nil fields are left unchanged.
type UpdateArtworkInput struct {
	Title       *string
	Description *string
	Price       *float64
	Category    *string
	Status      *entity.ArtworkStatus
}

func (s *ArtworkService) Create(ctx context.Context, sellerID string, in CreateArtworkInput) (*entity.Artwork, error) {
	if in.Price <= 0 {
		return nil, ErrInvalidPrice
	}
	url, err := s.storeImage(ctx, sellerID, in.Image)
	if err != nil {
		return nil, err
	}
	a := &entity.Artwork{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		Category:    strings.TrimSpace(in.Category),
		Status:      entity.ArtworkAvailable,
		ImageURL:    url,
		SellerID:    sellerID,
	}
	if err := s.Artworks.Create(ctx, a); err != nil {
		return nil, err
	}
	s.index(ctx, *a)
	return a, nil
}

// storeImage checks the declared size and the sniffed content type, then
// saves the file as artworks/<sellerID>/<uuid><ext>.
func (s *ArtworkService) storeImage(ctx context.Context, sellerID string, img *ImageUpload) (string, error) {
	if img == nil || img.Body == nil {
		return "", ErrImageRequired
	}
	if s.MaxImageSize > 0 && img.Size > s.MaxImageSize {
		return "", ErrImageTooLarge
	}
	br := bufio.NewReaderSize(img.Body, 512)
	head, err := br.Peek(512)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return "", err
	}
	contentType := http.DetectContentType(head)
	ext, ok := imageExt[contentType]
	if !ok {
		return "", ErrImageType
	}
	var body io.Reader = br
	if s.MaxImageSize > 0 {
		body = &capReader{r: br, left: s.MaxImageSize}
	}
	objectPath := path.Join("artworks", sellerID, uuid.NewString()+ext)
	url, err := s.Images.Save(ctx, objectPath, contentType, body)
	if errors.Is(err, errTooLarge) {
		return "", ErrImageTooLarge
	}
	return url, err
}

var errTooLarge = errors.New("too large")

// capReader fails once more than left bytes have been read, for uploads whose
// declared size lies.
type capReader struct {
	r    io.Reader
	left int64
}

func (c *capReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.left -= int64(n)
	if c.left < 0 {
		return n, errTooLarge
	}
	return n, err
}

func (s *ArtworkService) Get(ctx context.Context, id string) (*entity.Artwork, error) {
	a, err := s.Artworks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrArtworkNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *ArtworkService) ListMine(ctx context.Context, sellerID string) ([]entity.Artwork, error) {
	return s.Artworks.ListBySeller(ctx, sellerID)
}

// Explore lists every artwork, or the search hits for q in relevance order.
// When the index is down or disabled it falls back to the full listing.
func (s *ArtworkService) Explore(ctx context.Context, q string) ([]entity.Artwork, error) {
	q = strings.TrimSpace(q)
	if q == "" || s.Search == nil {
		return s.Artworks.ListAll(ctx)
	}
	ids, err := s.Search.SearchIDs(ctx, q, DefaultSearchSize)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("q", q).Warn("artwork search failed, listing all")
		}
		return s.Artworks.ListAll(ctx)
	}
	if len(ids) == 0 {
		return []entity.Artwork{}, nil
	}
	return s.Artworks.ListByIDs(ctx, ids)
}

func (s *ArtworkService) Update(ctx context.Context, sellerID, id string, in UpdateArtworkInput) (*entity.Artwork, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.SellerID != sellerID {
		return nil, ErrArtworkNotFound
	}
	if in.Title != nil {
		a.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		a.Description = strings.TrimSpace(*in.Description)
	}
	if in.Category != nil {
		a.Category = strings.TrimSpace(*in.Category)
	}
	if in.Price != nil {
		if *in.Price <= 0 {
			return nil, ErrInvalidPrice
		}
		a.Price = *in.Price
	}
	if in.Status != nil {
		if !in.Status.Valid() {
			return nil, ErrInvalidStatus
		}
		a.Status = *in.Status
	}
	if err := s.Artworks.UpdateOwned(ctx, a); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrArtworkNotFound
		}
		return nil, err
	}
	s.index(ctx, *a)
	return a, nil
}

func (s *ArtworkService) Delete(ctx context.Context, sellerID, id string) error {
	err := s.Artworks.DeleteOwned(ctx, id, sellerID)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return ErrArtworkNotFound
	case errors.Is(err, repo.ErrInUse):
		return ErrArtworkSold
	case err != nil:
		return err
	}
	if s.Search != nil {
		if err := s.Search.Remove(ctx, id); err != nil {
			s.warnIndex(err, id, "es delete failed")
		}
	}
	return nil
}

func (s *ArtworkService) index(ctx context.Context, a entity.Artwork) {
	if s.Search == nil {
		return
	}
	if err := s.Search.Put(ctx, a); err != nil {
		s.warnIndex(err, a.ID, "es index failed")
	}
}

func (s *ArtworkService) warnIndex(err error, id, msg string) {
	if s.Logger != nil {
		s.Logger.WithError(err).WithField("artwork_id", id).Warn(msg)
	}
}
