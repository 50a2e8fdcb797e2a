package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/jeunessebiere/site-api/internal/domain"
)

// CarouselPatch holds the fields of a partial carousel update. The Clear
// flags null out the url or file columns, which is how the url/file
// mutual exclusivity is enforced: switching to an upload clears the
// external url and vice versa.
type CarouselPatch struct {
	Title *string
	Alt   *string
	Order *int

	URL      *string
	ClearURL bool

	FilePath  *string
	FileName  *string
	FileSize  *int64
	ClearFile bool
}

type CarouselRepository interface {
	List(ctx context.Context) ([]domain.CarouselImage, error)
	GetByID(ctx context.Context, id int64) (*domain.CarouselImage, error)
	Create(ctx context.Context, img *domain.CarouselImage) error
	Update(ctx context.Context, id int64, patch CarouselPatch) (*domain.CarouselImage, error)
	Delete(ctx context.Context, id int64) (*string, error)
	Count(ctx context.Context) (int, error)
}

type carouselRepository struct {
	db *sqlx.DB
}

func NewCarouselRepository(db *sqlx.DB) CarouselRepository {
	return &carouselRepository{db: db}
}

const carouselColumns = `id, title, url, alt, display_order, file_path, file_name, file_size, created_at`

func (r *carouselRepository) List(ctx context.Context) ([]domain.CarouselImage, error) {
	images := []domain.CarouselImage{}
	query := `SELECT ` + carouselColumns + ` FROM carousel_images ORDER BY display_order ASC`
	if err := r.db.SelectContext(ctx, &images, query); err != nil {
		return nil, err
	}
	return images, nil
}

func (r *carouselRepository) GetByID(ctx context.Context, id int64) (*domain.CarouselImage, error) {
	var img domain.CarouselImage
	query := `SELECT ` + carouselColumns + ` FROM carousel_images WHERE id = $1`
	if err := r.db.GetContext(ctx, &img, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound("Image not found")
		}
		return nil, err
	}
	return &img, nil
}

func (r *carouselRepository) Create(ctx context.Context, img *domain.CarouselImage) error {
	query := `INSERT INTO carousel_images (title, url, alt, display_order, file_path, file_name, file_size)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING id, created_at`
	return r.db.QueryRowxContext(ctx, query,
		img.Title, img.URL, img.Alt, img.Order, img.FilePath, img.FileName, img.FileSize,
	).Scan(&img.ID, &img.CreatedAt)
}

func (r *carouselRepository) Update(ctx context.Context, id int64, patch CarouselPatch) (*domain.CarouselImage, error) {
	set := []string{}
	args := []any{}
	argN := 1

	add := func(col string, val any) {
		set = append(set, fmt.Sprintf("%s = $%d", col, argN))
		args = append(args, val)
		argN++
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Alt != nil {
		add("alt", *patch.Alt)
	}
	if patch.Order != nil {
		add("display_order", *patch.Order)
	}

	switch {
	case patch.ClearURL:
		add("url", nil)
	case patch.URL != nil:
		add("url", *patch.URL)
	}

	switch {
	case patch.ClearFile:
		add("file_path", nil)
		add("file_name", nil)
		add("file_size", nil)
	case patch.FilePath != nil:
		add("file_path", *patch.FilePath)
		add("file_name", patch.FileName)
		add("file_size", patch.FileSize)
	}

	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	query := "UPDATE carousel_images SET " + strings.Join(set, ", ") +
		fmt.Sprintf(" WHERE id = $%d RETURNING ", argN) + carouselColumns
	args = append(args, id)

	var img domain.CarouselImage
	if err := r.db.QueryRowxContext(ctx, query, args...).StructScan(&img); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound("Image not found")
		}
		return nil, err
	}
	return &img, nil
}

func (r *carouselRepository) Delete(ctx context.Context, id int64) (*string, error) {
	var filePath *string
	err := r.db.QueryRowxContext(ctx, `DELETE FROM carousel_images WHERE id = $1 RETURNING file_path`, id).
		Scan(&filePath)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound("Image not found")
		}
		return nil, err
	}
	return filePath, nil
}

func (r *carouselRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM carousel_images`); err != nil {
		return 0, err
	}
	return count, nil
}
