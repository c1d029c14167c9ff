package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/lucy1234dev/server/internal/common"
	"github.com/lucy1234dev/server/internal/logging"
	"github.com/lucy1234dev/server/internal/server/models"
	"github.com/lucy1234dev/server/internal/server/store"
	"github.com/lucy1234dev/server/internal/server/validation"
)

type ProductService struct {
	products *store.Store[models.Products]
	logger   logging.Logger
	newID    func() string
}

func NewProductService(backend store.Backend, l logging.Logger) *ProductService {
	return &ProductService{
		products: store.New(ProductsDocument, backend, func() models.Products { return models.Products{} }, l),
		logger:   l.With("module", "products"),
		newID:    uuid.NewString,
	}
}

// List returns all products in insertion order.
func (s *ProductService) List(ctx context.Context) (models.Products, error) {
	return s.products.Load(ctx)
}

// Add validates in, assigns a fresh id and appends the product.
func (s *ProductService) Add(ctx context.Context, in models.ProductCreate) (*models.Product, error) {
	if err := validation.Struct(in); err != nil {
		return nil, common.NewError(common.ErrorInvalidInput, err.Error())
	}

	p := &models.Product{
		ID:         s.newID(),
		Name:       in.Name,
		Price:      in.Price,
		Categories: in.Categories,
		Page:       in.Page,
		Image:      in.Image,
	}

	err := s.products.Update(ctx, func(doc models.Products) (models.Products, error) {
		return append(doc, p), nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "product added", "id", p.ID, "name", p.Name)
	return p, nil
}
