package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos del menú.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.PreparationTime < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() || in.StorageRequired.IsNegative() || in.EmployeeHoursRequired.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	ingredients, err := toIngredients(in.Ingredients)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:                    uuid.New().String(),
		Name:                  name,
		Price:                 in.Price,
		Category:              strings.TrimSpace(in.Category),
		Ingredients:           ingredients,
		PreparationTime:       in.PreparationTime,
		StorageRequired:       in.StorageRequired,
		EmployeeHoursRequired: in.EmployeeHoursRequired,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	if !validID(id) {
		return nil, nil
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza los campos enviados de un producto.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if !validID(id) {
		return nil, nil
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = name
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Category != nil {
		product.Category = strings.TrimSpace(*in.Category)
	}
	if in.Ingredients != nil {
		ingredients, err := toIngredients(in.Ingredients)
		if err != nil {
			return nil, err
		}
		product.Ingredients = ingredients
	}
	if in.PreparationTime != nil {
		if *in.PreparationTime < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.PreparationTime = *in.PreparationTime
	}
	if in.StorageRequired != nil {
		if in.StorageRequired.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.StorageRequired = *in.StorageRequired
	}
	if in.EmployeeHoursRequired != nil {
		if in.EmployeeHoursRequired.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.EmployeeHoursRequired = *in.EmployeeHoursRequired
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) (*dto.ProductListResponse, error) {
	limit, offset = dto.NormalizePage(limit, offset)
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto por ID. Las ventas que lo referencian se conservan.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toIngredients(in []dto.IngredientDTO) ([]entity.IngredientQuantity, error) {
	out := make([]entity.IngredientQuantity, 0, len(in))
	for _, i := range in {
		name := strings.TrimSpace(i.Name)
		if name == "" || i.Quantity.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		out = append(out, entity.IngredientQuantity{Name: name, Quantity: i.Quantity})
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	ingredients := make([]dto.IngredientDTO, 0, len(p.Ingredients))
	for _, i := range p.Ingredients {
		ingredients = append(ingredients, dto.IngredientDTO{Name: i.Name, Quantity: i.Quantity})
	}
	return &dto.ProductResponse{
		ID:                    p.ID,
		Name:                  p.Name,
		Price:                 p.Price,
		Category:              p.Category,
		Ingredients:           ingredients,
		PreparationTime:       p.PreparationTime,
		StorageRequired:       p.StorageRequired,
		EmployeeHoursRequired: p.EmployeeHoursRequired,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}

