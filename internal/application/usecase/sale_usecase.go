package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// SaleUseCase registro y consulta de ventas.
// Al crear, el producto y el empleado deben existir; después pueden eliminarse sin tocar la venta.
type SaleUseCase struct {
	sales     repository.SaleRepository
	products  repository.ProductRepository
	employees repository.EmployeeRepository
	now       func() time.Time
	loc       *time.Location
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(sales repository.SaleRepository, products repository.ProductRepository, employees repository.EmployeeRepository) *SaleUseCase {
	return &SaleUseCase{sales: sales, products: products, employees: employees, now: time.Now, loc: time.Local}
}

// WithLocation fija la zona horaria del restaurante para fechas sin hora y filtros por día.
func (uc *SaleUseCase) WithLocation(loc *time.Location) *SaleUseCase {
	uc.loc = locationOrLocal(loc)
	return uc
}

// Create registra una venta. Con Price en cero se usa el precio actual del producto.
func (uc *SaleUseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if !validID(in.ProductID) || !validID(in.EmployeeID) || in.Quantity <= 0 || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.products.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, fmt.Errorf("venta: producto: %w", err)
	}
	if product == nil {
		return nil, domain.ErrInvalidInput
	}
	employee, err := uc.employees.GetByID(ctx, in.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("venta: empleado: %w", err)
	}
	if employee == nil {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()
	date, err := parseDate(in.Date, now, uc.loc)
	if err != nil {
		return nil, err
	}
	price := in.Price
	if price.IsZero() {
		price = product.Price
	}
	sale := &entity.Sale{
		ID:         uuid.New().String(),
		ProductID:  product.ID,
		Quantity:   in.Quantity,
		Price:      price,
		Date:       date,
		EmployeeID: employee.ID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.sales.Create(ctx, sale); err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// GetByID obtiene una venta por ID. (nil, nil) si no existe.
func (uc *SaleUseCase) GetByID(ctx context.Context, id string) (*dto.SaleResponse, error) {
	if !validID(id) {
		return nil, nil
	}
	sale, err := uc.sales.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	return toSaleResponse(sale), nil
}

// Update corrige una venta existente.
func (uc *SaleUseCase) Update(ctx context.Context, id string, in dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	if !validID(id) {
		return nil, nil
	}
	sale, err := uc.sales.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	if in.ProductID != nil {
		if !validID(*in.ProductID) {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.products.GetByID(ctx, *in.ProductID)
		if err != nil {
			return nil, fmt.Errorf("venta: producto: %w", err)
		}
		if product == nil {
			return nil, domain.ErrInvalidInput
		}
		sale.ProductID = product.ID
	}
	if in.EmployeeID != nil {
		if !validID(*in.EmployeeID) {
			return nil, domain.ErrInvalidInput
		}
		employee, err := uc.employees.GetByID(ctx, *in.EmployeeID)
		if err != nil {
			return nil, fmt.Errorf("venta: empleado: %w", err)
		}
		if employee == nil {
			return nil, domain.ErrInvalidInput
		}
		sale.EmployeeID = employee.ID
	}
	if in.Quantity != nil {
		if *in.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		sale.Quantity = *in.Quantity
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		sale.Price = *in.Price
	}
	if in.Date != nil {
		date, err := parseDate(*in.Date, sale.Date, uc.loc)
		if err != nil {
			return nil, err
		}
		sale.Date = date
	}
	sale.UpdatedAt = uc.now()
	if err := uc.sales.Update(ctx, sale); err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// List lista ventas con filtros opcionales de fechas (from/to inclusive), empleado y producto.
func (uc *SaleUseCase) List(ctx context.Context, in dto.ListSalesRequest) (*dto.SaleListResponse, error) {
	limit, offset := dto.NormalizePage(in.Limit, in.Offset)
	if (in.EmployeeID != "" && !validID(in.EmployeeID)) || (in.ProductID != "" && !validID(in.ProductID)) {
		return nil, domain.ErrInvalidInput
	}
	filter := repository.SaleFilter{
		EmployeeID: in.EmployeeID,
		ProductID:  in.ProductID,
		Limit:      limit,
		Offset:     offset,
	}
	if in.From != "" {
		from, err := time.ParseInLocation(dateLayout, in.From, uc.loc)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter.From = &from
	}
	if in.To != "" {
		to, err := time.ParseInLocation(dateLayout, in.To, uc.loc)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		to = to.AddDate(0, 0, 1)
		filter.To = &to
	}
	if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.sales.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una venta.
func (uc *SaleUseCase) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	return uc.sales.Delete(ctx, id)
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	return &dto.SaleResponse{
		ID:         s.ID,
		ProductID:  s.ProductID,
		EmployeeID: s.EmployeeID,
		Quantity:   s.Quantity,
		Price:      s.Price,
		Total:      s.Total(),
		Date:       s.Date,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}
