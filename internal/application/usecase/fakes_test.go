package usecase_test

import (
	"context"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

const (
	pizzaID   = "0b7f3c2e-5a1d-4c8e-9f2a-1d3e5b7c9a01"
	luisID    = "6e2a9d41-8c3b-4f7e-a5d2-3b1c9e7f2a02"
	anaID     = "a3c5e7f9-1b2d-4e6f-8a0c-2d4f6b8a0c03"
	ausenteID = "ffffffff-0000-4000-8000-000000000000"
)

type memProducts struct{ rows map[string]*entity.Product }

func newMemProducts(ps ...entity.Product) *memProducts {
	m := &memProducts{rows: map[string]*entity.Product{}}
	for i := range ps {
		p := ps[i]
		m.rows[p.ID] = &p
	}
	return m
}

func (m *memProducts) Create(_ context.Context, p *entity.Product) error {
	m.rows[p.ID] = p
	return nil
}

func (m *memProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memProducts) Update(_ context.Context, p *entity.Product) error {
	if _, ok := m.rows[p.ID]; !ok {
		return domain.ErrNotFound
	}
	m.rows[p.ID] = p
	return nil
}

func (m *memProducts) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(m.rows))
	for _, p := range m.rows {
		out = append(out, p)
	}
	return out, nil
}

func (m *memProducts) Delete(_ context.Context, id string) error {
	if _, ok := m.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

type memEmployees struct{ rows map[string]*entity.Employee }

func newMemEmployees(es ...entity.Employee) *memEmployees {
	m := &memEmployees{rows: map[string]*entity.Employee{}}
	for i := range es {
		e := es[i]
		m.rows[e.ID] = &e
	}
	return m
}

func (m *memEmployees) Create(_ context.Context, e *entity.Employee) error {
	m.rows[e.ID] = e
	return nil
}

func (m *memEmployees) GetByID(_ context.Context, id string) (*entity.Employee, error) {
	e, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (m *memEmployees) Update(_ context.Context, e *entity.Employee) error {
	m.rows[e.ID] = e
	return nil
}

func (m *memEmployees) List(_ context.Context, limit, offset int) ([]*entity.Employee, error) {
	out := make([]*entity.Employee, 0, len(m.rows))
	for _, e := range m.rows {
		out = append(out, e)
	}
	return out, nil
}

func (m *memEmployees) Delete(_ context.Context, id string) error {
	delete(m.rows, id)
	return nil
}

type memSales struct {
	rows       map[string]*entity.Sale
	lastFilter repository.SaleFilter
}

func newMemSales() *memSales { return &memSales{rows: map[string]*entity.Sale{}} }

func (m *memSales) Create(_ context.Context, s *entity.Sale) error {
	m.rows[s.ID] = s
	return nil
}

func (m *memSales) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	s, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (m *memSales) Update(_ context.Context, s *entity.Sale) error {
	m.rows[s.ID] = s
	return nil
}

func (m *memSales) List(_ context.Context, f repository.SaleFilter) ([]*entity.Sale, error) {
	m.lastFilter = f
	out := make([]*entity.Sale, 0, len(m.rows))
	for _, s := range m.rows {
		out = append(out, s)
	}
	return out, nil
}

func (m *memSales) Delete(_ context.Context, id string) error {
	delete(m.rows, id)
	return nil
}

type memExpenses struct{ rows map[string]*entity.Expense }

func newMemExpenses() *memExpenses { return &memExpenses{rows: map[string]*entity.Expense{}} }

func (m *memExpenses) Create(_ context.Context, e *entity.Expense) error {
	m.rows[e.ID] = e
	return nil
}

func (m *memExpenses) GetByID(_ context.Context, id string) (*entity.Expense, error) {
	e, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (m *memExpenses) Update(_ context.Context, e *entity.Expense) error {
	m.rows[e.ID] = e
	return nil
}

func (m *memExpenses) List(_ context.Context, limit, offset int) ([]*entity.Expense, error) {
	out := make([]*entity.Expense, 0, len(m.rows))
	for _, e := range m.rows {
		out = append(out, e)
	}
	return out, nil
}

func (m *memExpenses) Delete(_ context.Context, id string) error {
	delete(m.rows, id)
	return nil
}

type memUsers struct{ rows map[string]*entity.User }

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	m.rows[u.ID] = u
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.rows {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
