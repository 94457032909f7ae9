// Package costing es el motor de costos y márgenes del restaurante.
//
// Todas las funciones son puras: reciben colecciones completas (snapshot) y devuelven
// agregados nuevos, sin I/O, sin estado compartido y sin modificar sus entradas.
// Ninguna división llega a cero: cada caso tiene un valor por defecto explícito.
package costing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// Valores por defecto del modelo de costos.
var (
	DefaultUnitCostEstimate        = decimal.RequireFromString("0.5")
	DefaultFallbackHourlyRate      = decimal.NewFromInt(15)
	DefaultStorageCostPerUnitMonth = decimal.NewFromInt(5)
)

// DefaultDaysPerMonth se usa en vez de los días reales del mes para que el costo sea determinista.
const DefaultDaysPerMonth = 30

// Rates constantes del modelo de costo por unidad.
type Rates struct {
	UnitCostEstimate        decimal.Decimal // costo estimado por unidad de ingrediente
	FallbackHourlyRate      decimal.Decimal // tarifa horaria cuando no hay empleados
	StorageCostPerUnitMonth decimal.Decimal // costo mensual por unidad de volumen
	DaysPerMonth            int
}

// DefaultRates devuelve las tarifas por defecto.
func DefaultRates() Rates {
	return Rates{
		UnitCostEstimate:        DefaultUnitCostEstimate,
		FallbackHourlyRate:      DefaultFallbackHourlyRate,
		StorageCostPerUnitMonth: DefaultStorageCostPerUnitMonth,
		DaysPerMonth:            DefaultDaysPerMonth,
	}
}

func (r Rates) daysPerMonth() decimal.Decimal {
	if r.DaysPerMonth <= 0 {
		return decimal.NewFromInt(DefaultDaysPerMonth)
	}
	return decimal.NewFromInt(int64(r.DaysPerMonth))
}

// Breakdown desglose del costo estimado de un producto.
type Breakdown struct {
	Ingredient decimal.Decimal
	Labor      decimal.Decimal
	Storage    decimal.Decimal
}

// Total suma los tres componentes.
func (b Breakdown) Total() decimal.Decimal {
	return b.Ingredient.Add(b.Labor).Add(b.Storage)
}

// Scale multiplica cada componente por units. La suma del resultado es exactamente Total()×units.
func (b Breakdown) Scale(units int) Breakdown {
	u := decimal.NewFromInt(int64(units))
	return Breakdown{
		Ingredient: b.Ingredient.Mul(u),
		Labor:      b.Labor.Mul(u),
		Storage:    b.Storage.Mul(u),
	}
}

// Calculator aplica el modelo de costos con un conjunto fijo de tarifas.
type Calculator struct {
	rates Rates
}

// NewCalculator construye el calculador con las tarifas dadas.
func NewCalculator(rates Rates) *Calculator {
	return &Calculator{rates: rates}
}

// Rates devuelve las tarifas configuradas.
func (c *Calculator) Rates() Rates {
	return c.rates
}

// AverageHourlyRate promedio aritmético de HourlyRate; fallback si no hay empleados.
func AverageHourlyRate(employees []entity.Employee, fallback decimal.Decimal) decimal.Decimal {
	if len(employees) == 0 {
		return fallback
	}
	sum := decimal.Zero
	for _, e := range employees {
		sum = sum.Add(e.HourlyRate)
	}
	return sum.Div(decimal.NewFromInt(int64(len(employees))))
}

// UnitCost estima el costo de producir una unidad:
//
//	ingredientes = Σ cantidad × UnitCostEstimate
//	mano de obra = EmployeeHoursRequired × tarifa horaria promedio
//	bodegaje     = StorageRequired × StorageCostPerUnitMonth / DaysPerMonth
//
// La mano de obra no se divide por PreparationTime: EmployeeHoursRequired ya es la asignación completa por unidad.
func (c *Calculator) UnitCost(p entity.Product, employees []entity.Employee) Breakdown {
	return c.unitCostWithRate(p, AverageHourlyRate(employees, c.rates.FallbackHourlyRate))
}

func (c *Calculator) unitCostWithRate(p entity.Product, hourlyRate decimal.Decimal) Breakdown {
	ingredient := decimal.Zero
	for _, ing := range p.Ingredients {
		ingredient = ingredient.Add(ing.Quantity.Mul(c.rates.UnitCostEstimate))
	}
	return Breakdown{
		Ingredient: ingredient,
		Labor:      p.EmployeeHoursRequired.Mul(hourlyRate),
		Storage:    p.StorageRequired.Mul(c.rates.StorageCostPerUnitMonth).Div(c.rates.daysPerMonth()),
	}
}
