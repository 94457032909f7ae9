package costing

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// DayRange ventana de SalesByDay.
type DayRange string

const (
	RangeWeek  DayRange = "week"
	RangeMonth DayRange = "month"
)

// ParseDayRange interpreta "week" o "month"; vacío equivale a month.
func ParseDayRange(s string) (DayRange, bool) {
	switch DayRange(s) {
	case RangeWeek:
		return RangeWeek, true
	case RangeMonth, "":
		return RangeMonth, true
	}
	return "", false
}

// DaySales ventas de un día del mes.
type DaySales struct {
	Day           int
	Date          time.Time // medianoche del día, en la zona horaria de now
	TotalRevenue  decimal.Decimal
	TotalQuantity int
	Employees     []string // nombres distintos, en orden de primera venta
}

// SalesByDay agrupa por día del mes las ventas del mes relevante:
// el mes en curso si tiene ventas; si no, el mes más reciente con alguna venta.
// Con RangeWeek se limita a los últimos 7 días de esa ventana (hasta hoy en el mes en curso,
// hasta el último día del mes en otro caso). Ventas con fecha cero no entran en ninguna ventana.
func SalesByDay(sales []entity.Sale, employees []entity.Employee, rng DayRange, now time.Time) []DaySales {
	loc := now.Location()
	year, month, ok := selectMonth(sales, now)
	if !ok {
		return []DaySales{}
	}

	firstDay := 1
	lastDay := daysIn(year, month, loc)
	if rng == RangeWeek {
		anchor := lastDay
		if year == now.Year() && month == now.Month() {
			anchor = now.Day()
		}
		lastDay = anchor
		firstDay = anchor - 6
		if firstDay < 1 {
			firstDay = 1
		}
	}

	names := employeeNames(employees)
	rows := make([]DaySales, 0)
	pos := make(map[int]int)
	seen := make(map[int]map[string]struct{})
	for _, s := range sales {
		if s.Date.IsZero() {
			continue
		}
		d := s.Date.In(loc)
		if d.Year() != year || d.Month() != month || d.Day() < firstDay || d.Day() > lastDay {
			continue
		}
		day := d.Day()
		i, ok := pos[day]
		if !ok {
			i = len(rows)
			pos[day] = i
			seen[day] = make(map[string]struct{})
			rows = append(rows, DaySales{
				Day:       day,
				Date:      time.Date(year, month, day, 0, 0, 0, 0, loc),
				Employees: []string{},
			})
		}
		rows[i].TotalRevenue = rows[i].TotalRevenue.Add(s.Total())
		rows[i].TotalQuantity += s.Quantity
		name := LookupName(names, s.EmployeeID)
		if _, dup := seen[day][name]; !dup {
			seen[day][name] = struct{}{}
			rows[i].Employees = append(rows[i].Employees, name)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Day < rows[j].Day })
	return rows
}

// selectMonth elige el mes en curso si tiene ventas; si no, el más reciente con ventas.
func selectMonth(sales []entity.Sale, now time.Time) (int, time.Month, bool) {
	loc := now.Location()
	current := monthIndex(now.Year(), now.Month())
	latest, found := 0, false
	for _, s := range sales {
		if s.Date.IsZero() {
			continue
		}
		d := s.Date.In(loc)
		m := monthIndex(d.Year(), d.Month())
		if m == current {
			return now.Year(), now.Month(), true
		}
		if !found || m > latest {
			latest, found = m, true
		}
	}
	if !found {
		return 0, 0, false
	}
	return latest / 12, time.Month(latest%12 + 1), true
}

func monthIndex(year int, month time.Month) int {
	return year*12 + int(month) - 1
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}
