package usecase

import (
	"strings"
	"time"

	"github.com/jhoicas/Restaurante-api/internal/domain"
)

const dateLayout = "2006-01-02"

// parseDate acepta YYYY-MM-DD (medianoche en loc) o RFC3339. Vacío devuelve fallback.
func parseDate(s string, fallback time.Time, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback, nil
	}
	if t, err := time.ParseInLocation(dateLayout, s, loc); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, domain.ErrInvalidInput
}

func locationOrLocal(loc *time.Location) *time.Location {
	if loc == nil {
		return time.Local
	}
	return loc
}
