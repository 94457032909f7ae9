// Package format da formato legible a montos y porcentajes para reportes y logs.
package format

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Printer formatea valores según un idioma (separadores de miles y decimales).
type Printer struct {
	p *message.Printer
}

// New crea un Printer para la etiqueta BCP 47 dada ("es", "en-US", ...). Etiqueta inválida usa inglés.
func New(tag string) *Printer {
	t, err := language.Parse(tag)
	if err != nil {
		t = language.English
	}
	return &Printer{p: message.NewPrinter(t)}
}

// Money monto con símbolo $ y 2 decimales, ej. "$1,234.50" (en) o "$1.234,50" (es).
func (f *Printer) Money(d decimal.Decimal) string {
	v := d.Round(2).InexactFloat64()
	if v < 0 {
		return f.p.Sprintf("-$%.2f", -v)
	}
	return f.p.Sprintf("$%.2f", v)
}

// Percent porcentaje con 2 decimales, ej. "12.35%".
func (f *Printer) Percent(d decimal.Decimal) string {
	return f.p.Sprintf("%.2f%%", d.Round(2).InexactFloat64())
}

// Int entero con separador de miles.
func (f *Printer) Int(n int) string {
	return f.p.Sprintf("%d", n)
}
