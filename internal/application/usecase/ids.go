package usecase

import "github.com/google/uuid"

// validID indica si id tiene formato UUID (todas las llaves primarias lo son).
// Un id mal formado en la ruta equivale a "no existe"; en el cuerpo, a entrada inválida.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
