// Package stockstatus clasifica registros de inventario (normal, bajo, crítico, vencido)
// y construye las vistas derivadas que consume el dashboard: alertas de stock bajo,
// stock vencido, conteos por estado y valor del inventario.
//
// Todas las funciones son puras: no hacen I/O, no guardan estado y reciben el instante
// de evaluación explícitamente. El llamador es responsable de entregar un snapshot
// consistente y de volver a invocarlas cuando el libro de inventario cambie.
package stockstatus

// Status es el estado derivado de un registro de stock. Nunca se persiste.
type Status string

// Estados posibles (enumeración cerrada).
const (
	StatusNormal   Status = "normal"
	StatusLow      Status = "low"
	StatusCritical Status = "critical"
	StatusExpired  Status = "expired"
)

// All devuelve los estados en orden de severidad creciente.
func All() []Status {
	return []Status{StatusNormal, StatusLow, StatusCritical, StatusExpired}
}

// Parse convierte un string en Status. ok es false si el valor no pertenece a la enumeración.
func Parse(s string) (Status, bool) {
	switch Status(s) {
	case StatusNormal, StatusLow, StatusCritical, StatusExpired:
		return Status(s), true
	}
	return "", false
}

// Valid indica si s es uno de los cuatro estados conocidos.
func (s Status) Valid() bool {
	_, ok := Parse(string(s))
	return ok
}

// NeedsReorder indica si el estado entra en la lista de alertas de reposición.
// Los vencidos quedan fuera: se reportan en su propia vista.
func (s Status) NeedsReorder() bool {
	return s == StatusLow || s == StatusCritical
}

// Label devuelve la etiqueta para mostrar. Valores desconocidos reciben una etiqueta por defecto.
func (s Status) Label() string {
	switch s {
	case StatusNormal:
		return "Normal"
	case StatusLow:
		return "Stock bajo"
	case StatusCritical:
		return "Crítico"
	case StatusExpired:
		return "Vencido"
	default:
		return "Desconocido"
	}
}
