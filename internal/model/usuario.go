package model

import "fmt"

// Roles del personal. Cada rol corresponde a un área del servicio de salud;
// "admin" controla la gestión de usuarios y la auditoría.
const (
	RolAdmin                  = "admin"
	RolMedico                 = "medico"
	RolNutricion              = "nutricion"
	RolPsicologia             = "psicologia"
	RolOdontologia            = "odontologia"
	RolEnfermeria             = "enfermeria"
	RolRecepcion              = "recepcion"
	RolServiciosEstudiantiles = "servicios_estudiantiles"
	RolLectura                = "lectura"
)

// Roles is the closed set of valid staff roles.
var Roles = []string{
	RolAdmin, RolMedico, RolNutricion, RolPsicologia, RolOdontologia,
	RolEnfermeria, RolRecepcion, RolServiciosEstudiantiles, RolLectura,
}

func RolValido(rol string) bool {
	for _, r := range Roles {
		if r == rol {
			return true
		}
	}
	return false
}

// UsuarioAdmin is a staff account in the usuarios container.
// ID and Username are immutable after creation; partial updates may only
// touch contact fields, rol, campus, departamento and activo.
type UsuarioAdmin struct {
	ID               string  `bson:"id" json:"id"`
	Username         string  `bson:"username" json:"username"`
	Email            string  `bson:"email" json:"email"`
	PasswordHash     string  `bson:"password_hash" json:"-"`
	NombreCompleto   string  `bson:"nombre_completo" json:"nombre_completo"`
	Rol              string  `bson:"rol" json:"rol"`
	Campus           string  `bson:"campus" json:"campus"`
	Departamento     string  `bson:"departamento" json:"departamento"`
	Activo           bool    `bson:"activo" json:"activo"`
	FechaCreacion    string  `bson:"fecha_creacion" json:"fecha_creacion"` // ISO 8601
	UltimoAcceso     *string `bson:"ultimo_acceso" json:"ultimo_acceso"`
	IntentosFallidos int     `bson:"intentos_fallidos" json:"-"`
	BloqueadoHasta   *string `bson:"bloqueado_hasta" json:"-"`
}

// UsuarioID builds the canonical account id: user:{username}@{campus}.
func UsuarioID(username, campus string) string {
	return fmt.Sprintf("user:%s@%s", username, campus)
}
