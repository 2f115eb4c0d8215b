package model

// Acciones de auditoría registradas por el backend.
const (
	AuditLogin       = "LOGIN"
	AuditLoginFailed = "LOGIN_FAILED"
	AuditLogout      = "LOGOUT"
	AuditViewCarnet  = "VIEW_CARNET"
	AuditCreateUser  = "CREATE_USER"
	AuditUpdateUser  = "UPDATE_USER"
	AuditDeleteUser  = "DELETE_USER"
)

// AuditLog is an append-only audit trail entry. Entries are never updated
// or deleted; queries filter by usuario substring and accion, newest first.
type AuditLog struct {
	ID        string `bson:"id" json:"id"` // audit:{yyyymmdd-hhmmss}-{rand}
	Usuario   string `bson:"usuario" json:"usuario"`
	Accion    string `bson:"accion" json:"accion"`
	Recurso   string `bson:"recurso,omitempty" json:"recurso,omitempty"`
	Detalles  string `bson:"detalles,omitempty" json:"detalles,omitempty"`
	Timestamp string `bson:"timestamp" json:"timestamp"` // ISO 8601
	IP        string `bson:"ip,omitempty" json:"ip,omitempty"`
}
