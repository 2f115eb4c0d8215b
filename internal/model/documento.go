package model

// Documento is a schema-flexible store document (carnet or cita). The
// profile fields are opaque to this backend: it only reads, sanitizes and
// returns them, so no struct schema is imposed.
type Documento = map[string]interface{}
