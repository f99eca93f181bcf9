package repository

// FlashStore guarda un mensaje de un solo uso que sobrevive a un "reload":
// se escribe al cerrar sesión y la portada lo consume una única vez.
type FlashStore interface {
	// Dejar escribe el mensaje pendiente, reemplazando cualquiera anterior.
	Dejar(mensaje string) error
	// Tomar devuelve y elimina el mensaje pendiente; ok=false si no hay ninguno.
	Tomar() (mensaje string, ok bool, err error)
}
