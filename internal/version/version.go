package version

// Version es la versión actual de MateRelay
// Esta versión debe actualizarse en cada release
const Version = "0.1.0"

// FullVersion retorna la versión con el prefijo v
func FullVersion() string {
	return "v" + Version
}
