package config

// GetAuthSkipperPaths returns a list of paths to skip authentication for
func GetAuthSkipperPaths() []string {
	// Public catalog reads and the health probe need no credentials
	return []string{"/health", "/api/products", "/api/products/:id", "/api/products/search"}
}
