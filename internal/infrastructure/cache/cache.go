package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Cache guarda respuestas de completions en memoria. No persiste nada en disco.
type Cache struct {
	entries *expirable.LRU[string, string]
}

// NewCache crea una caché LRU de a lo sumo size entradas que expiran tras ttl.
func NewCache(size int, ttl time.Duration) *Cache {
	return &Cache{
		entries: expirable.NewLRU[string, string](size, nil, ttl),
	}
}

// GenerateHash genera un hash SHA256 del contenido
func (c *Cache) GenerateHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// Get obtiene una respuesta del caché
func (c *Cache) Get(hash string) (string, bool) {
	return c.entries.Get(hash)
}

// Set guarda una respuesta en el caché
func (c *Cache) Set(hash, response string) {
	c.entries.Add(hash, response)
}

// Len retorna la cantidad de entradas vigentes
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Clean elimina todo el cache
func (c *Cache) Clean() {
	c.entries.Purge()
}
