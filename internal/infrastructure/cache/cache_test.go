package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache(t *testing.T) {
	t.Run("guarda y recupera", func(t *testing.T) {
		c := NewCache(4, time.Minute)
		key := c.GenerateHash("gemini" + "prompt")

		c.Set(key, "respuesta")
		got, ok := c.Get(key)

		assert.True(t, ok)
		assert.Equal(t, "respuesta", got)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("miss devuelve false", func(t *testing.T) {
		c := NewCache(4, time.Minute)
		_, ok := c.Get("nope")
		assert.False(t, ok)
	})

	t.Run("expulsa la entrada menos usada", func(t *testing.T) {
		c := NewCache(2, time.Minute)
		c.Set("a", "1")
		c.Set("b", "2")
		_, _ = c.Get("a")
		c.Set("c", "3")

		_, okA := c.Get("a")
		_, okB := c.Get("b")
		assert.True(t, okA)
		assert.False(t, okB)
	})

	t.Run("las entradas expiran", func(t *testing.T) {
		c := NewCache(2, 20*time.Millisecond)
		c.Set("a", "1")

		assert.Eventually(t, func() bool {
			_, ok := c.Get("a")
			return !ok
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("Clean vacía la caché", func(t *testing.T) {
		c := NewCache(2, time.Minute)
		c.Set("a", "1")
		c.Clean()
		assert.Equal(t, 0, c.Len())
	})
}

func TestGenerateHash(t *testing.T) {
	c := NewCache(1, time.Minute)

	assert.Equal(t, c.GenerateHash("x"), c.GenerateHash("x"))
	assert.NotEqual(t, c.GenerateHash("x"), c.GenerateHash("y"))
	assert.Len(t, c.GenerateHash("x"), 64)
}
