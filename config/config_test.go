package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSQLConfigured(t *testing.T) {
	tests := []struct {
		name string
		b    backend
		want bool
	}{
		{"both", backend{URL: "postgres://db", Key: "k"}, true},
		{"url only", backend{URL: "postgres://db"}, false},
		{"key only", backend{Key: "k"}, false},
		{"local", backend{Local: true}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Config{Backend: tt.b}.SQLConfigured())
		})
	}
}

func TestRedactURL(t *testing.T) {
	t.Run("Userinfo", func(t *testing.T) {
		got := redactURL("postgres://user:secret@db:5432/shop")
		assert.Equal(t, "postgres://***@db:5432/shop", got)
	})

	t.Run("NoUserinfo", func(t *testing.T) {
		assert.Equal(t, "postgres://db/shop", redactURL("postgres://db/shop"))
	})

	t.Run("NotURL", func(t *testing.T) {
		assert.Equal(t, "", redactURL(""))
	})
}

func TestMask(t *testing.T) {
	assert.Equal(t, `""`, mask(""))
	assert.Equal(t, "***", mask("secret"))
}
