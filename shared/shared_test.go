package shared_test

import (
	"testing"

	"holipass/shared"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTicketID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "already normalized", input: "AB12CD34", want: "AB12CD34"},
		{name: "lowercase with trailing space", input: "ab12cd34 ", want: "AB12CD34"},
		{name: "surrounding whitespace", input: "  Ab12Cd34\t", want: "AB12CD34"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.NormalizeTicketID(tt.input))
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "limiter:1.2.3.4", shared.BuildCacheKey("limiter", "1.2.3.4"))
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "b", shared.FirstNonEmpty("", "  ", "b", "c"))
	assert.Equal(t, "", shared.FirstNonEmpty("", " "))
}
