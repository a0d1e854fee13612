package theme

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

// assertNoEmptyStrings walks every group and fails on an empty token.
func assertNoEmptyStrings(t *testing.T, path string, v reflect.Value) {
	t.Helper()
	switch v.Kind() {
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			assertNoEmptyStrings(t, path+"."+v.Type().Field(i).Name, v.Field(i))
		}
	case reflect.String:
		if v.String() == "" {
			t.Errorf("token %s is empty", path)
		}
	}
}

func TestFor_Complete(t *testing.T) {
	for _, mode := range []Mode{Dark, Light} {
		t.Run(string(mode), func(t *testing.T) {
			tokens := For(mode)
			assert.Equal(t, mode, tokens.Mode)
			assertNoEmptyStrings(t, string(mode), reflect.ValueOf(tokens))
		})
	}
}

func TestFor_Stable(t *testing.T) {
	for _, mode := range []Mode{Dark, Light} {
		first := For(mode)
		second := For(mode)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("For(%s) not stable (-first +second):\n%s", mode, diff)
		}
	}
}

func TestFor_ModesDiffer(t *testing.T) {
	assert.NotEqual(t, For(Dark).Layout, For(Light).Layout)
	assert.Equal(t, For(Dark), For(Mode("sepia")))
}

func TestFor_ReturnsCopy(t *testing.T) {
	tokens := For(Dark)
	tokens.Text.Main = "changed"
	assert.Equal(t, "text-white", For(Dark).Text.Main)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		override  string
		persisted string
		want      Mode
	}{
		{"default", "", "", Dark},
		{"persisted", "", "light", Light},
		{"override wins", "dark", "light", Dark},
		{"invalid override falls back", "blue", "light", Light},
		{"invalid persisted falls back", "", "blue", Dark},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.override, tt.persisted))
		})
	}
}
