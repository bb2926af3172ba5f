package templexp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251014-go-pkg-poster/pkg/templexp"
)

func TestExpand_ShellParameters(t *testing.T) {
	vars := func() templexp.Vars {
		return templexp.Vars{"ROOT": "/srv/poster", "EMPTY": ""}
	}

	tests := []struct {
		name     string
		template string
		want     string
		errMsg   string
	}{
		{name: "no dollar", template: "templates", want: "templates"},
		{name: "basic", template: "${ROOT}/templates", want: "/srv/poster/templates"},
		{name: "missing is empty", template: "x=${MISSING}", want: "x="},
		{name: "colon default on empty", template: "${EMPTY:-.}/out", want: "./out"},
		{name: "plain default keeps empty", template: "x=${EMPTY-fallback}", want: "x="},
		{name: "default on missing", template: "${MISSING-fallback}", want: "fallback"},
		{name: "alternate when set", template: "${ROOT:+alt}", want: "alt"},
		{name: "alternate when empty", template: "[${EMPTY:+alt}]", want: "[]"},
		{name: "plain alternate when empty", template: "[${EMPTY+alt}]", want: "[alt]"},
		{name: "nested default", template: "${MISSING:-${ROOT}}/t", want: "/srv/poster/t"},
		{name: "assign then reuse", template: "${NEW:=v}-${NEW}", want: "v-v"},
		{name: "literal dollar", template: "$$${ROOT}", want: "$/srv/poster"},
		{name: "bare dollar kept", template: "cost $5 $", want: "cost $5 $"},
		{name: "unclosed kept", template: "${ROOT", want: "${ROOT"},
		{name: "invalid name kept", template: "${1ROOT}", want: "${1ROOT}"},
		{name: "unknown operator kept", template: "${ROOT%x}", want: "${ROOT%x}"},
		{name: "required with message", template: "${MISSING:?need root}", errMsg: "need root"},
		{name: "required without message", template: "${EMPTY:?}", errMsg: "parameter null or not set"},
		{name: "required satisfied", template: "${ROOT?}", want: "/srv/poster"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := templexp.Expand(tt.template, vars())
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandTemplate_Environment(t *testing.T) {
	t.Setenv("POSTER_ROOT", "/data")

	got, err := templexp.ExpandTemplate(`dir: "${POSTER_ROOT}/templates"`)
	require.NoError(t, err)
	assert.Equal(t, `dir: "/data/templates"`, got)
}

func TestExpand_AssignDoesNotTouchEnvironment(t *testing.T) {
	vars := templexp.EnvVars()
	_, err := templexp.Expand("${POSTER_TEMPLEXP_ASSIGNED:=x}", vars)
	require.NoError(t, err)

	assert.Equal(t, "x", vars["POSTER_TEMPLEXP_ASSIGNED"])
	_, inEnv := templexp.EnvVars()["POSTER_TEMPLEXP_ASSIGNED"]
	assert.False(t, inEnv)
}
