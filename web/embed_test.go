package web_test

import (
	"testing"

	"github.com/fireview/backend/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesParse(t *testing.T) {
	templates, err := web.Templates()
	require.NoError(t, err)

	for _, name := range []string{"overview.html", "transactions.html", "version.html"} {
		assert.NotNil(t, templates.Lookup(name), "template %s is defined", name)
	}
}
