package form_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surveymail/surveymail/internal/form"
)

func TestFormInsertionOrder(t *testing.T) {
	t.Parallel()

	f := form.New()
	f.Set("b", "1")
	f.Set("a", "2")
	f.Set("c", "3")
	f.Set("a", "4") // overwrite keeps position

	assert.Equal(t, []string{"b", "a", "c"}, f.Keys())
	v, ok := f.Get("a")
	require.True(t, ok)
	assert.Equal(t, "4", v)
}

func TestFormAddCollectsMultiValues(t *testing.T) {
	t.Parallel()

	f := form.New()
	f.Add("tag", "one")
	f.Add("tag", "two")
	f.Add("tag", "three")
	f.Add("single", "only")

	v, ok := f.Get("tag")
	require.True(t, ok)
	assert.Equal(t, []string{"one", "two", "three"}, v)

	v, ok = f.Get("single")
	require.True(t, ok)
	assert.Equal(t, "only", v)
}

func TestFormStringValue(t *testing.T) {
	t.Parallel()

	f := form.New()
	f.Set("s", "hello")
	f.Set("multi", []string{"first", "second"})
	f.Set("n", nil)

	assert.Equal(t, "hello", f.StringValue("s"))
	assert.Equal(t, "first", f.StringValue("multi"))
	assert.Equal(t, "", f.StringValue("n"))
	assert.Equal(t, "", f.StringValue("absent"))
}

func TestFormJSONPreservesOrder(t *testing.T) {
	t.Parallel()

	f := form.New()
	f.Set("z_last_alphabetically", "1")
	f.Set("a_first_alphabetically", "2")
	f.Set("html", "<b>&</b>")

	out, err := f.JSON()
	require.NoError(t, err)

	assert.Less(t, strings.Index(out, "z_last_alphabetically"), strings.Index(out, "a_first_alphabetically"))
	// No <-style escaping in the dump; HTML escaping happens later.
	assert.Contains(t, out, "<b>&</b>")
	assert.Contains(t, out, "  \"html\"")
}

func TestFormJSONEmpty(t *testing.T) {
	t.Parallel()

	out, err := form.New().JSON()
	require.NoError(t, err)
	assert.Equal(t, "{}", out)
}
