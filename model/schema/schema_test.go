package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	table := Default()
	require.NotNil(t, table)

	assert.Equal(t, "start", table.Singleton)
	assert.NotContains(t, table.ArrayFields, "start")

	for _, field := range []string{"decisions", "screens", "waits", "variables", "processMetadataValues"} {
		assert.True(t, table.IsArrayField(field), field)
	}
	assert.False(t, table.IsArrayField("label"))

	// every entry except the singleton must cover an array field
	for field := range table.Entries {
		if field == table.Singleton {
			continue
		}
		assert.True(t, table.IsArrayField(field), "entry %v has no array field", field)
	}

	decisions := table.Entry("decisions")
	require.NotNil(t, decisions)
	assert.Contains(t, decisions.Fields, "rules")
	require.NotNil(t, decisions.Nested["rules"])
	assert.Contains(t, decisions.Nested["rules"].Fields, "conditions")

	screens := table.Entry("screens")
	require.NotNil(t, screens)
	fields := screens.Nested["fields"]
	require.NotNil(t, fields)
	assert.Equal(t, "fields", fields.Recursive)
	assert.Contains(t, fields.Fields, fields.Recursive, "recursive field must also be coerced")

	assert.Nil(t, table.Entry("constants"))

	// Default is shared
	assert.Same(t, table, Default())
}

func TestParse(t *testing.T) {
	testCases := []struct {
		name        string
		data        string
		expectErr   bool
		arrayFields []string
	}{
		{
			name: "minimal table",
			data: `
arrayFields: [widgets]
entries:
  widgets:
    fields: [parts]
`,
			arrayFields: []string{"widgets"},
		},
		{
			name:      "malformed document",
			data:      "arrayFields: [",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			table, err := Parse([]byte(tc.data))
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.arrayFields, table.ArrayFields)
		})
	}
}
