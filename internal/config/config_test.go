// Copyright Krzesimir Nowak
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDefaults(t *testing.T) {
	cfg, err := Read()
	require.NoError(t, err)
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, " ", cfg.Separator)
	assert.Equal(t, 0, cfg.Limit)
	assert.False(t, cfg.Unique)
}

func TestReadEnv(t *testing.T) {
	t.Setenv("COMBGEN_FORMAT", "json")
	t.Setenv("COMBGEN_SEPARATOR", ",")
	t.Setenv("COMBGEN_LIMIT", "7")
	t.Setenv("COMBGEN_UNIQUE", "true")
	cfg, err := Read()
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, ",", cfg.Separator)
	assert.Equal(t, 7, cfg.Limit)
	assert.True(t, cfg.Unique)

	opts := cfg.Options(3)
	assert.Equal(t, Options{
		Width:     3,
		Format:    FormatJSON,
		Separator: ",",
		Limit:     7,
		Unique:    true,
	}, opts)
}

func TestReadBadEnv(t *testing.T) {
	t.Setenv("COMBGEN_LIMIT", "many")
	_, err := Read()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	valid := Options{Width: 2, Format: FormatText, Separator: " "}
	assert.NoError(t, v.Validate(valid))

	tests := []struct {
		name  string
		mod   func(*Options)
		field string
	}{
		{"negative width", func(o *Options) { o.Width = -1 }, "Width"},
		{"unknown format", func(o *Options) { o.Format = "xml" }, "Format"},
		{"multiline separator", func(o *Options) { o.Separator = "\n" }, "Separator"},
		{"negative limit", func(o *Options) { o.Limit = -3 }, "Limit"},
	}
	for _, test := range tests {
		opts := valid
		test.mod(&opts)
		err := v.Validate(opts)
		require.Error(t, err, test.name)
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs, test.name)
		require.Len(t, verrs, 1, test.name)
		assert.Equal(t, test.field, verrs[0].Field(), test.name)
	}
}

func TestValidateCount(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	assert.NoError(t, v.Validate(CountOptions{Width: 0}))
	assert.NoError(t, v.Validate(CountOptions{Width: 4, Permutations: true}))

	err = v.Validate(CountOptions{Width: -2})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, "Width", verrs[0].Field())
	assert.Equal(t, "gte", verrs[0].Tag())
}
