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
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Options is the fully resolved configuration of a single run.
type Options struct {
	Width        int    `validate:"gte=0"`
	Format       string `validate:"oneof=text json"`
	Separator    string `validate:"singleline"`
	Limit        int    `validate:"gte=0"`
	Unique       bool
	Permutations bool
}

// CountOptions configures a count run.
type CountOptions struct {
	Width        int `validate:"gte=0"`
	Permutations bool
}

// Options returns run options with the config values as defaults.
func (c *Config) Options(width int) Options {
	return Options{
		Width:     width,
		Format:    c.Format,
		Separator: c.Separator,
		Limit:     c.Limit,
		Unique:    c.Unique,
	}
}

type Validator struct {
	v *validator.Validate
}

func NewValidator() (*Validator, error) {
	const op = "config.NewValidator"

	v := validator.New()

	if err := v.RegisterValidation("singleline", singleLine); err != nil {
		return nil, fmt.Errorf(`%s: error registering "singleline" validator: %w`, op, err)
	}

	return &Validator{
		v: v,
	}, nil
}

// Validate checks Options or CountOptions against their tags.
func (cv *Validator) Validate(opts any) error {
	if err := cv.v.Struct(opts); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}

func singleLine(fl validator.FieldLevel) bool {
	return !strings.ContainsAny(fl.Field().String(), "\r\n")
}
