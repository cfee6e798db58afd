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

// Package config holds the defaults of the combgen command, read from
// the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Format    string `env:"COMBGEN_FORMAT" env-default:"text"`
	Separator string `env:"COMBGEN_SEPARATOR" env-default:" "`
	Limit     int    `env:"COMBGEN_LIMIT" env-default:"0"`
	Unique    bool   `env:"COMBGEN_UNIQUE" env-default:"false"`
}

// Read loads the .env file from the working directory, if there is one,
// and then fills the config from the environment.
func Read() (*Config, error) {
	const op = "config.Read"

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: error loading .env file: %w", op, err)
	}

	config := Config{}

	if err := cleanenv.ReadEnv(&config); err != nil {
		return nil, fmt.Errorf("%s: error reading environment: %w", op, err)
	}

	return &config, nil
}
