/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrUnsupportedValue indicates a YAML node that does not flatten to
	// a dotted string key, such as a sequence.
	ErrUnsupportedValue = errors.New("mfx(config): unsupported value shape")
)

// EnvPrefix selects which environment variables override configuration.
const EnvPrefix = "MFX_"

// Load reads a YAML file and flattens its nested mappings to dotted
// keys, so
//
//	mfx:
//	  value:
//	    format:
//	      date: iso
//
// becomes "mfx.value.format.date" = "iso".
func Load(path string) (Static, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mfx(config): read %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse flattens YAML source the way Load does.
func Parse(raw []byte) (Static, error) {
	var root map[string]any
	if err := yaml.Unmarshal(raw, &root); err != nil {
		return nil, fmt.Errorf("mfx(config): %w", err)
	}
	s := Static{}
	if err := flatten("", root, s); err != nil {
		return nil, err
	}
	return s, nil
}

func flatten(prefix string, node map[string]any, into Static) error {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch vv := v.(type) {
		case map[string]any:
			if err := flatten(key, vv, into); err != nil {
				return err
			}
		case string:
			into[key] = vv
		case bool, int, int64, uint64, float64:
			into[key] = fmt.Sprint(vv)
		case nil:
			into[key] = ""
		default:
			return fmt.Errorf("%w: key %q holds %T", ErrUnsupportedValue, key, v)
		}
	}
	return nil
}

// FromEnv collects overrides from the process environment. A variable
// MFX_VALUE_FORMAT_DATE maps to the key "mfx.value.format.date";
// underscores become dots, so keys containing literal underscores cannot
// be set this way.
func FromEnv() Static {
	s := Static{}
	for _, kv := range os.Environ() {
		name, val, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, EnvPrefix) {
			continue
		}
		key := strings.ToLower(strings.ReplaceAll(name, "_", "."))
		s[key] = val
	}
	return s
}
