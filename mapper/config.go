/*
   Copyright 2025 The DIRPX Authors

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

package mapper

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"dirpx.dev/silabs/status"
	"google.golang.org/grpc/codes"
	"gopkg.in/yaml.v3"
)

// Config is the YAML shape of a mapping rule file:
//
//	fallback: {http: 500, grpc: Internal}
//	categories:
//	  io: {http: 504, grpc: Unavailable}
//	defaults:
//	  SlIoTimeout: {grpc: DEADLINE_EXCEEDED}
//	overrides:
//	  wifi.invalid_key: {http: 403}
//	ranges:
//	  - {lo: 0x0B10, hi: 0x0B14, http: 403, grpc: PermissionDenied}
//
// Status keys accept anything status.Parse does; category keys accept the
// tag or its lowercase segment. gRPC codes are given by name, in either
// CamelCase or UPPER_SNAKE form, or as numbers.
type Config struct {
	Fallback   *Rule           `yaml:"fallback"`
	Categories map[string]Rule `yaml:"categories"`
	Defaults   map[string]Rule `yaml:"defaults"`
	Overrides  map[string]Rule `yaml:"overrides"`
	Ranges     []RangeRule     `yaml:"ranges"`
}

// Rule sets the HTTP and/or gRPC status for one key. Unset fields leave the
// corresponding transport untouched.
type Rule struct {
	HTTP *int      `yaml:"http"`
	GRPC *GRPCCode `yaml:"grpc"`
}

// RangeRule is a Rule applied to the raw code interval [Lo, Hi].
type RangeRule struct {
	Lo   uint32 `yaml:"lo"`
	Hi   uint32 `yaml:"hi"`
	Rule `yaml:",inline"`
}

// GRPCCode is a codes.Code that unmarshals from a YAML name or number.
type GRPCCode codes.Code

// UnmarshalYAML implements yaml.Unmarshaler.
func (g *GRPCCode) UnmarshalYAML(node *yaml.Node) error {
	var n uint32
	if err := node.Decode(&n); err == nil {
		*g = GRPCCode(n)
		return nil
	}
	c, ok := grpcByName[foldCodeName(node.Value)]
	if !ok {
		return fmt.Errorf("line %d: unknown gRPC code %q", node.Line, node.Value)
	}
	*g = GRPCCode(c)
	return nil
}

var grpcByName = func() map[string]codes.Code {
	m := make(map[string]codes.Code, 17)
	for c := codes.OK; c <= codes.Unauthenticated; c++ {
		m[foldCodeName(c.String())] = c
	}
	return m
}()

func foldCodeName(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "_", ""))
}

// ErrConfig wraps every error returned by LoadConfig.
var ErrConfig = errors.New("mapper: invalid config")

// LoadConfig reads a YAML rule file and returns the equivalent options, ready
// to pass to New. Unknown fields are rejected.
func LoadConfig(r io.Reader) ([]Option, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return opts, nil
}

// Options converts the config into mapper options. Map keys are applied in
// sorted order so the result is deterministic.
func (c *Config) Options() ([]Option, error) {
	var opts []Option

	if c.Fallback != nil {
		if c.Fallback.HTTP == nil || c.Fallback.GRPC == nil {
			return nil, errors.New("fallback needs both http and grpc")
		}
		opts = append(opts, WithFallback(*c.Fallback.HTTP, codes.Code(*c.Fallback.GRPC)))
	}

	for _, key := range sortedKeys(c.Categories) {
		cat, err := status.ParseCategory(key)
		if err != nil {
			return nil, err
		}
		rule := c.Categories[key]
		if rule.HTTP != nil {
			opts = append(opts, WithHTTPCategoryDefault(cat, *rule.HTTP))
		}
		if rule.GRPC != nil {
			opts = append(opts, WithGRPCCategoryDefault(cat, int(*rule.GRPC)))
		}
	}

	statusRules := []struct {
		rules map[string]Rule
		http  func(status.Status, int) Option
		grpc  func(status.Status, int) Option
	}{
		{c.Defaults, WithHTTPDefault, WithGRPCDefault},
		{c.Overrides, WithHTTPOverride, WithGRPCOverride},
	}
	for _, sr := range statusRules {
		for _, key := range sortedKeys(sr.rules) {
			s, err := status.Parse(key)
			if err != nil {
				return nil, err
			}
			rule := sr.rules[key]
			if rule.HTTP != nil {
				opts = append(opts, sr.http(s, *rule.HTTP))
			}
			if rule.GRPC != nil {
				opts = append(opts, sr.grpc(s, int(*rule.GRPC)))
			}
		}
	}

	for i, rr := range c.Ranges {
		if rr.Lo > rr.Hi {
			return nil, fmt.Errorf("ranges[%d]: lo 0x%04x above hi 0x%04x", i, rr.Lo, rr.Hi)
		}
		if rr.HTTP != nil {
			opts = append(opts, WithHTTPRange(rr.Lo, rr.Hi, *rr.HTTP))
		}
		if rr.GRPC != nil {
			opts = append(opts, WithGRPCRange(rr.Lo, rr.Hi, int(*rr.GRPC)))
		}
	}
	return opts, nil
}

func sortedKeys(m map[string]Rule) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
