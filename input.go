package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"
)

type inputFormat string

const (
	formatAuto  inputFormat = "auto"
	formatJSON  inputFormat = "json"
	formatJSONC inputFormat = "jsonc"
	formatYAML  inputFormat = "yaml"
)

func parseInputFormat(s string) (inputFormat, error) {
	switch f := inputFormat(strings.ToLower(s)); f {
	case formatAuto, formatJSON, formatJSONC, formatYAML:
		return f, nil
	case "":
		return formatAuto, nil
	case "yml":
		return formatYAML, nil
	}
	return "", fmt.Errorf("unknown input format %q", s)
}

// T, N and Q mirror the counts in the input file. They are never used for
// counting, only compared against the real lengths in warnings.
type testModel struct {
	T         *int       `json:"T" yaml:"T"`
	TestCases []testCase `json:"testCases" yaml:"testCases"`
}

type testCase struct {
	N          *int       `json:"N" yaml:"N"`
	Q          *int       `json:"Q" yaml:"Q"`
	Dictionary [][]string `json:"dictionary" yaml:"dictionary"`
	Queries    [][]string `json:"queries" yaml:"queries"`
}

var errMissingField = errors.New("missing required field")

func loadInput(path string, format inputFormat) (*testModel, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	if format == formatAuto {
		format = formatForPath(path)
	}
	m, err := decodeInput(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return m, nil
}

func formatForPath(path string) inputFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	}
	return formatJSONC
}

func decodeInput(data []byte, format inputFormat) (*testModel, error) {
	m := &testModel{}
	switch format {
	case formatYAML:
		if err := yaml.Unmarshal(data, m); err != nil {
			return nil, err
		}
	case formatJSONC, formatAuto:
		std, err := hujson.Standardize(data)
		if err != nil {
			return nil, err
		}
		data = std
		fallthrough
	case formatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(m); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *testModel) validate() error {
	if m.TestCases == nil {
		return fmt.Errorf("%w: testCases", errMissingField)
	}
	for i, tc := range m.TestCases {
		if tc.Dictionary == nil {
			return fmt.Errorf("%w: testCases[%d].dictionary", errMissingField, i)
		}
		if tc.Queries == nil {
			return fmt.Errorf("%w: testCases[%d].queries", errMissingField, i)
		}
	}
	return nil
}

func (m *testModel) warnings() []string {
	res := make([]string, 0)
	if m.T != nil && *m.T != len(m.TestCases) {
		res = append(res, fmt.Sprintf("T is %d but %d test cases given", *m.T, len(m.TestCases)))
	}
	for i, tc := range m.TestCases {
		if tc.N != nil && *tc.N != len(tc.Dictionary) {
			res = append(res, fmt.Sprintf("test case %d: N is %d but dictionary has %d pairs", i+1, *tc.N, len(tc.Dictionary)))
		}
		if tc.Q != nil && *tc.Q != len(tc.Queries) {
			res = append(res, fmt.Sprintf("test case %d: Q is %d but %d queries given", i+1, *tc.Q, len(tc.Queries)))
		}
	}
	return res
}
