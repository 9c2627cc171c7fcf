// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/treemap/fault"
	"github.com/bitmark-inc/treemap/treemap"
)

func TestReadValues(t *testing.T) {
	values, err := readValues(strings.NewReader("4\n30\n20\n40\n10\n"))
	require.NoError(t, err)
	assert.Equal(t, []int{30, 20, 40, 10}, values)

	// any white space will do and extra input is ignored
	values, err = readValues(strings.NewReader("3 -1 0\t7 99"))
	require.NoError(t, err)
	assert.Equal(t, []int{-1, 0, 7}, values)

	values, err = readValues(strings.NewReader("0"))
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestReadValuesErrors(t *testing.T) {
	_, err := readValues(strings.NewReader(""))
	assert.Equal(t, fault.ErrMissingValue, err)

	_, err = readValues(strings.NewReader("3\n1\n2\n"))
	assert.Equal(t, fault.ErrMissingValue, err)

	_, err = readValues(strings.NewReader("1000000000000\n"))
	assert.Equal(t, fault.ErrMissingValue, err)

	_, err = readValues(strings.NewReader("-2\n"))
	assert.Equal(t, fault.ErrInvalidCount, err)

	_, err = readValues(strings.NewReader("2\n1\nx\n"))
	assert.Error(t, err)
}

func TestPrintTraversals(t *testing.T) {
	m := treemap.New[int]()
	require.NoError(t, load(m, []int{30, 20, 40, 10}))

	buffer := &bytes.Buffer{}
	err := printTraversals(buffer, m, defaultTraversals, defaultSeparator)
	require.NoError(t, err)
	assert.Equal(t, "30 20 10 40\n10 20 30 40\n10 20 40 30\n", buffer.String())

	buffer.Reset()
	err = printTraversals(buffer, m, []string{inorderName}, ",")
	require.NoError(t, err)
	assert.Equal(t, "10,20,30,40\n", buffer.String())

	err = printTraversals(buffer, m, []string{"levelorder"}, ",")
	assert.True(t, fault.IsErrInvalid(err))
}

func TestPrintEmpty(t *testing.T) {
	m := treemap.New[int]()

	buffer := &bytes.Buffer{}
	err := printTraversals(buffer, m, defaultTraversals, defaultSeparator)
	require.NoError(t, err)
	assert.Equal(t, "\n\n\n", buffer.String())
}

func TestDefaultConfiguration(t *testing.T) {
	conf, err := getConfiguration("")
	require.NoError(t, err)

	assert.Equal(t, defaultSeparator, conf.Separator)
	assert.Equal(t, defaultTraversals, conf.Traversals)
	assert.False(t, conf.Check)
	assert.True(t, filepath.IsAbs(conf.Logging.Directory))
	assert.Equal(t, defaultLogFile, conf.Logging.File)
}

func TestConfigurationFile(t *testing.T) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "treemap.conf")
	err := os.WriteFile(fileName, []byte(`
return {
    separator = ";",
    traversals = { "postorder" },
    check = true,
    logging = {
        directory = "logs",
        file = "run.log",
        size = 4096,
        count = 2,
        levels = {
            DEFAULT = "info",
        },
    },
}
`), 0600)
	require.NoError(t, err)

	conf, err := getConfiguration(fileName)
	require.NoError(t, err)

	assert.Equal(t, ";", conf.Separator)
	assert.Equal(t, []string{postorderName}, conf.Traversals)
	assert.True(t, conf.Check)
	assert.Equal(t, filepath.Join(dir, "logs"), conf.Logging.Directory)
	assert.Equal(t, "run.log", conf.Logging.File)
	assert.Equal(t, 4096, conf.Logging.Size)
	assert.Equal(t, 2, conf.Logging.Count)
	assert.Equal(t, "info", conf.Logging.Levels["DEFAULT"])
}

func TestConfigurationBadTraversal(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "treemap.conf")
	require.NoError(t, os.WriteFile(fileName, []byte(`return { traversals = { "sideways" } }`), 0600))

	_, err := getConfiguration(fileName)
	assert.True(t, fault.IsErrInvalid(err))
}

func TestLoadRepeatedValue(t *testing.T) {
	m := treemap.New[int]()
	err := load(m, []int{5, 5, 3, 5})
	assert.Equal(t, fault.ErrChildExists, err)
	assert.Equal(t, 3, m.Len())
}
