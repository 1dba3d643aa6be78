// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"reflect"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/ranktree/fault"
)

// ParseConfigurationFile - read and execute a Lua file and assign
// the results to a configuration structure
func ParseConfigurationFile(fileName string, config interface{}) error {
	return ParseConfigurationFileWithGlobals(fileName, nil, config)
}

// ParseConfigurationFileWithGlobals - as ParseConfigurationFile but
// first set some string globals visible to the Lua code
func ParseConfigurationFileWithGlobals(fileName string, globals map[string]string, config interface{}) error {
	return parse(fileName, globals, config, func(L *lua.LState) error {
		return L.DoFile(fileName)
	})
}

// ParseConfigurationString - execute Lua source held in memory
// name is only used for arg[0]
func ParseConfigurationString(name string, source string, config interface{}) error {
	return parse(name, nil, config, func(L *lua.LState) error {
		return L.DoString(source)
	})
}

func parse(name string, globals map[string]string, config interface{}, execute func(*lua.LState) error) error {

	// since interface{} is untyped, have to verify type compatibility at run-time
	rv := reflect.ValueOf(config)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fault.ErrInvalidStructPointer
	}

	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	// create the global "arg" table
	// arg[0] = config file
	arg := &lua.LTable{}
	arg.Insert(0, lua.LString(name))
	L.SetGlobal("arg", arg)

	for k, v := range globals {
		L.SetGlobal(k, lua.LString(v))
	}

	// execute configuration
	if err := execute(L); err != nil {
		return err
	}

	table, ok := L.Get(L.GetTop()).(*lua.LTable)
	if !ok {
		return fault.ErrMissingConfiguration
	}

	mapperOption := gluamapper.Option{
		NameFunc: func(s string) string {
			return s
		},
		TagName: "gluamapper",
	}
	mapper := gluamapper.Mapper{Option: mapperOption}
	return mapper.Map(table, config)
}
