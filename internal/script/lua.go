// Package script embeds a Lua interpreter with the gaussblur module
// preloaded, so blur jobs can be driven from Lua scripts:
//
//	local gaussblur = require("gaussblur")
//	print(gaussblur.gaussian_blur("in.png", "out.png"))
//
// gaussian_blur raises a Lua error when the source cannot be decoded and,
// unless the strict write policy is configured, ignores failed writes.
// blur returns a table with path, written and error fields for callers that
// need to know whether the file was saved.
package script

import (
	"fmt"

	"github.com/rm-hull/gaussblur/internal/blur"
	lua "github.com/yuin/gopher-lua"
)

const ModuleName = "gaussblur"

// Preload makes require("gaussblur") available in L, backed by b.
func Preload(L *lua.LState, b *blur.Blurrer) {
	L.PreloadModule(ModuleName, func(L *lua.LState) int {
		mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
			"gaussian_blur": gaussianBlur(b),
			"blur":          blurResult(b),
		})
		L.SetField(mod, "sigma", lua.LNumber(b.Options().Sigma))
		L.Push(mod)
		return 1
	})
}

func gaussianBlur(b *blur.Blurrer) lua.LGFunction {
	return func(L *lua.LState) int {
		source := L.CheckString(1)
		destination := L.CheckString(2)

		result, err := b.Blur(source, destination)
		if err != nil {
			L.RaiseError("%s", err.Error())
			return 0
		}
		L.Push(lua.LString(result.Path))
		return 1
	}
}

func blurResult(b *blur.Blurrer) lua.LGFunction {
	return func(L *lua.LState) int {
		source := L.CheckString(1)
		destination := L.CheckString(2)

		// a write failure is reported in the table whatever the policy
		result, err := b.Blur(source, destination)
		if result == nil {
			L.RaiseError("%s", err.Error())
			return 0
		}

		tbl := L.NewTable()
		L.SetField(tbl, "path", lua.LString(result.Path))
		L.SetField(tbl, "written", lua.LBool(result.Written()))
		if result.WriteErr != nil {
			L.SetField(tbl, "error", lua.LString(result.WriteErr.Error()))
		}
		L.Push(tbl)
		return 1
	}
}

// NewState returns a fresh interpreter with the module preloaded. The caller
// must Close it.
func NewState(opts blur.Options) *lua.LState {
	L := lua.NewState()
	Preload(L, blur.New(opts))
	return L
}

func RunFile(path string, opts blur.Options) error {
	L := NewState(opts)
	defer L.Close()

	if err := L.DoFile(path); err != nil {
		return fmt.Errorf("script %s failed: %w", path, err)
	}
	return nil
}

func RunString(source string, opts blur.Options) error {
	L := NewState(opts)
	defer L.Close()

	if err := L.DoString(source); err != nil {
		return fmt.Errorf("script failed: %w", err)
	}
	return nil
}
