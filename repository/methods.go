package repository

import (
	"github.com/hasbyte1/go-underscore/arr"
	"github.com/hasbyte1/go-underscore/dispatch"
	"github.com/hasbyte1/go-underscore/objects"
)

// table maps method names to implementations.
type table map[string]MethodFunc

func merge(tables ...table) table {
	out := make(table)
	for _, t := range tables {
		for name, fn := range t {
			out[name] = fn
		}
	}
	return out
}

// builtins holds the method table of every handler-set.
var builtins = map[dispatch.HandlerSet]table{
	dispatch.Objects:   merge(collectionMethods, objectMethods),
	dispatch.Arrays:    merge(collectionMethods, arrayMethods),
	dispatch.Strings:   stringMethods,
	dispatch.Numbers:   numberMethods,
	dispatch.Functions: functionMethods,
}

// ─────────────────────────────────────────────────────────────────────────────
// Collection methods (Arrays and Objects)
// ─────────────────────────────────────────────────────────────────────────────

// Writes go to a deep copy so that the wrapped subject stays untouched.
var collectionMethods = table{
	"get": func(s any, args ...any) (any, error) {
		path, err := stringArg("get", args, 0)
		if err != nil {
			return nil, err
		}
		return objects.Get(s, path, args[1:]...), nil
	},
	"has": func(s any, args ...any) (any, error) {
		path, err := stringArg("has", args, 0)
		if err != nil {
			return nil, err
		}
		return objects.Has(s, path), nil
	},
	"set": func(s any, args ...any) (any, error) {
		path, err := stringArg("set", args, 0)
		if err != nil {
			return nil, err
		}
		v, err := arg("set", args, 1)
		if err != nil {
			return nil, err
		}
		return objects.Set(objects.Clone(s), path, v), nil
	},
	"setAndGet": func(s any, args ...any) (any, error) {
		path, err := stringArg("setAndGet", args, 0)
		if err != nil {
			return nil, err
		}
		def, err := arg("setAndGet", args, 1)
		if err != nil {
			return nil, err
		}
		_, v := objects.SetAndGet(objects.Clone(s), path, def)
		return v, nil
	},
	"remove": func(s any, args ...any) (any, error) {
		path, err := stringArg("remove", args, 0)
		if err != nil {
			return nil, err
		}
		return objects.Remove(objects.Clone(s), path), nil
	},
	"filterBy": func(s any, args ...any) (any, error) {
		key, value, op, err := predicateArgs("filterBy", args)
		if err != nil {
			return nil, err
		}
		return objects.FilterBy(s, key, value, op...), nil
	},
	"findBy": func(s any, args ...any) (any, error) {
		key, value, op, err := predicateArgs("findBy", args)
		if err != nil {
			return nil, err
		}
		o, _ := objects.FindBy(s, key, value, op...)
		return o, nil
	},
	"sort": func(s any, args ...any) (any, error) {
		var by any
		if len(args) > 0 {
			by = args[0]
		}
		order, err := optString("sort", args, 1, "asc")
		if err != nil {
			return nil, err
		}
		return objects.Sort(s, by, order), nil
	},
	"pluck": func(s any, args ...any) (any, error) {
		path, err := stringArg("pluck", args, 0)
		if err != nil {
			return nil, err
		}
		return objects.Pluck(s, path), nil
	},
	"group": func(s any, args ...any) (any, error) {
		var by any
		if len(args) > 0 {
			by = args[0]
		}
		return objects.Group(s, by), nil
	},
	"replace": func(s any, args ...any) (any, error) {
		old, err := stringArg("replace", args, 0)
		if err != nil {
			return nil, err
		}
		key, err := stringArg("replace", args, 1)
		if err != nil {
			return nil, err
		}
		v, err := arg("replace", args, 2)
		if err != nil {
			return nil, err
		}
		return objects.Replace(objects.Clone(s), old, key, v), nil
	},
	"keys": func(s any, _ ...any) (any, error) {
		return objects.Keys(s), nil
	},
	"values": func(s any, _ ...any) (any, error) {
		return objects.Values(s), nil
	},
	"size": func(s any, _ ...any) (any, error) {
		return len(objects.Values(s)), nil
	},
	"unique": func(s any, _ ...any) (any, error) {
		return objects.Unique(s), nil
	},
	"checksum": func(s any, _ ...any) (any, error) {
		return objects.Checksum(s)
	},
	"toJSON": func(s any, _ ...any) (any, error) {
		return objects.ToJSON(s)
	},
	"toYAML": func(s any, _ ...any) (any, error) {
		return objects.ToYAML(s)
	},
}

func predicateArgs(method string, args []any) (string, any, []objects.Operator, error) {
	key, err := stringArg(method, args, 0)
	if err != nil {
		return "", nil, nil, err
	}
	value, err := arg(method, args, 1)
	if err != nil {
		return "", nil, nil, err
	}
	op, err := operatorArg(method, args, 2)
	if err != nil {
		return "", nil, nil, err
	}
	return key, value, op, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Objects
// ─────────────────────────────────────────────────────────────────────────────

var objectMethods = table{
	"unpack": func(s any, args ...any) (any, error) {
		attr, err := optString("unpack", args, 0, "")
		if err != nil {
			return nil, err
		}
		return objects.Unpack(s, attr), nil
	},
	"methods": func(s any, _ ...any) (any, error) {
		return objects.Methods(s), nil
	},
	"toObject": func(s any, _ ...any) (any, error) {
		return objects.ToObject(s), nil
	},
}

// ─────────────────────────────────────────────────────────────────────────────
// Arrays
// ─────────────────────────────────────────────────────────────────────────────

var arrayMethods = table{
	"first": func(s any, args ...any) (any, error) {
		fns, err := predicateArg("first", args)
		if err != nil {
			return nil, err
		}
		v, _ := arr.First(s, fns...)
		return v, nil
	},
	"last": func(s any, args ...any) (any, error) {
		fns, err := predicateArg("last", args)
		if err != nil {
			return nil, err
		}
		v, _ := arr.Last(s, fns...)
		return v, nil
	},
	"flatten": func(s any, args ...any) (any, error) {
		depth, err := optInt("flatten", args, 0, 0)
		if err != nil {
			return nil, err
		}
		return arr.Flatten(s, depth), nil
	},
	"chunk": func(s any, args ...any) (any, error) {
		size, err := intArg("chunk", args, 0)
		if err != nil {
			return nil, err
		}
		return arr.Chunk(s, size)
	},
	"dot": func(s any, args ...any) (any, error) {
		prefix, err := optString("dot", args, 0, "")
		if err != nil {
			return nil, err
		}
		return arr.Dot(s, prefix), nil
	},
	"undot": func(s any, _ ...any) (any, error) {
		return arr.Undot(s), nil
	},
	"only": func(s any, args ...any) (any, error) {
		paths, err := stringsArg("only", args, 0)
		if err != nil {
			return nil, err
		}
		return arr.Only(s, paths...), nil
	},
	"except": func(s any, args ...any) (any, error) {
		paths, err := stringsArg("except", args, 0)
		if err != nil {
			return nil, err
		}
		return arr.Except(s, paths...), nil
	},
	"merge": func(s any, args ...any) (any, error) {
		src, err := arg("merge", args, 0)
		if err != nil {
			return nil, err
		}
		return arr.Merge(s, src), nil
	},
	"query": func(s any, args ...any) (any, error) {
		expr, err := stringArg("query", args, 0)
		if err != nil {
			return nil, err
		}
		return arr.Query(s, expr)
	},
}

func predicateArg(method string, args []any) ([]func(any) bool, error) {
	if len(args) == 0 || args[0] == nil {
		return nil, nil
	}
	fn, ok := args[0].(func(any) bool)
	if !ok {
		return nil, argError(method, 0, "a func(any) bool", args[0])
	}
	return []func(any) bool{fn}, nil
}
